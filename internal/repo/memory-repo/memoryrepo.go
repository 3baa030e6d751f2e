package memoryrepo

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/GlebRadaev/deckelbot/internal/domain"
)

type txKey struct{}

type state struct {
	accounts    map[int64]domain.Account
	settlements []domain.Settlement
	receipts    map[string]int
}

func (s state) clone() state {
	accounts := make(map[int64]domain.Account, len(s.accounts))
	for id, acc := range s.accounts {
		accounts[id] = acc
	}
	receipts := make(map[string]int, len(s.receipts))
	for id, idx := range s.receipts {
		receipts[id] = idx
	}
	settlements := make([]domain.Settlement, len(s.settlements))
	copy(settlements, s.settlements)
	return state{accounts: accounts, settlements: settlements, receipts: receipts}
}

// Store keeps tabs and settlements in process memory. Transactions are
// serialized by a single mutex and rolled back from a snapshot.
type Store struct {
	mu    sync.Mutex
	state state
	now   func() time.Time
}

func New() *Store {
	return &Store{
		state: state{
			accounts: make(map[int64]domain.Account),
			receipts: make(map[string]int),
		},
		now: time.Now,
	}
}

func (s *Store) Begin(ctx context.Context, fn func(ctx context.Context) error) (err error) {
	if ctx.Value(txKey{}) != nil {
		return fn(ctx)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	snapshot := s.state.clone()
	defer func() {
		if p := recover(); p != nil {
			s.state = snapshot
			panic(p)
		}
		if err != nil {
			s.state = snapshot
		}
	}()

	return fn(context.WithValue(ctx, txKey{}, struct{}{}))
}

func (s *Store) locked(ctx context.Context, fn func()) {
	if ctx.Value(txKey{}) == nil {
		s.mu.Lock()
		defer s.mu.Unlock()
	}
	fn()
}

func (s *Store) Accounts() *AccountRepository {
	return &AccountRepository{store: s}
}

func (s *Store) Settlements() *SettlementRepository {
	return &SettlementRepository{store: s}
}

type AccountRepository struct {
	store *Store
}

func (r *AccountRepository) Get(ctx context.Context, id int64) (acc *domain.Account, err error) {
	r.store.locked(ctx, func() {
		if found, ok := r.store.state.accounts[id]; ok {
			acc = &found
		}
	})
	return acc, nil
}

func (r *AccountRepository) Create(ctx context.Context, acc *domain.Account) error {
	r.store.locked(ctx, func() {
		if _, ok := r.store.state.accounts[acc.ID]; ok {
			return
		}
		r.store.state.accounts[acc.ID] = domain.Account{
			ID:        acc.ID,
			Username:  acc.Username,
			FirstName: acc.FirstName,
			LastName:  acc.LastName,
			UnitPrice: acc.UnitPrice,
			CreatedAt: r.store.now(),
		}
	})
	return nil
}

func (r *AccountRepository) Update(ctx context.Context, id int64, patch domain.AccountPatch) (err error) {
	r.store.locked(ctx, func() {
		acc, ok := r.store.state.accounts[id]
		if !ok {
			err = ErrAccountNotFound
			return
		}
		r.store.state.accounts[id] = patch.Apply(acc)
	})
	return err
}

func (r *AccountRepository) Delete(ctx context.Context, id int64) error {
	r.store.locked(ctx, func() {
		delete(r.store.state.accounts, id)
		for i := range r.store.state.settlements {
			if r.store.state.settlements[i].AccountID == id {
				r.store.state.settlements[i].AccountID = 0
			}
		}
	})
	return nil
}

func (r *AccountRepository) SumLifetimeTotals(ctx context.Context) (total int64, err error) {
	r.store.locked(ctx, func() {
		for _, acc := range r.store.state.accounts {
			total += acc.LifetimeTotal
		}
	})
	return total, nil
}

type SettlementRepository struct {
	store *Store
}

func (r *SettlementRepository) Save(ctx context.Context, s *domain.Settlement) (created bool, err error) {
	r.store.locked(ctx, func() {
		if _, ok := r.store.state.receipts[s.ReceiptID]; ok {
			return
		}
		s.ID = int64(len(r.store.state.settlements) + 1)
		r.store.state.receipts[s.ReceiptID] = len(r.store.state.settlements)
		r.store.state.settlements = append(r.store.state.settlements, *s)
		created = true
	})
	return created, nil
}

func (r *SettlementRepository) FindByReceipt(ctx context.Context, receiptID string) (found *domain.Settlement, err error) {
	r.store.locked(ctx, func() {
		if idx, ok := r.store.state.receipts[receiptID]; ok {
			s := r.store.state.settlements[idx]
			found = &s
		}
	})
	return found, nil
}

func (r *SettlementRepository) SetTransferID(ctx context.Context, id int64, transferID string) error {
	r.store.locked(ctx, func() {
		for i := range r.store.state.settlements {
			s := &r.store.state.settlements[i]
			if s.ID == id && s.TransferID == nil {
				s.TransferID = &transferID
			}
		}
	})
	return nil
}

func (r *SettlementRepository) FindUnforwarded(ctx context.Context, limit int) (result []domain.Settlement, err error) {
	r.store.locked(ctx, func() {
		for _, s := range r.store.state.settlements {
			if s.TransferID == nil {
				result = append(result, s)
			}
		}
	})
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].SettledAt.Before(result[j].SettledAt)
	})
	if len(result) > limit {
		result = result[:limit]
	}
	return result, nil
}
