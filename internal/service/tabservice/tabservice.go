package tabservice

import (
	"context"
	"fmt"

	"github.com/GlebRadaev/deckelbot/internal/domain"
	"github.com/GlebRadaev/deckelbot/internal/intent"
	"github.com/GlebRadaev/deckelbot/internal/pg"
	"go.uber.org/zap"
)

type AccountRepo interface {
	// Get returns nil, nil for an unknown id. Inside a transaction the row stays locked until commit.
	Get(ctx context.Context, id int64) (*domain.Account, error)
	Create(ctx context.Context, acc *domain.Account) error
	Update(ctx context.Context, id int64, patch domain.AccountPatch) error
	Delete(ctx context.Context, id int64) error
	SumLifetimeTotals(ctx context.Context) (int64, error)
}

type Settler interface {
	Prepare(acc domain.Account) (*domain.SettlementRequest, error)
}

type Service struct {
	repo         AccountRepo
	txManager    pg.TXManager
	settler      Settler
	limits       domain.Limits
	defaultPrice int64
}

func New(repo AccountRepo, txManager pg.TXManager, settler Settler, limits domain.Limits, defaultPrice int64) *Service {
	return &Service{
		repo:         repo,
		txManager:    txManager,
		settler:      settler,
		limits:       limits,
		defaultPrice: defaultPrice,
	}
}

// Handle applies one action to the sender's tab. The read and the conditional
// write happen in one transaction holding the account row.
func (s *Service) Handle(ctx context.Context, ev intent.Event, action intent.Action) (*intent.Reply, error) {
	var reply *intent.Reply
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		acc, err := s.loadOrCreate(ctx, ev)
		if err != nil {
			return err
		}
		reply, err = s.apply(ctx, ev, action, *acc)
		return err
	})
	if err != nil {
		zap.L().Error("failed to handle action", zap.Stringer("action", action), zap.Int64("user_id", ev.UserID), zap.Error(err))
		return nil, err
	}

	zap.L().Debug("action handled", zap.Stringer("action", action), zap.Int64("user_id", ev.UserID), zap.Int("reply", int(reply.Kind)))
	return reply, nil
}

func (s *Service) loadOrCreate(ctx context.Context, ev intent.Event) (*domain.Account, error) {
	acc, err := s.repo.Get(ctx, ev.UserID)
	if err != nil {
		return nil, fmt.Errorf("can't get account: %w", err)
	}
	if acc != nil {
		return acc, nil
	}

	err = s.repo.Create(ctx, &domain.Account{
		ID:        ev.UserID,
		Username:  ev.Username,
		FirstName: ev.FirstName,
		LastName:  ev.LastName,
		UnitPrice: s.defaultPrice,
	})
	if err != nil {
		return nil, fmt.Errorf("can't create account: %w", err)
	}

	acc, err = s.repo.Get(ctx, ev.UserID)
	if err != nil {
		return nil, fmt.Errorf("can't get account: %w", err)
	}
	if acc == nil {
		return nil, fmt.Errorf("account %d vanished after create", ev.UserID)
	}
	zap.L().Info("account created", zap.Int64("user_id", acc.ID))
	return acc, nil
}

func (s *Service) apply(ctx context.Context, ev intent.Event, action intent.Action, acc domain.Account) (*intent.Reply, error) {
	reply := func(kind intent.ReplyKind) (*intent.Reply, error) {
		return &intent.Reply{Kind: kind, Account: acc}, nil
	}
	update := func(patch domain.AccountPatch, kind intent.ReplyKind) (*intent.Reply, error) {
		if err := s.repo.Update(ctx, acc.ID, patch); err != nil {
			return nil, fmt.Errorf("can't update account: %w", err)
		}
		acc = patch.Apply(acc)
		return reply(kind)
	}

	switch action {
	case intent.Start:
		return reply(intent.Welcome)
	case intent.Terms:
		return reply(intent.TermsText)
	case intent.OrderDrink:
		if !s.limits.CanOrder(acc) {
			return reply(intent.DamageTooHigh)
		}
		return update(domain.OrderPatch(acc), intent.DrinkOrdered)
	case intent.ShowDamage:
		return reply(intent.DamageReport)
	case intent.RequestSettlement:
		return reply(intent.SettlementPrompt)
	case intent.DeclineSettlement:
		return reply(intent.KeepDrinking)
	case intent.ConfirmSettlement:
		if acc.Damage() <= 0 {
			return reply(intent.NothingToSettle)
		}
		req, err := s.settler.Prepare(acc)
		if err != nil {
			return nil, fmt.Errorf("can't prepare settlement: %w", err)
		}
		return &intent.Reply{Kind: intent.SettlementInvoice, Account: acc, Request: req}, nil
	case intent.EraseTab:
		return update(domain.ErasePatch(), intent.TabErased)
	case intent.ShowOptionsMenu:
		return reply(intent.OptionsPrompt)
	case intent.ShowPriceMenu:
		return reply(intent.PricePrompt)
	case intent.SetNewPrice:
		price, err := intent.PriceFromLabel(intent.Normalize(ev))
		if err != nil {
			panic(fmt.Sprintf("price menu produced an unparsable label: %v", err))
		}
		if !s.limits.CanReprice(acc, price) {
			return reply(intent.PriceRejected)
		}
		return update(domain.RepricePatch(price), intent.PriceChanged)
	case intent.ShowLastSettlement:
		if acc.LastSettledAmount == 0 {
			return reply(intent.NeverSettled)
		}
		return reply(intent.LastSettlement)
	case intent.ShowLifetimeTotal:
		return reply(intent.LifetimeTotal)
	case intent.ShowGlobalTotal:
		total, err := s.repo.SumLifetimeTotals(ctx)
		if err != nil {
			return nil, fmt.Errorf("can't sum lifetime totals: %w", err)
		}
		if total == 0 {
			return reply(intent.NobodySettled)
		}
		return &intent.Reply{Kind: intent.GlobalTotal, Account: acc, GlobalTotal: total}, nil
	case intent.RequestDeletion:
		return reply(intent.DeletionPrompt)
	case intent.DeclineDeletion:
		return reply(intent.DataKept)
	case intent.ConfirmDeletion:
		if err := s.repo.Delete(ctx, acc.ID); err != nil {
			return nil, fmt.Errorf("can't delete account: %w", err)
		}
		zap.L().Info("account deleted", zap.Int64("user_id", acc.ID))
		return reply(intent.DataDeleted)
	default:
		return reply(intent.NotUnderstood)
	}
}
