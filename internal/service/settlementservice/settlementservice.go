package settlementservice

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/GlebRadaev/deckelbot/internal/config"
	"github.com/GlebRadaev/deckelbot/internal/domain"
	"github.com/GlebRadaev/deckelbot/internal/intent"
	"github.com/GlebRadaev/deckelbot/internal/pg"
	"github.com/GlebRadaev/deckelbot/internal/stripe"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// RejectReason is shown by Telegram when a pre-checkout query is declined.
const RejectReason = "The total was to high. Transaction denied for security purposes."

var (
	ErrNotPayment         = errors.New("event carries no payment")
	ErrInvalidPayload     = errors.New("invalid settlement payload")
	ErrForeignPayload     = errors.New("payload belongs to another account")
	ErrDuplicateReceipt   = errors.New("receipt already settled")
	ErrForwardingDisabled = errors.New("forwarding disabled")
	ErrInsufficientFunds  = errors.New("insufficient available balance")
)

type AccountRepo interface {
	Get(ctx context.Context, id int64) (*domain.Account, error)
	Create(ctx context.Context, acc *domain.Account) error
	Update(ctx context.Context, id int64, patch domain.AccountPatch) error
}

type SettlementRepo interface {
	// Save reports false when the receipt is already stored.
	Save(ctx context.Context, s *domain.Settlement) (bool, error)
	FindByReceipt(ctx context.Context, receiptID string) (*domain.Settlement, error)
	SetTransferID(ctx context.Context, id int64, transferID string) error
	FindUnforwarded(ctx context.Context, limit int) ([]domain.Settlement, error)
}

type PayloadCodec interface {
	Encode(p domain.SettlementPayload) (string, error)
	Decode(token string) (*domain.SettlementPayload, error)
}

type Provider interface {
	CheckBalance(ctx context.Context) (int64, error)
	GetChargeDetail(ctx context.Context, receiptID string) (*domain.ChargeDetail, error)
	RequestTransfer(ctx context.Context, amount int64, destination, idempotencyKey string) (string, error)
	ConfirmTransfer(ctx context.Context, transferID string) error
}

// Decision answers a pre-checkout query.
type Decision struct {
	OK     bool
	Reason string
}

type Service struct {
	accounts       AccountRepo
	settlements    SettlementRepo
	txManager      pg.TXManager
	codec          PayloadCodec
	provider       Provider
	workerPool     WorkerPoolI
	limits         domain.Limits
	fees           domain.FeeSchedule
	currency       string
	destination    string
	defaultPrice   int64
	forwardTimeout time.Duration
	inFlight       sync.Map
	now            func() time.Time
}

// New wires the coordinator. A nil provider disables forwarding.
func New(
	cfg *config.Config,
	accounts AccountRepo,
	settlements SettlementRepo,
	txManager pg.TXManager,
	codec PayloadCodec,
	provider Provider,
	workerPool WorkerPoolI,
) *Service {
	return &Service{
		accounts:       accounts,
		settlements:    settlements,
		txManager:      txManager,
		codec:          codec,
		provider:       provider,
		workerPool:     workerPool,
		limits:         domain.Limits{MaxDamage: cfg.MaxDamageAllowed, MaxUnitPrice: cfg.MaxUnitPrice},
		fees:           domain.FeeSchedule{BasisPoints: cfg.FeeBasisPoints, Fixed: cfg.FeeFixed},
		currency:       strings.ToUpper(cfg.Currency),
		destination:    cfg.StripeDestination,
		defaultPrice:   cfg.DefaultUnitPrice,
		forwardTimeout: cfg.ForwardTimeout,
		now:            time.Now,
	}
}

// Prepare turns the current damage into an invoice request.
func (s *Service) Prepare(acc domain.Account) (*domain.SettlementRequest, error) {
	amount := acc.Damage()
	payload, err := s.codec.Encode(domain.SettlementPayload{AccountID: acc.ID, Amount: amount})
	if err != nil {
		return nil, fmt.Errorf("can't encode payload: %w", err)
	}
	return &domain.SettlementRequest{
		Payload:  payload,
		Amount:   amount,
		Fee:      s.fees.Fee(amount),
		Currency: s.currency,
	}, nil
}

func (s *Service) Authorize(q intent.PreCheckout) Decision {
	reject := Decision{OK: false, Reason: RejectReason}

	payload, err := s.codec.Decode(q.Payload)
	if err != nil {
		zap.L().Warn("pre-checkout with invalid payload", zap.String("query_id", q.QueryID), zap.Error(err))
		return reject
	}
	if !s.limits.CanSettle(payload.Amount) || q.TotalAmount != payload.Amount {
		zap.L().Warn("pre-checkout rejected",
			zap.String("query_id", q.QueryID),
			zap.Int64("total", q.TotalAmount),
			zap.Int64("payload_amount", payload.Amount),
		)
		return reject
	}
	if !strings.EqualFold(q.Currency, s.currency) {
		zap.L().Warn("pre-checkout in unexpected currency", zap.String("query_id", q.QueryID), zap.String("currency", q.Currency))
		return reject
	}
	return Decision{OK: true}
}

// Confirm books a completed payment exactly once per receipt and then hands the
// funds over to forwarding.
func (s *Service) Confirm(ctx context.Context, ev intent.Event) (*domain.Settlement, error) {
	notice := ev.Payment
	if notice == nil {
		return nil, ErrNotPayment
	}

	payload, err := s.codec.Decode(notice.Payload)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidPayload, err)
	}
	if payload.AccountID != ev.UserID {
		return nil, fmt.Errorf("%w: payload %d, payer %d", ErrForeignPayload, payload.AccountID, ev.UserID)
	}
	if notice.TotalAmount != payload.Amount {
		zap.L().Warn("paid total differs from invoice",
			zap.String("receipt_id", notice.ReceiptID),
			zap.Int64("paid", notice.TotalAmount),
			zap.Int64("invoiced", payload.Amount),
		)
	}

	settlement := &domain.Settlement{
		AccountID:        ev.UserID,
		ReceiptID:        notice.ReceiptID,
		TelegramChargeID: notice.TelegramChargeID,
		Amount:           notice.TotalAmount,
		Fee:              s.fees.Fee(notice.TotalAmount),
		SettledAt:        s.now(),
	}

	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		acc, err := s.loadOrCreate(ctx, ev)
		if err != nil {
			return err
		}

		created, err := s.settlements.Save(ctx, settlement)
		if err != nil {
			return fmt.Errorf("can't save settlement: %w", err)
		}
		if !created {
			return ErrDuplicateReceipt
		}

		patch := domain.SettlementPatch(*acc, settlement.Amount, settlement.SettledAt)
		if err := s.accounts.Update(ctx, acc.ID, patch); err != nil {
			return fmt.Errorf("can't update account: %w", err)
		}
		return nil
	})
	if errors.Is(err, ErrDuplicateReceipt) {
		zap.L().Info("duplicate payment notice ignored", zap.String("receipt_id", notice.ReceiptID))
		return nil, err
	}
	if err != nil {
		zap.L().Error("failed to confirm settlement", zap.String("receipt_id", notice.ReceiptID), zap.Error(err))
		return nil, err
	}

	zap.L().Info("settlement booked",
		zap.Int64("user_id", ev.UserID),
		zap.String("receipt_id", settlement.ReceiptID),
		zap.Int64("amount", settlement.Amount),
	)
	s.enqueue(ctx, *settlement)
	return settlement, nil
}

func (s *Service) loadOrCreate(ctx context.Context, ev intent.Event) (*domain.Account, error) {
	acc, err := s.accounts.Get(ctx, ev.UserID)
	if err != nil {
		return nil, fmt.Errorf("can't get account: %w", err)
	}
	if acc != nil {
		return acc, nil
	}

	err = s.accounts.Create(ctx, &domain.Account{
		ID:        ev.UserID,
		Username:  ev.Username,
		FirstName: ev.FirstName,
		LastName:  ev.LastName,
		UnitPrice: s.defaultPrice,
	})
	if err != nil {
		return nil, fmt.Errorf("can't create account: %w", err)
	}
	acc, err = s.accounts.Get(ctx, ev.UserID)
	if err != nil {
		return nil, fmt.Errorf("can't get account: %w", err)
	}
	if acc == nil {
		return nil, fmt.Errorf("account %d vanished after create", ev.UserID)
	}
	return acc, nil
}

// enqueue hands the settlement to the worker pool without waiting. A rejected
// settlement keeps a NULL transfer_id and is picked up by RetryForwarding.
func (s *Service) enqueue(ctx context.Context, st domain.Settlement) bool {
	if s.provider == nil || s.workerPool == nil {
		return false
	}
	if _, loaded := s.inFlight.LoadOrStore(st.ReceiptID, struct{}{}); loaded {
		return false
	}

	detached := context.WithoutCancel(ctx)
	err := s.workerPool.AddTask(ctx, func() error {
		defer s.inFlight.Delete(st.ReceiptID)
		fctx, cancel := context.WithTimeout(detached, s.forwardTimeout)
		defer cancel()
		return s.Forward(fctx, st)
	})
	if err != nil {
		s.inFlight.Delete(st.ReceiptID)
		if errors.Is(err, ErrQueueFull) {
			zap.L().Warn("forwarding queue full, left for retry", zap.String("receipt_id", st.ReceiptID))
			return false
		}
		zap.L().Error("can't enqueue forwarding", zap.String("receipt_id", st.ReceiptID), zap.Error(err))
		return false
	}
	return true
}

// Forward moves the net amount of one settlement to the connected account.
// Failures leave the record unforwarded.
func (s *Service) Forward(ctx context.Context, st domain.Settlement) error {
	if s.provider == nil {
		return ErrForwardingDisabled
	}
	if st.TransferID != nil {
		return nil
	}

	var available int64
	var detail *domain.ChargeDetail
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		available, err = s.provider.CheckBalance(gctx)
		if err != nil {
			return fmt.Errorf("can't check balance: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		detail, err = s.provider.GetChargeDetail(gctx, st.ReceiptID)
		if err != nil {
			return fmt.Errorf("can't get charge %s: %w", st.ReceiptID, err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return err
	}

	if available < detail.Net {
		zap.L().Warn("not enough funds to forward",
			zap.String("receipt_id", st.ReceiptID),
			zap.Int64("available", available),
			zap.Int64("net", detail.Net),
		)
		return fmt.Errorf("%w: available %d, net %d", ErrInsufficientFunds, available, detail.Net)
	}

	transferID, err := s.provider.RequestTransfer(ctx, detail.Net, s.destination, stripe.IdempotencyKey("transfer", st.ReceiptID))
	if err != nil {
		return fmt.Errorf("can't request transfer for %s: %w", st.ReceiptID, err)
	}
	if err := s.provider.ConfirmTransfer(ctx, transferID); err != nil {
		return fmt.Errorf("can't confirm transfer %s: %w", transferID, err)
	}
	if err := s.settlements.SetTransferID(ctx, st.ID, transferID); err != nil {
		return fmt.Errorf("can't store transfer %s: %w", transferID, err)
	}

	after, err := s.provider.CheckBalance(ctx)
	switch {
	case err != nil:
		zap.L().Warn("can't re-check balance after transfer", zap.String("transfer_id", transferID), zap.Error(err))
	case available-after != detail.Net:
		zap.L().Warn("balance did not drop by the transferred amount",
			zap.String("transfer_id", transferID),
			zap.Int64("before", available),
			zap.Int64("after", after),
			zap.Int64("net", detail.Net),
		)
	}

	zap.L().Info("settlement forwarded",
		zap.String("receipt_id", st.ReceiptID),
		zap.String("transfer_id", transferID),
		zap.Int64("net", detail.Net),
	)
	return nil
}

// Pending lists settlements whose funds were not forwarded yet.
func (s *Service) Pending(ctx context.Context, limit int) ([]domain.Settlement, error) {
	list, err := s.settlements.FindUnforwarded(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("can't list unforwarded settlements: %w", err)
	}
	return list, nil
}

// RetryForwarding enqueues up to limit unforwarded settlements and returns how
// many were accepted.
func (s *Service) RetryForwarding(ctx context.Context, limit int) (int, error) {
	if s.provider == nil {
		return 0, ErrForwardingDisabled
	}
	list, err := s.Pending(ctx, limit)
	if err != nil {
		return 0, err
	}

	queued := 0
	for _, st := range list {
		if s.enqueue(ctx, st) {
			queued++
		}
	}
	zap.L().Info("forwarding retried", zap.Int("pending", len(list)), zap.Int("queued", queued))
	return queued, nil
}
