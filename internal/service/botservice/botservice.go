package botservice

import (
	"context"
	"errors"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/GlebRadaev/deckelbot/internal/composer"
	"github.com/GlebRadaev/deckelbot/internal/domain"
	"github.com/GlebRadaev/deckelbot/internal/intent"
	"github.com/GlebRadaev/deckelbot/internal/service/settlementservice"
)

type TabHandler interface {
	Handle(ctx context.Context, ev intent.Event, action intent.Action) (*intent.Reply, error)
}

type Coordinator interface {
	Authorize(q intent.PreCheckout) settlementservice.Decision
	Confirm(ctx context.Context, ev intent.Event) (*domain.Settlement, error)
}

type Composer interface {
	Compose(reply intent.Reply, chatID int64) composer.Outbound
	Thanks(st domain.Settlement, chatID int64) composer.Outbound
}

type Sender interface {
	SendText(chatID int64, text string, menu intent.Menu) error
	SendSettlementRequest(chatID int64, inv composer.Invoice) error
	AnswerPreCheckout(queryID string, ok bool, reason string) error
}

type Service struct {
	tabs        TabHandler
	coordinator Coordinator
	composer    Composer
	sender      Sender
	menus       []intent.Menu
}

func New(tabs TabHandler, coordinator Coordinator, composer Composer, sender Sender, menus *intent.Menus) *Service {
	return &Service{
		tabs:        tabs,
		coordinator: coordinator,
		composer:    composer,
		sender:      sender,
		menus:       menus.All(),
	}
}

// EventFromUpdate reduces a Telegram update. Updates the bot does not react to
// report false.
func EventFromUpdate(u tgbotapi.Update) (intent.Event, bool) {
	if q := u.PreCheckoutQuery; q != nil {
		ev := intent.Event{
			PreCheckout: &intent.PreCheckout{
				QueryID:     q.ID,
				Currency:    q.Currency,
				TotalAmount: int64(q.TotalAmount),
				Payload:     q.InvoicePayload,
			},
		}
		if q.From != nil {
			fillUser(&ev, q.From)
			ev.ChatID = q.From.ID
		}
		return ev, true
	}

	msg := u.Message
	if msg == nil || msg.From == nil || msg.Chat == nil {
		return intent.Event{}, false
	}

	ev := intent.Event{ChatID: msg.Chat.ID, Text: msg.Text}
	fillUser(&ev, msg.From)
	if msg.Sticker != nil {
		ev.Emoji = msg.Sticker.Emoji
	}
	if p := msg.SuccessfulPayment; p != nil {
		ev.Payment = &intent.PaymentNotice{
			ReceiptID:        p.ProviderPaymentChargeID,
			TelegramChargeID: p.TelegramPaymentChargeID,
			Currency:         p.Currency,
			TotalAmount:      int64(p.TotalAmount),
			Payload:          p.InvoicePayload,
		}
	}
	return ev, true
}

func fillUser(ev *intent.Event, u *tgbotapi.User) {
	ev.UserID = u.ID
	ev.Username = u.UserName
	ev.FirstName = u.FirstName
	ev.LastName = u.LastName
}

// HandleUpdate processes one webhook delivery. A returned error means nothing
// was committed and Telegram should redeliver.
func (s *Service) HandleUpdate(ctx context.Context, u tgbotapi.Update) error {
	ev, ok := EventFromUpdate(u)
	if !ok {
		zap.L().Debug("update ignored", zap.Int("update_id", u.UpdateID))
		return nil
	}

	action := intent.Classify(ev, s.menus...)
	switch action {
	case intent.AuthorizeSettlement:
		s.authorize(*ev.PreCheckout)
		return nil
	case intent.SettlementConfirmed:
		return s.confirm(ctx, ev)
	}

	reply, err := s.tabs.Handle(ctx, ev, action)
	if err != nil {
		return fmt.Errorf("can't handle %s: %w", action, err)
	}
	s.deliver(s.composer.Compose(*reply, ev.ChatID))
	return nil
}

func (s *Service) authorize(q intent.PreCheckout) {
	decision := s.coordinator.Authorize(q)
	if err := s.sender.AnswerPreCheckout(q.QueryID, decision.OK, decision.Reason); err != nil {
		zap.L().Error("can't answer pre-checkout query", zap.String("query_id", q.QueryID), zap.Error(err))
	}
}

func (s *Service) confirm(ctx context.Context, ev intent.Event) error {
	settlement, err := s.coordinator.Confirm(ctx, ev)
	switch {
	case errors.Is(err, settlementservice.ErrDuplicateReceipt):
		return nil
	case errors.Is(err, settlementservice.ErrInvalidPayload), errors.Is(err, settlementservice.ErrForeignPayload):
		zap.L().Warn("payment notice rejected", zap.Int64("user_id", ev.UserID), zap.Error(err))
		return nil
	case err != nil:
		return fmt.Errorf("can't confirm settlement: %w", err)
	}

	s.deliver(s.composer.Thanks(*settlement, ev.ChatID))
	return nil
}

func (s *Service) deliver(out composer.Outbound) {
	var err error
	if out.Invoice != nil {
		err = s.sender.SendSettlementRequest(out.ChatID, *out.Invoice)
	} else {
		err = s.sender.SendText(out.ChatID, out.Text, out.Menu)
	}
	if err != nil {
		zap.L().Error("can't deliver reply", zap.Int64("chat_id", out.ChatID), zap.Error(err))
	}
}
