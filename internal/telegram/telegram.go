package telegram

import (
	"errors"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/GlebRadaev/deckelbot/internal/composer"
	"github.com/GlebRadaev/deckelbot/internal/intent"
	"github.com/GlebRadaev/deckelbot/pkg/clients"
)

var ErrRequestFailed = errors.New("telegram request failed")

type BotAPI interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
	Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error)
}

// NewBotAPI connects to the Bot API through the shared HTTP client.
func NewBotAPI(token string, client *clients.HTTPClient) (*tgbotapi.BotAPI, error) {
	bot, err := tgbotapi.NewBotAPIWithClient(token, tgbotapi.APIEndpoint, client)
	if err != nil {
		return nil, fmt.Errorf("can't connect to telegram: %w", err)
	}
	zap.L().Info("authorized on telegram", zap.String("bot", bot.Self.UserName))
	return bot, nil
}

type Sender struct {
	bot           BotAPI
	providerToken string
}

func New(bot BotAPI, providerToken string) *Sender {
	return &Sender{bot: bot, providerToken: providerToken}
}

// Keyboard renders a menu as a reply keyboard with one button per row.
func Keyboard(menu intent.Menu) any {
	if len(menu.Buttons) == 0 {
		return tgbotapi.NewRemoveKeyboard(false)
	}
	rows := make([][]tgbotapi.KeyboardButton, 0, len(menu.Buttons))
	for _, b := range menu.Buttons {
		rows = append(rows, tgbotapi.NewKeyboardButtonRow(tgbotapi.NewKeyboardButton(b.Label)))
	}
	return tgbotapi.NewReplyKeyboard(rows...)
}

func (s *Sender) SendText(chatID int64, text string, menu intent.Menu) error {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ReplyMarkup = Keyboard(menu)
	if _, err := s.bot.Send(msg); err != nil {
		return fmt.Errorf("can't send message to %d: %w", chatID, err)
	}
	return nil
}

func (s *Sender) SendSettlementRequest(chatID int64, inv composer.Invoice) error {
	prices := make([]tgbotapi.LabeledPrice, 0, len(inv.LineItems))
	for _, item := range inv.LineItems {
		prices = append(prices, tgbotapi.LabeledPrice{Label: item.Label, Amount: int(item.Amount)})
	}

	cfg := tgbotapi.NewInvoice(chatID, inv.Title, inv.Description, inv.Payload, s.providerToken, "", inv.Currency, prices)
	cfg.PhotoURL = inv.PhotoURL
	// An unset tip list is encoded as null, which Telegram refuses.
	cfg.SuggestedTipAmounts = []int{}
	if _, err := s.bot.Send(cfg); err != nil {
		return fmt.Errorf("can't send invoice to %d: %w", chatID, err)
	}
	return nil
}

// AnswerPreCheckout must be called within ten seconds of the query.
func (s *Sender) AnswerPreCheckout(queryID string, ok bool, reason string) error {
	cfg := tgbotapi.PreCheckoutConfig{PreCheckoutQueryID: queryID, OK: ok}
	if !ok {
		cfg.ErrorMessage = reason
	}
	return s.request(cfg)
}

func (s *Sender) RegisterWebhook(link string) error {
	wh, err := tgbotapi.NewWebhook(link)
	if err != nil {
		return fmt.Errorf("invalid webhook url: %w", err)
	}
	if err := s.request(wh); err != nil {
		return err
	}
	zap.L().Info("webhook registered")
	return nil
}

func (s *Sender) request(c tgbotapi.Chattable) error {
	resp, err := s.bot.Request(c)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrRequestFailed, err)
	}
	if resp != nil && !resp.Ok {
		return fmt.Errorf("%w: %s", ErrRequestFailed, resp.Description)
	}
	return nil
}
