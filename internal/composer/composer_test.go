package composer

import (
	"testing"
	"time"

	"github.com/GlebRadaev/deckelbot/internal/config"
	"github.com/GlebRadaev/deckelbot/internal/domain"
	"github.com/GlebRadaev/deckelbot/internal/intent"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newComposer(t *testing.T) *Composer {
	cfg := &config.Config{
		MaxDamageAllowed: 1499,
		Timezone:         "Europe/Berlin",
		InvoicePhotoURL:  "https://example.com/logo.png",
	}
	c, err := New(cfg, intent.NewMenus([]int64{50, 100, 150, 200}))
	require.NoError(t, err)
	return c
}

func TestNew_UnknownTimezone(t *testing.T) {
	_, err := New(&config.Config{Timezone: "Mars/Olympus"}, intent.NewMenus(nil))
	assert.Error(t, err)
}

func TestComposer_Compose(t *testing.T) {
	c := newComposer(t)
	settledAt := time.Date(2024, 5, 1, 18, 30, 0, 0, time.UTC)

	tests := []struct {
		name         string
		reply        intent.Reply
		expectedText string
		expectedMenu intent.MenuID
	}{
		{
			name:         "Drink ordered",
			reply:        intent.Reply{Kind: intent.DrinkOrdered, Account: domain.Account{DrinkCount: 3, UnitPrice: 150}},
			expectedText: "👍 Ich schreib's auf deinen Deckel.\n🍻 Bisher sind es 3 Biers",
			expectedMenu: intent.MainMenu,
		},
		{
			name:         "Damage too high",
			reply:        intent.Reply{Kind: intent.DamageTooHigh, Account: domain.Account{DrinkCount: 9, UnitPrice: 150}},
			expectedText: "🤔 Du hast schon 13.50€ auf dem Deckel.\n💰Der maximal erlaubte Schaden beträgt 14.99€.\n💳 Ich muss leider erst abrechnen bevor du mehr bestellen kannst.",
			expectedMenu: intent.MainMenu,
		},
		{
			name:         "Damage report",
			reply:        intent.Reply{Kind: intent.DamageReport, Account: domain.Account{DrinkCount: 5, UnitPrice: 150}},
			expectedText: "Du hast bisher 5 Biers 🍻 bestellt.\nBeim aktuellen Preis 💶 von 1.50€ beträgt dein derzeitiger Deckel insgesamt 7.50€.",
			expectedMenu: intent.MainMenu,
		},
		{
			name:         "Settlement prompt",
			reply:        intent.Reply{Kind: intent.SettlementPrompt, Account: domain.Account{DrinkCount: 5, UnitPrice: 150}},
			expectedText: "💶 Dein derzeitiger Schaden beträgt 7.50€. 💶\nMöchtest du wirklich zahlen?",
			expectedMenu: intent.PayConfirmMenu,
		},
		{
			name:         "Price changed",
			reply:        intent.Reply{Kind: intent.PriceChanged, Account: domain.Account{UnitPrice: 100}},
			expectedText: "Alles klar, jedes Getränk kostet jetzt 1.00€",
			expectedMenu: intent.MainMenu,
		},
		{
			name:         "Price rejected",
			reply:        intent.Reply{Kind: intent.PriceRejected},
			expectedText: "Sorry, aber diese Erhöhung würde den zulässigen Schaden von 14.99€ übersteigen.\nBitte zahle erst oder wähle einen anderen Preis.",
			expectedMenu: intent.MainMenu,
		},
		{
			name: "Last settlement in local time",
			reply: intent.Reply{Kind: intent.LastSettlement, Account: domain.Account{
				LastSettledAt: &settledAt, LastSettledAmount: 750,
			}},
			expectedText: "Deine letzte Spende war am 01.05.2024 um 20:30h und betrug 7.50€.",
			expectedMenu: intent.MainMenu,
		},
		{
			name:         "Lifetime total",
			reply:        intent.Reply{Kind: intent.LifetimeTotal, Account: domain.Account{LifetimeTotal: 1050}},
			expectedText: "Insgesamt hast du 10.50€ gespendet.",
			expectedMenu: intent.MainMenu,
		},
		{
			name:         "Global total",
			reply:        intent.Reply{Kind: intent.GlobalTotal, GlobalTotal: 123456},
			expectedText: "Zusammen haben wir bisher 1234.56€ gespendet.",
			expectedMenu: intent.MainMenu,
		},
		{
			name:         "Nobody settled",
			reply:        intent.Reply{Kind: intent.NobodySettled},
			expectedText: "Bisher wurde noch nicht gespendet",
			expectedMenu: intent.MainMenu,
		},
		{
			name:         "Options",
			reply:        intent.Reply{Kind: intent.OptionsPrompt},
			expectedText: "Was kann ich für dich tun?",
			expectedMenu: intent.OptionsMenu,
		},
		{
			name:         "Price menu",
			reply:        intent.Reply{Kind: intent.PricePrompt},
			expectedText: "Wähle einen neuen Getränkepreis.",
			expectedMenu: intent.PriceMenu,
		},
		{
			name:         "Deletion prompt",
			reply:        intent.Reply{Kind: intent.DeletionPrompt},
			expectedText: "Möchtest du deine Userdaten wirklich löschen?",
			expectedMenu: intent.DeleteConfirmMenu,
		},
		{
			name:         "Not understood",
			reply:        intent.Reply{Kind: intent.NotUnderstood},
			expectedText: "🤷 Ehm, sorry darauf weiß ich grade keine Antwort...",
			expectedMenu: intent.MainMenu,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := c.Compose(tt.reply, 99)
			assert.Equal(t, int64(99), out.ChatID)
			assert.Equal(t, tt.expectedText, out.Text)
			assert.Equal(t, tt.expectedMenu, out.Menu.ID)
			assert.Nil(t, out.Invoice)
		})
	}
}

func TestComposer_WelcomeAndTerms(t *testing.T) {
	c := newComposer(t)

	welcome := c.Compose(intent.Reply{Kind: intent.Welcome}, 1)
	assert.Contains(t, welcome.Text, "Willkommen Mensch!")
	assert.Len(t, welcome.Menu.Buttons, 4)

	terms := c.Compose(intent.Reply{Kind: intent.TermsText}, 1)
	assert.Contains(t, terms.Text, "NUTZUNGSBEDINGUNGEN")
}

func TestComposer_Invoice(t *testing.T) {
	c := newComposer(t)

	tests := []struct {
		name          string
		request       domain.SettlementRequest
		expectedItems []LineItem
	}{
		{
			name:    "Net and fee lines",
			request: domain.SettlementRequest{Payload: "p", Amount: 750, Fee: 35, Currency: "EUR"},
			expectedItems: []LineItem{
				{Label: "Gesamt-Netto", Amount: 715},
				{Label: "Stripe-Gebühr", Amount: 35},
			},
		},
		{
			name:          "Fee eats the whole amount",
			request:       domain.SettlementRequest{Payload: "p", Amount: 20, Fee: 20, Currency: "EUR"},
			expectedItems: []LineItem{{Label: "Spende", Amount: 20}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := tt.request
			out := c.Compose(intent.Reply{Kind: intent.SettlementInvoice, Request: &req}, 5)

			require.NotNil(t, out.Invoice)
			assert.Equal(t, "Spendenrechnung", out.Invoice.Title)
			assert.Equal(t, "p", out.Invoice.Payload)
			assert.Equal(t, "EUR", out.Invoice.Currency)
			assert.Equal(t, "https://example.com/logo.png", out.Invoice.PhotoURL)
			assert.Equal(t, tt.expectedItems, out.Invoice.LineItems)
			assert.Equal(t, req.Amount, out.Invoice.Total())
			assert.Equal(t, out.Text, out.Invoice.Description)
		})
	}

	req := domain.SettlementRequest{Amount: 750, Fee: 35}
	out := c.Compose(intent.Reply{Kind: intent.SettlementInvoice, Request: &req}, 5)
	assert.Equal(t, "Spende in Höhe von 7.50€ an deine Lieblingskneipe.\n(Der Betrag enthält eine Gebühr von 0.35€, der von dem Payment-Provider Stripe erhoben wird.)", out.Invoice.Description)
}

func TestComposer_Thanks(t *testing.T) {
	c := newComposer(t)

	out := c.Thanks(domain.Settlement{Amount: 750}, 7)
	assert.Equal(t, int64(7), out.ChatID)
	assert.Equal(t, "🙏 Danke für deine Spende 🙏\n💶 in Höhe von 7.50€ 💶\n🦸 Du bist ein Retter! 🦸", out.Text)
	assert.Equal(t, intent.MainMenu, out.Menu.ID)
}
