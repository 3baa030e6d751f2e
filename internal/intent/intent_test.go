package intent

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassify(t *testing.T) {
	menus := NewMenus([]int64{50, 100, 150, 200})

	tests := []struct {
		name  string
		event Event
		want  Action
	}{
		{
			name:  "Payment notice wins over text",
			event: Event{Text: "🍺 Bring mir ein Bier! 🍺", Payment: &PaymentNotice{ReceiptID: "R1"}},
			want:  SettlementConfirmed,
		},
		{
			name:  "Pre-checkout query",
			event: Event{PreCheckout: &PreCheckout{QueryID: "q1"}},
			want:  AuthorizeSettlement,
		},
		{name: "Start command", event: Event{Text: "/start"}, want: Start},
		{name: "Terms command", event: Event{Text: "/terms"}, want: Terms},
		{name: "Main menu button", event: Event{Text: "🍺 Bring mir ein Bier! 🍺"}, want: OrderDrink},
		{name: "Pay confirm button", event: Event{Text: "✅ JA! Jetzt spenden ✅"}, want: ConfirmSettlement},
		{name: "Erase tab button", event: Event{Text: "👻 Zeche prellen... 🤫"}, want: EraseTab},
		{name: "Delete confirm button", event: Event{Text: "✅ JA! Daten löschen ✅"}, want: ConfirmDeletion},
		{name: "Options button", event: Event{Text: "➕➕Summe aller Spenden➕➕"}, want: ShowGlobalTotal},
		{name: "Price button", event: Event{Text: "1,50€"}, want: SetNewPrice},
		{name: "Near miss is not fuzzy matched", event: Event{Text: "Bring mir ein Bier!"}, want: Unknown},
		{name: "Sticker emoji", event: Event{Emoji: "🍺"}, want: Unknown},
		{name: "Empty event", event: Event{}, want: Unknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.event, menus.All()...))
		})
	}
}

func TestClassify_OnlySuppliedMenus(t *testing.T) {
	menus := NewMenus([]int64{150})

	ev := Event{Text: "✅ JA! Jetzt spenden ✅"}

	assert.Equal(t, Unknown, Classify(ev, menus.Get(MainMenu)))
	assert.Equal(t, ConfirmSettlement, Classify(ev, menus.Get(PayConfirmMenu)))
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, "hello", Normalize(Event{Text: "hello", Emoji: "🍺"}))
	assert.Equal(t, "🍺", Normalize(Event{Emoji: "🍺"}))
	assert.Equal(t, NoText, Normalize(Event{}))
}

func TestPriceFromLabel(t *testing.T) {
	tests := []struct {
		label     string
		want      int64
		expectErr bool
	}{
		{label: "0,50€", want: 50},
		{label: "1,00€", want: 100},
		{label: "1,50€", want: 150},
		{label: "2.00 €", want: 200},
		{label: "abc", expectErr: true},
		{label: "", expectErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			got, err := PriceFromLabel(tt.label)
			if tt.expectErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPriceLabelRoundTrip(t *testing.T) {
	menus := NewMenus([]int64{50, 100, 150, 200})
	for _, button := range menus.Get(PriceMenu).Buttons {
		price, err := PriceFromLabel(button.Label)
		require.NoError(t, err)
		assert.Equal(t, button.Label, PriceLabel(price))
	}
}

func TestMenusHaveUniqueLabels(t *testing.T) {
	menus := NewMenus([]int64{50, 100, 150, 200})
	seen := map[string]MenuID{}
	for _, menu := range menus.All() {
		require.NotEmpty(t, menu.Buttons)
		for _, button := range menu.Buttons {
			_, dup := seen[button.Label]
			assert.False(t, dup, "duplicate label %q", button.Label)
			seen[button.Label] = menu.ID
		}
	}
}

func TestReplyKind_NextMenu(t *testing.T) {
	tests := []struct {
		kind ReplyKind
		want MenuID
	}{
		{kind: SettlementPrompt, want: PayConfirmMenu},
		{kind: DeletionPrompt, want: DeleteConfirmMenu},
		{kind: OptionsPrompt, want: OptionsMenu},
		{kind: PricePrompt, want: PriceMenu},
		{kind: Welcome, want: MainMenu},
		{kind: DamageTooHigh, want: MainMenu},
		{kind: PriceRejected, want: MainMenu},
		{kind: SettlementThanks, want: MainMenu},
		{kind: NotUnderstood, want: MainMenu},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.kind.NextMenu())
	}
}

func TestAction_String(t *testing.T) {
	assert.Equal(t, "OrderDrink", OrderDrink.String())
	assert.Equal(t, "Unknown", Action(999).String())
}
