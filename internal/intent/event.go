package intent

// Event is one inbound update reduced to what the bot needs.
type Event struct {
	UserID    int64
	ChatID    int64
	Username  string
	FirstName string
	LastName  string
	Text      string
	Emoji     string

	PreCheckout *PreCheckout
	Payment     *PaymentNotice
}

// PreCheckout asks whether a pending payment may go through.
type PreCheckout struct {
	QueryID     string
	Currency    string
	TotalAmount int64
	Payload     string
}

// PaymentNotice reports a completed payment.
type PaymentNotice struct {
	ReceiptID        string
	TelegramChargeID string
	Currency         string
	TotalAmount      int64
	Payload          string
}

// Normalize returns the text, the sticker emoji, or NoText.
func Normalize(ev Event) string {
	switch {
	case ev.Text != "":
		return ev.Text
	case ev.Emoji != "":
		return ev.Emoji
	default:
		return NoText
	}
}

// Classify maps an event to an action. Labels are matched exactly against
// the supplied menus in order.
func Classify(ev Event, menus ...Menu) Action {
	if ev.Payment != nil {
		return SettlementConfirmed
	}
	if ev.PreCheckout != nil {
		return AuthorizeSettlement
	}

	text := Normalize(ev)
	switch text {
	case CommandStart:
		return Start
	case CommandTerms:
		return Terms
	}

	for _, menu := range menus {
		for _, button := range menu.Buttons {
			if button.Label == text {
				return button.Action
			}
		}
	}
	return Unknown
}
