package intent

import "github.com/GlebRadaev/deckelbot/internal/domain"

type ReplyKind int

const (
	Welcome ReplyKind = iota
	TermsText
	DrinkOrdered
	DamageTooHigh
	DamageReport
	SettlementPrompt
	KeepDrinking
	SettlementInvoice
	NothingToSettle
	TabErased
	OptionsPrompt
	PricePrompt
	PriceChanged
	PriceRejected
	NeverSettled
	LastSettlement
	LifetimeTotal
	GlobalTotal
	NobodySettled
	DeletionPrompt
	DataKept
	DataDeleted
	NotUnderstood
	SettlementThanks
)

// nextMenu lists every kind that does not return to the main menu.
var nextMenu = map[ReplyKind]MenuID{
	SettlementPrompt: PayConfirmMenu,
	DeletionPrompt:   DeleteConfirmMenu,
	OptionsPrompt:    OptionsMenu,
	PricePrompt:      PriceMenu,
}

// NextMenu is the menu offered after a reply of this kind.
func (k ReplyKind) NextMenu() MenuID {
	if id, ok := nextMenu[k]; ok {
		return id
	}
	return MainMenu
}

// Reply is the outcome of one handled action, before any text is rendered.
type Reply struct {
	Kind        ReplyKind
	Account     domain.Account
	GlobalTotal int64
	Request     *domain.SettlementRequest
}
