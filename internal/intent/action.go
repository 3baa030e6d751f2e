package intent

// Action is the meaning of one inbound event.
type Action int

const (
	Unknown Action = iota
	Start
	Terms
	OrderDrink
	ShowDamage
	RequestSettlement
	DeclineSettlement
	ConfirmSettlement
	EraseTab
	ShowOptionsMenu
	ShowPriceMenu
	SetNewPrice
	ShowLastSettlement
	ShowLifetimeTotal
	ShowGlobalTotal
	RequestDeletion
	DeclineDeletion
	ConfirmDeletion
	AuthorizeSettlement
	SettlementConfirmed
)

var actionNames = map[Action]string{
	Unknown:             "Unknown",
	Start:               "Start",
	Terms:               "Terms",
	OrderDrink:          "OrderDrink",
	ShowDamage:          "ShowDamage",
	RequestSettlement:   "RequestSettlement",
	DeclineSettlement:   "DeclineSettlement",
	ConfirmSettlement:   "ConfirmSettlement",
	EraseTab:            "EraseTab",
	ShowOptionsMenu:     "ShowOptionsMenu",
	ShowPriceMenu:       "ShowPriceMenu",
	SetNewPrice:         "SetNewPrice",
	ShowLastSettlement:  "ShowLastSettlement",
	ShowLifetimeTotal:   "ShowLifetimeTotal",
	ShowGlobalTotal:     "ShowGlobalTotal",
	RequestDeletion:     "RequestDeletion",
	DeclineDeletion:     "DeclineDeletion",
	ConfirmDeletion:     "ConfirmDeletion",
	AuthorizeSettlement: "AuthorizeSettlement",
	SettlementConfirmed: "SettlementConfirmed",
}

func (a Action) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return "Unknown"
}

const (
	CommandStart = "/start"
	CommandTerms = "/terms"
	NoText       = "no text"
)
