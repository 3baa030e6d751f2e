package composer

import (
	"fmt"
	"time"
	_ "time/tzdata"

	"github.com/GlebRadaev/deckelbot/internal/config"
	"github.com/GlebRadaev/deckelbot/internal/domain"
	"github.com/GlebRadaev/deckelbot/internal/intent"
)

type LineItem struct {
	Label  string
	Amount int64
}

// Invoice is a payment request rendered for Telegram Payments.
type Invoice struct {
	Title       string
	Description string
	Payload     string
	Currency    string
	PhotoURL    string
	LineItems   []LineItem
}

// Outbound is one message to a chat. Invoice is set only for settlement requests.
type Outbound struct {
	ChatID  int64
	Text    string
	Menu    intent.Menu
	Invoice *Invoice
}

type Composer struct {
	menus     *intent.Menus
	maxDamage int64
	location  *time.Location
	photoURL  string
}

func New(cfg *config.Config, menus *intent.Menus) (*Composer, error) {
	location, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		return nil, fmt.Errorf("can't load timezone %q: %w", cfg.Timezone, err)
	}
	return &Composer{
		menus:     menus,
		maxDamage: cfg.MaxDamageAllowed,
		location:  location,
		photoURL:  cfg.InvoicePhotoURL,
	}, nil
}

func (c *Composer) Compose(reply intent.Reply, chatID int64) Outbound {
	out := Outbound{
		ChatID: chatID,
		Text:   c.text(reply),
		Menu:   c.menus.Get(reply.Kind.NextMenu()),
	}
	if reply.Kind == intent.SettlementInvoice && reply.Request != nil {
		out.Invoice = c.invoice(reply.Request)
	}
	return out
}

// Thanks confirms a booked settlement.
func (c *Composer) Thanks(st domain.Settlement, chatID int64) Outbound {
	return Outbound{
		ChatID: chatID,
		Text:   fmt.Sprintf(thanksText, domain.FormatMajor(st.Amount)),
		Menu:   c.menus.Get(intent.SettlementThanks.NextMenu()),
	}
}

func (c *Composer) text(reply intent.Reply) string {
	acc := reply.Account
	money := domain.FormatMajor

	switch reply.Kind {
	case intent.Welcome:
		return welcomeText
	case intent.TermsText:
		return termsText
	case intent.DrinkOrdered:
		return fmt.Sprintf(drinkOrderedText, acc.DrinkCount)
	case intent.DamageTooHigh:
		return fmt.Sprintf(damageTooHighText, money(acc.Damage()), money(c.maxDamage))
	case intent.DamageReport:
		return fmt.Sprintf(damageReportText, acc.DrinkCount, money(acc.UnitPrice), money(acc.Damage()))
	case intent.SettlementPrompt:
		return fmt.Sprintf(settlementPromptText, money(acc.Damage()))
	case intent.KeepDrinking:
		return keepDrinkingText
	case intent.SettlementInvoice:
		if reply.Request == nil {
			return ""
		}
		return fmt.Sprintf(invoiceDescription, money(reply.Request.Amount), money(reply.Request.Fee))
	case intent.NothingToSettle:
		return nothingToSettleText
	case intent.TabErased:
		return tabErasedText
	case intent.OptionsPrompt:
		return optionsPromptText
	case intent.PricePrompt:
		return pricePromptText
	case intent.PriceChanged:
		return fmt.Sprintf(priceChangedText, money(acc.UnitPrice))
	case intent.PriceRejected:
		return fmt.Sprintf(priceRejectedText, money(c.maxDamage))
	case intent.NeverSettled:
		return neverSettledText
	case intent.LastSettlement:
		settledAt := "?"
		if acc.LastSettledAt != nil {
			settledAt = acc.LastSettledAt.In(c.location).Format(settledAtLayout)
		}
		return fmt.Sprintf(lastSettlementText, settledAt, money(acc.LastSettledAmount))
	case intent.LifetimeTotal:
		return fmt.Sprintf(lifetimeTotalText, money(acc.LifetimeTotal))
	case intent.GlobalTotal:
		return fmt.Sprintf(globalTotalText, money(reply.GlobalTotal))
	case intent.NobodySettled:
		return nobodySettledText
	case intent.DeletionPrompt:
		return deletionPromptText
	case intent.DataKept:
		return dataKeptText
	case intent.DataDeleted:
		return dataDeletedText
	case intent.SettlementThanks:
		return fmt.Sprintf(thanksText, money(acc.LastSettledAmount))
	default:
		return notUnderstoodText
	}
}

// invoice splits the gross amount into net and fee lines. Telegram rejects
// non-positive prices, so a fee that eats the whole amount yields one gross line.
func (c *Composer) invoice(req *domain.SettlementRequest) *Invoice {
	items := []LineItem{{Label: grossLineLabel, Amount: req.Amount}}
	if net := req.Amount - req.Fee; net > 0 && req.Fee > 0 {
		items = []LineItem{
			{Label: netLineLabel, Amount: net},
			{Label: feeLineLabel, Amount: req.Fee},
		}
	}

	return &Invoice{
		Title:       invoiceTitle,
		Description: fmt.Sprintf(invoiceDescription, domain.FormatMajor(req.Amount), domain.FormatMajor(req.Fee)),
		Payload:     req.Payload,
		Currency:    req.Currency,
		PhotoURL:    c.photoURL,
		LineItems:   items,
	}
}

// Total sums the line items.
func (i *Invoice) Total() int64 {
	var total int64
	for _, item := range i.LineItems {
		total += item.Amount
	}
	return total
}
