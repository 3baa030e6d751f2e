package domain

import "time"

// Account is the running tab of one chat participant. All amounts are in cents.
type Account struct {
	ID                int64      `db:"id"`
	Username          string     `db:"username"`
	FirstName         string     `db:"first_name"`
	LastName          string     `db:"last_name"`
	DrinkCount        int64      `db:"drink_count"`
	UnitPrice         int64      `db:"unit_price"`
	LastSettledAt     *time.Time `db:"last_settled_at"`
	LastSettledAmount int64      `db:"last_settled_amount"`
	LifetimeTotal     int64      `db:"lifetime_total"`
	CreatedAt         time.Time  `db:"created_at"`
}

// AccountPatch holds the fields changed by one action. Nil fields are left untouched.
type AccountPatch struct {
	DrinkCount        *int64
	UnitPrice         *int64
	LastSettledAt     *time.Time
	LastSettledAmount *int64
	LifetimeTotal     *int64
}

func (p AccountPatch) IsEmpty() bool {
	return p.DrinkCount == nil && p.UnitPrice == nil && p.LastSettledAt == nil &&
		p.LastSettledAmount == nil && p.LifetimeTotal == nil
}

// Apply returns a copy of the account with the patch applied.
func (p AccountPatch) Apply(acc Account) Account {
	if p.DrinkCount != nil {
		acc.DrinkCount = *p.DrinkCount
	}
	if p.UnitPrice != nil {
		acc.UnitPrice = *p.UnitPrice
	}
	if p.LastSettledAt != nil {
		at := *p.LastSettledAt
		acc.LastSettledAt = &at
	}
	if p.LastSettledAmount != nil {
		acc.LastSettledAmount = *p.LastSettledAmount
	}
	if p.LifetimeTotal != nil {
		acc.LifetimeTotal = *p.LifetimeTotal
	}
	return acc
}

// Settlement is one completed payment. ReceiptID is unique per provider charge.
type Settlement struct {
	ID               int64     `db:"id"`
	AccountID        int64     `db:"account_id"`
	ReceiptID        string    `db:"receipt_id"`
	TelegramChargeID string    `db:"telegram_charge_id"`
	Amount           int64     `db:"amount"`
	Fee              int64     `db:"fee"`
	SettledAt        time.Time `db:"settled_at"`
	TransferID       *string   `db:"transfer_id"`
}

// SettlementPayload travels through the payment provider and back.
type SettlementPayload struct {
	AccountID int64
	Amount    int64
}

// SettlementRequest is what the bot asks the user to pay.
type SettlementRequest struct {
	Payload  string
	Amount   int64
	Fee      int64
	Currency string
}

// ChargeDetail is the provider's view of a completed charge.
type ChargeDetail struct {
	Amount int64
	Net    int64
	Fee    int64
}
