package domain

import (
	"fmt"
	"time"
)

// Limits bounds the damage a tab may accrue before it has to be settled.
type Limits struct {
	// MaxDamage is exclusive: damage must stay strictly below it.
	MaxDamage    int64
	MaxUnitPrice int64
}

// Damage is the unsettled amount of the tab.
func (a Account) Damage() int64 {
	return a.DrinkCount * a.UnitPrice
}

// CanOrder reports whether one more drink keeps the tab below the ceiling.
func (l Limits) CanOrder(acc Account) bool {
	return (acc.DrinkCount+1)*acc.UnitPrice < l.MaxDamage
}

// CanReprice reports whether the tab may switch to the given unit price.
func (l Limits) CanReprice(acc Account, price int64) bool {
	if price <= 0 || price > l.MaxUnitPrice {
		return false
	}
	return acc.DrinkCount*price < l.MaxDamage
}

// CanSettle reports whether a settlement of total may be authorized.
func (l Limits) CanSettle(total int64) bool {
	return total > 0 && total < l.MaxDamage
}

func OrderPatch(acc Account) AccountPatch {
	count := acc.DrinkCount + 1
	return AccountPatch{DrinkCount: &count}
}

func RepricePatch(price int64) AccountPatch {
	return AccountPatch{UnitPrice: &price}
}

func ErasePatch() AccountPatch {
	var zero int64
	return AccountPatch{DrinkCount: &zero}
}

// SettlementPatch zeroes the tab and books amount as the latest settlement.
func SettlementPatch(acc Account, amount int64, at time.Time) AccountPatch {
	var zero int64
	total := acc.LifetimeTotal + amount
	return AccountPatch{
		DrinkCount:        &zero,
		LastSettledAt:     &at,
		LastSettledAmount: &amount,
		LifetimeTotal:     &total,
	}
}

// FeeSchedule estimates the provider fee. It is shown to the user only and never
// changes the settled amount.
type FeeSchedule struct {
	BasisPoints int64
	Fixed       int64
}

// Fee truncates to whole cents and never exceeds gross.
func (f FeeSchedule) Fee(gross int64) int64 {
	if gross <= 0 {
		return 0
	}
	fee := gross*f.BasisPoints/10000 + f.Fixed
	if fee > gross {
		return gross
	}
	return fee
}

// FormatMajor renders cents as "7.50".
func FormatMajor(cents int64) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return fmt.Sprintf("%s%d.%02d", sign, cents/100, cents%100)
}
