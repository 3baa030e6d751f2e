package intent

import (
	"fmt"
	"strconv"
	"strings"
)

type MenuID int

const (
	MainMenu MenuID = iota
	PayConfirmMenu
	DeleteConfirmMenu
	OptionsMenu
	PriceMenu
)

// Button pairs an action with the exact label that triggers it.
type Button struct {
	Action Action
	Label  string
}

// Menu is an ordered list of buttons. The same list renders the keyboard and
// drives label matching.
type Menu struct {
	ID      MenuID
	Buttons []Button
}

type Menus struct {
	byID map[MenuID]Menu
}

// NewMenus builds the fixed menu set. priceChoices are in cents.
func NewMenus(priceChoices []int64) *Menus {
	prices := make([]Button, 0, len(priceChoices))
	for _, price := range priceChoices {
		prices = append(prices, Button{Action: SetNewPrice, Label: PriceLabel(price)})
	}

	menus := []Menu{
		{ID: MainMenu, Buttons: []Button{
			{Action: OrderDrink, Label: "🍺 Bring mir ein Bier! 🍺"},
			{Action: ShowDamage, Label: "😬 Was is mein Schaden? 😬"},
			{Action: RequestSettlement, Label: "🙈 Augen zu und zahlen. 💶"},
			{Action: ShowOptionsMenu, Label: "⚙ Optionen ⚙"},
		}},
		{ID: PayConfirmMenu, Buttons: []Button{
			{Action: ConfirmSettlement, Label: "✅ JA! Jetzt spenden ✅"},
			{Action: DeclineSettlement, Label: "❌ NEIN! Noch nicht spenden ❌"},
			{Action: EraseTab, Label: "👻 Zeche prellen... 🤫"},
		}},
		{ID: DeleteConfirmMenu, Buttons: []Button{
			{Action: ConfirmDeletion, Label: "✅ JA! Daten löschen ✅"},
			{Action: DeclineDeletion, Label: "❌ NEIN! Daten nicht löschen ❌"},
		}},
		{ID: OptionsMenu, Buttons: []Button{
			{Action: ShowPriceMenu, Label: "€ Preis ändern €"},
			{Action: ShowLastSettlement, Label: "⌚ Meine letzte Spende ⌚"},
			{Action: ShowLifetimeTotal, Label: "➕ Summe meiner Spenden ➕"},
			{Action: ShowGlobalTotal, Label: "➕➕Summe aller Spenden➕➕"},
			{Action: RequestDeletion, Label: "😱 Lösche meine Daten 😱"},
		}},
		{ID: PriceMenu, Buttons: prices},
	}

	byID := make(map[MenuID]Menu, len(menus))
	for _, m := range menus {
		byID[m.ID] = m
	}
	return &Menus{byID: byID}
}

func (m *Menus) Get(id MenuID) Menu {
	return m.byID[id]
}

// All returns every menu in a stable order.
func (m *Menus) All() []Menu {
	return []Menu{
		m.byID[MainMenu],
		m.byID[PayConfirmMenu],
		m.byID[DeleteConfirmMenu],
		m.byID[OptionsMenu],
		m.byID[PriceMenu],
	}
}

// PriceLabel renders 150 as "1,50€".
func PriceLabel(cents int64) string {
	return fmt.Sprintf("%d,%02d€", cents/100, cents%100)
}

// PriceFromLabel strips the currency symbol and separators and reads the rest
// as cents.
func PriceFromLabel(label string) (int64, error) {
	digits := strings.NewReplacer("€", "", ",", "", ".", "", " ", "").Replace(label)
	price, err := strconv.ParseInt(digits, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("malformed price label %q: %w", label, err)
	}
	return price, nil
}
