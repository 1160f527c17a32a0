package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// MenuItem is shared by reference between the menu and every order that
// contains it, so price and availability changes are seen everywhere.
type MenuItem struct {
	Name      string
	Price     decimal.Decimal
	Available bool
}

func NewMenuItem(name string, price decimal.Decimal) *MenuItem {
	return &MenuItem{
		Name:      name,
		Price:     price,
		Available: true,
	}
}

func (m *MenuItem) MarkAsAvailable() {
	m.Available = true
}

func (m *MenuItem) MarkAsUnavailable() {
	m.Available = false
}

func (m *MenuItem) SetPrice(price decimal.Decimal) {
	m.Price = price
}

func (m *MenuItem) String() string {
	return fmt.Sprintf("The %s dish costs $%s", m.Name, m.Price.StringFixed(2))
}
