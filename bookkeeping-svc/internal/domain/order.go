package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

type Order struct {
	Number      string
	Items       []*MenuItem
	TotalAmount decimal.Decimal
}

type OrderSummary struct {
	Number    string          `json:"order_number"`
	ItemCount int             `json:"item_count"`
	Items     []string        `json:"items"`
	Total     decimal.Decimal `json:"total"`
}

func NewOrder(number string) *Order {
	return &Order{
		Number:      number,
		Items:       []*MenuItem{},
		TotalAmount: decimal.Zero,
	}
}

func (o *Order) AddItem(item *MenuItem) {
	o.Items = append(o.Items, item)
	o.CalculateTotal()
}

// RemoveItem drops the first occurrence of item, compared by identity.
func (o *Order) RemoveItem(item *MenuItem) error {
	for i, current := range o.Items {
		if current == item {
			o.Items = append(o.Items[:i:i], o.Items[i+1:]...)
			o.CalculateTotal()
			return nil
		}
	}
	name := "<nil>"
	if item != nil {
		name = item.Name
	}
	return fmt.Errorf("%w: item %s in order %s", ErrNotFound, name, o.Number)
}

func (o *Order) CalculateTotal() decimal.Decimal {
	total := decimal.Zero
	for _, item := range o.Items {
		total = total.Add(item.Price)
	}
	o.TotalAmount = total
	return total
}

// Total recalculates before returning so a menu price change is reflected.
func (o *Order) Total() decimal.Decimal {
	return o.CalculateTotal()
}

func (o *Order) ItemNames() []string {
	names := make([]string, 0, len(o.Items))
	for _, item := range o.Items {
		names = append(names, item.Name)
	}
	return names
}

func (o *Order) Summary() OrderSummary {
	return OrderSummary{
		Number:    o.Number,
		ItemCount: len(o.Items),
		Items:     o.ItemNames(),
		Total:     o.Total(),
	}
}

func (o *Order) String() string {
	return fmt.Sprintf("Order #%s, Total Amount: %s, Items: %v", o.Number, o.Total().StringFixed(2), o.ItemNames())
}
