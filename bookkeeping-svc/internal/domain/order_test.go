package domain

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dish(name, price string) *MenuItem {
	return NewMenuItem(name, decimal.RequireFromString(price))
}

func TestOrder_TotalTracksMutations(t *testing.T) {
	burger := dish("Burger", "10.99")
	pasta := dish("Pasta", "12.99")

	tests := []struct {
		name      string
		apply     func(o *Order) error
		wantItems []string
		wantTotal string
	}{
		{
			name:      "empty order",
			apply:     func(o *Order) error { return nil },
			wantItems: []string{},
			wantTotal: "0.00",
		},
		{
			name: "two dishes",
			apply: func(o *Order) error {
				o.AddItem(burger)
				o.AddItem(pasta)
				return nil
			},
			wantItems: []string{"Burger", "Pasta"},
			wantTotal: "23.98",
		},
		{
			name: "duplicates kept in insertion order",
			apply: func(o *Order) error {
				o.AddItem(pasta)
				o.AddItem(burger)
				o.AddItem(pasta)
				return nil
			},
			wantItems: []string{"Pasta", "Burger", "Pasta"},
			wantTotal: "36.97",
		},
		{
			name: "remove first occurrence only",
			apply: func(o *Order) error {
				o.AddItem(pasta)
				o.AddItem(burger)
				o.AddItem(pasta)
				return o.RemoveItem(pasta)
			},
			wantItems: []string{"Burger", "Pasta"},
			wantTotal: "23.98",
		},
		{
			name: "remove everything",
			apply: func(o *Order) error {
				o.AddItem(burger)
				return o.RemoveItem(burger)
			},
			wantItems: []string{},
			wantTotal: "0.00",
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			order := NewOrder("A1")
			require.NoError(t, testCase.apply(order))

			assert.Equal(t, testCase.wantItems, order.ItemNames())
			assert.Equal(t, testCase.wantTotal, order.TotalAmount.StringFixed(2))
			assert.Equal(t, testCase.wantTotal, order.CalculateTotal().StringFixed(2))
		})
	}
}

func TestOrder_RemoveMissingItemLeavesOrderUntouched(t *testing.T) {
	burger := dish("Burger", "10.99")
	soup := dish("Soup", "4.50")
	lookalike := dish("Burger", "10.99")

	order := NewOrder("A1")
	order.AddItem(burger)

	for _, item := range []*MenuItem{soup, lookalike, nil} {
		err := order.RemoveItem(item)
		assert.True(t, errors.Is(err, ErrNotFound))
		assert.Equal(t, []string{"Burger"}, order.ItemNames())
		assert.Equal(t, "10.99", order.TotalAmount.StringFixed(2))
	}
}

func TestOrder_TotalFollowsCurrentPrice(t *testing.T) {
	burger := dish("Burger", "10.99")
	order := NewOrder("A1")
	order.AddItem(burger)
	order.AddItem(burger)

	burger.SetPrice(decimal.RequireFromString("12.50"))

	assert.Equal(t, "25.00", order.Total().StringFixed(2))
	assert.Equal(t, "Order #A1, Total Amount: 25.00, Items: [Burger Burger]", order.String())
}

func TestOrder_Summary(t *testing.T) {
	order := NewOrder("B7")
	order.AddItem(dish("Pasta", "12.99"))

	summary := order.Summary()
	assert.Equal(t, "B7", summary.Number)
	assert.Equal(t, 1, summary.ItemCount)
	assert.Equal(t, []string{"Pasta"}, summary.Items)
	assert.Equal(t, "12.99", summary.Total.StringFixed(2))
}
