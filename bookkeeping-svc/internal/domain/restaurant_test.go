package domain

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seededRestaurant() *Restaurant {
	r := NewRestaurant()
	r.AddTable(NewTable(1, 4))
	r.AddTable(NewTable(2, 2))
	r.AddMenuItem(dish("Burger", "10.99"))
	r.AddMenuItem(dish("Pasta", "12.99"))
	return r
}

func TestRestaurant_OrderScenario(t *testing.T) {
	r := seededRestaurant()

	burger, err := r.FindMenuItem("Burger")
	require.NoError(t, err)
	pasta, err := r.FindMenuItem("Pasta")
	require.NoError(t, err)

	order := NewOrder("A1")
	order.AddItem(burger)
	order.AddItem(pasta)
	r.TakeOrder(order)

	assert.Equal(t, "23.98", order.TotalAmount.StringFixed(2))
	assert.Equal(t, []string{"Order #A1: 2 items, Total: 23.98"}, r.ListOrders())
}

func TestRestaurant_ListOrdersKeepsInsertionOrder(t *testing.T) {
	r := seededRestaurant()
	assert.Equal(t, []string{NoCurrentOrders}, r.ListOrders())
	assert.Empty(t, r.OrderSummaries())

	for _, number := range []string{"3", "1", "2"} {
		r.TakeOrder(NewOrder(number))
	}

	assert.Equal(t, []string{
		"Order #3: 0 items, Total: 0.00",
		"Order #1: 0 items, Total: 0.00",
		"Order #2: 0 items, Total: 0.00",
	}, r.ListOrders())
}

func TestRestaurant_ReserveTable(t *testing.T) {
	at := time.Date(2026, 10, 18, 20, 0, 0, 0, time.UTC)

	tests := []struct {
		name        string
		tableNumber int
		prepare     func(r *Restaurant)
		wantErr     error
		wantMessage string
	}{
		{
			name:        "free table",
			tableNumber: 1,
			prepare:     func(r *Restaurant) {},
			wantMessage: "Reservation for Alice at Table 1 is confirmed.",
		},
		{
			name:        "unknown table",
			tableNumber: 9,
			prepare:     func(r *Restaurant) {},
			wantErr:     ErrNotFound,
		},
		{
			name:        "table already taken",
			tableNumber: 1,
			prepare: func(r *Restaurant) {
				_, _ = r.ReserveTable("Bob", 1, at)
			},
			wantErr: ErrAlreadyReserved,
		},
		{
			name:        "other table taken does not matter",
			tableNumber: 2,
			prepare: func(r *Restaurant) {
				_, _ = r.ReserveTable("Bob", 1, at)
			},
			wantMessage: "Reservation for Alice at Table 2 is confirmed.",
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			r := seededRestaurant()
			testCase.prepare(r)
			before := len(r.Reservations())

			message, err := r.ReserveTable("Alice", testCase.tableNumber, at)

			if testCase.wantErr != nil {
				assert.True(t, errors.Is(err, testCase.wantErr), "got %v", err)
				assert.Empty(t, message)
				assert.Len(t, r.Reservations(), before)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, testCase.wantMessage, message)
			assert.Len(t, r.Reservations(), before+1)

			table, err := r.FindTable(testCase.tableNumber)
			require.NoError(t, err)
			assert.True(t, table.IsReserved())
		})
	}
}

func TestRestaurant_SecondReservationIsRejected(t *testing.T) {
	r := seededRestaurant()
	at := time.Date(2026, 10, 18, 20, 0, 0, 0, time.UTC)

	message, err := r.ReserveTable("Alice", 1, at)
	require.NoError(t, err)
	assert.Contains(t, message, "Alice")
	assert.Contains(t, message, "Table 1")

	_, err = r.ReserveTable("Carol", 1, at)
	assert.True(t, errors.Is(err, ErrAlreadyReserved))

	assert.Equal(t, []string{"Reservation for Alice at Table 1 with 4 seats on 2026-10-18 20:00:00."}, r.ListReservations())
}

func TestRestaurant_ListReservationsEmpty(t *testing.T) {
	assert.Equal(t, []string{NoCurrentReservations}, NewRestaurant().ListReservations())
}

func TestRestaurant_RemoveMenuItem(t *testing.T) {
	r := seededRestaurant()

	_, err := r.RemoveMenuItem("Soup")
	assert.True(t, errors.Is(err, ErrNotFound))
	assert.Len(t, r.Menu(), 2)

	message, err := r.RemoveMenuItem("Burger")
	require.NoError(t, err)
	assert.Equal(t, "Burger has been removed from the menu", message)
	require.Len(t, r.Menu(), 1)
	assert.Equal(t, "Pasta", r.Menu()[0].Name)
}

func TestRestaurant_DuplicateNamesRemoveFirst(t *testing.T) {
	r := NewRestaurant()
	first := dish("Soup", "4.00")
	second := dish("Soup", "5.00")
	r.AddMenuItem(first)
	r.AddMenuItem(second)

	_, err := r.RemoveMenuItem("Soup")
	require.NoError(t, err)
	assert.Equal(t, []*MenuItem{second}, r.Menu())
}

func TestRestaurant_MenuMutations(t *testing.T) {
	r := seededRestaurant()
	burger, _ := r.FindMenuItem("Burger")
	order := NewOrder("A1")
	order.AddItem(burger)
	r.TakeOrder(order)

	item, err := r.SetMenuItemAvailability("Burger", false)
	require.NoError(t, err)
	assert.False(t, item.Available)

	_, err = r.UpdateMenuItemPrice("Burger", decimal.RequireFromString("9.50"))
	require.NoError(t, err)
	assert.Equal(t, []string{"Order #A1: 1 items, Total: 9.50"}, r.ListOrders())

	_, err = r.SetMenuItemAvailability("Soup", true)
	assert.True(t, errors.Is(err, ErrNotFound))
	_, err = r.UpdateMenuItemPrice("Soup", decimal.Zero)
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestRestaurant_AddTable(t *testing.T) {
	r := NewRestaurant()
	assert.Equal(t, "Table 5 with 6 seats has been added.", r.AddTable(NewTable(5, 6)))
	r.AddTable(NewTable(5, 2))

	table, err := r.FindTable(5)
	require.NoError(t, err)
	assert.Equal(t, 6, table.Seats)
	assert.Len(t, r.Tables(), 2)

	_, err = r.FindOrder("missing")
	assert.True(t, errors.Is(err, ErrNotFound))
}
