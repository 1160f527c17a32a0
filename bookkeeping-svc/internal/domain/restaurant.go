package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

const (
	NoCurrentOrders       = "No current orders."
	NoCurrentReservations = "No current reservations."
)

// Restaurant is the aggregate root. It is not safe for concurrent use.
type Restaurant struct {
	menu         []*MenuItem
	orders       []*Order
	tables       []*Table
	reservations []*Reservation
}

func NewRestaurant() *Restaurant {
	return &Restaurant{
		menu:         []*MenuItem{},
		orders:       []*Order{},
		tables:       []*Table{},
		reservations: []*Reservation{},
	}
}

// AddMenuItem does not check for duplicate names.
func (r *Restaurant) AddMenuItem(item *MenuItem) {
	r.menu = append(r.menu, item)
}

func (r *Restaurant) RemoveMenuItem(name string) (string, error) {
	for i, item := range r.menu {
		if item.Name == name {
			r.menu = append(r.menu[:i:i], r.menu[i+1:]...)
			return fmt.Sprintf("%s has been removed from the menu", name), nil
		}
	}
	return "", fmt.Errorf("%w: menu item %q", ErrNotFound, name)
}

func (r *Restaurant) FindMenuItem(name string) (*MenuItem, error) {
	for _, item := range r.menu {
		if item.Name == name {
			return item, nil
		}
	}
	return nil, fmt.Errorf("%w: menu item %q", ErrNotFound, name)
}

func (r *Restaurant) SetMenuItemAvailability(name string, available bool) (*MenuItem, error) {
	item, err := r.FindMenuItem(name)
	if err != nil {
		return nil, err
	}
	if available {
		item.MarkAsAvailable()
	} else {
		item.MarkAsUnavailable()
	}
	return item, nil
}

func (r *Restaurant) UpdateMenuItemPrice(name string, price decimal.Decimal) (*MenuItem, error) {
	item, err := r.FindMenuItem(name)
	if err != nil {
		return nil, err
	}
	item.SetPrice(price)
	return item, nil
}

func (r *Restaurant) Menu() []*MenuItem {
	return append([]*MenuItem(nil), r.menu...)
}

// TakeOrder stores the order as is. Item availability is not checked.
func (r *Restaurant) TakeOrder(order *Order) {
	r.orders = append(r.orders, order)
}

func (r *Restaurant) FindOrder(number string) (*Order, error) {
	for _, order := range r.orders {
		if order.Number == number {
			return order, nil
		}
	}
	return nil, fmt.Errorf("%w: order %s", ErrNotFound, number)
}

func (r *Restaurant) Orders() []*Order {
	return append([]*Order(nil), r.orders...)
}

func (r *Restaurant) OrderSummaries() []OrderSummary {
	summaries := make([]OrderSummary, 0, len(r.orders))
	for _, order := range r.orders {
		summaries = append(summaries, order.Summary())
	}
	return summaries
}

// ListOrders returns one line per order, or a single NoCurrentOrders line.
func (r *Restaurant) ListOrders() []string {
	if len(r.orders) == 0 {
		return []string{NoCurrentOrders}
	}
	lines := make([]string, 0, len(r.orders))
	for _, order := range r.orders {
		lines = append(lines, fmt.Sprintf("Order #%s: %d items, Total: %s",
			order.Number, len(order.Items), order.Total().StringFixed(2)))
	}
	return lines
}

// AddTable does not check that the table number is unique.
func (r *Restaurant) AddTable(table *Table) string {
	r.tables = append(r.tables, table)
	return fmt.Sprintf("Table %d with %d seats has been added.", table.Number, table.Seats)
}

func (r *Restaurant) FindTable(number int) (*Table, error) {
	for _, table := range r.tables {
		if table.Number == number {
			return table, nil
		}
	}
	return nil, fmt.Errorf("%w: table %d", ErrNotFound, number)
}

func (r *Restaurant) Tables() []*Table {
	return append([]*Table(nil), r.tables...)
}

// ReserveTable reserves the first table with the given number. A zero at
// stands for the current time.
func (r *Restaurant) ReserveTable(customerName string, tableNumber int, at time.Time) (string, error) {
	table, err := r.FindTable(tableNumber)
	if err != nil {
		return "", err
	}
	if table.IsReserved() {
		return "", fmt.Errorf("%w: table %d", ErrAlreadyReserved, tableNumber)
	}

	table.Reserve()
	r.reservations = append(r.reservations, NewReservation(customerName, table, at))

	return fmt.Sprintf("Reservation for %s at Table %d is confirmed.", customerName, tableNumber), nil
}

func (r *Restaurant) Reservations() []*Reservation {
	return append([]*Reservation(nil), r.reservations...)
}

func (r *Restaurant) ListReservations() []string {
	if len(r.reservations) == 0 {
		return []string{NoCurrentReservations}
	}
	lines := make([]string, 0, len(r.reservations))
	for _, reservation := range r.reservations {
		lines = append(lines, reservation.String())
	}
	return lines
}
