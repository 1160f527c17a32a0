package domain

import (
	"strconv"
	"time"

	"github.com/shopspring/decimal"
)

const (
	EventMenuItemAdded   = "menu_item_added"
	EventMenuItemRemoved = "menu_item_removed"
	EventOrderPlaced     = "order_placed"
	EventTableAdded      = "table_added"
	EventTableReserved   = "table_reserved"
)

type Event struct {
	ID           string           `json:"id"`
	Type         string           `json:"type"`
	MenuItem     string           `json:"menu_item,omitempty"`
	Price        *decimal.Decimal `json:"price,omitempty"`
	OrderNumber  string           `json:"order_number,omitempty"`
	Items        []string         `json:"items,omitempty"`
	Total        *decimal.Decimal `json:"total,omitempty"`
	CustomerName string           `json:"customer_name,omitempty"`
	TableNumber  int              `json:"table_number,omitempty"`
	Seats        int              `json:"seats,omitempty"`
	ReservedFor  *time.Time       `json:"reserved_for,omitempty"`
	Timestamp    time.Time        `json:"timestamp"`
}

// Key is used as the partition key on the event stream.
func (e Event) Key() string {
	switch e.Type {
	case EventOrderPlaced:
		return "order:" + e.OrderNumber
	case EventMenuItemAdded, EventMenuItemRemoved:
		return "menu:" + e.MenuItem
	default:
		return "table:" + strconv.Itoa(e.TableNumber)
	}
}

type DishPopularity struct {
	Name  string  `json:"dish_name"`
	Score float64 `json:"score"`
}
