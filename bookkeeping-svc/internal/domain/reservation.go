package domain

import (
	"fmt"
	"time"
)

// TimeLayout is the layout used to read and print reservation times.
const TimeLayout = "2006-01-02 15:04:05"

type Reservation struct {
	CustomerName string
	Table        *Table
	Time         time.Time
}

// NewReservation uses the current time when at is zero.
func NewReservation(customerName string, table *Table, at time.Time) *Reservation {
	if at.IsZero() {
		at = time.Now()
	}
	return &Reservation{
		CustomerName: customerName,
		Table:        table,
		Time:         at,
	}
}

func (r *Reservation) String() string {
	return fmt.Sprintf("Reservation for %s at Table %d with %d seats on %s.",
		r.CustomerName, r.Table.Number, r.Table.Seats, r.Time.Format(TimeLayout))
}
