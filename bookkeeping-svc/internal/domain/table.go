package domain

import "fmt"

const (
	TableAvailable = "Available"
	TableReserved  = "Reserved"
)

// Table starts Available. Reserve and Free are idempotent.
type Table struct {
	Number   int
	Seats    int
	reserved bool
}

func NewTable(number, seats int) *Table {
	return &Table{Number: number, Seats: seats}
}

func (t *Table) Reserve() string {
	t.reserved = true
	return fmt.Sprintf("Table %d with %d seats is reserved.", t.Number, t.Seats)
}

func (t *Table) Free() string {
	t.reserved = false
	return fmt.Sprintf("Table %d with %d seats is free.", t.Number, t.Seats)
}

func (t *Table) IsReserved() bool {
	return t.reserved
}

func (t *Table) Status() string {
	if t.reserved {
		return TableReserved
	}
	return TableAvailable
}

func (t *Table) String() string {
	return fmt.Sprintf("Table %d : %d seats, status : %s.", t.Number, t.Seats, t.Status())
}
