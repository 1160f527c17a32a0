package storage

import (
	"context"
	"database/sql"
	"time"

	"restaurant-bookkeeping/bookkeeping-svc/internal/domain"

	"github.com/lib/pq"
	"github.com/pkg/errors"
)

// PostgresJournal is an append-only export of placed orders and reservations.
// Nothing is read back from it.
type PostgresJournal struct {
	DB *sql.DB
}

func NewPostgresJournal(db *sql.DB) *PostgresJournal {
	return &PostgresJournal{DB: db}
}

func (j *PostgresJournal) EnsureSchema(ctx context.Context) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS order_journal (
			id SERIAL PRIMARY KEY,
			order_number TEXT NOT NULL,
			item_count INTEGER NOT NULL,
			items TEXT[] NOT NULL,
			total NUMERIC(12, 2) NOT NULL,
			placed_at TIMESTAMPTZ NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS reservation_journal (
			id SERIAL PRIMARY KEY,
			customer_name TEXT NOT NULL,
			table_number INTEGER NOT NULL,
			reserved_for TIMESTAMPTZ NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
	}
	for _, stmt := range statements {
		if _, err := j.DB.ExecContext(ctx, stmt); err != nil {
			return errors.Wrap(err, "ensure journal schema")
		}
	}
	return nil
}

func (j *PostgresJournal) RecordOrder(ctx context.Context, summary domain.OrderSummary, placedAt time.Time) error {
	_, err := j.DB.ExecContext(ctx, `
		INSERT INTO order_journal (order_number, item_count, items, total, placed_at)
		VALUES ($1, $2, $3, $4, $5)
	`, summary.Number, summary.ItemCount, pq.Array(summary.Items), summary.Total.StringFixed(2), placedAt)
	return errors.Wrapf(err, "journal order %s", summary.Number)
}

func (j *PostgresJournal) RecordReservation(ctx context.Context, customerName string, tableNumber int, reservedFor time.Time) error {
	_, err := j.DB.ExecContext(ctx, `
		INSERT INTO reservation_journal (customer_name, table_number, reserved_for)
		VALUES ($1, $2, $3)
	`, customerName, tableNumber, reservedFor)
	return errors.Wrapf(err, "journal reservation for table %d", tableNumber)
}
