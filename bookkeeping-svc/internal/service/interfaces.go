package service

import (
	"context"
	"time"

	"restaurant-bookkeeping/bookkeeping-svc/internal/domain"

	"github.com/shopspring/decimal"
)

type BookkeeperInterface interface {
	AddMenuItem(ctx context.Context, name string, price decimal.Decimal) domain.MenuItem
	RemoveMenuItem(ctx context.Context, name string) (string, error)
	MenuItem(ctx context.Context, name string) (domain.MenuItem, error)
	SetAvailability(ctx context.Context, name string, available bool) (domain.MenuItem, error)
	UpdatePrice(ctx context.Context, name string, price decimal.Decimal) (domain.MenuItem, error)
	Menu(ctx context.Context) []domain.MenuItem

	PlaceOrder(ctx context.Context, number string, itemNames []string) (domain.OrderSummary, error)
	Order(ctx context.Context, number string) (domain.OrderSummary, error)
	OrderSummaries(ctx context.Context) []domain.OrderSummary
	ListOrders(ctx context.Context) []string
	OrderQRCode(ctx context.Context, number string) ([]byte, error)

	AddTable(ctx context.Context, number, seats int) string
	Tables(ctx context.Context) []domain.Table
	ReserveTable(ctx context.Context, customerName string, tableNumber int, at time.Time) (string, error)
	ListReservations(ctx context.Context) []string

	TopDishes(ctx context.Context, period string, limit int) ([]domain.DishPopularity, error)
}

type EventPublisher interface {
	Publish(ctx context.Context, event domain.Event) error
}

type Journal interface {
	RecordOrder(ctx context.Context, summary domain.OrderSummary, placedAt time.Time) error
	RecordReservation(ctx context.Context, customerName string, tableNumber int, reservedFor time.Time) error
}

type PopularityReader interface {
	TopDishes(ctx context.Context, limit int) ([]domain.DishPopularity, error)
	TopDishesOn(ctx context.Context, day time.Time, limit int) ([]domain.DishPopularity, error)
}

type PopularityRecorder interface {
	RecordOrder(ctx context.Context, items []string, at time.Time) error
}

var _ BookkeeperInterface = (*Bookkeeper)(nil)
