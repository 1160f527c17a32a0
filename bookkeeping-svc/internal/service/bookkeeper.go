package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"restaurant-bookkeeping/bookkeeping-svc/internal/domain"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

var (
	ErrQRDisabled    = errors.New("qr codes are not configured")
	ErrStatsDisabled = errors.New("dish statistics are not configured")
)

// Sinks are optional. A nil sink is skipped.
type Sinks struct {
	Publisher EventPublisher
	Journal   Journal
	Stats     PopularityReader
	QR        QRGenerator
}

// Bookkeeper serializes access to the restaurant and forwards successful
// operations to the configured sinks. Sink failures are logged only.
type Bookkeeper struct {
	mu         sync.Mutex
	restaurant *domain.Restaurant
	sinks      Sinks
	log        *zap.SugaredLogger
	now        func() time.Time
}

func NewBookkeeper(restaurant *domain.Restaurant, sinks Sinks, log *zap.SugaredLogger) *Bookkeeper {
	return &Bookkeeper{
		restaurant: restaurant,
		sinks:      sinks,
		log:        log,
		now:        time.Now,
	}
}

func (s *Bookkeeper) AddMenuItem(ctx context.Context, name string, price decimal.Decimal) domain.MenuItem {
	item := domain.NewMenuItem(name, price)

	s.mu.Lock()
	s.restaurant.AddMenuItem(item)
	snapshot := *item
	s.mu.Unlock()

	s.log.Infow("menu item added", "action", domain.EventMenuItemAdded, "menu_item", name, "price", price.StringFixed(2))
	s.publish(ctx, domain.Event{Type: domain.EventMenuItemAdded, MenuItem: name, Price: &snapshot.Price})
	return snapshot
}

func (s *Bookkeeper) RemoveMenuItem(ctx context.Context, name string) (string, error) {
	s.mu.Lock()
	message, err := s.restaurant.RemoveMenuItem(name)
	s.mu.Unlock()
	if err != nil {
		s.log.Warnw("menu item not removed", "action", domain.EventMenuItemRemoved, "menu_item", name, "error", err)
		return "", err
	}

	s.log.Infow(message, "action", domain.EventMenuItemRemoved, "menu_item", name)
	s.publish(ctx, domain.Event{Type: domain.EventMenuItemRemoved, MenuItem: name})
	return message, nil
}

func (s *Bookkeeper) MenuItem(_ context.Context, name string) (domain.MenuItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	item, err := s.restaurant.FindMenuItem(name)
	if err != nil {
		return domain.MenuItem{}, err
	}
	return *item, nil
}

func (s *Bookkeeper) SetAvailability(_ context.Context, name string, available bool) (domain.MenuItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	item, err := s.restaurant.SetMenuItemAvailability(name, available)
	if err != nil {
		return domain.MenuItem{}, err
	}
	s.log.Infow("menu item availability changed", "action", "menu_item_availability", "menu_item", name, "available", available)
	return *item, nil
}

func (s *Bookkeeper) UpdatePrice(_ context.Context, name string, price decimal.Decimal) (domain.MenuItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	item, err := s.restaurant.UpdateMenuItemPrice(name, price)
	if err != nil {
		return domain.MenuItem{}, err
	}
	s.log.Infow("menu item price changed", "action", "menu_item_price", "menu_item", name, "price", price.StringFixed(2))
	return *item, nil
}

func (s *Bookkeeper) Menu(_ context.Context) []domain.MenuItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	menu := s.restaurant.Menu()
	items := make([]domain.MenuItem, 0, len(menu))
	for _, item := range menu {
		items = append(items, *item)
	}
	return items
}

// PlaceOrder builds an order from menu item names and stores it. Every name
// must be on the menu, otherwise nothing is stored.
func (s *Bookkeeper) PlaceOrder(ctx context.Context, number string, itemNames []string) (domain.OrderSummary, error) {
	s.mu.Lock()
	order := domain.NewOrder(number)
	for _, name := range itemNames {
		item, err := s.restaurant.FindMenuItem(name)
		if err != nil {
			s.mu.Unlock()
			s.log.Warnw("order rejected", "action", domain.EventOrderPlaced, "order_number", number, "error", err)
			return domain.OrderSummary{}, err
		}
		order.AddItem(item)
	}
	s.restaurant.TakeOrder(order)
	summary := order.Summary()
	s.mu.Unlock()

	placedAt := s.now()
	s.log.Infow("order placed", "action", domain.EventOrderPlaced, "order_number", number,
		"item_count", summary.ItemCount, "total", summary.Total.StringFixed(2))

	if s.sinks.Journal != nil {
		if err := s.sinks.Journal.RecordOrder(ctx, summary, placedAt); err != nil {
			s.log.Errorw("failed to journal order", "action", "journal_order", "order_number", number, "error", err)
		}
	}
	s.publish(ctx, domain.Event{
		Type:        domain.EventOrderPlaced,
		OrderNumber: number,
		Items:       summary.Items,
		Total:       &summary.Total,
	})
	return summary, nil
}

func (s *Bookkeeper) Order(_ context.Context, number string) (domain.OrderSummary, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	order, err := s.restaurant.FindOrder(number)
	if err != nil {
		return domain.OrderSummary{}, err
	}
	return order.Summary(), nil
}

func (s *Bookkeeper) OrderSummaries(_ context.Context) []domain.OrderSummary {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.restaurant.OrderSummaries()
}

func (s *Bookkeeper) ListOrders(_ context.Context) []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.restaurant.ListOrders()
}

func (s *Bookkeeper) OrderQRCode(ctx context.Context, number string) ([]byte, error) {
	if s.sinks.QR == nil {
		return nil, ErrQRDisabled
	}
	if _, err := s.Order(ctx, number); err != nil {
		return nil, err
	}
	return s.sinks.QR.Generate(number)
}

func (s *Bookkeeper) AddTable(ctx context.Context, number, seats int) string {
	s.mu.Lock()
	message := s.restaurant.AddTable(domain.NewTable(number, seats))
	s.mu.Unlock()

	s.log.Infow(message, "action", domain.EventTableAdded, "table_number", number, "seats", seats)
	s.publish(ctx, domain.Event{Type: domain.EventTableAdded, TableNumber: number, Seats: seats})
	return message
}

func (s *Bookkeeper) Tables(_ context.Context) []domain.Table {
	s.mu.Lock()
	defer s.mu.Unlock()

	tables := s.restaurant.Tables()
	out := make([]domain.Table, 0, len(tables))
	for _, table := range tables {
		out = append(out, *table)
	}
	return out
}

func (s *Bookkeeper) ReserveTable(ctx context.Context, customerName string, tableNumber int, at time.Time) (string, error) {
	s.mu.Lock()
	message, err := s.restaurant.ReserveTable(customerName, tableNumber, at)
	var reservedFor time.Time
	if err == nil {
		reservations := s.restaurant.Reservations()
		reservedFor = reservations[len(reservations)-1].Time
	}
	s.mu.Unlock()

	if err != nil {
		s.log.Warnw("reservation rejected", "action", domain.EventTableReserved,
			"customer_name", customerName, "table_number", tableNumber, "error", err)
		return "", err
	}

	s.log.Infow(message, "action", domain.EventTableReserved, "customer_name", customerName, "table_number", tableNumber)

	if s.sinks.Journal != nil {
		if err := s.sinks.Journal.RecordReservation(ctx, customerName, tableNumber, reservedFor); err != nil {
			s.log.Errorw("failed to journal reservation", "action", "journal_reservation", "table_number", tableNumber, "error", err)
		}
	}
	s.publish(ctx, domain.Event{
		Type:         domain.EventTableReserved,
		CustomerName: customerName,
		TableNumber:  tableNumber,
		ReservedFor:  &reservedFor,
	})
	return message, nil
}

func (s *Bookkeeper) ListReservations(_ context.Context) []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.restaurant.ListReservations()
}

const (
	PeriodAll   = "all"
	PeriodToday = "today"
)

func (s *Bookkeeper) TopDishes(ctx context.Context, period string, limit int) ([]domain.DishPopularity, error) {
	if s.sinks.Stats == nil {
		return nil, ErrStatsDisabled
	}
	if period == PeriodToday {
		return s.sinks.Stats.TopDishesOn(ctx, s.now(), limit)
	}
	return s.sinks.Stats.TopDishes(ctx, limit)
}

func (s *Bookkeeper) publish(ctx context.Context, event domain.Event) {
	if s.sinks.Publisher == nil {
		return
	}
	event.ID = uuid.NewString()
	event.Timestamp = s.now()
	if err := s.sinks.Publisher.Publish(ctx, event); err != nil {
		s.log.Errorw("failed to publish event", "action", "publish_event", "event_type", event.Type, "error", err)
	}
}
