package tests

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"restaurant-bookkeeping/bookkeeping-svc/internal/domain"
	"restaurant-bookkeeping/bookkeeping-svc/internal/logger"
	"restaurant-bookkeeping/bookkeeping-svc/internal/mocks"
	"restaurant-bookkeeping/bookkeeping-svc/internal/service"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestConsumer_ProcessEvent(t *testing.T) {
	placedAt := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name       string
		event      domain.Event
		setupStats func(*mocks.PopularityRecorder)
	}{
		{
			name: "order placed",
			event: domain.Event{
				Type:        domain.EventOrderPlaced,
				OrderNumber: "A1",
				Items:       []string{"Burger", "Pasta"},
				Timestamp:   placedAt,
			},
			setupStats: func(m *mocks.PopularityRecorder) {
				m.On("RecordOrder", mock.Anything, []string{"Burger", "Pasta"}, placedAt).Return(nil).Once()
			},
		},
		{
			name: "store error is swallowed",
			event: domain.Event{
				Type:        domain.EventOrderPlaced,
				OrderNumber: "A2",
				Items:       []string{"Burger"},
				Timestamp:   placedAt,
			},
			setupStats: func(m *mocks.PopularityRecorder) {
				m.On("RecordOrder", mock.Anything, []string{"Burger"}, placedAt).Return(errors.New("redis error")).Once()
			},
		},
		{
			name:       "empty order is ignored",
			event:      domain.Event{Type: domain.EventOrderPlaced, OrderNumber: "A3"},
			setupStats: func(*mocks.PopularityRecorder) {},
		},
		{
			name:       "other event types are ignored",
			event:      domain.Event{Type: domain.EventTableAdded, TableNumber: 1, Seats: 4},
			setupStats: func(*mocks.PopularityRecorder) {},
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			stats := mocks.NewPopularityRecorder(t)
			testCase.setupStats(stats)

			consumer := service.NewConsumer(mocks.NewMessageReader(t), stats, logger.NewNop())
			consumer.ProcessEvent(context.Background(), testCase.event)
		})
	}
}

func TestConsumer_Start(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	payload, err := json.Marshal(domain.Event{
		Type:        domain.EventOrderPlaced,
		OrderNumber: "A1",
		Items:       []string{"Burger"},
	})
	require.NoError(t, err)

	reader := mocks.NewMessageReader(t)
	reader.On("ReadMessage", mock.Anything).Return(kafka.Message{Value: []byte("{broken")}, nil).Once()
	reader.On("ReadMessage", mock.Anything).Return(kafka.Message{}, errors.New("broker unavailable")).Once()
	reader.On("ReadMessage", mock.Anything).Return(kafka.Message{Value: payload}, nil).Once()
	reader.On("ReadMessage", mock.Anything).Return(kafka.Message{}, context.Canceled).Run(func(mock.Arguments) {
		cancel()
	}).Once()

	stats := mocks.NewPopularityRecorder(t)
	stats.On("RecordOrder", mock.Anything, []string{"Burger"}, mock.AnythingOfType("time.Time")).Return(nil).Once()

	consumer := service.NewConsumer(reader, stats, logger.NewNop())

	assert.NoError(t, consumer.Start(ctx))
}
