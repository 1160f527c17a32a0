package service

import (
	"context"
	"encoding/json"
	"errors"

	"restaurant-bookkeeping/bookkeeping-svc/internal/domain"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

type MessageReader interface {
	ReadMessage(ctx context.Context) (kafka.Message, error)
}

// Consumer folds order events from the stream into dish popularity stats.
type Consumer struct {
	Reader MessageReader
	Stats  PopularityRecorder
	Log    *zap.SugaredLogger
}

func NewConsumer(reader MessageReader, stats PopularityRecorder, log *zap.SugaredLogger) *Consumer {
	return &Consumer{
		Reader: reader,
		Stats:  stats,
		Log:    log,
	}
}

// Start blocks until ctx is cancelled.
func (c *Consumer) Start(ctx context.Context) error {
	c.Log.Infow("starting event consumer", "action", "consumer_started")
	for {
		message, err := c.Reader.ReadMessage(ctx)
		if err != nil {
			if ctx.Err() != nil || errors.Is(err, context.Canceled) {
				c.Log.Infow("event consumer stopped", "action", "consumer_stopped")
				return nil
			}
			c.Log.Errorw("error reading message", "action", "consumer_read", "error", err)
			continue
		}

		var event domain.Event
		if err := json.Unmarshal(message.Value, &event); err != nil {
			c.Log.Errorw("error unmarshaling message", "action", "consumer_decode", "error", err)
			continue
		}

		c.ProcessEvent(ctx, event)
	}
}

func (c *Consumer) ProcessEvent(ctx context.Context, event domain.Event) {
	if event.Type != domain.EventOrderPlaced || len(event.Items) == 0 {
		return
	}
	c.Log.Debugw("processing order", "action", "consumer_process", "order_number", event.OrderNumber, "item_count", len(event.Items))

	if err := c.Stats.RecordOrder(ctx, event.Items, event.Timestamp); err != nil {
		c.Log.Errorw("error updating dish stats", "action", "consumer_process", "order_number", event.OrderNumber, "error", err)
		return
	}

	c.Log.Infow("order counted", "action", "consumer_process", "order_number", event.OrderNumber)
}
