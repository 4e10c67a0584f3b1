package service

import (
	"context"
	"encoding/json"
	"log/slog"

	"foodcart/demand-svc/internal/domain"

	"github.com/segmentio/kafka-go"
)

type Consumer struct {
	Reader MessageReader
	Store  StoreInterface
}

func NewConsumer(reader MessageReader, store StoreInterface) *Consumer {
	return &Consumer{
		Reader: reader,
		Store:  store,
	}
}

// Start reads the orders topic until ctx is cancelled.
func (c *Consumer) Start(ctx context.Context) {
	slog.Info("demand consumer started")
	for {
		message, err := c.Reader.ReadMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				slog.Info("demand consumer stopped")
				return
			}
			slog.Error("failed to read message", "error", err)
			continue
		}
		c.HandleMessage(ctx, message)
	}
}

func (c *Consumer) HandleMessage(ctx context.Context, message kafka.Message) {
	var event domain.OrderEvent
	if err := json.Unmarshal(message.Value, &event); err != nil {
		slog.Warn("skipping malformed message", "offset", message.Offset, "error", err)
		return
	}
	c.ProcessOrder(ctx, event)
}

func (c *Consumer) ProcessOrder(ctx context.Context, event domain.OrderEvent) {
	if event.Type != domain.EventOrderCreated {
		slog.Debug("skipping event", "type", event.Type)
		return
	}

	recorded, err := c.Store.RecordOrder(ctx, event)
	if err != nil {
		slog.Error("failed to record order demand", "order_id", event.OrderID, "error", err)
		return
	}
	if !recorded {
		slog.Debug("duplicate order event", "event_id", event.EventID, "order_id", event.OrderID)
		return
	}
	slog.Info("order demand recorded", "order_id", event.OrderID, "items", len(event.Items))
}

var _ ConsumerInterface = (*Consumer)(nil)
