package storage

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"foodcart/order-svc/internal/domain"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingWriter struct {
	messages []kafka.Message
	err      error
}

func (w *recordingWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	if w.err != nil {
		return w.err
	}
	w.messages = append(w.messages, msgs...)
	return nil
}

func TestKafkaPublisher_PublishOrderEvent(t *testing.T) {
	writer := &recordingWriter{}
	publisher := NewKafkaPublisher(writer)
	event := domain.OrderEvent{
		EventID:    "evt-1",
		Type:       domain.EventOrderCreated,
		OrderID:    42,
		TotalPrice: "10.30",
		Items:      []domain.OrderEventItem{{ProductID: 1, Quantity: 2}},
		Timestamp:  time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC),
	}

	require.NoError(t, publisher.PublishOrderEvent(context.Background(), event))

	require.Len(t, writer.messages, 1)
	assert.Equal(t, "42", string(writer.messages[0].Key))

	var decoded domain.OrderEvent
	require.NoError(t, json.Unmarshal(writer.messages[0].Value, &decoded))
	assert.Equal(t, event, decoded)
}

func TestKafkaPublisher_WriterError(t *testing.T) {
	writer := &recordingWriter{err: errors.New("broker down")}
	publisher := NewKafkaPublisher(writer)

	err := publisher.PublishOrderEvent(context.Background(), domain.OrderEvent{OrderID: 1})

	assert.EqualError(t, err, "broker down")
}
