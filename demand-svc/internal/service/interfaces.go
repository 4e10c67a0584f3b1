package service

import (
	"context"

	"foodcart/demand-svc/internal/domain"
	"foodcart/demand-svc/internal/storage"

	"github.com/segmentio/kafka-go"
)

type StoreInterface interface {
	RecordOrder(ctx context.Context, event domain.OrderEvent) (bool, error)
	TopToday(ctx context.Context, limit int) ([]domain.ProductDemand, error)
	TopAllTime(ctx context.Context, limit int) ([]domain.ProductDemand, error)
}

type MessageReader interface {
	ReadMessage(ctx context.Context) (kafka.Message, error)
}

type ConsumerInterface interface {
	Start(ctx context.Context)
	ProcessOrder(ctx context.Context, event domain.OrderEvent)
}

type LeaderboardInterface interface {
	Today(ctx context.Context) ([]domain.ProductDemand, error)
	AllTime(ctx context.Context) ([]domain.ProductDemand, error)
}

var (
	_ StoreInterface = (*storage.Store)(nil)
	_ MessageReader  = (*kafka.Reader)(nil)
)
