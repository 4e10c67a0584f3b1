package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"foodcart/order-svc/internal/domain"

	"github.com/google/uuid"
)

type OrderService struct {
	validator *Validator
	repo      OrderRepository
	publisher EventPublisher
	qrEncoder QRGenerator
	now       clock
}

func NewOrderService(validator *Validator, repo OrderRepository, publisher EventPublisher, qr QRGenerator) *OrderService {
	return &OrderService{
		validator: validator,
		repo:      repo,
		publisher: publisher,
		qrEncoder: qr,
		now:       time.Now,
	}
}

// Create validates a raw submission and stores it with its items in one
// transaction. Validation errors are returned as is; a total too large to
// store is caught inside the transaction, which then rolls back.
func (s *OrderService) Create(ctx context.Context, body []byte) (*domain.Order, error) {
	validated, err := s.validator.ParseAndValidate(ctx, body)
	if err != nil {
		return nil, err
	}

	order, err := s.repo.CreateOrder(ctx, validated)
	if err != nil {
		if domain.IsValidation(err) {
			return nil, err
		}
		if !errors.Is(err, domain.ErrOrderCreationFailed) {
			err = fmt.Errorf("%w: %w", domain.ErrOrderCreationFailed, err)
		}
		return nil, err
	}

	slog.InfoContext(ctx, "order created",
		"order_id", order.ID,
		"items", len(order.Items),
		"total_price", order.TotalPrice.StringFixed(2))

	s.publishCreated(ctx, order)
	return order, nil
}

func (s *OrderService) publishCreated(ctx context.Context, order *domain.Order) {
	if s.publisher == nil {
		return
	}

	items := make([]domain.OrderEventItem, len(order.Items))
	for i, item := range order.Items {
		items[i] = domain.OrderEventItem{ProductID: item.ProductID, Quantity: item.Quantity}
	}
	event := domain.OrderEvent{
		EventID:    uuid.NewString(),
		Type:       domain.EventOrderCreated,
		OrderID:    order.ID,
		TotalPrice: order.TotalPrice.StringFixed(2),
		Items:      items,
		Timestamp:  s.now(),
	}
	if err := s.publisher.PublishOrderEvent(ctx, event); err != nil {
		slog.WarnContext(ctx, "failed to publish order event", "order_id", order.ID, "error", err)
	}
}

func (s *OrderService) Get(ctx context.Context, id int64) (*domain.Order, error) {
	return s.repo.GetOrder(ctx, id)
}

// AdvanceStatus moves an order forward in its lifecycle. Moving backwards or
// staying put is rejected.
func (s *OrderService) AdvanceStatus(ctx context.Context, id int64, next domain.Status) (*domain.Order, error) {
	if !next.Valid() {
		return nil, fmt.Errorf("%w: unknown status %q", domain.ErrInvalidStatusTransition, next)
	}

	order, err := s.repo.GetOrder(ctx, id)
	if err != nil {
		return nil, err
	}
	if !order.Status.CanAdvanceTo(next) {
		return nil, fmt.Errorf("%w: %s -> %s", domain.ErrInvalidStatusTransition, order.Status, next)
	}

	if err := s.repo.UpdateStatus(ctx, id, domain.NewStatusChange(order.Status, next, s.now())); err != nil {
		return nil, err
	}
	return s.repo.GetOrder(ctx, id)
}

func (s *OrderService) CallbackQR(ctx context.Context, id int64) ([]byte, error) {
	order, err := s.repo.GetOrder(ctx, id)
	if err != nil {
		return nil, err
	}
	if s.qrEncoder == nil {
		return nil, errors.New("qr encoder is not configured")
	}
	return s.qrEncoder.Generate(CallbackURI(order.PhoneNumber))
}

var _ OrderServiceInterface = (*OrderService)(nil)
