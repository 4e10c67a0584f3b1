package service

import (
	"context"
	"fmt"
	"sort"

	"foodcart/order-svc/internal/domain"
)

type ActiveOrderReader interface {
	ListActiveOrders(ctx context.Context) ([]domain.Order, error)
}

// QueryService serves the operator dashboard: unfinished orders with the
// restaurants that could cook them right now.
type QueryService struct {
	orders  ActiveOrderReader
	matcher *Matcher
}

func NewQueryService(orders ActiveOrderReader, matcher *Matcher) *QueryService {
	return &QueryService{orders: orders, matcher: matcher}
}

func (s *QueryService) ListActiveOrders(ctx context.Context) ([]domain.ActiveOrder, error) {
	orders, err := s.orders.ListActiveOrders(ctx)
	if err != nil {
		return nil, fmt.Errorf("list active orders: %w", err)
	}

	active := orders[:0]
	for _, order := range orders {
		if !order.Status.Terminal() {
			active = append(active, order)
		}
	}
	sort.SliceStable(active, func(i, j int) bool {
		if active[i].Status.Rank() != active[j].Status.Rank() {
			return active[i].Status.Rank() < active[j].Status.Rank()
		}
		return active[i].ID < active[j].ID
	})

	return s.matcher.Annotate(ctx, active)
}

func (s *QueryService) Candidates(ctx context.Context, orderID int64) ([]domain.Restaurant, error) {
	return s.matcher.CandidatesFor(ctx, orderID)
}

var _ QueryServiceInterface = (*QueryService)(nil)
