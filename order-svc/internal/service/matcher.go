package service

import (
	"context"
	"fmt"
	"sort"

	"foodcart/order-svc/internal/domain"
)

// MenuIndex maps each product to the set of restaurants currently offering it.
// It is built from one bulk read and never cached across calls.
type MenuIndex struct {
	restaurants map[int64]domain.Restaurant
	offeredBy   map[int64]map[int64]struct{}
}

func BuildMenuIndex(offers []domain.MenuOffer) *MenuIndex {
	idx := &MenuIndex{
		restaurants: make(map[int64]domain.Restaurant),
		offeredBy:   make(map[int64]map[int64]struct{}),
	}
	for _, offer := range offers {
		idx.restaurants[offer.Restaurant.ID] = offer.Restaurant
		set, ok := idx.offeredBy[offer.ProductID]
		if !ok {
			set = make(map[int64]struct{})
			idx.offeredBy[offer.ProductID] = set
		}
		set[offer.Restaurant.ID] = struct{}{}
	}
	return idx
}

// Candidates returns, sorted by id, the restaurants offering every product.
// An empty product set has no candidates.
func (idx *MenuIndex) Candidates(productIDs []int64) []domain.Restaurant {
	distinct := make([]int64, 0, len(productIDs))
	seen := make(map[int64]struct{}, len(productIDs))
	for _, id := range productIDs {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		distinct = append(distinct, id)
	}
	if len(distinct) == 0 {
		return []domain.Restaurant{}
	}

	sets := make([]map[int64]struct{}, 0, len(distinct))
	for _, id := range distinct {
		set := idx.offeredBy[id]
		if len(set) == 0 {
			return []domain.Restaurant{}
		}
		sets = append(sets, set)
	}
	sort.Slice(sets, func(i, j int) bool { return len(sets[i]) < len(sets[j]) })

	result := make([]domain.Restaurant, 0, len(sets[0]))
	for restaurantID := range sets[0] {
		inAll := true
		for _, other := range sets[1:] {
			if _, ok := other[restaurantID]; !ok {
				inAll = false
				break
			}
		}
		if inAll {
			result = append(result, idx.restaurants[restaurantID])
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result
}

type Matcher struct {
	menu  MenuReader
	items OrderItemsReader
}

func NewMatcher(menu MenuReader, items OrderItemsReader) *Matcher {
	return &Matcher{menu: menu, items: items}
}

func (m *Matcher) index(ctx context.Context) (*MenuIndex, error) {
	offers, err := m.menu.AvailableOffers(ctx)
	if err != nil {
		return nil, fmt.Errorf("load menu: %w", err)
	}
	return BuildMenuIndex(offers), nil
}

func (m *Matcher) CandidatesFor(ctx context.Context, orderID int64) ([]domain.Restaurant, error) {
	result, err := m.CandidatesForMany(ctx, []int64{orderID})
	if err != nil {
		return nil, err
	}
	candidates, ok := result[orderID]
	if !ok {
		return nil, fmt.Errorf("order %d: %w", orderID, domain.ErrNotFound)
	}
	return candidates, nil
}

// CandidatesForMany reads the menu once and matches every order locally.
// Orders without items are absent from the result.
func (m *Matcher) CandidatesForMany(ctx context.Context, orderIDs []int64) (map[int64][]domain.Restaurant, error) {
	result := make(map[int64][]domain.Restaurant, len(orderIDs))
	if len(orderIDs) == 0 {
		return result, nil
	}

	products, err := m.items.ProductIDsByOrder(ctx, orderIDs)
	if err != nil {
		return nil, fmt.Errorf("load order items: %w", err)
	}
	idx, err := m.index(ctx)
	if err != nil {
		return nil, err
	}

	for orderID, productIDs := range products {
		result[orderID] = idx.Candidates(productIDs)
	}
	return result, nil
}

// Annotate matches orders whose items are already loaded.
func (m *Matcher) Annotate(ctx context.Context, orders []domain.Order) ([]domain.ActiveOrder, error) {
	annotated := make([]domain.ActiveOrder, 0, len(orders))
	if len(orders) == 0 {
		return annotated, nil
	}

	idx, err := m.index(ctx)
	if err != nil {
		return nil, err
	}

	for _, order := range orders {
		productIDs := make([]int64, len(order.Items))
		for i, item := range order.Items {
			productIDs[i] = item.ProductID
		}
		annotated = append(annotated, domain.ActiveOrder{
			Order:      order,
			Candidates: idx.Candidates(productIDs),
		})
	}
	return annotated, nil
}
