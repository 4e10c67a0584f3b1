package service

import (
	"context"

	"foodcart/demand-svc/internal/domain"
)

const leaderboardSize = 10

type Leaderboard struct {
	store StoreInterface
}

func NewLeaderboard(store StoreInterface) *Leaderboard {
	return &Leaderboard{store: store}
}

func (l *Leaderboard) Today(ctx context.Context) ([]domain.ProductDemand, error) {
	return l.store.TopToday(ctx, leaderboardSize)
}

func (l *Leaderboard) AllTime(ctx context.Context) ([]domain.ProductDemand, error) {
	return l.store.TopAllTime(ctx, leaderboardSize)
}

var _ LeaderboardInterface = (*Leaderboard)(nil)
