package storage

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"foodcart/demand-svc/internal/domain"

	"github.com/redis/go-redis/v9"
)

const (
	allTimeKey   = "demand:alltime"
	dailyTTL     = 7 * 24 * time.Hour
	seenEventTTL = 7 * 24 * time.Hour
)

type Store struct {
	rdb *redis.Client
	now func() time.Time
}

func NewStore(rdb *redis.Client) *Store {
	return &Store{rdb: rdb, now: time.Now}
}

func DailyKey(day time.Time) string {
	return "demand:daily:" + day.UTC().Format("2006-01-02")
}

func seenKey(eventID string) string {
	return "demand:event:" + eventID
}

// RecordOrder adds the ordered quantities to today's and the all-time
// leaderboards. Redelivered events are counted once.
func (s *Store) RecordOrder(ctx context.Context, event domain.OrderEvent) (bool, error) {
	if event.EventID != "" {
		fresh, err := s.rdb.SetNX(ctx, seenKey(event.EventID), event.OrderID, seenEventTTL).Result()
		if err != nil {
			return false, fmt.Errorf("mark event %s: %w", event.EventID, err)
		}
		if !fresh {
			return false, nil
		}
	}

	day := event.Timestamp
	if day.IsZero() {
		day = s.now()
	}
	dailyKey := DailyKey(day)

	pipe := s.rdb.TxPipeline()
	for _, item := range event.Items {
		member := strconv.FormatInt(item.ProductID, 10)
		pipe.ZIncrBy(ctx, dailyKey, float64(item.Quantity), member)
		pipe.ZIncrBy(ctx, allTimeKey, float64(item.Quantity), member)
	}
	pipe.Expire(ctx, dailyKey, dailyTTL)
	if _, err := pipe.Exec(ctx); err != nil {
		return false, fmt.Errorf("update leaderboards: %w", err)
	}
	return true, nil
}

func (s *Store) TopToday(ctx context.Context, limit int) ([]domain.ProductDemand, error) {
	return s.top(ctx, DailyKey(s.now()), limit)
}

func (s *Store) TopAllTime(ctx context.Context, limit int) ([]domain.ProductDemand, error) {
	return s.top(ctx, allTimeKey, limit)
}

func (s *Store) top(ctx context.Context, key string, limit int) ([]domain.ProductDemand, error) {
	result, err := s.rdb.ZRevRangeWithScores(ctx, key, 0, int64(limit-1)).Result()
	if err != nil {
		return nil, err
	}

	demand := make([]domain.ProductDemand, 0, len(result))
	for _, z := range result {
		member, _ := z.Member.(string)
		productID, err := strconv.ParseInt(member, 10, 64)
		if err != nil {
			continue
		}
		demand = append(demand, domain.ProductDemand{ProductID: productID, Score: z.Score})
	}
	return demand, nil
}
