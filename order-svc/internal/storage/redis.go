package storage

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"foodcart/order-svc/internal/domain"

	"github.com/redis/go-redis/v9"
)

const (
	availableProductsKey = "catalog:products:available"
	catalogGenerationKey = "catalog:products:generation"
)

// RedisCatalogCache keeps the rendered catalog listing between catalog writes.
// Every invalidation bumps a generation counter; a listing is stored only if
// the counter still holds the value read before the database was queried.
type RedisCatalogCache struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewRedisCatalogCache(client *redis.Client, ttl time.Duration) *RedisCatalogCache {
	return &RedisCatalogCache{Client: client, TTL: ttl}
}

func (c *RedisCatalogCache) GetProducts(ctx context.Context) ([]domain.Product, bool, error) {
	payload, err := c.Client.Get(ctx, availableProductsKey).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	var products []domain.Product
	if err := json.Unmarshal(payload, &products); err != nil {
		return nil, false, err
	}
	// JSON drops trailing zeros; restore the stored 2-place scale.
	for i := range products {
		products[i].Price = products[i].Price.Round(2)
	}
	return products, true, nil
}

func (c *RedisCatalogCache) Generation(ctx context.Context) (int64, error) {
	return generation(ctx, c.Client)
}

// SetProducts stores products unless the catalog was invalidated after gen
// was read. A skipped write is not an error.
func (c *RedisCatalogCache) SetProducts(ctx context.Context, gen int64, products []domain.Product) error {
	payload, err := json.Marshal(products)
	if err != nil {
		return err
	}

	err = c.Client.Watch(ctx, func(tx *redis.Tx) error {
		current, err := generation(ctx, tx)
		if err != nil {
			return err
		}
		if current != gen {
			return nil
		}
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, availableProductsKey, payload, c.TTL)
			return nil
		})
		return err
	}, catalogGenerationKey)
	if errors.Is(err, redis.TxFailedErr) {
		return nil
	}
	return err
}

func (c *RedisCatalogCache) Invalidate(ctx context.Context) error {
	_, err := c.Client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Incr(ctx, catalogGenerationKey)
		pipe.Del(ctx, availableProductsKey)
		return nil
	})
	return err
}

type stringGetter interface {
	Get(ctx context.Context, key string) *redis.StringCmd
}

func generation(ctx context.Context, client stringGetter) (int64, error) {
	gen, err := client.Get(ctx, catalogGenerationKey).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	return gen, err
}
