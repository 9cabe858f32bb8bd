package redisstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"cryptoprices-service/internal/application"
	"cryptoprices-service/internal/domain"

	"github.com/redis/go-redis/v9"
)

// Cache keeps sorted price series in Redis with a TTL, so repeated page
// reads skip the re-sort. Entries are dropped when a pair is re-fetched.
type Cache struct {
	Client *redis.Client
	TTL    time.Duration
}

var _ application.PriceCache = (*Cache)(nil)

func New(client *redis.Client, ttl time.Duration) *Cache {
	return &Cache{Client: client, TTL: ttl}
}

func cacheKey(base, quote string) string {
	return "prices:sorted:" + base + "/" + quote
}

func (c *Cache) GetSorted(ctx context.Context, base, quote string) ([]domain.Price, bool, error) {
	raw, err := c.Client.Get(ctx, cacheKey(base, quote)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("cache get: %w", err)
	}
	var prices []domain.Price
	if err := json.Unmarshal(raw, &prices); err != nil {
		return nil, false, fmt.Errorf("cache decode: %w", err)
	}
	return prices, true, nil
}

func (c *Cache) SetSorted(ctx context.Context, base, quote string, prices []domain.Price) error {
	raw, err := json.Marshal(prices)
	if err != nil {
		return fmt.Errorf("cache encode: %w", err)
	}
	return c.Client.Set(ctx, cacheKey(base, quote), raw, c.TTL).Err()
}

func (c *Cache) Invalidate(ctx context.Context, base, quote string) error {
	return c.Client.Del(ctx, cacheKey(base, quote)).Err()
}
