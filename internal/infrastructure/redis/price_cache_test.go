package redisstore_test

import (
	"context"
	"testing"
	"time"

	"cryptoprices-service/internal/domain"
	redisstore "cryptoprices-service/internal/infrastructure/redis"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

func newCache(t *testing.T) (*redisstore.Cache, *miniredis.Miniredis) {
	t.Helper()
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	return redisstore.New(client, time.Hour), mr
}

func TestCache_RoundTrip(t *testing.T) {
	cache, _ := newCache(t)
	ctx := context.Background()

	_, ok, err := cache.GetSorted(ctx, "BTC", "USD")
	require.NoError(t, err)
	require.False(t, ok)

	prices := []domain.Price{
		{Timestamp: 1, Price: "9212.5"},
		{Timestamp: 2, Price: "9400.0"},
	}
	require.NoError(t, cache.SetSorted(ctx, "BTC", "USD", prices))

	got, ok, err := cache.GetSorted(ctx, "BTC", "USD")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, prices, got)
}

func TestCache_Invalidate(t *testing.T) {
	cache, _ := newCache(t)
	ctx := context.Background()

	require.NoError(t, cache.SetSorted(ctx, "BTC", "USD", []domain.Price{{Timestamp: 1, Price: "1.0"}}))
	require.NoError(t, cache.Invalidate(ctx, "BTC", "USD"))

	_, ok, err := cache.GetSorted(ctx, "BTC", "USD")
	require.NoError(t, err)
	require.False(t, ok)
}

func TestCache_TTLExpiry(t *testing.T) {
	cache, mr := newCache(t)
	ctx := context.Background()

	require.NoError(t, cache.SetSorted(ctx, "BTC", "USD", []domain.Price{{Timestamp: 1, Price: "1.0"}}))
	mr.FastForward(2 * time.Hour)

	_, ok, err := cache.GetSorted(ctx, "BTC", "USD")
	require.NoError(t, err)
	require.False(t, ok)
}

func TestCache_KeysArePairScoped(t *testing.T) {
	cache, _ := newCache(t)
	ctx := context.Background()

	require.NoError(t, cache.SetSorted(ctx, "BTC", "USD", []domain.Price{{Timestamp: 1, Price: "1.0"}}))

	_, ok, err := cache.GetSorted(ctx, "ETH", "USD")
	require.NoError(t, err)
	require.False(t, ok)
}
