package cache_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/velorapos/velora_backend/pkg/cache"
)

func newTestCache(t *testing.T) (*cache.StockCache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return cache.NewStockCache(client, time.Minute), mr
}

func TestStockCacheSetGet(t *testing.T) {
	c, _ := newTestCache(t)
	ctx := context.Background()

	c.SetStock(ctx, "variant-1", decimal.RequireFromString("42.5"))

	stock, ok := c.GetStock(ctx, "variant-1")
	require.True(t, ok)
	assert.True(t, stock.Equal(decimal.RequireFromString("42.5")))
}

func TestStockCacheMissReturnsNotFound(t *testing.T) {
	c, _ := newTestCache(t)

	_, ok := c.GetStock(context.Background(), "never-written")
	assert.False(t, ok)
}

func TestStockCacheInvalidate(t *testing.T) {
	c, _ := newTestCache(t)
	ctx := context.Background()

	c.SetStock(ctx, "variant-1", decimal.NewFromInt(10))
	c.SetStock(ctx, "variant-2", decimal.NewFromInt(20))
	c.Invalidate(ctx, "variant-1", "variant-2")

	_, ok := c.GetStock(ctx, "variant-1")
	assert.False(t, ok)
	_, ok = c.GetStock(ctx, "variant-2")
	assert.False(t, ok)
}

func TestStockCacheEntriesExpire(t *testing.T) {
	c, mr := newTestCache(t)
	ctx := context.Background()

	c.SetStock(ctx, "variant-1", decimal.NewFromInt(5))
	mr.FastForward(2 * time.Minute)

	_, ok := c.GetStock(ctx, "variant-1")
	assert.False(t, ok)
}

func TestStockCacheCorruptValueIsAMiss(t *testing.T) {
	c, mr := newTestCache(t)

	require.NoError(t, mr.Set("stock:variant-1", "not-a-number"))

	_, ok := c.GetStock(context.Background(), "variant-1")
	assert.False(t, ok)
}

func TestStockCacheDisabledWithoutClient(t *testing.T) {
	c := cache.NewStockCache(nil, time.Minute)
	ctx := context.Background()

	// Every operation degrades to a no-op rather than failing.
	c.SetStock(ctx, "variant-1", decimal.NewFromInt(1))
	c.Invalidate(ctx, "variant-1")
	_, ok := c.GetStock(ctx, "variant-1")
	assert.False(t, ok)
}
