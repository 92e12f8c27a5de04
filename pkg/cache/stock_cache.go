package cache

import (
	"context"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
)

// StockCache is a read-through cache for replayed stock figures. The
// transaction log stays the source of truth: every ledger write invalidates
// the touched variants, so a stale read can only ever predate the
// invalidation it races with.
type StockCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewStockCache wraps a redis client. A nil client yields a disabled cache
// on which every operation is a no-op, so callers never branch on presence.
func NewStockCache(client *redis.Client, ttl time.Duration) *StockCache {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &StockCache{client: client, ttl: ttl}
}

func stockKey(variantID string) string {
	return "stock:" + variantID
}

// GetStock returns the cached on-hand quantity for a variant and whether the
// key was present.
func (c *StockCache) GetStock(ctx context.Context, variantID string) (decimal.Decimal, bool) {
	if c == nil || c.client == nil {
		return decimal.Zero, false
	}
	val, err := c.client.Get(ctx, stockKey(variantID)).Result()
	if err != nil {
		if err != redis.Nil {
			slog.Warn("stock cache read failed", slog.String("variant_id", variantID), slog.String("error", err.Error()))
		}
		return decimal.Zero, false
	}
	stock, err := decimal.NewFromString(val)
	if err != nil {
		return decimal.Zero, false
	}
	return stock, true
}

// SetStock stores a replayed stock figure. Failures are logged and swallowed;
// the cache is never allowed to fail a read path.
func (c *StockCache) SetStock(ctx context.Context, variantID string, stock decimal.Decimal) {
	if c == nil || c.client == nil {
		return
	}
	if err := c.client.Set(ctx, stockKey(variantID), stock.String(), c.ttl).Err(); err != nil {
		slog.Warn("stock cache write failed", slog.String("variant_id", variantID), slog.String("error", err.Error()))
	}
}

// Invalidate drops the cached figures of the given variants. Called after
// every committed ledger write that touches stock.
func (c *StockCache) Invalidate(ctx context.Context, variantIDs ...string) {
	if c == nil || c.client == nil || len(variantIDs) == 0 {
		return
	}
	keys := make([]string, len(variantIDs))
	for i, id := range variantIDs {
		keys[i] = stockKey(id)
	}
	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		slog.Warn("stock cache invalidation failed", slog.String("error", err.Error()))
	}
}
