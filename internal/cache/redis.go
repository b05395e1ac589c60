// Package cache keeps recently read stock prices in redis.
package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"

	"stockfolio/internal/logger"
)

const keyPrefix = "stockfolio:price:"

// Source is the price lookup the cache reads through to on a miss.
type Source interface {
	LatestPrices(ctx context.Context, stockIDs []string) (map[string]decimal.Decimal, error)
}

// PriceCache is a read-through cache of latest prices. Redis failures
// degrade to reading the source directly.
type PriceCache struct {
	redis  *redis.Client
	source Source
	ttl    time.Duration
}

// NewRedisClient connects to redis and verifies the connection.
func NewRedisClient(ctx context.Context, addr, password string, db int) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	pong, err := rdb.Ping(ctx).Result()
	if err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("failed to connect to redis at %s: %w", addr, err)
	}
	logger.Get().Infow("redis connected", "addr", addr, "pong", pong)
	return rdb, nil
}

// NewPriceCache wraps source with a redis cache whose entries expire after ttl.
func NewPriceCache(client *redis.Client, source Source, ttl time.Duration) *PriceCache {
	return &PriceCache{redis: client, source: source, ttl: ttl}
}

func key(stockID string) string {
	return keyPrefix + stockID
}

// LatestPrices returns cached prices and reads the rest from the source,
// storing what it finds.
func (c *PriceCache) LatestPrices(ctx context.Context, stockIDs []string) (map[string]decimal.Decimal, error) {
	result := make(map[string]decimal.Decimal, len(stockIDs))
	if len(stockIDs) == 0 {
		return result, nil
	}

	keys := make([]string, len(stockIDs))
	for i, id := range stockIDs {
		keys[i] = key(id)
	}

	values, err := c.redis.MGet(ctx, keys...).Result()
	if err != nil {
		logger.Get().Warnw("price cache read failed, using source", "error", err)
		return c.source.LatestPrices(ctx, stockIDs)
	}

	var misses []string
	for i, v := range values {
		s, ok := v.(string)
		if !ok {
			misses = append(misses, stockIDs[i])
			continue
		}
		price, err := decimal.NewFromString(s)
		if err != nil {
			logger.Get().Warnw("discarding malformed cached price", "key", keys[i], "value", s)
			misses = append(misses, stockIDs[i])
			continue
		}
		result[stockIDs[i]] = price
	}
	if len(misses) == 0 {
		return result, nil
	}

	fresh, err := c.source.LatestPrices(ctx, misses)
	if err != nil {
		return nil, err
	}

	pipe := c.redis.Pipeline()
	for id, price := range fresh {
		result[id] = price
		pipe.Set(ctx, key(id), price.String(), c.ttl)
	}
	if len(fresh) > 0 {
		if _, err := pipe.Exec(ctx); err != nil {
			logger.Get().Warnw("price cache write failed", "error", err)
		}
	}

	return result, nil
}

// Invalidate drops the cached prices of the given stocks.
func (c *PriceCache) Invalidate(ctx context.Context, stockIDs []string) error {
	if len(stockIDs) == 0 {
		return nil
	}
	keys := make([]string, len(stockIDs))
	for i, id := range stockIDs {
		keys[i] = key(id)
	}
	if err := c.redis.Del(ctx, keys...).Err(); err != nil && !errors.Is(err, redis.Nil) {
		return fmt.Errorf("failed to invalidate cached prices: %w", err)
	}
	return nil
}
