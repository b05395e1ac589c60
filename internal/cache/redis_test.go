package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingSource struct {
	prices map[string]decimal.Decimal
	calls  [][]string
	err    error
}

func (s *countingSource) LatestPrices(_ context.Context, ids []string) (map[string]decimal.Decimal, error) {
	s.calls = append(s.calls, append([]string(nil), ids...))
	if s.err != nil {
		return nil, s.err
	}
	out := make(map[string]decimal.Decimal)
	for _, id := range ids {
		if p, ok := s.prices[id]; ok {
			out[id] = p
		}
	}
	return out, nil
}

func newTestCache(t *testing.T, src Source) (*PriceCache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewPriceCache(client, src, time.Minute), mr
}

func TestPriceCache_ReadThrough(t *testing.T) {
	src := &countingSource{prices: map[string]decimal.Decimal{
		"a": decimal.RequireFromString("10.5"),
	}}
	c, mr := newTestCache(t, src)
	ctx := context.Background()

	got, err := c.LatestPrices(ctx, []string{"a", "b"})
	require.NoError(t, err)
	assert.Len(t, got, 1)
	assert.True(t, got["a"].Equal(decimal.RequireFromString("10.5")))

	cached, err := mr.Get(key("a"))
	require.NoError(t, err)
	assert.Equal(t, "10.5", cached)
	assert.False(t, mr.Exists(key("b")), "absent prices are not cached")

	_, err = c.LatestPrices(ctx, []string{"a", "b"})
	require.NoError(t, err)
	require.Len(t, src.calls, 2)
	assert.Equal(t, []string{"b"}, src.calls[1], "second read only asks the source for misses")
}

func TestPriceCache_Expiry(t *testing.T) {
	src := &countingSource{prices: map[string]decimal.Decimal{"a": decimal.NewFromInt(1)}}
	c, mr := newTestCache(t, src)
	ctx := context.Background()

	_, err := c.LatestPrices(ctx, []string{"a"})
	require.NoError(t, err)
	mr.FastForward(2 * time.Minute)

	_, err = c.LatestPrices(ctx, []string{"a"})
	require.NoError(t, err)
	assert.Len(t, src.calls, 2)
}

func TestPriceCache_Invalidate(t *testing.T) {
	src := &countingSource{prices: map[string]decimal.Decimal{"a": decimal.NewFromInt(1)}}
	c, mr := newTestCache(t, src)
	ctx := context.Background()

	_, err := c.LatestPrices(ctx, []string{"a"})
	require.NoError(t, err)
	require.NoError(t, c.Invalidate(ctx, []string{"a", "never-cached"}))
	assert.False(t, mr.Exists(key("a")))
	assert.NoError(t, c.Invalidate(ctx, nil))
}

func TestPriceCache_RedisDownFallsBackToSource(t *testing.T) {
	src := &countingSource{prices: map[string]decimal.Decimal{"a": decimal.NewFromInt(7)}}
	c, mr := newTestCache(t, src)
	mr.Close()

	got, err := c.LatestPrices(context.Background(), []string{"a"})
	require.NoError(t, err)
	assert.True(t, got["a"].Equal(decimal.NewFromInt(7)))
}

func TestPriceCache_SourceError(t *testing.T) {
	src := &countingSource{err: errors.New("db down")}
	c, _ := newTestCache(t, src)

	_, err := c.LatestPrices(context.Background(), []string{"a"})
	assert.Error(t, err)
}

func TestPriceCache_MalformedEntryIsRefetched(t *testing.T) {
	src := &countingSource{prices: map[string]decimal.Decimal{"a": decimal.NewFromInt(3)}}
	c, mr := newTestCache(t, src)
	require.NoError(t, mr.Set(key("a"), "not-a-number"))

	got, err := c.LatestPrices(context.Background(), []string{"a"})
	require.NoError(t, err)
	assert.True(t, got["a"].Equal(decimal.NewFromInt(3)))
}
