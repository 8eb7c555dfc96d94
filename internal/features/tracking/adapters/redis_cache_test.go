package adapters

import (
	"context"
	"testing"
	"time"

	"parcel-tracker/internal/core/cache"
	"parcel-tracker/internal/features/orders/domain"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCache(t *testing.T, ttl time.Duration) (*RedisTrackingCache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)

	redisAdapter, err := cache.NewRedisAdapter("redis://" + mr.Addr())
	require.NoError(t, err)
	t.Cleanup(func() { _ = redisAdapter.Close() })

	return NewRedisTrackingCache(redisAdapter, ttl), mr
}

func testOrder() *domain.Order {
	now := time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC)
	eta := now.Add(72 * time.Hour)
	o := domain.NewOrder("1", "TR001234567", domain.CreateOrderInput{
		CustomerName:      "João Silva",
		Origin:            "São Paulo, SP",
		Destination:       "Rio de Janeiro, RJ",
		EstimatedDelivery: &eta,
	}, now)
	o.AppendEvent(domain.StatusInTransit, "Taubaté, SP", "Objeto em trânsito", now.Add(time.Hour))
	return o
}

func TestKey(t *testing.T) {
	assert.Equal(t, "tracking:tr001234567", Key(" TR001234567 "))
	assert.Equal(t, Key("tr001234567"), Key("TR001234567"))
}

func TestRedisTrackingCache_SetGet(t *testing.T) {
	c, mr := newTestCache(t, time.Minute)
	ctx := context.Background()
	order := testOrder()

	require.NoError(t, c.Set(ctx, order))
	assert.True(t, mr.Exists("tracking:tr001234567"))

	got, err := c.Get(ctx, "tr001234567")
	require.NoError(t, err)
	assert.Equal(t, order.ID, got.ID)
	assert.Equal(t, order.Status, got.Status)
	assert.Equal(t, order.Events, got.Events)
	assert.True(t, order.EstimatedDelivery.Equal(*got.EstimatedDelivery))
}

func TestRedisTrackingCache_Miss(t *testing.T) {
	c, _ := newTestCache(t, time.Minute)

	_, err := c.Get(context.Background(), "TR000000000")
	assert.ErrorIs(t, err, cache.ErrMiss)
}

func TestRedisTrackingCache_TTL(t *testing.T) {
	c, mr := newTestCache(t, 30*time.Second)
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, testOrder()))
	assert.Equal(t, 30*time.Second, mr.TTL("tracking:tr001234567"))

	mr.FastForward(31 * time.Second)
	_, err := c.Get(ctx, "TR001234567")
	assert.ErrorIs(t, err, cache.ErrMiss)
}

func TestRedisTrackingCache_Invalidate(t *testing.T) {
	c, mr := newTestCache(t, time.Minute)
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, testOrder()))
	require.NoError(t, c.Invalidate(ctx, "Tr001234567"))
	assert.False(t, mr.Exists("tracking:tr001234567"))

	// Invalidating an absent key is not an error.
	assert.NoError(t, c.Invalidate(ctx, "TR001234567"))
}

func TestRedisTrackingCache_CorruptEntry(t *testing.T) {
	c, mr := newTestCache(t, time.Minute)
	require.NoError(t, mr.Set("tracking:tr001234567", "{not json"))

	_, err := c.Get(context.Background(), "TR001234567")
	assert.Error(t, err)
	assert.NotErrorIs(t, err, cache.ErrMiss)
}
