package adapters

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"parcel-tracker/internal/core/cache"
	"parcel-tracker/internal/features/orders/domain"
	"parcel-tracker/internal/features/tracking/ports"
)

const keyPrefix = "tracking:"

var _ ports.TrackingCache = (*RedisTrackingCache)(nil)

// RedisTrackingCache keeps JSON order views in a cache.Cache under tracking:<code>.
type RedisTrackingCache struct {
	cache cache.Cache
	ttl   time.Duration
}

// NewRedisTrackingCache creates a tracking cache with the given entry TTL.
func NewRedisTrackingCache(c cache.Cache, ttl time.Duration) *RedisTrackingCache {
	return &RedisTrackingCache{
		cache: c,
		ttl:   ttl,
	}
}

// Key returns the cache key for a tracking code, independent of its case.
func Key(code string) string {
	return keyPrefix + strings.ToLower(strings.TrimSpace(code))
}

// Get retrieves a cached order view.
func (r *RedisTrackingCache) Get(ctx context.Context, code string) (*domain.Order, error) {
	data, err := r.cache.Get(ctx, Key(code))
	if err != nil {
		return nil, err
	}

	var order domain.Order
	if err := json.Unmarshal(data, &order); err != nil {
		return nil, fmt.Errorf("failed to unmarshal cached order %s: %w", code, err)
	}
	return &order, nil
}

// Set stores the order view under its tracking code.
func (r *RedisTrackingCache) Set(ctx context.Context, order *domain.Order) error {
	data, err := json.Marshal(order)
	if err != nil {
		return fmt.Errorf("failed to marshal order %s: %w", order.TrackingCode, err)
	}
	return r.cache.Set(ctx, Key(order.TrackingCode), data, r.ttl)
}

// Invalidate drops the cached view of code.
func (r *RedisTrackingCache) Invalidate(ctx context.Context, code string) error {
	return r.cache.Delete(ctx, Key(code))
}
