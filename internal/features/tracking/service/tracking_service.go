package service

import (
	"context"
	"errors"
	"reflect"

	"parcel-tracker/internal/core/cache"
	"parcel-tracker/internal/core/logger"
	"parcel-tracker/internal/features/orders/domain"
	"parcel-tracker/internal/features/tracking/ports"

	"go.uber.org/zap"
)

var _ ports.TrackingLookup = (*TrackingService)(nil)

// TrackingService resolves public tracking codes, reading through an optional cache.
type TrackingService struct {
	finder   ports.OrderFinder
	cache    ports.TrackingCache
	recorder ports.LookupRecorder
	log      *zap.Logger
}

// Option configures optional TrackingService collaborators.
type Option func(*TrackingService)

// WithCache enables read-through caching of lookups.
func WithCache(c ports.TrackingCache) Option {
	return func(s *TrackingService) { s.cache = c }
}

// WithRecorder registers a lookup counter.
func WithRecorder(r ports.LookupRecorder) Option {
	return func(s *TrackingService) { s.recorder = r }
}

// NewTrackingService creates a new TrackingService over the order store.
func NewTrackingService(finder ports.OrderFinder, opts ...Option) *TrackingService {
	s := &TrackingService{
		finder: finder,
		log:    logger.Named("tracking"),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Search looks up an order by tracking code, ignoring case and surrounding spaces.
func (s *TrackingService) Search(ctx context.Context, code string) (*domain.Order, bool) {
	code = domain.NormalizeTrackingCode(code)
	if code == "" {
		s.observe(false, false)
		return nil, false
	}

	if order, ok := s.fromCache(ctx, code); ok {
		s.observe(true, true)
		return order, true
	}

	order, err := s.finder.FindByTrackingCode(ctx, code)
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			s.log.Error("Tracking lookup failed", zap.String("tracking_code", code), zap.Error(err))
		}
		s.observe(false, false)
		return nil, false
	}

	s.populate(ctx, code, order)

	s.observe(true, false)
	return order, true
}

// populate caches order, then drops the entry again if a mutation committed after the
// store read. That mutation's invalidation may have run before the entry was written.
func (s *TrackingService) populate(ctx context.Context, code string, order *domain.Order) {
	if s.cache == nil {
		return
	}

	if err := s.cache.Set(ctx, order); err != nil {
		s.log.Warn("Failed to cache tracking lookup", zap.String("tracking_code", code), zap.Error(err))
		return
	}

	current, err := s.finder.FindByTrackingCode(ctx, code)
	if err == nil && reflect.DeepEqual(current, order) {
		return
	}

	if err := s.cache.Invalidate(ctx, code); err != nil {
		s.log.Warn("Failed to drop stale tracking entry", zap.String("tracking_code", code), zap.Error(err))
	}
}

func (s *TrackingService) fromCache(ctx context.Context, code string) (*domain.Order, bool) {
	if s.cache == nil {
		return nil, false
	}

	order, err := s.cache.Get(ctx, code)
	if err != nil {
		if !errors.Is(err, cache.ErrMiss) {
			s.log.Warn("Tracking cache read failed", zap.String("tracking_code", code), zap.Error(err))
		}
		return nil, false
	}
	if domain.NormalizeTrackingCode(order.TrackingCode) != code {
		return nil, false
	}
	return order, true
}

func (s *TrackingService) observe(found, fromCache bool) {
	if s.recorder != nil {
		s.recorder.ObserveLookup(found, fromCache)
	}
}
