package ports

import (
	"context"

	"parcel-tracker/internal/features/orders/domain"
)

// TrackingLookup defines the primary port for the public tracking query.
type TrackingLookup interface {
	// Search resolves a tracking code. A missing code is reported with found == false, never an error.
	Search(ctx context.Context, code string) (order *domain.Order, found bool)
}

// OrderFinder is the read-only slice of the order store used by the lookup.
// This is a Secondary Port (Driven Port).
type OrderFinder interface {
	FindByTrackingCode(ctx context.Context, code string) (*domain.Order, error)
}

// TrackingCache stores public order views by tracking code.
type TrackingCache interface {
	// Get returns cache.ErrMiss (possibly wrapped) when the code is not cached.
	Get(ctx context.Context, code string) (*domain.Order, error)
	Set(ctx context.Context, order *domain.Order) error
	Invalidate(ctx context.Context, code string) error
}

// LookupRecorder counts lookups by outcome.
type LookupRecorder interface {
	ObserveLookup(found bool, fromCache bool)
}
