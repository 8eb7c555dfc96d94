package ports

import (
	"context"

	"parcel-tracker/internal/features/orders/domain"
)

// OrderService defines the primary port for the order lifecycle.
type OrderService interface {
	CreateOrder(ctx context.Context, in domain.CreateOrderInput) (*domain.Order, error)
	UpdateOrderStatus(ctx context.Context, id string, status domain.Status, location, description string) (*domain.Order, error)
	EditOrder(ctx context.Context, id string, patch domain.DetailsPatch) (*domain.Order, error)
	DeleteOrder(ctx context.Context, id string) error
	GetOrder(ctx context.Context, id string) (*domain.Order, error)
	ListOrders(ctx context.Context, filter ListFilter) ([]*domain.Order, error)
	OrderStatistics(ctx context.Context) (domain.Statistics, error)
}

// ListFilter narrows ListOrders. The zero value lists everything.
type ListFilter struct {
	Status domain.Status
}

// OrderRepository defines the secondary port owning every Order instance.
// Returned orders are copies; mutating them does not change stored state.
type OrderRepository interface {
	// Insert fails with domain.ErrDuplicateTrackingCode when the code is taken (case-insensitive).
	Insert(ctx context.Context, order *domain.Order) error
	// GetAll returns every order in insertion order.
	GetAll(ctx context.Context) ([]*domain.Order, error)
	FindByID(ctx context.Context, id string) (*domain.Order, error)
	FindByTrackingCode(ctx context.Context, code string) (*domain.Order, error)
	// Replace swaps the stored order for id; fails with domain.ErrNotFound.
	Replace(ctx context.Context, id string, order *domain.Order) error
	// Update applies mutate to the stored order atomically; nothing is stored if mutate fails.
	Update(ctx context.Context, id string, mutate func(*domain.Order) error) (*domain.Order, error)
	// Remove deletes the order; fails with domain.ErrNotFound.
	Remove(ctx context.Context, id string) (*domain.Order, error)
}

// CodeGenerator produces candidate tracking codes.
type CodeGenerator interface {
	NewCode() (string, error)
}

// IDGenerator produces internal order identifiers.
type IDGenerator interface {
	NewID() string
}

// TrackingInvalidator drops cached public views of an order when it changes.
type TrackingInvalidator interface {
	Invalidate(ctx context.Context, trackingCode string) error
}

// OperationRecorder counts lifecycle operations.
type OperationRecorder interface {
	ObserveOperation(operation string, err error)
}
