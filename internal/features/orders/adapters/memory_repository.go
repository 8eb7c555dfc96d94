package adapters

import (
	"context"
	"fmt"
	"sync"

	"parcel-tracker/internal/features/orders/domain"
)

// MemoryOrderRepository implements ports.OrderRepository in process memory.
// A single RWMutex serialises writes; reads share the lock and see whole mutations only.
type MemoryOrderRepository struct {
	mu     sync.RWMutex
	byID   map[string]*domain.Order
	byCode map[string]string
	order  []string
}

// NewMemoryOrderRepository creates an empty store.
func NewMemoryOrderRepository() *MemoryOrderRepository {
	return &MemoryOrderRepository{
		byID:   make(map[string]*domain.Order),
		byCode: make(map[string]string),
	}
}

// Insert stores a copy of order.
func (r *MemoryOrderRepository) Insert(_ context.Context, order *domain.Order) error {
	code := domain.NormalizeTrackingCode(order.TrackingCode)

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byCode[code]; ok {
		return fmt.Errorf("%w: %s", domain.ErrDuplicateTrackingCode, order.TrackingCode)
	}
	if _, ok := r.byID[order.ID]; ok {
		return fmt.Errorf("%w: %s", domain.ErrDuplicateOrderID, order.ID)
	}

	r.byID[order.ID] = order.Clone()
	r.byCode[code] = order.ID
	r.order = append(r.order, order.ID)
	return nil
}

// GetAll returns copies of every order in insertion order.
func (r *MemoryOrderRepository) GetAll(_ context.Context) ([]*domain.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*domain.Order, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.byID[id].Clone())
	}
	return out, nil
}

// FindByID returns a copy of the order or domain.ErrNotFound.
func (r *MemoryOrderRepository) FindByID(_ context.Context, id string) (*domain.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	o, ok := r.byID[id]
	if !ok {
		return nil, fmt.Errorf("%w: id %s", domain.ErrNotFound, id)
	}
	return o.Clone(), nil
}

// FindByTrackingCode returns a copy of the order whose code matches ignoring case.
func (r *MemoryOrderRepository) FindByTrackingCode(_ context.Context, code string) (*domain.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.byCode[domain.NormalizeTrackingCode(code)]
	if !ok {
		return nil, fmt.Errorf("%w: code %s", domain.ErrNotFound, code)
	}
	return r.byID[id].Clone(), nil
}

// Replace swaps the stored order. The replacement must keep the id and tracking code.
func (r *MemoryOrderRepository) Replace(_ context.Context, id string, order *domain.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	current, ok := r.byID[id]
	if !ok {
		return fmt.Errorf("%w: id %s", domain.ErrNotFound, id)
	}
	if err := sameIdentity(current, order); err != nil {
		return err
	}
	r.byID[id] = order.Clone()
	return nil
}

// Update runs mutate on a copy under the write lock and stores it if mutate succeeds.
func (r *MemoryOrderRepository) Update(_ context.Context, id string, mutate func(*domain.Order) error) (*domain.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	current, ok := r.byID[id]
	if !ok {
		return nil, fmt.Errorf("%w: id %s", domain.ErrNotFound, id)
	}

	next := current.Clone()
	if err := mutate(next); err != nil {
		return nil, err
	}
	if err := sameIdentity(current, next); err != nil {
		return nil, err
	}

	r.byID[id] = next
	return next.Clone(), nil
}

// Remove deletes the order and returns what was stored.
func (r *MemoryOrderRepository) Remove(_ context.Context, id string) (*domain.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	o, ok := r.byID[id]
	if !ok {
		return nil, fmt.Errorf("%w: id %s", domain.ErrNotFound, id)
	}

	delete(r.byID, id)
	delete(r.byCode, domain.NormalizeTrackingCode(o.TrackingCode))
	for i, v := range r.order {
		if v == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return o, nil
}

func sameIdentity(current, next *domain.Order) error {
	if next.ID != current.ID || domain.NormalizeTrackingCode(next.TrackingCode) != domain.NormalizeTrackingCode(current.TrackingCode) {
		return fmt.Errorf("order %s: id and tracking code are immutable", current.ID)
	}
	return nil
}
