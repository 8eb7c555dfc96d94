package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"parcel-tracker/internal/core/logger"
	"parcel-tracker/internal/features/orders/domain"
	"parcel-tracker/internal/features/orders/ports"

	"go.uber.org/zap"
)

// maxCodeAttempts bounds tracking code regeneration after collisions.
const maxCodeAttempts = 8

// ErrTrackingCodeExhausted is returned when no unique tracking code could be allocated.
var ErrTrackingCodeExhausted = errors.New("could not allocate a unique tracking code")

var _ ports.OrderService = (*OrderService)(nil)

// OrderService implements ports.OrderService on top of an OrderRepository.
type OrderService struct {
	repo        ports.OrderRepository
	codes       ports.CodeGenerator
	ids         ports.IDGenerator
	invalidator ports.TrackingInvalidator
	recorder    ports.OperationRecorder
	policy      domain.TransitionPolicy
	now         func() time.Time
	log         *zap.Logger
}

// Option configures optional OrderService collaborators.
type Option func(*OrderService)

// WithTransitionPolicy sets the status transition policy. Default is domain.Unrestricted.
func WithTransitionPolicy(p domain.TransitionPolicy) Option {
	return func(s *OrderService) { s.policy = p }
}

// WithInvalidator registers the cache that must forget an order after it changes.
func WithInvalidator(inv ports.TrackingInvalidator) Option {
	return func(s *OrderService) { s.invalidator = inv }
}

// WithRecorder registers an operation counter.
func WithRecorder(r ports.OperationRecorder) Option {
	return func(s *OrderService) { s.recorder = r }
}

// WithClock overrides the time source.
func WithClock(now func() time.Time) Option {
	return func(s *OrderService) { s.now = now }
}

// NewOrderService creates a new OrderService.
func NewOrderService(repo ports.OrderRepository, codes ports.CodeGenerator, ids ports.IDGenerator, opts ...Option) *OrderService {
	s := &OrderService{
		repo:   repo,
		codes:  codes,
		ids:    ids,
		policy: domain.Unrestricted,
		now:    func() time.Time { return time.Now().UTC() },
		log:    logger.Named("orders"),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// CreateOrder validates the input, allocates a unique tracking code and stores a
// pending order with its initial "created" event.
func (s *OrderService) CreateOrder(ctx context.Context, in domain.CreateOrderInput) (order *domain.Order, err error) {
	defer func() { s.observe("create", err) }()

	if err := in.Validate(); err != nil {
		return nil, err
	}

	for attempt := 1; attempt <= maxCodeAttempts; attempt++ {
		code, err := s.codes.NewCode()
		if err != nil {
			return nil, fmt.Errorf("service: failed to generate tracking code: %w", err)
		}

		order = domain.NewOrder(s.ids.NewID(), code, in, s.now())
		err = s.repo.Insert(ctx, order)
		if err == nil {
			s.log.Info("Order created",
				zap.String("order_id", order.ID),
				zap.String("tracking_code", order.TrackingCode),
			)
			return order, nil
		}
		if !errors.Is(err, domain.ErrDuplicateTrackingCode) {
			return nil, fmt.Errorf("service: failed to store order: %w", err)
		}
		s.log.Debug("Tracking code collision, regenerating",
			zap.String("tracking_code", code),
			zap.Int("attempt", attempt),
		)
	}

	return nil, fmt.Errorf("service: %w after %d attempts", ErrTrackingCodeExhausted, maxCodeAttempts)
}

// UpdateOrderStatus appends a timeline event and moves status and current location with it.
// A blank location keeps the parcel where it currently is.
func (s *OrderService) UpdateOrderStatus(ctx context.Context, id string, status domain.Status, location, description string) (order *domain.Order, err error) {
	defer func() { s.observe("update_status", err) }()

	if !status.Valid() {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidStatus, status)
	}
	location = strings.TrimSpace(location)
	description = strings.TrimSpace(description)

	order, err = s.repo.Update(ctx, id, func(o *domain.Order) error {
		if err := s.policy.Check(o.Status, status); err != nil {
			return err
		}
		loc := location
		if loc == "" {
			loc = o.CurrentLocation
		}
		o.AppendEvent(status, loc, description, s.now())
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("Order status updated",
		zap.String("order_id", order.ID),
		zap.String("tracking_code", order.TrackingCode),
		zap.String("status", string(order.Status)),
		zap.String("location", order.CurrentLocation),
	)
	s.invalidate(ctx, order.TrackingCode)
	return order, nil
}

// EditOrder applies a partial update of customer, route and delivery estimate.
func (s *OrderService) EditOrder(ctx context.Context, id string, patch domain.DetailsPatch) (order *domain.Order, err error) {
	defer func() { s.observe("edit", err) }()

	if patch.Empty() {
		return s.repo.FindByID(ctx, id)
	}

	order, err = s.repo.Update(ctx, id, func(o *domain.Order) error {
		return o.ApplyDetails(patch)
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("Order details edited", zap.String("order_id", order.ID))
	s.invalidate(ctx, order.TrackingCode)
	return order, nil
}

// DeleteOrder removes the order and its history permanently.
func (s *OrderService) DeleteOrder(ctx context.Context, id string) (err error) {
	defer func() { s.observe("delete", err) }()

	removed, err := s.repo.Remove(ctx, id)
	if err != nil {
		return err
	}

	s.log.Info("Order deleted",
		zap.String("order_id", removed.ID),
		zap.String("tracking_code", removed.TrackingCode),
	)
	s.invalidate(ctx, removed.TrackingCode)
	return nil
}

// GetOrder returns a single order by internal id.
func (s *OrderService) GetOrder(ctx context.Context, id string) (*domain.Order, error) {
	return s.repo.FindByID(ctx, id)
}

// ListOrders returns orders in creation order, optionally limited to one status.
func (s *OrderService) ListOrders(ctx context.Context, filter ports.ListFilter) ([]*domain.Order, error) {
	if filter.Status != "" && !filter.Status.Valid() {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidStatus, filter.Status)
	}

	all, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("service: failed to list orders: %w", err)
	}
	if filter.Status == "" {
		return all, nil
	}

	out := make([]*domain.Order, 0, len(all))
	for _, o := range all {
		if o.Status == filter.Status {
			out = append(out, o)
		}
	}
	return out, nil
}

// OrderStatistics counts orders per status from the current store contents.
func (s *OrderService) OrderStatistics(ctx context.Context) (domain.Statistics, error) {
	all, err := s.repo.GetAll(ctx)
	if err != nil {
		return domain.Statistics{}, fmt.Errorf("service: failed to compute statistics: %w", err)
	}
	return domain.ComputeStatistics(all), nil
}

// CountByStatus feeds the orders-by-status metrics collector.
func (s *OrderService) CountByStatus(ctx context.Context) map[string]int {
	stats, err := s.OrderStatistics(ctx)
	if err != nil {
		s.log.Warn("Failed to count orders by status", zap.Error(err))
		return nil
	}
	return stats.ByStatus()
}

func (s *OrderService) invalidate(ctx context.Context, code string) {
	if s.invalidator == nil {
		return
	}
	if err := s.invalidator.Invalidate(ctx, code); err != nil {
		s.log.Warn("Failed to invalidate tracking cache",
			zap.String("tracking_code", code),
			zap.Error(err),
		)
	}
}

func (s *OrderService) observe(operation string, err error) {
	if s.recorder != nil {
		s.recorder.ObserveOperation(operation, err)
	}
}
