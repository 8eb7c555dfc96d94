package domain

import (
	"fmt"
	"strings"
)

// Status is the lifecycle state of an order.
type Status string

const (
	// StatusPending is the initial state of every order.
	StatusPending Status = "pending"
	// StatusInTransit indicates the parcel left the origin and is on its way.
	StatusInTransit Status = "in_transit"
	// StatusDelivered indicates the parcel was handed to the recipient.
	StatusDelivered Status = "delivered"
	// StatusCancelled indicates the order was cancelled before delivery.
	StatusCancelled Status = "cancelled"
)

// Statuses lists every lifecycle state in display order.
var Statuses = []Status{StatusPending, StatusInTransit, StatusDelivered, StatusCancelled}

// Labels shown to customers on the tracking timeline.
const (
	CreatedLabel       = "Pedido criado"
	CreatedDescription = "Pedido foi criado e está sendo preparado"
)

var statusLabels = map[Status]string{
	StatusPending:   "Pendente",
	StatusInTransit: "Em trânsito",
	StatusDelivered: "Entregue",
	StatusCancelled: "Cancelado",
}

// ParseStatus converts user input into a Status, ignoring case and surrounding spaces.
func ParseStatus(raw string) (Status, error) {
	s := Status(strings.ToLower(strings.TrimSpace(raw)))
	if !s.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidStatus, raw)
	}
	return s, nil
}

// Valid reports whether s is one of the lifecycle states.
func (s Status) Valid() bool {
	_, ok := statusLabels[s]
	return ok
}

// Label returns the localized display string recorded on timeline events.
func (s Status) Label() string {
	if l, ok := statusLabels[s]; ok {
		return l
	}
	return string(s)
}

// Terminal reports whether no further progress is expected from s.
func (s Status) Terminal() bool {
	return s == StatusDelivered || s == StatusCancelled
}

// TransitionPolicy decides which status changes updateStatus accepts.
type TransitionPolicy int

const (
	// Unrestricted accepts any status to any status.
	Unrestricted TransitionPolicy = iota
	// Strict follows pending -> in_transit -> delivered, with cancelled reachable
	// from pending or in_transit. Repeating a non-terminal status is allowed so
	// an in-transit parcel can report new locations.
	Strict
)

var strictTransitions = map[Status][]Status{
	StatusPending:   {StatusPending, StatusInTransit, StatusDelivered, StatusCancelled},
	StatusInTransit: {StatusInTransit, StatusDelivered, StatusCancelled},
	StatusDelivered: {},
	StatusCancelled: {},
}

// Check returns ErrInvalidTransition when the policy forbids from -> to.
func (p TransitionPolicy) Check(from, to Status) error {
	if p != Strict {
		return nil
	}
	for _, allowed := range strictTransitions[from] {
		if allowed == to {
			return nil
		}
	}
	return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, from, to)
}
