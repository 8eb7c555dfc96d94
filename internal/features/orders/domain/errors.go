package domain

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrValidation is matched by every caller-correctable input error.
	ErrValidation = errors.New("validation failed")
	// ErrInvalidStatus is returned for a status outside the lifecycle states.
	ErrInvalidStatus = fmt.Errorf("%w: invalid status", ErrValidation)
	// ErrNotFound is returned when an order id or tracking code does not exist.
	ErrNotFound = errors.New("order not found")
	// ErrDuplicateTrackingCode is returned by the store when a tracking code is already taken.
	ErrDuplicateTrackingCode = errors.New("duplicate tracking code")
	// ErrDuplicateOrderID is returned by the store when an order id is already taken.
	ErrDuplicateOrderID = errors.New("duplicate order id")
	// ErrInvalidTransition is returned when the transition policy rejects a status change.
	ErrInvalidTransition = errors.New("invalid status transition")
)

// ValidationError lists the input fields that failed validation.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: required fields missing: %s", ErrValidation, strings.Join(e.Fields, ", "))
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}
