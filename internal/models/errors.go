package models

import "errors"

// Error taxonomy for the ordering core. Callers test with errors.Is; layers
// add context with fmt.Errorf("%w", ...).
var (
	// ErrValidation signals missing required order fields.
	ErrValidation = errors.New("validation failed")

	// ErrInvalidItem signals a cart addition of an unpriced or unavailable item.
	ErrInvalidItem = errors.New("item cannot be ordered")

	// ErrNotFound signals an unknown order, item or inventory id.
	ErrNotFound = errors.New("not found")

	// ErrInvalidTransition signals an order lifecycle violation.
	ErrInvalidTransition = errors.New("invalid status transition")

	// ErrForbidden signals the caller's role is insufficient.
	ErrForbidden = errors.New("forbidden")

	// ErrStore signals a transient backing-store failure.
	ErrStore = errors.New("store failure")
)
