package domain

import "errors"

// Error taxonomy for lifecycle operations. Callers match with errors.Is;
// failed operations never leave partial writes behind.
var (
	// ErrNotFound: a lookup by id or alternate key matched no record.
	ErrNotFound = errors.New("not found")

	// ErrInvalidState: the source record has already advanced past the
	// required pre-state (double pickup, double return, double inspection).
	ErrInvalidState = errors.New("invalid state")

	// ErrValidation: a required operator-entered field is missing or
	// malformed.
	ErrValidation = errors.New("validation failed")
)
