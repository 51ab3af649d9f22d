package heartbeat

import "errors"

// Sentinel errors for heartbeat operations.
//
// These provide type-safe error checking using errors.Is(). Adapters wrap
// external failures with context using fmt.Errorf("...: %w", err).
var (
	// ErrDuplicateCode is returned when adding a heartbeat whose code is
	// already tracked.
	ErrDuplicateCode = errors.New("heartbeat code already exists")

	// ErrNotFound is returned when an operation references an unknown code.
	ErrNotFound = errors.New("heartbeat not found")

	// ErrMalformedRecord is returned when a record violates the data model
	// (empty code, bad template, negative leniency).
	ErrMalformedRecord = errors.New("malformed heartbeat record")
)
