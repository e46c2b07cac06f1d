package booking

import (
	"errors"
	"strings"
)

var (
	// ErrInvalidDateRange is returned when check-out is not strictly after check-in.
	ErrInvalidDateRange = errors.New("check-out must be after check-in")

	// ErrBookingNotFound is returned when a reference is absent from every store.
	ErrBookingNotFound = errors.New("booking not found")

	// ErrStoreUnavailable is returned by a durable store that has no live connection.
	ErrStoreUnavailable = errors.New("durable store unavailable")

	// ErrStoreWrite wraps any fault observed while writing to the durable store.
	ErrStoreWrite = errors.New("durable store write failed")

	// ErrStoreRead wraps any fault observed while reading from the durable store.
	ErrStoreRead = errors.New("durable store read failed")
)

// ValidationError reports client input defects. Missing lists absent required
// fields; Invalid lists fields that are present but malformed.
type ValidationError struct {
	Missing []string
	Invalid []string
}

func (e *ValidationError) Error() string {
	var parts []string
	if len(e.Missing) > 0 {
		parts = append(parts, "missing required fields: "+strings.Join(e.Missing, ", "))
	}
	if len(e.Invalid) > 0 {
		parts = append(parts, "invalid fields: "+strings.Join(e.Invalid, ", "))
	}
	if len(parts) == 0 {
		return "validation failed"
	}
	return strings.Join(parts, "; ")
}
