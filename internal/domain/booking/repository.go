package booking

import "context"

// DurableStore is the persistence contract for the external relational store.
// Implementations are chosen once at startup: a connected store, or an
// unavailable one that rejects every call with ErrStoreUnavailable.
type DurableStore interface {
	// Available reports whether the store holds a live connection.
	Available() bool

	// WriteBooking inserts the booking keyed by its reference.
	// Faults are wrapped in ErrStoreWrite or ErrStoreUnavailable.
	WriteBooking(ctx context.Context, b *Booking) error

	// ReadBooking looks up a booking by reference. A miss returns found=false
	// with a nil error. Faults are wrapped in ErrStoreRead or ErrStoreUnavailable.
	ReadBooking(ctx context.Context, reference string) (b *Booking, found bool, err error)

	// HealthCheck probes the underlying connection.
	HealthCheck(ctx context.Context) error
}

// FallbackStore is the process-local store used when the durable store cannot serve.
// Implementations must be safe for concurrent use.
type FallbackStore interface {
	// Put stores the booking under reference, replacing any previous value.
	Put(reference string, b *Booking)

	// Get returns the booking stored under reference.
	Get(reference string) (*Booking, bool)
}
