package repository

import (
	"context"
	"fmt"

	bookingDomain "github.com/lakeside-retreat/service-booking/internal/domain/booking"
)

// UnavailableStore is the durable store variant used when no connection could be
// established at startup. Every call fails with ErrStoreUnavailable.
type UnavailableStore struct {
	cause error
}

// NewUnavailableStore creates an UnavailableStore remembering why the connection failed.
func NewUnavailableStore(cause error) *UnavailableStore {
	return &UnavailableStore{cause: cause}
}

// Available always reports false.
func (s *UnavailableStore) Available() bool { return false }

// Cause returns the startup failure that demoted the store.
func (s *UnavailableStore) Cause() error { return s.cause }

// WriteBooking always fails with ErrStoreUnavailable.
func (s *UnavailableStore) WriteBooking(_ context.Context, _ *bookingDomain.Booking) error {
	return s.err()
}

// ReadBooking always fails with ErrStoreUnavailable.
func (s *UnavailableStore) ReadBooking(_ context.Context, _ string) (*bookingDomain.Booking, bool, error) {
	return nil, false, s.err()
}

// HealthCheck always fails with ErrStoreUnavailable.
func (s *UnavailableStore) HealthCheck(_ context.Context) error {
	return s.err()
}

func (s *UnavailableStore) err() error {
	if s.cause == nil {
		return bookingDomain.ErrStoreUnavailable
	}
	return fmt.Errorf("%w: %w", bookingDomain.ErrStoreUnavailable, s.cause)
}
