package repository

import (
	"sync"

	bookingDomain "github.com/lakeside-retreat/service-booking/internal/domain/booking"
)

// MemoryBookingStore is the process-local fallback store. Contents are lost on restart.
type MemoryBookingStore struct {
	mu       sync.RWMutex
	bookings map[string]*bookingDomain.Booking
}

// NewMemoryBookingStore creates an empty MemoryBookingStore.
func NewMemoryBookingStore() *MemoryBookingStore {
	return &MemoryBookingStore{bookings: make(map[string]*bookingDomain.Booking)}
}

// Put stores the booking under reference, replacing any previous value.
func (s *MemoryBookingStore) Put(reference string, bk *bookingDomain.Booking) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.bookings[reference] = bk
}

// Get returns the booking stored under reference.
func (s *MemoryBookingStore) Get(reference string) (*bookingDomain.Booking, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	bk, ok := s.bookings[reference]
	return bk, ok
}

// Len returns the number of stored bookings.
func (s *MemoryBookingStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.bookings)
}
