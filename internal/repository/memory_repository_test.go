package repository

import (
	"fmt"
	"sync"
	"testing"
	"time"

	bookingDomain "github.com/lakeside-retreat/service-booking/internal/domain/booking"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestBooking(t *testing.T, reference string) *bookingDomain.Booking {
	t.Helper()
	stay, err := bookingDomain.NewStayWindow(
		time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2025, 3, 4, 0, 0, 0, 0, time.UTC),
	)
	require.NoError(t, err)

	bk, err := bookingDomain.NewBooking(
		reference,
		"cottage",
		stay,
		bookingDomain.Occupancy{Adults: 2, Children: 1},
		bookingDomain.GuestContact{FirstName: "Ana", LastName: "Ruiz", Email: "ana@example.com", Phone: "021000000"},
		"ground floor please",
		"pi_123",
		time.Date(2025, 2, 1, 10, 0, 0, 0, time.UTC),
	)
	require.NoError(t, err)
	return bk
}

func TestMemoryBookingStore_PutGet(t *testing.T) {
	store := NewMemoryBookingStore()
	bk := newTestBooking(t, "LR-000001-AAAAAAAA")

	_, ok := store.Get(bk.Reference())
	assert.False(t, ok)

	store.Put(bk.Reference(), bk)

	got, ok := store.Get(bk.Reference())
	require.True(t, ok)
	assert.Same(t, bk, got)
	assert.Equal(t, 1, store.Len())
}

func TestMemoryBookingStore_ConcurrentAccess(t *testing.T) {
	store := NewMemoryBookingStore()
	bookings := make([]*bookingDomain.Booking, 50)
	for i := range bookings {
		bookings[i] = newTestBooking(t, fmt.Sprintf("LR-%06d-CONCURRN", i))
	}

	var wg sync.WaitGroup
	for _, bk := range bookings {
		wg.Add(1)
		go func(bk *bookingDomain.Booking) {
			defer wg.Done()
			store.Put(bk.Reference(), bk)
			_, ok := store.Get(bk.Reference())
			assert.True(t, ok)
		}(bk)
	}
	wg.Wait()

	assert.Equal(t, 50, store.Len())
}
