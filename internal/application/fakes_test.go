package application

import (
	"context"
	"sync"

	"github.com/lakeside-retreat/service-booking/internal/clients"
	bookingDomain "github.com/lakeside-retreat/service-booking/internal/domain/booking"
)

// fakeDurableStore is an in-memory DurableStore with injectable faults.
type fakeDurableStore struct {
	mu        sync.Mutex
	available bool
	writeErr  error
	readErr   error
	healthErr error
	bookings  map[string]*bookingDomain.Booking
	writes    int
	reads     int
}

func newFakeDurableStore() *fakeDurableStore {
	return &fakeDurableStore{available: true, bookings: make(map[string]*bookingDomain.Booking)}
}

func (f *fakeDurableStore) Available() bool { return f.available }

func (f *fakeDurableStore) WriteBooking(_ context.Context, bk *bookingDomain.Booking) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.writes++
	if f.writeErr != nil {
		return f.writeErr
	}
	f.bookings[bk.Reference()] = bk
	return nil
}

func (f *fakeDurableStore) ReadBooking(_ context.Context, reference string) (*bookingDomain.Booking, bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.reads++
	if f.readErr != nil {
		return nil, false, f.readErr
	}
	bk, ok := f.bookings[reference]
	return bk, ok, nil
}

func (f *fakeDurableStore) HealthCheck(_ context.Context) error { return f.healthErr }

// fakeFallbackStore is a map-backed FallbackStore.
type fakeFallbackStore struct {
	mu       sync.Mutex
	bookings map[string]*bookingDomain.Booking
}

func newFakeFallbackStore() *fakeFallbackStore {
	return &fakeFallbackStore{bookings: make(map[string]*bookingDomain.Booking)}
}

func (f *fakeFallbackStore) Put(reference string, bk *bookingDomain.Booking) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.bookings[reference] = bk
}

func (f *fakeFallbackStore) Get(reference string) (*bookingDomain.Booking, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	bk, ok := f.bookings[reference]
	return bk, ok
}

func (f *fakeFallbackStore) len() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.bookings)
}

// fixedReferences hands out the same reference every time.
type fixedReferences string

func (r fixedReferences) Generate() string { return string(r) }

type publishedEvent struct {
	eventType string
	key       string
	data      interface{}
}

// recordingPublisher captures published events.
type recordingPublisher struct {
	mu     sync.Mutex
	err    error
	events []publishedEvent
}

func (p *recordingPublisher) Publish(_ context.Context, eventType, key string, data interface{}) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, publishedEvent{eventType: eventType, key: key, data: data})
	return p.err
}

func (p *recordingPublisher) Close() error { return nil }

// fakeIntentProvider records the last intent request.
type fakeIntentProvider struct {
	err     error
	request clients.PaymentIntentRequest
	calls   int
}

func (f *fakeIntentProvider) CreateIntent(_ context.Context, req clients.PaymentIntentRequest) (*clients.PaymentIntent, error) {
	f.calls++
	f.request = req
	if f.err != nil {
		return nil, f.err
	}
	return &clients.PaymentIntent{ID: "pi_test", ClientSecret: "pi_test_secret"}, nil
}

func intPtr(v int) *int { return &v }
