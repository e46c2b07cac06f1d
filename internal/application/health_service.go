package application

import (
	"context"
	"time"

	bookingDomain "github.com/lakeside-retreat/service-booking/internal/domain/booking"
)

// Durable store states reported by the health check.
const (
	StoreConnected   = "connected"
	StoreDegraded    = "degraded"
	StoreUnavailable = "unavailable"
)

// HealthDTO is the health check response.
type HealthDTO struct {
	Status       string    `json:"status"`
	Timestamp    time.Time `json:"timestamp"`
	Uptime       float64   `json:"uptime"`
	DurableStore string    `json:"durableStore"`
}

// HealthService reports process and storage health.
type HealthService struct {
	durable   bookingDomain.DurableStore
	startedAt time.Time
	now       func() time.Time
}

// NewHealthService creates a HealthService; uptime is measured from now.
func NewHealthService(durable bookingDomain.DurableStore) *HealthService {
	return &HealthService{durable: durable, startedAt: time.Now(), now: time.Now}
}

// Check returns the current health. The service stays healthy when only the
// durable store is impaired, since bookings keep flowing to the fallback store.
func (s *HealthService) Check(ctx context.Context) HealthDTO {
	store := StoreUnavailable
	if s.durable.Available() {
		store = StoreConnected
		if err := s.durable.HealthCheck(ctx); err != nil {
			store = StoreDegraded
		}
	}

	now := s.now()
	return HealthDTO{
		Status:       "healthy",
		Timestamp:    now.UTC(),
		Uptime:       now.Sub(s.startedAt).Seconds(),
		DurableStore: store,
	}
}
