package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	bookingDomain "github.com/lakeside-retreat/service-booking/internal/domain/booking"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const createBookingsTableSQL = `CREATE TABLE IF NOT EXISTS bookings (
	id SERIAL PRIMARY KEY,
	booking_reference VARCHAR(20) UNIQUE NOT NULL,
	data JSONB NOT NULL,
	created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
)`

// BookingModel is the GORM model for the bookings table. The full booking is
// kept as a JSON document; created_at is filled in by the database.
type BookingModel struct {
	ID        uint            `gorm:"primaryKey"`
	Reference string          `gorm:"column:booking_reference;uniqueIndex;not null;size:20"`
	Data      json.RawMessage `gorm:"type:jsonb;not null"`
	StoredAt  time.Time       `gorm:"column:created_at;not null;default:CURRENT_TIMESTAMP"`
}

// TableName returns the table name for the GORM model.
func (BookingModel) TableName() string {
	return "bookings"
}

// bookingPayload is the JSON document stored in the data column.
type bookingPayload struct {
	BookingReference string                     `json:"bookingReference"`
	AccommodationID  string                     `json:"accommodationId"`
	CheckIn          time.Time                  `json:"checkIn"`
	CheckOut         time.Time                  `json:"checkOut"`
	Guests           bookingDomain.Occupancy    `json:"guests"`
	Guest            bookingDomain.GuestContact `json:"guest"`
	SpecialRequests  string                     `json:"specialRequests"`
	PaymentIntentID  string                     `json:"paymentIntentId,omitempty"`
	Status           string                     `json:"status"`
	CreatedAt        time.Time                  `json:"createdAt"`
}

// GormBookingStore is the connected durable store, backed by PostgreSQL through GORM.
type GormBookingStore struct {
	db        *gorm.DB
	opTimeout time.Duration
	logger    *zap.Logger

	schemaMu    sync.Mutex
	schemaReady bool
}

// NewGormBookingStore creates a GormBookingStore. Each call is bounded by opTimeout when positive.
func NewGormBookingStore(db *gorm.DB, opTimeout time.Duration, logger *zap.Logger) *GormBookingStore {
	return &GormBookingStore{db: db, opTimeout: opTimeout, logger: logger}
}

// Available always reports true for a connected store.
func (r *GormBookingStore) Available() bool { return true }

// WriteBooking inserts a booking, creating the table first if needed.
func (r *GormBookingStore) WriteBooking(ctx context.Context, bk *bookingDomain.Booking) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	if err := r.ensureSchema(ctx); err != nil {
		return fmt.Errorf("%w: %w", bookingDomain.ErrStoreWrite, err)
	}

	model, err := toBookingModel(bk)
	if err != nil {
		return fmt.Errorf("%w: %w", bookingDomain.ErrStoreWrite, err)
	}

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("%w: failed to insert booking %s: %w", bookingDomain.ErrStoreWrite, bk.Reference(), err)
	}

	r.logger.Info("booking saved to database", zap.String("booking_reference", bk.Reference()))
	return nil
}

// ReadBooking retrieves a booking by reference. A missing row is not an error.
func (r *GormBookingStore) ReadBooking(ctx context.Context, reference string) (*bookingDomain.Booking, bool, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	if err := r.ensureSchema(ctx); err != nil {
		return nil, false, fmt.Errorf("%w: %w", bookingDomain.ErrStoreRead, err)
	}

	var model BookingModel
	if err := r.db.WithContext(ctx).Where("booking_reference = ?", reference).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("%w: %w", bookingDomain.ErrStoreRead, err)
	}

	bk, err := toDomainBooking(&model)
	if err != nil {
		return nil, false, fmt.Errorf("%w: %w", bookingDomain.ErrStoreRead, err)
	}
	return bk, true, nil
}

// HealthCheck pings the database.
func (r *GormBookingStore) HealthCheck(ctx context.Context) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	sqlDB, err := r.db.DB()
	if err != nil {
		return fmt.Errorf("failed to get sql.DB: %w", err)
	}
	return sqlDB.PingContext(ctx)
}

// Close releases the connection pool.
func (r *GormBookingStore) Close() error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// ensureSchema runs the idempotent table creation until it first succeeds.
func (r *GormBookingStore) ensureSchema(ctx context.Context) error {
	r.schemaMu.Lock()
	defer r.schemaMu.Unlock()

	if r.schemaReady {
		return nil
	}
	if err := r.db.WithContext(ctx).Exec(createBookingsTableSQL).Error; err != nil {
		return fmt.Errorf("failed to create bookings table: %w", err)
	}
	r.schemaReady = true
	return nil
}

func (r *GormBookingStore) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if r.opTimeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, r.opTimeout)
}

// --- Conversion Helpers ---

func toBookingModel(bk *bookingDomain.Booking) (*BookingModel, error) {
	data, err := json.Marshal(bookingPayload{
		BookingReference: bk.Reference(),
		AccommodationID:  bk.AccommodationID(),
		CheckIn:          bk.Stay().CheckIn,
		CheckOut:         bk.Stay().CheckOut,
		Guests:           bk.Occupancy(),
		Guest:            bk.Guest(),
		SpecialRequests:  bk.SpecialRequests(),
		PaymentIntentID:  bk.PaymentReference(),
		Status:           bk.Status().String(),
		CreatedAt:        bk.CreatedAt(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal booking: %w", err)
	}

	return &BookingModel{
		Reference: bk.Reference(),
		Data:      data,
	}, nil
}

func toDomainBooking(m *BookingModel) (*bookingDomain.Booking, error) {
	var p bookingPayload
	if err := json.Unmarshal(m.Data, &p); err != nil {
		return nil, fmt.Errorf("failed to unmarshal booking %s: %w", m.Reference, err)
	}

	status, err := bookingDomain.ParseBookingStatus(p.Status)
	if err != nil {
		return nil, err
	}

	return bookingDomain.ReconstructBooking(
		m.Reference,
		p.AccommodationID,
		bookingDomain.StayWindow{CheckIn: p.CheckIn, CheckOut: p.CheckOut},
		p.Guests,
		p.Guest,
		p.SpecialRequests,
		p.PaymentIntentID,
		status,
		p.CreatedAt,
	), nil
}
