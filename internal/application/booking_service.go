package application

import (
	"context"
	"errors"
	"strings"
	"time"

	bookingDomain "github.com/lakeside-retreat/service-booking/internal/domain/booking"
	"github.com/lakeside-retreat/service-booking/internal/events"
	"go.uber.org/zap"
)

const (
	defaultAdults   = 2
	defaultChildren = 0
)

// CreateBookingRequest holds the data needed to create a new booking.
type CreateBookingRequest struct {
	AccommodationID  string `json:"accommodationId"`
	CheckIn          string `json:"checkIn"`
	CheckOut         string `json:"checkOut"`
	Adults           *int   `json:"adults"`
	Children         *int   `json:"children"`
	FirstName        string `json:"firstName"`
	LastName         string `json:"lastName"`
	Email            string `json:"email"`
	Phone            string `json:"phone"`
	SpecialRequests  string `json:"specialRequests"`
	PaymentIntentID  string `json:"paymentIntentId"`
	PaymentReference string `json:"paymentReference"`
}

// BookingDTO is the response representation of a booking.
type BookingDTO struct {
	Reference        string                     `json:"bookingReference"`
	AccommodationID  string                     `json:"accommodationId"`
	CheckIn          string                     `json:"checkIn"`
	CheckOut         string                     `json:"checkOut"`
	Guests           bookingDomain.Occupancy    `json:"guests"`
	Guest            bookingDomain.GuestContact `json:"guest"`
	SpecialRequests  string                     `json:"specialRequests"`
	PaymentReference string                     `json:"paymentIntentId,omitempty"`
	Status           string                     `json:"status"`
	CreatedAt        time.Time                  `json:"createdAt"`
}

// BookingService is the application service orchestrating booking use cases.
// It is the only writer of bookings.
type BookingService struct {
	durable    bookingDomain.DurableStore
	fallback   bookingDomain.FallbackStore
	references bookingDomain.ReferenceGenerator
	pricing    bookingDomain.PricingStrategy
	publisher  events.Publisher
	logger     *zap.Logger
	now        func() time.Time
}

// NewBookingService creates a new BookingService.
func NewBookingService(
	durable bookingDomain.DurableStore,
	fallback bookingDomain.FallbackStore,
	references bookingDomain.ReferenceGenerator,
	pricing bookingDomain.PricingStrategy,
	publisher events.Publisher,
	logger *zap.Logger,
) *BookingService {
	return &BookingService{
		durable:    durable,
		fallback:   fallback,
		references: references,
		pricing:    pricing,
		publisher:  publisher,
		logger:     logger,
		now:        time.Now,
	}
}

// CreateBooking validates the request and stores a confirmed booking. Durable
// store faults never fail the call: the booking is kept in the fallback store.
func (s *BookingService) CreateBooking(ctx context.Context, req CreateBookingRequest) (*BookingDTO, error) {
	if missing := req.missingFields(); len(missing) > 0 {
		return nil, &bookingDomain.ValidationError{Missing: missing}
	}

	var invalid []string
	checkIn, err := parseStayDate(req.CheckIn)
	if err != nil {
		invalid = append(invalid, "checkIn")
	}
	checkOut, err := parseStayDate(req.CheckOut)
	if err != nil {
		invalid = append(invalid, "checkOut")
	}
	occupancy := req.occupancy()
	if occupancy.Adults < 1 {
		invalid = append(invalid, "adults")
	}
	if occupancy.Children < 0 {
		invalid = append(invalid, "children")
	}
	if !bookingDomain.IsValidEmail(strings.TrimSpace(req.Email)) {
		invalid = append(invalid, "email")
	}
	if len(invalid) > 0 {
		return nil, &bookingDomain.ValidationError{Invalid: invalid}
	}

	quote, err := s.pricing.Quote(req.AccommodationID, checkIn, checkOut)
	if err != nil {
		return nil, err
	}
	stay, err := bookingDomain.NewStayWindow(checkIn, checkOut)
	if err != nil {
		return nil, err
	}

	bk, err := bookingDomain.NewBooking(
		s.references.Generate(),
		strings.TrimSpace(req.AccommodationID),
		stay,
		occupancy,
		bookingDomain.GuestContact{
			FirstName: strings.TrimSpace(req.FirstName),
			LastName:  strings.TrimSpace(req.LastName),
			Email:     strings.TrimSpace(req.Email),
			Phone:     strings.TrimSpace(req.Phone),
		},
		req.SpecialRequests,
		req.paymentReference(),
		s.now(),
	)
	if err != nil {
		return nil, err
	}

	// The guest may already have been charged, so a client disconnect must not
	// push the booking off the durable path.
	s.persist(context.WithoutCancel(ctx), bk)
	s.publishBookingConfirmed(ctx, bk)

	s.logger.Info("booking created successfully",
		zap.String("booking_reference", bk.Reference()),
		zap.String("accommodation_id", bk.AccommodationID()),
		zap.Int64("nights", quote.Nights),
		zap.Int64("quoted_total", quote.Total),
	)

	result := toBookingDTO(bk)
	return &result, nil
}

// GetBooking retrieves a booking by reference, preferring the durable store and
// falling back to the in-memory store on a miss or any store fault.
func (s *BookingService) GetBooking(ctx context.Context, reference string) (*BookingDTO, error) {
	reference = strings.TrimSpace(reference)
	if reference == "" {
		return nil, bookingDomain.ErrBookingNotFound
	}

	if s.durable.Available() {
		bk, found, err := s.durable.ReadBooking(ctx, reference)
		switch {
		case err != nil:
			s.logger.Error("database query failed",
				zap.String("booking_reference", reference),
				zap.Error(err),
			)
		case found:
			result := toBookingDTO(bk)
			return &result, nil
		}
	}

	if bk, ok := s.fallback.Get(reference); ok {
		result := toBookingDTO(bk)
		return &result, nil
	}

	return nil, bookingDomain.ErrBookingNotFound
}

// Quote prices a stay for the given accommodation.
func (s *BookingService) Quote(accommodationID, checkIn, checkOut string) (bookingDomain.PriceQuote, error) {
	in, out, err := parseStayWindow(checkIn, checkOut)
	if err != nil {
		return bookingDomain.PriceQuote{}, err
	}
	return s.pricing.Quote(accommodationID, in, out)
}

func (s *BookingService) persist(ctx context.Context, bk *bookingDomain.Booking) {
	err := s.durable.WriteBooking(ctx, bk)
	if err == nil {
		return
	}

	if errors.Is(err, bookingDomain.ErrStoreUnavailable) {
		s.logger.Warn("durable store unavailable, using memory",
			zap.String("booking_reference", bk.Reference()),
		)
	} else {
		s.logger.Error("database save failed, using memory",
			zap.String("booking_reference", bk.Reference()),
			zap.Error(err),
		)
	}
	s.fallback.Put(bk.Reference(), bk)
}

func (s *BookingService) publishBookingConfirmed(ctx context.Context, bk *bookingDomain.Booking) {
	guest := bk.Guest()
	evt := events.BookingConfirmedEvent{
		BookingReference: bk.Reference(),
		AccommodationID:  bk.AccommodationID(),
		CheckIn:          formatStayDate(bk.Stay().CheckIn),
		CheckOut:         formatStayDate(bk.Stay().CheckOut),
		GuestName:        strings.TrimSpace(guest.FirstName + " " + guest.LastName),
		GuestEmail:       guest.Email,
		Adults:           bk.Occupancy().Adults,
		Children:         bk.Occupancy().Children,
		OccurredAt:       s.now().UTC(),
	}
	if err := s.publisher.Publish(ctx, events.BookingConfirmed, bk.Reference(), evt); err != nil {
		s.logger.Error("failed to publish event",
			zap.String("event_type", events.BookingConfirmed),
			zap.String("booking_reference", bk.Reference()),
			zap.Error(err),
		)
	}
}

// --- Helpers ---

func (r CreateBookingRequest) missingFields() []string {
	required := []struct {
		name  string
		value string
	}{
		{"accommodationId", r.AccommodationID},
		{"checkIn", r.CheckIn},
		{"checkOut", r.CheckOut},
		{"firstName", r.FirstName},
		{"lastName", r.LastName},
		{"email", r.Email},
		{"phone", r.Phone},
	}

	var missing []string
	for _, f := range required {
		if strings.TrimSpace(f.value) == "" {
			missing = append(missing, f.name)
		}
	}
	return missing
}

func (r CreateBookingRequest) occupancy() bookingDomain.Occupancy {
	o := bookingDomain.Occupancy{Adults: defaultAdults, Children: defaultChildren}
	if r.Adults != nil {
		o.Adults = *r.Adults
	}
	if r.Children != nil {
		o.Children = *r.Children
	}
	return o
}

func (r CreateBookingRequest) paymentReference() string {
	if ref := strings.TrimSpace(r.PaymentIntentID); ref != "" {
		return ref
	}
	return strings.TrimSpace(r.PaymentReference)
}

func toBookingDTO(bk *bookingDomain.Booking) BookingDTO {
	return BookingDTO{
		Reference:        bk.Reference(),
		AccommodationID:  bk.AccommodationID(),
		CheckIn:          formatStayDate(bk.Stay().CheckIn),
		CheckOut:         formatStayDate(bk.Stay().CheckOut),
		Guests:           bk.Occupancy(),
		Guest:            bk.Guest(),
		SpecialRequests:  bk.SpecialRequests(),
		PaymentReference: bk.PaymentReference(),
		Status:           bk.Status().String(),
		CreatedAt:        bk.CreatedAt(),
	}
}
