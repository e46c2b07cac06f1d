package booking

import (
	"regexp"
	"strings"
	"time"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// StayWindow is the check-in / check-out pair of a booking.
type StayWindow struct {
	CheckIn  time.Time
	CheckOut time.Time
}

// NewStayWindow returns a StayWindow, failing with ErrInvalidDateRange unless checkOut is after checkIn.
func NewStayWindow(checkIn, checkOut time.Time) (StayWindow, error) {
	if !checkOut.After(checkIn) {
		return StayWindow{}, ErrInvalidDateRange
	}
	return StayWindow{CheckIn: checkIn, CheckOut: checkOut}, nil
}

// Occupancy holds the guest counts for a stay.
type Occupancy struct {
	Adults   int `json:"adults"`
	Children int `json:"children"`
}

// GuestContact identifies the lead guest.
type GuestContact struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
}

// IsValidEmail reports whether s matches the basic address pattern used for guest contacts.
func IsValidEmail(s string) bool {
	return emailPattern.MatchString(s)
}

// Booking is the aggregate root for a confirmed accommodation booking.
// It is created once and never mutated afterwards.
type Booking struct {
	reference        string
	accommodationID  string
	stay             StayWindow
	occupancy        Occupancy
	guest            GuestContact
	specialRequests  string
	paymentReference string
	status           BookingStatus
	createdAt        time.Time
}

// NewBooking creates a confirmed Booking. Field presence is checked by the caller;
// NewBooking enforces the value invariants.
func NewBooking(
	reference string,
	accommodationID string,
	stay StayWindow,
	occupancy Occupancy,
	guest GuestContact,
	specialRequests string,
	paymentReference string,
	now time.Time,
) (*Booking, error) {
	var invalid []string
	if strings.TrimSpace(reference) == "" {
		invalid = append(invalid, "reference")
	}
	if strings.TrimSpace(accommodationID) == "" {
		invalid = append(invalid, "accommodationId")
	}
	if occupancy.Adults < 1 {
		invalid = append(invalid, "adults")
	}
	if occupancy.Children < 0 {
		invalid = append(invalid, "children")
	}
	if !IsValidEmail(guest.Email) {
		invalid = append(invalid, "email")
	}
	if strings.TrimSpace(guest.Phone) == "" {
		invalid = append(invalid, "phone")
	}
	if len(invalid) > 0 {
		return nil, &ValidationError{Invalid: invalid}
	}
	if !stay.CheckOut.After(stay.CheckIn) {
		return nil, ErrInvalidDateRange
	}

	return &Booking{
		reference:        reference,
		accommodationID:  accommodationID,
		stay:             stay,
		occupancy:        occupancy,
		guest:            guest,
		specialRequests:  specialRequests,
		paymentReference: paymentReference,
		status:           StatusConfirmed,
		createdAt:        now.UTC(),
	}, nil
}

// ReconstructBooking rebuilds a Booking from persistence data (no validation).
func ReconstructBooking(
	reference string,
	accommodationID string,
	stay StayWindow,
	occupancy Occupancy,
	guest GuestContact,
	specialRequests string,
	paymentReference string,
	status BookingStatus,
	createdAt time.Time,
) *Booking {
	return &Booking{
		reference:        reference,
		accommodationID:  accommodationID,
		stay:             stay,
		occupancy:        occupancy,
		guest:            guest,
		specialRequests:  specialRequests,
		paymentReference: paymentReference,
		status:           status,
		createdAt:        createdAt,
	}
}

// --- Getters ---

// Reference returns the booking's unique, human-shareable identifier.
func (b *Booking) Reference() string { return b.reference }

// AccommodationID returns the booked accommodation unit.
func (b *Booking) AccommodationID() string { return b.accommodationID }

// Stay returns the check-in / check-out window.
func (b *Booking) Stay() StayWindow { return b.stay }

// Occupancy returns the guest counts.
func (b *Booking) Occupancy() Occupancy { return b.occupancy }

// Guest returns the lead guest's contact details.
func (b *Booking) Guest() GuestContact { return b.guest }

// SpecialRequests returns free-text requests, possibly empty.
func (b *Booking) SpecialRequests() string { return b.specialRequests }

// PaymentReference returns the external payment-intent id, possibly empty.
func (b *Booking) PaymentReference() string { return b.paymentReference }

// Status returns the booking status.
func (b *Booking) Status() BookingStatus { return b.status }

// CreatedAt returns the creation timestamp.
func (b *Booking) CreatedAt() time.Time { return b.createdAt }
