package booking

import "fmt"

// BookingStatus is the lifecycle state stored with a booking.
type BookingStatus string

// StatusConfirmed is the only status a booking can hold; cancellation and refunds are handled elsewhere.
const StatusConfirmed BookingStatus = "confirmed"

// IsValid reports whether s is a known status.
func (s BookingStatus) IsValid() bool {
	return s == StatusConfirmed
}

func (s BookingStatus) String() string {
	return string(s)
}

// ParseBookingStatus reads a status from its stored form.
func ParseBookingStatus(raw string) (BookingStatus, error) {
	if status := BookingStatus(raw); status.IsValid() {
		return status, nil
	}
	return "", fmt.Errorf("unknown booking status %q", raw)
}
