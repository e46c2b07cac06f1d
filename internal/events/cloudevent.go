package events

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Event types emitted by the booking service.
const (
	BookingConfirmed = "booking.confirmed"
	ContactSubmitted = "contact.submitted"
)

// CloudEvent is the envelope for every message on the booking topic.
type CloudEvent struct {
	SpecVersion     string          `json:"specversion"`
	ID              string          `json:"id"`
	Source          string          `json:"source"`
	Type            string          `json:"type"`
	Time            time.Time       `json:"time"`
	DataContentType string          `json:"datacontenttype"`
	Data            json.RawMessage `json:"data"`
}

// NewCloudEvent wraps data in a CloudEvent envelope.
func NewCloudEvent(source, eventType string, data interface{}) (CloudEvent, error) {
	raw, err := json.Marshal(data)
	if err != nil {
		return CloudEvent{}, fmt.Errorf("failed to marshal event data: %w", err)
	}
	return CloudEvent{
		SpecVersion:     "1.0",
		ID:              uuid.NewString(),
		Source:          source,
		Type:            eventType,
		Time:            time.Now().UTC(),
		DataContentType: "application/json",
		Data:            raw,
	}, nil
}

// ParseCloudEvent decodes a raw message value.
func ParseCloudEvent(value []byte) (CloudEvent, error) {
	var ce CloudEvent
	if err := json.Unmarshal(value, &ce); err != nil {
		return CloudEvent{}, fmt.Errorf("failed to parse cloud event: %w", err)
	}
	return ce, nil
}

// ParseData decodes the event payload into dst.
func (e CloudEvent) ParseData(dst interface{}) error {
	return json.Unmarshal(e.Data, dst)
}

// BookingConfirmedEvent is published after a booking is accepted, whichever store holds it.
type BookingConfirmedEvent struct {
	BookingReference string    `json:"bookingReference"`
	AccommodationID  string    `json:"accommodationId"`
	CheckIn          string    `json:"checkIn"`
	CheckOut         string    `json:"checkOut"`
	GuestName        string    `json:"guestName"`
	GuestEmail       string    `json:"guestEmail"`
	Adults           int       `json:"adults"`
	Children         int       `json:"children"`
	OccurredAt       time.Time `json:"occurredAt"`
}

// ContactSubmittedEvent is published for every accepted contact form.
type ContactSubmittedEvent struct {
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Phone      string    `json:"phone,omitempty"`
	Message    string    `json:"message"`
	OccurredAt time.Time `json:"occurredAt"`
}
