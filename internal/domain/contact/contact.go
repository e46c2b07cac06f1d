package contact

import (
	"strings"
	"time"
)

// Message is a submission from the public contact form.
type Message struct {
	name        string
	email       string
	phone       string
	body        string
	submittedAt time.Time
}

// NewMessage creates a contact Message. Required fields are checked by the caller.
func NewMessage(name, email, phone, body string, now time.Time) *Message {
	return &Message{
		name:        strings.TrimSpace(name),
		email:       strings.TrimSpace(email),
		phone:       strings.TrimSpace(phone),
		body:        body,
		submittedAt: now.UTC(),
	}
}

// Name returns the sender's name.
func (m *Message) Name() string { return m.name }

// Email returns the sender's email address.
func (m *Message) Email() string { return m.email }

// Phone returns the optional phone number.
func (m *Message) Phone() string { return m.phone }

// HasPhone reports whether a phone number was given.
func (m *Message) HasPhone() bool { return m.phone != "" }

// Body returns the message text.
func (m *Message) Body() string { return m.body }

// SubmittedAt returns when the message was received.
func (m *Message) SubmittedAt() time.Time { return m.submittedAt }
