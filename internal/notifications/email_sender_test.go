package notifications

import (
	"context"
	"strings"
	"testing"

	"github.com/lakeside-retreat/service-booking/internal/events"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func confirmedEvent() events.BookingConfirmedEvent {
	return events.BookingConfirmedEvent{
		BookingReference: "LR-123456-ABCDEFGH",
		AccommodationID:  "cottage",
		CheckIn:          "2025-03-01",
		CheckOut:         "2025-03-04",
		GuestName:        "Ana Ruiz",
		GuestEmail:       "ana@example.com",
		Adults:           2,
		Children:         1,
	}
}

func TestRenderConfirmation(t *testing.T) {
	body, err := renderConfirmation(confirmedEvent())
	require.NoError(t, err)

	assert.Contains(t, body, "Kia ora Ana Ruiz")
	assert.Contains(t, body, "LR-123456-ABCDEFGH")
	assert.Contains(t, body, "2 adults, 1 children")
}

func TestBuildMessage(t *testing.T) {
	msg := string(buildMessage("stay@lakeside.nz", "ana@example.com", "Booking confirmed", "line one\nline two"))

	assert.True(t, strings.HasPrefix(msg, "From: stay@lakeside.nz\r\nTo: ana@example.com\r\nSubject: Booking confirmed\r\n"))
	assert.Contains(t, msg, "\r\n\r\nline one\r\nline two")
}

func TestSMTPConfig_Enabled(t *testing.T) {
	assert.False(t, SMTPConfig{}.Enabled())
	assert.False(t, SMTPConfig{Host: "smtp.example.com"}.Enabled())
	assert.True(t, SMTPConfig{Host: "smtp.example.com", From: "stay@lakeside.nz"}.Enabled())
}

func TestNewSMTPSender_DefaultPort(t *testing.T) {
	s := NewSMTPSender(SMTPConfig{Host: "smtp.example.com", From: "stay@lakeside.nz"}, zap.NewNop())
	assert.Equal(t, 587, s.cfg.Port)
}

func TestSMTPSender_CancelledContext(t *testing.T) {
	s := NewSMTPSender(SMTPConfig{Host: "smtp.example.com", From: "stay@lakeside.nz"}, zap.NewNop())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.ErrorIs(t, s.SendBookingConfirmation(ctx, confirmedEvent()), context.Canceled)
}

func TestLogSender(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	s := NewLogSender(zap.New(core))

	require.NoError(t, s.SendBookingConfirmation(context.Background(), confirmedEvent()))
	assert.Equal(t, 1, logs.FilterField(zap.String("booking_reference", "LR-123456-ABCDEFGH")).Len())
}
