// Package notifications delivers guest-facing emails.
package notifications

import (
	"bytes"
	"context"
	"fmt"
	"net"
	"net/smtp"
	"strconv"
	"strings"
	"text/template"

	"github.com/lakeside-retreat/service-booking/internal/events"
	"go.uber.org/zap"
)

var confirmationTemplate = template.Must(template.New("confirmation").Parse(
	`Kia ora {{.GuestName}},

Your booking {{.BookingReference}} is confirmed.

Accommodation: {{.AccommodationID}}
Check-in:      {{.CheckIn}}
Check-out:     {{.CheckOut}}
Guests:        {{.Adults}} adults, {{.Children}} children

We look forward to hosting you.
`))

// SMTPConfig holds SMTP settings.
type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

// Enabled reports whether enough settings are present to send mail.
func (c SMTPConfig) Enabled() bool {
	return c.Host != "" && c.From != ""
}

// SMTPSender sends plain-text confirmations over SMTP. smtp.SendMail upgrades
// to STARTTLS when the server offers it.
type SMTPSender struct {
	cfg    SMTPConfig
	logger *zap.Logger
}

// NewSMTPSender creates an SMTPSender.
func NewSMTPSender(cfg SMTPConfig, logger *zap.Logger) *SMTPSender {
	if cfg.Port == 0 {
		cfg.Port = 587
	}
	return &SMTPSender{cfg: cfg, logger: logger}
}

// SendBookingConfirmation emails the guest their booking details.
func (s *SMTPSender) SendBookingConfirmation(ctx context.Context, evt events.BookingConfirmedEvent) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	body, err := renderConfirmation(evt)
	if err != nil {
		return err
	}
	msg := buildMessage(s.cfg.From, evt.GuestEmail, "Booking confirmed: "+evt.BookingReference, body)

	var auth smtp.Auth
	if s.cfg.Username != "" {
		auth = smtp.PlainAuth("", s.cfg.Username, s.cfg.Password, s.cfg.Host)
	}
	addr := net.JoinHostPort(s.cfg.Host, strconv.Itoa(s.cfg.Port))

	if err := smtp.SendMail(addr, auth, s.cfg.From, []string{evt.GuestEmail}, msg); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	s.logger.Info("confirmation email sent",
		zap.String("booking_reference", evt.BookingReference),
	)
	return nil
}

// LogSender records confirmations in the log instead of sending them.
type LogSender struct {
	logger *zap.Logger
}

// NewLogSender creates a LogSender.
func NewLogSender(logger *zap.Logger) *LogSender {
	return &LogSender{logger: logger}
}

// SendBookingConfirmation logs the confirmation.
func (s *LogSender) SendBookingConfirmation(_ context.Context, evt events.BookingConfirmedEvent) error {
	s.logger.Info("email sender not configured, confirmation logged only",
		zap.String("booking_reference", evt.BookingReference),
		zap.String("accommodation_id", evt.AccommodationID),
		zap.String("email", evt.GuestEmail),
	)
	return nil
}

func renderConfirmation(evt events.BookingConfirmedEvent) (string, error) {
	var buf bytes.Buffer
	if err := confirmationTemplate.Execute(&buf, evt); err != nil {
		return "", fmt.Errorf("failed to render confirmation: %w", err)
	}
	return buf.String(), nil
}

func buildMessage(from, to, subject, body string) []byte {
	var b strings.Builder
	b.WriteString("From: " + from + "\r\n")
	b.WriteString("To: " + to + "\r\n")
	b.WriteString("Subject: " + subject + "\r\n")
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/plain; charset=\"UTF-8\"\r\n")
	b.WriteString("\r\n")
	b.WriteString(strings.ReplaceAll(body, "\n", "\r\n"))
	return []byte(b.String())
}
