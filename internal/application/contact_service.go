package application

import (
	"context"
	"strings"
	"time"

	"github.com/lakeside-retreat/service-booking/internal/domain/booking"
	"github.com/lakeside-retreat/service-booking/internal/domain/contact"
	"github.com/lakeside-retreat/service-booking/internal/events"
	"go.uber.org/zap"
)

// ContactRequest is a contact form submission.
type ContactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
	Phone   string `json:"phone"`
}

// ContactService accepts contact form submissions and forwards them as events.
type ContactService struct {
	publisher events.Publisher
	logger    *zap.Logger
	now       func() time.Time
}

// NewContactService creates a new ContactService.
func NewContactService(publisher events.Publisher, logger *zap.Logger) *ContactService {
	return &ContactService{publisher: publisher, logger: logger, now: time.Now}
}

// Submit validates and records a contact form submission.
func (s *ContactService) Submit(ctx context.Context, req ContactRequest) error {
	var missing []string
	if strings.TrimSpace(req.Name) == "" {
		missing = append(missing, "name")
	}
	if strings.TrimSpace(req.Email) == "" {
		missing = append(missing, "email")
	}
	if strings.TrimSpace(req.Message) == "" {
		missing = append(missing, "message")
	}
	if len(missing) > 0 {
		return &booking.ValidationError{Missing: missing}
	}
	if !booking.IsValidEmail(strings.TrimSpace(req.Email)) {
		return &booking.ValidationError{Invalid: []string{"email"}}
	}

	msg := contact.NewMessage(req.Name, req.Email, req.Phone, req.Message, s.now())

	s.logger.Info("contact form submission received",
		zap.String("name", msg.Name()),
		zap.String("email", msg.Email()),
		zap.Bool("has_phone", msg.HasPhone()),
		zap.Int("message_length", len(msg.Body())),
	)

	evt := events.ContactSubmittedEvent{
		Name:       msg.Name(),
		Email:      msg.Email(),
		Phone:      msg.Phone(),
		Message:    msg.Body(),
		OccurredAt: msg.SubmittedAt(),
	}
	if err := s.publisher.Publish(ctx, events.ContactSubmitted, msg.Email(), evt); err != nil {
		s.logger.Error("failed to publish event",
			zap.String("event_type", events.ContactSubmitted),
			zap.Error(err),
		)
	}
	return nil
}
