package application

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/lakeside-retreat/service-booking/internal/clients"
	bookingDomain "github.com/lakeside-retreat/service-booking/internal/domain/booking"
	"go.uber.org/zap"
)

// ErrPaymentsNotConfigured is returned when no payment provider credentials are set.
var ErrPaymentsNotConfigured = errors.New("payment processing not configured")

// IntentProvider creates payment intents with an external processor.
type IntentProvider interface {
	CreateIntent(ctx context.Context, req clients.PaymentIntentRequest) (*clients.PaymentIntent, error)
}

// CreatePaymentIntentRequest holds the stay to be charged for.
type CreatePaymentIntentRequest struct {
	AccommodationID string `json:"accommodationId"`
	CheckIn         string `json:"checkIn"`
	CheckOut        string `json:"checkOut"`
	Guests          int    `json:"guests"`
}

// PaymentIntentDTO is returned to the browser to confirm the payment.
type PaymentIntentDTO struct {
	ClientSecret string                   `json:"clientSecret"`
	Pricing      bookingDomain.PriceQuote `json:"pricing"`
}

// PaymentService quotes a stay and opens a payment intent for its total.
type PaymentService struct {
	pricing  bookingDomain.PricingStrategy
	provider IntentProvider
	currency string
	logger   *zap.Logger
}

// NewPaymentService creates a PaymentService. A nil provider means payments are not configured.
func NewPaymentService(pricing bookingDomain.PricingStrategy, provider IntentProvider, currency string, logger *zap.Logger) *PaymentService {
	return &PaymentService{
		pricing:  pricing,
		provider: provider,
		currency: currency,
		logger:   logger,
	}
}

// CreatePaymentIntent prices the stay and creates an intent for the total in minor units.
func (s *PaymentService) CreatePaymentIntent(ctx context.Context, req CreatePaymentIntentRequest) (*PaymentIntentDTO, error) {
	if s.provider == nil {
		return nil, ErrPaymentsNotConfigured
	}

	checkIn, checkOut, err := parseStayWindow(req.CheckIn, req.CheckOut)
	if err != nil {
		return nil, err
	}
	quote, err := s.pricing.Quote(req.AccommodationID, checkIn, checkOut)
	if err != nil {
		return nil, err
	}

	intent, err := s.provider.CreateIntent(ctx, clients.PaymentIntentRequest{
		AmountMinorUnits: quote.TotalMinorUnits(),
		Currency:         s.currency,
		Metadata: map[string]string{
			"accommodationId": req.AccommodationID,
			"checkIn":         req.CheckIn,
			"checkOut":        req.CheckOut,
			"guests":          strconv.Itoa(req.Guests),
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create payment intent: %w", err)
	}

	s.logger.Info("payment intent created",
		zap.String("payment_intent_id", intent.ID),
		zap.String("accommodation_id", req.AccommodationID),
		zap.Int64("total", quote.Total),
		zap.String("currency", s.currency),
	)

	return &PaymentIntentDTO{ClientSecret: intent.ClientSecret, Pricing: quote}, nil
}
