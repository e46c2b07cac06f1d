package clients

import (
	"context"
	"fmt"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/paymentintent"
)

// PaymentIntentRequest describes an amount to collect.
type PaymentIntentRequest struct {
	AmountMinorUnits int64
	Currency         string
	Metadata         map[string]string
}

// PaymentIntent is the provider's handle for a pending charge.
type PaymentIntent struct {
	ID           string
	ClientSecret string
}

// StripeIntentProvider creates Stripe payment intents.
type StripeIntentProvider struct {
	client paymentintent.Client
}

// NewStripeIntentProvider creates a provider authenticated with the given secret key.
func NewStripeIntentProvider(secretKey string) *StripeIntentProvider {
	return newStripeIntentProvider(secretKey, stripe.GetBackend(stripe.APIBackend))
}

func newStripeIntentProvider(secretKey string, backend stripe.Backend) *StripeIntentProvider {
	return &StripeIntentProvider{
		client: paymentintent.Client{B: backend, Key: secretKey},
	}
}

// CreateIntent creates a payment intent the browser can confirm with the returned client secret.
func (p *StripeIntentProvider) CreateIntent(ctx context.Context, req PaymentIntentRequest) (*PaymentIntent, error) {
	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(req.AmountMinorUnits),
		Currency: stripe.String(req.Currency),
	}
	params.Context = ctx
	for k, v := range req.Metadata {
		params.AddMetadata(k, v)
	}

	pi, err := p.client.New(params)
	if err != nil {
		return nil, fmt.Errorf("failed to create payment intent: %w", err)
	}
	return &PaymentIntent{ID: pi.ID, ClientSecret: pi.ClientSecret}, nil
}
