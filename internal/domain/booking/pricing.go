package booking

import (
	"math"
	"time"
)

// DefaultNightlyRate applies to accommodation ids missing from the rate table.
const DefaultNightlyRate int64 = 500

const (
	serviceFeePercent = 5
	taxPercent        = 15
)

// PricingStrategy defines the interface for quoting a stay.
type PricingStrategy interface {
	// Quote returns the price breakdown for the given accommodation and stay window.
	Quote(accommodationID string, checkIn, checkOut time.Time) (PriceQuote, error)
}

// PriceQuote is a derived, never-persisted price breakdown in whole currency units.
type PriceQuote struct {
	NightlyRate int64 `json:"nightlyRate"`
	Nights      int64 `json:"nights"`
	Subtotal    int64 `json:"subtotal"`
	ServiceFee  int64 `json:"serviceFee"`
	Tax         int64 `json:"gst"`
	Total       int64 `json:"total"`
}

// TotalMinorUnits returns the total in cents, as payment providers expect.
func (q PriceQuote) TotalMinorUnits() int64 {
	return q.Total * 100
}

// StandardPricingStrategy prices stays from a fixed nightly rate table.
type StandardPricingStrategy struct {
	rates map[string]int64
}

// NewStandardPricingStrategy creates a StandardPricingStrategy with the lodge's nightly rates.
func NewStandardPricingStrategy() *StandardPricingStrategy {
	return NewPricingStrategyWithRates(map[string]int64{
		"pinot":   659,
		"rose":    659,
		"cottage": 357,
	})
}

// NewPricingStrategyWithRates creates a StandardPricingStrategy over a custom rate table.
func NewPricingStrategyWithRates(rates map[string]int64) *StandardPricingStrategy {
	copied := make(map[string]int64, len(rates))
	for id, rate := range rates {
		copied[id] = rate
	}
	return &StandardPricingStrategy{rates: copied}
}

// NightlyRate returns the rate for the accommodation, or DefaultNightlyRate when unknown.
func (s *StandardPricingStrategy) NightlyRate(accommodationID string) int64 {
	if rate, ok := s.rates[accommodationID]; ok {
		return rate
	}
	return DefaultNightlyRate
}

// Quote computes the price breakdown.
//
// Pricing formula, rounding half-up at every step:
//   - nights: partial days round up
//   - service fee: 5% of subtotal
//   - GST: 15% of subtotal + service fee
func (s *StandardPricingStrategy) Quote(accommodationID string, checkIn, checkOut time.Time) (PriceQuote, error) {
	if !checkOut.After(checkIn) {
		return PriceQuote{}, ErrInvalidDateRange
	}

	nightlyRate := s.NightlyRate(accommodationID)
	nights := int64(math.Ceil(checkOut.Sub(checkIn).Hours() / 24))
	subtotal := nightlyRate * nights
	serviceFee := percentHalfUp(subtotal, serviceFeePercent)
	tax := percentHalfUp(subtotal+serviceFee, taxPercent)

	return PriceQuote{
		NightlyRate: nightlyRate,
		Nights:      nights,
		Subtotal:    subtotal,
		ServiceFee:  serviceFee,
		Tax:         tax,
		Total:       subtotal + serviceFee + tax,
	}, nil
}

// percentHalfUp returns round(amount * pct / 100) with halves rounded up, in integer arithmetic.
func percentHalfUp(amount, pct int64) int64 {
	return (amount*pct + 50) / 100
}
