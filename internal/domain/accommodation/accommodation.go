package accommodation

import "context"

// Accommodation is a bookable unit at the lodge.
type Accommodation struct {
	ID          string
	Name        string
	Description string
	MaxGuests   int
}

// PriceSource tells clients where a displayed price came from.
type PriceSource string

const (
	PriceSourceLive       PriceSource = "live"
	PriceSourceConfigured PriceSource = "configured"
)

// Catalog is the fixed set of units guests can book.
var Catalog = []Accommodation{
	{ID: "pinot", Name: "Dome Pinot", Description: "Luxury dome with stunning lake views", MaxGuests: 2},
	{ID: "rose", Name: "Dome Rosé", Description: "Romantic dome perfect for couples", MaxGuests: 2},
	{ID: "cottage", Name: "Lakeside Cottage", Description: "Cozy cottage with lake access", MaxGuests: 4},
}

// ConfiguredDisplayRates are the advertised nightly prices used when no live source answers.
var ConfiguredDisplayRates = map[string]int64{
	"pinot":   498,
	"rose":    498,
	"cottage": 245,
}

// Find returns the catalog entry with the given id.
func Find(id string) (Accommodation, bool) {
	for _, a := range Catalog {
		if a.ID == id {
			return a, true
		}
	}
	return Accommodation{}, false
}

// RateSource supplies nightly display rates keyed by accommodation id.
type RateSource interface {
	// Rates returns the current nightly rates. Implementations degrade to
	// configured rates rather than failing.
	Rates(ctx context.Context) map[string]int64

	// Source reports whether rates are live or configured.
	Source() PriceSource
}

// StaticRateSource serves a fixed rate table.
type StaticRateSource struct {
	rates map[string]int64
}

// NewStaticRateSource creates a StaticRateSource over the given table.
func NewStaticRateSource(rates map[string]int64) *StaticRateSource {
	return &StaticRateSource{rates: rates}
}

// Rates returns a copy of the configured table.
func (s *StaticRateSource) Rates(_ context.Context) map[string]int64 {
	out := make(map[string]int64, len(s.rates))
	for k, v := range s.rates {
		out[k] = v
	}
	return out
}

// Source always reports configured.
func (s *StaticRateSource) Source() PriceSource { return PriceSourceConfigured }
