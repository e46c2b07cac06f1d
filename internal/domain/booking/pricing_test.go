package booking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.Parse(time.RFC3339, s)
	require.NoError(t, err)
	return d
}

func TestStandardPricingStrategy_Quote(t *testing.T) {
	strategy := NewStandardPricingStrategy()

	tests := []struct {
		name            string
		accommodationID string
		checkIn         string
		checkOut        string
		want            PriceQuote
	}{
		{
			name:            "cottage three nights",
			accommodationID: "cottage",
			checkIn:         "2025-03-01T00:00:00Z",
			checkOut:        "2025-03-04T00:00:00Z",
			want:            PriceQuote{NightlyRate: 357, Nights: 3, Subtotal: 1071, ServiceFee: 54, Tax: 169, Total: 1294},
		},
		{
			name:            "pinot two nights",
			accommodationID: "pinot",
			checkIn:         "2025-06-10T00:00:00Z",
			checkOut:        "2025-06-12T00:00:00Z",
			want:            PriceQuote{NightlyRate: 659, Nights: 2, Subtotal: 1318, ServiceFee: 66, Tax: 208, Total: 1592},
		},
		{
			name:            "unknown accommodation uses default rate",
			accommodationID: "treehouse",
			checkIn:         "2025-06-10T00:00:00Z",
			checkOut:        "2025-06-11T00:00:00Z",
			want:            PriceQuote{NightlyRate: DefaultNightlyRate, Nights: 1, Subtotal: 500, ServiceFee: 25, Tax: 79, Total: 604},
		},
		{
			name:            "partial day rounds up",
			accommodationID: "rose",
			checkIn:         "2025-06-10T00:00:00Z",
			checkOut:        "2025-06-11T12:00:00Z",
			want:            PriceQuote{NightlyRate: 659, Nights: 2, Subtotal: 1318, ServiceFee: 66, Tax: 208, Total: 1592},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := strategy.Quote(tt.accommodationID, date(t, tt.checkIn), date(t, tt.checkOut))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, got.Subtotal+got.ServiceFee+got.Tax, got.Total)
		})
	}
}

func TestStandardPricingStrategy_QuoteIsDeterministic(t *testing.T) {
	strategy := NewStandardPricingStrategy()
	in, out := date(t, "2025-03-01T00:00:00Z"), date(t, "2025-03-04T00:00:00Z")

	first, err := strategy.Quote("cottage", in, out)
	require.NoError(t, err)
	for i := 0; i < 10; i++ {
		again, err := strategy.Quote("cottage", in, out)
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

func TestStandardPricingStrategy_InvalidRange(t *testing.T) {
	strategy := NewStandardPricingStrategy()
	day := date(t, "2025-03-01T00:00:00Z")

	_, err := strategy.Quote("cottage", day, day)
	assert.ErrorIs(t, err, ErrInvalidDateRange)

	_, err = strategy.Quote("cottage", day, day.Add(-24*time.Hour))
	assert.ErrorIs(t, err, ErrInvalidDateRange)
}

func TestNewPricingStrategyWithRates_CopiesTable(t *testing.T) {
	rates := map[string]int64{"pinot": 100}
	strategy := NewPricingStrategyWithRates(rates)
	rates["pinot"] = 999

	assert.Equal(t, int64(100), strategy.NightlyRate("pinot"))
	assert.Equal(t, DefaultNightlyRate, strategy.NightlyRate("cottage"))
}

func TestPriceQuote_TotalMinorUnits(t *testing.T) {
	assert.Equal(t, int64(129400), PriceQuote{Total: 1294}.TotalMinorUnits())
}

func TestPercentHalfUp(t *testing.T) {
	assert.Equal(t, int64(54), percentHalfUp(1071, 5))  // 53.55
	assert.Equal(t, int64(169), percentHalfUp(1125, 15)) // 168.75
	assert.Equal(t, int64(1), percentHalfUp(10, 5))      // 0.5 rounds up
	assert.Equal(t, int64(0), percentHalfUp(0, 15))
}
