package clients

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/lakeside-retreat/service-booking/internal/domain/accommodation"
	"go.uber.org/zap"
)

// UplistingRateSource reads nightly rates from the Uplisting property API and
// falls back to the configured rates whenever the API cannot answer.
type UplistingRateSource struct {
	baseURL  string
	apiKey   string
	http     *http.Client
	fallback map[string]int64
	logger   *zap.Logger
}

type uplistingRatesResponse struct {
	Data []struct {
		PropertyID  string  `json:"property_id"`
		NightlyRate float64 `json:"nightly_rate"`
	} `json:"data"`
}

// NewUplistingRateSource creates an UplistingRateSource.
func NewUplistingRateSource(baseURL, apiKey string, timeout time.Duration, fallback map[string]int64, logger *zap.Logger) *UplistingRateSource {
	return &UplistingRateSource{
		baseURL:  strings.TrimRight(baseURL, "/"),
		apiKey:   apiKey,
		http:     &http.Client{Timeout: timeout},
		fallback: fallback,
		logger:   logger,
	}
}

// Source reports live pricing.
func (s *UplistingRateSource) Source() accommodation.PriceSource {
	return accommodation.PriceSourceLive
}

// Rates returns live rates merged over the configured ones.
func (s *UplistingRateSource) Rates(ctx context.Context) map[string]int64 {
	rates := make(map[string]int64, len(s.fallback))
	for k, v := range s.fallback {
		rates[k] = v
	}

	live, err := s.fetch(ctx)
	if err != nil {
		s.logger.Error("error fetching live prices, using defaults", zap.Error(err))
		return rates
	}
	for k, v := range live {
		rates[k] = v
	}
	return rates
}

func (s *UplistingRateSource) fetch(ctx context.Context) (map[string]int64, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.baseURL+"/properties/rates", nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+s.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to call uplisting: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("uplisting returned status %d", resp.StatusCode)
	}

	var body uplistingRatesResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("failed to decode uplisting rates: %w", err)
	}

	rates := make(map[string]int64, len(body.Data))
	for _, r := range body.Data {
		if r.PropertyID == "" || r.NightlyRate <= 0 {
			continue
		}
		rates[r.PropertyID] = int64(r.NightlyRate + 0.5)
	}
	return rates, nil
}
