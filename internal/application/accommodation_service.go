package application

import (
	"context"

	"github.com/lakeside-retreat/service-booking/internal/domain/accommodation"
	"go.uber.org/zap"
)

// AccommodationDTO is the API response representation of a bookable unit.
type AccommodationDTO struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Price       int64  `json:"price"`
	Description string `json:"description"`
	MaxGuests   int    `json:"maxGuests"`
	PriceSource string `json:"priceSource"`
}

// AccommodationService lists the catalog with current display prices.
type AccommodationService struct {
	rates  accommodation.RateSource
	logger *zap.Logger
}

// NewAccommodationService creates a new AccommodationService.
func NewAccommodationService(rates accommodation.RateSource, logger *zap.Logger) *AccommodationService {
	return &AccommodationService{rates: rates, logger: logger}
}

// ListAccommodations returns every unit in the catalog.
func (s *AccommodationService) ListAccommodations(ctx context.Context) []AccommodationDTO {
	rates := s.rates.Rates(ctx)
	source := string(s.rates.Source())

	result := make([]AccommodationDTO, len(accommodation.Catalog))
	for i, a := range accommodation.Catalog {
		result[i] = AccommodationDTO{
			ID:          a.ID,
			Name:        a.Name,
			Price:       rates[a.ID],
			Description: a.Description,
			MaxGuests:   a.MaxGuests,
			PriceSource: source,
		}
	}

	s.logger.Info("accommodations fetched successfully",
		zap.Int("total_accommodations", len(result)),
		zap.String("price_source", source),
	)
	return result
}
