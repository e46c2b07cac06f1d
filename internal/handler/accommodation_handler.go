package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lakeside-retreat/service-booking/internal/application"
)

// AccommodationHandler serves the accommodation catalog.
type AccommodationHandler struct {
	service *application.AccommodationService
}

// NewAccommodationHandler creates a new AccommodationHandler.
func NewAccommodationHandler(service *application.AccommodationService) *AccommodationHandler {
	return &AccommodationHandler{service: service}
}

// RegisterRoutes registers catalog routes.
func (h *AccommodationHandler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/accommodations", h.ListAccommodations)
}

// ListAccommodations handles GET /api/accommodations.
func (h *AccommodationHandler) ListAccommodations(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"accommodations": h.service.ListAccommodations(c.Request.Context())})
}
