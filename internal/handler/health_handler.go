package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lakeside-retreat/service-booking/internal/application"
)

// HealthHandler serves the health check.
type HealthHandler struct {
	service *application.HealthService
}

// NewHealthHandler creates a new HealthHandler.
func NewHealthHandler(service *application.HealthService) *HealthHandler {
	return &HealthHandler{service: service}
}

// RegisterRoutes registers the health route.
func (h *HealthHandler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/health", h.Health)
}

// Health handles GET /api/health.
func (h *HealthHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, h.service.Check(c.Request.Context()))
}
