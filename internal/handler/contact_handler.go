package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lakeside-retreat/service-booking/internal/application"
	"go.uber.org/zap"
)

// ContactHandler handles the public contact form.
type ContactHandler struct {
	service *application.ContactService
	logger  *zap.Logger
}

// NewContactHandler creates a new ContactHandler.
func NewContactHandler(service *application.ContactService, logger *zap.Logger) *ContactHandler {
	return &ContactHandler{service: service, logger: logger}
}

// RegisterRoutes registers contact routes.
func (h *ContactHandler) RegisterRoutes(r *gin.RouterGroup) {
	r.POST("/contact", h.Submit)
}

// Submit handles POST /api/contact.
func (h *ContactHandler) Submit(c *gin.Context) {
	var req application.ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequestBody(c)
		return
	}

	if err := h.service.Submit(c.Request.Context(), req); err != nil {
		respondError(c, h.logger, err, "Unable to process contact form")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Thank you for your message. We will get back to you soon!",
	})
}
