package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lakeside-retreat/service-booking/internal/application"
	"go.uber.org/zap"
)

// PaymentHandler handles payment intent creation.
type PaymentHandler struct {
	service *application.PaymentService
	logger  *zap.Logger
}

// NewPaymentHandler creates a new PaymentHandler.
func NewPaymentHandler(service *application.PaymentService, logger *zap.Logger) *PaymentHandler {
	return &PaymentHandler{service: service, logger: logger}
}

// RegisterRoutes registers payment routes.
func (h *PaymentHandler) RegisterRoutes(r *gin.RouterGroup) {
	r.POST("/create-payment-intent", h.CreatePaymentIntent)
}

// CreatePaymentIntent handles POST /api/create-payment-intent.
func (h *PaymentHandler) CreatePaymentIntent(c *gin.Context) {
	var req application.CreatePaymentIntentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequestBody(c)
		return
	}

	result, err := h.service.CreatePaymentIntent(c.Request.Context(), req)
	if err != nil {
		respondError(c, h.logger, err, "Unable to create payment intent")
		return
	}

	c.JSON(http.StatusOK, result)
}
