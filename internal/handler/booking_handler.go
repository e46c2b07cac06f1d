package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/lakeside-retreat/service-booking/internal/application"
	"go.uber.org/zap"
)

// BookingHandler handles HTTP requests for booking operations.
type BookingHandler struct {
	service *application.BookingService
	logger  *zap.Logger
}

// NewBookingHandler creates a new BookingHandler.
func NewBookingHandler(service *application.BookingService, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{service: service, logger: logger}
}

// RegisterRoutes registers all booking routes on the given router group.
func (h *BookingHandler) RegisterRoutes(r *gin.RouterGroup) {
	r.POST("/process-booking", h.CreateBooking)
	r.GET("/bookings/:reference", h.GetBooking)
	r.POST("/bookings", h.LegacyBooking)
	r.GET("/quote", h.Quote)
}

// CreateBooking handles POST /api/process-booking.
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	var req application.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequestBody(c)
		return
	}

	result, err := h.service.CreateBooking(c.Request.Context(), req)
	if err != nil {
		respondError(c, h.logger, err, "Unable to process booking")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":          true,
		"bookingReference": result.Reference,
		"booking": gin.H{
			"reference":       result.Reference,
			"accommodationId": result.AccommodationID,
			"checkIn":         result.CheckIn,
			"checkOut":        result.CheckOut,
			"status":          result.Status,
		},
	})
}

// GetBooking handles GET /api/bookings/:reference.
func (h *BookingHandler) GetBooking(c *gin.Context) {
	result, err := h.service.GetBooking(c.Request.Context(), c.Param("reference"))
	if err != nil {
		respondError(c, h.logger, err, "Unable to fetch booking")
		return
	}

	c.JSON(http.StatusOK, gin.H{"booking": result})
}

// LegacyBooking handles POST /api/bookings, kept for older clients. It only
// acknowledges the request and points at the payment-then-booking flow.
func (h *BookingHandler) LegacyBooking(c *gin.Context) {
	var body struct {
		AccommodationID string `json:"accommodationId"`
		CheckIn         string `json:"checkIn"`
		CheckOut        string `json:"checkOut"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		badRequestBody(c)
		return
	}
	if strings.TrimSpace(body.AccommodationID) == "" || strings.TrimSpace(body.CheckIn) == "" || strings.TrimSpace(body.CheckOut) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required booking information"})
		return
	}

	h.logger.Info("legacy booking request received",
		zap.String("accommodation_id", body.AccommodationID),
		zap.String("check_in", body.CheckIn),
		zap.String("check_out", body.CheckOut),
	)

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Booking request received. Use /api/process-booking for complete booking flow.",
		"endpoints": gin.H{
			"createPayment":  "/api/create-payment-intent",
			"processBooking": "/api/process-booking",
		},
	})
}

// Quote handles GET /api/quote.
func (h *BookingHandler) Quote(c *gin.Context) {
	quote, err := h.service.Quote(c.Query("accommodationId"), c.Query("checkIn"), c.Query("checkOut"))
	if err != nil {
		respondError(c, h.logger, err, "Unable to calculate price")
		return
	}

	c.JSON(http.StatusOK, gin.H{"pricing": quote})
}
