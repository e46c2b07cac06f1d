package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lakeside-retreat/service-booking/internal/application"
	bookingDomain "github.com/lakeside-retreat/service-booking/internal/domain/booking"
	"go.uber.org/zap"
)

// respondError maps domain errors to HTTP responses. Unexpected errors are
// logged and reported with the generic message only.
func respondError(c *gin.Context, log *zap.Logger, err error, generic string) {
	var validationErr *bookingDomain.ValidationError
	switch {
	case errors.As(err, &validationErr):
		body := gin.H{}
		if len(validationErr.Missing) > 0 {
			body["error"] = "Missing required fields"
			body["missing"] = validationErr.Missing
		} else {
			body["error"] = "Invalid fields"
			body["invalid"] = validationErr.Invalid
		}
		c.JSON(http.StatusBadRequest, body)

	case errors.Is(err, bookingDomain.ErrInvalidDateRange):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Check-out must be after check-in"})

	case errors.Is(err, bookingDomain.ErrBookingNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Booking not found"})

	case errors.Is(err, application.ErrPaymentsNotConfigured):
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Payment processing not configured"})

	default:
		log.Error(generic, zap.String("path", c.Request.URL.Path), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": generic})
	}
}

func badRequestBody(c *gin.Context) {
	c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
}
