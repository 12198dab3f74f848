package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/zvrva/tourbooking/internal/domain"
)

// respondError maps flow errors onto distinct statuses and codes. The
// partial-failure case gets its own code so clients never present it as a
// retryable error.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrNoTravelDate),
		errors.Is(err, domain.ErrTravelDateTooSoon):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "code": "validation"})
	case errors.Is(err, domain.ErrSubmitInFlight):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error(), "code": "in_flight"})
	case errors.Is(err, domain.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, domain.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case errors.Is(err, domain.ErrPaymentFailed):
		c.JSON(http.StatusPaymentRequired, gin.H{"error": err.Error(), "code": "payment_failed"})
	case errors.Is(err, domain.ErrPaymentUnreconciled):
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error(), "code": "payment_unreconciled"})
	case errors.Is(err, domain.ErrTimedOut):
		c.JSON(http.StatusGatewayTimeout, gin.H{"error": err.Error(), "code": "timeout"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
