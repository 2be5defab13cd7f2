package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/katakamramesh/AirlineBookingAssessment/internal/domain"
)

// respondError maps the domain's sentinel errors onto status codes. Anything
// unrecognized is an infrastructure failure and must not leak detail to the
// client.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, domain.ErrFlightNotFound),
		errors.Is(err, domain.ErrBookingNotFound),
		errors.Is(err, domain.ErrAirlineNotFound),
		errors.Is(err, domain.ErrPassengerNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, domain.ErrNoSeatsAvailable),
		errors.Is(err, domain.ErrBookingAlreadyCancelled):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
