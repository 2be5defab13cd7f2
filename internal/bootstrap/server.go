package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/katakamramesh/AirlineBookingAssessment/api"
	"github.com/katakamramesh/AirlineBookingAssessment/config"
	"github.com/katakamramesh/AirlineBookingAssessment/internal/service/airlines"
	"github.com/katakamramesh/AirlineBookingAssessment/internal/service/booking"
	"github.com/katakamramesh/AirlineBookingAssessment/internal/service/flights"
	"github.com/katakamramesh/AirlineBookingAssessment/internal/service/passengers"
)

// Run starts the HTTP server and blocks until the context is cancelled or the
// server fails. Shutdown drains in-flight requests for up to five seconds.
func Run(
	ctx context.Context,
	cfg *config.Config,
	airlineSvc airlines.AirlineUseCase,
	flightSvc flights.FlightUseCase,
	passengerSvc passengers.PassengerUseCase,
	bookingSvc booking.BookingUseCase,
) error {
	router := NewRouter(airlineSvc, flightSvc, passengerSvc, bookingSvc)

	srv := &http.Server{
		Addr:    cfg.HTTP.Address,
		Handler: router,
	}

	errCh := make(chan error, 1)
	go func() { errCh <- srv.ListenAndServe() }()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}
		return nil
	}
}

// NewRouter wires every handler onto a gin engine. Exposed separately so
// tests can exercise the full routing table without a listener.
func NewRouter(
	airlineSvc airlines.AirlineUseCase,
	flightSvc flights.FlightUseCase,
	passengerSvc passengers.PassengerUseCase,
	bookingSvc booking.BookingUseCase,
) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery(), api.RequestID())

	root := router.Group("/")
	api.NewAirlineHandler(airlineSvc).Register(root)
	api.NewFlightHandler(flightSvc).Register(root)
	api.NewPassengerHandler(passengerSvc).Register(root)
	api.NewBookingHandler(bookingSvc).Register(root)

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "UP"})
	})

	return router
}
