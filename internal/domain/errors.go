// Sentinel errors shared by the repositories and services. Handlers use
// errors.Is against these values to pick response codes instead of matching
// on error text; anything not listed here is treated as an infrastructure
// failure.
package domain

import "errors"

// ErrInvalidInput marks caller mistakes detected before any storage work.
// Services wrap it with a specific message via fmt.Errorf("%w: ...", ...).
var ErrInvalidInput = errors.New("invalid input")

var (
	ErrAirlineNotFound   = errors.New("airline not found")
	ErrFlightNotFound    = errors.New("flight not found")
	ErrPassengerNotFound = errors.New("passenger not found")
	ErrBookingNotFound   = errors.New("booking not found")

	// ErrNoSeatsAvailable is returned when a flight's available_seats has
	// reached zero. The enclosing transaction is rolled back before it is
	// surfaced.
	ErrNoSeatsAvailable = errors.New("no available seats on this flight")

	// ErrBookingAlreadyCancelled is returned on a second cancel of the same
	// booking. CONFIRMED -> CANCELLED happens at most once.
	ErrBookingAlreadyCancelled = errors.New("booking already cancelled")
)
