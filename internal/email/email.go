package email

import (
	"context"
	"log"

	"github.com/katakamramesh/AirlineBookingAssessment/internal/kafka"
)

// Sender is a stand-in for a real mail integration; it logs the notification
// that would be sent.
type Sender struct{}

func NewSender() *Sender {
	return &Sender{}
}

func (s *Sender) Send(ctx context.Context, event kafka.BookingEvent) error {
	log.Printf("notify passenger %d: %s for booking %s (flight %d, seat %s)",
		event.PassengerID, event.Type, event.Reference, event.FlightID, event.SeatNumber)
	return nil
}
