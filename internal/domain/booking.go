package domain

import "time"

type BookingStatus string

const (
	BookingStatusConfirmed BookingStatus = "CONFIRMED"
	BookingStatusCancelled BookingStatus = "CANCELLED"
)

// Booking is one passenger's reservation on one flight. A CONFIRMED booking
// accounts for exactly one seat taken from its flight's available_seats;
// cancellation is a status change, never a delete, and happens at most once.
type Booking struct {
	ID          int64         `json:"id"`
	Reference   string        `json:"booking_reference"`
	PassengerID int64         `json:"passenger_id"`
	FlightID    int64         `json:"flight_id"`
	BookingDate time.Time     `json:"booking_date"`
	SeatNumber  string        `json:"seat_number"`
	Status      BookingStatus `json:"status"`
	TotalAmount float64       `json:"total_amount"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`
}
