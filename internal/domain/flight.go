package domain

import "time"

type FlightStatus string

const (
	FlightStatusScheduled FlightStatus = "SCHEDULED"
	FlightStatusCancelled FlightStatus = "CANCELLED"
	FlightStatusDeparted  FlightStatus = "DEPARTED"
)

// Flight holds the bookable inventory for one flight. AvailableSeats is
// mutated only inside a booking transaction and always stays within
// [0, TotalSeats].
type Flight struct {
	ID               int64        `json:"id"`
	FlightNumber     string       `json:"flight_number"`
	AirlineID        int64        `json:"airline_id"`
	DepartureAirport string       `json:"departure_airport"`
	ArrivalAirport   string       `json:"arrival_airport"`
	DepartureTime    time.Time    `json:"departure_time"`
	ArrivalTime      time.Time    `json:"arrival_time"`
	AvailableSeats   int          `json:"available_seats"`
	TotalSeats       int          `json:"total_seats"`
	Price            float64      `json:"price"`
	Status           FlightStatus `json:"status"`
	CreatedAt        time.Time    `json:"created_at"`
	UpdatedAt        time.Time    `json:"updated_at"`
}
