package flights

import (
	"context"
	"fmt"
	"time"

	"github.com/katakamramesh/AirlineBookingAssessment/internal/domain"
	"github.com/katakamramesh/AirlineBookingAssessment/internal/repository"
)

type FlightUseCase interface {
	Search(ctx context.Context, from, to string) ([]domain.Flight, error)
	GetByID(ctx context.Context, id int64) (*domain.Flight, error)
	Create(ctx context.Context, input CreateFlightInput) (*domain.Flight, error)
}

// FlightCache holds search results per route for a short TTL. Staleness is
// acceptable here; the booking transaction re-checks availability under lock.
type FlightCache interface {
	GetFlights(ctx context.Context, from, to string) ([]domain.Flight, error)
	SetFlights(ctx context.Context, from, to string, flights []domain.Flight) error
}

type FlightService struct {
	repo  repository.FlightRepository
	cache FlightCache
}

type CreateFlightInput struct {
	FlightNumber     string  `json:"flight_number"`
	AirlineID        int64   `json:"airline_id"`
	DepartureAirport string  `json:"departure_airport"`
	ArrivalAirport   string  `json:"arrival_airport"`
	DepartureTime    string  `json:"departure_time"`
	ArrivalTime      string  `json:"arrival_time"`
	TotalSeats       int     `json:"total_seats"`
	Price            float64 `json:"price"`
}

func NewFlightService(repo repository.FlightRepository, cache FlightCache) *FlightService {
	return &FlightService{repo: repo, cache: cache}
}

func (s *FlightService) Search(ctx context.Context, from, to string) ([]domain.Flight, error) {
	if from == "" || to == "" {
		return nil, fmt.Errorf("%w: from and to airports are required", domain.ErrInvalidInput)
	}

	if s.cache != nil {
		if cached, err := s.cache.GetFlights(ctx, from, to); err == nil && cached != nil {
			return cached, nil
		}
	}

	flights, err := s.repo.Search(ctx, from, to)
	if err != nil {
		return nil, err
	}
	if s.cache != nil {
		_ = s.cache.SetFlights(ctx, from, to, flights)
	}
	return flights, nil
}

func (s *FlightService) GetByID(ctx context.Context, id int64) (*domain.Flight, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *FlightService) Create(ctx context.Context, input CreateFlightInput) (*domain.Flight, error) {
	if input.TotalSeats <= 0 {
		return nil, fmt.Errorf("%w: total seats must be positive", domain.ErrInvalidInput)
	}
	if input.Price < 0 {
		return nil, fmt.Errorf("%w: price must not be negative", domain.ErrInvalidInput)
	}

	departure, err := time.Parse(time.RFC3339, input.DepartureTime)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid departure time", domain.ErrInvalidInput)
	}
	arrival, err := time.Parse(time.RFC3339, input.ArrivalTime)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid arrival time", domain.ErrInvalidInput)
	}

	flight := &domain.Flight{
		FlightNumber:     input.FlightNumber,
		AirlineID:        input.AirlineID,
		DepartureAirport: input.DepartureAirport,
		ArrivalAirport:   input.ArrivalAirport,
		DepartureTime:    departure,
		ArrivalTime:      arrival,
		TotalSeats:       input.TotalSeats,
		Price:            input.Price,
		Status:           domain.FlightStatusScheduled,
	}
	if err := s.repo.Create(ctx, flight); err != nil {
		return nil, err
	}
	return flight, nil
}

var _ FlightUseCase = (*FlightService)(nil)
