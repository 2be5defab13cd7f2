package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/katakamramesh/AirlineBookingAssessment/internal/domain"
)

type FlightRepository interface {
	Search(ctx context.Context, from, to string) ([]domain.Flight, error)
	GetByID(ctx context.Context, id int64) (*domain.Flight, error)
	Create(ctx context.Context, flight *domain.Flight) error
}

type PGFlightRepository struct {
	db *pgxpool.Pool
}

func NewFlightRepository(db *pgxpool.Pool) FlightRepository {
	return &PGFlightRepository{db: db}
}

const flightColumns = `id, flight_number, airline_id, departure_airport, arrival_airport, departure_time, arrival_time, available_seats, total_seats, price, status, created_at, updated_at`

// Search returns SCHEDULED flights for a route. Plain reads, no locking;
// availability seen here may already be stale by the time a booking is
// attempted.
func (r *PGFlightRepository) Search(ctx context.Context, from, to string) ([]domain.Flight, error) {
	rows, err := r.db.Query(ctx, `SELECT `+flightColumns+` FROM flights
		WHERE departure_airport=$1 AND arrival_airport=$2 AND status=$3
		ORDER BY departure_time`, from, to, domain.FlightStatusScheduled)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	flights := make([]domain.Flight, 0)
	for rows.Next() {
		var f domain.Flight
		if err := scanFlight(rows, &f); err != nil {
			return nil, err
		}
		flights = append(flights, f)
	}
	return flights, rows.Err()
}

func (r *PGFlightRepository) GetByID(ctx context.Context, id int64) (*domain.Flight, error) {
	row := r.db.QueryRow(ctx, `SELECT `+flightColumns+` FROM flights WHERE id=$1`, id)
	var f domain.Flight
	if err := scanFlight(row, &f); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrFlightNotFound
		}
		return nil, err
	}
	return &f, nil
}

// Create inserts a flight with a full cabin: available_seats starts at
// total_seats.
func (r *PGFlightRepository) Create(ctx context.Context, flight *domain.Flight) error {
	if flight.Status == "" {
		flight.Status = domain.FlightStatusScheduled
	}
	row := r.db.QueryRow(ctx, `INSERT INTO flights (flight_number, airline_id, departure_airport, arrival_airport, departure_time, arrival_time, available_seats, total_seats, price, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $7, $8, $9)
		RETURNING `+flightColumns,
		flight.FlightNumber, flight.AirlineID, flight.DepartureAirport, flight.ArrivalAirport,
		flight.DepartureTime, flight.ArrivalTime, flight.TotalSeats, flight.Price, flight.Status)
	if err := scanFlight(row, flight); err != nil {
		return fmt.Errorf("insert flight: %w", err)
	}
	return nil
}

func scanFlight(row pgx.Row, f *domain.Flight) error {
	return row.Scan(&f.ID, &f.FlightNumber, &f.AirlineID, &f.DepartureAirport, &f.ArrivalAirport,
		&f.DepartureTime, &f.ArrivalTime, &f.AvailableSeats, &f.TotalSeats, &f.Price, &f.Status,
		&f.CreatedAt, &f.UpdatedAt)
}

var _ FlightRepository = (*PGFlightRepository)(nil)
