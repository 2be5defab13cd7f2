package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/katakamramesh/AirlineBookingAssessment/internal/domain"
)

type PassengerRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Passenger, error)
	Create(ctx context.Context, passenger *domain.Passenger) error
}

type PGPassengerRepository struct {
	db *pgxpool.Pool
}

func NewPassengerRepository(db *pgxpool.Pool) PassengerRepository {
	return &PGPassengerRepository{db: db}
}

const passengerColumns = `id, first_name, last_name, email, phone, passport_number, date_of_birth, created_at, updated_at`

func (r *PGPassengerRepository) GetByID(ctx context.Context, id int64) (*domain.Passenger, error) {
	row := r.db.QueryRow(ctx, `SELECT `+passengerColumns+` FROM passengers WHERE id=$1`, id)
	var p domain.Passenger
	if err := scanPassenger(row, &p); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrPassengerNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (r *PGPassengerRepository) Create(ctx context.Context, passenger *domain.Passenger) error {
	row := r.db.QueryRow(ctx, `INSERT INTO passengers (first_name, last_name, email, phone, passport_number, date_of_birth)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING `+passengerColumns,
		passenger.FirstName, passenger.LastName, passenger.Email, passenger.Phone,
		passenger.PassportNumber, passenger.DateOfBirth)
	if err := scanPassenger(row, passenger); err != nil {
		return fmt.Errorf("insert passenger: %w", err)
	}
	return nil
}

func scanPassenger(row pgx.Row, p *domain.Passenger) error {
	return row.Scan(&p.ID, &p.FirstName, &p.LastName, &p.Email, &p.Phone, &p.PassportNumber,
		&p.DateOfBirth, &p.CreatedAt, &p.UpdatedAt)
}

var _ PassengerRepository = (*PGPassengerRepository)(nil)
