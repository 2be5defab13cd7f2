package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/katakamramesh/AirlineBookingAssessment/internal/domain"
)

type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) error
	Cancel(ctx context.Context, id int64) (*domain.Booking, error)
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	ListByPassenger(ctx context.Context, passengerID int64) ([]domain.Booking, error)
}

type PGBookingRepository struct {
	db *pgxpool.Pool
}

func NewBookingRepository(db *pgxpool.Pool) BookingRepository {
	return &PGBookingRepository{db: db}
}

const bookingColumns = `id, booking_reference, passenger_id, flight_id, booking_date, seat_number, status, total_amount, created_at, updated_at`

// Create inserts a CONFIRMED booking and takes one seat from the flight, all
// in a single transaction. The FOR UPDATE read of the flight row is the
// serialization point: two concurrent creates against the same flight are
// forced into sequence there, so the availability check cannot race. The
// deferred rollback releases the connection on every exit path; it is a
// no-op once Commit succeeds.
//
// booking must carry Reference, PassengerID, FlightID and SeatNumber; the
// remaining fields are filled from the persisted row.
func (r *PGBookingRepository) Create(ctx context.Context, booking *domain.Booking) error {
	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback(ctx)

	var price float64
	var available int
	err = tx.QueryRow(ctx, `SELECT price, available_seats FROM flights WHERE id=$1 FOR UPDATE`, booking.FlightID).
		Scan(&price, &available)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ErrFlightNotFound
		}
		return fmt.Errorf("lock flight %d: %w", booking.FlightID, err)
	}
	if available <= 0 {
		return domain.ErrNoSeatsAvailable
	}

	var id int64
	err = tx.QueryRow(ctx, `INSERT INTO bookings (booking_reference, passenger_id, flight_id, seat_number, status, total_amount)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`,
		booking.Reference, booking.PassengerID, booking.FlightID, booking.SeatNumber, domain.BookingStatusConfirmed, price).
		Scan(&id)
	if err != nil {
		return fmt.Errorf("insert booking: %w", err)
	}

	// Relative decrement rather than writing back the value read above, so
	// the update composes with any other writer touching the same row.
	if _, err := tx.Exec(ctx, `UPDATE flights SET available_seats = available_seats - 1, updated_at = now() WHERE id=$1`, booking.FlightID); err != nil {
		return fmt.Errorf("decrement seats for flight %d: %w", booking.FlightID, err)
	}

	// Re-read inside the transaction so the caller gets the authoritative
	// generated fields (id, booking_date, timestamps).
	row := tx.QueryRow(ctx, `SELECT `+bookingColumns+` FROM bookings WHERE id=$1`, id)
	if err := scanBooking(row, booking); err != nil {
		return fmt.Errorf("read back booking %d: %w", id, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit booking: %w", err)
	}
	return nil
}

// Cancel flips a booking to CANCELLED and returns one seat to its flight in
// a single transaction. Only the booking row is locked; the flight counter
// is restored with a relative increment, which is atomic on its own and so
// needs no flight-row lock. A second concurrent cancel of the same booking
// blocks on the FOR UPDATE read and then sees CANCELLED.
func (r *PGBookingRepository) Cancel(ctx context.Context, id int64) (*domain.Booking, error) {
	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback(ctx)

	var flightID int64
	var status domain.BookingStatus
	err = tx.QueryRow(ctx, `SELECT flight_id, status FROM bookings WHERE id=$1 FOR UPDATE`, id).
		Scan(&flightID, &status)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrBookingNotFound
		}
		return nil, fmt.Errorf("lock booking %d: %w", id, err)
	}
	if status == domain.BookingStatusCancelled {
		return nil, domain.ErrBookingAlreadyCancelled
	}

	var cancelled domain.Booking
	row := tx.QueryRow(ctx, `UPDATE bookings SET status=$1, updated_at=now() WHERE id=$2 RETURNING `+bookingColumns,
		domain.BookingStatusCancelled, id)
	if err := scanBooking(row, &cancelled); err != nil {
		return nil, fmt.Errorf("cancel booking %d: %w", id, err)
	}

	if _, err := tx.Exec(ctx, `UPDATE flights SET available_seats = available_seats + 1, updated_at = now() WHERE id=$1`, flightID); err != nil {
		return nil, fmt.Errorf("restore seat for flight %d: %w", flightID, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit cancel: %w", err)
	}
	return &cancelled, nil
}

func (r *PGBookingRepository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	row := r.db.QueryRow(ctx, `SELECT `+bookingColumns+` FROM bookings WHERE id=$1`, id)
	var b domain.Booking
	if err := scanBooking(row, &b); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrBookingNotFound
		}
		return nil, err
	}
	return &b, nil
}

func (r *PGBookingRepository) ListByPassenger(ctx context.Context, passengerID int64) ([]domain.Booking, error) {
	rows, err := r.db.Query(ctx, `SELECT `+bookingColumns+` FROM bookings WHERE passenger_id=$1 ORDER BY booking_date DESC`, passengerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	bookings := make([]domain.Booking, 0)
	for rows.Next() {
		var b domain.Booking
		if err := scanBooking(rows, &b); err != nil {
			return nil, err
		}
		bookings = append(bookings, b)
	}
	return bookings, rows.Err()
}

func scanBooking(row pgx.Row, b *domain.Booking) error {
	return row.Scan(&b.ID, &b.Reference, &b.PassengerID, &b.FlightID, &b.BookingDate,
		&b.SeatNumber, &b.Status, &b.TotalAmount, &b.CreatedAt, &b.UpdatedAt)
}

var _ BookingRepository = (*PGBookingRepository)(nil)
