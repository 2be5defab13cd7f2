package booking

import (
	"context"
	"fmt"
	"log"

	"github.com/katakamramesh/AirlineBookingAssessment/internal/domain"
	"github.com/katakamramesh/AirlineBookingAssessment/internal/kafka"
	"github.com/katakamramesh/AirlineBookingAssessment/internal/reference"
	"github.com/katakamramesh/AirlineBookingAssessment/internal/repository"
)

type BookingUseCase interface {
	CreateBooking(ctx context.Context, input CreateBookingInput) (*domain.Booking, error)
	CancelBooking(ctx context.Context, bookingID int64) error
	GetBooking(ctx context.Context, bookingID int64) (*domain.Booking, error)
	ListPassengerBookings(ctx context.Context, passengerID int64) ([]domain.Booking, error)
}

type Producer interface {
	Publish(ctx context.Context, topic, key string, value interface{}) error
}

// BookingService fronts the booking transaction protocol. The repository owns
// the transaction itself; this layer validates input, attaches the generated
// reference and publishes lifecycle events after the commit.
type BookingService struct {
	bookings           repository.BookingRepository
	refs               reference.Generator
	producer           Producer
	bookingTopic       string
	notificationsTopic string
}

type CreateBookingInput struct {
	FlightID    int64  `json:"flight_id"`
	PassengerID int64  `json:"passenger_id"`
	SeatNumber  string `json:"seat_number"`
}

type BookingServiceOption func(*BookingService)

func WithNotificationsTopic(topic string) BookingServiceOption {
	return func(s *BookingService) {
		s.notificationsTopic = topic
	}
}

func NewBookingService(
	bookings repository.BookingRepository,
	refs reference.Generator,
	producer Producer,
	bookingTopic string,
	opts ...BookingServiceOption,
) *BookingService {
	service := &BookingService{
		bookings:     bookings,
		refs:         refs,
		producer:     producer,
		bookingTopic: bookingTopic,
	}
	for _, opt := range opts {
		opt(service)
	}
	return service
}

// CreateBooking reserves one seat on the flight. On success the returned
// booking is CONFIRMED with total_amount frozen from the flight price at
// booking time. A full flight yields domain.ErrNoSeatsAvailable with nothing
// written.
func (s *BookingService) CreateBooking(ctx context.Context, input CreateBookingInput) (*domain.Booking, error) {
	if input.FlightID <= 0 {
		return nil, fmt.Errorf("%w: flight id is required", domain.ErrInvalidInput)
	}
	if input.PassengerID <= 0 {
		return nil, fmt.Errorf("%w: passenger id is required", domain.ErrInvalidInput)
	}
	if input.SeatNumber == "" {
		return nil, fmt.Errorf("%w: seat number is required", domain.ErrInvalidInput)
	}

	booking := &domain.Booking{
		Reference:   s.refs.Generate(),
		PassengerID: input.PassengerID,
		FlightID:    input.FlightID,
		SeatNumber:  input.SeatNumber,
	}

	if err := s.bookings.Create(ctx, booking); err != nil {
		return nil, err
	}

	if err := s.publish(ctx, "booking_created", booking); err != nil {
		log.Printf("publish booking_created for %s: %v", booking.Reference, err)
	}
	return booking, nil
}

// CancelBooking is a one-shot CONFIRMED -> CANCELLED transition that returns
// the booking's seat to the flight. A repeat cancel yields
// domain.ErrBookingAlreadyCancelled.
func (s *BookingService) CancelBooking(ctx context.Context, bookingID int64) error {
	cancelled, err := s.bookings.Cancel(ctx, bookingID)
	if err != nil {
		return err
	}

	if err := s.publish(ctx, "booking_cancelled", cancelled); err != nil {
		log.Printf("publish booking_cancelled for %s: %v", cancelled.Reference, err)
	}
	return nil
}

func (s *BookingService) GetBooking(ctx context.Context, bookingID int64) (*domain.Booking, error) {
	return s.bookings.GetByID(ctx, bookingID)
}

func (s *BookingService) ListPassengerBookings(ctx context.Context, passengerID int64) ([]domain.Booking, error) {
	return s.bookings.ListByPassenger(ctx, passengerID)
}

func (s *BookingService) publish(ctx context.Context, eventType string, booking *domain.Booking) error {
	if s.producer == nil || s.bookingTopic == "" {
		return nil
	}
	event := kafka.BookingEvent{
		Type:        eventType,
		BookingID:   booking.ID,
		Reference:   booking.Reference,
		FlightID:    booking.FlightID,
		PassengerID: booking.PassengerID,
		SeatNumber:  booking.SeatNumber,
		Status:      string(booking.Status),
		TotalAmount: booking.TotalAmount,
	}
	if err := s.producer.Publish(ctx, s.bookingTopic, booking.Reference, event); err != nil {
		return err
	}
	if s.notificationsTopic != "" {
		return s.producer.Publish(ctx, s.notificationsTopic, booking.Reference, event)
	}
	return nil
}

var _ BookingUseCase = (*BookingService)(nil)
