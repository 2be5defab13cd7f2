package passengers

import (
	"context"
	"fmt"
	"time"

	"github.com/katakamramesh/AirlineBookingAssessment/internal/domain"
	"github.com/katakamramesh/AirlineBookingAssessment/internal/repository"
)

type PassengerUseCase interface {
	Create(ctx context.Context, input CreatePassengerInput) (*domain.Passenger, error)
	GetByID(ctx context.Context, id int64) (*domain.Passenger, error)
}

type PassengerService struct {
	repo repository.PassengerRepository
}

type CreatePassengerInput struct {
	FirstName      string `json:"first_name"`
	LastName       string `json:"last_name"`
	Email          string `json:"email"`
	Phone          string `json:"phone"`
	PassportNumber string `json:"passport_number"`
	DateOfBirth    string `json:"date_of_birth"`
}

func NewPassengerService(repo repository.PassengerRepository) *PassengerService {
	return &PassengerService{repo: repo}
}

func (s *PassengerService) Create(ctx context.Context, input CreatePassengerInput) (*domain.Passenger, error) {
	if input.FirstName == "" || input.LastName == "" {
		return nil, fmt.Errorf("%w: first and last name are required", domain.ErrInvalidInput)
	}
	if input.Email == "" {
		return nil, fmt.Errorf("%w: email is required", domain.ErrInvalidInput)
	}

	dob, err := time.Parse("2006-01-02", input.DateOfBirth)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid date of birth, expected YYYY-MM-DD", domain.ErrInvalidInput)
	}

	passenger := &domain.Passenger{
		FirstName:      input.FirstName,
		LastName:       input.LastName,
		Email:          input.Email,
		Phone:          input.Phone,
		PassportNumber: input.PassportNumber,
		DateOfBirth:    dob,
	}
	if err := s.repo.Create(ctx, passenger); err != nil {
		return nil, err
	}
	return passenger, nil
}

func (s *PassengerService) GetByID(ctx context.Context, id int64) (*domain.Passenger, error) {
	return s.repo.GetByID(ctx, id)
}

var _ PassengerUseCase = (*PassengerService)(nil)
