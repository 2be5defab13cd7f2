package airlines

import (
	"context"
	"fmt"

	"github.com/katakamramesh/AirlineBookingAssessment/internal/domain"
	"github.com/katakamramesh/AirlineBookingAssessment/internal/repository"
)

type AirlineUseCase interface {
	List(ctx context.Context) ([]domain.Airline, error)
	Create(ctx context.Context, input CreateAirlineInput) (*domain.Airline, error)
}

type AirlineCache interface {
	GetAirlines(ctx context.Context) ([]domain.Airline, error)
	SetAirlines(ctx context.Context, airlines []domain.Airline) error
	InvalidateAirlines(ctx context.Context) error
}

type AirlineService struct {
	repo  repository.AirlineRepository
	cache AirlineCache
}

type CreateAirlineInput struct {
	Code    string `json:"code"`
	Name    string `json:"name"`
	Country string `json:"country"`
}

func NewAirlineService(repo repository.AirlineRepository, cache AirlineCache) *AirlineService {
	return &AirlineService{repo: repo, cache: cache}
}

func (s *AirlineService) List(ctx context.Context) ([]domain.Airline, error) {
	if s.cache != nil {
		if cached, err := s.cache.GetAirlines(ctx); err == nil && cached != nil {
			return cached, nil
		}
	}

	airlines, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if s.cache != nil {
		_ = s.cache.SetAirlines(ctx, airlines)
	}
	return airlines, nil
}

func (s *AirlineService) Create(ctx context.Context, input CreateAirlineInput) (*domain.Airline, error) {
	if input.Code == "" || input.Name == "" {
		return nil, fmt.Errorf("%w: code and name are required", domain.ErrInvalidInput)
	}

	airline := &domain.Airline{
		Code:    input.Code,
		Name:    input.Name,
		Country: input.Country,
	}
	if err := s.repo.Create(ctx, airline); err != nil {
		return nil, err
	}
	if s.cache != nil {
		_ = s.cache.InvalidateAirlines(ctx)
	}
	return airline, nil
}

var _ AirlineUseCase = (*AirlineService)(nil)
