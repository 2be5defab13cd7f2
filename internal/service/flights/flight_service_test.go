package flights

import (
	"context"
	"errors"
	"testing"

	"github.com/katakamramesh/AirlineBookingAssessment/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockFlightRepository struct {
	mock.Mock
}

func (m *MockFlightRepository) Search(ctx context.Context, from, to string) ([]domain.Flight, error) {
	args := m.Called(ctx, from, to)
	return args.Get(0).([]domain.Flight), args.Error(1)
}

func (m *MockFlightRepository) GetByID(ctx context.Context, id int64) (*domain.Flight, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Flight), args.Error(1)
}

func (m *MockFlightRepository) Create(ctx context.Context, flight *domain.Flight) error {
	args := m.Called(ctx, flight)
	return args.Error(0)
}

type MockFlightCache struct {
	mock.Mock
}

func (m *MockFlightCache) GetFlights(ctx context.Context, from, to string) ([]domain.Flight, error) {
	args := m.Called(ctx, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Flight), args.Error(1)
}

func (m *MockFlightCache) SetFlights(ctx context.Context, from, to string, flights []domain.Flight) error {
	args := m.Called(ctx, from, to, flights)
	return args.Error(0)
}

func TestFlightService_Search_CacheMiss(t *testing.T) {
	mockRepo := &MockFlightRepository{}
	mockCache := &MockFlightCache{}
	service := NewFlightService(mockRepo, mockCache)

	ctx := context.Background()
	expected := []domain.Flight{{ID: 1, DepartureAirport: "JFK", ArrivalAirport: "LAX"}}

	mockCache.On("GetFlights", ctx, "JFK", "LAX").Return(nil, nil).Once()
	mockRepo.On("Search", ctx, "JFK", "LAX").Return(expected, nil).Once()
	mockCache.On("SetFlights", ctx, "JFK", "LAX", expected).Return(nil).Once()

	found, err := service.Search(ctx, "JFK", "LAX")

	assert.NoError(t, err)
	assert.Equal(t, expected, found)
	mockRepo.AssertExpectations(t)
	mockCache.AssertExpectations(t)
}

func TestFlightService_Search_CacheHit(t *testing.T) {
	mockRepo := &MockFlightRepository{}
	mockCache := &MockFlightCache{}
	service := NewFlightService(mockRepo, mockCache)

	ctx := context.Background()
	cached := []domain.Flight{{ID: 2, DepartureAirport: "JFK", ArrivalAirport: "LAX"}}

	mockCache.On("GetFlights", ctx, "JFK", "LAX").Return(cached, nil).Once()

	found, err := service.Search(ctx, "JFK", "LAX")

	assert.NoError(t, err)
	assert.Equal(t, cached, found)
	mockRepo.AssertNotCalled(t, "Search")
	mockCache.AssertExpectations(t)
}

func TestFlightService_Search_MissingRoute(t *testing.T) {
	service := NewFlightService(&MockFlightRepository{}, nil)

	_, err := service.Search(context.Background(), "", "LAX")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestFlightService_Search_NoCache(t *testing.T) {
	mockRepo := &MockFlightRepository{}
	service := NewFlightService(mockRepo, nil)

	ctx := context.Background()
	expected := []domain.Flight{}
	mockRepo.On("Search", ctx, "JFK", "LAX").Return(expected, nil).Once()

	found, err := service.Search(ctx, "JFK", "LAX")

	assert.NoError(t, err)
	assert.Equal(t, expected, found)
	mockRepo.AssertExpectations(t)
}

func TestFlightService_GetByID_NotFound(t *testing.T) {
	mockRepo := &MockFlightRepository{}
	service := NewFlightService(mockRepo, nil)

	ctx := context.Background()
	mockRepo.On("GetByID", ctx, int64(99)).Return(nil, domain.ErrFlightNotFound).Once()

	flight, err := service.GetByID(ctx, 99)

	assert.Nil(t, flight)
	assert.ErrorIs(t, err, domain.ErrFlightNotFound)
}

func TestFlightService_Create_Success(t *testing.T) {
	mockRepo := &MockFlightRepository{}
	service := NewFlightService(mockRepo, nil)

	ctx := context.Background()
	mockRepo.On("Create", ctx, mock.AnythingOfType("*domain.Flight")).
		Run(func(args mock.Arguments) {
			f := args.Get(1).(*domain.Flight)
			f.ID = 1
			f.AvailableSeats = f.TotalSeats
		}).
		Return(nil).Once()

	created, err := service.Create(ctx, CreateFlightInput{
		FlightNumber:     "BA117",
		AirlineID:        1,
		DepartureAirport: "LHR",
		ArrivalAirport:   "JFK",
		DepartureTime:    "2026-09-01T09:30:00Z",
		ArrivalTime:      "2026-09-01T12:45:00Z",
		TotalSeats:       180,
		Price:            540.00,
	})

	assert.NoError(t, err)
	assert.Equal(t, 180, created.AvailableSeats)
	assert.Equal(t, domain.FlightStatusScheduled, created.Status)
	mockRepo.AssertExpectations(t)
}

func TestFlightService_Create_ValidationErrors(t *testing.T) {
	service := NewFlightService(&MockFlightRepository{}, nil)
	ctx := context.Background()

	testCases := []struct {
		name  string
		input CreateFlightInput
	}{
		{name: "zero seats", input: CreateFlightInput{TotalSeats: 0, DepartureTime: "2026-09-01T09:30:00Z", ArrivalTime: "2026-09-01T12:45:00Z"}},
		{name: "negative price", input: CreateFlightInput{TotalSeats: 10, Price: -1, DepartureTime: "2026-09-01T09:30:00Z", ArrivalTime: "2026-09-01T12:45:00Z"}},
		{name: "bad departure time", input: CreateFlightInput{TotalSeats: 10, DepartureTime: "tomorrow", ArrivalTime: "2026-09-01T12:45:00Z"}},
		{name: "bad arrival time", input: CreateFlightInput{TotalSeats: 10, DepartureTime: "2026-09-01T09:30:00Z", ArrivalTime: "later"}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			created, err := service.Create(ctx, tc.input)
			assert.Nil(t, created)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}
}

func TestFlightService_Search_RepoError(t *testing.T) {
	mockRepo := &MockFlightRepository{}
	service := NewFlightService(mockRepo, nil)

	ctx := context.Background()
	mockRepo.On("Search", ctx, "JFK", "LAX").Return([]domain.Flight(nil), errors.New("connection refused")).Once()

	found, err := service.Search(ctx, "JFK", "LAX")

	assert.Nil(t, found)
	assert.Error(t, err)
}
