package airlines

import (
	"context"
	"testing"

	"github.com/katakamramesh/AirlineBookingAssessment/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockAirlineRepository struct {
	mock.Mock
}

func (m *MockAirlineRepository) List(ctx context.Context) ([]domain.Airline, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Airline), args.Error(1)
}

func (m *MockAirlineRepository) GetByID(ctx context.Context, id int64) (*domain.Airline, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Airline), args.Error(1)
}

func (m *MockAirlineRepository) Create(ctx context.Context, airline *domain.Airline) error {
	args := m.Called(ctx, airline)
	return args.Error(0)
}

type MockAirlineCache struct {
	mock.Mock
}

func (m *MockAirlineCache) GetAirlines(ctx context.Context) ([]domain.Airline, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Airline), args.Error(1)
}

func (m *MockAirlineCache) SetAirlines(ctx context.Context, airlines []domain.Airline) error {
	args := m.Called(ctx, airlines)
	return args.Error(0)
}

func (m *MockAirlineCache) InvalidateAirlines(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func TestAirlineService_List_CacheMiss(t *testing.T) {
	mockRepo := &MockAirlineRepository{}
	mockCache := &MockAirlineCache{}
	service := NewAirlineService(mockRepo, mockCache)

	ctx := context.Background()
	expected := []domain.Airline{{ID: 1, Code: "BA", Name: "British Airways"}}

	mockCache.On("GetAirlines", ctx).Return(nil, nil).Once()
	mockRepo.On("List", ctx).Return(expected, nil).Once()
	mockCache.On("SetAirlines", ctx, expected).Return(nil).Once()

	list, err := service.List(ctx)

	assert.NoError(t, err)
	assert.Equal(t, expected, list)
	mockRepo.AssertExpectations(t)
	mockCache.AssertExpectations(t)
}

func TestAirlineService_List_CacheHit(t *testing.T) {
	mockRepo := &MockAirlineRepository{}
	mockCache := &MockAirlineCache{}
	service := NewAirlineService(mockRepo, mockCache)

	ctx := context.Background()
	cached := []domain.Airline{{ID: 2, Code: "LH", Name: "Lufthansa"}}
	mockCache.On("GetAirlines", ctx).Return(cached, nil).Once()

	list, err := service.List(ctx)

	assert.NoError(t, err)
	assert.Equal(t, cached, list)
	mockRepo.AssertNotCalled(t, "List")
}

func TestAirlineService_Create_InvalidatesCache(t *testing.T) {
	mockRepo := &MockAirlineRepository{}
	mockCache := &MockAirlineCache{}
	service := NewAirlineService(mockRepo, mockCache)

	ctx := context.Background()
	mockRepo.On("Create", ctx, mock.AnythingOfType("*domain.Airline")).
		Run(func(args mock.Arguments) {
			args.Get(1).(*domain.Airline).ID = 3
		}).
		Return(nil).Once()
	mockCache.On("InvalidateAirlines", ctx).Return(nil).Once()

	created, err := service.Create(ctx, CreateAirlineInput{Code: "AF", Name: "Air France", Country: "France"})

	assert.NoError(t, err)
	assert.Equal(t, int64(3), created.ID)
	mockRepo.AssertExpectations(t)
	mockCache.AssertExpectations(t)
}

func TestAirlineService_Create_Validation(t *testing.T) {
	service := NewAirlineService(&MockAirlineRepository{}, nil)

	created, err := service.Create(context.Background(), CreateAirlineInput{Country: "France"})

	assert.Nil(t, created)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
