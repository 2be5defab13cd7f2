package repository

import (
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
)

func TestNewBookingRepository(t *testing.T) {
	pool := &pgxpool.Pool{}
	repo := NewBookingRepository(pool)
	assert.NotNil(t, repo)
}

func TestNewFlightRepository(t *testing.T) {
	pool := &pgxpool.Pool{}
	repo := NewFlightRepository(pool)
	assert.NotNil(t, repo)
}

func TestNewAirlineRepository(t *testing.T) {
	pool := &pgxpool.Pool{}
	repo := NewAirlineRepository(pool)
	assert.NotNil(t, repo)
}

func TestNewPassengerRepository(t *testing.T) {
	pool := &pgxpool.Pool{}
	repo := NewPassengerRepository(pool)
	assert.NotNil(t, repo)
}
