package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/katakamramesh/AirlineBookingAssessment/config"
	"github.com/katakamramesh/AirlineBookingAssessment/internal/domain"
	"github.com/redis/go-redis/v9"
)

// RedisCache keeps read-side results (flight searches, the airline list)
// behind a TTL. Booking transactions never go through here, so entries may
// briefly show pre-commit seat counts.
type RedisCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisCache(cfg config.RedisConfig, ttl time.Duration) *RedisCache {
	return &RedisCache{
		client: redis.NewClient(&redis.Options{Addr: cfg.Addr, Password: cfg.Password, DB: cfg.DB}),
		ttl:    ttl,
	}
}

func (c *RedisCache) GetFlights(ctx context.Context, from, to string) ([]domain.Flight, error) {
	data, err := c.client.Get(ctx, routeKey(from, to)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, err
	}

	var flights []domain.Flight
	if err := json.Unmarshal(data, &flights); err != nil {
		return nil, err
	}
	return flights, nil
}

func (c *RedisCache) SetFlights(ctx context.Context, from, to string, flights []domain.Flight) error {
	payload, err := json.Marshal(flights)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, routeKey(from, to), payload, c.ttl).Err()
}

func (c *RedisCache) GetAirlines(ctx context.Context) ([]domain.Airline, error) {
	data, err := c.client.Get(ctx, airlinesKey()).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, err
	}

	var airlines []domain.Airline
	if err := json.Unmarshal(data, &airlines); err != nil {
		return nil, err
	}
	return airlines, nil
}

func (c *RedisCache) SetAirlines(ctx context.Context, airlines []domain.Airline) error {
	payload, err := json.Marshal(airlines)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, airlinesKey(), payload, c.ttl).Err()
}

func (c *RedisCache) InvalidateAirlines(ctx context.Context) error {
	return c.client.Del(ctx, airlinesKey()).Err()
}

func routeKey(from, to string) string {
	return fmt.Sprintf("cache:flights:%s:%s", from, to)
}

func airlinesKey() string {
	return "cache:airlines"
}
