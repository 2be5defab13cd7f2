package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/katakamramesh/AirlineBookingAssessment/config"
	"github.com/katakamramesh/AirlineBookingAssessment/internal/bootstrap"
	"github.com/katakamramesh/AirlineBookingAssessment/internal/cache"
	"github.com/katakamramesh/AirlineBookingAssessment/internal/kafka"
	"github.com/katakamramesh/AirlineBookingAssessment/internal/reference"
	"github.com/katakamramesh/AirlineBookingAssessment/internal/repository"
	"github.com/katakamramesh/AirlineBookingAssessment/internal/service/airlines"
	"github.com/katakamramesh/AirlineBookingAssessment/internal/service/booking"
	"github.com/katakamramesh/AirlineBookingAssessment/internal/service/flights"
	"github.com/katakamramesh/AirlineBookingAssessment/internal/service/passengers"
)

func main() {
	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config.yaml"
	}

	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := pgxpool.New(ctx, cfg.Database.DSN())
	if err != nil {
		log.Fatalf("connect postgres: %v", err)
	}
	defer pool.Close()

	if err := repository.Migrate(ctx, pool); err != nil {
		log.Fatalf("migrate schema: %v", err)
	}

	redisCache := cache.NewRedisCache(cfg.Redis, time.Duration(cfg.Cache.TTLSeconds)*time.Second)
	producer := kafka.NewProducer(cfg.Kafka.Brokers)
	defer producer.Close()

	airlineRepo := repository.NewAirlineRepository(pool)
	flightRepo := repository.NewFlightRepository(pool)
	passengerRepo := repository.NewPassengerRepository(pool)
	bookingRepo := repository.NewBookingRepository(pool)

	airlineService := airlines.NewAirlineService(airlineRepo, redisCache)
	flightService := flights.NewFlightService(flightRepo, redisCache)
	passengerService := passengers.NewPassengerService(passengerRepo)
	bookingService := booking.NewBookingService(
		bookingRepo,
		reference.NewGenerator(),
		producer,
		cfg.Kafka.BookingEventsTopic,
		booking.WithNotificationsTopic(cfg.Kafka.NotificationsTopic),
	)

	if err := bootstrap.Run(ctx, cfg, airlineService, flightService, passengerService, bookingService); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
