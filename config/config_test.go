package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := `
http:
  address: ":8080"
database:
  host: localhost
  port: 5432
  user: airline
  password: secret
  name: airline_booking
  ssl_mode: disable
redis:
  addr: "localhost:6379"
kafka:
  brokers:
    - "localhost:9092"
  booking_events_topic: booking-events
  notifications_topic: booking-notifications
  group_id: airline-booking-worker
cache:
  ttl_seconds: 30
`
	assert.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := LoadConfig(path)

	assert.NoError(t, err)
	assert.Equal(t, ":8080", cfg.HTTP.Address)
	assert.Equal(t, "host=localhost port=5432 user=airline password=secret dbname=airline_booking sslmode=disable", cfg.Database.DSN())
	assert.Equal(t, []string{"localhost:9092"}, cfg.Kafka.Brokers)
	assert.Equal(t, "booking-events", cfg.Kafka.BookingEventsTopic)
	assert.Equal(t, 30, cfg.Cache.TTLSeconds)
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoadConfig_InvalidYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	assert.NoError(t, os.WriteFile(path, []byte("http: [not: valid"), 0o600))

	_, err := LoadConfig(path)
	assert.Error(t, err)
}
