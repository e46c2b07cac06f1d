package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "3000", cfg.Port)
	assert.Equal(t, ":3000", cfg.Addr())
	assert.Equal(t, 5*time.Second, cfg.DBConnectTimeout)
	assert.Equal(t, 3*time.Second, cfg.DBOperationTimeout)
	assert.Equal(t, "nzd", cfg.PaymentCurrency)
	assert.Equal(t, "booking.events", cfg.KafkaBookingTopic)
	assert.Equal(t, 100, cfg.RateLimitRequests)
	assert.Equal(t, 15*time.Minute, cfg.RateLimitWindow)
	assert.False(t, cfg.IsProduction())
	assert.False(t, cfg.LiveRatesEnabled())
	assert.Nil(t, cfg.Brokers())
}

func TestLoad_EnvironmentOverrides(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("APP_ENV", "production")
	t.Setenv("DATABASE_URL", "postgres://lodge:secret@db:5432/bookings")
	t.Setenv("DB_OPERATION_TIMEOUT", "750ms")
	t.Setenv("KAFKA_BROKERS", "kafka-1:9092, kafka-2:9092,")
	t.Setenv("UPLISTING_API_KEY", "up_key")
	t.Setenv("UPLISTING_API_URL", "https://connect.uplisting.io")
	t.Setenv("RATE_LIMIT_REQUESTS", "20")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Addr())
	assert.True(t, cfg.IsProduction())
	assert.Equal(t, "postgres://lodge:secret@db:5432/bookings", cfg.DatabaseURL)
	assert.Equal(t, 750*time.Millisecond, cfg.DBOperationTimeout)
	assert.Equal(t, []string{"kafka-1:9092", "kafka-2:9092"}, cfg.Brokers())
	assert.True(t, cfg.LiveRatesEnabled())
	assert.Equal(t, 20, cfg.RateLimitRequests)
}

func TestLoad_RejectsBadRateLimit(t *testing.T) {
	t.Setenv("RATE_LIMIT_REQUESTS", "0")

	_, err := Load()
	assert.Error(t, err)
}
