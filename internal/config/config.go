package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// ServiceConfig holds all configuration for the booking service.
type ServiceConfig struct {
	Port        string `mapstructure:"PORT"`
	AppEnv      string `mapstructure:"APP_ENV"`
	LogLevel    string `mapstructure:"LOG_LEVEL"`
	FrontendURL string `mapstructure:"FRONTEND_URL"`

	DatabaseURL        string        `mapstructure:"DATABASE_URL"`
	DBConnectTimeout   time.Duration `mapstructure:"DB_CONNECT_TIMEOUT"`
	DBOperationTimeout time.Duration `mapstructure:"DB_OPERATION_TIMEOUT"`

	StripeSecretKey string `mapstructure:"STRIPE_SECRET_KEY"`
	PaymentCurrency string `mapstructure:"PAYMENT_CURRENCY"`

	UplistingAPIKey  string        `mapstructure:"UPLISTING_API_KEY"`
	UplistingAPIURL  string        `mapstructure:"UPLISTING_API_URL"`
	UplistingTimeout time.Duration `mapstructure:"UPLISTING_TIMEOUT"`

	KafkaBrokers      string `mapstructure:"KAFKA_BROKERS"`
	KafkaBookingTopic string `mapstructure:"KAFKA_BOOKING_TOPIC"`
	KafkaGroupID      string `mapstructure:"KAFKA_GROUP_ID"`

	SMTPHost     string `mapstructure:"SMTP_HOST"`
	SMTPPort     int    `mapstructure:"SMTP_PORT"`
	SMTPUsername string `mapstructure:"SMTP_USERNAME"`
	SMTPPassword string `mapstructure:"SMTP_PASSWORD"`
	SMTPFrom     string `mapstructure:"SMTP_FROM"`

	RateLimitRequests int           `mapstructure:"RATE_LIMIT_REQUESTS"`
	RateLimitWindow   time.Duration `mapstructure:"RATE_LIMIT_WINDOW"`
}

var defaults = map[string]interface{}{
	"PORT":                 "3000",
	"APP_ENV":              "development",
	"LOG_LEVEL":            "info",
	"FRONTEND_URL":         "http://localhost:3000",
	"DATABASE_URL":         "",
	"DB_CONNECT_TIMEOUT":   "5s",
	"DB_OPERATION_TIMEOUT": "3s",
	"STRIPE_SECRET_KEY":    "",
	"PAYMENT_CURRENCY":     "nzd",
	"UPLISTING_API_KEY":    "",
	"UPLISTING_API_URL":    "",
	"UPLISTING_TIMEOUT":    "5s",
	"KAFKA_BROKERS":        "",
	"KAFKA_BOOKING_TOPIC":  "booking.events",
	"KAFKA_GROUP_ID":       "service-booking-notifier",
	"SMTP_HOST":            "",
	"SMTP_PORT":            587,
	"SMTP_USERNAME":        "",
	"SMTP_PASSWORD":        "",
	"SMTP_FROM":            "",
	"RATE_LIMIT_REQUESTS":  100,
	"RATE_LIMIT_WINDOW":    "15m",
}

// Load reads configuration from an optional .env file and the environment.
func Load() (*ServiceConfig, error) {
	// A missing .env file is normal outside local development.
	_ = godotenv.Load()

	v := viper.New()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}
	v.AutomaticEnv()

	var cfg ServiceConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *ServiceConfig) validate() error {
	if c.Port == "" {
		return fmt.Errorf("PORT must not be empty")
	}
	if c.RateLimitRequests <= 0 || c.RateLimitWindow <= 0 {
		return fmt.Errorf("rate limit must be positive, got %d per %s", c.RateLimitRequests, c.RateLimitWindow)
	}
	return nil
}

// Addr returns the listen address for the HTTP server.
func (c *ServiceConfig) Addr() string {
	if strings.HasPrefix(c.Port, ":") {
		return c.Port
	}
	return ":" + c.Port
}

// IsProduction reports whether the service runs in production.
func (c *ServiceConfig) IsProduction() bool {
	return c.AppEnv == "production"
}

// Brokers returns the configured Kafka brokers, or nil when events are disabled.
func (c *ServiceConfig) Brokers() []string {
	var brokers []string
	for _, b := range strings.Split(c.KafkaBrokers, ",") {
		if b = strings.TrimSpace(b); b != "" {
			brokers = append(brokers, b)
		}
	}
	return brokers
}

// LiveRatesEnabled reports whether the Uplisting integration is configured.
func (c *ServiceConfig) LiveRatesEnabled() bool {
	return c.UplistingAPIKey != "" && c.UplistingAPIURL != ""
}
