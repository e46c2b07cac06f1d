package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/lakeside-retreat/service-booking/internal/application"
	"github.com/lakeside-retreat/service-booking/internal/clients"
	"github.com/lakeside-retreat/service-booking/internal/config"
	"github.com/lakeside-retreat/service-booking/internal/database"
	"github.com/lakeside-retreat/service-booking/internal/domain/accommodation"
	bookingDomain "github.com/lakeside-retreat/service-booking/internal/domain/booking"
	"github.com/lakeside-retreat/service-booking/internal/events"
	"github.com/lakeside-retreat/service-booking/internal/handler"
	"github.com/lakeside-retreat/service-booking/internal/logger"
	"github.com/lakeside-retreat/service-booking/internal/middleware"
	"github.com/lakeside-retreat/service-booking/internal/notifications"
	"github.com/lakeside-retreat/service-booking/internal/repository"
	"go.uber.org/zap"
)

const serviceName = "service-booking"

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log, err := logger.NewNamed(cfg.AppEnv, cfg.LogLevel, serviceName)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	log.Info("starting service-booking",
		zap.String("port", cfg.Port),
		zap.String("env", cfg.AppEnv),
	)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Probe the database once; the store variant is fixed for the process lifetime
	durable := repository.OpenDurableStore(ctx, database.PostgresConfig{
		URL:            cfg.DatabaseURL,
		ConnectTimeout: cfg.DBConnectTimeout,
		Debug:          !cfg.IsProduction(),
	}, cfg.DBOperationTimeout, log)
	if closer, ok := durable.(io.Closer); ok {
		defer func() { _ = closer.Close() }()
	}
	fallback := repository.NewMemoryBookingStore()

	// Initialize event publisher
	var publisher events.Publisher
	brokers := cfg.Brokers()
	if len(brokers) > 0 {
		publisher = events.NewKafkaPublisher(brokers, cfg.KafkaBookingTopic, serviceName, log)
	} else {
		log.Info("no Kafka brokers configured, events disabled")
		publisher = events.NewNoopPublisher(log)
	}
	defer func() { _ = publisher.Close() }()

	// Initialize payment provider
	var intents application.IntentProvider
	if cfg.StripeSecretKey != "" {
		intents = clients.NewStripeIntentProvider(cfg.StripeSecretKey)
	} else {
		log.Warn("STRIPE_SECRET_KEY not set, payment intents disabled")
	}

	// Initialize rate source for the catalog
	var rates accommodation.RateSource
	if cfg.LiveRatesEnabled() {
		rates = clients.NewUplistingRateSource(
			cfg.UplistingAPIURL,
			cfg.UplistingAPIKey,
			cfg.UplistingTimeout,
			accommodation.ConfiguredDisplayRates,
			log,
		)
	} else {
		rates = accommodation.NewStaticRateSource(accommodation.ConfiguredDisplayRates)
	}

	// Initialize application services
	pricingStrategy := bookingDomain.NewStandardPricingStrategy()
	bookingService := application.NewBookingService(
		durable,
		fallback,
		bookingDomain.NewStandardReferenceGenerator(),
		pricingStrategy,
		publisher,
		log,
	)
	paymentService := application.NewPaymentService(pricingStrategy, intents, cfg.PaymentCurrency, log)
	accommodationService := application.NewAccommodationService(rates, log)
	contactService := application.NewContactService(publisher, log)
	healthService := application.NewHealthService(durable)

	// Start the confirmation consumer when events are enabled
	if len(brokers) > 0 {
		var sender events.ConfirmationSender
		smtpCfg := notifications.SMTPConfig{
			Host:     cfg.SMTPHost,
			Port:     cfg.SMTPPort,
			Username: cfg.SMTPUsername,
			Password: cfg.SMTPPassword,
			From:     cfg.SMTPFrom,
		}
		if smtpCfg.Enabled() {
			sender = notifications.NewSMTPSender(smtpCfg, log)
		} else {
			sender = notifications.NewLogSender(log)
		}

		consumer := events.NewNotificationConsumer(brokers, cfg.KafkaGroupID, cfg.KafkaBookingTopic, sender, log)
		defer func() { _ = consumer.Close() }()

		go func() {
			log.Info("starting notification consumer")
			if err := consumer.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
				log.Error("notification consumer error", zap.Error(err))
			}
		}()
	}

	// Setup Gin router
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()

	// Apply global middleware
	router.Use(middleware.RecoveryMiddleware(log))
	router.Use(middleware.LoggerMiddleware(log))
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.CORSMiddleware(cfg.FrontendURL))
	router.Use(middleware.SecurityHeadersMiddleware())

	limiter := middleware.NewRateLimiter(cfg.RateLimitRequests, cfg.RateLimitWindow)
	api := router.Group("/api", limiter.Middleware(log))

	// Register routes
	handler.NewHealthHandler(healthService).RegisterRoutes(api)
	handler.NewAccommodationHandler(accommodationService).RegisterRoutes(api)
	handler.NewBookingHandler(bookingService, log).RegisterRoutes(api)
	handler.NewPaymentHandler(paymentService, log).RegisterRoutes(api)
	handler.NewContactHandler(contactService, log).RegisterRoutes(api)

	// Create HTTP server
	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		log.Info("HTTP server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("HTTP server error", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down service-booking...")

	// Cancel the consumer context
	cancel()

	// Shutdown HTTP server with timeout
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("HTTP server forced shutdown", zap.Error(err))
	}

	log.Info("service-booking stopped")
}
