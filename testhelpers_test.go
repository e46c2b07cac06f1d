//go:build integration

package main_test

import (
	"context"
	"fmt"
	"net"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/lakeside-retreat/service-booking/internal/application"
	"github.com/lakeside-retreat/service-booking/internal/database"
	bookingDomain "github.com/lakeside-retreat/service-booking/internal/domain/booking"
	"github.com/lakeside-retreat/service-booking/internal/events"
	"github.com/lakeside-retreat/service-booking/internal/repository"
	kafkago "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	kafkamodule "github.com/testcontainers/testcontainers-go/modules/kafka"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.uber.org/zap"
)

const bookingTopic = "booking.events"

// testInfra holds shared test infrastructure.
type testInfra struct {
	DatabaseURL  string
	KafkaBrokers []string
	Cleanup      func()
}

// bookingStack holds wired-up booking service components.
type bookingStack struct {
	Service   *application.BookingService
	Durable   *repository.GormBookingStore
	Fallback  *repository.MemoryBookingStore
	Consumer  *events.NotificationConsumer
	Sender    *recordingSender
	Publisher *events.KafkaPublisher
}

func (s *bookingStack) Close() {
	_ = s.Consumer.Close()
	_ = s.Publisher.Close()
	_ = s.Durable.Close()
}

// recordingSender captures confirmations delivered by the consumer.
type recordingSender struct {
	mu   sync.Mutex
	sent []events.BookingConfirmedEvent
}

func (r *recordingSender) SendBookingConfirmation(_ context.Context, evt events.BookingConfirmedEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sent = append(r.sent, evt)
	return nil
}

func (r *recordingSender) find(reference string) (events.BookingConfirmedEvent, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, evt := range r.sent {
		if evt.BookingReference == reference {
			return evt, true
		}
	}
	return events.BookingConfirmedEvent{}, false
}

// setupContainers starts PostgreSQL and Kafka testcontainers.
func setupContainers(t *testing.T) *testInfra {
	t.Helper()
	ctx := context.Background()

	pgReq := testcontainers.ContainerRequest{
		Image:        "postgres:16-alpine",
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_USER":     "test",
			"POSTGRES_PASSWORD": "test",
			"POSTGRES_DB":       "test_booking",
		},
		WaitingFor: wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2).
			WithStartupTimeout(60 * time.Second),
	}
	pgContainer, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: pgReq,
		Started:          true,
	})
	require.NoError(t, err, "failed to start PostgreSQL container")

	pgHost, err := pgContainer.Host(ctx)
	require.NoError(t, err)
	pgPort, err := pgContainer.MappedPort(ctx, "5432")
	require.NoError(t, err)

	dsn := fmt.Sprintf("postgres://test:test@%s/test_booking?sslmode=disable", net.JoinHostPort(pgHost, pgPort.Port()))

	// Start Kafka container using confluent-local (supports KRaft natively).
	kafkaContainer, err := kafkamodule.Run(ctx, "confluentinc/confluent-local:7.5.0")
	require.NoError(t, err, "failed to start Kafka container")

	kafkaBrokers, err := kafkaContainer.Brokers(ctx)
	require.NoError(t, err, "failed to get Kafka brokers")

	createTopics(t, kafkaBrokers, bookingTopic)

	cleanup := func() {
		if err := kafkaContainer.Terminate(ctx); err != nil {
			t.Logf("failed to terminate Kafka container: %v", err)
		}
		if err := pgContainer.Terminate(ctx); err != nil {
			t.Logf("failed to terminate PostgreSQL container: %v", err)
		}
	}

	return &testInfra{
		DatabaseURL:  dsn,
		KafkaBrokers: kafkaBrokers,
		Cleanup:      cleanup,
	}
}

// setupBookingStack wires up the booking service against real infrastructure.
func setupBookingStack(t *testing.T, infra *testInfra) *bookingStack {
	t.Helper()
	logger, _ := zap.NewDevelopment()

	// Poll until the store can actually connect and ping.
	var store bookingDomain.DurableStore
	require.Eventually(t, func() bool {
		store = repository.OpenDurableStore(context.Background(), database.PostgresConfig{
			URL:            infra.DatabaseURL,
			ConnectTimeout: 2 * time.Second,
		}, 3*time.Second, logger)
		return store.Available()
	}, 30*time.Second, 1*time.Second, "PostgreSQL not ready for connections")

	durable, ok := store.(*repository.GormBookingStore)
	require.True(t, ok)

	fallback := repository.NewMemoryBookingStore()
	publisher := events.NewKafkaPublisher(infra.KafkaBrokers, bookingTopic, "service-booking", logger)
	svc := application.NewBookingService(
		durable,
		fallback,
		bookingDomain.NewStandardReferenceGenerator(),
		bookingDomain.NewStandardPricingStrategy(),
		publisher,
		logger,
	)

	sender := &recordingSender{}
	groupID := fmt.Sprintf("test-notifier-%s", uuid.New().String()[:8])
	consumer := events.NewNotificationConsumer(infra.KafkaBrokers, groupID, bookingTopic, sender, logger)

	return &bookingStack{
		Service:   svc,
		Durable:   durable,
		Fallback:  fallback,
		Consumer:  consumer,
		Sender:    sender,
		Publisher: publisher,
	}
}

// consumeOneEvent reads from a Kafka topic until it finds an event of the expected type and key.
func consumeOneEvent(t *testing.T, brokers []string, topic, expectedType, key string, timeout time.Duration) events.CloudEvent {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	groupID := fmt.Sprintf("test-assert-%s", uuid.New().String()[:8])
	reader := kafkago.NewReader(kafkago.ReaderConfig{
		Brokers:     brokers,
		GroupID:     groupID,
		Topic:       topic,
		MinBytes:    1,
		MaxBytes:    10e6,
		StartOffset: kafkago.FirstOffset,
	})
	defer func() { _ = reader.Close() }()

	for {
		msg, err := reader.ReadMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				t.Fatalf("timed out waiting for event type %q on topic %q", expectedType, topic)
			}
			continue
		}
		if string(msg.Key) != key {
			continue
		}
		ce, err := events.ParseCloudEvent(msg.Value)
		if err != nil {
			continue
		}
		if ce.Type == expectedType {
			return ce
		}
	}
}

// createTopics pre-creates Kafka topics so producers don't fail with "Unknown Topic".
func createTopics(t *testing.T, brokers []string, topics ...string) {
	t.Helper()
	conn, err := kafkago.Dial("tcp", brokers[0])
	require.NoError(t, err, "failed to dial Kafka for topic creation")
	defer conn.Close()

	controller, err := conn.Controller()
	require.NoError(t, err, "failed to get Kafka controller")

	controllerConn, err := kafkago.Dial("tcp", net.JoinHostPort(controller.Host, fmt.Sprintf("%d", controller.Port)))
	require.NoError(t, err, "failed to connect to Kafka controller")
	defer controllerConn.Close()

	topicConfigs := make([]kafkago.TopicConfig, len(topics))
	for i, topic := range topics {
		topicConfigs[i] = kafkago.TopicConfig{
			Topic:             topic,
			NumPartitions:     1,
			ReplicationFactor: 1,
		}
	}
	err = controllerConn.CreateTopics(topicConfigs...)
	require.NoError(t, err, "failed to create Kafka topics")

	// Give Kafka a moment to propagate topic metadata.
	time.Sleep(1 * time.Second)
}

func intPtr(v int) *int { return &v }
