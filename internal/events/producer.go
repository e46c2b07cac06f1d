package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// Publisher sends events without waiting for downstream consumers.
type Publisher interface {
	Publish(ctx context.Context, eventType, key string, data interface{}) error
	Close() error
}

// KafkaPublisher writes CloudEvents to a single topic. Writes are asynchronous:
// delivery failures are logged from the writer's completion callback.
type KafkaPublisher struct {
	writer *kafkago.Writer
	source string
	logger *zap.Logger
}

// NewKafkaPublisher creates a KafkaPublisher for the given brokers and topic.
func NewKafkaPublisher(brokers []string, topic, source string, logger *zap.Logger) *KafkaPublisher {
	w := &kafkago.Writer{
		Addr:                   kafkago.TCP(brokers...),
		Topic:                  topic,
		Balancer:               &kafkago.Hash{},
		Async:                  true,
		BatchTimeout:           50 * time.Millisecond,
		WriteTimeout:           10 * time.Second,
		AllowAutoTopicCreation: true,
		Completion: func(messages []kafkago.Message, err error) {
			if err != nil {
				logger.Error("failed to deliver events",
					zap.String("topic", topic),
					zap.Int("count", len(messages)),
					zap.Error(err),
				)
			}
		},
	}
	return &KafkaPublisher{writer: w, source: source, logger: logger}
}

// Publish enqueues the event keyed by key.
func (p *KafkaPublisher) Publish(ctx context.Context, eventType, key string, data interface{}) error {
	ce, err := NewCloudEvent(p.source, eventType, data)
	if err != nil {
		return err
	}
	value, err := json.Marshal(ce)
	if err != nil {
		return fmt.Errorf("failed to marshal cloud event: %w", err)
	}

	if err := p.writer.WriteMessages(ctx, kafkago.Message{
		Key:   []byte(key),
		Value: value,
		Headers: []kafkago.Header{
			{Key: "ce_type", Value: []byte(eventType)},
		},
	}); err != nil {
		return fmt.Errorf("failed to publish %s: %w", eventType, err)
	}
	return nil
}

// Close flushes pending messages and closes the writer.
func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}

// NoopPublisher discards events. It is used when no brokers are configured.
type NoopPublisher struct {
	logger *zap.Logger
}

// NewNoopPublisher creates a NoopPublisher.
func NewNoopPublisher(logger *zap.Logger) *NoopPublisher {
	return &NoopPublisher{logger: logger}
}

// Publish logs the event type at debug level and drops it.
func (p *NoopPublisher) Publish(_ context.Context, eventType, key string, _ interface{}) error {
	p.logger.Debug("event publishing disabled, dropping event",
		zap.String("event_type", eventType),
		zap.String("key", key),
	)
	return nil
}

// Close is a no-op.
func (p *NoopPublisher) Close() error { return nil }
