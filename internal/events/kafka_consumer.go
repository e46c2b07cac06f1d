package events

import (
	"context"
	"errors"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// ConfirmationSender delivers booking confirmations to guests.
type ConfirmationSender interface {
	SendBookingConfirmation(ctx context.Context, evt BookingConfirmedEvent) error
}

// NotificationConsumer listens to booking events and sends guest confirmations.
type NotificationConsumer struct {
	reader *kafkago.Reader
	sender ConfirmationSender
	logger *zap.Logger
}

// NewNotificationConsumer creates a new NotificationConsumer.
func NewNotificationConsumer(
	brokers []string,
	groupID string,
	topic string,
	sender ConfirmationSender,
	logger *zap.Logger,
) *NotificationConsumer {
	reader := kafkago.NewReader(kafkago.ReaderConfig{
		Brokers:  brokers,
		GroupID:  groupID,
		Topic:    topic,
		MinBytes: 1,
		MaxBytes: 10e6,
	})
	return &NotificationConsumer{
		reader: reader,
		sender: sender,
		logger: logger,
	}
}

// Start begins consuming booking events. This blocks until the context is cancelled.
func (c *NotificationConsumer) Start(ctx context.Context) error {
	for {
		msg, err := c.reader.FetchMessage(ctx)
		if err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				return ctx.Err()
			}
			return err
		}

		// Notifications are best effort: a failed send is logged and the offset still advances.
		if err := c.handleMessage(ctx, msg); err != nil {
			c.logger.Error("failed to handle booking event",
				zap.Int64("offset", msg.Offset),
				zap.Error(err),
			)
		}

		if err := c.reader.CommitMessages(ctx, msg); err != nil {
			c.logger.Error("failed to commit booking event", zap.Error(err))
		}
	}
}

// Close closes the underlying Kafka reader.
func (c *NotificationConsumer) Close() error {
	return c.reader.Close()
}

func (c *NotificationConsumer) handleMessage(ctx context.Context, msg kafkago.Message) error {
	cloudEvent, err := ParseCloudEvent(msg.Value)
	if err != nil {
		c.logger.Error("failed to parse cloud event from booking topic",
			zap.Error(err),
			zap.String("raw", string(msg.Value)),
		)
		return nil // Don't retry malformed messages
	}

	switch cloudEvent.Type {
	case BookingConfirmed:
		return c.handleBookingConfirmed(ctx, cloudEvent)
	default:
		c.logger.Debug("ignoring unhandled booking event type",
			zap.String("type", cloudEvent.Type),
		)
		return nil
	}
}

func (c *NotificationConsumer) handleBookingConfirmed(ctx context.Context, cloudEvent CloudEvent) error {
	var evt BookingConfirmedEvent
	if err := cloudEvent.ParseData(&evt); err != nil {
		c.logger.Error("failed to parse BookingConfirmedEvent data",
			zap.Error(err),
		)
		return nil // Don't retry malformed data
	}

	if err := c.sender.SendBookingConfirmation(ctx, evt); err != nil {
		c.logger.Error("failed to send booking confirmation",
			zap.String("booking_reference", evt.BookingReference),
			zap.Error(err),
		)
		return err
	}

	c.logger.Info("booking confirmation sent",
		zap.String("booking_reference", evt.BookingReference),
	)
	return nil
}
