package events

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"apartment-booking/internal/pkg/errs"
	"apartment-booking/internal/usecase/shared"

	"github.com/segmentio/kafka-go"
)

type MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// KafkaPublisher keys messages by session ID so one session's events stay ordered within a partition.
type KafkaPublisher struct {
	writer MessageWriter
	topic  string
}

func NewKafkaWriter(brokers []string) *kafka.Writer {
	return &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Balancer:     &kafka.LeastBytes{},
		BatchTimeout: 50 * time.Millisecond,
		RequiredAcks: kafka.RequireOne,
	}
}

func NewKafkaPublisher(writer MessageWriter, topic string) *KafkaPublisher {
	return &KafkaPublisher{writer: writer, topic: topic}
}

func (p *KafkaPublisher) Publish(ctx context.Context, event shared.BookingEvent) error {
	value, err := json.Marshal(event)
	if err != nil {
		return errs.Wrap(err, "failed to encode booking event")
	}

	msg := kafka.Message{
		Topic: p.topic,
		Key:   []byte(event.SessionID.String()),
		Value: value,
		Time:  event.OccurredAt,
	}
	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return errs.Wrap(err, "failed to publish booking event")
	}

	slog.Debug("booking event published", "type", event.Type, "session_id", event.SessionID)
	return nil
}

func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}

// NoopPublisher drops events when no brokers are configured.
type NoopPublisher struct{}

func (NoopPublisher) Publish(context.Context, shared.BookingEvent) error {
	return nil
}
