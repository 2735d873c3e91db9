// Package kafka publishes order outbox events to a Kafka topic.
package kafka

import (
	"context"
	"log/slog"
	"time"

	"hyperlocal/internal/core/ports"

	"github.com/pkg/errors"
	"github.com/segmentio/kafka-go"
)

// messageWriter is the part of *kafka.Writer the publisher uses.
type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// Publisher writes each outbox message keyed by order id, so events of one order stay on one
// partition and keep their order.
type Publisher struct {
	writer messageWriter
	topic  string
	log    *slog.Logger
}

var _ ports.EventPublisher = (*Publisher)(nil)

func NewPublisher(brokers []string, topic string, log *slog.Logger) *Publisher {
	w := &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  topic,
		Balancer:               &kafka.Hash{},
		RequiredAcks:           kafka.RequireAll,
		AllowAutoTopicCreation: true,
		BatchTimeout:           10 * time.Millisecond,
		WriteTimeout:           5 * time.Second,
	}
	return newPublisher(w, topic, log)
}

func newPublisher(w messageWriter, topic string, log *slog.Logger) *Publisher {
	return &Publisher{writer: w, topic: topic, log: log.With("component", "kafka_publisher")}
}

func (p *Publisher) Publish(ctx context.Context, messages ...ports.OutboxMessage) error {
	if len(messages) == 0 {
		return nil
	}

	out := make([]kafka.Message, 0, len(messages))
	for _, m := range messages {
		out = append(out, kafka.Message{
			Key:   []byte(m.AggregateID.String()),
			Value: m.Payload,
			Time:  m.OccurredAt,
			Headers: []kafka.Header{
				{Key: "event_id", Value: []byte(m.ID.String())},
				{Key: "event_type", Value: []byte(m.EventType)},
			},
		})
	}

	if err := p.writer.WriteMessages(ctx, out...); err != nil {
		return errors.Wrapf(err, "publish %d events to %s", len(out), p.topic)
	}
	p.log.DebugContext(ctx, "events published", "count", len(out), "topic", p.topic)
	return nil
}

func (p *Publisher) Close() error {
	return p.writer.Close()
}

// LogPublisher stands in for Kafka when no brokers are configured: every event is logged and
// counts as delivered.
type LogPublisher struct {
	log *slog.Logger
}

var _ ports.EventPublisher = LogPublisher{}

func NewLogPublisher(log *slog.Logger) LogPublisher {
	return LogPublisher{log: log.With("component", "log_publisher")}
}

func (p LogPublisher) Publish(ctx context.Context, messages ...ports.OutboxMessage) error {
	for _, m := range messages {
		p.log.InfoContext(ctx, "order event",
			"event_id", m.ID.String(),
			"event_type", m.EventType,
			"order_id", m.AggregateID.String(),
			"payload", string(m.Payload),
		)
	}
	return nil
}
