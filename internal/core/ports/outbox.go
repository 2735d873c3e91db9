package ports

import (
	"context"
	"time"

	"hyperlocal/internal/core/domain/model/kernel"
)

// OutboxMessage is an event stored in the same transaction as the change that caused it.
type OutboxMessage struct {
	ID          kernel.UUID
	EventType   string
	AggregateID kernel.UUID
	Payload     []byte
	OccurredAt  time.Time
}

// OutboxRepository reads and acknowledges stored events.
type OutboxRepository interface {
	// GetUnpublished returns up to limit events in occurrence order.
	GetUnpublished(ctx context.Context, limit int) ([]OutboxMessage, error)
	MarkPublished(ctx context.Context, ids []kernel.UUID, at time.Time) error
}

// EventPublisher delivers outbox events to the message broker.
type EventPublisher interface {
	Publish(ctx context.Context, messages ...OutboxMessage) error
}
