// Package outboxrepo stores domain events committed alongside the aggregates that raised them.
package outboxrepo

import (
	"time"

	"hyperlocal/internal/core/domain/model/kernel"
	"hyperlocal/internal/core/ports"

	"github.com/google/uuid"
)

type OutboxDTO struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey"`
	EventType   string     `gorm:"type:varchar(64);not null"`
	AggregateID uuid.UUID  `gorm:"type:uuid;not null;index"`
	Payload     []byte     `gorm:"not null"`
	OccurredAt  time.Time  `gorm:"not null;index"`
	PublishedAt *time.Time `gorm:"index"`
}

func (OutboxDTO) TableName() string {
	return "order_outbox"
}

// FromMessage maps a message to its row. Repositories that raise events insert these rows
// inside their own transaction.
func FromMessage(m ports.OutboxMessage) OutboxDTO {
	return OutboxDTO{
		ID:          m.ID.Bytes(),
		EventType:   m.EventType,
		AggregateID: m.AggregateID.Bytes(),
		Payload:     m.Payload,
		OccurredAt:  m.OccurredAt,
	}
}

func toMessage(dto OutboxDTO) (ports.OutboxMessage, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return ports.OutboxMessage{}, err
	}
	aggregateID, err := kernel.UUIDFromBytes(dto.AggregateID[:])
	if err != nil {
		return ports.OutboxMessage{}, err
	}
	return ports.OutboxMessage{
		ID:          id,
		EventType:   dto.EventType,
		AggregateID: aggregateID,
		Payload:     dto.Payload,
		OccurredAt:  dto.OccurredAt,
	}, nil
}
