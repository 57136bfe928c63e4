package ports

import (
	"context"
	"time"

	"freight/internal/core/domain/model/kernel"
)

// OutboxMessage is a serialized domain event waiting to be published.
type OutboxMessage struct {
	ID          kernel.UUID
	EventName   string
	AggregateID kernel.UUID
	Payload     []byte
	OccurredAt  time.Time
}

// OutboxRepository reads the outbox table. Rows are written by the unit of
// work when it commits aggregates that recorded events.
type OutboxRepository interface {
	// ClaimPending locks up to limit unpublished messages, oldest first,
	// skipping rows already locked by another relay.
	ClaimPending(ctx context.Context, limit int) ([]OutboxMessage, error)

	MarkPublished(ctx context.Context, ids []kernel.UUID, at time.Time) error
}

// EventPublisher delivers outbox messages to a broker.
type EventPublisher interface {
	Publish(ctx context.Context, messages ...OutboxMessage) error
	Close() error
}
