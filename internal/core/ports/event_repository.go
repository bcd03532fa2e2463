package ports

import (
	"context"

	"marketplace/internal/core/domain/model/event"
)

// EventRepository defines the persistence contract for the append-only
// event log. The log doubles as a transactional outbox: entries are
// appended in the same transaction as the state change they describe and
// relayed to the message broker afterwards.
type EventRepository interface {
	// Append stores a new log entry and assigns its sequential position.
	Append(ctx context.Context, aggregate *event.Event) error

	// GetUnpublished retrieves up to limit pending entries in log order.
	GetUnpublished(ctx context.Context, limit int) ([]*event.Event, error)

	// MarkPublished records the relay delivery of the given entries.
	MarkPublished(ctx context.Context, aggregates []*event.Event) error
}
