package ports

import (
	"context"

	"marketplace/internal/core/domain/model/event"
)

// EventPublisher delivers log entries to external consumers.
type EventPublisher interface {
	// Publish delivers the event to the message broker.
	Publish(ctx context.Context, aggregate *event.Event) error

	// Close releases broker resources.
	Close() error
}
