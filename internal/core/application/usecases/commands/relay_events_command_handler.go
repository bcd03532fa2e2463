package commands

import (
	"context"

	"marketplace/internal/core/domain/model/event"
	"marketplace/internal/core/ports"
)

// RelayEventsCommandHandler drains the transactional outbox: it reads
// pending event log entries in log order, publishes them to the message
// broker and records the delivery. Publishing stops at the first broker
// failure so entries are never delivered out of order; already published
// entries of the pass are still marked.
type RelayEventsCommandHandler struct {
	uowFactory OutboxUoWFactory
	publisher  ports.EventPublisher
}

// NewRelayEventsCommandHandler creates a handler for outbox drain passes.
func NewRelayEventsCommandHandler(uowFactory OutboxUoWFactory, publisher ports.EventPublisher) RelayEventsCommandHandler {
	return RelayEventsCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle processes one drain pass and returns the number of delivered events.
func (h *RelayEventsCommandHandler) Handle(ctx context.Context, cmd RelayEventsCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	eventRepo := uow.EventRepository()
	pending, err := eventRepo.GetUnpublished(ctx, cmd.Limit())
	if err != nil {
		return 0, err
	}

	var delivered []*event.Event
	var publishErr error
	for _, entry := range pending {
		if publishErr = h.publisher.Publish(ctx, entry); publishErr != nil {
			break
		}
		delivered = append(delivered, entry)
	}

	if len(delivered) > 0 {
		if err = eventRepo.MarkPublished(ctx, delivered); err != nil {
			return 0, err
		}
		if err = uow.Commit(ctx); err != nil {
			return 0, err
		}
	}

	return len(delivered), publishErr
}
