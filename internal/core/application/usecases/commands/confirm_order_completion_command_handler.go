package commands

import (
	"context"

	"marketplace/internal/core/domain/model/event"
)

// ConfirmOrderCompletionCommandHandler handles the buyer side of order
// finalization. Confirmation requires a prior seller completion request;
// once both halves agree the order reaches its terminal finalized status.
type ConfirmOrderCompletionCommandHandler struct {
	uowFactory DeliveryUoWFactory
}

// NewConfirmOrderCompletionCommandHandler creates a handler for completion confirmation operations.
func NewConfirmOrderCompletionCommandHandler(uowFactory DeliveryUoWFactory) ConfirmOrderCompletionCommandHandler {
	return ConfirmOrderCompletionCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the confirmation command and emits the finalization event.
func (h *ConfirmOrderCompletionCommandHandler) Handle(ctx context.Context, cmd ConfirmOrderCompletionCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = aggregate.ConfirmCompletion(cmd.CallerID()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	logEntry, err := event.NewEvent(event.OrderFinalized, event.OrderKey(cmd.OrderID()), event.OrderFinalizedPayload{
		OrderID: cmd.OrderID(),
	})
	if err != nil {
		return err
	}

	if err = uow.EventRepository().Append(ctx, logEntry); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
