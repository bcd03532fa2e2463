package commands

import (
	"context"
)

// CompleteOrderCommandHandler handles the seller side of order finalization.
// The request only flags the order; finalization happens when the buyer
// confirms through ConfirmOrderCompletionCommand.
type CompleteOrderCommandHandler struct {
	uowFactory DeliveryUoWFactory
}

// NewCompleteOrderCommandHandler creates a handler for completion request operations.
func NewCompleteOrderCommandHandler(uowFactory DeliveryUoWFactory) CompleteOrderCommandHandler {
	return CompleteOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the completion request command. No log entry is written
// here; the finalization event is emitted once the buyer confirms.
func (h *CompleteOrderCommandHandler) Handle(ctx context.Context, cmd CompleteOrderCommand) error {
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

	if err = aggregate.RequestCompletion(cmd.CallerID()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
