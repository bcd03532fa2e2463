package commands

import (
	"context"

	"marketplace/internal/core/domain/model/event"
)

// ValidateOrderCommandHandler handles the business logic for order validation.
// Only validators on the admin-approved allow-list may record a verdict, and
// each order accepts exactly one verdict.
type ValidateOrderCommandHandler struct {
	uowFactory ValidationUoWFactory
}

// NewValidateOrderCommandHandler creates a handler for order validation operations.
func NewValidateOrderCommandHandler(uowFactory ValidationUoWFactory) ValidateOrderCommandHandler {
	return ValidateOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the validation command. A second verdict on the same
// order fails with order.ErrOrderAlreadyProcessed regardless of direction.
func (h *ValidateOrderCommandHandler) Handle(ctx context.Context, cmd ValidateOrderCommand) error {
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

	if err := requireValidator(ctx, uow.ValidatorRepository(), cmd.ValidatorID()); err != nil {
		return err
	}

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if cmd.Approve() {
		err = aggregate.Approve(cmd.ValidatorID())
	} else {
		err = aggregate.Reject(cmd.ValidatorID())
	}
	if err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	logEntry, err := event.NewEvent(event.OrderValidated, event.OrderKey(cmd.OrderID()), event.OrderValidatedPayload{
		OrderID:  cmd.OrderID(),
		Approved: cmd.Approve(),
	})
	if err != nil {
		return err
	}

	if err = uow.EventRepository().Append(ctx, logEntry); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
