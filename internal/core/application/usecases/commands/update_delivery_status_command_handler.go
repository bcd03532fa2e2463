package commands

import (
	"context"

	"marketplace/internal/core/domain/model/event"
)

// UpdateDeliveryStatusCommandHandler handles courier delivery progress reports.
// Only the courier assigned to the order may report.
type UpdateDeliveryStatusCommandHandler struct {
	uowFactory DeliveryUoWFactory
}

// NewUpdateDeliveryStatusCommandHandler creates a handler for delivery progress operations.
func NewUpdateDeliveryStatusCommandHandler(uowFactory DeliveryUoWFactory) UpdateDeliveryStatusCommandHandler {
	return UpdateDeliveryStatusCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the delivery progress command.
func (h *UpdateDeliveryStatusCommandHandler) Handle(ctx context.Context, cmd UpdateDeliveryStatusCommand) error {
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

	if err = aggregate.UpdateDelivery(cmd.CallerID(), cmd.Completed()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	logEntry, err := event.NewEvent(event.DeliveryStatusUpdated, event.OrderKey(cmd.OrderID()),
		event.DeliveryStatusUpdatedPayload{
			OrderID: cmd.OrderID(),
			Status:  aggregate.Status().String(),
		})
	if err != nil {
		return err
	}

	if err = uow.EventRepository().Append(ctx, logEntry); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
