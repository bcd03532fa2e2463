package commands

import (
	"context"

	"marketplace/internal/core/domain/model/event"
)

// AssignDeliveryCommandHandler handles courier assignment for validated orders.
// Only the order's seller may assign a courier.
type AssignDeliveryCommandHandler struct {
	uowFactory DeliveryUoWFactory
}

// NewAssignDeliveryCommandHandler creates a handler for courier assignment operations.
func NewAssignDeliveryCommandHandler(uowFactory DeliveryUoWFactory) AssignDeliveryCommandHandler {
	return AssignDeliveryCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the courier assignment command.
func (h *AssignDeliveryCommandHandler) Handle(ctx context.Context, cmd AssignDeliveryCommand) error {
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

	if err = aggregate.AssignCourier(cmd.CallerID(), cmd.CourierID()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	logEntry, err := event.NewEvent(event.DeliveryAssigned, event.OrderKey(cmd.OrderID()), event.DeliveryAssignedPayload{
		OrderID:   cmd.OrderID(),
		CourierID: cmd.CourierID().String(),
	})
	if err != nil {
		return err
	}

	if err = uow.EventRepository().Append(ctx, logEntry); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
