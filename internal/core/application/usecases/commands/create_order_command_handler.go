package commands

import (
	"context"

	"marketplace/internal/core/domain/model/event"
	"marketplace/internal/core/domain/model/order"
)

// CreateOrderCommandHandler handles the business logic for order creation.
// The referenced product must exist; the new order starts in pending status
// awaiting validator review.
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewCreateOrderCommandHandler creates a handler for order creation operations.
func NewCreateOrderCommandHandler(uowFactory OrderUoWFactory) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the order creation command and returns the identifier of
// the new order. The seller is copied from the product record at creation
// time, so later catalog changes cannot redirect an in-flight order.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (int64, error) {
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

	listed, err := uow.ProductRepository().Get(ctx, cmd.ProductID())
	if err != nil {
		return 0, err
	}

	orderRepo := uow.OrderRepository()
	orderID, err := orderRepo.NextID(ctx)
	if err != nil {
		return 0, err
	}

	aggregate, err := order.NewOrder(orderID, listed.ID(), cmd.BuyerID(), listed.Seller())
	if err != nil {
		return 0, err
	}

	if err = orderRepo.Add(ctx, aggregate); err != nil {
		return 0, err
	}

	logEntry, err := event.NewEvent(event.OrderCreated, event.OrderKey(orderID), event.OrderCreatedPayload{
		OrderID:   orderID,
		ProductID: listed.ID(),
		BuyerID:   cmd.BuyerID().String(),
	})
	if err != nil {
		return 0, err
	}

	if err = uow.EventRepository().Append(ctx, logEntry); err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return orderID, nil
}
