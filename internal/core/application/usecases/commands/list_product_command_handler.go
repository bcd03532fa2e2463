package commands

import (
	"context"

	"marketplace/internal/core/domain/model/event"
	"marketplace/internal/core/domain/model/product"
)

// ListProductCommandHandler handles the business logic for product listing.
// Only approved submitters and sellers may publish products; the new
// product receives the next sequential catalog identifier.
type ListProductCommandHandler struct {
	uowFactory CatalogUoWFactory
}

// NewListProductCommandHandler creates a handler for product listing operations.
func NewListProductCommandHandler(uowFactory CatalogUoWFactory) ListProductCommandHandler {
	return ListProductCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the product listing command and returns the identifier
// of the published product. The role check, the identifier reservation,
// the insert and the log entry share one transaction, so a rejected
// listing never consumes an identifier.
func (h *ListProductCommandHandler) Handle(ctx context.Context, cmd ListProductCommand) (int64, error) {
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

	if err := requireLister(ctx, uow.RoleRepository(), cmd.SellerID()); err != nil {
		return 0, err
	}

	productRepo := uow.ProductRepository()
	productID, err := productRepo.NextID(ctx)
	if err != nil {
		return 0, err
	}

	aggregate, err := product.NewProduct(productID, cmd.Name(), cmd.Description(), cmd.Price(), cmd.SellerID())
	if err != nil {
		return 0, err
	}

	if err = productRepo.Add(ctx, aggregate); err != nil {
		return 0, err
	}

	logEntry, err := event.NewEvent(event.ProductListed, event.ProductKey(productID), event.ProductListedPayload{
		ProductID: productID,
		Name:      aggregate.Name(),
		Price:     aggregate.Price(),
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

	return productID, nil
}
