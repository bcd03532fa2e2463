package commands_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/domain/model/event"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/product"
	"marketplace/internal/pkg/errs"
)

func TestCreateOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	buyerID := kernel.NewUUID()
	sellerID := kernel.NewUUID()
	cmd, _ := commands.NewCreateOrderCommand(buyerID, 7)

	listed, err := product.NewProduct(7, "Keyboard", "", 12900, sellerID)
	require.NoError(t, err)

	productRepo := new(MockProductRepository)
	orderRepo := new(MockOrderRepository)
	eventRepo := new(MockEventRepository)
	uow := new(MockOrderUoW)
	var appended *event.Event
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ProductRepository").Return(productRepo).Once(),
		productRepo.On("Get", mock.Anything, int64(7)).Return(listed, nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("NextID", mock.Anything).Return(int64(3), nil).Once(),
		orderRepo.On("Add", mock.Anything, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("EventRepository").Return(eventRepo).Once(),
		eventRepo.On("Append", mock.Anything, captureAppend(&appended)).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateOrderCommandHandler(factory)
	orderID, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, int64(3), orderID)

	require.NotNil(t, appended)
	assert.Equal(t, event.OrderCreated, appended.Name())
	assert.Equal(t, event.OrderKey(3), appended.Key())
	var payload event.OrderCreatedPayload
	decodeEventPayload(t, appended, &payload)
	assert.Equal(t, event.OrderCreatedPayload{
		OrderID:   3,
		ProductID: 7,
		BuyerID:   buyerID.String(),
	}, payload)
	productRepo.AssertExpectations(t)
	orderRepo.AssertExpectations(t)
	eventRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_ProductNotFound(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewCreateOrderCommand(kernel.NewUUID(), 404)

	productRepo := new(MockProductRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ProductRepository").Return(productRepo).Once(),
		productRepo.On("Get", mock.Anything, int64(404)).
			Return(nil, errs.NewObjectNotFoundError("product", int64(404))).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateOrderCommandHandler(factory)
	_, err := h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	uow.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	factory := new(MockOrderUoWFactory)
	h := commands.NewCreateOrderCommandHandler(factory)
	_, err := h.Handle(ctx, commands.CreateOrderCommand{})
	require.Error(t, err)
}
