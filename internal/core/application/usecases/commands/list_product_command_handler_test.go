package commands_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/domain/model/access"
	"marketplace/internal/core/domain/model/event"
	"marketplace/internal/core/domain/model/kernel"
)

func TestListProductCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	sellerID := kernel.NewUUID()
	cmd, _ := commands.NewListProductCommand(sellerID, "Keyboard", "Mechanical", 12900)

	assignment, err := access.NewRoleAssignment(sellerID, access.Seller)
	require.NoError(t, err)

	roleRepo := new(MockRoleRepository)
	productRepo := new(MockProductRepository)
	eventRepo := new(MockEventRepository)
	uow := new(MockCatalogUoW)
	var appended *event.Event
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("RoleRepository").Return(roleRepo).Once(),
		roleRepo.On("Get", mock.Anything, sellerID).Return(assignment, nil).Once(),
		uow.On("ProductRepository").Return(productRepo).Once(),
		productRepo.On("NextID", mock.Anything).Return(int64(1), nil).Once(),
		productRepo.On("Add", mock.Anything, mock.AnythingOfType("*product.Product")).Return(nil).Once(),
		uow.On("EventRepository").Return(eventRepo).Once(),
		eventRepo.On("Append", mock.Anything, captureAppend(&appended)).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCatalogUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewListProductCommandHandler(factory)
	productID, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, int64(1), productID)

	require.NotNil(t, appended)
	assert.Equal(t, event.ProductListed, appended.Name())
	assert.Equal(t, event.ProductKey(1), appended.Key())
	var payload event.ProductListedPayload
	decodeEventPayload(t, appended, &payload)
	assert.Equal(t, event.ProductListedPayload{
		ProductID: 1,
		Name:      "Keyboard",
		Price:     12900,
	}, payload)
	roleRepo.AssertExpectations(t)
	productRepo.AssertExpectations(t)
	eventRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestListProductCommandHandler_Handle_BuyerCannotList(t *testing.T) {
	ctx := t.Context()
	sellerID := kernel.NewUUID()
	cmd, _ := commands.NewListProductCommand(sellerID, "Keyboard", "", 100)

	assignment, err := access.NewRoleAssignment(sellerID, access.Buyer)
	require.NoError(t, err)

	roleRepo := new(MockRoleRepository)
	uow := new(MockCatalogUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("RoleRepository").Return(roleRepo).Once(),
		roleRepo.On("Get", mock.Anything, sellerID).Return(assignment, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCatalogUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewListProductCommandHandler(factory)
	_, err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, access.ErrNotApprovedSubmitter)
	uow.AssertExpectations(t)
}

func TestListProductCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	factory := new(MockCatalogUoWFactory)
	h := commands.NewListProductCommandHandler(factory)
	_, err := h.Handle(ctx, commands.ListProductCommand{})
	require.Error(t, err)
}
