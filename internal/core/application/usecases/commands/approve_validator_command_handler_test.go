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
	"marketplace/internal/pkg/errs"
)

func TestApproveValidatorCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	adminID := kernel.NewUUID()
	validatorID := kernel.NewUUID()
	cmd, _ := commands.NewApproveValidatorCommand(adminID, validatorID)

	adminAssignment, err := access.NewRoleAssignment(adminID, access.Admin)
	require.NoError(t, err)

	roleRepo := new(MockRoleRepository)
	validatorRepo := new(MockValidatorRepository)
	eventRepo := new(MockEventRepository)
	uow := new(MockAccessUoW)
	var appended *event.Event
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("RoleRepository").Return(roleRepo).Once(),
		roleRepo.On("Get", mock.Anything, adminID).Return(adminAssignment, nil).Once(),
		uow.On("ValidatorRepository").Return(validatorRepo).Once(),
		validatorRepo.On("Add", mock.Anything, mock.AnythingOfType("*access.ValidatorApproval")).Return(nil).Once(),
		uow.On("EventRepository").Return(eventRepo).Once(),
		eventRepo.On("Append", mock.Anything, captureAppend(&appended)).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockAccessUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewApproveValidatorCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))

	require.NotNil(t, appended)
	assert.Equal(t, event.ValidatorApproved, appended.Name())
	assert.Equal(t, event.ValidatorKey(validatorID.String()), appended.Key())
	var payload event.ValidatorApprovedPayload
	decodeEventPayload(t, appended, &payload)
	assert.Equal(t, event.ValidatorApprovedPayload{
		ValidatorID: validatorID.String(),
		ApprovedBy:  adminID.String(),
	}, payload)
	roleRepo.AssertExpectations(t)
	validatorRepo.AssertExpectations(t)
	eventRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestApproveValidatorCommandHandler_Handle_NotAdmin(t *testing.T) {
	ctx := t.Context()
	callerID := kernel.NewUUID()
	cmd, _ := commands.NewApproveValidatorCommand(callerID, kernel.NewUUID())

	sellerAssignment, err := access.NewRoleAssignment(callerID, access.Seller)
	require.NoError(t, err)

	roleRepo := new(MockRoleRepository)
	uow := new(MockAccessUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("RoleRepository").Return(roleRepo).Once(),
		roleRepo.On("Get", mock.Anything, callerID).Return(sellerAssignment, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockAccessUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewApproveValidatorCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, access.ErrNotAdmin)
	uow.AssertExpectations(t)
}

func TestApproveValidatorCommandHandler_Handle_UnknownCaller(t *testing.T) {
	ctx := t.Context()
	callerID := kernel.NewUUID()
	cmd, _ := commands.NewApproveValidatorCommand(callerID, kernel.NewUUID())

	roleRepo := new(MockRoleRepository)
	uow := new(MockAccessUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("RoleRepository").Return(roleRepo).Once(),
		roleRepo.On("Get", mock.Anything, callerID).
			Return(nil, errs.NewObjectNotFoundError("role", callerID)).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockAccessUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewApproveValidatorCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.ErrorIs(t, err, access.ErrNotAdmin)
	uow.AssertExpectations(t)
}
