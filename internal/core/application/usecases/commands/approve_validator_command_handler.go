package commands

import (
	"context"

	"marketplace/internal/core/domain/model/access"
	"marketplace/internal/core/domain/model/event"
)

// ApproveValidatorCommandHandler handles validator approval.
// Only admins may extend the allow-list; approval is idempotent.
type ApproveValidatorCommandHandler struct {
	uowFactory AccessUoWFactory
}

// NewApproveValidatorCommandHandler creates a handler for validator approval operations.
func NewApproveValidatorCommandHandler(uowFactory AccessUoWFactory) ApproveValidatorCommandHandler {
	return ApproveValidatorCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the validator approval command.
func (h *ApproveValidatorCommandHandler) Handle(ctx context.Context, cmd ApproveValidatorCommand) error {
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

	if err := requireAdmin(ctx, uow.RoleRepository(), cmd.AdminID()); err != nil {
		return err
	}

	approval, err := access.NewValidatorApproval(cmd.ValidatorID(), cmd.AdminID())
	if err != nil {
		return err
	}

	if err = uow.ValidatorRepository().Add(ctx, approval); err != nil {
		return err
	}

	logEntry, err := event.NewEvent(event.ValidatorApproved, event.ValidatorKey(cmd.ValidatorID().String()),
		event.ValidatorApprovedPayload{
			ValidatorID: cmd.ValidatorID().String(),
			ApprovedBy:  cmd.AdminID().String(),
		})
	if err != nil {
		return err
	}

	if err = uow.EventRepository().Append(ctx, logEntry); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
