package commands

import (
	"context"
	"errors"

	"marketplace/internal/core/domain/model/access"
	"marketplace/internal/pkg/errs"
)

// AssignRoleCommandHandler handles role administration.
// Only admins may grant roles; granting overwrites the actor's previous role.
type AssignRoleCommandHandler struct {
	uowFactory AccessUoWFactory
}

// NewAssignRoleCommandHandler creates a handler for role assignment operations.
func NewAssignRoleCommandHandler(uowFactory AccessUoWFactory) AssignRoleCommandHandler {
	return AssignRoleCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the role assignment command.
func (h *AssignRoleCommandHandler) Handle(ctx context.Context, cmd AssignRoleCommand) error {
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

	roleRepo := uow.RoleRepository()
	if err := requireAdmin(ctx, roleRepo, cmd.AdminID()); err != nil {
		return err
	}

	assignment, err := roleRepo.Get(ctx, cmd.ActorID())
	switch {
	case err == nil:
		if err = assignment.ChangeRole(cmd.Role()); err != nil {
			return err
		}
	case errors.Is(err, errs.ErrObjectNotFound):
		if assignment, err = access.NewRoleAssignment(cmd.ActorID(), cmd.Role()); err != nil {
			return err
		}
	default:
		return err
	}

	if err = roleRepo.Upsert(ctx, assignment); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
