package commands

import (
	"context"
	"errors"

	"marketplace/internal/core/domain/model/access"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/ports"
	"marketplace/internal/pkg/errs"
)

// requireAdmin ensures the caller holds the admin role.
func requireAdmin(ctx context.Context, roles ports.RoleRepository, callerID kernel.UUID) error {
	assignment, err := roles.Get(ctx, callerID)
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return access.ErrNotAdmin
		}
		return err
	}

	if !assignment.Role().IsAdmin() {
		return access.ErrNotAdmin
	}
	return nil
}

// requireLister ensures the caller holds a role that may list products.
func requireLister(ctx context.Context, roles ports.RoleRepository, callerID kernel.UUID) error {
	assignment, err := roles.Get(ctx, callerID)
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return access.ErrNotApprovedSubmitter
		}
		return err
	}

	if !assignment.Role().CanListProducts() {
		return access.ErrNotApprovedSubmitter
	}
	return nil
}

// requireValidator ensures the caller is on the validator allow-list.
// The allow-list is independent of role labels: holding the validator role
// grants nothing until an admin approves the caller.
func requireValidator(ctx context.Context, validators ports.ValidatorRepository, callerID kernel.UUID) error {
	if _, err := validators.Get(ctx, callerID); err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return access.ErrNotApprovedValidator
		}
		return err
	}
	return nil
}
