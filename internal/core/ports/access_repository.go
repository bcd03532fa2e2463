package ports

import (
	"context"

	"marketplace/internal/core/domain/model/access"
	"marketplace/internal/core/domain/model/kernel"
)

// RoleRepository defines the persistence contract for role assignments.
type RoleRepository interface {
	// Upsert stores the role assignment, replacing any previous role
	// held by the same actor.
	Upsert(ctx context.Context, aggregate *access.RoleAssignment) error

	// Get retrieves the role assignment for an actor.
	// Returns errs.ObjectNotFoundError when the actor has no role.
	Get(ctx context.Context, actorID kernel.UUID) (*access.RoleAssignment, error)
}

// ValidatorRepository defines the persistence contract for the validator
// allow-list.
type ValidatorRepository interface {
	// Add persists a validator approval. Adding an already approved
	// validator is a no-op.
	Add(ctx context.Context, aggregate *access.ValidatorApproval) error

	// Get retrieves the approval record for a validator.
	// Returns errs.ObjectNotFoundError when the validator is not approved.
	Get(ctx context.Context, validatorID kernel.UUID) (*access.ValidatorApproval, error)
}
