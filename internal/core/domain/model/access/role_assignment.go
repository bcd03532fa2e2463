package access

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/guard"
)

// ErrRoleAssignmentIsNotConstructed is returned when a RoleAssignment was not
// created through NewRoleAssignment or RestoreRoleAssignment.
var ErrRoleAssignmentIsNotConstructed = errors.New(
	"RoleAssignment must be created via NewRoleAssignment constructor",
)

// RoleAssignment is the aggregate binding one actor identity to its role.
// An identity holds at most one role; assigning again overwrites the
// previous value. There is no unassignment: the registry only grows.
//
// Invariants:
//   - actor identity must be a valid UUID
//   - role must be one of the defined Role constants
type RoleAssignment struct {
	actorID kernel.UUID
	role    Role

	guard guard.ConstructorGuard
}

// NewRoleAssignment creates a role assignment for an actor.
func NewRoleAssignment(actorID kernel.UUID, role Role) (*RoleAssignment, error) {
	assignment := &RoleAssignment{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		assignment.setActorID(actorID),
		assignment.setRole(role),
	); err != nil {
		return nil, err
	}

	return assignment, nil
}

// RestoreRoleAssignment reconstructs a role assignment from persistence.
func RestoreRoleAssignment(actorID kernel.UUID, role Role) (*RoleAssignment, error) {
	return NewRoleAssignment(actorID, role)
}

// Validate ensures the assignment was created through a constructor.
func (a *RoleAssignment) Validate() error {
	if a == nil {
		return ErrRoleAssignmentIsNotConstructed
	}
	return a.guard.Validate(ErrRoleAssignmentIsNotConstructed)
}

// ActorID returns the identity the role is assigned to.
func (a *RoleAssignment) ActorID() kernel.UUID {
	return a.actorID
}

// Role returns the assigned role.
func (a *RoleAssignment) Role() Role {
	return a.role
}

// ChangeRole overwrites the assignment with a new role.
func (a *RoleAssignment) ChangeRole(role Role) error {
	return a.setRole(role)
}

func (a *RoleAssignment) setActorID(actorID kernel.UUID) error {
	if err := actorID.Validate(); err != nil {
		return err
	}
	a.actorID = actorID
	return nil
}

func (a *RoleAssignment) setRole(role Role) error {
	if err := role.Validate(); err != nil {
		return err
	}
	a.role = role
	return nil
}
