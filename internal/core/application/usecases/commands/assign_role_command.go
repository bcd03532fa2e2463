package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/access"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/guard"
)

var ErrAssignRoleCommandIsNotConstructed = errors.New(
	"AssignRoleCommand must be created via NewAssignRoleCommand constructor",
)

// AssignRoleCommand represents an admin's request to grant a marketplace
// role to an actor, replacing any role the actor held before.
type AssignRoleCommand struct { //nolint:recvcheck //using for validation
	adminID kernel.UUID
	actorID kernel.UUID
	role    access.Role

	guard guard.ConstructorGuard
}

// NewAssignRoleCommand creates a command granting a role to an actor.
func NewAssignRoleCommand(adminID, actorID kernel.UUID, role access.Role) (AssignRoleCommand, error) {
	assignCommand := AssignRoleCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		assignCommand.setAdminID(adminID),
		assignCommand.setActorID(actorID),
		assignCommand.setRole(role),
	); err != nil {
		return AssignRoleCommand{}, err
	}

	return assignCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c AssignRoleCommand) Validate() error {
	return c.guard.Validate(ErrAssignRoleCommandIsNotConstructed)
}

// AdminID returns the identifier of the granting admin.
func (c AssignRoleCommand) AdminID() kernel.UUID {
	return c.adminID
}

// ActorID returns the identifier of the actor receiving the role.
func (c AssignRoleCommand) ActorID() kernel.UUID {
	return c.actorID
}

// Role returns the granted role.
func (c AssignRoleCommand) Role() access.Role {
	return c.role
}

func (c *AssignRoleCommand) setAdminID(adminID kernel.UUID) error {
	if err := adminID.Validate(); err != nil {
		return err
	}

	c.adminID = adminID
	return nil
}

func (c *AssignRoleCommand) setActorID(actorID kernel.UUID) error {
	if err := actorID.Validate(); err != nil {
		return err
	}

	c.actorID = actorID
	return nil
}

func (c *AssignRoleCommand) setRole(role access.Role) error {
	if err := role.Validate(); err != nil {
		return err
	}

	c.role = role
	return nil
}
