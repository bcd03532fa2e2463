package queries

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/guard"
)

var ErrGetRoleQueryIsNotConstructed = errors.New(
	"GetRoleQuery must be created via NewGetRoleQuery constructor",
)

// GetRoleQuery retrieves the role label assigned to an actor.
type GetRoleQuery struct { //nolint:recvcheck //using for validation
	actorID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetRoleQuery creates a query for an actor's role.
func NewGetRoleQuery(actorID kernel.UUID) (GetRoleQuery, error) {
	if err := actorID.Validate(); err != nil {
		return GetRoleQuery{}, err
	}

	return GetRoleQuery{
		actorID: actorID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetRoleQuery) Validate() error {
	return q.guard.Validate(ErrGetRoleQueryIsNotConstructed)
}

// ActorID returns the queried actor identifier.
func (q GetRoleQuery) ActorID() kernel.UUID {
	return q.actorID
}

// GetRoleQueryResponse represents an actor's role assignment.
// Role is empty when the actor holds no role; querying an unknown actor is
// not an error.
type GetRoleQueryResponse struct {
	ActorID string
	Role    string
}
