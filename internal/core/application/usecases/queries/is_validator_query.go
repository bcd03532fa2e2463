package queries

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/guard"
)

var ErrIsValidatorQueryIsNotConstructed = errors.New(
	"IsValidatorQuery must be created via NewIsValidatorQuery constructor",
)

// IsValidatorQuery checks whether an actor is on the validator allow-list.
type IsValidatorQuery struct { //nolint:recvcheck //using for validation
	validatorID kernel.UUID

	guard guard.ConstructorGuard
}

// NewIsValidatorQuery creates an allow-list membership query.
func NewIsValidatorQuery(validatorID kernel.UUID) (IsValidatorQuery, error) {
	if err := validatorID.Validate(); err != nil {
		return IsValidatorQuery{}, err
	}

	return IsValidatorQuery{
		validatorID: validatorID,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q IsValidatorQuery) Validate() error {
	return q.guard.Validate(ErrIsValidatorQueryIsNotConstructed)
}

// ValidatorID returns the queried actor identifier.
func (q IsValidatorQuery) ValidatorID() kernel.UUID {
	return q.validatorID
}

// IsValidatorQueryResponse represents allow-list membership.
type IsValidatorQueryResponse struct {
	ValidatorID string
	Approved    bool
}
