// Package accessrepo provides data transfer objects and mapping functions
// for role assignments and the validator allow-list.
package accessrepo

import (
	"github.com/google/uuid"

	"marketplace/internal/core/domain/model/access"
	"marketplace/internal/core/domain/model/kernel"
)

// RoleDTO represents the database structure for persisting role assignments.
// One row per actor; reassignment overwrites the role column.
type RoleDTO struct {
	ActorID uuid.UUID `gorm:"type:uuid;primaryKey"`
	Role    int       `gorm:"not null"`
}

// TableName specifies the database table name for role assignments.
func (RoleDTO) TableName() string {
	return "roles"
}

// ValidatorDTO represents the database structure for the validator
// allow-list. Presence of a row is the approval.
type ValidatorDTO struct {
	ValidatorID uuid.UUID `gorm:"type:uuid;primaryKey"`
	ApprovedBy  uuid.UUID `gorm:"type:uuid;not null"`
}

// TableName specifies the database table name for validator approvals.
func (ValidatorDTO) TableName() string {
	return "validators"
}

func roleFromDomain(aggregate *access.RoleAssignment) RoleDTO {
	return RoleDTO{
		ActorID: aggregate.ActorID().Bytes(),
		Role:    int(aggregate.Role()),
	}
}

func roleToDomain(dto RoleDTO) (*access.RoleAssignment, error) {
	actorID, err := kernel.UUIDFromBytes(dto.ActorID[:])
	if err != nil {
		return nil, err
	}

	return access.RestoreRoleAssignment(actorID, access.Role(dto.Role))
}

func validatorFromDomain(aggregate *access.ValidatorApproval) ValidatorDTO {
	return ValidatorDTO{
		ValidatorID: aggregate.ValidatorID().Bytes(),
		ApprovedBy:  aggregate.ApprovedBy().Bytes(),
	}
}

func validatorToDomain(dto ValidatorDTO) (*access.ValidatorApproval, error) {
	validatorID, err := kernel.UUIDFromBytes(dto.ValidatorID[:])
	if err != nil {
		return nil, err
	}

	approvedBy, err := kernel.UUIDFromBytes(dto.ApprovedBy[:])
	if err != nil {
		return nil, err
	}

	return access.RestoreValidatorApproval(validatorID, approvedBy)
}
