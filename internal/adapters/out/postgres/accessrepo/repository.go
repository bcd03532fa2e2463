package accessrepo

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"marketplace/internal/core/domain/model/access"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
)

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id any, aggregate any)
}

// GormRoleRepository implements RoleRepository using GORM.
type GormRoleRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// NewGormRoleRepository creates a new GORM role repository.
func NewGormRoleRepository(db *gorm.DB, tracker aggregateTracker) *GormRoleRepository {
	return &GormRoleRepository{
		db:      db,
		tracker: tracker,
	}
}

// Upsert stores the role assignment, overwriting the actor's previous role.
func (r *GormRoleRepository) Upsert(ctx context.Context, aggregate *access.RoleAssignment) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := roleFromDomain(aggregate)
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "actor_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"role"}),
		}).
		Create(&dto).Error
	if err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ActorID(), aggregate)
	return nil
}

// Get retrieves the role assignment for an actor.
func (r *GormRoleRepository) Get(ctx context.Context, actorID kernel.UUID) (*access.RoleAssignment, error) {
	if err := actorID.Validate(); err != nil {
		return nil, err
	}

	var dto RoleDTO
	if err := r.db.WithContext(ctx).First(&dto, "actor_id = ?", actorID.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("role", actorID.String())
		}
		return nil, err
	}

	return roleToDomain(dto)
}

// GormValidatorRepository implements ValidatorRepository using GORM.
type GormValidatorRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// NewGormValidatorRepository creates a new GORM validator repository.
func NewGormValidatorRepository(db *gorm.DB, tracker aggregateTracker) *GormValidatorRepository {
	return &GormValidatorRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add persists a validator approval. Re-approving is a no-op, keeping the
// operation idempotent.
func (r *GormValidatorRepository) Add(ctx context.Context, aggregate *access.ValidatorApproval) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := validatorFromDomain(aggregate)
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "validator_id"}},
			DoNothing: true,
		}).
		Create(&dto).Error
	if err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ValidatorID(), aggregate)
	return nil
}

// Get retrieves the approval record for a validator.
func (r *GormValidatorRepository) Get(ctx context.Context, validatorID kernel.UUID) (*access.ValidatorApproval, error) {
	if err := validatorID.Validate(); err != nil {
		return nil, err
	}

	var dto ValidatorDTO
	if err := r.db.WithContext(ctx).First(&dto, "validator_id = ?", validatorID.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("validator", validatorID.String())
		}
		return nil, err
	}

	return validatorToDomain(dto)
}
