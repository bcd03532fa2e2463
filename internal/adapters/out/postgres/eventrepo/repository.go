package eventrepo

import (
	"context"
	"time"

	"gorm.io/gorm"

	"marketplace/internal/core/domain/model/event"
)

// GormEventRepository implements EventRepository using GORM.
type GormEventRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id any, aggregate any)
}

// NewGormEventRepository creates a new GORM event log repository.
func NewGormEventRepository(db *gorm.DB, tracker aggregateTracker) *GormEventRepository {
	return &GormEventRepository{
		db:      db,
		tracker: tracker,
	}
}

// Append stores a new log entry. The database assigns the sequential log
// position via the auto incremented primary key, which is copied back onto
// the entry.
func (r *GormEventRepository) Append(ctx context.Context, aggregate *event.Event) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	aggregate.MarkAppended(dto.ID)
	r.tracker.TrackAggregate(dto.ID, aggregate)
	return nil
}

// GetUnpublished retrieves up to limit pending entries in log order.
func (r *GormEventRepository) GetUnpublished(ctx context.Context, limit int) ([]*event.Event, error) {
	var dtos []EventDTO
	err := r.db.WithContext(ctx).
		Where("published_at IS NULL").
		Order("id").
		Limit(limit).
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	events := make([]*event.Event, 0, len(dtos))
	for _, dto := range dtos {
		e, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		events = append(events, e)
	}

	return events, nil
}

// MarkPublished records the relay delivery time for the given entries.
func (r *GormEventRepository) MarkPublished(ctx context.Context, aggregates []*event.Event) error {
	if len(aggregates) == 0 {
		return nil
	}

	now := time.Now().UTC()
	ids := make([]int64, 0, len(aggregates))
	for _, aggregate := range aggregates {
		ids = append(ids, aggregate.ID())
		aggregate.MarkPublished(now)
	}

	return r.db.WithContext(ctx).
		Model(&EventDTO{}).
		Where("id IN ?", ids).
		Update("published_at", now).Error
}
