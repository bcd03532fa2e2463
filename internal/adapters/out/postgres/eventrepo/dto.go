// Package eventrepo provides data transfer objects and mapping functions
// for the append-only event log. The log table doubles as a transactional
// outbox; the relay job reads rows with a NULL published_at.
package eventrepo

import (
	"encoding/json"
	"time"

	"marketplace/internal/core/domain/model/event"
)

// EventDTO represents the database structure for event log entries.
// The auto incremented primary key is the total order of the log.
type EventDTO struct {
	ID          int64           `gorm:"primaryKey;autoIncrement"`
	Name        string          `gorm:"not null;index"`
	Key         string          `gorm:"not null;index"`
	Payload     json.RawMessage `gorm:"type:jsonb"`
	OccurredAt  time.Time       `gorm:"not null"`
	PublishedAt *time.Time      `gorm:"index"`
}

// TableName specifies the database table name for event log entries.
func (EventDTO) TableName() string {
	return "events"
}

// fromDomain converts an event domain entity to its database representation.
// The ID is left zero for new entries so the database assigns the next
// log position on insert.
func fromDomain(aggregate *event.Event) EventDTO {
	return EventDTO{
		ID:          aggregate.ID(),
		Name:        aggregate.Name(),
		Key:         aggregate.Key(),
		Payload:     aggregate.Payload(),
		OccurredAt:  aggregate.OccurredAt(),
		PublishedAt: aggregate.PublishedAt(),
	}
}

// toDomain converts a database DTO to an event domain entity using RestoreEvent.
func toDomain(dto EventDTO) (*event.Event, error) {
	return event.RestoreEvent(
		dto.ID,
		dto.Name,
		dto.Key,
		dto.Payload,
		dto.OccurredAt,
		dto.PublishedAt,
	)
}
