// Package event contains the Event entity, the unit of the append-only
// marketplace event log and its transactional outbox.
package event
