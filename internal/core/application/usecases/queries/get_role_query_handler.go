package queries

import (
	"context"
	"database/sql"
	"errors"

	"gorm.io/gorm"

	"marketplace/internal/core/domain/model/access"
)

// GetRoleQueryHandler retrieves role assignments from the database.
type GetRoleQueryHandler struct {
	db *gorm.DB
}

// NewGetRoleQueryHandler creates a handler for role queries.
func NewGetRoleQueryHandler(db *gorm.DB) GetRoleQueryHandler {
	return GetRoleQueryHandler{db: db}
}

// Handle executes the query. Actors without a role get an empty Role in
// the response rather than an error.
func (h GetRoleQueryHandler) Handle(ctx context.Context, query GetRoleQuery) (GetRoleQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetRoleQueryResponse{}, err
	}

	resp := GetRoleQueryResponse{ActorID: query.ActorID().String()}

	var role int
	row := h.db.WithContext(ctx).Raw(`
		SELECT role FROM roles WHERE actor_id = ?
	`, query.ActorID().Bytes()).Row()

	err := row.Scan(&role)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) || errors.Is(err, gorm.ErrRecordNotFound) {
			return resp, nil
		}
		return GetRoleQueryResponse{}, err
	}

	resp.Role = access.Role(role).String()
	return resp, nil
}
