package queries

import (
	"context"

	"gorm.io/gorm"
)

// IsValidatorQueryHandler checks the validator allow-list in the database.
type IsValidatorQueryHandler struct {
	db *gorm.DB
}

// NewIsValidatorQueryHandler creates a handler for allow-list queries.
func NewIsValidatorQueryHandler(db *gorm.DB) IsValidatorQueryHandler {
	return IsValidatorQueryHandler{db: db}
}

// Handle executes the membership check. Unknown actors are reported as not
// approved rather than as an error.
func (h IsValidatorQueryHandler) Handle(ctx context.Context, query IsValidatorQuery) (IsValidatorQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return IsValidatorQueryResponse{}, err
	}

	var count int64
	err := h.db.WithContext(ctx).Raw(`
		SELECT COUNT(*) FROM validators WHERE validator_id = ?
	`, query.ValidatorID().Bytes()).Scan(&count).Error
	if err != nil {
		return IsValidatorQueryResponse{}, err
	}

	return IsValidatorQueryResponse{
		ValidatorID: query.ValidatorID().String(),
		Approved:    count > 0,
	}, nil
}
