package access

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/guard"
)

// ErrValidatorApprovalIsNotConstructed is returned when a ValidatorApproval
// was not created through NewValidatorApproval or RestoreValidatorApproval.
var ErrValidatorApprovalIsNotConstructed = errors.New(
	"ValidatorApproval must be created via NewValidatorApproval constructor",
)

// ValidatorApproval records one identity's admission to the validator
// allow-list, together with the administrator who granted it. The allow-list
// is independent of the Validator role label: approval here is what gates
// order validation.
//
// Approvals are append-only: there is no revocation, matching the rest of
// the marketplace's permanent history.
type ValidatorApproval struct {
	validatorID kernel.UUID
	approvedBy  kernel.UUID

	guard guard.ConstructorGuard
}

// NewValidatorApproval creates an approval for validatorID granted by approvedBy.
func NewValidatorApproval(validatorID, approvedBy kernel.UUID) (*ValidatorApproval, error) {
	approval := &ValidatorApproval{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		approval.setValidatorID(validatorID),
		approval.setApprovedBy(approvedBy),
	); err != nil {
		return nil, err
	}

	return approval, nil
}

// RestoreValidatorApproval reconstructs an approval from persistence.
func RestoreValidatorApproval(validatorID, approvedBy kernel.UUID) (*ValidatorApproval, error) {
	return NewValidatorApproval(validatorID, approvedBy)
}

// Validate ensures the approval was created through a constructor.
func (v *ValidatorApproval) Validate() error {
	if v == nil {
		return ErrValidatorApprovalIsNotConstructed
	}
	return v.guard.Validate(ErrValidatorApprovalIsNotConstructed)
}

// ValidatorID returns the approved validator identity.
func (v *ValidatorApproval) ValidatorID() kernel.UUID {
	return v.validatorID
}

// ApprovedBy returns the administrator identity that granted the approval.
func (v *ValidatorApproval) ApprovedBy() kernel.UUID {
	return v.approvedBy
}

func (v *ValidatorApproval) setValidatorID(validatorID kernel.UUID) error {
	if err := validatorID.Validate(); err != nil {
		return err
	}
	v.validatorID = validatorID
	return nil
}

func (v *ValidatorApproval) setApprovedBy(approvedBy kernel.UUID) error {
	if err := approvedBy.Validate(); err != nil {
		return err
	}
	v.approvedBy = approvedBy
	return nil
}
