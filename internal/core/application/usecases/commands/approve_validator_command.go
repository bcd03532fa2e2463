package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/guard"
)

var ErrApproveValidatorCommandIsNotConstructed = errors.New(
	"ApproveValidatorCommand must be created via NewApproveValidatorCommand constructor",
)

// ApproveValidatorCommand represents an admin's request to add a validator
// to the allow-list that gates order validation.
type ApproveValidatorCommand struct { //nolint:recvcheck //using for validation
	adminID     kernel.UUID
	validatorID kernel.UUID

	guard guard.ConstructorGuard
}

// NewApproveValidatorCommand creates a command approving a validator.
func NewApproveValidatorCommand(adminID, validatorID kernel.UUID) (ApproveValidatorCommand, error) {
	approveCommand := ApproveValidatorCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		approveCommand.setAdminID(adminID),
		approveCommand.setValidatorID(validatorID),
	); err != nil {
		return ApproveValidatorCommand{}, err
	}

	return approveCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c ApproveValidatorCommand) Validate() error {
	return c.guard.Validate(ErrApproveValidatorCommandIsNotConstructed)
}

// AdminID returns the identifier of the approving admin.
func (c ApproveValidatorCommand) AdminID() kernel.UUID {
	return c.adminID
}

// ValidatorID returns the identifier of the validator to approve.
func (c ApproveValidatorCommand) ValidatorID() kernel.UUID {
	return c.validatorID
}

func (c *ApproveValidatorCommand) setAdminID(adminID kernel.UUID) error {
	if err := adminID.Validate(); err != nil {
		return err
	}

	c.adminID = adminID
	return nil
}

func (c *ApproveValidatorCommand) setValidatorID(validatorID kernel.UUID) error {
	if err := validatorID.Validate(); err != nil {
		return err
	}

	c.validatorID = validatorID
	return nil
}
