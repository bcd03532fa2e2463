package commands

import (
	"errors"
	"fmt"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

var ErrValidateOrderCommandIsNotConstructed = errors.New(
	"ValidateOrderCommand must be created via NewValidateOrderCommand constructor",
)

// ValidateOrderCommand represents a validator's verdict on a pending order.
// Approve carries the verdict: true moves the order towards delivery,
// false rejects it terminally.
type ValidateOrderCommand struct { //nolint:recvcheck //using for validation
	validatorID kernel.UUID
	orderID     int64
	approve     bool

	guard guard.ConstructorGuard
}

// NewValidateOrderCommand creates a command recording a validator verdict.
func NewValidateOrderCommand(validatorID kernel.UUID, orderID int64, approve bool) (ValidateOrderCommand, error) {
	validateCommand := ValidateOrderCommand{
		approve: approve,
		guard:   guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		validateCommand.setValidatorID(validatorID),
		validateCommand.setOrderID(orderID),
	); err != nil {
		return ValidateOrderCommand{}, err
	}

	return validateCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c ValidateOrderCommand) Validate() error {
	return c.guard.Validate(ErrValidateOrderCommandIsNotConstructed)
}

// ValidatorID returns the identifier of the reviewing validator.
func (c ValidateOrderCommand) ValidatorID() kernel.UUID {
	return c.validatorID
}

// OrderID returns the identifier of the reviewed order.
func (c ValidateOrderCommand) OrderID() int64 {
	return c.orderID
}

// Approve returns the verdict.
func (c ValidateOrderCommand) Approve() bool {
	return c.approve
}

func (c *ValidateOrderCommand) setValidatorID(validatorID kernel.UUID) error {
	if err := validatorID.Validate(); err != nil {
		return err
	}

	c.validatorID = validatorID
	return nil
}

func (c *ValidateOrderCommand) setOrderID(orderID int64) error {
	if orderID <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("orderID",
			fmt.Errorf("%d is not a valid order id", orderID))
	}

	c.orderID = orderID
	return nil
}
