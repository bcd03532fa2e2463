package commands

import (
	"errors"
	"fmt"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

var ErrCompleteOrderCommandIsNotConstructed = errors.New(
	"CompleteOrderCommand must be created via NewCompleteOrderCommand constructor",
)

// CompleteOrderCommand represents the seller's half of order finalization.
// The order finalizes only once the buyer confirms afterwards.
type CompleteOrderCommand struct { //nolint:recvcheck //using for validation
	callerID kernel.UUID
	orderID  int64

	guard guard.ConstructorGuard
}

// NewCompleteOrderCommand creates a command requesting order completion.
func NewCompleteOrderCommand(callerID kernel.UUID, orderID int64) (CompleteOrderCommand, error) {
	completeCommand := CompleteOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		completeCommand.setCallerID(callerID),
		completeCommand.setOrderID(orderID),
	); err != nil {
		return CompleteOrderCommand{}, err
	}

	return completeCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c CompleteOrderCommand) Validate() error {
	return c.guard.Validate(ErrCompleteOrderCommandIsNotConstructed)
}

// CallerID returns the identifier of the requesting caller.
func (c CompleteOrderCommand) CallerID() kernel.UUID {
	return c.callerID
}

// OrderID returns the identifier of the order to complete.
func (c CompleteOrderCommand) OrderID() int64 {
	return c.orderID
}

func (c *CompleteOrderCommand) setCallerID(callerID kernel.UUID) error {
	if err := callerID.Validate(); err != nil {
		return err
	}

	c.callerID = callerID
	return nil
}

func (c *CompleteOrderCommand) setOrderID(orderID int64) error {
	if orderID <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("orderID",
			fmt.Errorf("%d is not a valid order id", orderID))
	}

	c.orderID = orderID
	return nil
}
