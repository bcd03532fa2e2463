package commands

import (
	"errors"
	"fmt"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

var ErrConfirmOrderCompletionCommandIsNotConstructed = errors.New(
	"ConfirmOrderCompletionCommand must be created via NewConfirmOrderCompletionCommand constructor",
)

// ConfirmOrderCompletionCommand represents the buyer's half of order
// finalization, acknowledging the seller's completion request.
type ConfirmOrderCompletionCommand struct { //nolint:recvcheck //using for validation
	callerID kernel.UUID
	orderID  int64

	guard guard.ConstructorGuard
}

// NewConfirmOrderCompletionCommand creates a command confirming order completion.
func NewConfirmOrderCompletionCommand(callerID kernel.UUID, orderID int64) (ConfirmOrderCompletionCommand, error) {
	confirmCommand := ConfirmOrderCompletionCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		confirmCommand.setCallerID(callerID),
		confirmCommand.setOrderID(orderID),
	); err != nil {
		return ConfirmOrderCompletionCommand{}, err
	}

	return confirmCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c ConfirmOrderCompletionCommand) Validate() error {
	return c.guard.Validate(ErrConfirmOrderCompletionCommandIsNotConstructed)
}

// CallerID returns the identifier of the confirming caller.
func (c ConfirmOrderCompletionCommand) CallerID() kernel.UUID {
	return c.callerID
}

// OrderID returns the identifier of the order to finalize.
func (c ConfirmOrderCompletionCommand) OrderID() int64 {
	return c.orderID
}

func (c *ConfirmOrderCompletionCommand) setCallerID(callerID kernel.UUID) error {
	if err := callerID.Validate(); err != nil {
		return err
	}

	c.callerID = callerID
	return nil
}

func (c *ConfirmOrderCompletionCommand) setOrderID(orderID int64) error {
	if orderID <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("orderID",
			fmt.Errorf("%d is not a valid order id", orderID))
	}

	c.orderID = orderID
	return nil
}
