package commands

import (
	"errors"
	"fmt"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

var ErrUpdateDeliveryStatusCommandIsNotConstructed = errors.New(
	"UpdateDeliveryStatusCommand must be created via NewUpdateDeliveryStatusCommand constructor",
)

// UpdateDeliveryStatusCommand represents a courier's progress report on an
// order in delivery. Completed marks the handoff to the buyer.
type UpdateDeliveryStatusCommand struct { //nolint:recvcheck //using for validation
	callerID  kernel.UUID
	orderID   int64
	completed bool

	guard guard.ConstructorGuard
}

// NewUpdateDeliveryStatusCommand creates a command recording delivery progress.
func NewUpdateDeliveryStatusCommand(callerID kernel.UUID, orderID int64, completed bool) (UpdateDeliveryStatusCommand, error) {
	updateCommand := UpdateDeliveryStatusCommand{
		completed: completed,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		updateCommand.setCallerID(callerID),
		updateCommand.setOrderID(orderID),
	); err != nil {
		return UpdateDeliveryStatusCommand{}, err
	}

	return updateCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateDeliveryStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateDeliveryStatusCommandIsNotConstructed)
}

// CallerID returns the identifier of the reporting caller.
func (c UpdateDeliveryStatusCommand) CallerID() kernel.UUID {
	return c.callerID
}

// OrderID returns the identifier of the order in delivery.
func (c UpdateDeliveryStatusCommand) OrderID() int64 {
	return c.orderID
}

// Completed reports whether the delivery has reached the buyer.
func (c UpdateDeliveryStatusCommand) Completed() bool {
	return c.completed
}

func (c *UpdateDeliveryStatusCommand) setCallerID(callerID kernel.UUID) error {
	if err := callerID.Validate(); err != nil {
		return err
	}

	c.callerID = callerID
	return nil
}

func (c *UpdateDeliveryStatusCommand) setOrderID(orderID int64) error {
	if orderID <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("orderID",
			fmt.Errorf("%d is not a valid order id", orderID))
	}

	c.orderID = orderID
	return nil
}
