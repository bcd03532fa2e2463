package commands

import (
	"errors"
	"fmt"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

var ErrAssignDeliveryCommandIsNotConstructed = errors.New(
	"AssignDeliveryCommand must be created via NewAssignDeliveryCommand constructor",
)

// AssignDeliveryCommand represents a seller's request to hand a validated
// order to a courier.
type AssignDeliveryCommand struct { //nolint:recvcheck //using for validation
	callerID  kernel.UUID
	orderID   int64
	courierID kernel.UUID

	guard guard.ConstructorGuard
}

// NewAssignDeliveryCommand creates a command assigning a courier to an order.
func NewAssignDeliveryCommand(callerID kernel.UUID, orderID int64, courierID kernel.UUID) (AssignDeliveryCommand, error) {
	assignCommand := AssignDeliveryCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		assignCommand.setCallerID(callerID),
		assignCommand.setOrderID(orderID),
		assignCommand.setCourierID(courierID),
	); err != nil {
		return AssignDeliveryCommand{}, err
	}

	return assignCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c AssignDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrAssignDeliveryCommandIsNotConstructed)
}

// CallerID returns the identifier of the requesting caller.
func (c AssignDeliveryCommand) CallerID() kernel.UUID {
	return c.callerID
}

// OrderID returns the identifier of the order to hand over.
func (c AssignDeliveryCommand) OrderID() int64 {
	return c.orderID
}

// CourierID returns the identifier of the assigned courier.
func (c AssignDeliveryCommand) CourierID() kernel.UUID {
	return c.courierID
}

func (c *AssignDeliveryCommand) setCallerID(callerID kernel.UUID) error {
	if err := callerID.Validate(); err != nil {
		return err
	}

	c.callerID = callerID
	return nil
}

func (c *AssignDeliveryCommand) setOrderID(orderID int64) error {
	if orderID <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("orderID",
			fmt.Errorf("%d is not a valid order id", orderID))
	}

	c.orderID = orderID
	return nil
}

func (c *AssignDeliveryCommand) setCourierID(courierID kernel.UUID) error {
	if err := courierID.Validate(); err != nil {
		return err
	}

	c.courierID = courierID
	return nil
}
