package commands

import (
	"errors"
	"fmt"

	"fooddelivery/internal/pkg/errs"
	"fooddelivery/internal/pkg/guard"
)

var ErrCompleteOrderCommandIsNotConstructed = errors.New(
	"CompleteOrderCommand must be created via NewCompleteOrderCommand constructor",
)

// CompleteOrderCommand represents a deliverer's report that an in-progress
// order has been delivered. Only the deliverer who accepted the order may
// complete it.
type CompleteOrderCommand struct { //nolint:recvcheck //using for validation
	orderID     int64
	delivererID int64

	guard guard.ConstructorGuard
}

// NewCompleteOrderCommand creates a command to mark an order delivered.
// Both ids must be positive.
func NewCompleteOrderCommand(orderID, delivererID int64) (CompleteOrderCommand, error) {
	completeCommand := CompleteOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		completeCommand.setOrderID(orderID),
		completeCommand.setDelivererID(delivererID),
	); err != nil {
		return CompleteOrderCommand{}, err
	}

	return completeCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c CompleteOrderCommand) Validate() error {
	return c.guard.Validate(ErrCompleteOrderCommandIsNotConstructed)
}

// OrderID returns the id of the order to complete.
func (c CompleteOrderCommand) OrderID() int64 {
	return c.orderID
}

// DelivererID returns the reporting deliverer's user id.
func (c CompleteOrderCommand) DelivererID() int64 {
	return c.delivererID
}

func (c *CompleteOrderCommand) setOrderID(orderID int64) error {
	if orderID <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("order id", fmt.Errorf("%d is not a positive id", orderID))
	}

	c.orderID = orderID
	return nil
}

func (c *CompleteOrderCommand) setDelivererID(delivererID int64) error {
	if delivererID <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("deliverer id", fmt.Errorf("%d is not a positive id", delivererID))
	}

	c.delivererID = delivererID
	return nil
}
