package commands

import (
	"errors"
	"fmt"

	"fooddelivery/internal/pkg/errs"
	"fooddelivery/internal/pkg/guard"
)

var ErrAcceptOrderCommandIsNotConstructed = errors.New(
	"AcceptOrderCommand must be created via NewAcceptOrderCommand constructor",
)

// AcceptOrderCommand represents a deliverer's request to take a pending order.
// Exactly one of several racing acceptances for the same order succeeds.
type AcceptOrderCommand struct { //nolint:recvcheck //using for validation
	orderID     int64
	delivererID int64

	guard guard.ConstructorGuard
}

// NewAcceptOrderCommand creates a command to accept a pending order.
// Both ids must be positive.
func NewAcceptOrderCommand(orderID, delivererID int64) (AcceptOrderCommand, error) {
	acceptCommand := AcceptOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		acceptCommand.setOrderID(orderID),
		acceptCommand.setDelivererID(delivererID),
	); err != nil {
		return AcceptOrderCommand{}, err
	}

	return acceptCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c AcceptOrderCommand) Validate() error {
	return c.guard.Validate(ErrAcceptOrderCommandIsNotConstructed)
}

// OrderID returns the id of the order to accept.
func (c AcceptOrderCommand) OrderID() int64 {
	return c.orderID
}

// DelivererID returns the accepting deliverer's user id.
func (c AcceptOrderCommand) DelivererID() int64 {
	return c.delivererID
}

func (c *AcceptOrderCommand) setOrderID(orderID int64) error {
	if orderID <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("order id", fmt.Errorf("%d is not a positive id", orderID))
	}

	c.orderID = orderID
	return nil
}

func (c *AcceptOrderCommand) setDelivererID(delivererID int64) error {
	if delivererID <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("deliverer id", fmt.Errorf("%d is not a positive id", delivererID))
	}

	c.delivererID = delivererID
	return nil
}
