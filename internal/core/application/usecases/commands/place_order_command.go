package commands

import (
	"errors"
	"fmt"

	"fooddelivery/internal/pkg/errs"
	"fooddelivery/internal/pkg/guard"
)

var (
	ErrPlaceOrderCommandIsNotConstructed = errors.New(
		"PlaceOrderCommand must be created via NewPlaceOrderCommand constructor",
	)
	ErrOrderLinesAreRequired = errors.New("at least one order line is required")
)

// OrderLine is one requested position of a new order: which product and how
// many of it.
type OrderLine struct {
	ProductID int64
	Quantity  int
}

// PlaceOrderCommand represents a client's request to place an order with a
// restaurant. The lines reference products of that restaurant's menu.
//
// Example:
//
//	cmd, err := NewPlaceOrderCommand(clientID, restaurantID, []OrderLine{
//	    {ProductID: margheritaID, Quantity: 2},
//	})
//	if err != nil {
//	    return err
//	}
//
//	handler := NewPlaceOrderCommandHandler(uowFactory)
//	orderID, err := handler.Handle(ctx, cmd)
type PlaceOrderCommand struct { //nolint:recvcheck //using for validation
	userID       int64
	restaurantID int64
	lines        []OrderLine

	guard guard.ConstructorGuard
}

// NewPlaceOrderCommand creates a command to place a new order. Validates that
// the ids are positive, the line list is non-empty, and every line carries a
// positive product id and a quantity of at least 1.
func NewPlaceOrderCommand(userID, restaurantID int64, lines []OrderLine) (PlaceOrderCommand, error) {
	orderCommand := PlaceOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderCommand.setUserID(userID),
		orderCommand.setRestaurantID(restaurantID),
		orderCommand.setLines(lines),
	); err != nil {
		return PlaceOrderCommand{}, err
	}

	return orderCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c PlaceOrderCommand) Validate() error {
	return c.guard.Validate(ErrPlaceOrderCommandIsNotConstructed)
}

// UserID returns the placing client's id.
func (c PlaceOrderCommand) UserID() int64 {
	return c.userID
}

// RestaurantID returns the target restaurant's id.
func (c PlaceOrderCommand) RestaurantID() int64 {
	return c.restaurantID
}

// Lines returns the requested order lines.
func (c PlaceOrderCommand) Lines() []OrderLine {
	return c.lines
}

func (c *PlaceOrderCommand) setUserID(userID int64) error {
	if userID <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("user id", fmt.Errorf("%d is not a positive id", userID))
	}

	c.userID = userID
	return nil
}

func (c *PlaceOrderCommand) setRestaurantID(restaurantID int64) error {
	if restaurantID <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("restaurant id", fmt.Errorf("%d is not a positive id", restaurantID))
	}

	c.restaurantID = restaurantID
	return nil
}

func (c *PlaceOrderCommand) setLines(lines []OrderLine) error {
	if len(lines) == 0 {
		return ErrOrderLinesAreRequired
	}

	for _, line := range lines {
		if line.ProductID <= 0 {
			return errs.NewValueIsInvalidErrorWithCause("product id", fmt.Errorf("%d is not a positive id", line.ProductID))
		}
		if line.Quantity < 1 {
			return errs.NewValueIsInvalidErrorWithCause("quantity", fmt.Errorf("%d is not at least 1", line.Quantity))
		}
	}

	c.lines = lines
	return nil
}
