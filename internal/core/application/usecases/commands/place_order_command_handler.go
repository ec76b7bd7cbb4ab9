package commands

import (
	"context"
	"fmt"
	"time"

	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/pkg/errs"
)

// PlaceOrderCommandHandler handles the business logic for order placement.
// Resolves the client, restaurant, and requested products, builds the order
// aggregate in PENDING status, and persists the header and all lines in one
// transaction so a failed line insert leaves no partial order behind.
type PlaceOrderCommandHandler struct {
	uowFactory PlaceOrderUoWFactory
}

// NewPlaceOrderCommandHandler creates a handler for order placement.
func NewPlaceOrderCommandHandler(uowFactory PlaceOrderUoWFactory) PlaceOrderCommandHandler {
	return PlaceOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the place-order command and returns the new order's id.
// Unknown user, restaurant, or product ids surface as ObjectNotFoundError; a
// product from another restaurant's menu is a validation error.
func (h *PlaceOrderCommandHandler) Handle(ctx context.Context, cmd PlaceOrderCommand) (int64, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	placer, err := uow.UserRepository().GetByID(ctx, cmd.UserID())
	if err != nil {
		return 0, err
	}

	rest, err := uow.RestaurantRepository().GetByID(ctx, cmd.RestaurantID())
	if err != nil {
		return 0, err
	}

	productIDs := make([]int64, 0, len(cmd.Lines()))
	for _, line := range cmd.Lines() {
		productIDs = append(productIDs, line.ProductID)
	}
	products, err := uow.ProductRepository().GetByIDs(ctx, productIDs)
	if err != nil {
		return 0, err
	}

	items := make([]*order.Item, 0, len(cmd.Lines()))
	for _, line := range cmd.Lines() {
		p, ok := products[line.ProductID]
		if !ok {
			return 0, errs.NewObjectNotFoundError("product", line.ProductID)
		}
		if p.RestaurantID() != rest.ID() {
			return 0, errs.NewValueIsInvalidErrorWithCause("product id",
				fmt.Errorf("product %d does not belong to restaurant %d", line.ProductID, rest.ID()))
		}

		item, err := order.NewItem(p, line.Quantity)
		if err != nil {
			return 0, err
		}
		items = append(items, item)
	}

	newOrder, err := order.New(placer, rest, items, time.Now())
	if err != nil {
		return 0, err
	}

	if err = uow.OrderRepository().Add(ctx, newOrder); err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return newOrder.ID(), nil
}
