package commands

import (
	"context"
	"fmt"

	"fooddelivery/internal/core/domain/model/user"
	"fooddelivery/internal/pkg/errs"
)

// AcceptOrderCommandHandler handles the business logic for order acceptance.
// Verifies the acting account holds the DELIVERER role, then delegates the
// PENDING to IN_PROGRESS transition to the repository's conditional update so
// concurrent acceptances resolve to exactly one winner.
type AcceptOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewAcceptOrderCommandHandler creates a handler for order acceptance.
func NewAcceptOrderCommandHandler(uowFactory OrderUoWFactory) AcceptOrderCommandHandler {
	return AcceptOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the accept-order command. A missing order surfaces as
// ObjectNotFoundError; an order no longer pending as
// InvalidStatusTransitionError.
func (h *AcceptOrderCommandHandler) Handle(ctx context.Context, cmd AcceptOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	deliverer, err := uow.UserRepository().GetByID(ctx, cmd.DelivererID())
	if err != nil {
		return err
	}
	if deliverer.Role() != user.RoleDeliverer {
		return errs.NewValueIsInvalidErrorWithCause("deliverer id",
			fmt.Errorf("user %d has role %s, not %s", deliverer.ID(), deliverer.Role(), user.RoleDeliverer))
	}

	if err = uow.OrderRepository().Accept(ctx, cmd.OrderID(), cmd.DelivererID()); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
