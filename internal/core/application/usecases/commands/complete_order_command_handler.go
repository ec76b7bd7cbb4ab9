package commands

import (
	"context"
)

// CompleteOrderCommandHandler handles the business logic for delivery
// completion. The IN_PROGRESS to DELIVERED transition runs as a conditional
// update bound to the accepting deliverer, so neither a stranger nor a repeat
// completion can flip the status.
type CompleteOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewCompleteOrderCommandHandler creates a handler for delivery completion.
func NewCompleteOrderCommandHandler(uowFactory OrderUoWFactory) CompleteOrderCommandHandler {
	return CompleteOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the complete-order command. A missing order surfaces as
// ObjectNotFoundError; an order not in progress, or bound to a different
// deliverer, as InvalidStatusTransitionError.
func (h *CompleteOrderCommandHandler) Handle(ctx context.Context, cmd CompleteOrderCommand) error {
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

	if err := uow.OrderRepository().Complete(ctx, cmd.OrderID(), cmd.DelivererID()); err != nil {
		return err
	}

	if err := uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
