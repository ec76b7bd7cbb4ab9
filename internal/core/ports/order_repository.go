package ports

import (
	"context"
	"time"

	"fooddelivery/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for the order aggregate.
//
// Every list read shares one two-phase hydration shape: fetch the raw order
// rows, batch-resolve the referenced users, restaurants, and products through
// the lookup repositories, then assemble fully-linked aggregates. Rows whose
// references cannot be resolved are skipped with a warning, never fatal.
// Results come back in descending order-date order except GetByUserID, which
// keeps insertion order.
type OrderRepository interface {
	// Add persists the order header and its items inside the caller's
	// transaction, assigning generated ids back to the aggregate. Callers
	// run Add through a unit of work so a failed item insert rolls back the
	// header.
	Add(ctx context.Context, aggregate *order.Order) error

	// GetByID retrieves one hydrated order.
	GetByID(ctx context.Context, id int64) (*order.Order, error)

	// GetAll retrieves all orders.
	GetAll(ctx context.Context) ([]*order.Order, error)

	// GetByUserID retrieves the orders a user placed, in insertion order.
	GetByUserID(ctx context.Context, userID int64) ([]*order.Order, error)

	// GetByStatus retrieves the orders currently in the given status.
	GetByStatus(ctx context.Context, status order.Status) ([]*order.Order, error)

	// GetByDelivererID retrieves the orders bound to a deliverer.
	GetByDelivererID(ctx context.Context, delivererID int64) ([]*order.Order, error)

	// GetByDate retrieves the orders placed on the given calendar day.
	GetByDate(ctx context.Context, day time.Time) ([]*order.Order, error)

	// GetByMonth retrieves the orders placed in the given calendar month.
	GetByMonth(ctx context.Context, year int, month time.Month) ([]*order.Order, error)

	// Accept transitions an order from PENDING to IN_PROGRESS and binds the
	// deliverer, guarded by a conditional update so racing acceptances
	// resolve to exactly one winner. Losing callers receive an
	// errs.InvalidStatusTransitionError; a missing order id an
	// errs.ObjectNotFoundError.
	Accept(ctx context.Context, orderID, delivererID int64) error

	// Complete transitions an order from IN_PROGRESS to DELIVERED, guarded
	// the same way and additionally bound to the accepting deliverer.
	Complete(ctx context.Context, orderID, delivererID int64) error
}
