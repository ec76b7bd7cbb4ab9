// Package queries contains read-only operations for reporting and views.
// Implements the Query side of the CQRS architecture: handlers read either
// raw projections straight from the database or hydrated aggregates through
// the order repository, and never modify state.
package queries

import (
	"errors"
	"fmt"

	"fooddelivery/internal/pkg/errs"
	"fooddelivery/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrGetDelivererEarningsQueryIsNotConstructed = errors.New(
	"GetDelivererEarningsQuery must be created via NewGetDelivererEarningsQuery constructor",
)

// GetDelivererEarningsQuery retrieves a deliverer's accumulated commission.
// Only DELIVERED orders count toward earnings; pending and in-progress
// deliveries contribute nothing until completed.
type GetDelivererEarningsQuery struct {
	delivererID int64

	guard guard.ConstructorGuard
}

// NewGetDelivererEarningsQuery creates a query for a deliverer's earnings.
// The deliverer id must be positive.
func NewGetDelivererEarningsQuery(delivererID int64) (GetDelivererEarningsQuery, error) {
	if delivererID <= 0 {
		return GetDelivererEarningsQuery{}, errs.NewValueIsInvalidErrorWithCause(
			"deliverer id", fmt.Errorf("%d is not a positive id", delivererID))
	}

	return GetDelivererEarningsQuery{
		delivererID: delivererID,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetDelivererEarningsQuery) Validate() error {
	return q.guard.Validate(ErrGetDelivererEarningsQueryIsNotConstructed)
}

// DelivererID returns the deliverer whose earnings are requested.
func (q GetDelivererEarningsQuery) DelivererID() int64 {
	return q.delivererID
}

// GetDelivererEarningsQueryResponse represents a deliverer's commission total.
// A deliverer with no delivered orders reports zero, not an error.
type GetDelivererEarningsQueryResponse struct {
	DelivererID int64
	Earnings    decimal.Decimal
}
