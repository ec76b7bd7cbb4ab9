package queries

import (
	"errors"

	"fooddelivery/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrGetProductStatsQueryIsNotConstructed = errors.New(
	"GetProductStatsQuery must be created via NewGetProductStatsQuery constructor",
)

// GetProductStatsQuery retrieves per-product demand and revenue figures for
// the whole catalog. Times-ordered counts every order line regardless of
// order status; revenue only counts lines of DELIVERED orders.
type GetProductStatsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetProductStatsQuery creates a parameterless query over all products.
func NewGetProductStatsQuery() GetProductStatsQuery {
	return GetProductStatsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetProductStatsQuery) Validate() error {
	return q.guard.Validate(ErrGetProductStatsQueryIsNotConstructed)
}

// GetProductStatsQueryResponse represents one product's demand figures.
// Products never ordered appear with zero counts rather than being omitted.
type GetProductStatsQueryResponse struct {
	ProductID    int64
	Name         string
	TimesOrdered int64
	Revenue      decimal.Decimal
}
