package queries

import (
	"errors"

	"fooddelivery/internal/pkg/guard"
)

var ErrGetPopularProductsQueryIsNotConstructed = errors.New(
	"GetPopularProductsQuery must be created via NewGetPopularProductsQuery constructor",
)

// popularProductsLimit caps the ranking at the ten most-ordered products.
const popularProductsLimit = 10

// GetPopularProductsQuery retrieves the most-ordered products across all
// orders, regardless of order status.
type GetPopularProductsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetPopularProductsQuery creates a parameterless popularity query.
func NewGetPopularProductsQuery() GetPopularProductsQuery {
	return GetPopularProductsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetPopularProductsQuery) Validate() error {
	return q.guard.Validate(ErrGetPopularProductsQueryIsNotConstructed)
}

// GetPopularProductsQueryResponse represents one ranked product. OrderCount
// is the number of order lines referencing the product; ties rank by product
// id ascending so repeated runs return a stable list.
type GetPopularProductsQueryResponse struct {
	ProductID  int64
	Name       string
	OrderCount int64
}
