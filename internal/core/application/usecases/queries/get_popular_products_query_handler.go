package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetPopularProductsQueryHandler ranks products by how many order lines
// reference them. Products never ordered do not appear in the ranking.
type GetPopularProductsQueryHandler struct {
	db *gorm.DB
}

// NewGetPopularProductsQueryHandler creates a handler for popularity queries.
func NewGetPopularProductsQueryHandler(db *gorm.DB) GetPopularProductsQueryHandler {
	return GetPopularProductsQueryHandler{db: db}
}

// Handle executes the popularity query, returning at most ten products in
// descending order-count order with product id as the tie-break.
func (h GetPopularProductsQueryHandler) Handle(
	ctx context.Context,
	query GetPopularProductsQuery,
) ([]GetPopularProductsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	products := make([]GetPopularProductsQueryResponse, 0, popularProductsLimit)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			p.id,
			p.name,
			COUNT(oi.id) AS order_count
		FROM products p
		JOIN order_items oi ON oi.product_id = p.id
		GROUP BY p.id, p.name
		ORDER BY order_count DESC, p.id
		LIMIT ?
	`, popularProductsLimit).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetPopularProductsQueryResponse
		if err = rows.Scan(&resp.ProductID, &resp.Name, &resp.OrderCount); err != nil {
			return nil, err
		}
		products = append(products, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return products, nil
}
