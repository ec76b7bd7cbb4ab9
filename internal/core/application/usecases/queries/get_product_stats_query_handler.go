package queries

import (
	"context"

	"fooddelivery/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetProductStatsQueryHandler aggregates order lines per product straight in
// SQL. The left joins keep never-ordered products in the result with zero
// figures.
type GetProductStatsQueryHandler struct {
	db *gorm.DB
}

// NewGetProductStatsQueryHandler creates a handler for product stats queries.
func NewGetProductStatsQueryHandler(db *gorm.DB) GetProductStatsQueryHandler {
	return GetProductStatsQueryHandler{db: db}
}

// Handle executes the product stats query, ordered by product id.
func (h GetProductStatsQueryHandler) Handle(
	ctx context.Context,
	query GetProductStatsQuery,
) ([]GetProductStatsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	stats := make([]GetProductStatsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			p.id,
			p.name,
			COUNT(oi.id) AS times_ordered,
			COALESCE(SUM(CASE WHEN o.status = ? THEN oi.quantity * p.price ELSE 0 END), 0) AS revenue
		FROM products p
		LEFT JOIN order_items oi ON oi.product_id = p.id
		LEFT JOIN orders o ON o.id = oi.order_id
		GROUP BY p.id, p.name
		ORDER BY p.id
	`, order.StatusDelivered.String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var stat GetProductStatsQueryResponse
		var revenue decimal.Decimal

		if err = rows.Scan(&stat.ProductID, &stat.Name, &stat.TimesOrdered, &revenue); err != nil {
			return nil, err
		}
		stat.Revenue = revenue
		stats = append(stats, stat)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return stats, nil
}
