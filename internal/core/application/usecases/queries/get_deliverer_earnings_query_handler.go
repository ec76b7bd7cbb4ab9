package queries

import (
	"context"

	"fooddelivery/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetDelivererEarningsQueryHandler computes a deliverer's commission from
// delivered order totals. The sum runs in SQL over exact decimal columns; the
// commission rate is applied in Go so the figure always matches the domain's
// per-order Commission calculation.
type GetDelivererEarningsQueryHandler struct {
	db *gorm.DB
}

// NewGetDelivererEarningsQueryHandler creates a handler for earnings queries.
func NewGetDelivererEarningsQueryHandler(db *gorm.DB) GetDelivererEarningsQueryHandler {
	return GetDelivererEarningsQueryHandler{db: db}
}

// Handle executes the earnings query. A deliverer with no delivered orders
// gets a zero total.
func (h GetDelivererEarningsQueryHandler) Handle(
	ctx context.Context,
	query GetDelivererEarningsQuery,
) (GetDelivererEarningsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetDelivererEarningsQueryResponse{}, err
	}

	var deliveredTotal decimal.Decimal
	err := h.db.WithContext(ctx).Raw(`
		SELECT COALESCE(SUM(oi.quantity * p.price), 0)
		FROM orders o
		JOIN order_items oi ON oi.order_id = o.id
		JOIN products p ON p.id = oi.product_id
		WHERE o.deliverer_id = ? AND o.status = ?
	`, query.DelivererID(), order.StatusDelivered.String()).Scan(&deliveredTotal).Error
	if err != nil {
		return GetDelivererEarningsQueryResponse{}, err
	}

	return GetDelivererEarningsQueryResponse{
		DelivererID: query.DelivererID(),
		Earnings:    deliveredTotal.Mul(order.CommissionRate),
	}, nil
}
