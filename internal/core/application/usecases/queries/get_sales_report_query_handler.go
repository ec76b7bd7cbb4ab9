package queries

import (
	"context"

	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/core/ports"

	"github.com/shopspring/decimal"
)

// GetSalesReportQueryHandler builds daily and monthly sales reports on top of
// the order repository's hydrated reads, so report totals come from the same
// decimal arithmetic as the domain and orphaned rows follow the same skip
// policy as every other order listing.
type GetSalesReportQueryHandler struct {
	orders ports.OrderRepository
}

// NewGetSalesReportQueryHandler creates a handler for sales report queries.
func NewGetSalesReportQueryHandler(orders ports.OrderRepository) GetSalesReportQueryHandler {
	return GetSalesReportQueryHandler{orders: orders}
}

// Handle executes the sales report query. A window with no orders yields an
// empty report with zero revenue.
func (h GetSalesReportQueryHandler) Handle(
	ctx context.Context,
	query GetSalesReportQuery,
) (GetSalesReportQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetSalesReportQueryResponse{}, err
	}

	var covered []*order.Order
	var err error
	if query.IsMonthly() {
		covered, err = h.orders.GetByMonth(ctx, query.Year(), query.Month())
	} else {
		covered, err = h.orders.GetByDate(ctx, query.Day())
	}
	if err != nil {
		return GetSalesReportQueryResponse{}, err
	}

	response := GetSalesReportQueryResponse{
		Orders:  make([]SalesReportLine, 0, len(covered)),
		Revenue: decimal.Zero,
	}
	for _, o := range covered {
		total := o.Total()
		response.Orders = append(response.Orders, SalesReportLine{
			OrderID:        o.ID(),
			RestaurantName: o.Restaurant().Name(),
			Status:         o.Status().String(),
			PlacedAt:       o.PlacedAt(),
			ItemCount:      len(o.Items()),
			Total:          total,
		})
		response.Revenue = response.Revenue.Add(total)
	}
	response.OrderCount = len(response.Orders)

	return response, nil
}
