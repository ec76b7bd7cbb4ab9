// Package orderrepo provides the GORM-backed persistence adapter for the
// order aggregate. Reads run in two phases: fetch the raw order rows, then
// batch-resolve users, restaurants, items, and products before assembling
// domain aggregates.
package orderrepo

import (
	"time"

	"fooddelivery/internal/core/domain/model/order"
)

// OrderDTO represents the database structure for persisting order headers.
// DelivererID is null until a deliverer accepts the order.
type OrderDTO struct {
	ID           int64     `gorm:"primaryKey;autoIncrement"`
	UserID       int64     `gorm:"index;not null"`
	RestaurantID int64     `gorm:"index;not null"`
	Status       string    `gorm:"type:varchar(16);index;not null"`
	OrderDate    time.Time `gorm:"index;not null"`
	DelivererID  *int64    `gorm:"index"`
}

// TableName specifies the database table name for order headers.
func (OrderDTO) TableName() string {
	return "orders"
}

// OrderItemDTO represents the database structure for persisting order lines.
type OrderItemDTO struct {
	ID        int64 `gorm:"primaryKey;autoIncrement"`
	OrderID   int64 `gorm:"index;not null"`
	ProductID int64 `gorm:"index;not null"`
	Quantity  int   `gorm:"not null"`
}

// TableName specifies the database table name for order lines.
func (OrderItemDTO) TableName() string {
	return "order_items"
}

// headerFromDomain converts an order aggregate to its header row.
func headerFromDomain(o *order.Order) OrderDTO {
	return OrderDTO{
		ID:           o.ID(),
		UserID:       o.User().ID(),
		RestaurantID: o.Restaurant().ID(),
		Status:       o.Status().String(),
		OrderDate:    o.PlacedAt(),
		DelivererID:  o.Deliverer(),
	}
}

// itemFromDomain converts a line item to its row. The order id comes from the
// caller because items are inserted right after the header generates its key.
func itemFromDomain(item *order.Item, orderID int64) OrderItemDTO {
	return OrderItemDTO{
		ID:        item.ID(),
		OrderID:   orderID,
		ProductID: item.Product().ID(),
		Quantity:  item.Quantity(),
	}
}
