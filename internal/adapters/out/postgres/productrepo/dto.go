// Package productrepo provides the GORM-backed persistence adapter for
// products. Read paths resolve the owning restaurant as an id-only stub so a
// single menu query never fans out into per-row restaurant lookups.
package productrepo

import (
	"github.com/shopspring/decimal"

	"fooddelivery/internal/core/domain/model/product"
	"fooddelivery/internal/core/domain/model/restaurant"
)

// ProductDTO represents the database structure for persisting products.
// Price uses a fixed-point decimal column so monetary values survive the
// round trip without binary-float drift.
type ProductDTO struct {
	ID           int64  `gorm:"primaryKey;autoIncrement"`
	Name         string `gorm:"not null"`
	Description  string
	Price        decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	RestaurantID int64           `gorm:"index;not null"`
}

// TableName specifies the database table name for product entities.
func (ProductDTO) TableName() string {
	return "products"
}

// fromDomain converts a product entity to its database representation.
func fromDomain(p *product.Product) ProductDTO {
	return ProductDTO{
		ID:           p.ID(),
		Name:         p.Name(),
		Description:  p.Description(),
		Price:        p.Price(),
		RestaurantID: p.RestaurantID(),
	}
}

// toDomain converts a database row to a product entity.
func toDomain(dto ProductDTO) (*product.Product, error) {
	rest, err := restaurant.NewStub(dto.RestaurantID)
	if err != nil {
		return nil, err
	}
	return product.Restore(dto.ID, dto.Name, dto.Description, dto.Price, rest)
}
