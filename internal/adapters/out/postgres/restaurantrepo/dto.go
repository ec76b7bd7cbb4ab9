// Package restaurantrepo provides the GORM-backed persistence adapter for
// restaurants.
package restaurantrepo

import (
	"fooddelivery/internal/core/domain/model/restaurant"
)

// RestaurantDTO represents the database structure for persisting restaurants.
type RestaurantDTO struct {
	ID      int64  `gorm:"primaryKey;autoIncrement"`
	Name    string `gorm:"not null"`
	Address string
	Phone   string
}

// TableName specifies the database table name for restaurant entities.
func (RestaurantDTO) TableName() string {
	return "restaurants"
}

// fromDomain converts a restaurant entity to its database representation.
func fromDomain(rest *restaurant.Restaurant) RestaurantDTO {
	return RestaurantDTO{
		ID:      rest.ID(),
		Name:    rest.Name(),
		Address: rest.Address(),
		Phone:   rest.Phone(),
	}
}

// toDomain converts a database row to a restaurant entity.
func toDomain(dto RestaurantDTO) (*restaurant.Restaurant, error) {
	return restaurant.Restore(dto.ID, dto.Name, dto.Address, dto.Phone)
}
