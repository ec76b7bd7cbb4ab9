package ports

import (
	"context"

	"fooddelivery/internal/core/domain/model/restaurant"
)

// RestaurantRepository defines the persistence contract for restaurants.
type RestaurantRepository interface {
	// Add persists a new restaurant and assigns the generated id to the entity.
	Add(ctx context.Context, r *restaurant.Restaurant) error

	// Update persists changes to an existing restaurant.
	Update(ctx context.Context, r *restaurant.Restaurant) error

	// Delete removes a restaurant by id.
	Delete(ctx context.Context, id int64) error

	// GetByID retrieves a restaurant by primary key.
	GetByID(ctx context.Context, id int64) (*restaurant.Restaurant, error)

	// GetByIDs retrieves the restaurants for the given ids in one round trip.
	// Missing ids are omitted from the result map.
	GetByIDs(ctx context.Context, ids []int64) (map[int64]*restaurant.Restaurant, error)

	// GetAll retrieves every restaurant ordered by name.
	GetAll(ctx context.Context) ([]*restaurant.Restaurant, error)
}
