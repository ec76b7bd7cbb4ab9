package ports

import (
	"context"

	"fooddelivery/internal/core/domain/model/product"
)

// ProductRepository defines the persistence contract for products.
// Read paths resolve the owning restaurant as an id-only stub; callers that
// need full restaurant fields go through RestaurantRepository.
type ProductRepository interface {
	// Add persists a new product and assigns the generated id to the entity.
	Add(ctx context.Context, p *product.Product) error

	// Update persists changes to an existing product.
	Update(ctx context.Context, p *product.Product) error

	// Delete removes a product by id.
	Delete(ctx context.Context, id int64) error

	// GetByID retrieves a product by primary key.
	GetByID(ctx context.Context, id int64) (*product.Product, error)

	// GetByIDs retrieves the products for the given ids in one round trip.
	// Missing ids are omitted from the result map; order hydration treats a
	// gap as an orphaned line item.
	GetByIDs(ctx context.Context, ids []int64) (map[int64]*product.Product, error)

	// GetAll retrieves every product.
	GetAll(ctx context.Context) ([]*product.Product, error)

	// GetByRestaurantID retrieves a restaurant's menu.
	GetByRestaurantID(ctx context.Context, restaurantID int64) ([]*product.Product, error)
}
