package orderrepo

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/core/domain/model/product"
	"fooddelivery/internal/core/domain/model/restaurant"
	"fooddelivery/internal/core/domain/model/user"
	"fooddelivery/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormOrderRepository implements OrderRepository using GORM. It depends on
// the lookup repositories for batch reference resolution during hydration.
type GormOrderRepository struct {
	db          *gorm.DB
	tracker     aggregateTracker
	users       userLookup
	restaurants restaurantLookup
	products    productLookup
	logger      *slog.Logger
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id int64, aggregate any)
}

type userLookup interface {
	GetByIDs(ctx context.Context, ids []int64) (map[int64]*user.User, error)
}

type restaurantLookup interface {
	GetByIDs(ctx context.Context, ids []int64) (map[int64]*restaurant.Restaurant, error)
}

type productLookup interface {
	GetByIDs(ctx context.Context, ids []int64) (map[int64]*product.Product, error)
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(
	db *gorm.DB,
	tracker aggregateTracker,
	users userLookup,
	restaurants restaurantLookup,
	products productLookup,
	logger *slog.Logger,
) *GormOrderRepository {
	return &GormOrderRepository{
		db:          db,
		tracker:     tracker,
		users:       users,
		restaurants: restaurants,
		products:    products,
		logger:      logger,
	}
}

// Add saves a new order and its items, assigning the generated keys back to
// the aggregate. Callers run Add inside a unit of work so a failed item
// insert rolls back the header.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := headerFromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}
	if err := aggregate.AssignID(dto.ID); err != nil {
		return err
	}

	items := aggregate.Items()
	itemDTOs := make([]OrderItemDTO, 0, len(items))
	for _, item := range items {
		itemDTOs = append(itemDTOs, itemFromDomain(item, dto.ID))
	}
	if err := r.db.WithContext(ctx).Create(&itemDTOs).Error; err != nil {
		return err
	}
	for i, item := range items {
		if err := item.AssignIDs(itemDTOs[i].ID, dto.ID); err != nil {
			return err
		}
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// GetByID retrieves one hydrated order.
func (r *GormOrderRepository) GetByID(ctx context.Context, id int64) (*order.Order, error) {
	var dto OrderDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id)
		}
		return nil, err
	}

	orders, err := r.hydrate(ctx, []OrderDTO{dto})
	if err != nil {
		return nil, err
	}
	if len(orders) == 0 {
		// The header exists but its user or restaurant row is gone.
		return nil, errs.NewObjectNotFoundError("order", id)
	}

	return orders[0], nil
}

// GetAll retrieves all orders, newest first.
func (r *GormOrderRepository) GetAll(ctx context.Context) ([]*order.Order, error) {
	return r.findAndHydrate(ctx, func(db *gorm.DB) *gorm.DB {
		return db.Order("order_date DESC")
	})
}

// GetByUserID retrieves the orders a user placed, in insertion order.
func (r *GormOrderRepository) GetByUserID(ctx context.Context, userID int64) ([]*order.Order, error) {
	return r.findAndHydrate(ctx, func(db *gorm.DB) *gorm.DB {
		return db.Where("user_id = ?", userID).Order("id")
	})
}

// GetByStatus retrieves the orders currently in the given status, newest first.
func (r *GormOrderRepository) GetByStatus(ctx context.Context, status order.Status) ([]*order.Order, error) {
	if err := status.Validate(); err != nil {
		return nil, err
	}
	return r.findAndHydrate(ctx, func(db *gorm.DB) *gorm.DB {
		return db.Where("status = ?", status.String()).Order("order_date DESC")
	})
}

// GetByDelivererID retrieves the orders bound to a deliverer, newest first.
func (r *GormOrderRepository) GetByDelivererID(ctx context.Context, delivererID int64) ([]*order.Order, error) {
	return r.findAndHydrate(ctx, func(db *gorm.DB) *gorm.DB {
		return db.Where("deliverer_id = ?", delivererID).Order("order_date DESC")
	})
}

// GetByDate retrieves the orders placed on the given calendar day, newest first.
func (r *GormOrderRepository) GetByDate(ctx context.Context, day time.Time) ([]*order.Order, error) {
	return r.findAndHydrate(ctx, func(db *gorm.DB) *gorm.DB {
		return db.Where("DATE(order_date) = ?", day.Format("2006-01-02")).Order("order_date DESC")
	})
}

// GetByMonth retrieves the orders placed in the given calendar month, newest first.
func (r *GormOrderRepository) GetByMonth(ctx context.Context, year int, month time.Month) ([]*order.Order, error) {
	return r.findAndHydrate(ctx, func(db *gorm.DB) *gorm.DB {
		return db.
			Where("EXTRACT(YEAR FROM order_date) = ? AND EXTRACT(MONTH FROM order_date) = ?", year, int(month)).
			Order("order_date DESC")
	})
}

// Accept transitions an order from PENDING to IN_PROGRESS and binds the
// deliverer. The conditional update lets racing acceptances resolve to
// exactly one winner; losers get an InvalidStatusTransitionError.
func (r *GormOrderRepository) Accept(ctx context.Context, orderID, delivererID int64) error {
	result := r.db.WithContext(ctx).Model(&OrderDTO{}).
		Where("id = ? AND status = ?", orderID, order.StatusPending.String()).
		Updates(map[string]any{
			"status":       order.StatusInProgress.String(),
			"deliverer_id": delivererID,
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return r.explainFailedTransition(ctx, orderID, order.StatusInProgress)
	}

	return nil
}

// Complete transitions an order from IN_PROGRESS to DELIVERED. Only the
// deliverer who accepted the order may complete it.
func (r *GormOrderRepository) Complete(ctx context.Context, orderID, delivererID int64) error {
	result := r.db.WithContext(ctx).Model(&OrderDTO{}).
		Where("id = ? AND deliverer_id = ? AND status = ?", orderID, delivererID, order.StatusInProgress.String()).
		Update("status", order.StatusDelivered.String())
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return r.explainFailedTransition(ctx, orderID, order.StatusDelivered)
	}

	return nil
}

// explainFailedTransition disambiguates a zero-row conditional update into a
// missing order versus an order in the wrong state.
func (r *GormOrderRepository) explainFailedTransition(ctx context.Context, orderID int64, target order.Status) error {
	var dto OrderDTO
	err := r.db.WithContext(ctx).Select("status").First(&dto, "id = ?", orderID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return errs.NewObjectNotFoundError("order", orderID)
	}
	if err != nil {
		return err
	}

	return errs.NewInvalidStatusTransitionError(dto.Status, target.String())
}

// findAndHydrate runs one filtered header query and hydrates the result set.
func (r *GormOrderRepository) findAndHydrate(ctx context.Context, scope func(*gorm.DB) *gorm.DB) ([]*order.Order, error) {
	var dtos []OrderDTO
	if err := scope(r.db.WithContext(ctx)).Find(&dtos).Error; err != nil {
		return nil, err
	}

	return r.hydrate(ctx, dtos)
}

// hydrate assembles domain aggregates from header rows. References resolve in
// batches (users, restaurants, items, products) so the cost stays flat in the
// number of orders. Rows whose user or restaurant is gone are skipped with a
// warning, as are items whose product is gone.
func (r *GormOrderRepository) hydrate(ctx context.Context, dtos []OrderDTO) ([]*order.Order, error) {
	orders := make([]*order.Order, 0, len(dtos))
	if len(dtos) == 0 {
		return orders, nil
	}

	userIDs := make([]int64, 0, len(dtos))
	restaurantIDs := make([]int64, 0, len(dtos))
	orderIDs := make([]int64, 0, len(dtos))
	seenUsers := make(map[int64]struct{}, len(dtos))
	seenRestaurants := make(map[int64]struct{}, len(dtos))
	for _, dto := range dtos {
		orderIDs = append(orderIDs, dto.ID)
		if _, ok := seenUsers[dto.UserID]; !ok {
			seenUsers[dto.UserID] = struct{}{}
			userIDs = append(userIDs, dto.UserID)
		}
		if _, ok := seenRestaurants[dto.RestaurantID]; !ok {
			seenRestaurants[dto.RestaurantID] = struct{}{}
			restaurantIDs = append(restaurantIDs, dto.RestaurantID)
		}
	}

	users, err := r.users.GetByIDs(ctx, userIDs)
	if err != nil {
		return nil, err
	}
	restaurants, err := r.restaurants.GetByIDs(ctx, restaurantIDs)
	if err != nil {
		return nil, err
	}

	itemsByOrder, err := r.loadItems(ctx, orderIDs)
	if err != nil {
		return nil, err
	}

	for _, dto := range dtos {
		placer, ok := users[dto.UserID]
		if !ok {
			r.logger.WarnContext(ctx, "skipping order: user not found",
				"order_id", dto.ID, "user_id", dto.UserID)
			continue
		}
		rest, ok := restaurants[dto.RestaurantID]
		if !ok {
			r.logger.WarnContext(ctx, "skipping order: restaurant not found",
				"order_id", dto.ID, "restaurant_id", dto.RestaurantID)
			continue
		}
		status, err := order.ParseStatus(dto.Status)
		if err != nil {
			return nil, err
		}

		o, err := order.Restore(dto.ID, placer, rest, itemsByOrder[dto.ID], dto.OrderDate, status, dto.DelivererID)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}

	return orders, nil
}

// loadItems fetches and restores the line items for a batch of orders,
// grouped by order id in ascending item-id order.
func (r *GormOrderRepository) loadItems(ctx context.Context, orderIDs []int64) (map[int64][]*order.Item, error) {
	var itemDTOs []OrderItemDTO
	if err := r.db.WithContext(ctx).Where("order_id IN ?", orderIDs).Order("id").Find(&itemDTOs).Error; err != nil {
		return nil, err
	}

	productIDs := make([]int64, 0, len(itemDTOs))
	seen := make(map[int64]struct{}, len(itemDTOs))
	for _, dto := range itemDTOs {
		if _, ok := seen[dto.ProductID]; !ok {
			seen[dto.ProductID] = struct{}{}
			productIDs = append(productIDs, dto.ProductID)
		}
	}

	products, err := r.products.GetByIDs(ctx, productIDs)
	if err != nil {
		return nil, err
	}

	itemsByOrder := make(map[int64][]*order.Item, len(orderIDs))
	for _, dto := range itemDTOs {
		p, ok := products[dto.ProductID]
		if !ok {
			r.logger.WarnContext(ctx, "skipping order item: product not found",
				"order_id", dto.OrderID, "order_item_id", dto.ID, "product_id", dto.ProductID)
			continue
		}
		item, err := order.RestoreItem(dto.ID, dto.OrderID, p, dto.Quantity)
		if err != nil {
			return nil, err
		}
		itemsByOrder[dto.OrderID] = append(itemsByOrder[dto.OrderID], item)
	}

	return itemsByOrder, nil
}
