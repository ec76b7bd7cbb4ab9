package restaurantrepo

import (
	"context"
	"errors"

	"fooddelivery/internal/core/domain/model/restaurant"
	"fooddelivery/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormRestaurantRepository implements RestaurantRepository using GORM.
type GormRestaurantRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id int64, aggregate any)
}

// NewGormRestaurantRepository creates a new GORM restaurant repository.
func NewGormRestaurantRepository(db *gorm.DB, tracker aggregateTracker) *GormRestaurantRepository {
	return &GormRestaurantRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new restaurant to the database and assigns the generated id
// back to the entity.
func (r *GormRestaurantRepository) Add(ctx context.Context, rest *restaurant.Restaurant) error {
	if err := rest.Validate(); err != nil {
		return err
	}

	dto := fromDomain(rest)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	if err := rest.AssignID(dto.ID); err != nil {
		return err
	}

	r.tracker.TrackAggregate(rest.ID(), rest)
	return nil
}

// Update saves an existing restaurant to the database.
func (r *GormRestaurantRepository) Update(ctx context.Context, rest *restaurant.Restaurant) error {
	if err := rest.Validate(); err != nil {
		return err
	}

	dto := fromDomain(rest)
	result := r.db.WithContext(ctx).Model(&RestaurantDTO{}).Where("id = ?", dto.ID).Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("restaurant", dto.ID)
	}

	r.tracker.TrackAggregate(rest.ID(), rest)
	return nil
}

// Delete removes a restaurant by id.
func (r *GormRestaurantRepository) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Delete(&RestaurantDTO{}, id)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("restaurant", id)
	}

	return nil
}

// GetByID retrieves a restaurant by primary key.
func (r *GormRestaurantRepository) GetByID(ctx context.Context, id int64) (*restaurant.Restaurant, error) {
	var dto RestaurantDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("restaurant", id)
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByIDs retrieves the restaurants for the given ids in one round trip.
// Missing ids are omitted from the result map.
func (r *GormRestaurantRepository) GetByIDs(ctx context.Context, ids []int64) (map[int64]*restaurant.Restaurant, error) {
	restaurants := make(map[int64]*restaurant.Restaurant, len(ids))
	if len(ids) == 0 {
		return restaurants, nil
	}

	var dtos []RestaurantDTO
	if err := r.db.WithContext(ctx).Find(&dtos, "id IN ?", ids).Error; err != nil {
		return nil, err
	}

	for _, dto := range dtos {
		rest, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		restaurants[rest.ID()] = rest
	}

	return restaurants, nil
}

// GetAll retrieves every restaurant ordered by name.
func (r *GormRestaurantRepository) GetAll(ctx context.Context) ([]*restaurant.Restaurant, error) {
	var dtos []RestaurantDTO
	if err := r.db.WithContext(ctx).Order("name").Find(&dtos).Error; err != nil {
		return nil, err
	}

	restaurants := make([]*restaurant.Restaurant, 0, len(dtos))
	for _, dto := range dtos {
		rest, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		restaurants = append(restaurants, rest)
	}

	return restaurants, nil
}
