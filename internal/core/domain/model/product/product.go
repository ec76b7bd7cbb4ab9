// Package product defines the Product entity: a menu item owned by exactly
// one restaurant, priced with exact decimal arithmetic.
package product

import (
	"errors"
	"fmt"

	"fooddelivery/internal/core/domain/model/restaurant"
	"fooddelivery/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var (
	// ErrProductIsNotConstructed is returned when a Product was not created
	// through New or Restore.
	ErrProductIsNotConstructed = errors.New("Product must be created via New or Restore constructor")

	// ErrIDAlreadyAssigned is returned when AssignID is called on a product
	// that already carries a persistent identity.
	ErrIDAlreadyAssigned = errors.New("product id is immutable once assigned")
)

// Product represents a purchasable menu item. The restaurant reference may be
// a stub (id only) when the product was hydrated from a join that did not
// fetch the full restaurant row.
type Product struct {
	id          int64
	name        string
	description string
	price       decimal.Decimal
	restaurant  *restaurant.Restaurant

	isConstructed bool
}

// New creates a not-yet-persisted Product. Name is required, price must not
// be negative, and the owning restaurant reference must be constructed.
func New(name, description string, price decimal.Decimal, rest *restaurant.Restaurant) (*Product, error) {
	p := &Product{isConstructed: true}

	if err := errors.Join(
		p.setName(name),
		p.setPrice(price),
		p.setRestaurant(rest),
	); err != nil {
		return nil, err
	}
	p.description = description

	return p, nil
}

// Restore reconstructs a persisted Product from storage fields.
func Restore(id int64, name, description string, price decimal.Decimal, rest *restaurant.Restaurant) (*Product, error) {
	p, err := New(name, description, price, rest)
	if err != nil {
		return nil, err
	}

	if id <= 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("product id", fmt.Errorf("%d is not a positive id", id))
	}
	p.id = id

	return p, nil
}

// Validate ensures the Product instance was properly constructed.
func (p *Product) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrProductIsNotConstructed
	}
	return nil
}

// ID returns the product's persistent identifier, zero before first persistence.
func (p *Product) ID() int64 {
	return p.id
}

// Name returns the product name.
func (p *Product) Name() string {
	return p.name
}

// Description returns the free-text description.
func (p *Product) Description() string {
	return p.description
}

// Price returns the exact decimal unit price.
func (p *Product) Price() decimal.Decimal {
	return p.price
}

// Restaurant returns the owning restaurant reference, possibly a stub.
func (p *Product) Restaurant() *restaurant.Restaurant {
	return p.restaurant
}

// RestaurantID returns the owning restaurant's id.
func (p *Product) RestaurantID() int64 {
	return p.restaurant.ID()
}

// AssignID binds the generated primary key after the first insert.
func (p *Product) AssignID(id int64) error {
	if p.id != 0 {
		return ErrIDAlreadyAssigned
	}
	if id <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("product id", fmt.Errorf("%d is not a positive id", id))
	}
	p.id = id
	return nil
}

// Rename changes the product name. Name stays required.
func (p *Product) Rename(name string) error {
	return p.setName(name)
}

// ChangeDescription updates the free-text description.
func (p *Product) ChangeDescription(description string) {
	p.description = description
}

// ChangePrice updates the unit price. Price must not be negative.
func (p *Product) ChangePrice(price decimal.Decimal) error {
	return p.setPrice(price)
}

func (p *Product) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("product name")
	}
	p.name = name
	return nil
}

func (p *Product) setPrice(price decimal.Decimal) error {
	if price.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause("price", fmt.Errorf("%s is negative", price))
	}
	p.price = price
	return nil
}

func (p *Product) setRestaurant(rest *restaurant.Restaurant) error {
	if err := rest.Validate(); err != nil {
		return err
	}
	p.restaurant = rest
	return nil
}
