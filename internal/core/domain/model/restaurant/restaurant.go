// Package restaurant defines the Restaurant entity.
package restaurant

import (
	"errors"
	"fmt"

	"fooddelivery/internal/pkg/errs"
)

var (
	// ErrRestaurantIsNotConstructed is returned when a Restaurant was not
	// created through New, Restore, or NewStub.
	ErrRestaurantIsNotConstructed = errors.New("Restaurant must be created via New or Restore constructor")

	// ErrIDAlreadyAssigned is returned when AssignID is called on a restaurant
	// that already carries a persistent identity.
	ErrIDAlreadyAssigned = errors.New("restaurant id is immutable once assigned")
)

// Restaurant represents a venue that owns products and receives orders.
// A restaurant loaded from a join that did not fetch full fields may be a
// stub: id only, reporting IsStub() true.
type Restaurant struct {
	id      int64
	name    string
	address string
	phone   string

	isStub        bool
	isConstructed bool
}

// New creates a not-yet-persisted Restaurant. Name is required.
func New(name, address, phone string) (*Restaurant, error) {
	r := &Restaurant{isConstructed: true}

	if err := r.setName(name); err != nil {
		return nil, err
	}
	r.address = address
	r.phone = phone

	return r, nil
}

// Restore reconstructs a persisted Restaurant from storage fields.
func Restore(id int64, name, address, phone string) (*Restaurant, error) {
	r, err := New(name, address, phone)
	if err != nil {
		return nil, err
	}

	if id <= 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("restaurant id", fmt.Errorf("%d is not a positive id", id))
	}
	r.id = id

	return r, nil
}

// NewStub creates an id-only reference for rows hydrated from a join that did
// not select the full restaurant columns. Stubs must never be persisted.
func NewStub(id int64) (*Restaurant, error) {
	if id <= 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("restaurant id", fmt.Errorf("%d is not a positive id", id))
	}
	return &Restaurant{id: id, isStub: true, isConstructed: true}, nil
}

// Validate ensures the Restaurant instance was properly constructed.
func (r *Restaurant) Validate() error {
	if r == nil || !r.isConstructed {
		return ErrRestaurantIsNotConstructed
	}
	return nil
}

// ID returns the restaurant's persistent identifier, zero before first persistence.
func (r *Restaurant) ID() int64 {
	return r.id
}

// Name returns the restaurant name, empty on stubs.
func (r *Restaurant) Name() string {
	return r.name
}

// Address returns the street address.
func (r *Restaurant) Address() string {
	return r.address
}

// Phone returns the contact phone number.
func (r *Restaurant) Phone() string {
	return r.phone
}

// IsStub reports whether this instance carries only an identifier.
func (r *Restaurant) IsStub() bool {
	return r.isStub
}

// AssignID binds the generated primary key after the first insert.
func (r *Restaurant) AssignID(id int64) error {
	if r.id != 0 {
		return ErrIDAlreadyAssigned
	}
	if id <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("restaurant id", fmt.Errorf("%d is not a positive id", id))
	}
	r.id = id
	return nil
}

// Rename changes the restaurant name. Name stays required.
func (r *Restaurant) Rename(name string) error {
	return r.setName(name)
}

// ChangeAddress updates the street address.
func (r *Restaurant) ChangeAddress(address string) {
	r.address = address
}

// ChangePhone updates the contact phone number.
func (r *Restaurant) ChangePhone(phone string) {
	r.phone = phone
}

func (r *Restaurant) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("restaurant name")
	}
	r.name = name
	return nil
}
