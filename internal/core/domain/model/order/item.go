package order

import (
	"errors"
	"fmt"

	"fooddelivery/internal/core/domain/model/product"
	"fooddelivery/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var (
	// ErrItemIsNotConstructed is returned when an Item was not created
	// through NewItem or RestoreItem.
	ErrItemIsNotConstructed = errors.New("Item must be created via NewItem or RestoreItem constructor")

	// ErrItemIDAlreadyAssigned is returned when AssignIDs is called on an item
	// that already carries a persistent identity.
	ErrItemIDAlreadyAssigned = errors.New("order item id is immutable once assigned")
)

// Item is a line of an order: a product reference plus a quantity. Items are
// owned by their order (composition) and never outlive it.
type Item struct {
	id       int64
	orderID  int64
	product  *product.Product
	quantity int

	isConstructed bool
}

// NewItem creates a not-yet-persisted line item. Quantity must be at least 1
// and the product reference must be constructed.
func NewItem(p *product.Product, quantity int) (*Item, error) {
	item := &Item{isConstructed: true}

	if err := errors.Join(
		item.setProduct(p),
		item.setQuantity(quantity),
	); err != nil {
		return nil, err
	}

	return item, nil
}

// RestoreItem reconstructs a persisted line item from storage fields.
func RestoreItem(id, orderID int64, p *product.Product, quantity int) (*Item, error) {
	item, err := NewItem(p, quantity)
	if err != nil {
		return nil, err
	}

	if id <= 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("order item id", fmt.Errorf("%d is not a positive id", id))
	}
	if orderID <= 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("order id", fmt.Errorf("%d is not a positive id", orderID))
	}
	item.id = id
	item.orderID = orderID

	return item, nil
}

// Validate ensures the Item instance was properly constructed.
func (i *Item) Validate() error {
	if i == nil || !i.isConstructed {
		return ErrItemIsNotConstructed
	}
	return nil
}

// ID returns the item's persistent identifier, zero before first persistence.
func (i *Item) ID() int64 {
	return i.id
}

// OrderID returns the owning order's id, zero before first persistence.
func (i *Item) OrderID() int64 {
	return i.orderID
}

// Product returns the referenced product.
func (i *Item) Product() *product.Product {
	return i.product
}

// Quantity returns the ordered quantity, always ≥ 1.
func (i *Item) Quantity() int {
	return i.quantity
}

// Subtotal returns product price × quantity with exact decimal arithmetic.
func (i *Item) Subtotal() decimal.Decimal {
	return i.product.Price().Mul(decimal.NewFromInt(int64(i.quantity)))
}

// AssignIDs binds the generated item key and the owning order's key after the
// first insert.
func (i *Item) AssignIDs(id, orderID int64) error {
	if i.id != 0 {
		return ErrItemIDAlreadyAssigned
	}
	if id <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("order item id", fmt.Errorf("%d is not a positive id", id))
	}
	if orderID <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("order id", fmt.Errorf("%d is not a positive id", orderID))
	}
	i.id = id
	i.orderID = orderID
	return nil
}

func (i *Item) setProduct(p *product.Product) error {
	if err := p.Validate(); err != nil {
		return err
	}
	i.product = p
	return nil
}

func (i *Item) setQuantity(quantity int) error {
	if quantity < 1 {
		return errs.NewValueIsInvalidErrorWithCause("quantity", fmt.Errorf("%d is not at least 1", quantity))
	}
	i.quantity = quantity
	return nil
}
