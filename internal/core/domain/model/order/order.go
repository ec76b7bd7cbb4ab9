package order

import (
	"errors"
	"fmt"
	"time"

	"fooddelivery/internal/core/domain/model/restaurant"
	"fooddelivery/internal/core/domain/model/user"
	"fooddelivery/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not
	// created through New or Restore. This ensures all orders are properly
	// validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via New or Restore constructor")

	// ErrIDAlreadyAssigned is returned when AssignID is called on an order
	// that already carries a persistent identity.
	ErrIDAlreadyAssigned = errors.New("order id is immutable once assigned")

	// ErrNoItems is returned when an order is created with an empty item list.
	ErrNoItems = errors.New("order must contain at least one item")
)

// CommissionRate is the deliverer's share of a delivered order's total.
var CommissionRate = decimal.New(1, -1) // 0.1

// Order is the aggregate root of the ordering domain. It owns its line items
// (they are created and destroyed with the order), references the placing
// user and the restaurant, and walks the Pending → InProgress → Delivered
// lifecycle.
//
// Order maintains these invariants:
//   - Non-empty item list at creation
//   - Status transitions follow the state machine in Status
//   - A deliverer is bound exactly when the order leaves Pending
//   - The id, once assigned by persistence, never changes
type Order struct {
	id          int64
	user        *user.User
	restaurant  *restaurant.Restaurant
	placedAt    time.Time
	status      Status
	items       []*Item
	delivererID *int64

	isConstructed bool
}

// New creates a not-yet-persisted Order in Pending status with no deliverer.
// The item list must be non-empty and every reference must be constructed.
func New(placer *user.User, rest *restaurant.Restaurant, items []*Item, placedAt time.Time) (*Order, error) {
	o := &Order{
		status:        StatusPending,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setUser(placer),
		o.setRestaurant(rest),
		o.setItems(items),
		o.setPlacedAt(placedAt),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// Restore reconstructs a persisted Order from storage fields. The status and
// deliverer binding are validated for mutual consistency, but an empty item
// list is tolerated: genuinely-empty historical orders predate the atomic
// create invariant, and hydration may have skipped orphaned items.
func Restore(
	id int64,
	placer *user.User,
	rest *restaurant.Restaurant,
	items []*Item,
	placedAt time.Time,
	status Status,
	delivererID *int64,
) (*Order, error) {
	o := &Order{isConstructed: true}

	if err := errors.Join(
		o.setUser(placer),
		o.setRestaurant(rest),
		o.setPlacedAt(placedAt),
		o.setStatus(status, delivererID),
	); err != nil {
		return nil, err
	}

	if id <= 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("order id", fmt.Errorf("%d is not a positive id", id))
	}
	o.id = id
	o.items = items

	return o, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// ID returns the order's persistent identifier, zero before first persistence.
func (o *Order) ID() int64 {
	return o.id
}

// User returns the placing user.
func (o *Order) User() *user.User {
	return o.user
}

// Restaurant returns the restaurant the order was placed with.
func (o *Order) Restaurant() *restaurant.Restaurant {
	return o.restaurant
}

// PlacedAt returns the order timestamp.
func (o *Order) PlacedAt() time.Time {
	return o.placedAt
}

// Status returns the current lifecycle status.
func (o *Order) Status() Status {
	return o.status
}

// Items returns the line items in hydration order (ascending item id).
func (o *Order) Items() []*Item {
	return o.items
}

// Deliverer returns the bound deliverer's user id, nil while Pending.
func (o *Order) Deliverer() *int64 {
	return o.delivererID
}

// Total returns the sum of the item subtotals, computed with exact decimal
// arithmetic from the currently-resolved product prices.
func (o *Order) Total() decimal.Decimal {
	total := decimal.Zero
	for _, item := range o.items {
		total = total.Add(item.Subtotal())
	}
	return total
}

// Commission returns the deliverer's share of the order total (CommissionRate).
// The figure only counts toward earnings once the order is Delivered.
func (o *Order) Commission() decimal.Decimal {
	return o.Total().Mul(CommissionRate)
}

// Accept binds a deliverer and moves the order from Pending to InProgress.
func (o *Order) Accept(delivererID int64) error {
	if delivererID <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("deliverer id", fmt.Errorf("%d is not a positive id", delivererID))
	}

	newStatus, err := o.status.Accept()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.delivererID = &delivererID
	return nil
}

// Complete moves the order from InProgress to Delivered.
func (o *Order) Complete() error {
	newStatus, err := o.status.Complete()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// AssignID binds the generated primary key after the first insert.
func (o *Order) AssignID(id int64) error {
	if o.id != 0 {
		return ErrIDAlreadyAssigned
	}
	if id <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("order id", fmt.Errorf("%d is not a positive id", id))
	}
	o.id = id
	return nil
}

func (o *Order) setUser(placer *user.User) error {
	if err := placer.Validate(); err != nil {
		return err
	}
	o.user = placer
	return nil
}

func (o *Order) setRestaurant(rest *restaurant.Restaurant) error {
	if err := rest.Validate(); err != nil {
		return err
	}
	o.restaurant = rest
	return nil
}

func (o *Order) setItems(items []*Item) error {
	if len(items) == 0 {
		return ErrNoItems
	}
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}
	o.items = items
	return nil
}

func (o *Order) setPlacedAt(placedAt time.Time) error {
	if placedAt.IsZero() {
		return errs.NewValueIsRequiredError("order date")
	}
	o.placedAt = placedAt
	return nil
}

func (o *Order) setStatus(status Status, delivererID *int64) error {
	if err := status.Validate(); err != nil {
		return err
	}
	if err := status.ValidateCanHaveDeliverer(delivererID != nil); err != nil {
		return err
	}
	o.status = status
	o.delivererID = delivererID
	return nil
}
