package order

import (
	"fmt"

	"fooddelivery/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
// It implements a state machine with defined transitions to ensure
// orders follow the correct delivery workflow.
//
// State transitions:
//
//	Pending ──> InProgress ──> Delivered
//
// Acceptance by a deliverer moves Pending to InProgress; a separate
// completion signal moves InProgress to Delivered. Delivered is terminal —
// there is no cancellation or revert path.
//
// Status is a value object that validates state transitions and provides the
// text tags used for persistence.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	StatusUnknown Status = iota

	// StatusPending is the initial status when an order is first placed.
	// Orders in this status are waiting for a deliverer to accept them.
	StatusPending

	// StatusInProgress indicates a deliverer accepted the order and the
	// delivery is underway.
	StatusInProgress

	// StatusDelivered indicates the order reached the customer.
	// This is a final state with no further transitions allowed.
	StatusDelivered
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:    "UNKNOWN",
		StatusPending:    "PENDING",
		StatusInProgress: "IN_PROGRESS",
		StatusDelivered:  "DELIVERED",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // StatusUnknown is intentionally excluded as it's invalid
	return map[Status]string{
		StatusPending:    "PENDING",
		StatusInProgress: "IN_PROGRESS",
		StatusDelivered:  "DELIVERED",
	}
}

// ParseStatus converts a stored text tag into a Status.
// Returns an error for tags outside {PENDING, IN_PROGRESS, DELIVERED}.
func ParseStatus(s string) (Status, error) {
	for status, tag := range getValidStatusStrings() {
		if tag == s {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid status", s))
}

// Validate checks if the Status value is valid.
// Valid statuses are: StatusPending, StatusInProgress, StatusDelivered.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the persisted text tag of the status.
// Implements fmt.Stringer and is safe on any Status value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// ValidateCanHaveDeliverer validates the consistency between order status and
// deliverer binding: pending orders must not have a deliverer, accepted and
// delivered orders must.
func (s Status) ValidateCanHaveDeliverer(hasDeliverer bool) error {
	if hasDeliverer && s == StatusPending {
		return errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s order cannot have a deliverer", s),
		)
	}

	if !hasDeliverer && (s == StatusInProgress || s == StatusDelivered) {
		return errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s order must have a deliverer", s),
		)
	}

	return nil
}

// Accept transitions the status to InProgress.
//
// The only valid source is Pending; accepting an order that is already in
// progress or delivered fails with an InvalidStatusTransitionError.
func (s Status) Accept() (Status, error) {
	if s != StatusPending {
		return StatusUnknown, errs.NewInvalidStatusTransitionError(s.String(), StatusInProgress.String())
	}
	return StatusInProgress, nil
}

// Complete transitions the status to Delivered.
//
// The only valid source is InProgress. Delivered is terminal, so completing
// twice fails with an InvalidStatusTransitionError.
func (s Status) Complete() (Status, error) {
	if s != StatusInProgress {
		return StatusUnknown, errs.NewInvalidStatusTransitionError(s.String(), StatusDelivered.String())
	}
	return StatusDelivered, nil
}
