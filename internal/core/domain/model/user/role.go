package user

import (
	"fmt"

	"fooddelivery/internal/pkg/errs"
)

// Role represents the kind of actor a user account belongs to.
// It is stored as a text enum tag in the users table.
type Role int

const (
	// RoleUnknown represents an invalid or undefined role.
	// This value (0) helps catch uninitialized Role values.
	RoleUnknown Role = iota

	// RoleClient places orders.
	RoleClient

	// RoleEmployee manages restaurants, products, and reports.
	RoleEmployee

	// RoleDeliverer accepts and completes deliveries.
	RoleDeliverer
)

func getRoleStrings() map[Role]string {
	return map[Role]string{
		RoleUnknown:   "UNKNOWN",
		RoleClient:    "CLIENT",
		RoleEmployee:  "EMPLOYEE",
		RoleDeliverer: "DELIVERER",
	}
}

func getValidRoleStrings() map[Role]string {
	//nolint:exhaustive // RoleUnknown is intentionally excluded as it's invalid
	return map[Role]string{
		RoleClient:    "CLIENT",
		RoleEmployee:  "EMPLOYEE",
		RoleDeliverer: "DELIVERER",
	}
}

// ParseRole converts a stored text tag into a Role.
// Returns an error for tags outside {CLIENT, EMPLOYEE, DELIVERER}.
func ParseRole(s string) (Role, error) {
	for role, tag := range getValidRoleStrings() {
		if tag == s {
			return role, nil
		}
	}
	return RoleUnknown, errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%q is not a valid role", s))
}

// Validate checks if the Role value is valid.
// Valid roles are: RoleClient, RoleEmployee, RoleDeliverer.
func (r Role) Validate() error {
	if _, ok := getValidRoleStrings()[r]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%d is not a valid role", r))
	}
	return nil
}

// String returns the stored text tag of the role.
// Implements fmt.Stringer and is safe on any Role value.
func (r Role) String() string {
	if s, ok := getRoleStrings()[r]; ok {
		return s
	}
	return "UNKNOWN"
}
