// Package user defines the User entity and its role enum.
// Users appear in two positions on an order: the placer and, for accepted
// orders, the deliverer.
package user

import (
	"errors"
	"fmt"

	"fooddelivery/internal/pkg/errs"
)

var (
	// ErrUserIsNotConstructed is returned when a User instance was not created
	// through New or Restore. This ensures all users are properly validated.
	ErrUserIsNotConstructed = errors.New("User must be created via New or Restore constructor")

	// ErrIDAlreadyAssigned is returned when AssignID is called on a user that
	// already carries a persistent identity. Ids are immutable once persisted.
	ErrIDAlreadyAssigned = errors.New("user id is immutable once assigned")
)

// User represents an account in the system: a client, an employee, or a
// deliverer. The password is held only as a salted one-way hash; the entity
// never sees a plaintext secret.
type User struct {
	id           int64
	username     string
	passwordHash string
	role         Role

	isConstructed bool
}

// New creates a not-yet-persisted User. The id stays zero until the
// repository assigns the generated key via AssignID.
func New(username, passwordHash string, role Role) (*User, error) {
	u := &User{isConstructed: true}

	if err := errors.Join(
		u.setUsername(username),
		u.setPasswordHash(passwordHash),
		u.setRole(role),
	); err != nil {
		return nil, err
	}

	return u, nil
}

// Restore reconstructs a persisted User from storage fields.
func Restore(id int64, username, passwordHash string, role Role) (*User, error) {
	u, err := New(username, passwordHash, role)
	if err != nil {
		return nil, err
	}

	if id <= 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("user id", fmt.Errorf("%d is not a positive id", id))
	}
	u.id = id

	return u, nil
}

// Validate ensures the User instance was properly constructed.
func (u *User) Validate() error {
	if u == nil || !u.isConstructed {
		return ErrUserIsNotConstructed
	}
	return nil
}

// ID returns the user's persistent identifier, zero before first persistence.
func (u *User) ID() int64 {
	return u.id
}

// Username returns the unique login name.
func (u *User) Username() string {
	return u.username
}

// PasswordHash returns the stored salted hash of the user's secret.
func (u *User) PasswordHash() string {
	return u.passwordHash
}

// Role returns the user's role.
func (u *User) Role() Role {
	return u.role
}

// AssignID binds the generated primary key after the first insert.
// Returns ErrIDAlreadyAssigned when an id is already present.
func (u *User) AssignID(id int64) error {
	if u.id != 0 {
		return ErrIDAlreadyAssigned
	}
	if id <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("user id", fmt.Errorf("%d is not a positive id", id))
	}
	u.id = id
	return nil
}

func (u *User) setUsername(username string) error {
	if username == "" {
		return errs.NewValueIsRequiredError("username")
	}
	u.username = username
	return nil
}

func (u *User) setPasswordHash(passwordHash string) error {
	if passwordHash == "" {
		return errs.NewValueIsRequiredError("password hash")
	}
	u.passwordHash = passwordHash
	return nil
}

func (u *User) setRole(role Role) error {
	if err := role.Validate(); err != nil {
		return err
	}
	u.role = role
	return nil
}
