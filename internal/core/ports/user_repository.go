// Package ports defines the persistence contracts between the application
// core and infrastructure adapters. Lookups that match nothing return an
// errs.ObjectNotFoundError — absence is an explicit value, never a panic —
// while mutating operations surface persistence failures as wrapped errors so
// callers can tell "nothing matched" from "the write failed".
package ports

import (
	"context"

	"fooddelivery/internal/core/domain/model/user"
)

// UserRepository defines the persistence contract for user accounts.
type UserRepository interface {
	// Add persists a new user and assigns the generated id to the entity.
	// A duplicate username fails with a validation error.
	Add(ctx context.Context, u *user.User) error

	// Update persists changes to an existing user.
	Update(ctx context.Context, u *user.User) error

	// Delete removes a user by id.
	Delete(ctx context.Context, id int64) error

	// GetByID retrieves a user by primary key.
	GetByID(ctx context.Context, id int64) (*user.User, error)

	// GetByUsername retrieves a user by unique username.
	GetByUsername(ctx context.Context, username string) (*user.User, error)

	// GetByIDs retrieves the users for the given ids in one round trip.
	// Missing ids are omitted from the result map rather than failing the
	// batch; callers treat gaps as data-integrity conditions.
	GetByIDs(ctx context.Context, ids []int64) (map[int64]*user.User, error)

	// GetAll retrieves every user.
	GetAll(ctx context.Context) ([]*user.User, error)
}
