// Package auth verifies account credentials against stored bcrypt hashes.
package auth

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"

	"fooddelivery/internal/core/domain/model/user"
	"fooddelivery/internal/core/ports"
	"fooddelivery/internal/pkg/errs"
)

// ErrInvalidCredentials is returned for any failed login attempt. An unknown
// username and a wrong password are deliberately indistinguishable to the
// caller.
var ErrInvalidCredentials = errors.New("invalid username or password")

// Service authenticates accounts by username and password.
type Service struct {
	users ports.UserRepository
}

// NewService creates an authentication service over the user repository.
func NewService(users ports.UserRepository) Service {
	return Service{users: users}
}

// Authenticate verifies the credentials and returns the matching account.
// Every failure mode except infrastructure errors maps to
// ErrInvalidCredentials.
func (s Service) Authenticate(ctx context.Context, username, password string) (*user.User, error) {
	if username == "" || password == "" {
		return nil, ErrInvalidCredentials
	}

	account, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err = bcrypt.CompareHashAndPassword([]byte(account.PasswordHash()), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return account, nil
}
