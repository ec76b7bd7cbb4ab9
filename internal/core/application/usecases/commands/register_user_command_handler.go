package commands

import (
	"context"

	"golang.org/x/crypto/bcrypt"

	"fooddelivery/internal/core/domain/model/user"
)

// RegisterUserCommandHandler handles the business logic for account
// registration. Passwords are stored as salted bcrypt hashes; the plaintext
// never reaches the repository. Username uniqueness is enforced by the
// database and surfaces as a validation error.
type RegisterUserCommandHandler struct {
	uowFactory UserUoWFactory
}

// NewRegisterUserCommandHandler creates a handler for account registration.
func NewRegisterUserCommandHandler(uowFactory UserUoWFactory) RegisterUserCommandHandler {
	return RegisterUserCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the register-user command and returns the new account's id.
func (h *RegisterUserCommandHandler) Handle(ctx context.Context, cmd RegisterUserCommand) (int64, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cmd.Password()), bcrypt.DefaultCost)
	if err != nil {
		return 0, err
	}

	newUser, err := user.New(cmd.Username(), string(hash), cmd.Role())
	if err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.UserRepository().Add(ctx, newUser); err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return newUser.ID(), nil
}
