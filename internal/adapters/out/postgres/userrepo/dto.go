// Package userrepo provides the GORM-backed persistence adapter for user
// accounts, including the DTO mapping between database rows and the domain
// entity.
package userrepo

import (
	"fooddelivery/internal/core/domain/model/user"
)

// UserDTO represents the database structure for persisting user accounts.
// The password column stores the salted bcrypt hash, never a plaintext secret.
type UserDTO struct {
	ID       int64  `gorm:"primaryKey;autoIncrement"`
	Username string `gorm:"uniqueIndex;not null"`
	Password string `gorm:"not null"`
	Role     string `gorm:"type:varchar(16);not null"`
}

// TableName specifies the database table name for user entities.
func (UserDTO) TableName() string {
	return "users"
}

// fromDomain converts a user entity to its database representation.
func fromDomain(u *user.User) UserDTO {
	return UserDTO{
		ID:       u.ID(),
		Username: u.Username(),
		Password: u.PasswordHash(),
		Role:     u.Role().String(),
	}
}

// toDomain converts a database row to a user entity.
func toDomain(dto UserDTO) (*user.User, error) {
	role, err := user.ParseRole(dto.Role)
	if err != nil {
		return nil, err
	}
	return user.Restore(dto.ID, dto.Username, dto.Password, role)
}
