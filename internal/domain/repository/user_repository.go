package repository

import (
	"context"

	"portal/internal/domain/entity"
	"portal/internal/errors"
)

// Sentinel errors for user lookups.
var (
	ErrUserNotFound  = errors.New("user not found")
	ErrDuplicateUser = errors.New("user already exists")
)

// UserRepository persists portal accounts.
type UserRepository interface {
	// Create stores a new account and assigns its identifier.
	Create(ctx context.Context, user *entity.User) error
	// FindByID retrieves an account with its gateway populated.
	FindByID(ctx context.Context, id int64) (*entity.User, error)
	// FindByUsername retrieves an account by its login name.
	FindByUsername(ctx context.Context, username string) (*entity.User, error)
	// Delete removes an account.
	Delete(ctx context.Context, id int64) error
}
