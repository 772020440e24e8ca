package store

import (
	"context"

	"github.com/dkrasnov/shop-api/internal/domain"
)

// UserStore defines the interface for user data persistence.
type UserStore interface {
	// Create saves a new user to the store.
	// It handles password hashing internally: the user's plaintext Password
	// is hashed and only the hash is persisted. The write is awaited; Create
	// does not return until the store has confirmed it.
	// Returns ErrEmailExists if the email is already taken.
	// Returns validation errors from the domain User if data is invalid.
	Create(ctx context.Context, user *domain.User) error

	// GetByEmail retrieves a user by their email address.
	// Returns ErrUserNotFound if the user does not exist.
	// The returned user contains the hashed password, never a plaintext one.
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
}
