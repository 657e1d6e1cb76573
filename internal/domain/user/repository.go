package user

import (
	"context"

	"github.com/google/uuid"
)

// UserRepository defines the persistence contract for user aggregates.
type UserRepository interface {
	// FindByID retrieves a user by its unique identifier.
	FindByID(ctx context.Context, id uuid.UUID) (*User, error)

	// FindByEmail retrieves a user by email, or a NotFoundError.
	FindByEmail(ctx context.Context, email string) (*User, error)

	// Save persists a new user. Fails on a duplicate email.
	Save(ctx context.Context, u *User) error

	// Update persists changes to an existing user.
	Update(ctx context.Context, u *User) error
}
