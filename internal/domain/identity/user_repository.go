package identity

import (
	"context"

	"github.com/google/uuid"

	"github.com/minierp/backend/internal/domain/shared"
)

// UserRepository defines the interface for user persistence
type UserRepository interface {
	// FindByID finds a user by ID
	FindByID(ctx context.Context, id uuid.UUID) (*User, error)

	// FindByEmail finds a user by email
	FindByEmail(ctx context.Context, email string) (*User, error)

	// FindByRoles finds all users holding any of the given roles.
	// Used for notification fan-out to elevated roles.
	FindByRoles(ctx context.Context, roles []Role) ([]User, error)

	// FindAll finds users matching the filter
	FindAll(ctx context.Context, filter shared.Filter) ([]User, error)

	// Count counts users matching the filter
	Count(ctx context.Context, filter shared.Filter) (int64, error)

	// Save creates or updates a user
	Save(ctx context.Context, user *User) error

	// Delete deletes a user
	Delete(ctx context.Context, id uuid.UUID) error
}
