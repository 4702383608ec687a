package interfaces

import (
	"context"

	"vn-backend/internal/models"
)

// UserRepository defines the interface for interacting with user records.
//
//go:generate mockery --name UserRepository --output ./mocks --outpkg mocks --case=underscore
type UserRepository interface {
	// Create inserts a new user and fills in the assigned ID.
	// Returns ErrUserAlreadyExists or ErrEmailAlreadyExists on a
	// recognized unique violation.
	Create(ctx context.Context, user *models.User) error

	// GetByUsername retrieves a user by username. Returns ErrUserNotFound
	// when no row matches.
	GetByUsername(ctx context.Context, username string) (*models.User, error)

	// List returns every user row ordered by id.
	List(ctx context.Context) ([]models.User, error)

	// Update replaces username, password and email for the given id.
	// Returns ErrUserNotFound when no row matched.
	Update(ctx context.Context, user *models.User) error

	// Delete removes the user. Saves referencing the user go with it via
	// the cascading foreign key. Returns ErrUserNotFound when no row matched.
	Delete(ctx context.Context, id int64) error
}
