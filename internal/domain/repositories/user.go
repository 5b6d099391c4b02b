package repositories

import (
	"context"

	"github.com/lillieharlow/Bloggy-API/internal/domain/models"
)

// UserRepository provides access to user accounts and their profiles.
type UserRepository interface {
	// Create inserts a new user. Duplicate username or email yields a
	// Conflict error naming the offending field.
	Create(ctx context.Context, user *models.User) error

	// GetByID retrieves a user by ID, profile included.
	GetByID(ctx context.Context, id string) (*models.User, error)

	// GetByEmail retrieves a user by email with the password hash
	// populated, for credential verification only.
	GetByEmail(ctx context.Context, email string) (*models.User, error)

	// UpdateProfile replaces the user's profile document.
	UpdateProfile(ctx context.Context, userID string, profile *models.Profile) error

	// ClearProfile removes the user's profile document entirely.
	ClearProfile(ctx context.Context, userID string) error
}
