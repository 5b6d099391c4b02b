package repositories

import (
	"context"

	"github.com/lillieharlow/Bloggy-API/internal/domain/models"
)

// PostRepository provides access to blog posts.
type PostRepository interface {
	// Create inserts a new post. An identical title by the same author
	// yields a Conflict error.
	Create(ctx context.Context, post *models.Post) error

	// GetByID retrieves a post with its author username populated.
	// A missing post yields a NotFound error, never a nil post.
	GetByID(ctx context.Context, id string) (*models.Post, error)

	// List retrieves all posts, newest first.
	List(ctx context.Context) ([]models.Post, error)

	// ListByUsername retrieves all posts authored by the named user,
	// newest first.
	ListByUsername(ctx context.Context, username string) ([]models.Post, error)

	// Update persists title/body/image/tags changes.
	Update(ctx context.Context, post *models.Post) error

	// Delete removes a post and its comments.
	Delete(ctx context.Context, id string) error
}
