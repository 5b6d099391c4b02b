package repositories

import (
	"context"

	"github.com/lillieharlow/Bloggy-API/internal/domain/models"
)

// CommentRepository provides access to post comments.
type CommentRepository interface {
	// Create inserts a new comment.
	Create(ctx context.Context, comment *models.Comment) error

	// GetByID retrieves a comment scoped to its parent post. A comment
	// that exists under a different post is NotFound for this post.
	GetByID(ctx context.Context, id, postID string) (*models.Comment, error)

	// ListByPost retrieves all comments on a post, newest first.
	ListByPost(ctx context.Context, postID string) ([]models.Comment, error)

	// ExistsDuplicate reports whether the post already has a comment
	// with the same author and (trimmed) text.
	ExistsDuplicate(ctx context.Context, postID, author, text string) (bool, error)

	// Delete removes a comment.
	Delete(ctx context.Context, id string) error
}
