package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/lillieharlow/Bloggy-API/internal/domain"
	"github.com/lillieharlow/Bloggy-API/internal/domain/models"
	"github.com/lillieharlow/Bloggy-API/internal/domain/repositories"
)

// PostgresCommentRepository implements the CommentRepository interface.
type PostgresCommentRepository struct {
	pool *pgxpool.Pool
}

// NewCommentRepository creates a new comment repository.
func NewCommentRepository(config *RepositoryConfig) repositories.CommentRepository {
	return &PostgresCommentRepository{pool: config.Pool}
}

// Create inserts a new comment.
func (r *PostgresCommentRepository) Create(ctx context.Context, comment *models.Comment) error {
	query := `
		INSERT INTO comments (id, post_id, author, text, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := r.pool.Exec(ctx, query,
		comment.ID,
		comment.PostID,
		comment.Author,
		comment.Text,
		comment.CreatedAt,
		comment.UpdatedAt,
	)

	if err != nil {
		return fmt.Errorf("create comment: %w", err)
	}

	return nil
}

// GetByID retrieves a comment scoped to its parent post.
func (r *PostgresCommentRepository) GetByID(ctx context.Context, id, postID string) (*models.Comment, error) {
	query := `
		SELECT id, post_id, author, text, created_at, updated_at
		FROM comments
		WHERE id = $1 AND post_id = $2
	`

	var comment models.Comment
	err := r.pool.QueryRow(ctx, query, id, postID).Scan(
		&comment.ID,
		&comment.PostID,
		&comment.Author,
		&comment.Text,
		&comment.CreatedAt,
		&comment.UpdatedAt,
	)

	if err != nil {
		if IsPgNoRowsError(err) {
			return nil, domain.NotFound("Comment not found.")
		}
		return nil, fmt.Errorf("get comment: %w", err)
	}

	return &comment, nil
}

// ListByPost retrieves all comments on a post, newest first.
func (r *PostgresCommentRepository) ListByPost(ctx context.Context, postID string) ([]models.Comment, error) {
	query := `
		SELECT id, post_id, author, text, created_at, updated_at
		FROM comments
		WHERE post_id = $1
		ORDER BY created_at DESC
	`

	rows, err := r.pool.Query(ctx, query, postID)
	if err != nil {
		return nil, fmt.Errorf("list comments: %w", err)
	}
	defer rows.Close()

	var comments []models.Comment
	for rows.Next() {
		var comment models.Comment
		err := rows.Scan(
			&comment.ID,
			&comment.PostID,
			&comment.Author,
			&comment.Text,
			&comment.CreatedAt,
			&comment.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan comment: %w", err)
		}
		comments = append(comments, comment)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate comments: %w", err)
	}

	if comments == nil {
		comments = []models.Comment{}
	}

	return comments, nil
}

// ExistsDuplicate reports whether the post already has a comment with
// the same author and trimmed text.
func (r *PostgresCommentRepository) ExistsDuplicate(ctx context.Context, postID, author, text string) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM comments
			WHERE post_id = $1 AND author = $2 AND TRIM(text) = TRIM($3)
		)
	`

	var exists bool
	if err := r.pool.QueryRow(ctx, query, postID, author, text).Scan(&exists); err != nil {
		return false, fmt.Errorf("check duplicate comment: %w", err)
	}

	return exists, nil
}

// Delete removes a comment.
func (r *PostgresCommentRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM comments WHERE id = $1`

	result, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("delete comment: %w", err)
	}

	if result.RowsAffected() == 0 {
		return domain.NotFound("Comment not found.")
	}

	return nil
}
