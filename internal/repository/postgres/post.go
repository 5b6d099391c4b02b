package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/lillieharlow/Bloggy-API/internal/domain"
	"github.com/lillieharlow/Bloggy-API/internal/domain/models"
	"github.com/lillieharlow/Bloggy-API/internal/domain/repositories"
)

// PostgresPostRepository implements the PostRepository interface.
type PostgresPostRepository struct {
	pool *pgxpool.Pool
}

// NewPostRepository creates a new post repository.
func NewPostRepository(config *RepositoryConfig) repositories.PostRepository {
	return &PostgresPostRepository{pool: config.Pool}
}

// Create inserts a new post.
func (r *PostgresPostRepository) Create(ctx context.Context, post *models.Post) error {
	query := `
		INSERT INTO posts (id, title, body, image, tags, author_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := r.pool.Exec(ctx, query,
		post.ID,
		post.Title,
		post.Body,
		nullableText(post.Image),
		post.Tags,
		post.AuthorID,
		post.CreatedAt,
		post.UpdatedAt,
	)

	if err != nil {
		if IsPgDuplicateError(err) {
			return domain.Conflict("This post already exists!")
		}
		return fmt.Errorf("create post: %w", err)
	}

	return nil
}

// GetByID retrieves a post with its author username populated.
func (r *PostgresPostRepository) GetByID(ctx context.Context, id string) (*models.Post, error) {
	query := `
		SELECT p.id, p.title, p.body, COALESCE(p.image, ''), p.tags,
		       p.author_id, u.username, p.created_at, p.updated_at
		FROM posts p
		JOIN users u ON u.id = p.author_id
		WHERE p.id = $1
	`

	var post models.Post
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&post.ID,
		&post.Title,
		&post.Body,
		&post.Image,
		&post.Tags,
		&post.AuthorID,
		&post.AuthorUsername,
		&post.CreatedAt,
		&post.UpdatedAt,
	)

	if err != nil {
		if IsPgNoRowsError(err) {
			return nil, domain.NotFound("Post not found.")
		}
		return nil, fmt.Errorf("get post: %w", err)
	}

	return &post, nil
}

// List retrieves all posts, newest first.
func (r *PostgresPostRepository) List(ctx context.Context) ([]models.Post, error) {
	query := `
		SELECT p.id, p.title, p.body, COALESCE(p.image, ''), p.tags,
		       p.author_id, u.username, p.created_at, p.updated_at
		FROM posts p
		JOIN users u ON u.id = p.author_id
		ORDER BY p.created_at DESC
	`

	return r.queryPosts(ctx, query)
}

// ListByUsername retrieves all posts authored by the named user.
func (r *PostgresPostRepository) ListByUsername(ctx context.Context, username string) ([]models.Post, error) {
	query := `
		SELECT p.id, p.title, p.body, COALESCE(p.image, ''), p.tags,
		       p.author_id, u.username, p.created_at, p.updated_at
		FROM posts p
		JOIN users u ON u.id = p.author_id
		WHERE u.username = $1
		ORDER BY p.created_at DESC
	`

	return r.queryPosts(ctx, query, username)
}

// Update persists title/body/image/tags changes.
func (r *PostgresPostRepository) Update(ctx context.Context, post *models.Post) error {
	query := `
		UPDATE posts
		SET title = $1, body = $2, image = $3, tags = $4, updated_at = $5
		WHERE id = $6
	`

	result, err := r.pool.Exec(ctx, query,
		post.Title,
		post.Body,
		nullableText(post.Image),
		post.Tags,
		post.UpdatedAt,
		post.ID,
	)

	if err != nil {
		if IsPgDuplicateError(err) {
			return domain.Conflict("This post already exists!")
		}
		return fmt.Errorf("update post: %w", err)
	}

	if result.RowsAffected() == 0 {
		return domain.NotFound("Post not found.")
	}

	return nil
}

// Delete removes a post; its comments go with it via the foreign key.
func (r *PostgresPostRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM posts WHERE id = $1`

	result, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("delete post: %w", err)
	}

	if result.RowsAffected() == 0 {
		return domain.NotFound("Post not found.")
	}

	return nil
}

func (r *PostgresPostRepository) queryPosts(ctx context.Context, query string, args ...interface{}) ([]models.Post, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}
	defer rows.Close()

	var posts []models.Post
	for rows.Next() {
		var post models.Post
		err := rows.Scan(
			&post.ID,
			&post.Title,
			&post.Body,
			&post.Image,
			&post.Tags,
			&post.AuthorID,
			&post.AuthorUsername,
			&post.CreatedAt,
			&post.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan post: %w", err)
		}
		posts = append(posts, post)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate posts: %w", err)
	}

	if posts == nil {
		posts = []models.Post{}
	}

	return posts, nil
}

// nullableText maps an empty string to NULL so optional columns stay
// NULL instead of collecting empty strings.
func nullableText(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}
