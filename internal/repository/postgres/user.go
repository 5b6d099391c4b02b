package postgres

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/lillieharlow/Bloggy-API/internal/domain"
	"github.com/lillieharlow/Bloggy-API/internal/domain/models"
	"github.com/lillieharlow/Bloggy-API/internal/domain/repositories"
)

// PostgresUserRepository implements the UserRepository interface.
type PostgresUserRepository struct {
	pool *pgxpool.Pool
}

// NewUserRepository creates a new user repository.
func NewUserRepository(config *RepositoryConfig) repositories.UserRepository {
	return &PostgresUserRepository{pool: config.Pool}
}

// Create inserts a new user.
func (r *PostgresUserRepository) Create(ctx context.Context, user *models.User) error {
	query := `
		INSERT INTO users (id, username, email, password_hash, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := r.pool.Exec(ctx, query,
		user.ID,
		user.Username,
		user.Email,
		user.PasswordHash,
		user.CreatedAt,
		user.UpdatedAt,
	)

	if err != nil {
		if constraint := DuplicateConstraint(err); constraint != "" {
			if strings.Contains(constraint, "email") {
				return domain.Conflict("Email already in use")
			}
			return domain.Conflict("Username already in use")
		}
		return fmt.Errorf("create user: %w", err)
	}

	return nil
}

// GetByID retrieves a user by ID, profile included.
func (r *PostgresUserRepository) GetByID(ctx context.Context, id string) (*models.User, error) {
	query := `
		SELECT id, username, email, profile, created_at, updated_at
		FROM users
		WHERE id = $1
	`

	var user models.User
	var profileJSON []byte
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&user.ID,
		&user.Username,
		&user.Email,
		&profileJSON,
		&user.CreatedAt,
		&user.UpdatedAt,
	)

	if err != nil {
		if IsPgNoRowsError(err) {
			return nil, domain.NotFound("User not found.")
		}
		return nil, fmt.Errorf("get user: %w", err)
	}

	if err := unmarshalProfile(profileJSON, &user); err != nil {
		return nil, err
	}

	return &user, nil
}

// GetByEmail retrieves a user by email with the password hash populated.
func (r *PostgresUserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	query := `
		SELECT id, username, email, password_hash, profile, created_at, updated_at
		FROM users
		WHERE email = $1
	`

	var user models.User
	var profileJSON []byte
	err := r.pool.QueryRow(ctx, query, email).Scan(
		&user.ID,
		&user.Username,
		&user.Email,
		&user.PasswordHash,
		&profileJSON,
		&user.CreatedAt,
		&user.UpdatedAt,
	)

	if err != nil {
		if IsPgNoRowsError(err) {
			return nil, domain.NotFound("User not found.")
		}
		return nil, fmt.Errorf("get user by email: %w", err)
	}

	if err := unmarshalProfile(profileJSON, &user); err != nil {
		return nil, err
	}

	return &user, nil
}

// UpdateProfile replaces the user's profile document.
func (r *PostgresUserRepository) UpdateProfile(ctx context.Context, userID string, profile *models.Profile) error {
	profileJSON, err := json.Marshal(profile)
	if err != nil {
		return fmt.Errorf("marshal profile: %w", err)
	}

	query := `
		UPDATE users
		SET profile = $1, updated_at = NOW()
		WHERE id = $2
	`

	result, err := r.pool.Exec(ctx, query, profileJSON, userID)
	if err != nil {
		return fmt.Errorf("update profile: %w", err)
	}

	if result.RowsAffected() == 0 {
		return domain.NotFound("User not found.")
	}

	return nil
}

// ClearProfile removes the user's profile document entirely.
func (r *PostgresUserRepository) ClearProfile(ctx context.Context, userID string) error {
	query := `
		UPDATE users
		SET profile = NULL, updated_at = NOW()
		WHERE id = $1
	`

	result, err := r.pool.Exec(ctx, query, userID)
	if err != nil {
		return fmt.Errorf("clear profile: %w", err)
	}

	if result.RowsAffected() == 0 {
		return domain.NotFound("User not found.")
	}

	return nil
}

func unmarshalProfile(profileJSON []byte, user *models.User) error {
	if len(profileJSON) == 0 {
		return nil
	}
	var profile models.Profile
	if err := json.Unmarshal(profileJSON, &profile); err != nil {
		return fmt.Errorf("unmarshal profile: %w", err)
	}
	user.Profile = &profile
	return nil
}
