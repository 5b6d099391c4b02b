package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/lillieharlow/Bloggy-API/internal/auth"
	"github.com/lillieharlow/Bloggy-API/internal/config"
	"github.com/lillieharlow/Bloggy-API/internal/domain"
	"github.com/lillieharlow/Bloggy-API/internal/domain/models"
	"github.com/lillieharlow/Bloggy-API/internal/domain/repositories"
)

// AuthService handles signup and login.
type AuthService struct {
	users  repositories.UserRepository
	tokens *auth.TokenManager
	logger *slog.Logger
}

// NewAuthService creates a new auth service.
func NewAuthService(users repositories.UserRepository, tokens *auth.TokenManager, logger *slog.Logger) *AuthService {
	return &AuthService{users: users, tokens: tokens, logger: logger}
}

// SignupRequest is the registration payload.
type SignupRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest is the credential payload.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Signup validates the registration payload, hashes the password and
// creates the account.
func (s *AuthService) Signup(ctx context.Context, req *SignupRequest) error {
	if err := validateSignup(req); err != nil {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return domain.Internal(err)
	}

	now := time.Now()
	user := &models.User{
		ID:           uuid.NewString(),
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: string(hash),
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.users.Create(ctx, user); err != nil {
		return err
	}

	s.logger.Info("user created",
		"id", user.ID,
		"username", user.Username,
	)

	return nil
}

// Login verifies the credentials and issues a bearer token.
func (s *AuthService) Login(ctx context.Context, req *LoginRequest) (string, error) {
	user, err := s.users.GetByEmail(ctx, req.Email)
	if err != nil {
		var apiErr *domain.Error
		if errors.As(err, &apiErr) && apiErr.Kind == domain.KindNotFound {
			return "", domain.Unauthenticated("Email required")
		}
		return "", err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)) != nil {
		return "", domain.Unauthenticated("Invalid password")
	}

	token, err := s.tokens.Issue(user)
	if err != nil {
		return "", domain.Internal(err)
	}

	s.logger.Info("user logged in", "id", user.ID)

	return token, nil
}

// validateSignup checks the registration fields, collecting one
// structured sub-error per failing field in payload order.
func validateSignup(req *SignupRequest) error {
	var fields []domain.FieldError

	if err := validation.Validate(req.Username,
		validation.Required.Error("Username required"),
	); err != nil {
		fields = append(fields, domain.FieldError{Message: "Username required", Param: "username"})
	}

	if err := validation.Validate(req.Email,
		validation.Required.Error("Valid email required"),
		is.Email.Error("Valid email required"),
	); err != nil {
		fields = append(fields, domain.FieldError{Message: "Valid email required", Param: "email"})
	}

	if err := validation.Validate(req.Password,
		validation.Required.Error("Password min 6 chars"),
		validation.Length(config.MinPasswordLength, 0).Error("Password min 6 chars"),
	); err != nil {
		fields = append(fields, domain.FieldError{Message: "Password min 6 chars", Param: "password"})
	}

	if len(fields) > 0 {
		return domain.BadRequestFields("Validation failed", fields)
	}

	return nil
}
