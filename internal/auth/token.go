// Package auth issues and verifies the API's own bearer tokens. Tokens
// are HS256-signed with a shared secret and expire after three days.
package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/lillieharlow/Bloggy-API/internal/authz"
	"github.com/lillieharlow/Bloggy-API/internal/domain"
	"github.com/lillieharlow/Bloggy-API/internal/domain/models"
)

// DefaultTokenTTL is how long an issued token stays valid.
const DefaultTokenTTL = 72 * time.Hour

// Claims are the token payload: the user ID in the subject plus the
// username and email for display and comment attribution.
type Claims struct {
	jwt.RegisteredClaims
	Username string `json:"username"`
	Email    string `json:"email"`
}

// TokenManager signs and verifies bearer tokens.
type TokenManager struct {
	secret []byte
	ttl    time.Duration
}

// NewTokenManager creates a token manager. The secret must be non-empty;
// a zero ttl falls back to DefaultTokenTTL.
func NewTokenManager(secret string, ttl time.Duration) (*TokenManager, error) {
	if secret == "" {
		return nil, errors.New("JWT secret cannot be empty")
	}
	if ttl <= 0 {
		ttl = DefaultTokenTTL
	}
	return &TokenManager{secret: []byte(secret), ttl: ttl}, nil
}

// Issue signs a token for the given user.
func (m *TokenManager) Issue(user *models.User) (string, error) {
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
		},
		Username: user.Username,
		Email:    user.Email,
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
}

// Verify validates a token string and returns the authenticated
// identity. Any failure (bad signature, wrong algorithm, expiry,
// missing subject) collapses to the same Unauthenticated error so the
// response never hints at why a forged token was rejected.
func (m *TokenManager) Verify(tokenString string) (authz.Identity, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{},
		func(t *jwt.Token) (interface{}, error) { return m.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
	)
	if err != nil || !token.Valid {
		return authz.Guest(), domain.Unauthenticated("Invalid token")
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || claims.Subject == "" {
		return authz.Guest(), domain.Unauthenticated("Invalid token")
	}

	return authz.Authenticated(claims.Subject, claims.Username), nil
}
