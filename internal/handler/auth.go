package handler

import (
	"log/slog"
	"net/http"

	"github.com/lillieharlow/Bloggy-API/internal/httputil"
	"github.com/lillieharlow/Bloggy-API/internal/service"
)

// AuthHandler handles signup and login requests.
type AuthHandler struct {
	authService *service.AuthService
	logger      *slog.Logger
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(authService *service.AuthService, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{authService: authService, logger: logger}
}

// Signup registers a new user
// POST /api/v1/auth/signup
func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var req service.SignupRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, r, h.logger, err)
		return
	}

	if err := h.authService.Signup(r.Context(), &req); err != nil {
		httputil.RespondError(w, r, h.logger, err)
		return
	}

	httputil.RespondJSON(w, http.StatusCreated, map[string]string{
		"message": "User created successfully",
	})
}

// Login verifies credentials and returns a bearer token
// POST /api/v1/auth/login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req service.LoginRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, r, h.logger, err)
		return
	}

	token, err := h.authService.Login(r.Context(), &req)
	if err != nil {
		httputil.RespondError(w, r, h.logger, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, map[string]string{"token": token})
}
