package handler

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/lillieharlow/Bloggy-API/internal/domain/models"
	"github.com/lillieharlow/Bloggy-API/internal/httputil"
	"github.com/lillieharlow/Bloggy-API/internal/service"
)

// ProfileHandler handles profile requests.
type ProfileHandler struct {
	profileService *service.ProfileService
	logger         *slog.Logger
}

// NewProfileHandler creates a new profile handler.
func NewProfileHandler(profileService *service.ProfileService, logger *slog.Logger) *ProfileHandler {
	return &ProfileHandler{profileService: profileService, logger: logger}
}

// GetProfile retrieves one user's profile
// GET /api/v1/profile/{id}
func (h *ProfileHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	user, err := h.profileService.GetUser(r.Context(), r.PathValue("id"))
	if err != nil {
		httputil.RespondError(w, r, h.logger, err)
		return
	}

	if user.Profile == nil {
		// Long-standing quirk: a profile-less user answers 404 with a
		// success body so clients can still show the username.
		httputil.RespondJSON(w, http.StatusNotFound, map[string]interface{}{
			"success": true,
			"data":    nil,
			"message": fmt.Sprintf("%s has not set up a profile yet.", user.Username),
		})
		return
	}

	httputil.RespondData(w, http.StatusOK, user.Profile)
}

// createProfileRequest nests the profile document under a "profile" key.
type createProfileRequest struct {
	Profile *models.Profile `json:"profile"`
}

type updateProfileRequest struct {
	Profile *service.UpdateProfileRequest `json:"profile"`
}

// CreateProfile creates the caller's profile
// POST /api/v1/profile
func (h *ProfileHandler) CreateProfile(w http.ResponseWriter, r *http.Request) {
	identity, err := httputil.RequireIdentity(r)
	if err != nil {
		httputil.RespondError(w, r, h.logger, err)
		return
	}

	var req createProfileRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, r, h.logger, err)
		return
	}

	profile, err := h.profileService.Create(r.Context(), identity.UserID, req.Profile)
	if err != nil {
		httputil.RespondError(w, r, h.logger, err)
		return
	}

	httputil.RespondData(w, http.StatusCreated, profile)
}

// UpdateProfile patches the caller's profile
// PATCH /api/v1/profile
func (h *ProfileHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	identity, err := httputil.RequireIdentity(r)
	if err != nil {
		httputil.RespondError(w, r, h.logger, err)
		return
	}

	var req updateProfileRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, r, h.logger, err)
		return
	}
	if req.Profile == nil {
		req.Profile = &service.UpdateProfileRequest{}
	}

	profile, err := h.profileService.Update(r.Context(), identity.UserID, req.Profile)
	if err != nil {
		httputil.RespondError(w, r, h.logger, err)
		return
	}

	httputil.RespondData(w, http.StatusOK, profile)
}

// DeleteProfile removes the caller's profile
// DELETE /api/v1/profile
func (h *ProfileHandler) DeleteProfile(w http.ResponseWriter, r *http.Request) {
	identity, err := httputil.RequireIdentity(r)
	if err != nil {
		httputil.RespondError(w, r, h.logger, err)
		return
	}

	if err := h.profileService.Delete(r.Context(), identity.UserID); err != nil {
		httputil.RespondError(w, r, h.logger, err)
		return
	}

	httputil.RespondMessage(w, http.StatusOK, "Profile deleted successfully!")
}
