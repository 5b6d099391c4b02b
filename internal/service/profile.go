package service

import (
	"context"
	"log/slog"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/lillieharlow/Bloggy-API/internal/config"
	"github.com/lillieharlow/Bloggy-API/internal/domain"
	"github.com/lillieharlow/Bloggy-API/internal/domain/models"
	"github.com/lillieharlow/Bloggy-API/internal/domain/repositories"
)

// ProfileService handles the user's optional about section.
type ProfileService struct {
	users  repositories.UserRepository
	logger *slog.Logger
}

// NewProfileService creates a new profile service.
func NewProfileService(users repositories.UserRepository, logger *slog.Logger) *ProfileService {
	return &ProfileService{users: users, logger: logger}
}

// UpdateProfileRequest is the patch payload; nil fields stay untouched.
// SocialLinks replaces the whole link set when provided.
type UpdateProfileRequest struct {
	Bio          *string             `json:"bio"`
	ProfileImage *string             `json:"profileImage"`
	SocialLinks  *models.SocialLinks `json:"socialLinks"`
}

// GetUser retrieves a user with their profile for public viewing.
func (s *ProfileService) GetUser(ctx context.Context, userID string) (*models.User, error) {
	return s.users.GetByID(ctx, userID)
}

// Create sets the profile for a user who has none yet.
func (s *ProfileService) Create(ctx context.Context, userID string, profile *models.Profile) (*models.Profile, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if user.Profile != nil {
		return nil, domain.BadRequest("Profile already exists. Use PATCH to update.")
	}

	if profile == nil {
		profile = &models.Profile{}
	}
	if err := validateProfileFields(profile); err != nil {
		return nil, err
	}

	if err := s.users.UpdateProfile(ctx, userID, profile); err != nil {
		return nil, err
	}

	s.logger.Info("profile created", "user_id", userID)

	return profile, nil
}

// Update patches an existing profile.
func (s *ProfileService) Update(ctx context.Context, userID string, req *UpdateProfileRequest) (*models.Profile, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if user.Profile == nil {
		return nil, domain.BadRequest("Profile does not exist. Use POST to create one.")
	}

	profile := user.Profile
	if req.Bio != nil {
		profile.Bio = *req.Bio
	}
	if req.ProfileImage != nil {
		profile.ProfileImage = *req.ProfileImage
	}
	if req.SocialLinks != nil {
		profile.SocialLinks = req.SocialLinks
	}

	if err := validateProfileFields(profile); err != nil {
		return nil, err
	}

	if err := s.users.UpdateProfile(ctx, userID, profile); err != nil {
		return nil, err
	}

	s.logger.Info("profile updated", "user_id", userID)

	return profile, nil
}

// Delete removes the profile entirely.
func (s *ProfileService) Delete(ctx context.Context, userID string) error {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return err
	}

	if user.Profile == nil {
		return domain.NotFound("Profile not found.")
	}

	if err := s.users.ClearProfile(ctx, userID); err != nil {
		return err
	}

	s.logger.Info("profile deleted", "user_id", userID)

	return nil
}

// validateProfileFields checks the about-section field rules.
func validateProfileFields(profile *models.Profile) error {
	err := validation.ValidateStruct(profile,
		validation.Field(&profile.Bio,
			validation.Length(0, config.MaxBioLength).
				Error("Bio cannot exceed 500 characters"),
		),
		validation.Field(&profile.ProfileImage,
			validation.By(validateImageURL),
		),
	)
	if err != nil {
		return err
	}

	if profile.SocialLinks == nil {
		return nil
	}

	links := profile.SocialLinks
	return validation.ValidateStruct(links,
		validation.Field(&links.Twitter, validation.By(validateLinkURL("Twitter"))),
		validation.Field(&links.Linkedin, validation.By(validateLinkURL("LinkedIn"))),
		validation.Field(&links.Github, validation.By(validateLinkURL("GitHub"))),
	)
}
