package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"

	"github.com/lillieharlow/Bloggy-API/internal/authz"
	"github.com/lillieharlow/Bloggy-API/internal/config"
	"github.com/lillieharlow/Bloggy-API/internal/domain"
	"github.com/lillieharlow/Bloggy-API/internal/domain/models"
	"github.com/lillieharlow/Bloggy-API/internal/domain/repositories"
)

// PostService handles blog post operations. Mutations consult the
// authorization resolver after the existence lookup: a missing post is
// NotFound, a denied mutation is classified by the resolver's reason.
type PostService struct {
	posts  repositories.PostRepository
	logger *slog.Logger
}

// NewPostService creates a new post service.
func NewPostService(posts repositories.PostRepository, logger *slog.Logger) *PostService {
	return &PostService{posts: posts, logger: logger}
}

// CreatePostRequest is the creation payload.
type CreatePostRequest struct {
	Title string   `json:"title"`
	Body  string   `json:"body"`
	Image string   `json:"image"`
	Tags  []string `json:"tags"`
}

// UpdatePostRequest is the patch payload; nil fields stay untouched.
type UpdatePostRequest struct {
	Title *string   `json:"title"`
	Body  *string   `json:"body"`
	Image *string   `json:"image"`
	Tags  *[]string `json:"tags"`
}

// List retrieves all posts, newest first.
func (s *PostService) List(ctx context.Context) ([]models.Post, error) {
	return s.posts.List(ctx)
}

// ListByUsername retrieves the named author's posts, newest first.
func (s *PostService) ListByUsername(ctx context.Context, username string) ([]models.Post, error) {
	posts, err := s.posts.ListByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if len(posts) == 0 {
		return nil, domain.NotFound(fmt.Sprintf("No posts found for %s.", username))
	}
	return posts, nil
}

// Get retrieves a single post.
func (s *PostService) Get(ctx context.Context, id string) (*models.Post, error) {
	return s.posts.GetByID(ctx, id)
}

// Create validates and stores a new post for the authenticated author.
func (s *PostService) Create(ctx context.Context, authorID string, req *CreatePostRequest) (*models.Post, error) {
	if err := validatePostFields(req); err != nil {
		return nil, err
	}

	now := time.Now()
	post := &models.Post{
		ID:        uuid.NewString(),
		Title:     req.Title,
		Body:      req.Body,
		Image:     req.Image,
		Tags:      req.Tags,
		AuthorID:  authorID,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.posts.Create(ctx, post); err != nil {
		return nil, err
	}

	s.logger.Info("post created",
		"id", post.ID,
		"author_id", authorID,
	)

	return post, nil
}

// Update applies a patch to an existing post after the caller's right to
// mutate it has been resolved.
func (s *PostService) Update(ctx context.Context, identity authz.Identity, id string, req *UpdatePostRequest) (*models.Post, error) {
	post, err := s.posts.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	decision, err := authz.ResolvePostMutation(identity, post)
	if err != nil {
		return nil, err
	}
	if !decision.Allowed {
		return nil, decision.Err()
	}

	if req.Title != nil {
		post.Title = *req.Title
	}
	if req.Body != nil {
		post.Body = *req.Body
	}
	if req.Image != nil {
		post.Image = *req.Image
	}
	if req.Tags != nil {
		post.Tags = *req.Tags
	}

	merged := &CreatePostRequest{
		Title: post.Title,
		Body:  post.Body,
		Image: post.Image,
		Tags:  post.Tags,
	}
	if err := validatePostFields(merged); err != nil {
		return nil, err
	}

	post.UpdatedAt = time.Now()
	if err := s.posts.Update(ctx, post); err != nil {
		return nil, err
	}

	s.logger.Info("post updated",
		"id", post.ID,
		"user_id", identity.UserID,
	)

	return post, nil
}

// Delete removes a post after resolving the caller's right to do so.
func (s *PostService) Delete(ctx context.Context, identity authz.Identity, id string) error {
	post, err := s.posts.GetByID(ctx, id)
	if err != nil {
		return err
	}

	decision, err := authz.ResolvePostMutation(identity, post)
	if err != nil {
		return err
	}
	if !decision.Allowed {
		return decision.Err()
	}

	if err := s.posts.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info("post deleted",
		"id", id,
		"user_id", identity.UserID,
	)

	return nil
}

// validatePostFields checks the post field rules; failures come back as
// a field-error map for the responder's validation rule.
func validatePostFields(req *CreatePostRequest) error {
	return validation.ValidateStruct(req,
		validation.Field(&req.Title,
			validation.Required.Error("Title is required"),
			validation.Length(config.MinTitleLength, 0).
				Error(fmt.Sprintf("Title must be at least %d characters long", config.MinTitleLength)),
			validation.Length(0, config.MaxTitleLength).
				Error(fmt.Sprintf("Title can't be more than %d characters", config.MaxTitleLength)),
		),
		validation.Field(&req.Body,
			validation.Required.Error("Body is required"),
		),
		validation.Field(&req.Image,
			validation.By(validateImageURL),
		),
		validation.Field(&req.Tags,
			validation.By(validateTags),
		),
	)
}
