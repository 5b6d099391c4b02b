package service

import (
	"context"
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

// AnonymousAuthor is the display name recorded when neither a verified
// identity nor a claimed author name accompanies a new comment.
const AnonymousAuthor = "Anonymous"

// CommentService handles comments nested under posts. Every operation
// verifies the parent post first: a comment route on a missing post is
// NotFound before anything else is considered.
type CommentService struct {
	posts    repositories.PostRepository
	comments repositories.CommentRepository
	logger   *slog.Logger
}

// NewCommentService creates a new comment service.
func NewCommentService(posts repositories.PostRepository, comments repositories.CommentRepository, logger *slog.Logger) *CommentService {
	return &CommentService{posts: posts, comments: comments, logger: logger}
}

// CreateCommentRequest is the creation payload. Author is only honored
// for guests; signed-in users always comment under their own username.
type CreateCommentRequest struct {
	Author string `json:"author"`
	Text   string `json:"text"`
}

// List retrieves a post's comments, newest first.
func (s *CommentService) List(ctx context.Context, postID string) ([]models.Comment, error) {
	if _, err := s.posts.GetByID(ctx, postID); err != nil {
		return nil, err
	}
	return s.comments.ListByPost(ctx, postID)
}

// Create stores a new comment on a post. The author resolves to the
// verified username, then the claimed name, then "Anonymous". An
// identical (author, text) pair on the same post is a conflict.
func (s *CommentService) Create(ctx context.Context, identity authz.Identity, postID string, req *CreateCommentRequest) (*models.Comment, error) {
	if _, err := s.posts.GetByID(ctx, postID); err != nil {
		return nil, err
	}

	author := req.Author
	if !identity.IsGuest() {
		author = identity.Username
	}
	if author == "" {
		author = AnonymousAuthor
	}

	comment := &models.Comment{
		ID:     uuid.NewString(),
		PostID: postID,
		Author: author,
		Text:   req.Text,
	}

	if err := validateCommentFields(comment); err != nil {
		return nil, err
	}

	duplicate, err := s.comments.ExistsDuplicate(ctx, postID, author, req.Text)
	if err != nil {
		return nil, err
	}
	if duplicate {
		return nil, domain.Conflict("This comment already exists!")
	}

	now := time.Now()
	comment.CreatedAt = now
	comment.UpdatedAt = now

	if err := s.comments.Create(ctx, comment); err != nil {
		return nil, err
	}

	s.logger.Info("comment created",
		"id", comment.ID,
		"post_id", postID,
		"author", author,
	)

	return comment, nil
}

// Delete removes a comment once the deletion resolves as permitted:
// the post owner may remove any comment on their post, anyone else must
// prove authorship with an exactly matching author name.
func (s *CommentService) Delete(ctx context.Context, identity authz.Identity, postID, commentID, claimedAuthor string) error {
	post, err := s.posts.GetByID(ctx, postID)
	if err != nil {
		return err
	}

	comment, err := s.comments.GetByID(ctx, commentID, postID)
	if err != nil {
		return err
	}

	decision, err := authz.ResolveCommentDeletion(identity, claimedAuthor, comment, post)
	if err != nil {
		return err
	}
	if !decision.Allowed {
		return decision.Err()
	}

	if err := s.comments.Delete(ctx, commentID); err != nil {
		return err
	}

	s.logger.Info("comment deleted",
		"id", commentID,
		"post_id", postID,
	)

	return nil
}

// validateCommentFields checks the comment field rules.
func validateCommentFields(comment *models.Comment) error {
	return validation.ValidateStruct(comment,
		validation.Field(&comment.Author,
			validation.Required.Error("Author is required"),
			validation.Length(config.MinCommentAuthorLength, 0).
				Error("Author name must be at least 5 characters long"),
			validation.Length(0, config.MaxCommentAuthorLength).
				Error("Author name must be at most 50 characters long"),
			validation.By(validateCommentAuthor),
		),
		validation.Field(&comment.Text,
			validation.Required.Error("Text is required"),
		),
	)
}
