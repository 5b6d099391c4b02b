package handler

import (
	"log/slog"
	"net/http"

	"github.com/lillieharlow/Bloggy-API/internal/httputil"
	"github.com/lillieharlow/Bloggy-API/internal/service"
)

// CommentHandler handles comment requests nested under posts.
type CommentHandler struct {
	commentService *service.CommentService
	logger         *slog.Logger
}

// NewCommentHandler creates a new comment handler.
func NewCommentHandler(commentService *service.CommentService, logger *slog.Logger) *CommentHandler {
	return &CommentHandler{commentService: commentService, logger: logger}
}

// ListComments retrieves all comments for a post
// GET /api/v1/posts/{postId}/comments
func (h *CommentHandler) ListComments(w http.ResponseWriter, r *http.Request) {
	comments, err := h.commentService.List(r.Context(), r.PathValue("postId"))
	if err != nil {
		httputil.RespondError(w, r, h.logger, err)
		return
	}

	httputil.RespondList(w, len(comments), comments)
}

// CreateComment creates a new comment, signed in or not
// POST /api/v1/posts/{postId}/comments
func (h *CommentHandler) CreateComment(w http.ResponseWriter, r *http.Request) {
	var req service.CreateCommentRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, r, h.logger, err)
		return
	}

	identity := httputil.OptionalIdentity(r)
	comment, err := h.commentService.Create(r.Context(), identity, r.PathValue("postId"), &req)
	if err != nil {
		httputil.RespondError(w, r, h.logger, err)
		return
	}

	httputil.RespondData(w, http.StatusCreated, comment)
}

// deleteCommentRequest carries the claimed author name a guest supplies
// to prove they wrote the comment.
type deleteCommentRequest struct {
	DeleteAuthor string `json:"deleteAuthor"`
}

// DeleteComment deletes a comment
// DELETE /api/v1/posts/{postId}/comments/{commentId}
func (h *CommentHandler) DeleteComment(w http.ResponseWriter, r *http.Request) {
	// The body is optional: the post owner needs no claimed name.
	var req deleteCommentRequest
	if r.Body != nil && r.ContentLength > 0 {
		if err := httputil.ParseJSON(w, r, &req); err != nil {
			httputil.RespondError(w, r, h.logger, err)
			return
		}
	}

	identity := httputil.OptionalIdentity(r)
	err := h.commentService.Delete(r.Context(), identity,
		r.PathValue("postId"), r.PathValue("commentId"), req.DeleteAuthor)
	if err != nil {
		httputil.RespondError(w, r, h.logger, err)
		return
	}

	httputil.RespondMessage(w, http.StatusOK, "Comment deleted successfully!")
}
