package handler

import (
	"log/slog"
	"net/http"

	"github.com/lillieharlow/Bloggy-API/internal/httputil"
	"github.com/lillieharlow/Bloggy-API/internal/service"
)

// PostHandler handles blog post requests.
type PostHandler struct {
	postService *service.PostService
	logger      *slog.Logger
}

// NewPostHandler creates a new post handler.
func NewPostHandler(postService *service.PostService, logger *slog.Logger) *PostHandler {
	return &PostHandler{postService: postService, logger: logger}
}

// ListPosts retrieves all posts
// GET /api/v1/posts
func (h *PostHandler) ListPosts(w http.ResponseWriter, r *http.Request) {
	posts, err := h.postService.List(r.Context())
	if err != nil {
		httputil.RespondError(w, r, h.logger, err)
		return
	}

	httputil.RespondList(w, len(posts), posts)
}

// ListPostsByUsername retrieves all posts by one author
// GET /api/v1/posts/profile/{username}
func (h *PostHandler) ListPostsByUsername(w http.ResponseWriter, r *http.Request) {
	username := r.PathValue("username")

	posts, err := h.postService.ListByUsername(r.Context(), username)
	if err != nil {
		httputil.RespondError(w, r, h.logger, err)
		return
	}

	httputil.RespondList(w, len(posts), posts)
}

// GetPost retrieves a single post
// GET /api/v1/posts/{postId}
func (h *PostHandler) GetPost(w http.ResponseWriter, r *http.Request) {
	post, err := h.postService.Get(r.Context(), r.PathValue("postId"))
	if err != nil {
		httputil.RespondError(w, r, h.logger, err)
		return
	}

	httputil.RespondData(w, http.StatusOK, post)
}

// CreatePost creates a new post
// POST /api/v1/posts
func (h *PostHandler) CreatePost(w http.ResponseWriter, r *http.Request) {
	identity, err := httputil.RequireIdentity(r)
	if err != nil {
		httputil.RespondError(w, r, h.logger, err)
		return
	}

	var req service.CreatePostRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, r, h.logger, err)
		return
	}

	post, err := h.postService.Create(r.Context(), identity.UserID, &req)
	if err != nil {
		httputil.RespondError(w, r, h.logger, err)
		return
	}

	httputil.RespondData(w, http.StatusCreated, post)
}

// UpdatePost updates an existing post
// PATCH /api/v1/posts/{postId}
func (h *PostHandler) UpdatePost(w http.ResponseWriter, r *http.Request) {
	identity, err := httputil.RequireIdentity(r)
	if err != nil {
		httputil.RespondError(w, r, h.logger, err)
		return
	}

	var req service.UpdatePostRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, r, h.logger, err)
		return
	}

	post, err := h.postService.Update(r.Context(), identity, r.PathValue("postId"), &req)
	if err != nil {
		httputil.RespondError(w, r, h.logger, err)
		return
	}

	httputil.RespondData(w, http.StatusOK, post)
}

// DeletePost deletes a post
// DELETE /api/v1/posts/{postId}
func (h *PostHandler) DeletePost(w http.ResponseWriter, r *http.Request) {
	identity, err := httputil.RequireIdentity(r)
	if err != nil {
		httputil.RespondError(w, r, h.logger, err)
		return
	}

	if err := h.postService.Delete(r.Context(), identity, r.PathValue("postId")); err != nil {
		httputil.RespondError(w, r, h.logger, err)
		return
	}

	httputil.RespondMessage(w, http.StatusOK, "Post deleted successfully!")
}
