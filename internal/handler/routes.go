package handler

import (
	"log/slog"
	"net/http"

	"github.com/lillieharlow/Bloggy-API/internal/domain"
	"github.com/lillieharlow/Bloggy-API/internal/httputil"
)

// Handlers groups everything the route table needs.
type Handlers struct {
	Auth    *AuthHandler
	Post    *PostHandler
	Comment *CommentHandler
	Profile *ProfileHandler
	Utils   *UtilsHandler
	Logger  *slog.Logger
}

// NewRouter builds the route table. Every known path also registers a
// methodless fallback so an unsupported verb on a real route yields the
// canonical 405 envelope instead of the mux default; everything else
// falls through to the JSON 404 catch-all.
func NewRouter(h Handlers) http.Handler {
	mux := http.NewServeMux()

	// Utils
	mux.HandleFunc("GET /api/v1/utils", h.Utils.Welcome)
	mux.HandleFunc("GET /api/v1/utils/databaseHealth", h.Utils.DatabaseHealth)
	mux.HandleFunc("/api/v1/utils", h.methodNotAllowed)
	mux.HandleFunc("/api/v1/utils/databaseHealth", h.methodNotAllowed)

	// Auth
	mux.HandleFunc("POST /api/v1/auth/signup", h.Auth.Signup)
	mux.HandleFunc("POST /api/v1/auth/login", h.Auth.Login)
	mux.HandleFunc("/api/v1/auth/signup", h.methodNotAllowed)
	mux.HandleFunc("/api/v1/auth/login", h.methodNotAllowed)

	// Posts
	mux.HandleFunc("GET /api/v1/posts", h.Post.ListPosts)
	mux.HandleFunc("POST /api/v1/posts", h.Post.CreatePost)
	mux.HandleFunc("GET /api/v1/posts/profile/{username}", h.Post.ListPostsByUsername)
	mux.HandleFunc("GET /api/v1/posts/{postId}", h.Post.GetPost)
	mux.HandleFunc("PATCH /api/v1/posts/{postId}", h.Post.UpdatePost)
	mux.HandleFunc("DELETE /api/v1/posts/{postId}", h.Post.DeletePost)
	mux.HandleFunc("/api/v1/posts", h.methodNotAllowed)
	mux.HandleFunc("/api/v1/posts/profile/{username}", h.methodNotAllowed)
	mux.HandleFunc("/api/v1/posts/{postId}", h.methodNotAllowed)

	// Comments, nested under posts
	mux.HandleFunc("GET /api/v1/posts/{postId}/comments", h.Comment.ListComments)
	mux.HandleFunc("POST /api/v1/posts/{postId}/comments", h.Comment.CreateComment)
	mux.HandleFunc("DELETE /api/v1/posts/{postId}/comments/{commentId}", h.Comment.DeleteComment)
	mux.HandleFunc("/api/v1/posts/{postId}/comments", h.methodNotAllowed)
	mux.HandleFunc("/api/v1/posts/{postId}/comments/{commentId}", h.methodNotAllowed)

	// Profile
	mux.HandleFunc("GET /api/v1/profile/{id}", h.Profile.GetProfile)
	mux.HandleFunc("POST /api/v1/profile", h.Profile.CreateProfile)
	mux.HandleFunc("PATCH /api/v1/profile", h.Profile.UpdateProfile)
	mux.HandleFunc("DELETE /api/v1/profile", h.Profile.DeleteProfile)
	mux.HandleFunc("/api/v1/profile", h.methodNotAllowed)
	mux.HandleFunc("/api/v1/profile/{id}", h.methodNotAllowed)

	// Everything else
	mux.HandleFunc("/", h.noRoute)

	return mux
}

// methodNotAllowed answers a known path hit with an unsupported verb.
func (h Handlers) methodNotAllowed(w http.ResponseWriter, r *http.Request) {
	httputil.RespondError(w, r, h.Logger, domain.MethodNotAllowed(r.Method, r.URL.Path))
}

// noRoute answers paths that match nothing.
func (h Handlers) noRoute(w http.ResponseWriter, r *http.Request) {
	httputil.RespondJSON(w, http.StatusNotFound, map[string]interface{}{
		"success":       false,
		"message":       "No route with that path found!",
		"attemptedPath": r.URL.Path,
	})
}
