package middleware

import (
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/lillieharlow/Bloggy-API/internal/domain"
	"github.com/lillieharlow/Bloggy-API/internal/httputil"
)

// Recovery recovers from handler panics and surfaces them as normalized
// 500 responses. It also installs the response tracker every downstream
// writer shares, so a panic after a partial write is logged instead of
// corrupting the body with a second response.
func Recovery(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tracked := httputil.Track(w)

			defer func() {
				if rec := recover(); rec != nil {
					logger.Error("panic recovered",
						"error", rec,
						"path", r.URL.Path,
						"method", r.Method,
						"stack", string(debug.Stack()),
					)

					err := domain.Internal(fmt.Errorf("panic: %v", rec))
					httputil.RespondError(tracked, r, logger, err)
				}
			}()

			next.ServeHTTP(tracked, r)
		})
	}
}
