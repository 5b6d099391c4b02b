package middleware

import (
	"net/http"
	"strings"

	"github.com/lillieharlow/Bloggy-API/internal/auth"
	"github.com/lillieharlow/Bloggy-API/internal/authz"
	"github.com/lillieharlow/Bloggy-API/internal/httputil"
)

// BearerToken extracts and verifies the Authorization header for every
// request, storing the outcome on the context. It never rejects a
// request itself: public routes must keep working with a stale token in
// the header, so the decision to demand an identity belongs to each
// protected handler.
func BearerToken(tokens *auth.TokenManager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if header == "" {
				next.ServeHTTP(w, r)
				return
			}

			raw := strings.TrimPrefix(header, "Bearer ")
			identity, err := tokens.Verify(raw)

			cred := httputil.Credential{Identity: identity, Err: err}
			if err != nil {
				cred.Identity = authz.Guest()
			}
			next.ServeHTTP(w, httputil.WithCredential(r, cred))
		})
	}
}
