package httputil

import (
	"context"
	"net/http"

	"github.com/lillieharlow/Bloggy-API/internal/authz"
	"github.com/lillieharlow/Bloggy-API/internal/domain"
)

// Context key type to avoid collisions
type contextKey string

const credentialKey contextKey = "credential"

// Credential is the outcome of bearer-token extraction for one request.
// Exactly one of the three states holds: no token was presented, a token
// was presented but failed verification, or the identity is verified.
type Credential struct {
	Identity authz.Identity
	Err      error // verification failure, nil when absent or verified
}

// WithCredential stores the extraction outcome on the request context.
func WithCredential(r *http.Request, cred Credential) *http.Request {
	return r.WithContext(context.WithValue(r.Context(), credentialKey, cred))
}

// RequireIdentity returns the verified identity or the classified
// failure a protected operation must surface: a missing header is
// "Missing token", a bad token is "Invalid token", both 401.
func RequireIdentity(r *http.Request) (authz.Identity, error) {
	cred, ok := r.Context().Value(credentialKey).(Credential)
	if !ok {
		return authz.Guest(), domain.Unauthenticated("Missing token")
	}
	if cred.Err != nil {
		return authz.Guest(), cred.Err
	}
	if cred.Identity.IsGuest() {
		return authz.Guest(), domain.Unauthenticated("Missing token")
	}
	return cred.Identity, nil
}

// OptionalIdentity returns the verified identity when present and a
// guest otherwise. Public routes use it so a stale token in the header
// never breaks an operation that needs no identity.
func OptionalIdentity(r *http.Request) authz.Identity {
	cred, ok := r.Context().Value(credentialKey).(Credential)
	if !ok || cred.Err != nil {
		return authz.Guest()
	}
	return cred.Identity
}
