// Package authz decides whether a requested mutation on a post or a
// comment may proceed. It is deliberately free of I/O: callers perform
// the lookups, hand in the resources, and act on the returned decision.
package authz

// Identity is the resolved caller identity for one request: either an
// authenticated user (verified bearer token) or a guest.
type Identity struct {
	UserID   string
	Username string
	guest    bool
}

// Authenticated builds the identity of a verified user.
func Authenticated(userID, username string) Identity {
	return Identity{UserID: userID, Username: username}
}

// Guest builds the identity of an unauthenticated caller.
func Guest() Identity {
	return Identity{guest: true}
}

// IsGuest reports whether the request carries no verified identity.
func (i Identity) IsGuest() bool {
	return i.guest || i.UserID == ""
}
