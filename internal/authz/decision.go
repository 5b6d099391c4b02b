package authz

import "github.com/lillieharlow/Bloggy-API/internal/domain"

// DenyReason classifies why a mutation was refused. Every Deny carries
// one; the reason picks the HTTP status when the caller surfaces the
// denial as an error.
type DenyReason int

const (
	ReasonNone DenyReason = iota
	ReasonUnauthenticated
	ReasonForbidden
	ReasonBadRequest
)

// Decision is the outcome of an authorization check. Denial is a normal
// return value here, not an error: callers translate a Deny into the
// appropriately classified failure.
type Decision struct {
	Allowed bool
	Reason  DenyReason
	Message string
}

// Allow is the permissive decision.
func Allow() Decision {
	return Decision{Allowed: true}
}

// Deny refuses the mutation with a classified reason.
func Deny(reason DenyReason, message string) Decision {
	return Decision{Reason: reason, Message: message}
}

// Err converts a Deny into its classified API error. Allow yields nil.
func (d Decision) Err() error {
	if d.Allowed {
		return nil
	}
	switch d.Reason {
	case ReasonUnauthenticated:
		return domain.Unauthenticated(d.Message)
	case ReasonBadRequest:
		return domain.BadRequest(d.Message)
	default:
		return domain.Forbidden(d.Message)
	}
}
