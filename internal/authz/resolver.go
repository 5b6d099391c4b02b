package authz

import (
	"errors"

	"github.com/lillieharlow/Bloggy-API/internal/domain/models"
)

// ErrNilResource signals a programming-contract violation: the caller
// passed a resource it never looked up. Missing resources are a NotFound
// condition decided before authorization, so a nil here is always a bug.
var ErrNilResource = errors.New("authz: nil resource reference")

// ResolvePostMutation decides whether the caller may update or delete a
// post. Only the recorded author may mutate their post; a guest is
// refused as unauthenticated (401), any other signed-in user as
// forbidden (403).
func ResolvePostMutation(identity Identity, post *models.Post) (Decision, error) {
	if post == nil {
		return Decision{}, ErrNilResource
	}
	if identity.IsGuest() {
		return Deny(ReasonUnauthenticated, "Missing token"), nil
	}
	if identity.UserID != post.AuthorID {
		return Deny(ReasonForbidden, "Not authorized to make changes to this post."), nil
	}
	return Allow(), nil
}

// ResolveCommentDeletion decides whether the caller may delete a comment
// on the given parent post. First match wins:
//
//  1. the signed-in owner of the parent post may delete any comment on
//     it, regardless of who wrote the comment;
//  2. otherwise an author name must be supplied to prove authorship when
//     not signed in; absence is a bad request, not a denial of rights;
//  3. a supplied name that does not exactly match the comment's author
//     is refused;
//  4. an exact match proves authorship and is allowed. The name-string
//     proof is spoofable and kept that way for compatibility.
func ResolveCommentDeletion(identity Identity, guestAuthor string, comment *models.Comment, parentPost *models.Post) (Decision, error) {
	if comment == nil || parentPost == nil {
		return Decision{}, ErrNilResource
	}
	if !identity.IsGuest() && identity.UserID == parentPost.AuthorID {
		return Allow(), nil
	}
	if guestAuthor == "" {
		return Deny(ReasonBadRequest, "An author name must be supplied to prove authorship when not signed in."), nil
	}
	if guestAuthor != comment.Author {
		return Deny(ReasonForbidden, "Not authorized to delete this comment."), nil
	}
	return Allow(), nil
}
