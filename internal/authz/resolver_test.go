package authz

import (
	"errors"
	"testing"

	"github.com/lillieharlow/Bloggy-API/internal/domain"
	"github.com/lillieharlow/Bloggy-API/internal/domain/models"
)

func TestResolvePostMutation(t *testing.T) {
	post := &models.Post{ID: "post-1", AuthorID: "user-1"}

	tests := []struct {
		name        string
		identity    Identity
		wantAllowed bool
		wantReason  DenyReason
		wantMessage string
	}{
		{
			name:        "owner may mutate",
			identity:    Authenticated("user-1", "alice"),
			wantAllowed: true,
		},
		{
			name:        "guest is unauthenticated",
			identity:    Guest(),
			wantReason:  ReasonUnauthenticated,
			wantMessage: "Missing token",
		},
		{
			name:        "other user is forbidden",
			identity:    Authenticated("user-2", "mallory"),
			wantReason:  ReasonForbidden,
			wantMessage: "Not authorized to make changes to this post.",
		},
		{
			name:        "empty user id counts as guest",
			identity:    Authenticated("", "ghost"),
			wantReason:  ReasonUnauthenticated,
			wantMessage: "Missing token",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			decision, err := ResolvePostMutation(tt.identity, post)
			if err != nil {
				t.Fatalf("ResolvePostMutation() unexpected error: %v", err)
			}
			if decision.Allowed != tt.wantAllowed {
				t.Errorf("Allowed = %v, want %v", decision.Allowed, tt.wantAllowed)
			}
			if !tt.wantAllowed {
				if decision.Reason != tt.wantReason {
					t.Errorf("Reason = %v, want %v", decision.Reason, tt.wantReason)
				}
				if decision.Message != tt.wantMessage {
					t.Errorf("Message = %q, want %q", decision.Message, tt.wantMessage)
				}
			}
		})
	}
}

func TestResolvePostMutation_NilPost(t *testing.T) {
	_, err := ResolvePostMutation(Authenticated("user-1", "alice"), nil)
	if !errors.Is(err, ErrNilResource) {
		t.Fatalf("ResolvePostMutation(nil) error = %v, want ErrNilResource", err)
	}
}

func TestResolveCommentDeletion(t *testing.T) {
	parentPost := &models.Post{ID: "post-1", AuthorID: "owner-1"}
	comment := &models.Comment{ID: "comment-1", PostID: "post-1", Author: "casual-reader"}

	tests := []struct {
		name        string
		identity    Identity
		guestAuthor string
		wantAllowed bool
		wantReason  DenyReason
		wantMessage string
	}{
		{
			name:        "post owner deletes any comment",
			identity:    Authenticated("owner-1", "alice"),
			wantAllowed: true,
		},
		{
			name:        "post owner wins even with mismatched claimed name",
			identity:    Authenticated("owner-1", "alice"),
			guestAuthor: "somebody-else",
			wantAllowed: true,
		},
		{
			name:        "guest without a name is a bad request",
			identity:    Guest(),
			wantReason:  ReasonBadRequest,
			wantMessage: "An author name must be supplied to prove authorship when not signed in.",
		},
		{
			name:        "guest with mismatched name is forbidden",
			identity:    Guest(),
			guestAuthor: "casual-reade",
			wantReason:  ReasonForbidden,
			wantMessage: "Not authorized to delete this comment.",
		},
		{
			name:        "guest with exact name match deletes",
			identity:    Guest(),
			guestAuthor: "casual-reader",
			wantAllowed: true,
		},
		{
			name:        "signed-in non-owner falls through to name proof",
			identity:    Authenticated("user-2", "bob"),
			guestAuthor: "casual-reader",
			wantAllowed: true,
		},
		{
			name:       "signed-in non-owner without a name is a bad request",
			identity:   Authenticated("user-2", "bob"),
			wantReason: ReasonBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			decision, err := ResolveCommentDeletion(tt.identity, tt.guestAuthor, comment, parentPost)
			if err != nil {
				t.Fatalf("ResolveCommentDeletion() unexpected error: %v", err)
			}
			if decision.Allowed != tt.wantAllowed {
				t.Errorf("Allowed = %v, want %v", decision.Allowed, tt.wantAllowed)
			}
			if !tt.wantAllowed && decision.Reason != tt.wantReason {
				t.Errorf("Reason = %v, want %v", decision.Reason, tt.wantReason)
			}
			if tt.wantMessage != "" && decision.Message != tt.wantMessage {
				t.Errorf("Message = %q, want %q", decision.Message, tt.wantMessage)
			}
		})
	}
}

func TestResolveCommentDeletion_NilResources(t *testing.T) {
	post := &models.Post{ID: "post-1", AuthorID: "owner-1"}
	comment := &models.Comment{ID: "comment-1", Author: "anyone"}

	if _, err := ResolveCommentDeletion(Guest(), "anyone", nil, post); !errors.Is(err, ErrNilResource) {
		t.Errorf("nil comment: error = %v, want ErrNilResource", err)
	}
	if _, err := ResolveCommentDeletion(Guest(), "anyone", comment, nil); !errors.Is(err, ErrNilResource) {
		t.Errorf("nil post: error = %v, want ErrNilResource", err)
	}
}

func TestDecisionErr(t *testing.T) {
	tests := []struct {
		name     string
		decision Decision
		wantKind domain.ErrorKind
		wantNil  bool
	}{
		{"allow yields nil", Allow(), 0, true},
		{"unauthenticated", Deny(ReasonUnauthenticated, "Missing token"), domain.KindUnauthenticated, false},
		{"forbidden", Deny(ReasonForbidden, "no"), domain.KindForbidden, false},
		{"bad request", Deny(ReasonBadRequest, "name it"), domain.KindBadRequest, false},
		{"unclassified falls back to forbidden", Deny(ReasonNone, "no"), domain.KindForbidden, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.decision.Err()
			if tt.wantNil {
				if err != nil {
					t.Fatalf("Err() = %v, want nil", err)
				}
				return
			}

			var apiErr *domain.Error
			if !errors.As(err, &apiErr) {
				t.Fatalf("Err() = %T, want *domain.Error", err)
			}
			if apiErr.Kind != tt.wantKind {
				t.Errorf("Kind = %v, want %v", apiErr.Kind, tt.wantKind)
			}
		})
	}
}
