package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/lillieharlow/Bloggy-API/internal/authz"
	"github.com/lillieharlow/Bloggy-API/internal/domain"
	"github.com/lillieharlow/Bloggy-API/internal/domain/models"
)

func strPtr(s string) *string { return &s }

func ownedPost() *models.Post {
	return &models.Post{
		ID:             "post-1",
		Title:          "A perfectly fine title",
		Body:           "Some body text.",
		AuthorID:       "user-1",
		AuthorUsername: "alice12345",
	}
}

func TestPostService_Create(t *testing.T) {
	repo := newFakePostRepo()
	svc := NewPostService(repo, testLogger())

	post, err := svc.Create(context.Background(), "user-1", &CreatePostRequest{
		Title: "A perfectly fine title",
		Body:  "Some body text.",
		Tags:  []string{"go", "blogging"},
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if post.ID == "" {
		t.Error("post ID not assigned")
	}
	if post.AuthorID != "user-1" {
		t.Errorf("AuthorID = %q", post.AuthorID)
	}
	if _, ok := repo.posts[post.ID]; !ok {
		t.Error("post not persisted")
	}
}

func TestPostService_CreateValidation(t *testing.T) {
	tests := []struct {
		name      string
		req       CreatePostRequest
		wantField string
	}{
		{"missing title", CreatePostRequest{Body: "b"}, "title"},
		{"short title", CreatePostRequest{Title: "abc", Body: "b"}, "title"},
		{"long title", CreatePostRequest{Title: strings.Repeat("x", 201), Body: "b"}, "title"},
		{"missing body", CreatePostRequest{Title: "A fine title"}, "body"},
		{"bad image url", CreatePostRequest{Title: "A fine title", Body: "b", Image: "ftp://x.png"}, "image"},
		{"image without extension", CreatePostRequest{Title: "A fine title", Body: "b", Image: "https://example.com/pic"}, "image"},
		{"too many tags", CreatePostRequest{Title: "A fine title", Body: "b", Tags: []string{"a", "b", "c", "d", "e", "f", "g", "h", "i", "j", "k"}}, "tags"},
		{"bad tag characters", CreatePostRequest{Title: "A fine title", Body: "b", Tags: []string{"no spaces here"}}, "tags"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewPostService(newFakePostRepo(), testLogger())
			_, err := svc.Create(context.Background(), "user-1", &tt.req)

			var fieldErrs validation.Errors
			if !errors.As(err, &fieldErrs) {
				t.Fatalf("error = %v, want validation.Errors", err)
			}
			if _, ok := fieldErrs[tt.wantField]; !ok {
				t.Errorf("no error for field %q, got %v", tt.wantField, fieldErrs)
			}
		})
	}
}

func TestPostService_CreateDuplicate(t *testing.T) {
	repo := newFakePostRepo(ownedPost())
	svc := NewPostService(repo, testLogger())

	_, err := svc.Create(context.Background(), "user-1", &CreatePostRequest{
		Title: "A perfectly fine title",
		Body:  "Different body.",
	})

	var apiErr *domain.Error
	if !errors.As(err, &apiErr) || apiErr.Kind != domain.KindConflict {
		t.Fatalf("error = %v, want Conflict", err)
	}
	if apiErr.Message != "This post already exists!" {
		t.Errorf("Message = %q", apiErr.Message)
	}
}

func TestPostService_Update(t *testing.T) {
	owner := authz.Authenticated("user-1", "alice12345")

	t.Run("owner patches title only", func(t *testing.T) {
		repo := newFakePostRepo(ownedPost())
		svc := NewPostService(repo, testLogger())

		post, err := svc.Update(context.Background(), owner, "post-1", &UpdatePostRequest{
			Title: strPtr("An updated but still fine title"),
		})
		if err != nil {
			t.Fatalf("Update: %v", err)
		}
		if post.Title != "An updated but still fine title" {
			t.Errorf("Title = %q", post.Title)
		}
		if post.Body != "Some body text." {
			t.Errorf("Body was clobbered: %q", post.Body)
		}
	})

	t.Run("merged result is re-validated", func(t *testing.T) {
		repo := newFakePostRepo(ownedPost())
		svc := NewPostService(repo, testLogger())

		_, err := svc.Update(context.Background(), owner, "post-1", &UpdatePostRequest{
			Title: strPtr("abc"),
		})
		var fieldErrs validation.Errors
		if !errors.As(err, &fieldErrs) {
			t.Fatalf("error = %v, want validation.Errors", err)
		}
		if len(repo.updated) != 0 {
			t.Error("invalid patch must not be persisted")
		}
	})

	t.Run("guest gets 401", func(t *testing.T) {
		svc := NewPostService(newFakePostRepo(ownedPost()), testLogger())
		_, err := svc.Update(context.Background(), authz.Guest(), "post-1", &UpdatePostRequest{})

		var apiErr *domain.Error
		if !errors.As(err, &apiErr) || apiErr.Kind != domain.KindUnauthenticated {
			t.Fatalf("error = %v, want Unauthenticated", err)
		}
	})

	t.Run("non-owner gets 403", func(t *testing.T) {
		svc := NewPostService(newFakePostRepo(ownedPost()), testLogger())
		_, err := svc.Update(context.Background(), authz.Authenticated("user-2", "bob"), "post-1", &UpdatePostRequest{})

		var apiErr *domain.Error
		if !errors.As(err, &apiErr) || apiErr.Kind != domain.KindForbidden {
			t.Fatalf("error = %v, want Forbidden", err)
		}
		if apiErr.Message != "Not authorized to make changes to this post." {
			t.Errorf("Message = %q", apiErr.Message)
		}
	})

	t.Run("missing post is 404 before authorization", func(t *testing.T) {
		svc := NewPostService(newFakePostRepo(), testLogger())
		_, err := svc.Update(context.Background(), authz.Guest(), "no-such-post", &UpdatePostRequest{})

		var apiErr *domain.Error
		if !errors.As(err, &apiErr) || apiErr.Kind != domain.KindNotFound {
			t.Fatalf("error = %v, want NotFound", err)
		}
	})
}

func TestPostService_Delete(t *testing.T) {
	t.Run("owner deletes", func(t *testing.T) {
		repo := newFakePostRepo(ownedPost())
		svc := NewPostService(repo, testLogger())

		if err := svc.Delete(context.Background(), authz.Authenticated("user-1", "alice12345"), "post-1"); err != nil {
			t.Fatalf("Delete: %v", err)
		}
		if len(repo.deleted) != 1 || repo.deleted[0] != "post-1" {
			t.Errorf("deleted = %v", repo.deleted)
		}
	})

	t.Run("non-owner is refused and nothing is deleted", func(t *testing.T) {
		repo := newFakePostRepo(ownedPost())
		svc := NewPostService(repo, testLogger())

		err := svc.Delete(context.Background(), authz.Authenticated("user-2", "bob"), "post-1")
		var apiErr *domain.Error
		if !errors.As(err, &apiErr) || apiErr.Kind != domain.KindForbidden {
			t.Fatalf("error = %v, want Forbidden", err)
		}
		if len(repo.deleted) != 0 {
			t.Error("post was deleted despite the refusal")
		}
	})
}

func TestPostService_ListByUsername(t *testing.T) {
	repo := newFakePostRepo(ownedPost())
	svc := NewPostService(repo, testLogger())

	posts, err := svc.ListByUsername(context.Background(), "alice12345")
	if err != nil {
		t.Fatalf("ListByUsername: %v", err)
	}
	if len(posts) != 1 {
		t.Errorf("got %d posts, want 1", len(posts))
	}

	_, err = svc.ListByUsername(context.Background(), "nobody")
	var apiErr *domain.Error
	if !errors.As(err, &apiErr) || apiErr.Kind != domain.KindNotFound {
		t.Fatalf("error = %v, want NotFound", err)
	}
	if apiErr.Message != "No posts found for nobody." {
		t.Errorf("Message = %q", apiErr.Message)
	}
}
