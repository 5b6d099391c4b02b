package service

import (
	"context"
	"io"
	"log/slog"
	"strings"

	"github.com/lillieharlow/Bloggy-API/internal/domain"
	"github.com/lillieharlow/Bloggy-API/internal/domain/models"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// fakeUserRepo is an in-memory UserRepository.
type fakeUserRepo struct {
	users     map[string]*models.User // by ID
	createErr error
	created   []*models.User
}

func newFakeUserRepo(users ...*models.User) *fakeUserRepo {
	r := &fakeUserRepo{users: make(map[string]*models.User)}
	for _, u := range users {
		r.users[u.ID] = u
	}
	return r
}

func (r *fakeUserRepo) Create(ctx context.Context, user *models.User) error {
	if r.createErr != nil {
		return r.createErr
	}
	for _, existing := range r.users {
		if existing.Email == user.Email {
			return domain.Conflict("Email already in use")
		}
		if existing.Username == user.Username {
			return domain.Conflict("Username already in use")
		}
	}
	r.users[user.ID] = user
	r.created = append(r.created, user)
	return nil
}

func (r *fakeUserRepo) GetByID(ctx context.Context, id string) (*models.User, error) {
	user, ok := r.users[id]
	if !ok {
		return nil, domain.NotFound("User not found.")
	}
	return user, nil
}

func (r *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	for _, user := range r.users {
		if user.Email == email {
			return user, nil
		}
	}
	return nil, domain.NotFound("User not found.")
}

func (r *fakeUserRepo) UpdateProfile(ctx context.Context, userID string, profile *models.Profile) error {
	user, ok := r.users[userID]
	if !ok {
		return domain.NotFound("User not found.")
	}
	user.Profile = profile
	return nil
}

func (r *fakeUserRepo) ClearProfile(ctx context.Context, userID string) error {
	user, ok := r.users[userID]
	if !ok {
		return domain.NotFound("User not found.")
	}
	user.Profile = nil
	return nil
}

// fakePostRepo is an in-memory PostRepository.
type fakePostRepo struct {
	posts   map[string]*models.Post
	updated []*models.Post
	deleted []string
}

func newFakePostRepo(posts ...*models.Post) *fakePostRepo {
	r := &fakePostRepo{posts: make(map[string]*models.Post)}
	for _, p := range posts {
		r.posts[p.ID] = p
	}
	return r
}

func (r *fakePostRepo) Create(ctx context.Context, post *models.Post) error {
	for _, existing := range r.posts {
		if existing.Title == post.Title && existing.AuthorID == post.AuthorID {
			return domain.Conflict("This post already exists!")
		}
	}
	r.posts[post.ID] = post
	return nil
}

func (r *fakePostRepo) GetByID(ctx context.Context, id string) (*models.Post, error) {
	post, ok := r.posts[id]
	if !ok {
		return nil, domain.NotFound("Post not found.")
	}
	copied := *post
	return &copied, nil
}

func (r *fakePostRepo) List(ctx context.Context) ([]models.Post, error) {
	posts := make([]models.Post, 0, len(r.posts))
	for _, p := range r.posts {
		posts = append(posts, *p)
	}
	return posts, nil
}

func (r *fakePostRepo) ListByUsername(ctx context.Context, username string) ([]models.Post, error) {
	var posts []models.Post
	for _, p := range r.posts {
		if p.AuthorUsername == username {
			posts = append(posts, *p)
		}
	}
	return posts, nil
}

func (r *fakePostRepo) Update(ctx context.Context, post *models.Post) error {
	if _, ok := r.posts[post.ID]; !ok {
		return domain.NotFound("Post not found.")
	}
	copied := *post
	r.posts[post.ID] = &copied
	r.updated = append(r.updated, &copied)
	return nil
}

func (r *fakePostRepo) Delete(ctx context.Context, id string) error {
	if _, ok := r.posts[id]; !ok {
		return domain.NotFound("Post not found.")
	}
	delete(r.posts, id)
	r.deleted = append(r.deleted, id)
	return nil
}

// fakeCommentRepo is an in-memory CommentRepository.
type fakeCommentRepo struct {
	comments map[string]*models.Comment
	deleted  []string
}

func newFakeCommentRepo(comments ...*models.Comment) *fakeCommentRepo {
	r := &fakeCommentRepo{comments: make(map[string]*models.Comment)}
	for _, c := range comments {
		r.comments[c.ID] = c
	}
	return r
}

func (r *fakeCommentRepo) Create(ctx context.Context, comment *models.Comment) error {
	r.comments[comment.ID] = comment
	return nil
}

func (r *fakeCommentRepo) GetByID(ctx context.Context, id, postID string) (*models.Comment, error) {
	comment, ok := r.comments[id]
	if !ok || comment.PostID != postID {
		return nil, domain.NotFound("Comment not found.")
	}
	return comment, nil
}

func (r *fakeCommentRepo) ListByPost(ctx context.Context, postID string) ([]models.Comment, error) {
	comments := make([]models.Comment, 0)
	for _, c := range r.comments {
		if c.PostID == postID {
			comments = append(comments, *c)
		}
	}
	return comments, nil
}

func (r *fakeCommentRepo) ExistsDuplicate(ctx context.Context, postID, author, text string) (bool, error) {
	for _, c := range r.comments {
		if c.PostID == postID && c.Author == author && strings.TrimSpace(c.Text) == strings.TrimSpace(text) {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeCommentRepo) Delete(ctx context.Context, id string) error {
	if _, ok := r.comments[id]; !ok {
		return domain.NotFound("Comment not found.")
	}
	delete(r.comments, id)
	r.deleted = append(r.deleted, id)
	return nil
}
