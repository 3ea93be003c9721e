package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/mvaldren/inkwell/internal/domain"
)

// PostService handles post CRUD and validation.
type PostService struct {
	posts domain.PostRepository
}

// NewPostService creates a new PostService.
func NewPostService(posts domain.PostRepository) *PostService {
	return &PostService{posts: posts}
}

// Create creates a new post. The title is required; the body may be empty.
func (s *PostService) Create(ctx context.Context, title, body string) (*domain.Post, error) {
	if strings.TrimSpace(title) == "" {
		return nil, fmt.Errorf("%w: title is required", domain.ErrInvalidInput)
	}

	post := &domain.Post{Title: title, Body: body}
	if err := s.posts.Create(ctx, post); err != nil {
		return nil, fmt.Errorf("create post: %w", err)
	}
	return post, nil
}

// GetByID returns a post by id.
func (s *PostService) GetByID(ctx context.Context, id int64) (*domain.Post, error) {
	return s.posts.GetByID(ctx, id)
}

// List returns all posts, newest first.
func (s *PostService) List(ctx context.Context) ([]domain.Post, error) {
	return s.posts.List(ctx)
}

// Update replaces a post's title and body and advances its updated
// timestamp. Updating an id that does not exist is a no-op.
func (s *PostService) Update(ctx context.Context, id int64, title, body string) error {
	if strings.TrimSpace(title) == "" {
		return fmt.Errorf("%w: title is required", domain.ErrInvalidInput)
	}

	post := &domain.Post{ID: id, Title: title, Body: body}
	if err := s.posts.Update(ctx, post); err != nil {
		return fmt.Errorf("update post: %w", err)
	}
	return nil
}

// Delete removes a post. Deleting an id that does not exist is a no-op.
func (s *PostService) Delete(ctx context.Context, id int64) error {
	return s.posts.Delete(ctx, id)
}
