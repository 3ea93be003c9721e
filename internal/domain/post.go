package domain

import (
	"context"
	"time"
)

// Post is a blog entry. There is no authorship field: any authenticated
// session may create, edit, or delete any post.
type Post struct {
	ID        int64
	Title     string
	Body      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// PostRepository defines persistence operations for posts.
// Update and Delete are idempotent: operating on an id that does not
// exist is not an error.
type PostRepository interface {
	Create(ctx context.Context, post *Post) error
	GetByID(ctx context.Context, id int64) (*Post, error)
	List(ctx context.Context) ([]Post, error)
	Update(ctx context.Context, post *Post) error
	Delete(ctx context.Context, id int64) error
}
