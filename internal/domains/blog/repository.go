package blog

import (
	"context"

	"github.com/google/uuid"
)

// Repository is the data access contract for blog posts. Lists are
// ordered by creation time, newest first.
type Repository interface {
	List(ctx context.Context) ([]BlogPost, error)
	ListPublished(ctx context.Context) ([]BlogPost, error)
	Get(ctx context.Context, id uuid.UUID) (*BlogPost, error)
	GetBySlug(ctx context.Context, slug string) (*BlogPost, error)
	Insert(ctx context.Context, post *BlogPost) error
	Update(ctx context.Context, post *BlogPost) error
	Delete(ctx context.Context, id uuid.UUID) error
}
