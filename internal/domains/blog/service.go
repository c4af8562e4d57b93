package blog

import (
	"context"

	"github.com/google/uuid"
)

type Service interface {
	List(ctx context.Context) ([]BlogPostDTO, error)
	ListPublished(ctx context.Context) ([]BlogPostDTO, error)
	GetBySlug(ctx context.Context, slug string) (*BlogPostDTO, error)

	// Save inserts when id is nil, updates otherwise. The slug is derived
	// from the title on every save, and published_at is set exactly when
	// the draft is published, cleared otherwise.
	Save(ctx context.Context, id *uuid.UUID, req SavePostRequest) (*BlogPostDTO, error)

	Delete(ctx context.Context, id uuid.UUID) error
}
