package podcast

import (
	"context"

	"github.com/google/uuid"
)

// Repository is the data access contract for episodes, newest first.
type Repository interface {
	List(ctx context.Context) ([]Episode, error)
	ListActive(ctx context.Context) ([]Episode, error)
	Get(ctx context.Context, id uuid.UUID) (*Episode, error)
	Insert(ctx context.Context, episode *Episode) error
	Update(ctx context.Context, episode *Episode) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// MediaStorage is the slice of object storage episodes need.
type MediaStorage interface {
	Upload(ctx context.Context, key string, data []byte, contentType string) (string, error)
	Delete(ctx context.Context, key string) error
	KeyFromURL(url string) string
}
