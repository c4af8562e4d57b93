package shop

import (
	"context"

	"github.com/google/uuid"
)

// Repository is the data access contract for products. Lists are
// ordered by creation time, newest first.
type Repository interface {
	List(ctx context.Context) ([]Product, error)
	ListActive(ctx context.Context) ([]Product, error)
	Get(ctx context.Context, id uuid.UUID) (*Product, error)
	Insert(ctx context.Context, product *Product) error
	Update(ctx context.Context, product *Product) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// MediaStorage is the slice of object storage the shop needs for
// product images.
type MediaStorage interface {
	Upload(ctx context.Context, key string, data []byte, contentType string) (string, error)
	Delete(ctx context.Context, key string) error
	KeyFromURL(url string) string
}
