package photos

import (
	"context"

	"github.com/google/uuid"
)

// Repository is the data access contract for hero and gallery images.
// Lists are ordered by creation time, newest first.
type Repository interface {
	ListHero(ctx context.Context) ([]HeroImage, error)
	GetHero(ctx context.Context, id uuid.UUID) (*HeroImage, error)
	InsertHero(ctx context.Context, img *HeroImage) error
	DeactivateActiveHero(ctx context.Context) error
	SetHeroActive(ctx context.Context, id uuid.UUID) error
	DeleteHero(ctx context.Context, id uuid.UUID) error

	ListGallery(ctx context.Context) ([]GalleryImage, error)
	GetGallery(ctx context.Context, id uuid.UUID) (*GalleryImage, error)
	InsertGallery(ctx context.Context, img *GalleryImage) error
	DeleteGallery(ctx context.Context, id uuid.UUID) error
}

// MediaStorage is the slice of object storage this domain needs.
// Satisfied by *storage.MinIOStorage.
type MediaStorage interface {
	Upload(ctx context.Context, key string, data []byte, contentType string) (string, error)
	Delete(ctx context.Context, key string) error
	KeyFromURL(url string) string
}
