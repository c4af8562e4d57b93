package photos

import (
	"context"

	"github.com/google/uuid"

	"github.com/chrisakin/Katherine-Akintade-Website/internal/shared/upload"
)

type Service interface {
	ListHero(ctx context.Context) ([]HeroImageDTO, error)
	ListGallery(ctx context.Context) ([]GalleryImageDTO, error)

	// ActiveHero returns the first active hero image, or nil when none is
	// active. Zero or several active rows are tolerated.
	ActiveHero(ctx context.Context) (*HeroImageDTO, error)

	// Uploads store the file first; the record write only happens after
	// the upload succeeded.
	UploadHero(ctx context.Context, file *upload.File) (*HeroImageDTO, error)
	UploadGallery(ctx context.Context, file *upload.File, req GalleryUploadRequest) (*GalleryImageDTO, error)

	// ActivateHero deactivates every active row, then activates the
	// target. The two writes are not atomic; a failure in between leaves
	// no active hero, which readers must tolerate.
	ActivateHero(ctx context.Context, id uuid.UUID) error

	DeleteHero(ctx context.Context, id uuid.UUID) error
	DeleteGallery(ctx context.Context, id uuid.UUID) error
}
