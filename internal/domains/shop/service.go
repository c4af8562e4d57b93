package shop

import (
	"context"

	"github.com/google/uuid"

	"github.com/chrisakin/Katherine-Akintade-Website/internal/shared/upload"
)

type Service interface {
	List(ctx context.Context) ([]ProductDTO, error)
	ListActive(ctx context.Context) ([]ProductDTO, error)
	Get(ctx context.Context, id uuid.UUID) (*ProductDTO, error)

	// Create stores the image first, when one is given, and only then
	// writes the product row. Update behaves the same; a new image
	// replaces the old one in storage.
	Create(ctx context.Context, req SaveProductRequest, image *upload.File) (*ProductDTO, error)
	Update(ctx context.Context, id uuid.UUID, req SaveProductRequest, image *upload.File) (*ProductDTO, error)

	Delete(ctx context.Context, id uuid.UUID) error
}
