package photos

import (
	"time"

	"github.com/google/uuid"
)

// AcceptedImageTypes is the MIME allow-list for uploads.
var AcceptedImageTypes = []string{"image/jpeg", "image/png", "image/webp"}

type HeroImageDTO struct {
	ID        uuid.UUID `json:"id"`
	URL       string    `json:"url"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type GalleryImageDTO struct {
	ID           uuid.UUID `json:"id"`
	URL          string    `json:"url"`
	Description  string    `json:"description"`
	Category     string    `json:"category"`
	Photographer string    `json:"photographer"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// GalleryUploadRequest carries the descriptive metadata of a gallery
// upload. All fields are optional.
type GalleryUploadRequest struct {
	Description  string `form:"description"`
	Category     string `form:"category"`
	Photographer string `form:"photographer"`
}

func ToHeroDTO(h *HeroImage) HeroImageDTO {
	return HeroImageDTO{
		ID:        h.ID,
		URL:       h.URL,
		Active:    h.Active,
		CreatedAt: h.CreatedAt,
		UpdatedAt: h.UpdatedAt,
	}
}

func ToGalleryDTO(g *GalleryImage) GalleryImageDTO {
	return GalleryImageDTO{
		ID:           g.ID,
		URL:          g.URL,
		Description:  g.Description,
		Category:     g.Category,
		Photographer: g.Photographer,
		CreatedAt:    g.CreatedAt,
		UpdatedAt:    g.UpdatedAt,
	}
}
