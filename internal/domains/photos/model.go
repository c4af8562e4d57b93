package photos

import (
	"time"

	"github.com/google/uuid"
)

// HeroImage rotates on the landing page. At most one row should be active
// at a time; the activation sequence enforces this, not the database.
type HeroImage struct {
	ID        uuid.UUID
	URL       string
	Active    bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// GalleryImage is a photograph in the public gallery.
type GalleryImage struct {
	ID           uuid.UUID
	URL          string
	Description  string
	Category     string
	Photographer string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
