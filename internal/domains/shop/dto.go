package shop

import (
	"slices"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
)

// AcceptedImageTypes are the MIME types allowed for product images.
var AcceptedImageTypes = []string{"image/jpeg", "image/png", "image/webp"}

// SaveProductRequest carries the form fields of the admin product
// editor. The image arrives as a separate multipart part and is
// optional on updates.
type SaveProductRequest struct {
	Name        string `form:"name"`
	Description string `form:"description"`
	Price       int64  `form:"price"`
	Category    string `form:"category"`
	Active      bool   `form:"active"`
}

func (r SaveProductRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.Required),
		validation.Field(&r.Price, validation.Min(int64(0))),
		validation.Field(&r.Category, validation.Required, validation.By(validCategory)),
	)
}

func validCategory(value interface{}) error {
	category, _ := value.(string)
	if !slices.Contains(Categories, category) {
		return ErrInvalidCategory
	}
	return nil
}

type ProductDTO struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Price       int64     `json:"price"`
	Category    string    `json:"category"`
	ImageURL    string    `json:"image_url"`
	Active      bool      `json:"active"`
	CreatedAt   time.Time `json:"created_at"`
}

func ToDTO(p *Product) ProductDTO {
	return ProductDTO{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		Category:    p.Category,
		ImageURL:    p.ImageURL,
		Active:      p.Active,
		CreatedAt:   p.CreatedAt,
	}
}
