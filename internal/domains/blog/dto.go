package blog

import (
	"encoding/json"
	"slices"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
)

// SavePostRequest is the draft submitted from the editor, for both new
// posts and edits.
type SavePostRequest struct {
	Title     string          `json:"title"`
	Content   json.RawMessage `json:"content"`
	Excerpt   string          `json:"excerpt"`
	Category  string          `json:"category"`
	Published bool            `json:"published"`
}

func (r SavePostRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title, validation.Required),
		validation.Field(&r.Content, validation.Required.Error("content is required")),
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

type BlogPostDTO struct {
	ID          uuid.UUID       `json:"id"`
	Title       string          `json:"title"`
	Slug        string          `json:"slug"`
	Content     json.RawMessage `json:"content"`
	Excerpt     string          `json:"excerpt"`
	Category    string          `json:"category"`
	Published   bool            `json:"published"`
	PublishedAt *time.Time      `json:"published_at"`
	CreatedAt   time.Time       `json:"created_at"`
}

func ToDTO(p *BlogPost) BlogPostDTO {
	return BlogPostDTO{
		ID:          p.ID,
		Title:       p.Title,
		Slug:        p.Slug,
		Content:     p.Content,
		Excerpt:     p.Excerpt,
		Category:    p.Category,
		Published:   p.Published,
		PublishedAt: p.PublishedAt,
		CreatedAt:   p.CreatedAt,
	}
}
