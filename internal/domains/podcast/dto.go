package podcast

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
)

// AcceptedMediaTypes are the MIME types an episode file may carry. The
// kind is inferred from the prefix of whichever type matches.
var AcceptedMediaTypes = []string{
	"audio/mpeg",
	"audio/mp3",
	"audio/wav",
	"video/mp4",
	"video/webm",
}

// AcceptedThumbnailTypes mirror the image allow-list used elsewhere.
var AcceptedThumbnailTypes = []string{"image/jpeg", "image/png", "image/webp"}

// SaveEpisodeRequest carries the form fields of the episode editor.
// Media and thumbnail arrive as separate multipart parts.
type SaveEpisodeRequest struct {
	Title       string `form:"title"`
	Description string `form:"description"`
	GuestName   string `form:"guest_name"`
	Duration    string `form:"duration"`
	Active      bool   `form:"active"`
}

func (r SaveEpisodeRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title, validation.Required),
	)
}

type EpisodeDTO struct {
	ID           uuid.UUID `json:"id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	GuestName    string    `json:"guest_name"`
	MediaKind    MediaKind `json:"media_kind"`
	MediaURL     string    `json:"media_url"`
	ThumbnailURL string    `json:"thumbnail_url"`
	Duration     string    `json:"duration"`
	Active       bool      `json:"active"`
	CreatedAt    time.Time `json:"created_at"`
}

func ToDTO(e *Episode) EpisodeDTO {
	return EpisodeDTO{
		ID:           e.ID,
		Title:        e.Title,
		Description:  e.Description,
		GuestName:    e.GuestName,
		MediaKind:    e.MediaKind,
		MediaURL:     e.MediaURL,
		ThumbnailURL: e.ThumbnailURL,
		Duration:     e.Duration,
		Active:       e.Active,
		CreatedAt:    e.CreatedAt,
	}
}
