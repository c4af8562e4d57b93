package podcast

import (
	"time"

	"github.com/google/uuid"
)

// MediaKind is derived from the uploaded file's MIME prefix, never
// chosen by the admin.
type MediaKind string

const (
	MediaAudio MediaKind = "audio"
	MediaVideo MediaKind = "video"
)

// Episode is one podcast entry. Duration is free text, it is shown as
// typed and never parsed. ThumbnailURL is only set for video episodes.
type Episode struct {
	ID           uuid.UUID
	Title        string
	Description  string
	GuestName    string
	MediaKind    MediaKind
	MediaURL     string
	ThumbnailURL string
	Duration     string
	Active       bool
	CreatedAt    time.Time
}
