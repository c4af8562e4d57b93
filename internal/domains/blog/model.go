package blog

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Categories is the closed set a post may belong to.
var Categories = []string{
	"Identity",
	"Photography",
	"Lifestyle",
	"Creativity",
	"Personal Growth",
	"General",
}

// BlogPost is a journal entry. Content is the rich-text editor's JSON
// document, stored opaque. The slug is recomputed from the title on every
// save, so editing a published title changes its URL.
type BlogPost struct {
	ID          uuid.UUID
	Title       string
	Slug        string
	Content     json.RawMessage
	Excerpt     string
	Category    string
	Published   bool
	PublishedAt *time.Time
	CreatedAt   time.Time
}
