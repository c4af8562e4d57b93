package analytics

import (
	"time"

	"github.com/google/uuid"
)

// SessionVisit is one public page view, written by the tracking
// endpoint and only ever counted afterwards.
type SessionVisit struct {
	ID        uuid.UUID
	Page      string
	Referrer  string
	UserAgent string
	CreatedAt time.Time
}

// ActivityLog is one admin action, fed by the auth event stream.
type ActivityLog struct {
	ID        uuid.UUID
	Action    string
	UserID    uuid.UUID
	CreatedAt time.Time
}

// Metric pairs a value for the requested window with the same-length
// window one month earlier.
type Metric struct {
	Current  int64   `json:"current"`
	Previous int64   `json:"previous"`
	Change   float64 `json:"change"`
}

// Summary is the admin dashboard payload.
type Summary struct {
	Visitors       Metric        `json:"visitors"`
	Revenue        Metric        `json:"revenue"`
	GalleryUploads Metric        `json:"gallery_uploads"`
	BlogPosts      Metric        `json:"blog_posts"`
	RecentActivity []ActivityDTO `json:"recent_activity"`
}

type ActivityDTO struct {
	ID        uuid.UUID `json:"id"`
	Action    string    `json:"action"`
	UserID    uuid.UUID `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}

func ToActivityDTO(a *ActivityLog) ActivityDTO {
	return ActivityDTO{
		ID:        a.ID,
		Action:    a.Action,
		UserID:    a.UserID,
		CreatedAt: a.CreatedAt,
	}
}

// PercentageChange reports period-over-period growth. A previous value
// of zero with any current activity reads as a flat 100 percent.
func PercentageChange(current, previous int64) float64 {
	if previous == 0 {
		if current == 0 {
			return 0
		}
		return 100
	}
	return float64(current-previous) / float64(previous) * 100
}
