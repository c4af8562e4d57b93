package analytics

import (
	"context"
	"time"

	"github.com/chrisakin/Katherine-Akintade-Website/internal/domains/auth"
)

type Service interface {
	// Summary aggregates the window and its month-earlier counterpart.
	// Individual sub-queries may fail, their metrics read as zero.
	Summary(ctx context.Context, start, end time.Time) (*Summary, error)

	// TrackSession records one public page view.
	TrackSession(ctx context.Context, req TrackSessionRequest) error

	// ConsumeAuthEvents appends an activity row per auth event until the
	// channel closes. Meant to run in its own goroutine.
	ConsumeAuthEvents(events <-chan auth.Event)
}
