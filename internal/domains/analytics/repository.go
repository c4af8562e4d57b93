package analytics

import (
	"context"
	"time"
)

// Repository covers the read queries behind the dashboard and the two
// write paths that feed them.
type Repository interface {
	CountSessions(ctx context.Context, start, end time.Time) (int64, error)
	SumSales(ctx context.Context, start, end time.Time) (int64, error)
	CountGalleryUploads(ctx context.Context, start, end time.Time) (int64, error)
	CountBlogPosts(ctx context.Context, start, end time.Time) (int64, error)
	RecentActivity(ctx context.Context, limit int) ([]ActivityLog, error)

	InsertSession(ctx context.Context, visit *SessionVisit) error
	InsertActivity(ctx context.Context, log *ActivityLog) error
}
