package service

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/chrisakin/Katherine-Akintade-Website/internal/domains/analytics"
	"github.com/chrisakin/Katherine-Akintade-Website/internal/domains/auth"
	"github.com/chrisakin/Katherine-Akintade-Website/pkg/logger"
)

const recentActivityLimit = 10

// consumeTimeout bounds each activity insert so a stuck database
// cannot back the event channel up forever.
const consumeTimeout = 5 * time.Second

type analyticsService struct {
	repo analytics.Repository
}

func NewAnalyticsService(repo analytics.Repository) analytics.Service {
	return &analyticsService{repo: repo}
}

func (s *analyticsService) Summary(ctx context.Context, start, end time.Time) (*analytics.Summary, error) {
	prevStart := start.AddDate(0, -1, 0)
	prevEnd := prevStart.Add(end.Sub(start))

	var (
		wg       sync.WaitGroup
		summary  analytics.Summary
		activity []analytics.ActivityLog
	)

	count := func(dst *int64, name string, query func(context.Context, time.Time, time.Time) (int64, error), from, to time.Time) {
		wg.Add(1)
		go func() {
			defer wg.Done()
			n, err := query(ctx, from, to)
			if err != nil {
				logger.Warn("analytics sub-query failed: "+name, err)
				return
			}
			*dst = n
		}()
	}

	count(&summary.Visitors.Current, "sessions", s.repo.CountSessions, start, end)
	count(&summary.Visitors.Previous, "sessions", s.repo.CountSessions, prevStart, prevEnd)
	count(&summary.Revenue.Current, "sales", s.repo.SumSales, start, end)
	count(&summary.Revenue.Previous, "sales", s.repo.SumSales, prevStart, prevEnd)
	count(&summary.GalleryUploads.Current, "gallery", s.repo.CountGalleryUploads, start, end)
	count(&summary.GalleryUploads.Previous, "gallery", s.repo.CountGalleryUploads, prevStart, prevEnd)
	count(&summary.BlogPosts.Current, "blog", s.repo.CountBlogPosts, start, end)
	count(&summary.BlogPosts.Previous, "blog", s.repo.CountBlogPosts, prevStart, prevEnd)

	wg.Add(1)
	go func() {
		defer wg.Done()
		rows, err := s.repo.RecentActivity(ctx, recentActivityLimit)
		if err != nil {
			logger.Warn("analytics sub-query failed: activity", err)
			return
		}
		activity = rows
	}()

	wg.Wait()

	summary.Visitors.Change = analytics.PercentageChange(summary.Visitors.Current, summary.Visitors.Previous)
	summary.Revenue.Change = analytics.PercentageChange(summary.Revenue.Current, summary.Revenue.Previous)
	summary.GalleryUploads.Change = analytics.PercentageChange(summary.GalleryUploads.Current, summary.GalleryUploads.Previous)
	summary.BlogPosts.Change = analytics.PercentageChange(summary.BlogPosts.Current, summary.BlogPosts.Previous)

	summary.RecentActivity = make([]analytics.ActivityDTO, 0, len(activity))
	for i := range activity {
		summary.RecentActivity = append(summary.RecentActivity, analytics.ToActivityDTO(&activity[i]))
	}

	return &summary, nil
}

func (s *analyticsService) TrackSession(ctx context.Context, req analytics.TrackSessionRequest) error {
	visit := &analytics.SessionVisit{
		ID:        uuid.New(),
		Page:      req.Page,
		Referrer:  req.Referrer,
		UserAgent: req.UserAgent,
		CreatedAt: time.Now(),
	}
	return s.repo.InsertSession(ctx, visit)
}

func (s *analyticsService) ConsumeAuthEvents(events <-chan auth.Event) {
	for event := range events {
		ctx, cancel := context.WithTimeout(context.Background(), consumeTimeout)
		log := &analytics.ActivityLog{
			ID:        uuid.New(),
			Action:    string(event.Type),
			UserID:    event.UserID,
			CreatedAt: event.At,
		}
		if err := s.repo.InsertActivity(ctx, log); err != nil {
			logger.Warn("failed to record activity", err)
		}
		cancel()
	}
}
