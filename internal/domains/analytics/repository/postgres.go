package repository

import (
	"context"
	"time"

	"github.com/chrisakin/Katherine-Akintade-Website/internal/domains/analytics"
	"github.com/chrisakin/Katherine-Akintade-Website/internal/infrastructure/database"
)

type postgresRepository struct {
	db *database.PostgresDB
}

func NewPostgresRepository(db *database.PostgresDB) analytics.Repository {
	return &postgresRepository{db: db}
}

func (r *postgresRepository) CountSessions(ctx context.Context, start, end time.Time) (int64, error) {
	query := `SELECT COUNT(*) FROM user_sessions WHERE created_at BETWEEN $1 AND $2`
	return r.queryCount(ctx, query, start, end)
}

func (r *postgresRepository) SumSales(ctx context.Context, start, end time.Time) (int64, error) {
	query := `SELECT COALESCE(SUM(amount), 0) FROM sales_tracking WHERE created_at BETWEEN $1 AND $2`
	return r.queryCount(ctx, query, start, end)
}

func (r *postgresRepository) CountGalleryUploads(ctx context.Context, start, end time.Time) (int64, error) {
	query := `SELECT COUNT(*) FROM gallery_images WHERE created_at BETWEEN $1 AND $2`
	return r.queryCount(ctx, query, start, end)
}

func (r *postgresRepository) CountBlogPosts(ctx context.Context, start, end time.Time) (int64, error) {
	query := `SELECT COUNT(*) FROM blog_posts WHERE created_at BETWEEN $1 AND $2`
	return r.queryCount(ctx, query, start, end)
}

func (r *postgresRepository) RecentActivity(ctx context.Context, limit int) ([]analytics.ActivityLog, error) {
	query := `
		SELECT id, action, user_id, created_at
		FROM activity_logs
		ORDER BY created_at DESC
		LIMIT $1`
	rows, err := r.db.Pool.Query(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var logs []analytics.ActivityLog
	for rows.Next() {
		var log analytics.ActivityLog
		if err := rows.Scan(&log.ID, &log.Action, &log.UserID, &log.CreatedAt); err != nil {
			return nil, err
		}
		logs = append(logs, log)
	}
	return logs, rows.Err()
}

func (r *postgresRepository) InsertSession(ctx context.Context, visit *analytics.SessionVisit) error {
	query := `
		INSERT INTO user_sessions (id, page, referrer, user_agent, created_at)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.db.Pool.Exec(ctx, query,
		visit.ID, visit.Page, visit.Referrer, visit.UserAgent, visit.CreatedAt)
	return err
}

func (r *postgresRepository) InsertActivity(ctx context.Context, log *analytics.ActivityLog) error {
	query := `
		INSERT INTO activity_logs (id, action, user_id, created_at)
		VALUES ($1, $2, $3, $4)`
	_, err := r.db.Pool.Exec(ctx, query, log.ID, log.Action, log.UserID, log.CreatedAt)
	return err
}

func (r *postgresRepository) queryCount(ctx context.Context, query string, start, end time.Time) (int64, error) {
	var n int64
	if err := r.db.Pool.QueryRow(ctx, query, start, end).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}
