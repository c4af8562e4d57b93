package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/chrisakin/Katherine-Akintade-Website/internal/domains/podcast"
	"github.com/chrisakin/Katherine-Akintade-Website/internal/infrastructure/database"
)

type postgresRepository struct {
	db *database.PostgresDB
}

func NewPostgresRepository(db *database.PostgresDB) podcast.Repository {
	return &postgresRepository{db: db}
}

const episodeColumns = `id, title, description, guest_name, media_kind, media_url, thumbnail_url, duration, active, created_at`

func (r *postgresRepository) List(ctx context.Context) ([]podcast.Episode, error) {
	query := `SELECT ` + episodeColumns + ` FROM podcasts ORDER BY created_at DESC`
	return r.queryEpisodes(ctx, query)
}

func (r *postgresRepository) ListActive(ctx context.Context) ([]podcast.Episode, error) {
	query := `SELECT ` + episodeColumns + ` FROM podcasts WHERE active = true ORDER BY created_at DESC`
	return r.queryEpisodes(ctx, query)
}

func (r *postgresRepository) Get(ctx context.Context, id uuid.UUID) (*podcast.Episode, error) {
	query := `SELECT ` + episodeColumns + ` FROM podcasts WHERE id = $1`
	var e podcast.Episode
	err := r.db.Pool.QueryRow(ctx, query, id).Scan(
		&e.ID, &e.Title, &e.Description, &e.GuestName, &e.MediaKind,
		&e.MediaURL, &e.ThumbnailURL, &e.Duration, &e.Active, &e.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, podcast.ErrNotFound
		}
		return nil, err
	}
	return &e, nil
}

func (r *postgresRepository) Insert(ctx context.Context, episode *podcast.Episode) error {
	query := `
		INSERT INTO podcasts (id, title, description, guest_name, media_kind, media_url, thumbnail_url, duration, active, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.db.Pool.Exec(ctx, query,
		episode.ID, episode.Title, episode.Description, episode.GuestName,
		episode.MediaKind, episode.MediaURL, episode.ThumbnailURL,
		episode.Duration, episode.Active, episode.CreatedAt)
	return err
}

func (r *postgresRepository) Update(ctx context.Context, episode *podcast.Episode) error {
	query := `
		UPDATE podcasts
		SET title = $2, description = $3, guest_name = $4, media_kind = $5,
		    media_url = $6, thumbnail_url = $7, duration = $8, active = $9
		WHERE id = $1`
	tag, err := r.db.Pool.Exec(ctx, query,
		episode.ID, episode.Title, episode.Description, episode.GuestName,
		episode.MediaKind, episode.MediaURL, episode.ThumbnailURL,
		episode.Duration, episode.Active)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return podcast.ErrNotFound
	}
	return nil
}

func (r *postgresRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Pool.Exec(ctx, `DELETE FROM podcasts WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return podcast.ErrNotFound
	}
	return nil
}

func (r *postgresRepository) queryEpisodes(ctx context.Context, query string) ([]podcast.Episode, error) {
	rows, err := r.db.Pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var episodes []podcast.Episode
	for rows.Next() {
		var e podcast.Episode
		if err := rows.Scan(
			&e.ID, &e.Title, &e.Description, &e.GuestName, &e.MediaKind,
			&e.MediaURL, &e.ThumbnailURL, &e.Duration, &e.Active, &e.CreatedAt); err != nil {
			return nil, err
		}
		episodes = append(episodes, e)
	}
	return episodes, rows.Err()
}
