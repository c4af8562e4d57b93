package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/chrisakin/Katherine-Akintade-Website/internal/domains/photos"
)

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) photos.Repository {
	return &postgresRepository{pool: pool}
}

func (r *postgresRepository) ListHero(ctx context.Context) ([]photos.HeroImage, error) {
	const query = `
		SELECT id, url, active, created_at, updated_at
		FROM hero_images
		ORDER BY created_at DESC
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list hero images: %w", err)
	}
	defer rows.Close()

	var images []photos.HeroImage
	for rows.Next() {
		var img photos.HeroImage
		if err := rows.Scan(&img.ID, &img.URL, &img.Active, &img.CreatedAt, &img.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan hero image: %w", err)
		}
		images = append(images, img)
	}
	return images, rows.Err()
}

func (r *postgresRepository) GetHero(ctx context.Context, id uuid.UUID) (*photos.HeroImage, error) {
	const query = `
		SELECT id, url, active, created_at, updated_at
		FROM hero_images
		WHERE id = $1
	`

	img := &photos.HeroImage{}
	err := r.pool.QueryRow(ctx, query, id).Scan(&img.ID, &img.URL, &img.Active, &img.CreatedAt, &img.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, photos.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get hero image: %w", err)
	}
	return img, nil
}

func (r *postgresRepository) InsertHero(ctx context.Context, img *photos.HeroImage) error {
	const query = `
		INSERT INTO hero_images (id, url, active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err := r.pool.Exec(ctx, query, img.ID, img.URL, img.Active, img.CreatedAt, img.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert hero image: %w", err)
	}
	return nil
}

func (r *postgresRepository) DeactivateActiveHero(ctx context.Context) error {
	const query = `
		UPDATE hero_images
		SET active = false, updated_at = now()
		WHERE active = true
	`

	if _, err := r.pool.Exec(ctx, query); err != nil {
		return fmt.Errorf("failed to deactivate hero images: %w", err)
	}
	return nil
}

func (r *postgresRepository) SetHeroActive(ctx context.Context, id uuid.UUID) error {
	const query = `
		UPDATE hero_images
		SET active = true, updated_at = now()
		WHERE id = $1
	`

	tag, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to activate hero image: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return photos.ErrNotFound
	}
	return nil
}

func (r *postgresRepository) DeleteHero(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM hero_images WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete hero image: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return photos.ErrNotFound
	}
	return nil
}

func (r *postgresRepository) ListGallery(ctx context.Context) ([]photos.GalleryImage, error) {
	const query = `
		SELECT id, url, description, category, photographer, created_at, updated_at
		FROM gallery_images
		ORDER BY created_at DESC
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list gallery images: %w", err)
	}
	defer rows.Close()

	var images []photos.GalleryImage
	for rows.Next() {
		var img photos.GalleryImage
		if err := rows.Scan(&img.ID, &img.URL, &img.Description, &img.Category, &img.Photographer, &img.CreatedAt, &img.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan gallery image: %w", err)
		}
		images = append(images, img)
	}
	return images, rows.Err()
}

func (r *postgresRepository) GetGallery(ctx context.Context, id uuid.UUID) (*photos.GalleryImage, error) {
	const query = `
		SELECT id, url, description, category, photographer, created_at, updated_at
		FROM gallery_images
		WHERE id = $1
	`

	img := &photos.GalleryImage{}
	err := r.pool.QueryRow(ctx, query, id).Scan(&img.ID, &img.URL, &img.Description, &img.Category, &img.Photographer, &img.CreatedAt, &img.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, photos.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get gallery image: %w", err)
	}
	return img, nil
}

func (r *postgresRepository) InsertGallery(ctx context.Context, img *photos.GalleryImage) error {
	const query = `
		INSERT INTO gallery_images (id, url, description, category, photographer, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := r.pool.Exec(ctx, query,
		img.ID, img.URL, img.Description, img.Category, img.Photographer, img.CreatedAt, img.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert gallery image: %w", err)
	}
	return nil
}

func (r *postgresRepository) DeleteGallery(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM gallery_images WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete gallery image: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return photos.ErrNotFound
	}
	return nil
}
