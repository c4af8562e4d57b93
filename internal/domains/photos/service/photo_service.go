package service

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/google/uuid"

	"github.com/chrisakin/Katherine-Akintade-Website/internal/domains/photos"
	"github.com/chrisakin/Katherine-Akintade-Website/internal/shared/upload"
	"github.com/chrisakin/Katherine-Akintade-Website/pkg/logger"
)

type photoService struct {
	repo    photos.Repository
	storage photos.MediaStorage
}

func NewPhotoService(repo photos.Repository, storage photos.MediaStorage) photos.Service {
	return &photoService{repo: repo, storage: storage}
}

func (s *photoService) ListHero(ctx context.Context) ([]photos.HeroImageDTO, error) {
	images, err := s.repo.ListHero(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list hero images: %w", err)
	}

	dtos := make([]photos.HeroImageDTO, 0, len(images))
	for i := range images {
		dtos = append(dtos, photos.ToHeroDTO(&images[i]))
	}
	return dtos, nil
}

func (s *photoService) ListGallery(ctx context.Context) ([]photos.GalleryImageDTO, error) {
	images, err := s.repo.ListGallery(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list gallery images: %w", err)
	}

	dtos := make([]photos.GalleryImageDTO, 0, len(images))
	for i := range images {
		dtos = append(dtos, photos.ToGalleryDTO(&images[i]))
	}
	return dtos, nil
}

// ActiveHero picks the first active row. Zero active rows (possible after
// a half-failed activation) yields nil rather than an error.
func (s *photoService) ActiveHero(ctx context.Context) (*photos.HeroImageDTO, error) {
	images, err := s.repo.ListHero(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list hero images: %w", err)
	}

	for i := range images {
		if images[i].Active {
			dto := photos.ToHeroDTO(&images[i])
			return &dto, nil
		}
	}
	return nil, nil
}

func (s *photoService) UploadHero(ctx context.Context, file *upload.File) (*photos.HeroImageDTO, error) {
	url, err := s.store(ctx, "hero", file)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	img := &photos.HeroImage{
		ID:        uuid.New(),
		URL:       url,
		Active:    false, // activation is a separate, explicit step
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.repo.InsertHero(ctx, img); err != nil {
		return nil, fmt.Errorf("failed to save hero image: %w", err)
	}

	dto := photos.ToHeroDTO(img)
	return &dto, nil
}

func (s *photoService) UploadGallery(ctx context.Context, file *upload.File, req photos.GalleryUploadRequest) (*photos.GalleryImageDTO, error) {
	url, err := s.store(ctx, "gallery", file)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	img := &photos.GalleryImage{
		ID:           uuid.New(),
		URL:          url,
		Description:  req.Description,
		Category:     req.Category,
		Photographer: req.Photographer,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.repo.InsertGallery(ctx, img); err != nil {
		return nil, fmt.Errorf("failed to save gallery image: %w", err)
	}

	dto := photos.ToGalleryDTO(img)
	return &dto, nil
}

// store validates the file and uploads it. Called before any record write
// so an upload failure leaves the database untouched.
func (s *photoService) store(ctx context.Context, prefix string, file *upload.File) (string, error) {
	if file == nil {
		return "", photos.ErrMissingFile
	}
	if !slices.Contains(photos.AcceptedImageTypes, file.ContentType) {
		return "", photos.ErrInvalidImageType
	}

	key := fmt.Sprintf("%s/%s%s", prefix, uuid.New().String(), file.Ext())
	url, err := s.storage.Upload(ctx, key, file.Data, file.ContentType)
	if err != nil {
		return "", fmt.Errorf("failed to upload image: %w", err)
	}
	return url, nil
}

func (s *photoService) ActivateHero(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.GetHero(ctx, id); err != nil {
		return err
	}

	// Two sequential writes, deliberately without a transaction. If the
	// second fails no hero is active, a degraded state readers tolerate.
	if err := s.repo.DeactivateActiveHero(ctx); err != nil {
		return fmt.Errorf("failed to deactivate hero images: %w", err)
	}
	if err := s.repo.SetHeroActive(ctx, id); err != nil {
		return fmt.Errorf("failed to activate hero image: %w", err)
	}
	return nil
}

func (s *photoService) DeleteHero(ctx context.Context, id uuid.UUID) error {
	img, err := s.repo.GetHero(ctx, id)
	if err != nil {
		return err
	}

	if err := s.repo.DeleteHero(ctx, id); err != nil {
		return fmt.Errorf("failed to delete hero image: %w", err)
	}

	s.removeObject(ctx, img.URL)
	return nil
}

func (s *photoService) DeleteGallery(ctx context.Context, id uuid.UUID) error {
	img, err := s.repo.GetGallery(ctx, id)
	if err != nil {
		return err
	}

	if err := s.repo.DeleteGallery(ctx, id); err != nil {
		return fmt.Errorf("failed to delete gallery image: %w", err)
	}

	s.removeObject(ctx, img.URL)
	return nil
}

// removeObject is best effort; an orphaned stored file is acceptable.
func (s *photoService) removeObject(ctx context.Context, url string) {
	key := s.storage.KeyFromURL(url)
	if key == "" {
		return
	}
	if err := s.storage.Delete(ctx, key); err != nil {
		logger.Warn("failed to remove stored image", err)
	}
}
