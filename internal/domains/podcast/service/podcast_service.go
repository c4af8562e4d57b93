package service

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/chrisakin/Katherine-Akintade-Website/internal/domains/podcast"
	"github.com/chrisakin/Katherine-Akintade-Website/internal/shared/upload"
	"github.com/chrisakin/Katherine-Akintade-Website/pkg/logger"
)

type podcastService struct {
	repo    podcast.Repository
	storage podcast.MediaStorage
}

func NewPodcastService(repo podcast.Repository, storage podcast.MediaStorage) podcast.Service {
	return &podcastService{repo: repo, storage: storage}
}

func (s *podcastService) List(ctx context.Context) ([]podcast.EpisodeDTO, error) {
	episodes, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return toDTOs(episodes), nil
}

func (s *podcastService) ListActive(ctx context.Context) ([]podcast.EpisodeDTO, error) {
	episodes, err := s.repo.ListActive(ctx)
	if err != nil {
		return nil, err
	}
	return toDTOs(episodes), nil
}

func (s *podcastService) Create(ctx context.Context, req podcast.SaveEpisodeRequest, media, thumbnail *upload.File) (*podcast.EpisodeDTO, error) {
	if media == nil {
		return nil, podcast.ErrMissingMedia
	}
	kind, err := inferKind(media.ContentType)
	if err != nil {
		return nil, err
	}
	if err := checkThumbnail(kind, thumbnail); err != nil {
		return nil, err
	}

	mediaURL, err := s.storeMedia(ctx, media)
	if err != nil {
		return nil, err
	}
	var thumbnailURL string
	if thumbnail != nil {
		thumbnailURL, err = s.storeThumbnail(ctx, thumbnail)
		if err != nil {
			return nil, err
		}
	}

	episode := &podcast.Episode{
		ID:           uuid.New(),
		Title:        req.Title,
		Description:  req.Description,
		GuestName:    req.GuestName,
		MediaKind:    kind,
		MediaURL:     mediaURL,
		ThumbnailURL: thumbnailURL,
		Duration:     req.Duration,
		Active:       req.Active,
		CreatedAt:    time.Now(),
	}
	if err := s.repo.Insert(ctx, episode); err != nil {
		return nil, err
	}
	dto := podcast.ToDTO(episode)
	return &dto, nil
}

func (s *podcastService) Update(ctx context.Context, id uuid.UUID, req podcast.SaveEpisodeRequest, media, thumbnail *upload.File) (*podcast.EpisodeDTO, error) {
	episode, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	kind := episode.MediaKind
	if media != nil {
		kind, err = inferKind(media.ContentType)
		if err != nil {
			return nil, err
		}
	}
	if err := checkThumbnail(kind, thumbnail); err != nil {
		return nil, err
	}

	oldMediaURL, oldThumbnailURL := episode.MediaURL, episode.ThumbnailURL
	if media != nil {
		url, err := s.storeMedia(ctx, media)
		if err != nil {
			return nil, err
		}
		episode.MediaURL = url
		episode.MediaKind = kind
		if kind == podcast.MediaAudio {
			episode.ThumbnailURL = ""
		}
	}
	if thumbnail != nil {
		url, err := s.storeThumbnail(ctx, thumbnail)
		if err != nil {
			return nil, err
		}
		episode.ThumbnailURL = url
	}

	episode.Title = req.Title
	episode.Description = req.Description
	episode.GuestName = req.GuestName
	episode.Duration = req.Duration
	episode.Active = req.Active

	if err := s.repo.Update(ctx, episode); err != nil {
		return nil, err
	}

	if media != nil && oldMediaURL != "" {
		s.removeObject(ctx, oldMediaURL)
	}
	if oldThumbnailURL != "" && episode.ThumbnailURL != oldThumbnailURL {
		s.removeObject(ctx, oldThumbnailURL)
	}

	dto := podcast.ToDTO(episode)
	return &dto, nil
}

func (s *podcastService) Delete(ctx context.Context, id uuid.UUID) error {
	episode, err := s.repo.Get(ctx, id)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	if episode.MediaURL != "" {
		s.removeObject(ctx, episode.MediaURL)
	}
	if episode.ThumbnailURL != "" {
		s.removeObject(ctx, episode.ThumbnailURL)
	}
	return nil
}

// inferKind maps the declared MIME type to audio or video. Anything
// outside the allow-list is rejected before any bytes are uploaded.
func inferKind(contentType string) (podcast.MediaKind, error) {
	if !slices.Contains(podcast.AcceptedMediaTypes, contentType) {
		return "", podcast.ErrInvalidMediaType
	}
	if strings.HasPrefix(contentType, "video/") {
		return podcast.MediaVideo, nil
	}
	return podcast.MediaAudio, nil
}

func checkThumbnail(kind podcast.MediaKind, thumbnail *upload.File) error {
	if thumbnail == nil {
		return nil
	}
	if kind != podcast.MediaVideo {
		return podcast.ErrThumbnailForAudio
	}
	if !slices.Contains(podcast.AcceptedThumbnailTypes, thumbnail.ContentType) {
		return podcast.ErrInvalidThumbnailType
	}
	return nil
}

func (s *podcastService) storeMedia(ctx context.Context, file *upload.File) (string, error) {
	key := fmt.Sprintf("podcast/%s%s", uuid.New().String(), file.Ext())
	return s.storage.Upload(ctx, key, file.Data, file.ContentType)
}

func (s *podcastService) storeThumbnail(ctx context.Context, file *upload.File) (string, error) {
	key := fmt.Sprintf("podcast/thumbnails/%s%s", uuid.New().String(), file.Ext())
	return s.storage.Upload(ctx, key, file.Data, file.ContentType)
}

// removeObject is best effort, an orphaned object only costs storage.
func (s *podcastService) removeObject(ctx context.Context, url string) {
	key := s.storage.KeyFromURL(url)
	if key == "" {
		return
	}
	if err := s.storage.Delete(ctx, key); err != nil {
		logger.Warn("failed to delete episode object", err)
	}
}

func toDTOs(episodes []podcast.Episode) []podcast.EpisodeDTO {
	dtos := make([]podcast.EpisodeDTO, 0, len(episodes))
	for i := range episodes {
		dtos = append(dtos, podcast.ToDTO(&episodes[i]))
	}
	return dtos
}
