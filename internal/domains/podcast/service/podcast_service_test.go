package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/chrisakin/Katherine-Akintade-Website/internal/domains/podcast"
	"github.com/chrisakin/Katherine-Akintade-Website/internal/shared/upload"
)

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) List(ctx context.Context) ([]podcast.Episode, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]podcast.Episode), args.Error(1)
}

func (m *MockRepository) ListActive(ctx context.Context) ([]podcast.Episode, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]podcast.Episode), args.Error(1)
}

func (m *MockRepository) Get(ctx context.Context, id uuid.UUID) (*podcast.Episode, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*podcast.Episode), args.Error(1)
}

func (m *MockRepository) Insert(ctx context.Context, episode *podcast.Episode) error {
	args := m.Called(ctx, episode)
	return args.Error(0)
}

func (m *MockRepository) Update(ctx context.Context, episode *podcast.Episode) error {
	args := m.Called(ctx, episode)
	return args.Error(0)
}

func (m *MockRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockStorage struct {
	mock.Mock
}

func (m *MockStorage) Upload(ctx context.Context, key string, data []byte, contentType string) (string, error) {
	args := m.Called(ctx, key, data, contentType)
	return args.String(0), args.Error(1)
}

func (m *MockStorage) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func (m *MockStorage) KeyFromURL(url string) string {
	args := m.Called(url)
	return args.String(0)
}

func episodeRequest() podcast.SaveEpisodeRequest {
	return podcast.SaveEpisodeRequest{
		Title:    "Finding Your Voice",
		Duration: "42 min",
		Active:   true,
	}
}

func TestCreate_InfersAudioKind(t *testing.T) {
	repo := new(MockRepository)
	storage := new(MockStorage)
	svc := NewPodcastService(repo, storage)

	storage.On("Upload", mock.Anything, mock.Anything, mock.Anything, "audio/mpeg").
		Return("https://cdn.example.com/podcast/ep.mp3", nil)
	repo.On("Insert", mock.Anything, mock.MatchedBy(func(e *podcast.Episode) bool {
		return e.MediaKind == podcast.MediaAudio
	})).Return(nil)

	media := &upload.File{Name: "ep.mp3", ContentType: "audio/mpeg", Data: []byte{1}}
	dto, err := svc.Create(context.Background(), episodeRequest(), media, nil)

	require.NoError(t, err)
	assert.Equal(t, podcast.MediaAudio, dto.MediaKind)
}

func TestCreate_InfersVideoKind(t *testing.T) {
	repo := new(MockRepository)
	storage := new(MockStorage)
	svc := NewPodcastService(repo, storage)

	storage.On("Upload", mock.Anything, mock.Anything, mock.Anything, "video/mp4").
		Return("https://cdn.example.com/podcast/ep.mp4", nil)
	repo.On("Insert", mock.Anything, mock.MatchedBy(func(e *podcast.Episode) bool {
		return e.MediaKind == podcast.MediaVideo
	})).Return(nil)

	media := &upload.File{Name: "ep.mp4", ContentType: "video/mp4", Data: []byte{1}}
	dto, err := svc.Create(context.Background(), episodeRequest(), media, nil)

	require.NoError(t, err)
	assert.Equal(t, podcast.MediaVideo, dto.MediaKind)
}

func TestCreate_RejectsUnknownMediaTypeBeforeUpload(t *testing.T) {
	repo := new(MockRepository)
	storage := new(MockStorage)
	svc := NewPodcastService(repo, storage)

	media := &upload.File{Name: "notes.pdf", ContentType: "application/pdf", Data: []byte{1}}
	_, err := svc.Create(context.Background(), episodeRequest(), media, nil)

	assert.ErrorIs(t, err, podcast.ErrInvalidMediaType)
	storage.AssertNotCalled(t, "Upload", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	repo.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
}

func TestCreate_RequiresMedia(t *testing.T) {
	repo := new(MockRepository)
	storage := new(MockStorage)
	svc := NewPodcastService(repo, storage)

	_, err := svc.Create(context.Background(), episodeRequest(), nil, nil)

	assert.ErrorIs(t, err, podcast.ErrMissingMedia)
}

func TestCreate_RejectsThumbnailOnAudioEpisode(t *testing.T) {
	repo := new(MockRepository)
	storage := new(MockStorage)
	svc := NewPodcastService(repo, storage)

	media := &upload.File{Name: "ep.mp3", ContentType: "audio/mpeg", Data: []byte{1}}
	thumbnail := &upload.File{Name: "cover.png", ContentType: "image/png", Data: []byte{1}}
	_, err := svc.Create(context.Background(), episodeRequest(), media, thumbnail)

	assert.ErrorIs(t, err, podcast.ErrThumbnailForAudio)
	storage.AssertNotCalled(t, "Upload", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestCreate_VideoWithThumbnail(t *testing.T) {
	repo := new(MockRepository)
	storage := new(MockStorage)
	svc := NewPodcastService(repo, storage)

	storage.On("Upload", mock.Anything, mock.Anything, mock.Anything, "video/webm").
		Return("https://cdn.example.com/podcast/ep.webm", nil)
	storage.On("Upload", mock.Anything, mock.Anything, mock.Anything, "image/jpeg").
		Return("https://cdn.example.com/podcast/thumbnails/t.jpg", nil)
	repo.On("Insert", mock.Anything, mock.MatchedBy(func(e *podcast.Episode) bool {
		return e.ThumbnailURL == "https://cdn.example.com/podcast/thumbnails/t.jpg"
	})).Return(nil)

	media := &upload.File{Name: "ep.webm", ContentType: "video/webm", Data: []byte{1}}
	thumbnail := &upload.File{Name: "t.jpg", ContentType: "image/jpeg", Data: []byte{1}}
	_, err := svc.Create(context.Background(), episodeRequest(), media, thumbnail)

	require.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestUpdate_SwappingToAudioDropsThumbnail(t *testing.T) {
	repo := new(MockRepository)
	storage := new(MockStorage)
	svc := NewPodcastService(repo, storage)

	id := uuid.New()
	repo.On("Get", mock.Anything, id).Return(&podcast.Episode{
		ID:           id,
		Title:        "Finding Your Voice",
		MediaKind:    podcast.MediaVideo,
		MediaURL:     "https://cdn.example.com/podcast/ep.mp4",
		ThumbnailURL: "https://cdn.example.com/podcast/thumbnails/t.jpg",
	}, nil)
	storage.On("Upload", mock.Anything, mock.Anything, mock.Anything, "audio/wav").
		Return("https://cdn.example.com/podcast/ep.wav", nil)
	repo.On("Update", mock.Anything, mock.MatchedBy(func(e *podcast.Episode) bool {
		return e.MediaKind == podcast.MediaAudio && e.ThumbnailURL == ""
	})).Return(nil)
	storage.On("KeyFromURL", mock.Anything).Return("podcast/old")
	storage.On("Delete", mock.Anything, "podcast/old").Return(nil)

	media := &upload.File{Name: "ep.wav", ContentType: "audio/wav", Data: []byte{1}}
	_, err := svc.Update(context.Background(), id, episodeRequest(), media, nil)

	require.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestUpdate_WithoutMediaKeepsKindAndURL(t *testing.T) {
	repo := new(MockRepository)
	storage := new(MockStorage)
	svc := NewPodcastService(repo, storage)

	id := uuid.New()
	repo.On("Get", mock.Anything, id).Return(&podcast.Episode{
		ID:        id,
		Title:     "Finding Your Voice",
		MediaKind: podcast.MediaAudio,
		MediaURL:  "https://cdn.example.com/podcast/ep.mp3",
	}, nil)
	repo.On("Update", mock.Anything, mock.MatchedBy(func(e *podcast.Episode) bool {
		return e.MediaKind == podcast.MediaAudio && e.MediaURL == "https://cdn.example.com/podcast/ep.mp3"
	})).Return(nil)

	_, err := svc.Update(context.Background(), id, episodeRequest(), nil, nil)

	require.NoError(t, err)
	storage.AssertNotCalled(t, "Upload", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}
