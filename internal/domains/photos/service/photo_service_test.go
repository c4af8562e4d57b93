package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/chrisakin/Katherine-Akintade-Website/internal/domains/photos"
	"github.com/chrisakin/Katherine-Akintade-Website/internal/shared/upload"
)

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) ListHero(ctx context.Context) ([]photos.HeroImage, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]photos.HeroImage), args.Error(1)
}

func (m *MockRepository) GetHero(ctx context.Context, id uuid.UUID) (*photos.HeroImage, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*photos.HeroImage), args.Error(1)
}

func (m *MockRepository) InsertHero(ctx context.Context, img *photos.HeroImage) error {
	args := m.Called(ctx, img)
	return args.Error(0)
}

func (m *MockRepository) DeactivateActiveHero(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockRepository) SetHeroActive(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockRepository) DeleteHero(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockRepository) ListGallery(ctx context.Context) ([]photos.GalleryImage, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]photos.GalleryImage), args.Error(1)
}

func (m *MockRepository) GetGallery(ctx context.Context, id uuid.UUID) (*photos.GalleryImage, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*photos.GalleryImage), args.Error(1)
}

func (m *MockRepository) InsertGallery(ctx context.Context, img *photos.GalleryImage) error {
	args := m.Called(ctx, img)
	return args.Error(0)
}

func (m *MockRepository) DeleteGallery(ctx context.Context, id uuid.UUID) error {
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

func TestActivateHero_DeactivatesOthersFirst(t *testing.T) {
	ctx := context.Background()
	repo := new(MockRepository)
	store := new(MockStorage)
	svc := NewPhotoService(repo, store)

	idA := uuid.New()
	idB := uuid.New()

	// Seed: A active, B inactive. Activating B must clear A before
	// setting B.
	state := map[uuid.UUID]bool{idA: true, idB: false}

	repo.On("GetHero", ctx, idB).Return(&photos.HeroImage{ID: idB}, nil)
	repo.On("DeactivateActiveHero", ctx).Run(func(args mock.Arguments) {
		for id := range state {
			state[id] = false
		}
	}).Return(nil)
	repo.On("SetHeroActive", ctx, idB).Run(func(args mock.Arguments) {
		state[idB] = true
	}).Return(nil)

	require.NoError(t, svc.ActivateHero(ctx, idB))

	assert.False(t, state[idA])
	assert.True(t, state[idB])
}

func TestActivateHero_UnknownImage(t *testing.T) {
	ctx := context.Background()
	repo := new(MockRepository)
	store := new(MockStorage)
	svc := NewPhotoService(repo, store)

	id := uuid.New()
	repo.On("GetHero", ctx, id).Return(nil, photos.ErrNotFound)

	err := svc.ActivateHero(ctx, id)

	assert.ErrorIs(t, err, photos.ErrNotFound)
	repo.AssertNotCalled(t, "DeactivateActiveHero", mock.Anything)
}

func TestActiveHero_ToleratesZeroActive(t *testing.T) {
	ctx := context.Background()
	repo := new(MockRepository)
	store := new(MockStorage)
	svc := NewPhotoService(repo, store)

	repo.On("ListHero", ctx).Return([]photos.HeroImage{
		{ID: uuid.New(), Active: false},
		{ID: uuid.New(), Active: false},
	}, nil)

	hero, err := svc.ActiveHero(ctx)

	require.NoError(t, err)
	assert.Nil(t, hero)
}

func TestActiveHero_ReturnsFirstOfSeveralActive(t *testing.T) {
	ctx := context.Background()
	repo := new(MockRepository)
	store := new(MockStorage)
	svc := NewPhotoService(repo, store)

	first := uuid.New()
	repo.On("ListHero", ctx).Return([]photos.HeroImage{
		{ID: first, Active: true},
		{ID: uuid.New(), Active: true},
	}, nil)

	hero, err := svc.ActiveHero(ctx)

	require.NoError(t, err)
	require.NotNil(t, hero)
	assert.Equal(t, first, hero.ID)
}

func TestUploadHero_RejectsBadMIMEBeforeUpload(t *testing.T) {
	ctx := context.Background()
	repo := new(MockRepository)
	store := new(MockStorage)
	svc := NewPhotoService(repo, store)

	file := &upload.File{Name: "notes.pdf", ContentType: "application/pdf", Data: []byte("x")}

	_, err := svc.UploadHero(ctx, file)

	assert.ErrorIs(t, err, photos.ErrInvalidImageType)
	store.AssertNotCalled(t, "Upload", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	repo.AssertNotCalled(t, "InsertHero", mock.Anything, mock.Anything)
}

func TestUploadHero_UploadFailureBlocksRecordWrite(t *testing.T) {
	ctx := context.Background()
	repo := new(MockRepository)
	store := new(MockStorage)
	svc := NewPhotoService(repo, store)

	file := &upload.File{Name: "shot.jpg", ContentType: "image/jpeg", Data: []byte("jpeg")}
	store.On("Upload", ctx, mock.Anything, file.Data, "image/jpeg").Return("", assert.AnError)

	_, err := svc.UploadHero(ctx, file)

	require.Error(t, err)
	repo.AssertNotCalled(t, "InsertHero", mock.Anything, mock.Anything)
}

func TestUploadGallery_StoresMetadata(t *testing.T) {
	ctx := context.Background()
	repo := new(MockRepository)
	store := new(MockStorage)
	svc := NewPhotoService(repo, store)

	file := &upload.File{Name: "shot.png", ContentType: "image/png", Data: []byte("png")}
	store.On("Upload", ctx, mock.Anything, file.Data, "image/png").
		Return("http://localhost:9000/images/gallery/x.png", nil)
	repo.On("InsertGallery", ctx, mock.MatchedBy(func(img *photos.GalleryImage) bool {
		return img.Photographer == "Katherine" && img.Category == "Portrait" &&
			img.URL == "http://localhost:9000/images/gallery/x.png"
	})).Return(nil)

	dto, err := svc.UploadGallery(ctx, file, photos.GalleryUploadRequest{
		Description:  "Golden hour",
		Category:     "Portrait",
		Photographer: "Katherine",
	})

	require.NoError(t, err)
	assert.Equal(t, "Golden hour", dto.Description)
	repo.AssertExpectations(t)
}

func TestDeleteHero_RemovesRowThenObject(t *testing.T) {
	ctx := context.Background()
	repo := new(MockRepository)
	store := new(MockStorage)
	svc := NewPhotoService(repo, store)

	id := uuid.New()
	url := "http://localhost:9000/images/hero/x.jpg"

	repo.On("GetHero", ctx, id).Return(&photos.HeroImage{ID: id, URL: url}, nil)
	repo.On("DeleteHero", ctx, id).Return(nil)
	store.On("KeyFromURL", url).Return("hero/x.jpg")
	store.On("Delete", ctx, "hero/x.jpg").Return(nil)

	require.NoError(t, svc.DeleteHero(ctx, id))
	store.AssertExpectations(t)
}
