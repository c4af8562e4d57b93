package service

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/chrisakin/Katherine-Akintade-Website/internal/domains/shop"
	"github.com/chrisakin/Katherine-Akintade-Website/internal/shared/upload"
)

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) List(ctx context.Context) ([]shop.Product, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]shop.Product), args.Error(1)
}

func (m *MockRepository) ListActive(ctx context.Context) ([]shop.Product, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]shop.Product), args.Error(1)
}

func (m *MockRepository) Get(ctx context.Context, id uuid.UUID) (*shop.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*shop.Product), args.Error(1)
}

func (m *MockRepository) Insert(ctx context.Context, product *shop.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

func (m *MockRepository) Update(ctx context.Context, product *shop.Product) error {
	args := m.Called(ctx, product)
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

func journalRequest() shop.SaveProductRequest {
	return shop.SaveProductRequest{
		Name:     "Gratitude Journal",
		Price:    15000,
		Category: "Journal",
		Active:   true,
	}
}

func TestCreate_WithoutImage(t *testing.T) {
	repo := new(MockRepository)
	storage := new(MockStorage)
	svc := NewShopService(repo, storage)

	var inserted *shop.Product
	repo.On("Insert", mock.Anything, mock.AnythingOfType("*shop.Product")).
		Run(func(args mock.Arguments) {
			inserted = args.Get(1).(*shop.Product)
		}).
		Return(nil)

	dto, err := svc.Create(context.Background(), journalRequest(), nil)

	require.NoError(t, err)
	assert.Empty(t, inserted.ImageURL)
	assert.Equal(t, int64(15000), dto.Price)
	storage.AssertNotCalled(t, "Upload", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestCreate_UploadsImageBeforeInsert(t *testing.T) {
	repo := new(MockRepository)
	storage := new(MockStorage)
	svc := NewShopService(repo, storage)

	storage.On("Upload", mock.Anything, mock.Anything, mock.Anything, "image/png").
		Return("https://cdn.example.com/shop/x.png", nil)
	repo.On("Insert", mock.Anything, mock.MatchedBy(func(p *shop.Product) bool {
		return p.ImageURL == "https://cdn.example.com/shop/x.png"
	})).Return(nil)

	image := &upload.File{Name: "cover.png", ContentType: "image/png", Data: []byte{1}}
	_, err := svc.Create(context.Background(), journalRequest(), image)

	require.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestCreate_RejectsBadImageType(t *testing.T) {
	repo := new(MockRepository)
	storage := new(MockStorage)
	svc := NewShopService(repo, storage)

	image := &upload.File{Name: "cover.gif", ContentType: "image/gif", Data: []byte{1}}
	_, err := svc.Create(context.Background(), journalRequest(), image)

	assert.ErrorIs(t, err, shop.ErrInvalidImageType)
	storage.AssertNotCalled(t, "Upload", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	repo.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
}

func TestCreate_UploadFailureBlocksInsert(t *testing.T) {
	repo := new(MockRepository)
	storage := new(MockStorage)
	svc := NewShopService(repo, storage)

	storage.On("Upload", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return("", errors.New("bucket offline"))

	image := &upload.File{Name: "cover.png", ContentType: "image/png", Data: []byte{1}}
	_, err := svc.Create(context.Background(), journalRequest(), image)

	assert.Error(t, err)
	repo.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
}

func TestUpdate_NewImageReplacesOldObject(t *testing.T) {
	repo := new(MockRepository)
	storage := new(MockStorage)
	svc := NewShopService(repo, storage)

	id := uuid.New()
	repo.On("Get", mock.Anything, id).Return(&shop.Product{
		ID:       id,
		Name:     "Gratitude Journal",
		Category: "Journal",
		ImageURL: "https://cdn.example.com/shop/old.png",
	}, nil)
	storage.On("Upload", mock.Anything, mock.Anything, mock.Anything, "image/webp").
		Return("https://cdn.example.com/shop/new.webp", nil)
	repo.On("Update", mock.Anything, mock.MatchedBy(func(p *shop.Product) bool {
		return p.ImageURL == "https://cdn.example.com/shop/new.webp"
	})).Return(nil)
	storage.On("KeyFromURL", "https://cdn.example.com/shop/old.png").Return("shop/old.png")
	storage.On("Delete", mock.Anything, "shop/old.png").Return(nil)

	image := &upload.File{Name: "new.webp", ContentType: "image/webp", Data: []byte{1}}
	_, err := svc.Update(context.Background(), id, journalRequest(), image)

	require.NoError(t, err)
	storage.AssertExpectations(t)
}

func TestUpdate_WithoutImageKeepsURL(t *testing.T) {
	repo := new(MockRepository)
	storage := new(MockStorage)
	svc := NewShopService(repo, storage)

	id := uuid.New()
	repo.On("Get", mock.Anything, id).Return(&shop.Product{
		ID:       id,
		Name:     "Gratitude Journal",
		Category: "Journal",
		ImageURL: "https://cdn.example.com/shop/old.png",
	}, nil)
	repo.On("Update", mock.Anything, mock.MatchedBy(func(p *shop.Product) bool {
		return p.ImageURL == "https://cdn.example.com/shop/old.png"
	})).Return(nil)

	_, err := svc.Update(context.Background(), id, journalRequest(), nil)

	require.NoError(t, err)
	storage.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestDelete_StorageFailureIsTolerated(t *testing.T) {
	repo := new(MockRepository)
	storage := new(MockStorage)
	svc := NewShopService(repo, storage)

	id := uuid.New()
	repo.On("Get", mock.Anything, id).Return(&shop.Product{
		ID:       id,
		ImageURL: "https://cdn.example.com/shop/x.png",
	}, nil)
	repo.On("Delete", mock.Anything, id).Return(nil)
	storage.On("KeyFromURL", "https://cdn.example.com/shop/x.png").Return("shop/x.png")
	storage.On("Delete", mock.Anything, "shop/x.png").Return(errors.New("bucket offline"))

	err := svc.Delete(context.Background(), id)

	assert.NoError(t, err, "row removal must win even when the object lingers")
}
