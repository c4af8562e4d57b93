package service

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/chrisakin/Katherine-Akintade-Website/internal/domains/blog"
)

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) List(ctx context.Context) ([]blog.BlogPost, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]blog.BlogPost), args.Error(1)
}

func (m *MockRepository) ListPublished(ctx context.Context) ([]blog.BlogPost, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]blog.BlogPost), args.Error(1)
}

func (m *MockRepository) Get(ctx context.Context, id uuid.UUID) (*blog.BlogPost, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*blog.BlogPost), args.Error(1)
}

func (m *MockRepository) GetBySlug(ctx context.Context, slug string) (*blog.BlogPost, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*blog.BlogPost), args.Error(1)
}

func (m *MockRepository) Insert(ctx context.Context, post *blog.BlogPost) error {
	args := m.Called(ctx, post)
	return args.Error(0)
}

func (m *MockRepository) Update(ctx context.Context, post *blog.BlogPost) error {
	args := m.Called(ctx, post)
	return args.Error(0)
}

func (m *MockRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func draft(published bool) blog.SavePostRequest {
	return blog.SavePostRequest{
		Title:     "On Seeing Light",
		Content:   json.RawMessage(`{"blocks":[]}`),
		Excerpt:   "Notes on light.",
		Category:  "Photography",
		Published: published,
	}
}

func TestSave_PublishedSetsPublishedAt(t *testing.T) {
	repo := new(MockRepository)
	svc := NewBlogService(repo)

	var inserted *blog.BlogPost
	repo.On("Insert", mock.Anything, mock.AnythingOfType("*blog.BlogPost")).
		Run(func(args mock.Arguments) {
			inserted = args.Get(1).(*blog.BlogPost)
		}).
		Return(nil)

	dto, err := svc.Save(context.Background(), nil, draft(true))

	require.NoError(t, err)
	require.NotNil(t, inserted.PublishedAt)
	assert.WithinDuration(t, time.Now(), *inserted.PublishedAt, time.Minute)
	assert.True(t, dto.Published)
	assert.Equal(t, "on-seeing-light", dto.Slug)
}

func TestSave_UnpublishingClearsPublishedAt(t *testing.T) {
	repo := new(MockRepository)
	svc := NewBlogService(repo)

	id := uuid.New()
	was := time.Now().Add(-48 * time.Hour)
	repo.On("Get", mock.Anything, id).Return(&blog.BlogPost{
		ID:          id,
		Title:       "On Seeing Light",
		Slug:        "on-seeing-light",
		Published:   true,
		PublishedAt: &was,
	}, nil)

	var updated *blog.BlogPost
	repo.On("Update", mock.Anything, mock.AnythingOfType("*blog.BlogPost")).
		Run(func(args mock.Arguments) {
			updated = args.Get(1).(*blog.BlogPost)
		}).
		Return(nil)

	_, err := svc.Save(context.Background(), &id, draft(false))

	require.NoError(t, err)
	assert.False(t, updated.Published)
	assert.Nil(t, updated.PublishedAt, "unpublishing must drop the old publish time")
}

func TestSave_RepublishingRefreshesPublishedAt(t *testing.T) {
	repo := new(MockRepository)
	svc := NewBlogService(repo)

	id := uuid.New()
	was := time.Now().Add(-48 * time.Hour)
	repo.On("Get", mock.Anything, id).Return(&blog.BlogPost{
		ID:          id,
		Title:       "On Seeing Light",
		Slug:        "on-seeing-light",
		Published:   true,
		PublishedAt: &was,
	}, nil)

	var updated *blog.BlogPost
	repo.On("Update", mock.Anything, mock.AnythingOfType("*blog.BlogPost")).
		Run(func(args mock.Arguments) {
			updated = args.Get(1).(*blog.BlogPost)
		}).
		Return(nil)

	_, err := svc.Save(context.Background(), &id, draft(true))

	require.NoError(t, err)
	require.NotNil(t, updated.PublishedAt)
	assert.WithinDuration(t, time.Now(), *updated.PublishedAt, time.Minute)
}

func TestSave_EditedTitleRecomputesSlug(t *testing.T) {
	repo := new(MockRepository)
	svc := NewBlogService(repo)

	id := uuid.New()
	repo.On("Get", mock.Anything, id).Return(&blog.BlogPost{
		ID:    id,
		Title: "Old Title",
		Slug:  "old-title",
	}, nil)

	var updated *blog.BlogPost
	repo.On("Update", mock.Anything, mock.AnythingOfType("*blog.BlogPost")).
		Run(func(args mock.Arguments) {
			updated = args.Get(1).(*blog.BlogPost)
		}).
		Return(nil)

	req := draft(false)
	req.Title = "A Brand New Title!"
	_, err := svc.Save(context.Background(), &id, req)

	require.NoError(t, err)
	assert.Equal(t, "a-brand-new-title", updated.Slug)
}

func TestSave_UnknownPost(t *testing.T) {
	repo := new(MockRepository)
	svc := NewBlogService(repo)

	id := uuid.New()
	repo.On("Get", mock.Anything, id).Return(nil, blog.ErrNotFound)

	_, err := svc.Save(context.Background(), &id, draft(false))

	assert.ErrorIs(t, err, blog.ErrNotFound)
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestGetBySlug_NotFound(t *testing.T) {
	repo := new(MockRepository)
	svc := NewBlogService(repo)

	repo.On("GetBySlug", mock.Anything, "missing").Return(nil, blog.ErrNotFound)

	_, err := svc.GetBySlug(context.Background(), "missing")
	assert.ErrorIs(t, err, blog.ErrNotFound)
}
