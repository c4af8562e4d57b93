package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/chrisakin/Katherine-Akintade-Website/internal/domains/blog"
	"github.com/chrisakin/Katherine-Akintade-Website/internal/shared/utils"
)

type blogService struct {
	repo blog.Repository
}

func NewBlogService(repo blog.Repository) blog.Service {
	return &blogService{repo: repo}
}

func (s *blogService) List(ctx context.Context) ([]blog.BlogPostDTO, error) {
	posts, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return toDTOs(posts), nil
}

func (s *blogService) ListPublished(ctx context.Context) ([]blog.BlogPostDTO, error) {
	posts, err := s.repo.ListPublished(ctx)
	if err != nil {
		return nil, err
	}
	return toDTOs(posts), nil
}

func (s *blogService) GetBySlug(ctx context.Context, slug string) (*blog.BlogPostDTO, error) {
	post, err := s.repo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	dto := blog.ToDTO(post)
	return &dto, nil
}

func (s *blogService) Save(ctx context.Context, id *uuid.UUID, req blog.SavePostRequest) (*blog.BlogPostDTO, error) {
	var publishedAt *time.Time
	if req.Published {
		now := time.Now()
		publishedAt = &now
	}

	if id == nil {
		post := &blog.BlogPost{
			ID:          uuid.New(),
			Title:       req.Title,
			Slug:        utils.GenerateSlug(req.Title),
			Content:     req.Content,
			Excerpt:     req.Excerpt,
			Category:    req.Category,
			Published:   req.Published,
			PublishedAt: publishedAt,
			CreatedAt:   time.Now(),
		}
		if err := s.repo.Insert(ctx, post); err != nil {
			return nil, err
		}
		dto := blog.ToDTO(post)
		return &dto, nil
	}

	post, err := s.repo.Get(ctx, *id)
	if err != nil {
		return nil, err
	}
	post.Title = req.Title
	post.Slug = utils.GenerateSlug(req.Title)
	post.Content = req.Content
	post.Excerpt = req.Excerpt
	post.Category = req.Category
	post.Published = req.Published
	post.PublishedAt = publishedAt
	if err := s.repo.Update(ctx, post); err != nil {
		return nil, err
	}
	dto := blog.ToDTO(post)
	return &dto, nil
}

func (s *blogService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}

func toDTOs(posts []blog.BlogPost) []blog.BlogPostDTO {
	dtos := make([]blog.BlogPostDTO, 0, len(posts))
	for i := range posts {
		dtos = append(dtos, blog.ToDTO(&posts[i]))
	}
	return dtos
}
