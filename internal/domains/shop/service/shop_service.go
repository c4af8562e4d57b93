package service

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/google/uuid"

	"github.com/chrisakin/Katherine-Akintade-Website/internal/domains/shop"
	"github.com/chrisakin/Katherine-Akintade-Website/internal/shared/upload"
	"github.com/chrisakin/Katherine-Akintade-Website/pkg/logger"
)

type shopService struct {
	repo    shop.Repository
	storage shop.MediaStorage
}

func NewShopService(repo shop.Repository, storage shop.MediaStorage) shop.Service {
	return &shopService{repo: repo, storage: storage}
}

func (s *shopService) List(ctx context.Context) ([]shop.ProductDTO, error) {
	products, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return toDTOs(products), nil
}

func (s *shopService) ListActive(ctx context.Context) ([]shop.ProductDTO, error) {
	products, err := s.repo.ListActive(ctx)
	if err != nil {
		return nil, err
	}
	return toDTOs(products), nil
}

func (s *shopService) Get(ctx context.Context, id uuid.UUID) (*shop.ProductDTO, error) {
	product, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	dto := shop.ToDTO(product)
	return &dto, nil
}

func (s *shopService) Create(ctx context.Context, req shop.SaveProductRequest, image *upload.File) (*shop.ProductDTO, error) {
	var imageURL string
	if image != nil {
		url, err := s.store(ctx, image)
		if err != nil {
			return nil, err
		}
		imageURL = url
	}

	product := &shop.Product{
		ID:          uuid.New(),
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Category:    req.Category,
		ImageURL:    imageURL,
		Active:      req.Active,
		CreatedAt:   time.Now(),
	}
	if err := s.repo.Insert(ctx, product); err != nil {
		return nil, err
	}
	dto := shop.ToDTO(product)
	return &dto, nil
}

func (s *shopService) Update(ctx context.Context, id uuid.UUID, req shop.SaveProductRequest, image *upload.File) (*shop.ProductDTO, error) {
	product, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	oldImageURL := product.ImageURL
	if image != nil {
		url, err := s.store(ctx, image)
		if err != nil {
			return nil, err
		}
		product.ImageURL = url
	}

	product.Name = req.Name
	product.Description = req.Description
	product.Price = req.Price
	product.Category = req.Category
	product.Active = req.Active

	if err := s.repo.Update(ctx, product); err != nil {
		return nil, err
	}

	if image != nil && oldImageURL != "" {
		s.removeObject(ctx, oldImageURL)
	}

	dto := shop.ToDTO(product)
	return &dto, nil
}

func (s *shopService) Delete(ctx context.Context, id uuid.UUID) error {
	product, err := s.repo.Get(ctx, id)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	if product.ImageURL != "" {
		s.removeObject(ctx, product.ImageURL)
	}
	return nil
}

// store validates the MIME type before any bytes leave the process.
func (s *shopService) store(ctx context.Context, file *upload.File) (string, error) {
	if !slices.Contains(shop.AcceptedImageTypes, file.ContentType) {
		return "", shop.ErrInvalidImageType
	}
	key := fmt.Sprintf("shop/%s%s", uuid.New().String(), file.Ext())
	return s.storage.Upload(ctx, key, file.Data, file.ContentType)
}

// removeObject is best effort. The row is already gone or repointed,
// an orphaned object only costs storage.
func (s *shopService) removeObject(ctx context.Context, url string) {
	key := s.storage.KeyFromURL(url)
	if key == "" {
		return
	}
	if err := s.storage.Delete(ctx, key); err != nil {
		logger.Warn("failed to delete product image", err)
	}
}

func toDTOs(products []shop.Product) []shop.ProductDTO {
	dtos := make([]shop.ProductDTO, 0, len(products))
	for i := range products {
		dtos = append(dtos, shop.ToDTO(&products[i]))
	}
	return dtos
}
