package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"sundar_marbles/internal/domain/models"
	"sundar_marbles/internal/lib/logger/sl"
	"sundar_marbles/internal/repository"
)

const listingCacheTTL = 5 * time.Minute

type CatalogService struct {
	log   *slog.Logger
	repo  repository.ProductRepository
	cache repository.ListingCache
}

func NewCatalogService(log *slog.Logger, repo repository.ProductRepository, cache repository.ListingCache) *CatalogService {
	return &CatalogService{
		log:   log,
		repo:  repo,
		cache: cache,
	}
}

func (s *CatalogService) ListCategories(ctx context.Context) ([]models.Category, error) {
	const op = "catalog_service.ListCategories"

	categories, err := s.repo.ListCategories(ctx)
	if err != nil {
		s.log.Error("failed to list categories", slog.String("op", op), sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return categories, nil
}

// ListCategoriesWithCount serves the with-count projection from cache
// when possible; cache errors fall through to the database.
func (s *CatalogService) ListCategoriesWithCount(ctx context.Context) ([]models.CategoryCount, error) {
	const op = "catalog_service.ListCategoriesWithCount"
	log := s.log.With(slog.String("op", op))

	var cached []models.CategoryCount
	hit, err := s.cache.Get(ctx, repository.CacheKeyProductCategories, &cached)
	if err != nil {
		log.Warn("listing cache read failed", sl.Err(err))
	}
	if hit {
		return cached, nil
	}

	counts, err := s.repo.ListCategoriesWithCount(ctx)
	if err != nil {
		log.Error("failed to list categories with count", sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if err := s.cache.Set(ctx, repository.CacheKeyProductCategories, counts, listingCacheTTL); err != nil {
		log.Warn("listing cache write failed", sl.Err(err))
	}

	return counts, nil
}

func (s *CatalogService) ListProducts(ctx context.Context, filter repository.ProductFilter) ([]models.Product, int, error) {
	const op = "catalog_service.ListProducts"

	products, total, err := s.repo.ListProducts(ctx, filter)
	if err != nil {
		s.log.Error("failed to list products", slog.String("op", op), sl.Err(err))
		return nil, 0, fmt.Errorf("%s: %w", op, err)
	}

	return products, total, nil
}

func (s *CatalogService) FeaturedProducts(ctx context.Context) ([]models.Product, error) {
	const op = "catalog_service.FeaturedProducts"
	log := s.log.With(slog.String("op", op))

	var cached []models.Product
	hit, err := s.cache.Get(ctx, repository.CacheKeyFeaturedProducts, &cached)
	if err != nil {
		log.Warn("listing cache read failed", sl.Err(err))
	}
	if hit {
		return cached, nil
	}

	featured := true
	products, _, err := s.repo.ListProducts(ctx, repository.ProductFilter{Featured: &featured})
	if err != nil {
		log.Error("failed to list featured products", sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if err := s.cache.Set(ctx, repository.CacheKeyFeaturedProducts, products, listingCacheTTL); err != nil {
		log.Warn("listing cache write failed", sl.Err(err))
	}

	return products, nil
}

// GetProductBySlug returns an active product and its gallery images.
func (s *CatalogService) GetProductBySlug(ctx context.Context, slug string) (models.Product, []models.ProductImage, error) {
	const op = "catalog_service.GetProductBySlug"
	log := s.log.With(
		slog.String("op", op),
		slog.String("slug", slug),
	)

	product, err := s.repo.GetProductBySlug(ctx, slug)
	if err != nil {
		log.Warn("product lookup failed", sl.Err(err))
		return models.Product{}, nil, fmt.Errorf("%s: %w", op, err)
	}

	images, err := s.repo.ListProductImages(ctx, product.ID)
	if err != nil {
		log.Error("failed to list product images", sl.Err(err))
		return models.Product{}, nil, fmt.Errorf("%s: %w", op, err)
	}

	return product, images, nil
}
