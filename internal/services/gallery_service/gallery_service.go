package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"sundar_marbles/internal/domain/models"
	"sundar_marbles/internal/lib/logger/sl"
	"sundar_marbles/internal/repository"

	"github.com/google/uuid"
)

const listingCacheTTL = 5 * time.Minute

type GalleryService struct {
	log   *slog.Logger
	repo  repository.GalleryRepository
	cache repository.ListingCache
}

func NewGalleryService(log *slog.Logger, repo repository.GalleryRepository, cache repository.ListingCache) *GalleryService {
	return &GalleryService{
		log:   log,
		repo:  repo,
		cache: cache,
	}
}

func (s *GalleryService) ListCategories(ctx context.Context) ([]models.GalleryCategory, error) {
	const op = "gallery_service.ListCategories"

	categories, err := s.repo.ListCategories(ctx)
	if err != nil {
		s.log.Error("failed to list gallery categories", slog.String("op", op), sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return categories, nil
}

func (s *GalleryService) ListCategoriesWithCount(ctx context.Context) ([]models.CategoryCount, error) {
	const op = "gallery_service.ListCategoriesWithCount"
	log := s.log.With(slog.String("op", op))

	var cached []models.CategoryCount
	hit, err := s.cache.Get(ctx, repository.CacheKeyGalleryCategories, &cached)
	if err != nil {
		log.Warn("listing cache read failed", sl.Err(err))
	}
	if hit {
		return cached, nil
	}

	counts, err := s.repo.ListCategoriesWithCount(ctx)
	if err != nil {
		log.Error("failed to list gallery categories with count", sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if err := s.cache.Set(ctx, repository.CacheKeyGalleryCategories, counts, listingCacheTTL); err != nil {
		log.Warn("listing cache write failed", sl.Err(err))
	}

	return counts, nil
}

func (s *GalleryService) ListImages(ctx context.Context, filter repository.GalleryFilter) ([]models.GalleryImage, int, error) {
	const op = "gallery_service.ListImages"

	images, total, err := s.repo.ListImages(ctx, filter)
	if err != nil {
		s.log.Error("failed to list gallery images", slog.String("op", op), sl.Err(err))
		return nil, 0, fmt.Errorf("%s: %w", op, err)
	}

	return images, total, nil
}

func (s *GalleryService) FeaturedImages(ctx context.Context) ([]models.GalleryImage, error) {
	const op = "gallery_service.FeaturedImages"
	log := s.log.With(slog.String("op", op))

	var cached []models.GalleryImage
	hit, err := s.cache.Get(ctx, repository.CacheKeyFeaturedImages, &cached)
	if err != nil {
		log.Warn("listing cache read failed", sl.Err(err))
	}
	if hit {
		return cached, nil
	}

	featured := true
	images, _, err := s.repo.ListImages(ctx, repository.GalleryFilter{Featured: &featured})
	if err != nil {
		log.Error("failed to list featured images", sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if err := s.cache.Set(ctx, repository.CacheKeyFeaturedImages, images, listingCacheTTL); err != nil {
		log.Warn("listing cache write failed", sl.Err(err))
	}

	return images, nil
}

func (s *GalleryService) GetImageByID(ctx context.Context, id uuid.UUID) (models.GalleryImage, error) {
	const op = "gallery_service.GetImageByID"
	log := s.log.With(
		slog.String("op", op),
		slog.String("image_id", id.String()),
	)

	img, err := s.repo.GetImageByID(ctx, id)
	if err != nil {
		log.Warn("gallery image lookup failed", sl.Err(err))
		return models.GalleryImage{}, fmt.Errorf("%s: %w", op, err)
	}

	return img, nil
}
