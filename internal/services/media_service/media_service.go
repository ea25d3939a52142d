package services

import (
	"context"
	"fmt"
	"log/slog"
	"path"
	"strings"

	"sundar_marbles/internal/domain/models"
	"sundar_marbles/internal/lib/logger/sl"
	"sundar_marbles/internal/repository"
	storage "sundar_marbles/internal/storage/filestorage"
	"sundar_marbles/internal/transport/http/dto"

	"github.com/google/uuid"
)

// MediaService stores staff image uploads through the FileStorage
// abstraction and records product and gallery attachments.
type MediaService struct {
	log         *slog.Logger
	products    repository.ProductRepository
	gallery     repository.GalleryRepository
	fileStorage storage.FileStorage
}

func NewMediaService(log *slog.Logger, products repository.ProductRepository, gallery repository.GalleryRepository, fileStorage storage.FileStorage) *MediaService {
	return &MediaService{
		log:         log,
		products:    products,
		gallery:     gallery,
		fileStorage: fileStorage,
	}
}

func (s *MediaService) UploadMedia(ctx context.Context, input dto.MediaUploadInput) (dto.MediaUploadResult, error) {
	const op = "media_service.UploadMedia"

	log := s.log.With(
		slog.String("op", op),
		slog.String("kind", input.Kind),
	)

	var subPath string
	switch input.Kind {
	case dto.UploadKindProduct:
		subPath = "products"
	case dto.UploadKindGallery:
		subPath = "gallery"
	default:
		return dto.MediaUploadResult{}, fmt.Errorf("%s: unknown upload kind %q", op, input.Kind)
	}

	filePath, fileSize, err := s.fileStorage.Save(ctx, input.File, subPath)
	if err != nil {
		log.Error("failed to save file", sl.Err(err))
		return dto.MediaUploadResult{}, fmt.Errorf("%s: %w", op, err)
	}

	result := dto.MediaUploadResult{
		Path: filePath,
		URL:  path.Join(s.fileStorage.BaseURL(), filePath),
		Size: fileSize,
	}

	// Uploads without a target stay as bare files the caller references
	// later; with a target the record is created in the same call.
	if input.TargetID != uuid.Nil {
		var id uuid.UUID
		switch input.Kind {
		case dto.UploadKindProduct:
			id, err = s.products.SaveProductImage(ctx, models.ProductImage{
				ProductID: input.TargetID,
				Image:     filePath,
				AltText:   input.AltText,
			})
		case dto.UploadKindGallery:
			id, err = s.gallery.SaveImage(ctx, models.GalleryImage{
				Title:      uploadTitle(input),
				CategoryID: input.TargetID,
				Image:      filePath,
				AltText:    input.AltText,
				IsActive:   true,
			})
		}
		if err != nil {
			_ = s.fileStorage.Delete(ctx, filePath)
			log.Error("failed to record uploaded image", sl.Err(err))
			return dto.MediaUploadResult{}, fmt.Errorf("%s: %w", op, err)
		}
		result.ID = id
	}

	log.Info("media uploaded", slog.String("path", filePath), slog.Int64("size", fileSize))
	return result, nil
}

func uploadTitle(input dto.MediaUploadInput) string {
	if input.Title != "" {
		return input.Title
	}
	name := input.File.Filename
	return strings.TrimSuffix(name, path.Ext(name))
}
