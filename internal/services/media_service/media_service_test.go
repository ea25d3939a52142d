package services

import (
	"context"
	"errors"
	"log/slog"
	"mime/multipart"
	"testing"

	"sundar_marbles/internal/domain/models"
	"sundar_marbles/internal/repository"
	"sundar_marbles/internal/transport/http/dto"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) ListCategories(ctx context.Context) ([]models.Category, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.Category), args.Error(1)
}

func (m *MockProductRepository) ListCategoriesWithCount(ctx context.Context) ([]models.CategoryCount, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.CategoryCount), args.Error(1)
}

func (m *MockProductRepository) ListProducts(ctx context.Context, filter repository.ProductFilter) ([]models.Product, int, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]models.Product), args.Int(1), args.Error(2)
}

func (m *MockProductRepository) GetProductBySlug(ctx context.Context, slug string) (models.Product, error) {
	args := m.Called(ctx, slug)
	return args.Get(0).(models.Product), args.Error(1)
}

func (m *MockProductRepository) ListProductImages(ctx context.Context, productID uuid.UUID) ([]models.ProductImage, error) {
	args := m.Called(ctx, productID)
	return args.Get(0).([]models.ProductImage), args.Error(1)
}

func (m *MockProductRepository) SaveProductImage(ctx context.Context, img models.ProductImage) (uuid.UUID, error) {
	args := m.Called(ctx, img)
	return args.Get(0).(uuid.UUID), args.Error(1)
}

type MockGalleryRepository struct {
	mock.Mock
}

func (m *MockGalleryRepository) ListCategories(ctx context.Context) ([]models.GalleryCategory, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.GalleryCategory), args.Error(1)
}

func (m *MockGalleryRepository) ListCategoriesWithCount(ctx context.Context) ([]models.CategoryCount, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.CategoryCount), args.Error(1)
}

func (m *MockGalleryRepository) ListImages(ctx context.Context, filter repository.GalleryFilter) ([]models.GalleryImage, int, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]models.GalleryImage), args.Int(1), args.Error(2)
}

func (m *MockGalleryRepository) GetImageByID(ctx context.Context, id uuid.UUID) (models.GalleryImage, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(models.GalleryImage), args.Error(1)
}

func (m *MockGalleryRepository) SaveImage(ctx context.Context, img models.GalleryImage) (uuid.UUID, error) {
	args := m.Called(ctx, img)
	return args.Get(0).(uuid.UUID), args.Error(1)
}

type MockFileStorage struct {
	mock.Mock
}

func (m *MockFileStorage) Save(ctx context.Context, file *multipart.FileHeader, subPath string) (string, int64, error) {
	args := m.Called(ctx, file, subPath)
	return args.String(0), args.Get(1).(int64), args.Error(2)
}

func (m *MockFileStorage) Delete(ctx context.Context, filePath string) error {
	args := m.Called(ctx, filePath)
	return args.Error(0)
}

func (m *MockFileStorage) GetFullPath(relativePath string) string {
	args := m.Called(relativePath)
	return args.String(0)
}

func (m *MockFileStorage) BaseURL() string {
	args := m.Called()
	return args.String(0)
}

func TestMediaService_UploadMedia_Product(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockProductRepository)
	mockFS := new(MockFileStorage)
	service := NewMediaService(slog.Default(), mockRepo, new(MockGalleryRepository), mockFS)

	productID := uuid.New()
	imageID := uuid.New()
	file := &multipart.FileHeader{Filename: "slab.jpg"}

	mockFS.On("Save", ctx, file, "products").Return("products/slab.jpg", int64(2048), nil).Once()
	mockFS.On("BaseURL").Return("/media").Once()
	mockRepo.On("SaveProductImage", ctx, mock.MatchedBy(func(img models.ProductImage) bool {
		return img.ProductID == productID && img.Image == "products/slab.jpg"
	})).Return(imageID, nil).Once()

	result, err := service.UploadMedia(ctx, dto.MediaUploadInput{
		Kind:     dto.UploadKindProduct,
		TargetID: productID,
		AltText:  "white slab",
		File:     file,
	})
	require.NoError(t, err)
	assert.Equal(t, imageID, result.ID)
	assert.Equal(t, "products/slab.jpg", result.Path)
	assert.Equal(t, "/media/products/slab.jpg", result.URL)
	assert.Equal(t, int64(2048), result.Size)

	mockRepo.AssertExpectations(t)
	mockFS.AssertExpectations(t)
}

func TestMediaService_UploadMedia_GalleryWithCategory(t *testing.T) {
	ctx := context.Background()
	mockGallery := new(MockGalleryRepository)
	mockFS := new(MockFileStorage)
	service := NewMediaService(slog.Default(), new(MockProductRepository), mockGallery, mockFS)

	categoryID := uuid.New()
	imageID := uuid.New()
	file := &multipart.FileHeader{Filename: "stairs.jpg"}

	mockFS.On("Save", ctx, file, "gallery").Return("gallery/stairs.jpg", int64(4096), nil).Once()
	mockFS.On("BaseURL").Return("/media").Once()
	mockGallery.On("SaveImage", ctx, mock.MatchedBy(func(img models.GalleryImage) bool {
		return img.CategoryID == categoryID &&
			img.Image == "gallery/stairs.jpg" &&
			img.Title == "Marble Stairs" &&
			img.IsActive
	})).Return(imageID, nil).Once()

	result, err := service.UploadMedia(ctx, dto.MediaUploadInput{
		Kind:     dto.UploadKindGallery,
		TargetID: categoryID,
		Title:    "Marble Stairs",
		File:     file,
	})
	require.NoError(t, err)
	assert.Equal(t, imageID, result.ID)
	assert.Equal(t, "gallery/stairs.jpg", result.Path)

	mockGallery.AssertExpectations(t)
	mockFS.AssertExpectations(t)
}

func TestMediaService_UploadMedia_GalleryWithoutTarget(t *testing.T) {
	ctx := context.Background()
	mockGallery := new(MockGalleryRepository)
	mockFS := new(MockFileStorage)
	service := NewMediaService(slog.Default(), new(MockProductRepository), mockGallery, mockFS)

	file := &multipart.FileHeader{Filename: "stairs.jpg"}

	mockFS.On("Save", ctx, file, "gallery").Return("gallery/stairs.jpg", int64(4096), nil).Once()
	mockFS.On("BaseURL").Return("/media").Once()

	result, err := service.UploadMedia(ctx, dto.MediaUploadInput{
		Kind: dto.UploadKindGallery,
		File: file,
	})
	require.NoError(t, err)
	assert.Equal(t, uuid.Nil, result.ID)
	assert.Equal(t, "gallery/stairs.jpg", result.Path)

	mockGallery.AssertNotCalled(t, "SaveImage")
}

func TestMediaService_UploadMedia_GalleryTitleDefaultsToFilename(t *testing.T) {
	ctx := context.Background()
	mockGallery := new(MockGalleryRepository)
	mockFS := new(MockFileStorage)
	service := NewMediaService(slog.Default(), new(MockProductRepository), mockGallery, mockFS)

	categoryID := uuid.New()
	file := &multipart.FileHeader{Filename: "black-granite-floor.jpg"}

	mockFS.On("Save", ctx, file, "gallery").Return("gallery/black-granite-floor.jpg", int64(1024), nil).Once()
	mockFS.On("BaseURL").Return("/media").Once()
	mockGallery.On("SaveImage", ctx, mock.MatchedBy(func(img models.GalleryImage) bool {
		return img.Title == "black-granite-floor"
	})).Return(uuid.New(), nil).Once()

	_, err := service.UploadMedia(ctx, dto.MediaUploadInput{
		Kind:     dto.UploadKindGallery,
		TargetID: categoryID,
		File:     file,
	})
	require.NoError(t, err)
	mockGallery.AssertExpectations(t)
}

func TestMediaService_UploadMedia_UnknownKind(t *testing.T) {
	ctx := context.Background()
	service := NewMediaService(slog.Default(), new(MockProductRepository), new(MockGalleryRepository), new(MockFileStorage))

	_, err := service.UploadMedia(ctx, dto.MediaUploadInput{Kind: "banner"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown upload kind")
}

func TestMediaService_UploadMedia_CleansUpOnDBFailure(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockProductRepository)
	mockFS := new(MockFileStorage)
	service := NewMediaService(slog.Default(), mockRepo, new(MockGalleryRepository), mockFS)

	productID := uuid.New()
	file := &multipart.FileHeader{Filename: "slab.jpg"}

	mockFS.On("Save", ctx, file, "products").Return("products/slab.jpg", int64(2048), nil).Once()
	mockFS.On("BaseURL").Return("/media").Once()
	mockRepo.On("SaveProductImage", ctx, mock.AnythingOfType("models.ProductImage")).
		Return(uuid.Nil, errors.New("db down")).Once()
	mockFS.On("Delete", ctx, "products/slab.jpg").Return(nil).Once()

	_, err := service.UploadMedia(ctx, dto.MediaUploadInput{
		Kind:     dto.UploadKindProduct,
		TargetID: productID,
		File:     file,
	})
	require.Error(t, err)
	mockFS.AssertExpectations(t)
}
