package repository

import (
	"context"
	"time"

	"sundar_marbles/internal/domain/models"

	"github.com/google/uuid"
)

type ContactRepository interface {
	SaveMessage(ctx context.Context, msg models.ContactMessage) (models.ContactMessage, error)
	GetMessageByID(ctx context.Context, id uuid.UUID) (models.ContactMessage, error)
	ListMessages(ctx context.Context, statusFilter string, page, perPage int) ([]models.ContactMessage, int, error)
	MarkAsRead(ctx context.Context, id uuid.UUID, readAt time.Time) (bool, error)
	SetStatus(ctx context.Context, id uuid.UUID, status models.MessageStatus) error
	UpdateModeration(ctx context.Context, id uuid.UUID, updates map[string]interface{}) error
	MarkWhatsAppSent(ctx context.Context, id uuid.UUID, sentAt time.Time) error
	ListActiveContactInfo(ctx context.Context) ([]models.ContactInfo, error)
}

type NewsletterRepository interface {
	// Upsert creates the subscription or reactivates an inactive row with
	// the same email. Always returns the surviving row.
	Upsert(ctx context.Context, email, name string) (models.NewsletterSubscription, error)
	Unsubscribe(ctx context.Context, email string, at time.Time) (bool, error)
}

type ProductRepository interface {
	ListCategories(ctx context.Context) ([]models.Category, error)
	ListCategoriesWithCount(ctx context.Context) ([]models.CategoryCount, error)
	ListProducts(ctx context.Context, filter ProductFilter) ([]models.Product, int, error)
	GetProductBySlug(ctx context.Context, slug string) (models.Product, error)
	ListProductImages(ctx context.Context, productID uuid.UUID) ([]models.ProductImage, error)
	SaveProductImage(ctx context.Context, img models.ProductImage) (uuid.UUID, error)
}

type GalleryRepository interface {
	ListCategories(ctx context.Context) ([]models.GalleryCategory, error)
	ListCategoriesWithCount(ctx context.Context) ([]models.CategoryCount, error)
	ListImages(ctx context.Context, filter GalleryFilter) ([]models.GalleryImage, int, error)
	GetImageByID(ctx context.Context, id uuid.UUID) (models.GalleryImage, error)
	SaveImage(ctx context.Context, img models.GalleryImage) (uuid.UUID, error)
}

// ListingCache caches expensive public listings (with-count projections,
// featured subsets). Implementations must treat misses as non-errors.
type ListingCache interface {
	Get(ctx context.Context, key string, dest interface{}) (bool, error)
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	Invalidate(ctx context.Context, keys ...string) error
}

// ProductFilter narrows and orders the public product listing.
type ProductFilter struct {
	CategoryID *uuid.UUID
	Featured   *bool
	Search     string
	OrderBy    string
	Page       int
	PerPage    int
}

// GalleryFilter narrows and orders the public gallery listing.
type GalleryFilter struct {
	CategoryID *uuid.UUID
	Featured   *bool
	Tags       []string
	Search     string
	OrderBy    string
	Page       int
	PerPage    int
}
