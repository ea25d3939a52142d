package http

import (
	"context"
	"crypto/subtle"
	"log/slog"
	"net/http"
	"time"

	"sundar_marbles/internal/domain/models"
	"sundar_marbles/internal/lib/jwt"
	"sundar_marbles/internal/lib/logger/sl"
	"sundar_marbles/internal/repository"
	"sundar_marbles/internal/transport/http/dto"
	"sundar_marbles/internal/transport/http/dto/request"
	"sundar_marbles/internal/transport/http/dto/response"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

type ContactService interface {
	SubmitMessage(ctx context.Context, req request.ContactMessageRequest) (models.ContactMessage, error)
	ListMessages(ctx context.Context, statusFilter string, page, perPage int) ([]models.ContactMessage, int, error)
	MarkAsRead(ctx context.Context, id uuid.UUID) (models.ContactMessage, error)
	MarkAsReplied(ctx context.Context, id uuid.UUID) (models.ContactMessage, error)
	MarkAsClosed(ctx context.Context, id uuid.UUID) (models.ContactMessage, error)
	UpdateModeration(ctx context.Context, id uuid.UUID, req request.ModerationUpdateRequest) (models.ContactMessage, error)
	GenerateWhatsAppLink(ctx context.Context, id uuid.UUID) (string, error)
	ListContactInfo(ctx context.Context) ([]models.ContactInfo, error)
}

type NewsletterService interface {
	Subscribe(ctx context.Context, email, name string) (models.NewsletterSubscription, error)
	Unsubscribe(ctx context.Context, email string) error
}

type CatalogService interface {
	ListCategories(ctx context.Context) ([]models.Category, error)
	ListCategoriesWithCount(ctx context.Context) ([]models.CategoryCount, error)
	ListProducts(ctx context.Context, filter repository.ProductFilter) ([]models.Product, int, error)
	FeaturedProducts(ctx context.Context) ([]models.Product, error)
	GetProductBySlug(ctx context.Context, slug string) (models.Product, []models.ProductImage, error)
}

type GalleryService interface {
	ListCategories(ctx context.Context) ([]models.GalleryCategory, error)
	ListCategoriesWithCount(ctx context.Context) ([]models.CategoryCount, error)
	ListImages(ctx context.Context, filter repository.GalleryFilter) ([]models.GalleryImage, int, error)
	FeaturedImages(ctx context.Context) ([]models.GalleryImage, error)
	GetImageByID(ctx context.Context, id uuid.UUID) (models.GalleryImage, error)
}

type MediaService interface {
	UploadMedia(ctx context.Context, input dto.MediaUploadInput) (dto.MediaUploadResult, error)
}

// AdminCredentials drives the staff login endpoint.
type AdminCredentials struct {
	Username string
	Password string
	Secret   string
	TokenTTL time.Duration
}

type Routers struct {
	log               *slog.Logger
	admin             AdminCredentials
	ContactService    ContactService
	NewsletterService NewsletterService
	CatalogService    CatalogService
	GalleryService    GalleryService
	MediaService      MediaService
}

func NewRouter(
	log *slog.Logger,
	admin AdminCredentials,
	contactService ContactService,
	newsletterService NewsletterService,
	catalogService CatalogService,
	galleryService GalleryService,
	mediaService MediaService,
) *Routers {
	return &Routers{
		log:               log,
		admin:             admin,
		ContactService:    contactService,
		NewsletterService: newsletterService,
		CatalogService:    catalogService,
		GalleryService:    galleryService,
		MediaService:      mediaService,
	}
}

// AdminLogin exchanges the configured staff credentials for a JWT.
func (r *Routers) AdminLogin(c echo.Context) error {
	const op = "http.routers.AdminLogin"

	log := r.log.With(
		slog.String("op", op),
	)

	var req request.AdminLoginRequest

	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, response.ErrInvalidRequestFormat)
	}

	if err := c.Validate(req); err != nil {
		return c.JSON(http.StatusBadRequest, response.ErrorResponseWithDetails("validation_failed", err.Error()))
	}

	userOK := subtle.ConstantTimeCompare([]byte(req.Username), []byte(r.admin.Username)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(req.Password), []byte(r.admin.Password)) == 1
	if !userOK || !passOK {
		log.Warn("admin login rejected", slog.String("username", req.Username))
		return c.JSON(http.StatusUnauthorized, response.ErrAuthenticationFailed)
	}

	token, err := jwt.NewAdminToken(req.Username, r.admin.Secret, r.admin.TokenTTL)
	if err != nil {
		log.Error("failed to issue admin token", sl.Err(err))
		return c.JSON(http.StatusInternalServerError, response.ErrInternal)
	}

	return c.JSON(http.StatusOK, response.Response{
		Status: "success",
		Data:   map[string]string{"access_token": token},
	})
}

// Health is the liveness probe.
func (r *Routers) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
