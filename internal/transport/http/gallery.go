package http

import (
	"errors"
	"net/http"
	"strings"

	"sundar_marbles/internal/repository"
	"sundar_marbles/internal/storage"
	"sundar_marbles/internal/transport/http/dto"
	"sundar_marbles/internal/transport/http/dto/response"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// ListGalleryCategories returns the gallery sections in display order.
func (r *Routers) ListGalleryCategories(c echo.Context) error {
	categories, err := r.GalleryService.ListCategories(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, response.ErrInternal)
	}

	return c.JSON(http.StatusOK, response.SuccessResponse(categories))
}

// ListGalleryCategoriesWithCount returns gallery sections with image
// counts.
func (r *Routers) ListGalleryCategoriesWithCount(c echo.Context) error {
	counts, err := r.GalleryService.ListCategoriesWithCount(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, response.ErrInternal)
	}

	return c.JSON(http.StatusOK, response.SuccessResponse(counts))
}

// ListGalleryImages is the paginated public gallery listing.
func (r *Routers) ListGalleryImages(c echo.Context) error {
	filter, err := galleryFilterFromQuery(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, response.ErrInvalidRequestFormat)
	}

	images, total, err := r.GalleryService.ListImages(c.Request().Context(), filter)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, response.ErrInternal)
	}

	return c.JSON(http.StatusOK, response.SuccessResponse(
		dto.NewListResponse(images, total, filter.Page, filter.PerPage),
	))
}

// ListFeaturedGalleryImages returns the homepage gallery strip.
func (r *Routers) ListFeaturedGalleryImages(c echo.Context) error {
	images, err := r.GalleryService.FeaturedImages(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, response.ErrInternal)
	}

	return c.JSON(http.StatusOK, response.SuccessResponse(images))
}

// GetGalleryImage returns one gallery image by id.
func (r *Routers) GetGalleryImage(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, response.ErrInvalidRequestFormat)
	}

	img, err := r.GalleryService.GetImageByID(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, storage.ErrImageNotFound) {
			return c.JSON(http.StatusNotFound, response.ErrImageNotFound)
		}
		return c.JSON(http.StatusInternalServerError, response.ErrInternal)
	}

	return c.JSON(http.StatusOK, response.SuccessResponse(img))
}

func galleryFilterFromQuery(c echo.Context) (repository.GalleryFilter, error) {
	page, perPage := paginationParams(c)

	filter := repository.GalleryFilter{
		Search:  c.QueryParam("search"),
		OrderBy: c.QueryParam("ordering"),
		Page:    page,
		PerPage: perPage,
	}

	if raw := c.QueryParam("category"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return repository.GalleryFilter{}, err
		}
		filter.CategoryID = &id
	}

	if raw := c.QueryParam("featured"); raw != "" {
		featured := raw == "true" || raw == "1"
		filter.Featured = &featured
	}

	if raw := c.QueryParam("tags"); raw != "" {
		for _, tag := range strings.Split(raw, ",") {
			if tag = strings.TrimSpace(tag); tag != "" {
				filter.Tags = append(filter.Tags, tag)
			}
		}
	}

	return filter, nil
}
