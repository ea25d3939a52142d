package http

import (
	"errors"
	"net/http"

	"sundar_marbles/internal/repository"
	"sundar_marbles/internal/storage"
	"sundar_marbles/internal/transport/http/dto"
	"sundar_marbles/internal/transport/http/dto/response"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// ListProductCategories returns the active catalog categories.
func (r *Routers) ListProductCategories(c echo.Context) error {
	categories, err := r.CatalogService.ListCategories(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, response.ErrInternal)
	}

	return c.JSON(http.StatusOK, response.SuccessResponse(categories))
}

// ListProductCategoriesWithCount returns categories with active product
// counts for the catalog sidebar.
func (r *Routers) ListProductCategoriesWithCount(c echo.Context) error {
	counts, err := r.CatalogService.ListCategoriesWithCount(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, response.ErrInternal)
	}

	return c.JSON(http.StatusOK, response.SuccessResponse(counts))
}

// ListProducts is the paginated public catalog listing.
func (r *Routers) ListProducts(c echo.Context) error {
	filter, err := productFilterFromQuery(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, response.ErrInvalidRequestFormat)
	}

	products, total, err := r.CatalogService.ListProducts(c.Request().Context(), filter)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, response.ErrInternal)
	}

	return c.JSON(http.StatusOK, response.SuccessResponse(
		dto.NewListResponse(products, total, filter.Page, filter.PerPage),
	))
}

// ListFeaturedProducts returns the homepage product strip.
func (r *Routers) ListFeaturedProducts(c echo.Context) error {
	products, err := r.CatalogService.FeaturedProducts(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, response.ErrInternal)
	}

	return c.JSON(http.StatusOK, response.SuccessResponse(products))
}

// GetProductBySlug returns one product with its image set.
func (r *Routers) GetProductBySlug(c echo.Context) error {
	slug := c.Param("slug")

	product, images, err := r.CatalogService.GetProductBySlug(c.Request().Context(), slug)
	if err != nil {
		if errors.Is(err, storage.ErrProductNotFound) {
			return c.JSON(http.StatusNotFound, response.ErrProductNotFound)
		}
		return c.JSON(http.StatusInternalServerError, response.ErrInternal)
	}

	return c.JSON(http.StatusOK, response.SuccessResponse(map[string]interface{}{
		"product": product,
		"images":  images,
	}))
}

func productFilterFromQuery(c echo.Context) (repository.ProductFilter, error) {
	page, perPage := paginationParams(c)

	filter := repository.ProductFilter{
		Search:  c.QueryParam("search"),
		OrderBy: c.QueryParam("ordering"),
		Page:    page,
		PerPage: perPage,
	}

	if raw := c.QueryParam("category"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return repository.ProductFilter{}, err
		}
		filter.CategoryID = &id
	}

	if raw := c.QueryParam("featured"); raw != "" {
		featured := raw == "true" || raw == "1"
		filter.Featured = &featured
	}

	return filter, nil
}
