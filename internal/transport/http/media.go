package http

import (
	"errors"
	"net/http"

	"sundar_marbles/internal/storage"
	"sundar_marbles/internal/transport/http/dto"
	"sundar_marbles/internal/transport/http/dto/response"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// UploadMedia stores a staff image upload. When a target_id is given the
// file is also recorded: product uploads attach to the product's image
// set, gallery uploads create a gallery image under that category.
func (r *Routers) UploadMedia(c echo.Context) error {
	file, err := c.FormFile("file")
	if err != nil {
		return c.JSON(http.StatusBadRequest, response.ErrorResponseWithDetails("invalid_request", "file is required"))
	}

	kind := c.FormValue("kind")
	if kind != dto.UploadKindProduct && kind != dto.UploadKindGallery {
		return c.JSON(http.StatusBadRequest, response.ErrorResponseWithDetails("invalid_request", "kind must be product or gallery"))
	}

	input := dto.MediaUploadInput{
		Kind:    kind,
		Title:   c.FormValue("title"),
		AltText: c.FormValue("alt_text"),
		File:    file,
	}

	if raw := c.FormValue("target_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return c.JSON(http.StatusBadRequest, response.ErrorResponseWithDetails("invalid_request", "target_id must be a valid uuid"))
		}
		input.TargetID = id
	}

	result, err := r.MediaService.UploadMedia(c.Request().Context(), input)
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrFileTooLarge):
			return c.JSON(http.StatusBadRequest, response.ErrorResponseWithDetails("file_too_large", "uploaded file exceeds the size limit"))
		case errors.Is(err, storage.ErrInvalidFileType):
			return c.JSON(http.StatusBadRequest, response.ErrorResponseWithDetails("invalid_file_type", "only image uploads are accepted"))
		default:
			return c.JSON(http.StatusInternalServerError, response.ErrInternal)
		}
	}

	return c.JSON(http.StatusCreated, response.Response{
		Status:  "success",
		Message: "File uploaded successfully",
		Data:    result,
	})
}
