package dto

import (
	"mime/multipart"

	"github.com/google/uuid"
)

// Upload targets supported by the media endpoint.
const (
	UploadKindProduct = "product"
	UploadKindGallery = "gallery"
)

// MediaUploadInput is an admin image upload bound from a multipart form.
// TargetID is the product for product uploads and the gallery category
// for gallery uploads.
type MediaUploadInput struct {
	Kind     string
	TargetID uuid.UUID
	Title    string
	AltText  string
	File     *multipart.FileHeader
}

// MediaUploadResult points at the stored file.
type MediaUploadResult struct {
	ID   uuid.UUID `json:"id"`
	Path string    `json:"path"`
	URL  string    `json:"url"`
	Size int64     `json:"size"`
}
