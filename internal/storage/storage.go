package storage

import "errors"

var (
	ErrMessageNotFound  = errors.New("contact message not found")
	ErrProductNotFound  = errors.New("product not found")
	ErrImageNotFound    = errors.New("gallery image not found")
	ErrCategoryNotFound = errors.New("category not found")

	ErrInvalidStatusFilter = errors.New("invalid status filter")
)

var (
	ErrFileTooLarge    = errors.New("file size exceeds limit")
	ErrInvalidFileType = errors.New("invalid file type")
	ErrFileNotFound    = errors.New("file not found")
)
