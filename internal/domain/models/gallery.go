package models

import (
	"time"

	"github.com/google/uuid"
)

// GalleryCategory groups showcase images: Stairs, Floors, Mosaic etc.
type GalleryCategory struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Slug        string    `json:"slug"`
	Description string    `json:"description,omitempty"`
	IsActive    bool      `json:"-"`
	Order       int       `json:"order"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"-"`
}

type GalleryImage struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	CategoryID  uuid.UUID `json:"category_id"`
	Image       string    `json:"image"`
	AltText     string    `json:"alt_text,omitempty"`

	// Project details
	ProjectLocation string     `json:"project_location,omitempty"`
	CompletionDate  *time.Time `json:"completion_date,omitempty"`

	MetaTitle       string `json:"meta_title,omitempty"`
	MetaDescription string `json:"meta_description,omitempty"`

	IsActive   bool `json:"-"`
	IsFeatured bool `json:"is_featured"`
	Order      int  `json:"order"`

	Tags []string `json:"tags,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"-"`
}

type GalleryTag struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Slug      string    `json:"slug"`
	CreatedAt time.Time `json:"created_at"`
}
