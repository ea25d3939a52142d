package models

import (
	"time"

	"github.com/google/uuid"
)

// Category groups products: Marble, Granite, Onyx and so on.
type Category struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Slug        string    `json:"slug"`
	Description string    `json:"description,omitempty"`
	IsActive    bool      `json:"-"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"-"`
}

// CategoryCount is a category projection with its active product or
// image count, used by the with-count listings.
type CategoryCount struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Slug  string    `json:"slug"`
	Count int       `json:"count"`
}

type Product struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Slug        string    `json:"slug"`
	Description string    `json:"description,omitempty"`
	CategoryID  uuid.UUID `json:"category_id"`
	Image       string    `json:"image"`

	// Stone specifications
	Origin    string `json:"origin,omitempty"`
	Finish    string `json:"finish,omitempty"`
	Thickness string `json:"thickness,omitempty"`

	MetaTitle       string `json:"meta_title,omitempty"`
	MetaDescription string `json:"meta_description,omitempty"`

	IsActive   bool `json:"-"`
	IsFeatured bool `json:"is_featured"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"-"`
}

// ProductImage is an additional image attached to a product.
type ProductImage struct {
	ID        uuid.UUID `json:"id"`
	ProductID uuid.UUID `json:"product_id"`
	Image     string    `json:"image"`
	AltText   string    `json:"alt_text,omitempty"`
	IsPrimary bool      `json:"is_primary"`
	Order     int       `json:"order"`
	CreatedAt time.Time `json:"created_at"`
}
