package repository

import (
	"strings"

	"github.com/jackc/pgx/v4/pgxpool"
)

// Repository bundles all postgres-backed repositories over one pool.
type Repository struct {
	db         *pgxpool.Pool
	Contact    ContactRepository
	Newsletter NewsletterRepository
	Product    ProductRepository
	Gallery    GalleryRepository
}

func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{
		db:         db,
		Contact:    NewContactRepository(db),
		Newsletter: NewNewsletterRepository(db),
		Product:    NewProductRepository(db),
		Gallery:    NewGalleryRepository(db),
	}
}

func (r *Repository) Close() {
	r.db.Close()
}

func joinColumns(cols []string) string {
	return strings.Join(cols, ", ")
}

// NormalizePage clamps listing pagination to the shared defaults. The
// response envelope applies the same rule, so the page and per_page it
// reports always match what was actually queried.
func NormalizePage(page, perPage int) (int, int) {
	if page < 1 {
		page = 1
	}
	if perPage < 1 || perPage > 100 {
		perPage = 12
	}
	return page, perPage
}
