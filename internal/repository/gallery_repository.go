package repository

import (
	"context"
	"errors"
	"fmt"

	"sundar_marbles/internal/domain/models"
	"sundar_marbles/internal/storage"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"
	"github.com/lib/pq"
)

type GalleryRepo struct {
	db *pgxpool.Pool
	sb sq.StatementBuilderType
}

func NewGalleryRepository(db *pgxpool.Pool) *GalleryRepo {
	return &GalleryRepo{
		db: db,
		sb: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

var galleryImageColumns = []string{
	"id",
	"title",
	"description",
	"category_id",
	"image",
	"alt_text",
	"project_location",
	"completion_date",
	"meta_title",
	"meta_description",
	"is_active",
	"is_featured",
	"display_order",
	"tags",
	"created_at",
	"updated_at",
}

func scanGalleryImage(row pgx.Row) (models.GalleryImage, error) {
	var img models.GalleryImage
	err := row.Scan(
		&img.ID,
		&img.Title,
		&img.Description,
		&img.CategoryID,
		&img.Image,
		&img.AltText,
		&img.ProjectLocation,
		&img.CompletionDate,
		&img.MetaTitle,
		&img.MetaDescription,
		&img.IsActive,
		&img.IsFeatured,
		&img.Order,
		pq.Array(&img.Tags),
		&img.CreatedAt,
		&img.UpdatedAt,
	)
	return img, err
}

func (r *GalleryRepo) ListCategories(ctx context.Context) ([]models.GalleryCategory, error) {
	const op = "repository.gallery_repository.ListCategories"

	query, args, err := r.sb.Select("id", "name", "slug", "description", "is_active", "display_order", "created_at", "updated_at").
		From("gallery_categories").
		Where(sq.Eq{"is_active": true}).
		OrderBy("display_order", "name").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var categories []models.GalleryCategory
	for rows.Next() {
		var c models.GalleryCategory
		if err := rows.Scan(&c.ID, &c.Name, &c.Slug, &c.Description, &c.IsActive, &c.Order, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		categories = append(categories, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return categories, nil
}

func (r *GalleryRepo) ListCategoriesWithCount(ctx context.Context) ([]models.CategoryCount, error) {
	const op = "repository.gallery_repository.ListCategoriesWithCount"

	query, args, err := r.sb.Select(
		"c.id",
		"c.name",
		"c.slug",
		"COUNT(i.id) FILTER (WHERE i.is_active) AS image_count",
	).
		From("gallery_categories c").
		LeftJoin("gallery_images i ON i.category_id = c.id").
		Where(sq.Eq{"c.is_active": true}).
		GroupBy("c.id", "c.name", "c.slug", "c.display_order").
		OrderBy("c.display_order", "c.name").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var counts []models.CategoryCount
	for rows.Next() {
		var c models.CategoryCount
		if err := rows.Scan(&c.ID, &c.Name, &c.Slug, &c.Count); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		counts = append(counts, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return counts, nil
}

var galleryOrderings = map[string]string{
	"title":            "title",
	"-title":           "title DESC",
	"completion_date":  "completion_date",
	"-completion_date": "completion_date DESC",
	"created_at":       "created_at",
	"-created_at":      "created_at DESC",
	"order":            "display_order",
}

func (r *GalleryRepo) ListImages(ctx context.Context, filter GalleryFilter) ([]models.GalleryImage, int, error) {
	const op = "repository.gallery_repository.ListImages"

	page, perPage := NormalizePage(filter.Page, filter.PerPage)

	queryBuilder := r.sb.Select(galleryImageColumns...).
		From("gallery_images").
		Where(sq.Eq{"is_active": true})
	countBuilder := r.sb.Select("COUNT(*)").
		From("gallery_images").
		Where(sq.Eq{"is_active": true})

	if filter.CategoryID != nil {
		queryBuilder = queryBuilder.Where(sq.Eq{"category_id": *filter.CategoryID})
		countBuilder = countBuilder.Where(sq.Eq{"category_id": *filter.CategoryID})
	}
	if filter.Featured != nil {
		queryBuilder = queryBuilder.Where(sq.Eq{"is_featured": *filter.Featured})
		countBuilder = countBuilder.Where(sq.Eq{"is_featured": *filter.Featured})
	}
	if len(filter.Tags) > 0 {
		queryBuilder = queryBuilder.Where("tags && ?", pq.Array(filter.Tags))
		countBuilder = countBuilder.Where("tags && ?", pq.Array(filter.Tags))
	}
	if filter.Search != "" {
		like := "%" + filter.Search + "%"
		cond := sq.Or{
			sq.ILike{"title": like},
			sq.ILike{"description": like},
			sq.ILike{"project_location": like},
		}
		queryBuilder = queryBuilder.Where(cond)
		countBuilder = countBuilder.Where(cond)
	}

	orderBy, ok := galleryOrderings[filter.OrderBy]
	if !ok {
		orderBy = "display_order, created_at DESC"
	}

	countQuery, countArgs, err := countBuilder.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("%s: %w", op, err)
	}

	var total int
	if err := r.db.QueryRow(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("%s: %w", op, err)
	}

	query, args, err := queryBuilder.
		OrderBy(orderBy).
		Limit(uint64(perPage)).
		Offset(uint64((page - 1) * perPage)).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("%s: %w", op, err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var images []models.GalleryImage
	for rows.Next() {
		img, err := scanGalleryImage(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("%s: %w", op, err)
		}
		images = append(images, img)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("%s: %w", op, err)
	}

	return images, total, nil
}

func (r *GalleryRepo) GetImageByID(ctx context.Context, id uuid.UUID) (models.GalleryImage, error) {
	const op = "repository.gallery_repository.GetImageByID"

	query, args, err := r.sb.Select(galleryImageColumns...).
		From("gallery_images").
		Where(sq.Eq{"id": id, "is_active": true}).
		ToSql()
	if err != nil {
		return models.GalleryImage{}, fmt.Errorf("%s: %w", op, err)
	}

	img, err := scanGalleryImage(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.GalleryImage{}, fmt.Errorf("%s: %w", op, storage.ErrImageNotFound)
		}
		return models.GalleryImage{}, fmt.Errorf("%s: %w", op, err)
	}

	return img, nil
}

func (r *GalleryRepo) SaveImage(ctx context.Context, img models.GalleryImage) (uuid.UUID, error) {
	const op = "repository.gallery_repository.SaveImage"

	query, args, err := r.sb.Insert("gallery_images").
		Columns(
			"title",
			"description",
			"category_id",
			"image",
			"alt_text",
			"project_location",
			"completion_date",
			"is_active",
			"is_featured",
			"display_order",
			"tags",
		).
		Values(
			img.Title,
			img.Description,
			img.CategoryID,
			img.Image,
			img.AltText,
			img.ProjectLocation,
			img.CompletionDate,
			img.IsActive,
			img.IsFeatured,
			img.Order,
			pq.Array(img.Tags),
		).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return uuid.Nil, fmt.Errorf("%s: %w", op, err)
	}

	var id uuid.UUID
	if err := r.db.QueryRow(ctx, query, args...).Scan(&id); err != nil {
		return uuid.Nil, fmt.Errorf("%s: %w", op, err)
	}

	return id, nil
}
