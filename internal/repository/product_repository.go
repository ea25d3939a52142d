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
)

type ProductRepo struct {
	db *pgxpool.Pool
	sb sq.StatementBuilderType
}

func NewProductRepository(db *pgxpool.Pool) *ProductRepo {
	return &ProductRepo{
		db: db,
		sb: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

var productColumns = []string{
	"id",
	"name",
	"slug",
	"description",
	"category_id",
	"image",
	"origin",
	"finish",
	"thickness",
	"meta_title",
	"meta_description",
	"is_active",
	"is_featured",
	"created_at",
	"updated_at",
}

func scanProduct(row pgx.Row) (models.Product, error) {
	var p models.Product
	err := row.Scan(
		&p.ID,
		&p.Name,
		&p.Slug,
		&p.Description,
		&p.CategoryID,
		&p.Image,
		&p.Origin,
		&p.Finish,
		&p.Thickness,
		&p.MetaTitle,
		&p.MetaDescription,
		&p.IsActive,
		&p.IsFeatured,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	return p, err
}

func (r *ProductRepo) ListCategories(ctx context.Context) ([]models.Category, error) {
	const op = "repository.product_repository.ListCategories"

	query, args, err := r.sb.Select("id", "name", "slug", "description", "is_active", "created_at", "updated_at").
		From("categories").
		Where(sq.Eq{"is_active": true}).
		OrderBy("name").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var categories []models.Category
	for rows.Next() {
		var c models.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.Slug, &c.Description, &c.IsActive, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		categories = append(categories, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return categories, nil
}

func (r *ProductRepo) ListCategoriesWithCount(ctx context.Context) ([]models.CategoryCount, error) {
	const op = "repository.product_repository.ListCategoriesWithCount"

	query, args, err := r.sb.Select(
		"c.id",
		"c.name",
		"c.slug",
		"COUNT(p.id) FILTER (WHERE p.is_active) AS product_count",
	).
		From("categories c").
		LeftJoin("products p ON p.category_id = c.id").
		Where(sq.Eq{"c.is_active": true}).
		GroupBy("c.id", "c.name", "c.slug").
		OrderBy("c.name").
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

var productOrderings = map[string]string{
	"name":        "name",
	"-name":       "name DESC",
	"created_at":  "created_at",
	"-created_at": "created_at DESC",
}

func (r *ProductRepo) ListProducts(ctx context.Context, filter ProductFilter) ([]models.Product, int, error) {
	const op = "repository.product_repository.ListProducts"

	page, perPage := NormalizePage(filter.Page, filter.PerPage)

	queryBuilder := r.sb.Select(productColumns...).
		From("products").
		Where(sq.Eq{"is_active": true})
	countBuilder := r.sb.Select("COUNT(*)").
		From("products").
		Where(sq.Eq{"is_active": true})

	if filter.CategoryID != nil {
		queryBuilder = queryBuilder.Where(sq.Eq{"category_id": *filter.CategoryID})
		countBuilder = countBuilder.Where(sq.Eq{"category_id": *filter.CategoryID})
	}
	if filter.Featured != nil {
		queryBuilder = queryBuilder.Where(sq.Eq{"is_featured": *filter.Featured})
		countBuilder = countBuilder.Where(sq.Eq{"is_featured": *filter.Featured})
	}
	if filter.Search != "" {
		like := "%" + filter.Search + "%"
		cond := sq.Or{sq.ILike{"name": like}, sq.ILike{"description": like}}
		queryBuilder = queryBuilder.Where(cond)
		countBuilder = countBuilder.Where(cond)
	}

	orderBy, ok := productOrderings[filter.OrderBy]
	if !ok {
		orderBy = "created_at DESC"
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

	var products []models.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("%s: %w", op, err)
		}
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("%s: %w", op, err)
	}

	return products, total, nil
}

func (r *ProductRepo) GetProductBySlug(ctx context.Context, slug string) (models.Product, error) {
	const op = "repository.product_repository.GetProductBySlug"

	query, args, err := r.sb.Select(productColumns...).
		From("products").
		Where(sq.Eq{"slug": slug, "is_active": true}).
		ToSql()
	if err != nil {
		return models.Product{}, fmt.Errorf("%s: %w", op, err)
	}

	p, err := scanProduct(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.Product{}, fmt.Errorf("%s: %w", op, storage.ErrProductNotFound)
		}
		return models.Product{}, fmt.Errorf("%s: %w", op, err)
	}

	return p, nil
}

func (r *ProductRepo) ListProductImages(ctx context.Context, productID uuid.UUID) ([]models.ProductImage, error) {
	const op = "repository.product_repository.ListProductImages"

	query, args, err := r.sb.Select("id", "product_id", "image", "alt_text", "is_primary", "display_order", "created_at").
		From("product_images").
		Where(sq.Eq{"product_id": productID}).
		OrderBy("display_order", "created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var images []models.ProductImage
	for rows.Next() {
		var img models.ProductImage
		if err := rows.Scan(&img.ID, &img.ProductID, &img.Image, &img.AltText, &img.IsPrimary, &img.Order, &img.CreatedAt); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		images = append(images, img)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return images, nil
}

func (r *ProductRepo) SaveProductImage(ctx context.Context, img models.ProductImage) (uuid.UUID, error) {
	const op = "repository.product_repository.SaveProductImage"

	query, args, err := r.sb.Insert("product_images").
		Columns("product_id", "image", "alt_text", "is_primary", "display_order").
		Values(img.ProductID, img.Image, img.AltText, img.IsPrimary, img.Order).
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
