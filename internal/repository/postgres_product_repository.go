package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rnqayush/storefront-platform/internal/domain"
)

const productColumns = `id, website_id, vendor_id, COALESCE(category_id::text, '') as category_id,
	name, slug, COALESCE(description, '') as description, price, sale_price, stock,
	COALESCE(sku, '') as sku, COALESCE(images, '{}') as images,
	is_active, created_at, updated_at, deleted_at`

const categoryColumns = `id, website_id, name, slug, COALESCE(parent_id::text, '') as parent_id,
	created_at, updated_at, deleted_at`

// PostgresProductRepository implements ProductRepository using PostgreSQL
type PostgresProductRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresProductRepository creates a new PostgresProductRepository
func NewPostgresProductRepository(pool *pgxpool.Pool) *PostgresProductRepository {
	return &PostgresProductRepository{pool: pool}
}

// scanProduct scans a row into a Product struct
func (r *PostgresProductRepository) scanProduct(row pgx.Row) (*domain.Product, error) {
	product := &domain.Product{}
	err := row.Scan(
		&product.ID,
		&product.WebsiteID,
		&product.VendorID,
		&product.CategoryID,
		&product.Name,
		&product.Slug,
		&product.Description,
		&product.Price,
		&product.SalePrice,
		&product.Stock,
		&product.SKU,
		&product.Images,
		&product.IsActive,
		&product.CreatedAt,
		&product.UpdatedAt,
		&product.DeletedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return product, nil
}

// Create creates a new product
func (r *PostgresProductRepository) Create(ctx context.Context, product *domain.Product) error {
	query := `
		INSERT INTO products (id, website_id, vendor_id, category_id, name, slug, description,
			price, sale_price, stock, sku, images, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
	`
	_, err := r.pool.Exec(ctx, query,
		product.ID,
		product.WebsiteID,
		product.VendorID,
		nullStringOrValue(product.CategoryID),
		product.Name,
		product.Slug,
		nullStringOrValue(product.Description),
		product.Price,
		product.SalePrice,
		product.Stock,
		nullStringOrValue(product.SKU),
		product.Images,
		product.IsActive,
		product.CreatedAt,
		product.UpdatedAt,
	)
	return err
}

// GetByID retrieves a product by ID
func (r *PostgresProductRepository) GetByID(ctx context.Context, id string) (*domain.Product, error) {
	query := fmt.Sprintf(`SELECT %s FROM products WHERE id = $1 AND deleted_at IS NULL`, productColumns)
	return r.scanProduct(r.pool.QueryRow(ctx, query, id))
}

// GetBySlug retrieves a product by website and slug
func (r *PostgresProductRepository) GetBySlug(ctx context.Context, websiteID, slug string) (*domain.Product, error) {
	query := fmt.Sprintf(`SELECT %s FROM products WHERE website_id = $1 AND slug = $2 AND deleted_at IS NULL`, productColumns)
	return r.scanProduct(r.pool.QueryRow(ctx, query, websiteID, slug))
}

// List retrieves products with pagination and filters
func (r *PostgresProductRepository) List(ctx context.Context, page, limit int, filter ProductFilter) ([]*domain.Product, int, error) {
	whereClause := "WHERE deleted_at IS NULL"
	args := []interface{}{}
	argIndex := 1

	if filter.WebsiteID != "" {
		whereClause += fmt.Sprintf(" AND website_id = $%d", argIndex)
		args = append(args, filter.WebsiteID)
		argIndex++
	}

	if filter.CategoryID != "" {
		whereClause += fmt.Sprintf(" AND category_id = $%d", argIndex)
		args = append(args, filter.CategoryID)
		argIndex++
	}

	if filter.IsActive != nil {
		whereClause += fmt.Sprintf(" AND is_active = $%d", argIndex)
		args = append(args, *filter.IsActive)
		argIndex++
	}

	if filter.Search != "" {
		whereClause += fmt.Sprintf(" AND (name ILIKE $%d OR sku ILIKE $%d)", argIndex, argIndex)
		args = append(args, "%"+filter.Search+"%")
		argIndex++
	}

	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM products %s", whereClause)
	var totalCount int
	err := r.pool.QueryRow(ctx, countQuery, args...).Scan(&totalCount)
	if err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * limit
	query := fmt.Sprintf(`
		SELECT %s
		FROM products
		%s
		ORDER BY created_at DESC
		LIMIT $%d OFFSET $%d
	`, productColumns, whereClause, argIndex, argIndex+1)

	args = append(args, limit, offset)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	products := make([]*domain.Product, 0)
	for rows.Next() {
		product, err := r.scanProduct(rows)
		if err != nil {
			return nil, 0, err
		}
		products = append(products, product)
	}

	return products, totalCount, nil
}

// Update updates a product
func (r *PostgresProductRepository) Update(ctx context.Context, product *domain.Product) error {
	query := `
		UPDATE products
		SET category_id = $2, name = $3, slug = $4, description = $5,
			price = $6, sale_price = $7, stock = $8, sku = $9, images = $10,
			is_active = $11, updated_at = $12
		WHERE id = $1 AND deleted_at IS NULL
	`
	product.UpdatedAt = time.Now()
	result, err := r.pool.Exec(ctx, query,
		product.ID,
		nullStringOrValue(product.CategoryID),
		product.Name,
		product.Slug,
		nullStringOrValue(product.Description),
		product.Price,
		product.SalePrice,
		product.Stock,
		nullStringOrValue(product.SKU),
		product.Images,
		product.IsActive,
		product.UpdatedAt,
	)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("product not found or already deleted")
	}

	return nil
}

// SoftDelete soft deletes a product by setting deleted_at timestamp
func (r *PostgresProductRepository) SoftDelete(ctx context.Context, id string) error {
	query := `
		UPDATE products
		SET deleted_at = $2
		WHERE id = $1 AND deleted_at IS NULL
	`
	result, err := r.pool.Exec(ctx, query, id, time.Now())
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("product not found or already deleted")
	}

	return nil
}

// scanCategory scans a row into a Category struct
func (r *PostgresProductRepository) scanCategory(row pgx.Row) (*domain.Category, error) {
	category := &domain.Category{}
	err := row.Scan(
		&category.ID,
		&category.WebsiteID,
		&category.Name,
		&category.Slug,
		&category.ParentID,
		&category.CreatedAt,
		&category.UpdatedAt,
		&category.DeletedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return category, nil
}

// CreateCategory creates a category
func (r *PostgresProductRepository) CreateCategory(ctx context.Context, category *domain.Category) error {
	query := `
		INSERT INTO categories (id, website_id, name, slug, parent_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err := r.pool.Exec(ctx, query,
		category.ID,
		category.WebsiteID,
		category.Name,
		category.Slug,
		nullStringOrValue(category.ParentID),
		category.CreatedAt,
		category.UpdatedAt,
	)
	return err
}

// GetCategoryByID retrieves a category by ID
func (r *PostgresProductRepository) GetCategoryByID(ctx context.Context, id string) (*domain.Category, error) {
	query := fmt.Sprintf(`SELECT %s FROM categories WHERE id = $1 AND deleted_at IS NULL`, categoryColumns)
	return r.scanCategory(r.pool.QueryRow(ctx, query, id))
}

// ListCategories retrieves the categories of a website
func (r *PostgresProductRepository) ListCategories(ctx context.Context, websiteID string) ([]*domain.Category, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM categories
		WHERE website_id = $1 AND deleted_at IS NULL
		ORDER BY name ASC
	`, categoryColumns)

	rows, err := r.pool.Query(ctx, query, websiteID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	categories := make([]*domain.Category, 0)
	for rows.Next() {
		category, err := r.scanCategory(rows)
		if err != nil {
			return nil, err
		}
		categories = append(categories, category)
	}

	return categories, nil
}

// UpdateCategory updates a category
func (r *PostgresProductRepository) UpdateCategory(ctx context.Context, category *domain.Category) error {
	query := `
		UPDATE categories
		SET name = $2, slug = $3, parent_id = $4, updated_at = $5
		WHERE id = $1 AND deleted_at IS NULL
	`
	category.UpdatedAt = time.Now()
	result, err := r.pool.Exec(ctx, query,
		category.ID,
		category.Name,
		category.Slug,
		nullStringOrValue(category.ParentID),
		category.UpdatedAt,
	)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("category not found or already deleted")
	}

	return nil
}

// SoftDeleteCategory soft deletes a category by setting deleted_at timestamp
func (r *PostgresProductRepository) SoftDeleteCategory(ctx context.Context, id string) error {
	query := `
		UPDATE categories
		SET deleted_at = $2
		WHERE id = $1 AND deleted_at IS NULL
	`
	result, err := r.pool.Exec(ctx, query, id, time.Now())
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("category not found or already deleted")
	}

	return nil
}
