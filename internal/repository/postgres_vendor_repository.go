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

const vendorColumns = `id, user_id, website_id, business_name, COALESCE(description, '') as description,
	COALESCE(category, '') as category, COALESCE(contact_email, '') as contact_email,
	COALESCE(contact_phone, '') as contact_phone, COALESCE(address, '') as address,
	COALESCE(city, '') as city, COALESCE(country, '') as country,
	COALESCE(rating, 0) as rating, COALESCE(review_count, 0) as review_count,
	COALESCE(total_bookings, 0) as total_bookings,
	is_verified, is_active, created_at, updated_at, deleted_at`

// PostgresVendorRepository implements VendorRepository using PostgreSQL
type PostgresVendorRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresVendorRepository creates a new PostgresVendorRepository
func NewPostgresVendorRepository(pool *pgxpool.Pool) *PostgresVendorRepository {
	return &PostgresVendorRepository{pool: pool}
}

// scanVendor scans a row into a Vendor struct
func (r *PostgresVendorRepository) scanVendor(row pgx.Row) (*domain.Vendor, error) {
	vendor := &domain.Vendor{}
	err := row.Scan(
		&vendor.ID,
		&vendor.UserID,
		&vendor.WebsiteID,
		&vendor.BusinessName,
		&vendor.Description,
		&vendor.Category,
		&vendor.ContactEmail,
		&vendor.ContactPhone,
		&vendor.Address,
		&vendor.City,
		&vendor.Country,
		&vendor.Rating,
		&vendor.ReviewCount,
		&vendor.TotalBookings,
		&vendor.IsVerified,
		&vendor.IsActive,
		&vendor.CreatedAt,
		&vendor.UpdatedAt,
		&vendor.DeletedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return vendor, nil
}

// Create creates a new vendor
func (r *PostgresVendorRepository) Create(ctx context.Context, vendor *domain.Vendor) error {
	query := `
		INSERT INTO vendors (id, user_id, website_id, business_name, description, category,
			contact_email, contact_phone, address, city, country,
			rating, review_count, total_bookings, is_verified, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)
	`
	_, err := r.pool.Exec(ctx, query,
		vendor.ID,
		vendor.UserID,
		vendor.WebsiteID,
		vendor.BusinessName,
		nullStringOrValue(vendor.Description),
		nullStringOrValue(vendor.Category),
		nullStringOrValue(vendor.ContactEmail),
		nullStringOrValue(vendor.ContactPhone),
		nullStringOrValue(vendor.Address),
		nullStringOrValue(vendor.City),
		nullStringOrValue(vendor.Country),
		vendor.Rating,
		vendor.ReviewCount,
		vendor.TotalBookings,
		vendor.IsVerified,
		vendor.IsActive,
		vendor.CreatedAt,
		vendor.UpdatedAt,
	)
	return err
}

// GetByID retrieves a vendor by ID
func (r *PostgresVendorRepository) GetByID(ctx context.Context, id string) (*domain.Vendor, error) {
	query := fmt.Sprintf(`SELECT %s FROM vendors WHERE id = $1 AND deleted_at IS NULL`, vendorColumns)
	return r.scanVendor(r.pool.QueryRow(ctx, query, id))
}

// GetByWebsiteID retrieves the vendor behind a website
func (r *PostgresVendorRepository) GetByWebsiteID(ctx context.Context, websiteID string) (*domain.Vendor, error) {
	query := fmt.Sprintf(`SELECT %s FROM vendors WHERE website_id = $1 AND deleted_at IS NULL`, vendorColumns)
	return r.scanVendor(r.pool.QueryRow(ctx, query, websiteID))
}

// GetByUserID retrieves the vendor profile owned by a user
func (r *PostgresVendorRepository) GetByUserID(ctx context.Context, userID string) (*domain.Vendor, error) {
	query := fmt.Sprintf(`SELECT %s FROM vendors WHERE user_id = $1 AND deleted_at IS NULL`, vendorColumns)
	return r.scanVendor(r.pool.QueryRow(ctx, query, userID))
}

// List retrieves vendors with pagination and filters
func (r *PostgresVendorRepository) List(ctx context.Context, page, limit int, websiteID, category, search string) ([]*domain.Vendor, int, error) {
	whereClause := "WHERE deleted_at IS NULL"
	args := []interface{}{}
	argIndex := 1

	if websiteID != "" {
		whereClause += fmt.Sprintf(" AND website_id = $%d", argIndex)
		args = append(args, websiteID)
		argIndex++
	}

	if category != "" {
		whereClause += fmt.Sprintf(" AND category = $%d", argIndex)
		args = append(args, category)
		argIndex++
	}

	if search != "" {
		whereClause += fmt.Sprintf(" AND (business_name ILIKE $%d OR city ILIKE $%d)", argIndex, argIndex)
		args = append(args, "%"+search+"%")
		argIndex++
	}

	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM vendors %s", whereClause)
	var totalCount int
	err := r.pool.QueryRow(ctx, countQuery, args...).Scan(&totalCount)
	if err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * limit
	query := fmt.Sprintf(`
		SELECT %s
		FROM vendors
		%s
		ORDER BY created_at DESC
		LIMIT $%d OFFSET $%d
	`, vendorColumns, whereClause, argIndex, argIndex+1)

	args = append(args, limit, offset)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	vendors := make([]*domain.Vendor, 0)
	for rows.Next() {
		vendor, err := r.scanVendor(rows)
		if err != nil {
			return nil, 0, err
		}
		vendors = append(vendors, vendor)
	}

	return vendors, totalCount, nil
}

// Update updates a vendor
func (r *PostgresVendorRepository) Update(ctx context.Context, vendor *domain.Vendor) error {
	query := `
		UPDATE vendors
		SET business_name = $2, description = $3, category = $4, contact_email = $5,
			contact_phone = $6, address = $7, city = $8, country = $9,
			rating = $10, review_count = $11, total_bookings = $12,
			is_verified = $13, is_active = $14, updated_at = $15
		WHERE id = $1 AND deleted_at IS NULL
	`
	vendor.UpdatedAt = time.Now()
	result, err := r.pool.Exec(ctx, query,
		vendor.ID,
		vendor.BusinessName,
		nullStringOrValue(vendor.Description),
		nullStringOrValue(vendor.Category),
		nullStringOrValue(vendor.ContactEmail),
		nullStringOrValue(vendor.ContactPhone),
		nullStringOrValue(vendor.Address),
		nullStringOrValue(vendor.City),
		nullStringOrValue(vendor.Country),
		vendor.Rating,
		vendor.ReviewCount,
		vendor.TotalBookings,
		vendor.IsVerified,
		vendor.IsActive,
		vendor.UpdatedAt,
	)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("vendor not found or already deleted")
	}

	return nil
}

// SoftDelete soft deletes a vendor by setting deleted_at timestamp
func (r *PostgresVendorRepository) SoftDelete(ctx context.Context, id string) error {
	query := `
		UPDATE vendors
		SET deleted_at = $2
		WHERE id = $1 AND deleted_at IS NULL
	`
	result, err := r.pool.Exec(ctx, query, id, time.Now())
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("vendor not found or already deleted")
	}

	return nil
}
