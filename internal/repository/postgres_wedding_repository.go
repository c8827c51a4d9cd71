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

const weddingVendorColumns = `id, website_id, vendor_id, name, service_type,
	COALESCE(description, '') as description, COALESCE(price_from, 0) as price_from,
	COALESCE(city, '') as city, COALESCE(images, '{}') as images,
	is_active, created_at, updated_at, deleted_at`

const weddingEventColumns = `id, website_id, customer_id, title, event_date,
	COALESCE(location, '') as location, COALESCE(guest_count, 0) as guest_count,
	COALESCE(budget, 0) as budget, COALESCE(notes, '') as notes,
	created_at, updated_at, deleted_at`

// PostgresWeddingRepository implements WeddingRepository using PostgreSQL
type PostgresWeddingRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresWeddingRepository creates a new PostgresWeddingRepository
func NewPostgresWeddingRepository(pool *pgxpool.Pool) *PostgresWeddingRepository {
	return &PostgresWeddingRepository{pool: pool}
}

// scanWeddingVendor scans a row into a WeddingVendor struct
func (r *PostgresWeddingRepository) scanWeddingVendor(row pgx.Row) (*domain.WeddingVendor, error) {
	vendor := &domain.WeddingVendor{}
	err := row.Scan(
		&vendor.ID,
		&vendor.WebsiteID,
		&vendor.VendorID,
		&vendor.Name,
		&vendor.ServiceType,
		&vendor.Description,
		&vendor.PriceFrom,
		&vendor.City,
		&vendor.Images,
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

// CreateVendor creates a wedding vendor listing
func (r *PostgresWeddingRepository) CreateVendor(ctx context.Context, vendor *domain.WeddingVendor) error {
	query := `
		INSERT INTO wedding_vendors (id, website_id, vendor_id, name, service_type, description,
			price_from, city, images, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`
	_, err := r.pool.Exec(ctx, query,
		vendor.ID,
		vendor.WebsiteID,
		vendor.VendorID,
		vendor.Name,
		vendor.ServiceType,
		nullStringOrValue(vendor.Description),
		vendor.PriceFrom,
		nullStringOrValue(vendor.City),
		vendor.Images,
		vendor.IsActive,
		vendor.CreatedAt,
		vendor.UpdatedAt,
	)
	return err
}

// GetVendorByID retrieves a wedding vendor by ID
func (r *PostgresWeddingRepository) GetVendorByID(ctx context.Context, id string) (*domain.WeddingVendor, error) {
	query := fmt.Sprintf(`SELECT %s FROM wedding_vendors WHERE id = $1 AND deleted_at IS NULL`, weddingVendorColumns)
	return r.scanWeddingVendor(r.pool.QueryRow(ctx, query, id))
}

// ListVendors retrieves wedding vendors with pagination and filters
func (r *PostgresWeddingRepository) ListVendors(ctx context.Context, page, limit int, websiteID, serviceType, city string) ([]*domain.WeddingVendor, int, error) {
	whereClause := "WHERE deleted_at IS NULL"
	args := []interface{}{}
	argIndex := 1

	if websiteID != "" {
		whereClause += fmt.Sprintf(" AND website_id = $%d", argIndex)
		args = append(args, websiteID)
		argIndex++
	}

	if serviceType != "" {
		whereClause += fmt.Sprintf(" AND service_type = $%d", argIndex)
		args = append(args, serviceType)
		argIndex++
	}

	if city != "" {
		whereClause += fmt.Sprintf(" AND city ILIKE $%d", argIndex)
		args = append(args, city)
		argIndex++
	}

	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM wedding_vendors %s", whereClause)
	var totalCount int
	err := r.pool.QueryRow(ctx, countQuery, args...).Scan(&totalCount)
	if err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * limit
	query := fmt.Sprintf(`
		SELECT %s
		FROM wedding_vendors
		%s
		ORDER BY created_at DESC
		LIMIT $%d OFFSET $%d
	`, weddingVendorColumns, whereClause, argIndex, argIndex+1)

	args = append(args, limit, offset)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	vendors := make([]*domain.WeddingVendor, 0)
	for rows.Next() {
		vendor, err := r.scanWeddingVendor(rows)
		if err != nil {
			return nil, 0, err
		}
		vendors = append(vendors, vendor)
	}

	return vendors, totalCount, nil
}

// UpdateVendor updates a wedding vendor
func (r *PostgresWeddingRepository) UpdateVendor(ctx context.Context, vendor *domain.WeddingVendor) error {
	query := `
		UPDATE wedding_vendors
		SET name = $2, service_type = $3, description = $4, price_from = $5,
			city = $6, images = $7, is_active = $8, updated_at = $9
		WHERE id = $1 AND deleted_at IS NULL
	`
	vendor.UpdatedAt = time.Now()
	result, err := r.pool.Exec(ctx, query,
		vendor.ID,
		vendor.Name,
		vendor.ServiceType,
		nullStringOrValue(vendor.Description),
		vendor.PriceFrom,
		nullStringOrValue(vendor.City),
		vendor.Images,
		vendor.IsActive,
		vendor.UpdatedAt,
	)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("wedding vendor not found or already deleted")
	}

	return nil
}

// SoftDeleteVendor soft deletes a wedding vendor by setting deleted_at timestamp
func (r *PostgresWeddingRepository) SoftDeleteVendor(ctx context.Context, id string) error {
	query := `
		UPDATE wedding_vendors
		SET deleted_at = $2
		WHERE id = $1 AND deleted_at IS NULL
	`
	result, err := r.pool.Exec(ctx, query, id, time.Now())
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("wedding vendor not found or already deleted")
	}

	return nil
}

// scanWeddingEvent scans a row into a WeddingEvent struct
func (r *PostgresWeddingRepository) scanWeddingEvent(row pgx.Row) (*domain.WeddingEvent, error) {
	event := &domain.WeddingEvent{}
	err := row.Scan(
		&event.ID,
		&event.WebsiteID,
		&event.CustomerID,
		&event.Title,
		&event.EventDate,
		&event.Location,
		&event.GuestCount,
		&event.Budget,
		&event.Notes,
		&event.CreatedAt,
		&event.UpdatedAt,
		&event.DeletedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return event, nil
}

// CreateEvent creates a wedding event
func (r *PostgresWeddingRepository) CreateEvent(ctx context.Context, event *domain.WeddingEvent) error {
	query := `
		INSERT INTO wedding_events (id, website_id, customer_id, title, event_date, location,
			guest_count, budget, notes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`
	_, err := r.pool.Exec(ctx, query,
		event.ID,
		event.WebsiteID,
		event.CustomerID,
		event.Title,
		event.EventDate,
		nullStringOrValue(event.Location),
		event.GuestCount,
		event.Budget,
		nullStringOrValue(event.Notes),
		event.CreatedAt,
		event.UpdatedAt,
	)
	return err
}

// GetEventByID retrieves a wedding event by ID
func (r *PostgresWeddingRepository) GetEventByID(ctx context.Context, id string) (*domain.WeddingEvent, error) {
	query := fmt.Sprintf(`SELECT %s FROM wedding_events WHERE id = $1 AND deleted_at IS NULL`, weddingEventColumns)
	return r.scanWeddingEvent(r.pool.QueryRow(ctx, query, id))
}

// ListEvents retrieves the wedding events of a website, optionally scoped to a customer
func (r *PostgresWeddingRepository) ListEvents(ctx context.Context, page, limit int, websiteID, customerID string) ([]*domain.WeddingEvent, int, error) {
	whereClause := "WHERE deleted_at IS NULL"
	args := []interface{}{}
	argIndex := 1

	if websiteID != "" {
		whereClause += fmt.Sprintf(" AND website_id = $%d", argIndex)
		args = append(args, websiteID)
		argIndex++
	}

	if customerID != "" {
		whereClause += fmt.Sprintf(" AND customer_id = $%d", argIndex)
		args = append(args, customerID)
		argIndex++
	}

	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM wedding_events %s", whereClause)
	var totalCount int
	err := r.pool.QueryRow(ctx, countQuery, args...).Scan(&totalCount)
	if err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * limit
	query := fmt.Sprintf(`
		SELECT %s
		FROM wedding_events
		%s
		ORDER BY event_date ASC
		LIMIT $%d OFFSET $%d
	`, weddingEventColumns, whereClause, argIndex, argIndex+1)

	args = append(args, limit, offset)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	events := make([]*domain.WeddingEvent, 0)
	for rows.Next() {
		event, err := r.scanWeddingEvent(rows)
		if err != nil {
			return nil, 0, err
		}
		events = append(events, event)
	}

	return events, totalCount, nil
}

// UpdateEvent updates a wedding event
func (r *PostgresWeddingRepository) UpdateEvent(ctx context.Context, event *domain.WeddingEvent) error {
	query := `
		UPDATE wedding_events
		SET title = $2, event_date = $3, location = $4, guest_count = $5,
			budget = $6, notes = $7, updated_at = $8
		WHERE id = $1 AND deleted_at IS NULL
	`
	event.UpdatedAt = time.Now()
	result, err := r.pool.Exec(ctx, query,
		event.ID,
		event.Title,
		event.EventDate,
		nullStringOrValue(event.Location),
		event.GuestCount,
		event.Budget,
		nullStringOrValue(event.Notes),
		event.UpdatedAt,
	)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("wedding event not found or already deleted")
	}

	return nil
}

// SoftDeleteEvent soft deletes a wedding event by setting deleted_at timestamp
func (r *PostgresWeddingRepository) SoftDeleteEvent(ctx context.Context, id string) error {
	query := `
		UPDATE wedding_events
		SET deleted_at = $2
		WHERE id = $1 AND deleted_at IS NULL
	`
	result, err := r.pool.Exec(ctx, query, id, time.Now())
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("wedding event not found or already deleted")
	}

	return nil
}
