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

const businessServiceColumns = `id, website_id, vendor_id, name, COALESCE(description, '') as description,
	price, COALESCE(duration_min, 0) as duration_min, is_active, created_at, updated_at, deleted_at`

// PostgresBusinessServiceRepository implements BusinessServiceRepository using PostgreSQL
type PostgresBusinessServiceRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresBusinessServiceRepository creates a new PostgresBusinessServiceRepository
func NewPostgresBusinessServiceRepository(pool *pgxpool.Pool) *PostgresBusinessServiceRepository {
	return &PostgresBusinessServiceRepository{pool: pool}
}

// scanService scans a row into a BusinessService struct
func (r *PostgresBusinessServiceRepository) scanService(row pgx.Row) (*domain.BusinessService, error) {
	service := &domain.BusinessService{}
	err := row.Scan(
		&service.ID,
		&service.WebsiteID,
		&service.VendorID,
		&service.Name,
		&service.Description,
		&service.Price,
		&service.DurationMin,
		&service.IsActive,
		&service.CreatedAt,
		&service.UpdatedAt,
		&service.DeletedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return service, nil
}

// Create creates a business service
func (r *PostgresBusinessServiceRepository) Create(ctx context.Context, service *domain.BusinessService) error {
	query := `
		INSERT INTO business_services (id, website_id, vendor_id, name, description, price, duration_min, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`
	_, err := r.pool.Exec(ctx, query,
		service.ID,
		service.WebsiteID,
		service.VendorID,
		service.Name,
		nullStringOrValue(service.Description),
		service.Price,
		service.DurationMin,
		service.IsActive,
		service.CreatedAt,
		service.UpdatedAt,
	)
	return err
}

// GetByID retrieves a business service by ID
func (r *PostgresBusinessServiceRepository) GetByID(ctx context.Context, id string) (*domain.BusinessService, error) {
	query := fmt.Sprintf(`SELECT %s FROM business_services WHERE id = $1 AND deleted_at IS NULL`, businessServiceColumns)
	return r.scanService(r.pool.QueryRow(ctx, query, id))
}

// List retrieves the business services of a website
func (r *PostgresBusinessServiceRepository) List(ctx context.Context, page, limit int, websiteID string, isActive *bool) ([]*domain.BusinessService, int, error) {
	whereClause := "WHERE deleted_at IS NULL"
	args := []interface{}{}
	argIndex := 1

	if websiteID != "" {
		whereClause += fmt.Sprintf(" AND website_id = $%d", argIndex)
		args = append(args, websiteID)
		argIndex++
	}

	if isActive != nil {
		whereClause += fmt.Sprintf(" AND is_active = $%d", argIndex)
		args = append(args, *isActive)
		argIndex++
	}

	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM business_services %s", whereClause)
	var totalCount int
	err := r.pool.QueryRow(ctx, countQuery, args...).Scan(&totalCount)
	if err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * limit
	query := fmt.Sprintf(`
		SELECT %s
		FROM business_services
		%s
		ORDER BY name ASC
		LIMIT $%d OFFSET $%d
	`, businessServiceColumns, whereClause, argIndex, argIndex+1)

	args = append(args, limit, offset)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	services := make([]*domain.BusinessService, 0)
	for rows.Next() {
		service, err := r.scanService(rows)
		if err != nil {
			return nil, 0, err
		}
		services = append(services, service)
	}

	return services, totalCount, nil
}

// Update updates a business service
func (r *PostgresBusinessServiceRepository) Update(ctx context.Context, service *domain.BusinessService) error {
	query := `
		UPDATE business_services
		SET name = $2, description = $3, price = $4, duration_min = $5, is_active = $6, updated_at = $7
		WHERE id = $1 AND deleted_at IS NULL
	`
	service.UpdatedAt = time.Now()
	result, err := r.pool.Exec(ctx, query,
		service.ID,
		service.Name,
		nullStringOrValue(service.Description),
		service.Price,
		service.DurationMin,
		service.IsActive,
		service.UpdatedAt,
	)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("business service not found or already deleted")
	}

	return nil
}

// SoftDelete soft deletes a business service by setting deleted_at timestamp
func (r *PostgresBusinessServiceRepository) SoftDelete(ctx context.Context, id string) error {
	query := `
		UPDATE business_services
		SET deleted_at = $2
		WHERE id = $1 AND deleted_at IS NULL
	`
	result, err := r.pool.Exec(ctx, query, id, time.Now())
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("business service not found or already deleted")
	}

	return nil
}
