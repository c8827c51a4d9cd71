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

const websiteColumns = `id, name, slug, COALESCE(domain, '') as domain, type, owner_id, status,
	COALESCE(settings, '{}'::jsonb) as settings, created_at, updated_at, deleted_at`

// PostgresWebsiteRepository implements WebsiteRepository using PostgreSQL
type PostgresWebsiteRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresWebsiteRepository creates a new PostgresWebsiteRepository
func NewPostgresWebsiteRepository(pool *pgxpool.Pool) *PostgresWebsiteRepository {
	return &PostgresWebsiteRepository{pool: pool}
}

// scanWebsite scans a row into a Website struct
func (r *PostgresWebsiteRepository) scanWebsite(row pgx.Row) (*domain.Website, error) {
	website := &domain.Website{}
	err := row.Scan(
		&website.ID,
		&website.Name,
		&website.Slug,
		&website.Domain,
		&website.Type,
		&website.OwnerID,
		&website.Status,
		&website.Settings,
		&website.CreatedAt,
		&website.UpdatedAt,
		&website.DeletedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return website, nil
}

// Create creates a new website
func (r *PostgresWebsiteRepository) Create(ctx context.Context, website *domain.Website) error {
	query := `
		INSERT INTO websites (id, name, slug, domain, type, owner_id, status, settings, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`
	_, err := r.pool.Exec(ctx, query,
		website.ID,
		website.Name,
		website.Slug,
		nullStringOrValue(website.Domain),
		website.Type,
		website.OwnerID,
		website.Status,
		website.Settings,
		website.CreatedAt,
		website.UpdatedAt,
	)
	return err
}

// GetByID retrieves a website by ID
func (r *PostgresWebsiteRepository) GetByID(ctx context.Context, id string) (*domain.Website, error) {
	query := fmt.Sprintf(`SELECT %s FROM websites WHERE id = $1 AND deleted_at IS NULL`, websiteColumns)
	return r.scanWebsite(r.pool.QueryRow(ctx, query, id))
}

// GetBySlug retrieves a website by slug
func (r *PostgresWebsiteRepository) GetBySlug(ctx context.Context, slug string) (*domain.Website, error) {
	query := fmt.Sprintf(`SELECT %s FROM websites WHERE slug = $1 AND deleted_at IS NULL`, websiteColumns)
	return r.scanWebsite(r.pool.QueryRow(ctx, query, slug))
}

// List retrieves websites with pagination and filters
func (r *PostgresWebsiteRepository) List(ctx context.Context, page, limit int, filter WebsiteFilter) ([]*domain.Website, int, error) {
	whereClause := "WHERE deleted_at IS NULL"
	args := []interface{}{}
	argIndex := 1

	if filter.OwnerID != "" {
		whereClause += fmt.Sprintf(" AND owner_id = $%d", argIndex)
		args = append(args, filter.OwnerID)
		argIndex++
	}

	if filter.Type != "" {
		whereClause += fmt.Sprintf(" AND type = $%d", argIndex)
		args = append(args, filter.Type)
		argIndex++
	}

	if filter.Status != "" {
		whereClause += fmt.Sprintf(" AND status = $%d", argIndex)
		args = append(args, filter.Status)
		argIndex++
	}

	if filter.Search != "" {
		whereClause += fmt.Sprintf(" AND (name ILIKE $%d OR slug ILIKE $%d)", argIndex, argIndex)
		args = append(args, "%"+filter.Search+"%")
		argIndex++
	}

	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM websites %s", whereClause)
	var totalCount int
	err := r.pool.QueryRow(ctx, countQuery, args...).Scan(&totalCount)
	if err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * limit
	query := fmt.Sprintf(`
		SELECT %s
		FROM websites
		%s
		ORDER BY created_at DESC
		LIMIT $%d OFFSET $%d
	`, websiteColumns, whereClause, argIndex, argIndex+1)

	args = append(args, limit, offset)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	websites := make([]*domain.Website, 0)
	for rows.Next() {
		website, err := r.scanWebsite(rows)
		if err != nil {
			return nil, 0, err
		}
		websites = append(websites, website)
	}

	return websites, totalCount, nil
}

// Update updates a website
func (r *PostgresWebsiteRepository) Update(ctx context.Context, website *domain.Website) error {
	query := `
		UPDATE websites
		SET name = $2, domain = $3, type = $4, status = $5, settings = $6, updated_at = $7
		WHERE id = $1 AND deleted_at IS NULL
	`
	website.UpdatedAt = time.Now()
	result, err := r.pool.Exec(ctx, query,
		website.ID,
		website.Name,
		nullStringOrValue(website.Domain),
		website.Type,
		website.Status,
		website.Settings,
		website.UpdatedAt,
	)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("website not found or already deleted")
	}

	return nil
}

// SoftDelete soft deletes a website by setting deleted_at timestamp
func (r *PostgresWebsiteRepository) SoftDelete(ctx context.Context, id string) error {
	query := `
		UPDATE websites
		SET deleted_at = $2
		WHERE id = $1 AND deleted_at IS NULL
	`
	result, err := r.pool.Exec(ctx, query, id, time.Now())
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("website not found or already deleted")
	}

	return nil
}

// ExistsBySlug checks if a website exists with the given slug
func (r *PostgresWebsiteRepository) ExistsBySlug(ctx context.Context, slug string) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM websites WHERE slug = $1 AND deleted_at IS NULL)`
	var exists bool
	err := r.pool.QueryRow(ctx, query, slug).Scan(&exists)
	return exists, err
}

// nullStringOrValue returns nil for empty strings, otherwise returns the value
func nullStringOrValue(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}
