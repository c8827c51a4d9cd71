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

const vehicleColumns = `id, website_id, vendor_id, make, model, year, price,
	COALESCE(mileage, 0) as mileage, COALESCE(fuel_type, '') as fuel_type,
	COALESCE(transmission, '') as transmission, COALESCE(color, '') as color,
	COALESCE(images, '{}') as images, status, created_at, updated_at, deleted_at`

// PostgresVehicleRepository implements VehicleRepository using PostgreSQL
type PostgresVehicleRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresVehicleRepository creates a new PostgresVehicleRepository
func NewPostgresVehicleRepository(pool *pgxpool.Pool) *PostgresVehicleRepository {
	return &PostgresVehicleRepository{pool: pool}
}

// scanVehicle scans a row into a Vehicle struct
func (r *PostgresVehicleRepository) scanVehicle(row pgx.Row) (*domain.Vehicle, error) {
	vehicle := &domain.Vehicle{}
	err := row.Scan(
		&vehicle.ID,
		&vehicle.WebsiteID,
		&vehicle.VendorID,
		&vehicle.Make,
		&vehicle.Model,
		&vehicle.Year,
		&vehicle.Price,
		&vehicle.Mileage,
		&vehicle.FuelType,
		&vehicle.Transmission,
		&vehicle.Color,
		&vehicle.Images,
		&vehicle.Status,
		&vehicle.CreatedAt,
		&vehicle.UpdatedAt,
		&vehicle.DeletedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return vehicle, nil
}

// Create creates a new vehicle listing
func (r *PostgresVehicleRepository) Create(ctx context.Context, vehicle *domain.Vehicle) error {
	query := `
		INSERT INTO vehicles (id, website_id, vendor_id, make, model, year, price,
			mileage, fuel_type, transmission, color, images, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
	`
	_, err := r.pool.Exec(ctx, query,
		vehicle.ID,
		vehicle.WebsiteID,
		vehicle.VendorID,
		vehicle.Make,
		vehicle.Model,
		vehicle.Year,
		vehicle.Price,
		vehicle.Mileage,
		nullStringOrValue(vehicle.FuelType),
		nullStringOrValue(vehicle.Transmission),
		nullStringOrValue(vehicle.Color),
		vehicle.Images,
		vehicle.Status,
		vehicle.CreatedAt,
		vehicle.UpdatedAt,
	)
	return err
}

// GetByID retrieves a vehicle by ID
func (r *PostgresVehicleRepository) GetByID(ctx context.Context, id string) (*domain.Vehicle, error) {
	query := fmt.Sprintf(`SELECT %s FROM vehicles WHERE id = $1 AND deleted_at IS NULL`, vehicleColumns)
	return r.scanVehicle(r.pool.QueryRow(ctx, query, id))
}

// List retrieves vehicles with pagination and filters
func (r *PostgresVehicleRepository) List(ctx context.Context, page, limit int, filter VehicleFilter) ([]*domain.Vehicle, int, error) {
	whereClause := "WHERE deleted_at IS NULL"
	args := []interface{}{}
	argIndex := 1

	if filter.WebsiteID != "" {
		whereClause += fmt.Sprintf(" AND website_id = $%d", argIndex)
		args = append(args, filter.WebsiteID)
		argIndex++
	}

	if filter.Make != "" {
		whereClause += fmt.Sprintf(" AND make ILIKE $%d", argIndex)
		args = append(args, filter.Make)
		argIndex++
	}

	if filter.Status != "" {
		whereClause += fmt.Sprintf(" AND status = $%d", argIndex)
		args = append(args, filter.Status)
		argIndex++
	}

	if filter.MinYear > 0 {
		whereClause += fmt.Sprintf(" AND year >= $%d", argIndex)
		args = append(args, filter.MinYear)
		argIndex++
	}

	if filter.MaxPrice > 0 {
		whereClause += fmt.Sprintf(" AND price <= $%d", argIndex)
		args = append(args, filter.MaxPrice)
		argIndex++
	}

	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM vehicles %s", whereClause)
	var totalCount int
	err := r.pool.QueryRow(ctx, countQuery, args...).Scan(&totalCount)
	if err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * limit
	query := fmt.Sprintf(`
		SELECT %s
		FROM vehicles
		%s
		ORDER BY created_at DESC
		LIMIT $%d OFFSET $%d
	`, vehicleColumns, whereClause, argIndex, argIndex+1)

	args = append(args, limit, offset)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	vehicles := make([]*domain.Vehicle, 0)
	for rows.Next() {
		vehicle, err := r.scanVehicle(rows)
		if err != nil {
			return nil, 0, err
		}
		vehicles = append(vehicles, vehicle)
	}

	return vehicles, totalCount, nil
}

// Update updates a vehicle
func (r *PostgresVehicleRepository) Update(ctx context.Context, vehicle *domain.Vehicle) error {
	query := `
		UPDATE vehicles
		SET make = $2, model = $3, year = $4, price = $5, mileage = $6,
			fuel_type = $7, transmission = $8, color = $9, images = $10,
			status = $11, updated_at = $12
		WHERE id = $1 AND deleted_at IS NULL
	`
	vehicle.UpdatedAt = time.Now()
	result, err := r.pool.Exec(ctx, query,
		vehicle.ID,
		vehicle.Make,
		vehicle.Model,
		vehicle.Year,
		vehicle.Price,
		vehicle.Mileage,
		nullStringOrValue(vehicle.FuelType),
		nullStringOrValue(vehicle.Transmission),
		nullStringOrValue(vehicle.Color),
		vehicle.Images,
		vehicle.Status,
		vehicle.UpdatedAt,
	)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("vehicle not found or already deleted")
	}

	return nil
}

// SoftDelete soft deletes a vehicle by setting deleted_at timestamp
func (r *PostgresVehicleRepository) SoftDelete(ctx context.Context, id string) error {
	query := `
		UPDATE vehicles
		SET deleted_at = $2
		WHERE id = $1 AND deleted_at IS NULL
	`
	result, err := r.pool.Exec(ctx, query, id, time.Now())
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("vehicle not found or already deleted")
	}

	return nil
}
