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

const orderColumns = `id, website_id, vendor_id, customer_id, items, total, currency, status,
	COALESCE(shipping_address, '') as shipping_address, created_at, updated_at, deleted_at`

// PostgresOrderRepository implements OrderRepository using PostgreSQL
type PostgresOrderRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresOrderRepository creates a new PostgresOrderRepository
func NewPostgresOrderRepository(pool *pgxpool.Pool) *PostgresOrderRepository {
	return &PostgresOrderRepository{pool: pool}
}

// scanOrder scans a row into an Order struct
func (r *PostgresOrderRepository) scanOrder(row pgx.Row) (*domain.Order, error) {
	order := &domain.Order{}
	err := row.Scan(
		&order.ID,
		&order.WebsiteID,
		&order.VendorID,
		&order.CustomerID,
		&order.Items,
		&order.Total,
		&order.Currency,
		&order.Status,
		&order.ShippingAddress,
		&order.CreatedAt,
		&order.UpdatedAt,
		&order.DeletedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return order, nil
}

// Create creates a new order
func (r *PostgresOrderRepository) Create(ctx context.Context, order *domain.Order) error {
	query := `
		INSERT INTO orders (id, website_id, vendor_id, customer_id, items, total, currency, status, shipping_address, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`
	_, err := r.pool.Exec(ctx, query,
		order.ID,
		order.WebsiteID,
		order.VendorID,
		order.CustomerID,
		order.Items,
		order.Total,
		order.Currency,
		order.Status,
		nullStringOrValue(order.ShippingAddress),
		order.CreatedAt,
		order.UpdatedAt,
	)
	return err
}

// GetByID retrieves an order by ID
func (r *PostgresOrderRepository) GetByID(ctx context.Context, id string) (*domain.Order, error) {
	query := fmt.Sprintf(`SELECT %s FROM orders WHERE id = $1 AND deleted_at IS NULL`, orderColumns)
	return r.scanOrder(r.pool.QueryRow(ctx, query, id))
}

// List retrieves orders with pagination and filters
func (r *PostgresOrderRepository) List(ctx context.Context, page, limit int, websiteID, customerID string, status domain.OrderStatus) ([]*domain.Order, int, error) {
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

	if status != "" {
		whereClause += fmt.Sprintf(" AND status = $%d", argIndex)
		args = append(args, status)
		argIndex++
	}

	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM orders %s", whereClause)
	var totalCount int
	err := r.pool.QueryRow(ctx, countQuery, args...).Scan(&totalCount)
	if err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * limit
	query := fmt.Sprintf(`
		SELECT %s
		FROM orders
		%s
		ORDER BY created_at DESC
		LIMIT $%d OFFSET $%d
	`, orderColumns, whereClause, argIndex, argIndex+1)

	args = append(args, limit, offset)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	orders := make([]*domain.Order, 0)
	for rows.Next() {
		order, err := r.scanOrder(rows)
		if err != nil {
			return nil, 0, err
		}
		orders = append(orders, order)
	}

	return orders, totalCount, nil
}

// UpdateStatus updates the status of an order
func (r *PostgresOrderRepository) UpdateStatus(ctx context.Context, id string, status domain.OrderStatus) error {
	query := `
		UPDATE orders
		SET status = $2, updated_at = $3
		WHERE id = $1 AND deleted_at IS NULL
	`
	result, err := r.pool.Exec(ctx, query, id, status, time.Now())
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("order not found or already deleted")
	}

	return nil
}

// SoftDelete soft deletes an order by setting deleted_at timestamp
func (r *PostgresOrderRepository) SoftDelete(ctx context.Context, id string) error {
	query := `
		UPDATE orders
		SET deleted_at = $2
		WHERE id = $1 AND deleted_at IS NULL
	`
	result, err := r.pool.Exec(ctx, query, id, time.Now())
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("order not found or already deleted")
	}

	return nil
}
