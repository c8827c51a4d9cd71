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

const reviewColumns = `id, booking_id, website_id, vendor_id, customer_id, rating,
	COALESCE(comment, '') as comment, created_at, updated_at, deleted_at`

// PostgresReviewRepository implements ReviewRepository using PostgreSQL
type PostgresReviewRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresReviewRepository creates a new PostgresReviewRepository
func NewPostgresReviewRepository(pool *pgxpool.Pool) *PostgresReviewRepository {
	return &PostgresReviewRepository{pool: pool}
}

// scanReview scans a row into a Review struct
func (r *PostgresReviewRepository) scanReview(row pgx.Row) (*domain.Review, error) {
	review := &domain.Review{}
	err := row.Scan(
		&review.ID,
		&review.BookingID,
		&review.WebsiteID,
		&review.VendorID,
		&review.CustomerID,
		&review.Rating,
		&review.Comment,
		&review.CreatedAt,
		&review.UpdatedAt,
		&review.DeletedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return review, nil
}

// GetByID retrieves a review by ID
func (r *PostgresReviewRepository) GetByID(ctx context.Context, id string) (*domain.Review, error) {
	query := fmt.Sprintf(`SELECT %s FROM reviews WHERE id = $1 AND deleted_at IS NULL`, reviewColumns)
	return r.scanReview(r.pool.QueryRow(ctx, query, id))
}

// GetByBookingID retrieves the review attached to a booking
func (r *PostgresReviewRepository) GetByBookingID(ctx context.Context, bookingID string) (*domain.Review, error) {
	query := fmt.Sprintf(`SELECT %s FROM reviews WHERE booking_id = $1 AND deleted_at IS NULL`, reviewColumns)
	return r.scanReview(r.pool.QueryRow(ctx, query, bookingID))
}

// List retrieves reviews with pagination and filters
func (r *PostgresReviewRepository) List(ctx context.Context, page, limit int, websiteID, vendorID string) ([]*domain.Review, int, error) {
	whereClause := "WHERE deleted_at IS NULL"
	args := []interface{}{}
	argIndex := 1

	if websiteID != "" {
		whereClause += fmt.Sprintf(" AND website_id = $%d", argIndex)
		args = append(args, websiteID)
		argIndex++
	}

	if vendorID != "" {
		whereClause += fmt.Sprintf(" AND vendor_id = $%d", argIndex)
		args = append(args, vendorID)
		argIndex++
	}

	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM reviews %s", whereClause)
	var totalCount int
	err := r.pool.QueryRow(ctx, countQuery, args...).Scan(&totalCount)
	if err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * limit
	query := fmt.Sprintf(`
		SELECT %s
		FROM reviews
		%s
		ORDER BY created_at DESC
		LIMIT $%d OFFSET $%d
	`, reviewColumns, whereClause, argIndex, argIndex+1)

	args = append(args, limit, offset)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	reviews := make([]*domain.Review, 0)
	for rows.Next() {
		review, err := r.scanReview(rows)
		if err != nil {
			return nil, 0, err
		}
		reviews = append(reviews, review)
	}

	return reviews, totalCount, nil
}

// SoftDelete soft deletes a review by setting deleted_at timestamp
func (r *PostgresReviewRepository) SoftDelete(ctx context.Context, id string) error {
	query := `
		UPDATE reviews
		SET deleted_at = $2
		WHERE id = $1 AND deleted_at IS NULL
	`
	result, err := r.pool.Exec(ctx, query, id, time.Now())
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("review not found or already deleted")
	}

	return nil
}
