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

const bookingColumns = `id, website_id, vendor_id, customer_id, category,
	hotel_details, wedding_details, business_details, pricing, payment, status,
	COALESCE(confirmed_by, '') as confirmed_by, confirmed_at, actual_guests,
	checked_in_at, checked_out_at, completed_at,
	COALESCE(cancel_reason, '') as cancel_reason, COALESCE(cancelled_by, '') as cancelled_by, cancelled_at,
	COALESCE(review_id, '') as review_id, created_at, updated_at, deleted_at`

// PostgresBookingRepository implements BookingRepository using PostgreSQL
type PostgresBookingRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresBookingRepository creates a new PostgresBookingRepository
func NewPostgresBookingRepository(pool *pgxpool.Pool) *PostgresBookingRepository {
	return &PostgresBookingRepository{pool: pool}
}

// scanBooking scans a row into a Booking struct
func (r *PostgresBookingRepository) scanBooking(row pgx.Row) (*domain.Booking, error) {
	booking := &domain.Booking{}
	err := row.Scan(
		&booking.ID,
		&booking.WebsiteID,
		&booking.VendorID,
		&booking.CustomerID,
		&booking.Category,
		&booking.Hotel,
		&booking.Wedding,
		&booking.Business,
		&booking.Pricing,
		&booking.Payment,
		&booking.Status,
		&booking.ConfirmedBy,
		&booking.ConfirmedAt,
		&booking.ActualGuests,
		&booking.CheckedInAt,
		&booking.CheckedOutAt,
		&booking.CompletedAt,
		&booking.CancelReason,
		&booking.CancelledBy,
		&booking.CancelledAt,
		&booking.ReviewID,
		&booking.CreatedAt,
		&booking.UpdatedAt,
		&booking.DeletedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return booking, nil
}

// CreateWithCounters creates a booking and bumps the vendor booking counter
// (and the hotel counter when hotelID is set) in one transaction
func (r *PostgresBookingRepository) CreateWithCounters(ctx context.Context, booking *domain.Booking, hotelID string) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	insertQuery := `
		INSERT INTO bookings (id, website_id, vendor_id, customer_id, category,
			hotel_details, wedding_details, business_details, pricing, payment, status,
			created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
	`
	_, err = tx.Exec(ctx, insertQuery,
		booking.ID,
		booking.WebsiteID,
		booking.VendorID,
		booking.CustomerID,
		booking.Category,
		booking.Hotel,
		booking.Wedding,
		booking.Business,
		booking.Pricing,
		booking.Payment,
		booking.Status,
		booking.CreatedAt,
		booking.UpdatedAt,
	)
	if err != nil {
		return err
	}

	vendorQuery := `
		UPDATE vendors
		SET total_bookings = total_bookings + 1, updated_at = $2
		WHERE id = $1 AND deleted_at IS NULL
	`
	if _, err = tx.Exec(ctx, vendorQuery, booking.VendorID, time.Now()); err != nil {
		return err
	}

	if hotelID != "" {
		hotelQuery := `
			UPDATE hotels
			SET total_bookings = total_bookings + 1, updated_at = $2
			WHERE id = $1 AND deleted_at IS NULL
		`
		if _, err = tx.Exec(ctx, hotelQuery, hotelID, time.Now()); err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}

// GetByID retrieves a booking by ID
func (r *PostgresBookingRepository) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	query := fmt.Sprintf(`SELECT %s FROM bookings WHERE id = $1 AND deleted_at IS NULL`, bookingColumns)
	return r.scanBooking(r.pool.QueryRow(ctx, query, id))
}

// List retrieves bookings with pagination and filters
func (r *PostgresBookingRepository) List(ctx context.Context, page, limit int, filter BookingFilter) ([]*domain.Booking, int, error) {
	whereClause := "WHERE deleted_at IS NULL"
	args := []interface{}{}
	argIndex := 1

	if filter.WebsiteID != "" {
		whereClause += fmt.Sprintf(" AND website_id = $%d", argIndex)
		args = append(args, filter.WebsiteID)
		argIndex++
	}

	if filter.VendorID != "" {
		whereClause += fmt.Sprintf(" AND vendor_id = $%d", argIndex)
		args = append(args, filter.VendorID)
		argIndex++
	}

	if filter.CustomerID != "" {
		whereClause += fmt.Sprintf(" AND customer_id = $%d", argIndex)
		args = append(args, filter.CustomerID)
		argIndex++
	}

	if filter.Category != "" {
		whereClause += fmt.Sprintf(" AND category = $%d", argIndex)
		args = append(args, filter.Category)
		argIndex++
	}

	if filter.Status != "" {
		whereClause += fmt.Sprintf(" AND status = $%d", argIndex)
		args = append(args, filter.Status)
		argIndex++
	}

	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM bookings %s", whereClause)
	var totalCount int
	err := r.pool.QueryRow(ctx, countQuery, args...).Scan(&totalCount)
	if err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * limit
	query := fmt.Sprintf(`
		SELECT %s
		FROM bookings
		%s
		ORDER BY created_at DESC
		LIMIT $%d OFFSET $%d
	`, bookingColumns, whereClause, argIndex, argIndex+1)

	args = append(args, limit, offset)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	bookings := make([]*domain.Booking, 0)
	for rows.Next() {
		booking, err := r.scanBooking(rows)
		if err != nil {
			return nil, 0, err
		}
		bookings = append(bookings, booking)
	}

	return bookings, totalCount, nil
}

// Update persists the booking's current state
func (r *PostgresBookingRepository) Update(ctx context.Context, booking *domain.Booking) error {
	query := `
		UPDATE bookings
		SET hotel_details = $2, wedding_details = $3, business_details = $4,
			pricing = $5, payment = $6, status = $7,
			confirmed_by = $8, confirmed_at = $9, actual_guests = $10,
			checked_in_at = $11, checked_out_at = $12, completed_at = $13,
			cancel_reason = $14, cancelled_by = $15, cancelled_at = $16,
			review_id = $17, updated_at = $18
		WHERE id = $1 AND deleted_at IS NULL
	`
	booking.UpdatedAt = time.Now()
	result, err := r.pool.Exec(ctx, query,
		booking.ID,
		booking.Hotel,
		booking.Wedding,
		booking.Business,
		booking.Pricing,
		booking.Payment,
		booking.Status,
		nullStringOrValue(booking.ConfirmedBy),
		booking.ConfirmedAt,
		booking.ActualGuests,
		booking.CheckedInAt,
		booking.CheckedOutAt,
		booking.CompletedAt,
		nullStringOrValue(booking.CancelReason),
		nullStringOrValue(string(booking.CancelledBy)),
		booking.CancelledAt,
		nullStringOrValue(booking.ReviewID),
		booking.UpdatedAt,
	)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("booking not found or already deleted")
	}

	return nil
}

// AttachReview inserts the review, links it to the booking, and folds the
// rating into the vendor (and hotel) running mean in one transaction
func (r *PostgresBookingRepository) AttachReview(ctx context.Context, booking *domain.Booking, review *domain.Review, hotelID string) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	insertQuery := `
		INSERT INTO reviews (id, booking_id, website_id, vendor_id, customer_id, rating, comment, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`
	_, err = tx.Exec(ctx, insertQuery,
		review.ID,
		review.BookingID,
		review.WebsiteID,
		review.VendorID,
		review.CustomerID,
		review.Rating,
		nullStringOrValue(review.Comment),
		review.CreatedAt,
		review.UpdatedAt,
	)
	if err != nil {
		return err
	}

	linkQuery := `
		UPDATE bookings
		SET review_id = $2, updated_at = $3
		WHERE id = $1 AND deleted_at IS NULL
	`
	if _, err = tx.Exec(ctx, linkQuery, booking.ID, review.ID, booking.UpdatedAt); err != nil {
		return err
	}

	// The aggregates are read under row locks, folded through ApplyRating,
	// and written back inside the same transaction.
	vendor := &domain.Vendor{ID: review.VendorID}
	selectVendor := `
		SELECT rating, review_count FROM vendors
		WHERE id = $1 AND deleted_at IS NULL
		FOR UPDATE
	`
	if err = tx.QueryRow(ctx, selectVendor, vendor.ID).Scan(&vendor.Rating, &vendor.ReviewCount); err != nil {
		return err
	}
	vendor.ApplyRating(review.Rating)

	updateVendor := `
		UPDATE vendors
		SET rating = $2, review_count = $3, updated_at = $4
		WHERE id = $1 AND deleted_at IS NULL
	`
	if _, err = tx.Exec(ctx, updateVendor, vendor.ID, vendor.Rating, vendor.ReviewCount, time.Now()); err != nil {
		return err
	}

	if hotelID != "" {
		hotel := &domain.Hotel{ID: hotelID}
		selectHotel := `
			SELECT rating, review_count FROM hotels
			WHERE id = $1 AND deleted_at IS NULL
			FOR UPDATE
		`
		if err = tx.QueryRow(ctx, selectHotel, hotel.ID).Scan(&hotel.Rating, &hotel.ReviewCount); err != nil {
			return err
		}
		hotel.ApplyRating(review.Rating)

		updateHotel := `
			UPDATE hotels
			SET rating = $2, review_count = $3, updated_at = $4
			WHERE id = $1 AND deleted_at IS NULL
		`
		if _, err = tx.Exec(ctx, updateHotel, hotel.ID, hotel.Rating, hotel.ReviewCount, time.Now()); err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}

// SoftDelete soft deletes a booking by setting deleted_at timestamp
func (r *PostgresBookingRepository) SoftDelete(ctx context.Context, id string) error {
	query := `
		UPDATE bookings
		SET deleted_at = $2
		WHERE id = $1 AND deleted_at IS NULL
	`
	result, err := r.pool.Exec(ctx, query, id, time.Now())
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("booking not found or already deleted")
	}

	return nil
}
