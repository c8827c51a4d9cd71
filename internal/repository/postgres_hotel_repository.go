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

const hotelColumns = `id, website_id, vendor_id, name, COALESCE(description, '') as description,
	COALESCE(address, '') as address, COALESCE(city, '') as city, COALESCE(country, '') as country,
	COALESCE(star_rating, 0) as star_rating, COALESCE(amenities, '{}') as amenities, COALESCE(images, '{}') as images,
	COALESCE(rating, 0) as rating, COALESCE(review_count, 0) as review_count,
	COALESCE(total_bookings, 0) as total_bookings,
	is_active, created_at, updated_at, deleted_at`

const roomColumns = `id, hotel_id, name, COALESCE(description, '') as description,
	price_per_night, capacity, total_rooms, COALESCE(images, '{}') as images,
	is_active, created_at, updated_at, deleted_at`

// PostgresHotelRepository implements HotelRepository using PostgreSQL
type PostgresHotelRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresHotelRepository creates a new PostgresHotelRepository
func NewPostgresHotelRepository(pool *pgxpool.Pool) *PostgresHotelRepository {
	return &PostgresHotelRepository{pool: pool}
}

// scanHotel scans a row into a Hotel struct
func (r *PostgresHotelRepository) scanHotel(row pgx.Row) (*domain.Hotel, error) {
	hotel := &domain.Hotel{}
	err := row.Scan(
		&hotel.ID,
		&hotel.WebsiteID,
		&hotel.VendorID,
		&hotel.Name,
		&hotel.Description,
		&hotel.Address,
		&hotel.City,
		&hotel.Country,
		&hotel.StarRating,
		&hotel.Amenities,
		&hotel.Images,
		&hotel.Rating,
		&hotel.ReviewCount,
		&hotel.TotalBookings,
		&hotel.IsActive,
		&hotel.CreatedAt,
		&hotel.UpdatedAt,
		&hotel.DeletedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return hotel, nil
}

// Create creates a new hotel
func (r *PostgresHotelRepository) Create(ctx context.Context, hotel *domain.Hotel) error {
	query := `
		INSERT INTO hotels (id, website_id, vendor_id, name, description, address, city, country,
			star_rating, amenities, images, rating, review_count, total_bookings, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)
	`
	_, err := r.pool.Exec(ctx, query,
		hotel.ID,
		hotel.WebsiteID,
		hotel.VendorID,
		hotel.Name,
		nullStringOrValue(hotel.Description),
		nullStringOrValue(hotel.Address),
		nullStringOrValue(hotel.City),
		nullStringOrValue(hotel.Country),
		hotel.StarRating,
		hotel.Amenities,
		hotel.Images,
		hotel.Rating,
		hotel.ReviewCount,
		hotel.TotalBookings,
		hotel.IsActive,
		hotel.CreatedAt,
		hotel.UpdatedAt,
	)
	return err
}

// GetByID retrieves a hotel by ID
func (r *PostgresHotelRepository) GetByID(ctx context.Context, id string) (*domain.Hotel, error) {
	query := fmt.Sprintf(`SELECT %s FROM hotels WHERE id = $1 AND deleted_at IS NULL`, hotelColumns)
	return r.scanHotel(r.pool.QueryRow(ctx, query, id))
}

// List retrieves hotels with pagination and filters
func (r *PostgresHotelRepository) List(ctx context.Context, page, limit int, websiteID, city, search string) ([]*domain.Hotel, int, error) {
	whereClause := "WHERE deleted_at IS NULL"
	args := []interface{}{}
	argIndex := 1

	if websiteID != "" {
		whereClause += fmt.Sprintf(" AND website_id = $%d", argIndex)
		args = append(args, websiteID)
		argIndex++
	}

	if city != "" {
		whereClause += fmt.Sprintf(" AND city ILIKE $%d", argIndex)
		args = append(args, city)
		argIndex++
	}

	if search != "" {
		whereClause += fmt.Sprintf(" AND name ILIKE $%d", argIndex)
		args = append(args, "%"+search+"%")
		argIndex++
	}

	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM hotels %s", whereClause)
	var totalCount int
	err := r.pool.QueryRow(ctx, countQuery, args...).Scan(&totalCount)
	if err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * limit
	query := fmt.Sprintf(`
		SELECT %s
		FROM hotels
		%s
		ORDER BY created_at DESC
		LIMIT $%d OFFSET $%d
	`, hotelColumns, whereClause, argIndex, argIndex+1)

	args = append(args, limit, offset)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	hotels := make([]*domain.Hotel, 0)
	for rows.Next() {
		hotel, err := r.scanHotel(rows)
		if err != nil {
			return nil, 0, err
		}
		hotels = append(hotels, hotel)
	}

	return hotels, totalCount, nil
}

// Update updates a hotel
func (r *PostgresHotelRepository) Update(ctx context.Context, hotel *domain.Hotel) error {
	query := `
		UPDATE hotels
		SET name = $2, description = $3, address = $4, city = $5, country = $6,
			star_rating = $7, amenities = $8, images = $9,
			rating = $10, review_count = $11, total_bookings = $12,
			is_active = $13, updated_at = $14
		WHERE id = $1 AND deleted_at IS NULL
	`
	hotel.UpdatedAt = time.Now()
	result, err := r.pool.Exec(ctx, query,
		hotel.ID,
		hotel.Name,
		nullStringOrValue(hotel.Description),
		nullStringOrValue(hotel.Address),
		nullStringOrValue(hotel.City),
		nullStringOrValue(hotel.Country),
		hotel.StarRating,
		hotel.Amenities,
		hotel.Images,
		hotel.Rating,
		hotel.ReviewCount,
		hotel.TotalBookings,
		hotel.IsActive,
		hotel.UpdatedAt,
	)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("hotel not found or already deleted")
	}

	return nil
}

// SoftDelete soft deletes a hotel by setting deleted_at timestamp
func (r *PostgresHotelRepository) SoftDelete(ctx context.Context, id string) error {
	query := `
		UPDATE hotels
		SET deleted_at = $2
		WHERE id = $1 AND deleted_at IS NULL
	`
	result, err := r.pool.Exec(ctx, query, id, time.Now())
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("hotel not found or already deleted")
	}

	return nil
}

// scanRoom scans a row into a Room struct
func (r *PostgresHotelRepository) scanRoom(row pgx.Row) (*domain.Room, error) {
	room := &domain.Room{}
	err := row.Scan(
		&room.ID,
		&room.HotelID,
		&room.Name,
		&room.Description,
		&room.PricePerNight,
		&room.Capacity,
		&room.TotalRooms,
		&room.Images,
		&room.IsActive,
		&room.CreatedAt,
		&room.UpdatedAt,
		&room.DeletedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return room, nil
}

// CreateRoom creates a room under a hotel
func (r *PostgresHotelRepository) CreateRoom(ctx context.Context, room *domain.Room) error {
	query := `
		INSERT INTO rooms (id, hotel_id, name, description, price_per_night, capacity, total_rooms, images, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`
	_, err := r.pool.Exec(ctx, query,
		room.ID,
		room.HotelID,
		room.Name,
		nullStringOrValue(room.Description),
		room.PricePerNight,
		room.Capacity,
		room.TotalRooms,
		room.Images,
		room.IsActive,
		room.CreatedAt,
		room.UpdatedAt,
	)
	return err
}

// GetRoomByID retrieves a room by ID
func (r *PostgresHotelRepository) GetRoomByID(ctx context.Context, id string) (*domain.Room, error) {
	query := fmt.Sprintf(`SELECT %s FROM rooms WHERE id = $1 AND deleted_at IS NULL`, roomColumns)
	return r.scanRoom(r.pool.QueryRow(ctx, query, id))
}

// ListRooms retrieves the rooms of a hotel
func (r *PostgresHotelRepository) ListRooms(ctx context.Context, hotelID string) ([]*domain.Room, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM rooms
		WHERE hotel_id = $1 AND deleted_at IS NULL
		ORDER BY created_at ASC
	`, roomColumns)

	rows, err := r.pool.Query(ctx, query, hotelID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	rooms := make([]*domain.Room, 0)
	for rows.Next() {
		room, err := r.scanRoom(rows)
		if err != nil {
			return nil, err
		}
		rooms = append(rooms, room)
	}

	return rooms, nil
}

// UpdateRoom updates a room
func (r *PostgresHotelRepository) UpdateRoom(ctx context.Context, room *domain.Room) error {
	query := `
		UPDATE rooms
		SET name = $2, description = $3, price_per_night = $4, capacity = $5,
			total_rooms = $6, images = $7, is_active = $8, updated_at = $9
		WHERE id = $1 AND deleted_at IS NULL
	`
	room.UpdatedAt = time.Now()
	result, err := r.pool.Exec(ctx, query,
		room.ID,
		room.Name,
		nullStringOrValue(room.Description),
		room.PricePerNight,
		room.Capacity,
		room.TotalRooms,
		room.Images,
		room.IsActive,
		room.UpdatedAt,
	)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("room not found or already deleted")
	}

	return nil
}

// SoftDeleteRoom soft deletes a room by setting deleted_at timestamp
func (r *PostgresHotelRepository) SoftDeleteRoom(ctx context.Context, id string) error {
	query := `
		UPDATE rooms
		SET deleted_at = $2
		WHERE id = $1 AND deleted_at IS NULL
	`
	result, err := r.pool.Exec(ctx, query, id, time.Now())
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("room not found or already deleted")
	}

	return nil
}
