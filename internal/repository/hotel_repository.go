package repository

import (
	"context"

	"github.com/rnqayush/storefront-platform/internal/domain"
)

// HotelRepository defines the interface for hotel and room data access
type HotelRepository interface {
	// Create creates a new hotel
	Create(ctx context.Context, hotel *domain.Hotel) error
	// GetByID retrieves a hotel by ID
	GetByID(ctx context.Context, id string) (*domain.Hotel, error)
	// List retrieves hotels with pagination and filters
	List(ctx context.Context, page, limit int, websiteID, city, search string) ([]*domain.Hotel, int, error)
	// Update updates a hotel
	Update(ctx context.Context, hotel *domain.Hotel) error
	// SoftDelete soft deletes a hotel
	SoftDelete(ctx context.Context, id string) error

	// CreateRoom creates a room under a hotel
	CreateRoom(ctx context.Context, room *domain.Room) error
	// GetRoomByID retrieves a room by ID
	GetRoomByID(ctx context.Context, id string) (*domain.Room, error)
	// ListRooms retrieves the rooms of a hotel
	ListRooms(ctx context.Context, hotelID string) ([]*domain.Room, error)
	// UpdateRoom updates a room
	UpdateRoom(ctx context.Context, room *domain.Room) error
	// SoftDeleteRoom soft deletes a room
	SoftDeleteRoom(ctx context.Context, id string) error
}
