package repository

import (
	"context"

	"github.com/rnqayush/storefront-platform/internal/domain"
)

// VehicleFilter narrows vehicle listings
type VehicleFilter struct {
	WebsiteID string
	Make      string
	Status    domain.VehicleStatus
	MinYear   int
	MaxPrice  float64
}

// VehicleRepository defines the interface for vehicle data access
type VehicleRepository interface {
	// Create creates a new vehicle listing
	Create(ctx context.Context, vehicle *domain.Vehicle) error
	// GetByID retrieves a vehicle by ID
	GetByID(ctx context.Context, id string) (*domain.Vehicle, error)
	// List retrieves vehicles with pagination and filters
	List(ctx context.Context, page, limit int, filter VehicleFilter) ([]*domain.Vehicle, int, error)
	// Update updates a vehicle
	Update(ctx context.Context, vehicle *domain.Vehicle) error
	// SoftDelete soft deletes a vehicle
	SoftDelete(ctx context.Context, id string) error
}
