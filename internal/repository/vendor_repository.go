package repository

import (
	"context"

	"github.com/rnqayush/storefront-platform/internal/domain"
)

// VendorRepository defines the interface for vendor data access
type VendorRepository interface {
	// Create creates a new vendor
	Create(ctx context.Context, vendor *domain.Vendor) error
	// GetByID retrieves a vendor by ID
	GetByID(ctx context.Context, id string) (*domain.Vendor, error)
	// GetByWebsiteID retrieves the vendor behind a website
	GetByWebsiteID(ctx context.Context, websiteID string) (*domain.Vendor, error)
	// GetByUserID retrieves the vendor profile owned by a user
	GetByUserID(ctx context.Context, userID string) (*domain.Vendor, error)
	// List retrieves vendors with pagination and filters
	List(ctx context.Context, page, limit int, websiteID, category, search string) ([]*domain.Vendor, int, error)
	// Update updates a vendor
	Update(ctx context.Context, vendor *domain.Vendor) error
	// SoftDelete soft deletes a vendor
	SoftDelete(ctx context.Context, id string) error
}
