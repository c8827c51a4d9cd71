package repository

import (
	"context"

	"github.com/rnqayush/storefront-platform/internal/domain"
)

// WeddingRepository defines the interface for wedding vendor and event data access
type WeddingRepository interface {
	// CreateVendor creates a wedding vendor listing
	CreateVendor(ctx context.Context, vendor *domain.WeddingVendor) error
	// GetVendorByID retrieves a wedding vendor by ID
	GetVendorByID(ctx context.Context, id string) (*domain.WeddingVendor, error)
	// ListVendors retrieves wedding vendors with pagination and filters
	ListVendors(ctx context.Context, page, limit int, websiteID, serviceType, city string) ([]*domain.WeddingVendor, int, error)
	// UpdateVendor updates a wedding vendor
	UpdateVendor(ctx context.Context, vendor *domain.WeddingVendor) error
	// SoftDeleteVendor soft deletes a wedding vendor
	SoftDeleteVendor(ctx context.Context, id string) error

	// CreateEvent creates a wedding event
	CreateEvent(ctx context.Context, event *domain.WeddingEvent) error
	// GetEventByID retrieves a wedding event by ID
	GetEventByID(ctx context.Context, id string) (*domain.WeddingEvent, error)
	// ListEvents retrieves the wedding events of a website, optionally scoped to a customer
	ListEvents(ctx context.Context, page, limit int, websiteID, customerID string) ([]*domain.WeddingEvent, int, error)
	// UpdateEvent updates a wedding event
	UpdateEvent(ctx context.Context, event *domain.WeddingEvent) error
	// SoftDeleteEvent soft deletes a wedding event
	SoftDeleteEvent(ctx context.Context, id string) error
}
