package repository

import (
	"context"

	"github.com/rnqayush/storefront-platform/internal/domain"
)

// BusinessServiceRepository defines the interface for business service data access
type BusinessServiceRepository interface {
	// Create creates a business service
	Create(ctx context.Context, service *domain.BusinessService) error
	// GetByID retrieves a business service by ID
	GetByID(ctx context.Context, id string) (*domain.BusinessService, error)
	// List retrieves the business services of a website
	List(ctx context.Context, page, limit int, websiteID string, isActive *bool) ([]*domain.BusinessService, int, error)
	// Update updates a business service
	Update(ctx context.Context, service *domain.BusinessService) error
	// SoftDelete soft deletes a business service
	SoftDelete(ctx context.Context, id string) error
}
