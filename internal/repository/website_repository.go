package repository

import (
	"context"

	"github.com/rnqayush/storefront-platform/internal/domain"
)

// WebsiteFilter narrows website listings
type WebsiteFilter struct {
	OwnerID string
	Type    domain.WebsiteType
	Status  domain.WebsiteStatus
	Search  string
}

// WebsiteRepository defines the interface for website data access
type WebsiteRepository interface {
	// Create creates a new website
	Create(ctx context.Context, website *domain.Website) error
	// GetByID retrieves a website by ID
	GetByID(ctx context.Context, id string) (*domain.Website, error)
	// GetBySlug retrieves a website by slug
	GetBySlug(ctx context.Context, slug string) (*domain.Website, error)
	// List retrieves websites with pagination and filters
	List(ctx context.Context, page, limit int, filter WebsiteFilter) ([]*domain.Website, int, error)
	// Update updates a website
	Update(ctx context.Context, website *domain.Website) error
	// SoftDelete soft deletes a website
	SoftDelete(ctx context.Context, id string) error
	// ExistsBySlug checks if a website exists with the given slug
	ExistsBySlug(ctx context.Context, slug string) (bool, error)
}
