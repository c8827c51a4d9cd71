package repository

import (
	"context"

	"github.com/rnqayush/storefront-platform/internal/domain"
)

// ProductFilter narrows product listings
type ProductFilter struct {
	WebsiteID  string
	CategoryID string
	IsActive   *bool
	Search     string
}

// ProductRepository defines the interface for product and category data access
type ProductRepository interface {
	// Create creates a new product
	Create(ctx context.Context, product *domain.Product) error
	// GetByID retrieves a product by ID
	GetByID(ctx context.Context, id string) (*domain.Product, error)
	// GetBySlug retrieves a product by website and slug
	GetBySlug(ctx context.Context, websiteID, slug string) (*domain.Product, error)
	// List retrieves products with pagination and filters
	List(ctx context.Context, page, limit int, filter ProductFilter) ([]*domain.Product, int, error)
	// Update updates a product
	Update(ctx context.Context, product *domain.Product) error
	// SoftDelete soft deletes a product
	SoftDelete(ctx context.Context, id string) error

	// CreateCategory creates a category
	CreateCategory(ctx context.Context, category *domain.Category) error
	// GetCategoryByID retrieves a category by ID
	GetCategoryByID(ctx context.Context, id string) (*domain.Category, error)
	// ListCategories retrieves the categories of a website
	ListCategories(ctx context.Context, websiteID string) ([]*domain.Category, error)
	// UpdateCategory updates a category
	UpdateCategory(ctx context.Context, category *domain.Category) error
	// SoftDeleteCategory soft deletes a category
	SoftDeleteCategory(ctx context.Context, id string) error
}
