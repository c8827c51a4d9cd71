package repository

import (
	"context"

	"github.com/rnqayush/storefront-platform/internal/domain"
)

// OrderRepository defines the interface for order data access
type OrderRepository interface {
	// Create creates a new order
	Create(ctx context.Context, order *domain.Order) error
	// GetByID retrieves an order by ID
	GetByID(ctx context.Context, id string) (*domain.Order, error)
	// List retrieves orders with pagination and filters
	List(ctx context.Context, page, limit int, websiteID, customerID string, status domain.OrderStatus) ([]*domain.Order, int, error)
	// UpdateStatus updates the status of an order
	UpdateStatus(ctx context.Context, id string, status domain.OrderStatus) error
	// SoftDelete soft deletes an order
	SoftDelete(ctx context.Context, id string) error
}
