package repository

import (
	"context"

	"github.com/rnqayush/storefront-platform/internal/domain"
)

// ReviewRepository defines the interface for review data access. Review
// creation happens inside BookingRepository.AttachReview so the aggregate
// updates commit atomically; this interface covers the read side.
type ReviewRepository interface {
	// GetByID retrieves a review by ID
	GetByID(ctx context.Context, id string) (*domain.Review, error)
	// GetByBookingID retrieves the review attached to a booking
	GetByBookingID(ctx context.Context, bookingID string) (*domain.Review, error)
	// List retrieves reviews with pagination and filters
	List(ctx context.Context, page, limit int, websiteID, vendorID string) ([]*domain.Review, int, error)
	// SoftDelete soft deletes a review
	SoftDelete(ctx context.Context, id string) error
}
