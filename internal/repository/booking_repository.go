package repository

import (
	"context"

	"github.com/rnqayush/storefront-platform/internal/domain"
)

// BookingFilter narrows booking listings
type BookingFilter struct {
	WebsiteID  string
	VendorID   string
	CustomerID string
	Category   domain.BookingCategory
	Status     domain.BookingStatus
}

// BookingRepository defines the interface for booking data access
type BookingRepository interface {
	// CreateWithCounters creates a booking and bumps the vendor booking
	// counter (and the hotel counter when hotelID is set) in one transaction
	CreateWithCounters(ctx context.Context, booking *domain.Booking, hotelID string) error
	// GetByID retrieves a booking by ID
	GetByID(ctx context.Context, id string) (*domain.Booking, error)
	// List retrieves bookings with pagination and filters
	List(ctx context.Context, page, limit int, filter BookingFilter) ([]*domain.Booking, int, error)
	// Update persists the booking's current state, including lifecycle
	// timestamps and the payment record
	Update(ctx context.Context, booking *domain.Booking) error
	// AttachReview inserts the review, links it to the booking, and folds the
	// rating into the vendor (and hotel, when hotelID is set) aggregates in
	// one transaction
	AttachReview(ctx context.Context, booking *domain.Booking, review *domain.Review, hotelID string) error
	// SoftDelete soft deletes a booking
	SoftDelete(ctx context.Context, id string) error
}
