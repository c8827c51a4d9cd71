package domain

import "time"

// Review represents a customer review attached to a completed booking.
// Individual reviews are retained; vendor/hotel aggregates are running means.
type Review struct {
	ID         string     `json:"id"`
	BookingID  string     `json:"booking_id"`
	WebsiteID  string     `json:"website_id"`
	VendorID   string     `json:"vendor_id"`
	CustomerID string     `json:"customer_id"`
	Rating     int        `json:"rating"` // 1-5
	Comment    string     `json:"comment,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
	DeletedAt  *time.Time `json:"deleted_at,omitempty"` // Soft delete support
}
