package domain

import "time"

// Vendor represents the business entity behind a website. It carries the
// rating aggregates and booking counters updated by the booking lifecycle.
type Vendor struct {
	ID            string     `json:"id"`
	UserID        string     `json:"user_id"`
	WebsiteID     string     `json:"website_id"`
	BusinessName  string     `json:"business_name"`
	Description   string     `json:"description,omitempty"`
	Category      string     `json:"category,omitempty"`
	ContactEmail  string     `json:"contact_email,omitempty"`
	ContactPhone  string     `json:"contact_phone,omitempty"`
	Address       string     `json:"address,omitempty"`
	City          string     `json:"city,omitempty"`
	Country       string     `json:"country,omitempty"`
	Rating        float64    `json:"rating"`
	ReviewCount   int        `json:"review_count"`
	TotalBookings int        `json:"total_bookings"`
	IsVerified    bool       `json:"is_verified"`
	IsActive      bool       `json:"is_active"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
	DeletedAt     *time.Time `json:"deleted_at,omitempty"` // Soft delete support
}

// ApplyRating folds a new review rating into the running mean. No weighting
// or decay; count increments by exactly one.
func (v *Vendor) ApplyRating(rating int) {
	v.Rating = (v.Rating*float64(v.ReviewCount) + float64(rating)) / float64(v.ReviewCount+1)
	v.ReviewCount++
}
