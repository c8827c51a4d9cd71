package domain

import "time"

// BusinessService represents a bookable service under a business-type website
type BusinessService struct {
	ID          string     `json:"id"`
	WebsiteID   string     `json:"website_id"`
	VendorID    string     `json:"vendor_id"`
	Name        string     `json:"name"`
	Description string     `json:"description,omitempty"`
	Price       float64    `json:"price"`
	DurationMin int        `json:"duration_min,omitempty"`
	IsActive    bool       `json:"is_active"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
	DeletedAt   *time.Time `json:"deleted_at,omitempty"` // Soft delete support
}
