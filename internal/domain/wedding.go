package domain

import "time"

// WeddingVendor represents a wedding service provider listing under a
// wedding-type website
type WeddingVendor struct {
	ID          string     `json:"id"`
	WebsiteID   string     `json:"website_id"`
	VendorID    string     `json:"vendor_id"`
	Name        string     `json:"name"`
	ServiceType string     `json:"service_type"` // photography, catering, venue, decor, music
	Description string     `json:"description,omitempty"`
	PriceFrom   float64    `json:"price_from,omitempty"`
	City        string     `json:"city,omitempty"`
	Images      []string   `json:"images,omitempty"`
	IsActive    bool       `json:"is_active"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
	DeletedAt   *time.Time `json:"deleted_at,omitempty"` // Soft delete support
}

// WeddingEvent represents a planned wedding event under a wedding website
type WeddingEvent struct {
	ID         string     `json:"id"`
	WebsiteID  string     `json:"website_id"`
	CustomerID string     `json:"customer_id"`
	Title      string     `json:"title"`
	EventDate  time.Time  `json:"event_date"`
	Location   string     `json:"location,omitempty"`
	GuestCount int        `json:"guest_count,omitempty"`
	Budget     float64    `json:"budget,omitempty"`
	Notes      string     `json:"notes,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
	DeletedAt  *time.Time `json:"deleted_at,omitempty"`
}
