package domain

import "time"

// Hotel represents a bookable hotel listing under a hotel-type website
type Hotel struct {
	ID            string     `json:"id"`
	WebsiteID     string     `json:"website_id"`
	VendorID      string     `json:"vendor_id"`
	Name          string     `json:"name"`
	Description   string     `json:"description,omitempty"`
	Address       string     `json:"address,omitempty"`
	City          string     `json:"city,omitempty"`
	Country       string     `json:"country,omitempty"`
	StarRating    int        `json:"star_rating,omitempty"`
	Amenities     []string   `json:"amenities,omitempty"`
	Images        []string   `json:"images,omitempty"`
	Rating        float64    `json:"rating"`
	ReviewCount   int        `json:"review_count"`
	TotalBookings int        `json:"total_bookings"`
	IsActive      bool       `json:"is_active"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
	DeletedAt     *time.Time `json:"deleted_at,omitempty"` // Soft delete support
}

// ApplyRating folds a new review rating into the running mean
func (h *Hotel) ApplyRating(rating int) {
	h.Rating = (h.Rating*float64(h.ReviewCount) + float64(rating)) / float64(h.ReviewCount+1)
	h.ReviewCount++
}

// Room represents a room type within a hotel
type Room struct {
	ID            string     `json:"id"`
	HotelID       string     `json:"hotel_id"`
	Name          string     `json:"name"`
	Description   string     `json:"description,omitempty"`
	PricePerNight float64    `json:"price_per_night"`
	Capacity      int        `json:"capacity"`
	TotalRooms    int        `json:"total_rooms"`
	Images        []string   `json:"images,omitempty"`
	IsActive      bool       `json:"is_active"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
	DeletedAt     *time.Time `json:"deleted_at,omitempty"`
}
