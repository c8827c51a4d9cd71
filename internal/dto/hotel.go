package dto

// CreateHotelRequest represents request to create a hotel listing
type CreateHotelRequest struct {
	Name        string   `json:"name" binding:"required,min=2,max=255"`
	Description string   `json:"description" binding:"omitempty,max=5000"`
	Address     string   `json:"address" binding:"omitempty,max=500"`
	City        string   `json:"city" binding:"omitempty,max=100"`
	Country     string   `json:"country" binding:"omitempty,max=100"`
	StarRating  int      `json:"star_rating" binding:"omitempty,min=1,max=5"`
	Amenities   []string `json:"amenities" binding:"omitempty"`
	Images      []string `json:"images" binding:"omitempty,dive,url"`
}

// UpdateHotelRequest represents request to update a hotel listing
type UpdateHotelRequest struct {
	Name        *string   `json:"name" binding:"omitempty,min=2,max=255"`
	Description *string   `json:"description" binding:"omitempty,max=5000"`
	Address     *string   `json:"address" binding:"omitempty,max=500"`
	City        *string   `json:"city" binding:"omitempty,max=100"`
	Country     *string   `json:"country" binding:"omitempty,max=100"`
	StarRating  *int      `json:"star_rating" binding:"omitempty,min=1,max=5"`
	Amenities   *[]string `json:"amenities" binding:"omitempty"`
	Images      *[]string `json:"images" binding:"omitempty,dive,url"`
	IsActive    *bool     `json:"is_active" binding:"omitempty"`
}

// Validate validates that at least one field is provided for update
func (r *UpdateHotelRequest) Validate() (bool, string) {
	if r.Name == nil && r.Description == nil && r.Address == nil && r.City == nil &&
		r.Country == nil && r.StarRating == nil && r.Amenities == nil && r.Images == nil && r.IsActive == nil {
		return false, "At least one field must be provided for update"
	}
	return true, ""
}

// HotelResponse represents hotel data in response
type HotelResponse struct {
	ID            string   `json:"id"`
	WebsiteID     string   `json:"website_id"`
	VendorID      string   `json:"vendor_id"`
	Name          string   `json:"name"`
	Description   string   `json:"description,omitempty"`
	Address       string   `json:"address,omitempty"`
	City          string   `json:"city,omitempty"`
	Country       string   `json:"country,omitempty"`
	StarRating    int      `json:"star_rating,omitempty"`
	Amenities     []string `json:"amenities,omitempty"`
	Images        []string `json:"images,omitempty"`
	Rating        float64  `json:"rating"`
	ReviewCount   int      `json:"review_count"`
	TotalBookings int      `json:"total_bookings"`
	IsActive      bool     `json:"is_active"`
	CreatedAt     string   `json:"created_at"`
	UpdatedAt     string   `json:"updated_at"`
}

// ListHotelsQuery represents query parameters for listing hotels
type ListHotelsQuery struct {
	Page   int    `form:"page" binding:"omitempty,min=1"`
	Limit  int    `form:"limit" binding:"omitempty,min=1,max=100"`
	City   string `form:"city" binding:"omitempty,max=100"`
	Search string `form:"search" binding:"omitempty,max=255"`
}

// SetDefaults sets default values for query parameters
func (q *ListHotelsQuery) SetDefaults() {
	if q.Page == 0 {
		q.Page = 1
	}
	if q.Limit == 0 {
		q.Limit = 20
	}
}

// ListHotelsResponse represents paginated list of hotels
type ListHotelsResponse struct {
	Hotels     []HotelResponse `json:"hotels"`
	TotalCount int             `json:"total_count"`
	Page       int             `json:"page"`
	Limit      int             `json:"limit"`
	TotalPages int             `json:"total_pages"`
}

// CreateRoomRequest represents request to create a room under a hotel
type CreateRoomRequest struct {
	Name          string   `json:"name" binding:"required,min=2,max=255"`
	Description   string   `json:"description" binding:"omitempty,max=2000"`
	PricePerNight float64  `json:"price_per_night" binding:"required,min=0"`
	Capacity      int      `json:"capacity" binding:"required,min=1"`
	TotalRooms    int      `json:"total_rooms" binding:"required,min=1"`
	Images        []string `json:"images" binding:"omitempty,dive,url"`
}

// UpdateRoomRequest represents request to update a room
type UpdateRoomRequest struct {
	Name          *string   `json:"name" binding:"omitempty,min=2,max=255"`
	Description   *string   `json:"description" binding:"omitempty,max=2000"`
	PricePerNight *float64  `json:"price_per_night" binding:"omitempty,min=0"`
	Capacity      *int      `json:"capacity" binding:"omitempty,min=1"`
	TotalRooms    *int      `json:"total_rooms" binding:"omitempty,min=1"`
	Images        *[]string `json:"images" binding:"omitempty,dive,url"`
	IsActive      *bool     `json:"is_active" binding:"omitempty"`
}

// RoomResponse represents room data in response
type RoomResponse struct {
	ID            string   `json:"id"`
	HotelID       string   `json:"hotel_id"`
	Name          string   `json:"name"`
	Description   string   `json:"description,omitempty"`
	PricePerNight float64  `json:"price_per_night"`
	Capacity      int      `json:"capacity"`
	TotalRooms    int      `json:"total_rooms"`
	Images        []string `json:"images,omitempty"`
	IsActive      bool     `json:"is_active"`
	CreatedAt     string   `json:"created_at"`
	UpdatedAt     string   `json:"updated_at"`
}
