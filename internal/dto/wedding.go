package dto

// CreateWeddingVendorRequest represents request to create a wedding vendor listing
type CreateWeddingVendorRequest struct {
	Name        string   `json:"name" binding:"required,min=2,max=255"`
	ServiceType string   `json:"service_type" binding:"required,max=100"`
	Description string   `json:"description" binding:"omitempty,max=2000"`
	PriceFrom   float64  `json:"price_from" binding:"omitempty,min=0"`
	City        string   `json:"city" binding:"omitempty,max=100"`
	Images      []string `json:"images" binding:"omitempty,dive,url"`
}

// UpdateWeddingVendorRequest represents request to update a wedding vendor listing
type UpdateWeddingVendorRequest struct {
	Name        *string   `json:"name" binding:"omitempty,min=2,max=255"`
	ServiceType *string   `json:"service_type" binding:"omitempty,max=100"`
	Description *string   `json:"description" binding:"omitempty,max=2000"`
	PriceFrom   *float64  `json:"price_from" binding:"omitempty,min=0"`
	City        *string   `json:"city" binding:"omitempty,max=100"`
	Images      *[]string `json:"images" binding:"omitempty,dive,url"`
	IsActive    *bool     `json:"is_active" binding:"omitempty"`
}

// WeddingVendorResponse represents wedding vendor data in response
type WeddingVendorResponse struct {
	ID          string   `json:"id"`
	WebsiteID   string   `json:"website_id"`
	VendorID    string   `json:"vendor_id"`
	Name        string   `json:"name"`
	ServiceType string   `json:"service_type"`
	Description string   `json:"description,omitempty"`
	PriceFrom   float64  `json:"price_from,omitempty"`
	City        string   `json:"city,omitempty"`
	Images      []string `json:"images,omitempty"`
	IsActive    bool     `json:"is_active"`
	CreatedAt   string   `json:"created_at"`
	UpdatedAt   string   `json:"updated_at"`
}

// ListWeddingVendorsQuery represents query parameters for listing wedding vendors
type ListWeddingVendorsQuery struct {
	Page        int    `form:"page" binding:"omitempty,min=1"`
	Limit       int    `form:"limit" binding:"omitempty,min=1,max=100"`
	ServiceType string `form:"service_type" binding:"omitempty,max=100"`
	City        string `form:"city" binding:"omitempty,max=100"`
}

// SetDefaults sets default values for query parameters
func (q *ListWeddingVendorsQuery) SetDefaults() {
	if q.Page == 0 {
		q.Page = 1
	}
	if q.Limit == 0 {
		q.Limit = 20
	}
}

// ListWeddingVendorsResponse represents paginated list of wedding vendors
type ListWeddingVendorsResponse struct {
	Vendors    []WeddingVendorResponse `json:"vendors"`
	TotalCount int                     `json:"total_count"`
	Page       int                     `json:"page"`
	Limit      int                     `json:"limit"`
	TotalPages int                     `json:"total_pages"`
}

// CreateWeddingEventRequest represents request to create a wedding event
type CreateWeddingEventRequest struct {
	Title      string  `json:"title" binding:"required,min=2,max=255"`
	EventDate  string  `json:"event_date" binding:"required"`
	Location   string  `json:"location" binding:"omitempty,max=500"`
	GuestCount int     `json:"guest_count" binding:"omitempty,min=1"`
	Budget     float64 `json:"budget" binding:"omitempty,min=0"`
	Notes      string  `json:"notes" binding:"omitempty,max=2000"`
}

// UpdateWeddingEventRequest represents request to update a wedding event
type UpdateWeddingEventRequest struct {
	Title      *string  `json:"title" binding:"omitempty,min=2,max=255"`
	EventDate  *string  `json:"event_date" binding:"omitempty"`
	Location   *string  `json:"location" binding:"omitempty,max=500"`
	GuestCount *int     `json:"guest_count" binding:"omitempty,min=1"`
	Budget     *float64 `json:"budget" binding:"omitempty,min=0"`
	Notes      *string  `json:"notes" binding:"omitempty,max=2000"`
}

// WeddingEventResponse represents wedding event data in response
type WeddingEventResponse struct {
	ID         string  `json:"id"`
	WebsiteID  string  `json:"website_id"`
	CustomerID string  `json:"customer_id"`
	Title      string  `json:"title"`
	EventDate  string  `json:"event_date"`
	Location   string  `json:"location,omitempty"`
	GuestCount int     `json:"guest_count,omitempty"`
	Budget     float64 `json:"budget,omitempty"`
	Notes      string  `json:"notes,omitempty"`
	CreatedAt  string  `json:"created_at"`
	UpdatedAt  string  `json:"updated_at"`
}

// ListWeddingEventsQuery represents query parameters for listing wedding
// events
type ListWeddingEventsQuery struct {
	Page  int `form:"page" binding:"omitempty,min=1"`
	Limit int `form:"limit" binding:"omitempty,min=1,max=100"`
}

// ListWeddingEventsResponse represents paginated list of wedding events
type ListWeddingEventsResponse struct {
	Events     []WeddingEventResponse `json:"events"`
	TotalCount int                    `json:"total_count"`
	Page       int                    `json:"page"`
	Limit      int                    `json:"limit"`
	TotalPages int                    `json:"total_pages"`
}
