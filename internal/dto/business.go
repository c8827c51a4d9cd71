package dto

// CreateBusinessServiceRequest represents request to create a business service
type CreateBusinessServiceRequest struct {
	Name        string  `json:"name" binding:"required,min=2,max=255"`
	Description string  `json:"description" binding:"omitempty,max=2000"`
	Price       float64 `json:"price" binding:"required,min=0"`
	DurationMin int     `json:"duration_min" binding:"omitempty,min=1"`
}

// UpdateBusinessServiceRequest represents request to update a business service
type UpdateBusinessServiceRequest struct {
	Name        *string  `json:"name" binding:"omitempty,min=2,max=255"`
	Description *string  `json:"description" binding:"omitempty,max=2000"`
	Price       *float64 `json:"price" binding:"omitempty,min=0"`
	DurationMin *int     `json:"duration_min" binding:"omitempty,min=1"`
	IsActive    *bool    `json:"is_active" binding:"omitempty"`
}

// BusinessServiceResponse represents business service data in response
type BusinessServiceResponse struct {
	ID          string  `json:"id"`
	WebsiteID   string  `json:"website_id"`
	VendorID    string  `json:"vendor_id"`
	Name        string  `json:"name"`
	Description string  `json:"description,omitempty"`
	Price       float64 `json:"price"`
	DurationMin int     `json:"duration_min,omitempty"`
	IsActive    bool    `json:"is_active"`
	CreatedAt   string  `json:"created_at"`
	UpdatedAt   string  `json:"updated_at"`
}

// ListBusinessServicesQuery represents query parameters for listing business services
type ListBusinessServicesQuery struct {
	Page     int   `form:"page" binding:"omitempty,min=1"`
	Limit    int   `form:"limit" binding:"omitempty,min=1,max=100"`
	IsActive *bool `form:"is_active" binding:"omitempty"`
}

// SetDefaults sets default values for query parameters
func (q *ListBusinessServicesQuery) SetDefaults() {
	if q.Page == 0 {
		q.Page = 1
	}
	if q.Limit == 0 {
		q.Limit = 20
	}
}

// ListBusinessServicesResponse represents paginated list of business services
type ListBusinessServicesResponse struct {
	Services   []BusinessServiceResponse `json:"services"`
	TotalCount int                       `json:"total_count"`
	Page       int                       `json:"page"`
	Limit      int                       `json:"limit"`
	TotalPages int                       `json:"total_pages"`
}
