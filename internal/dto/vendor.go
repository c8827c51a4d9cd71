package dto

// CreateVendorRequest represents request to create a vendor profile
type CreateVendorRequest struct {
	WebsiteID    string `json:"website_id" binding:"required,uuid"`
	BusinessName string `json:"business_name" binding:"required,min=2,max=255"`
	Description  string `json:"description" binding:"omitempty,max=2000"`
	Category     string `json:"category" binding:"omitempty,max=100"`
	ContactEmail string `json:"contact_email" binding:"omitempty,email"`
	ContactPhone string `json:"contact_phone" binding:"omitempty,max=32"`
	Address      string `json:"address" binding:"omitempty,max=500"`
	City         string `json:"city" binding:"omitempty,max=100"`
	Country      string `json:"country" binding:"omitempty,max=100"`
}

// UpdateVendorRequest represents request to update vendor information
type UpdateVendorRequest struct {
	BusinessName *string `json:"business_name" binding:"omitempty,min=2,max=255"`
	Description  *string `json:"description" binding:"omitempty,max=2000"`
	Category     *string `json:"category" binding:"omitempty,max=100"`
	ContactEmail *string `json:"contact_email" binding:"omitempty,email"`
	ContactPhone *string `json:"contact_phone" binding:"omitempty,max=32"`
	Address      *string `json:"address" binding:"omitempty,max=500"`
	City         *string `json:"city" binding:"omitempty,max=100"`
	Country      *string `json:"country" binding:"omitempty,max=100"`
	IsActive     *bool   `json:"is_active" binding:"omitempty"`
}

// Validate validates that at least one field is provided for update
func (r *UpdateVendorRequest) Validate() (bool, string) {
	if r.BusinessName == nil && r.Description == nil && r.Category == nil &&
		r.ContactEmail == nil && r.ContactPhone == nil && r.Address == nil &&
		r.City == nil && r.Country == nil && r.IsActive == nil {
		return false, "At least one field must be provided for update"
	}
	return true, ""
}

// VendorResponse represents vendor data in response
type VendorResponse struct {
	ID            string  `json:"id"`
	UserID        string  `json:"user_id"`
	WebsiteID     string  `json:"website_id"`
	BusinessName  string  `json:"business_name"`
	Description   string  `json:"description,omitempty"`
	Category      string  `json:"category,omitempty"`
	ContactEmail  string  `json:"contact_email,omitempty"`
	ContactPhone  string  `json:"contact_phone,omitempty"`
	Address       string  `json:"address,omitempty"`
	City          string  `json:"city,omitempty"`
	Country       string  `json:"country,omitempty"`
	Rating        float64 `json:"rating"`
	ReviewCount   int     `json:"review_count"`
	TotalBookings int     `json:"total_bookings"`
	IsVerified    bool    `json:"is_verified"`
	IsActive      bool    `json:"is_active"`
	CreatedAt     string  `json:"created_at"`
	UpdatedAt     string  `json:"updated_at"`
}

// ListVendorsQuery represents query parameters for listing vendors
type ListVendorsQuery struct {
	Page     int    `form:"page" binding:"omitempty,min=1"`
	Limit    int    `form:"limit" binding:"omitempty,min=1,max=100"`
	Category string `form:"category" binding:"omitempty,max=100"`
	Search   string `form:"search" binding:"omitempty,max=255"`
}

// SetDefaults sets default values for query parameters
func (q *ListVendorsQuery) SetDefaults() {
	if q.Page == 0 {
		q.Page = 1
	}
	if q.Limit == 0 {
		q.Limit = 20
	}
}

// ListVendorsResponse represents paginated list of vendors
type ListVendorsResponse struct {
	Vendors    []VendorResponse `json:"vendors"`
	TotalCount int              `json:"total_count"`
	Page       int              `json:"page"`
	Limit      int              `json:"limit"`
	TotalPages int              `json:"total_pages"`
}
