package dto

// CreateReviewRequest represents request to review a completed booking
type CreateReviewRequest struct {
	Rating  int    `json:"rating" binding:"required,min=1,max=5"`
	Comment string `json:"comment" binding:"omitempty,max=2000"`
}

// ReviewResponse represents review data in response
type ReviewResponse struct {
	ID         string `json:"id"`
	BookingID  string `json:"booking_id"`
	WebsiteID  string `json:"website_id"`
	VendorID   string `json:"vendor_id"`
	CustomerID string `json:"customer_id"`
	Rating     int    `json:"rating"`
	Comment    string `json:"comment,omitempty"`
	CreatedAt  string `json:"created_at"`
	UpdatedAt  string `json:"updated_at"`
}

// ListReviewsQuery represents query parameters for listing reviews
type ListReviewsQuery struct {
	Page     int    `form:"page" binding:"omitempty,min=1"`
	Limit    int    `form:"limit" binding:"omitempty,min=1,max=100"`
	VendorID string `form:"vendor_id" binding:"omitempty,uuid"`
}

// SetDefaults sets default values for query parameters
func (q *ListReviewsQuery) SetDefaults() {
	if q.Page == 0 {
		q.Page = 1
	}
	if q.Limit == 0 {
		q.Limit = 20
	}
}

// ListReviewsResponse represents paginated list of reviews
type ListReviewsResponse struct {
	Reviews    []ReviewResponse `json:"reviews"`
	TotalCount int              `json:"total_count"`
	Page       int              `json:"page"`
	Limit      int              `json:"limit"`
	TotalPages int              `json:"total_pages"`
}
