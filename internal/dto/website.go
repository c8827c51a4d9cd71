package dto

// CreateWebsiteRequest represents request to create a new website
type CreateWebsiteRequest struct {
	Name     string                 `json:"name" binding:"required,min=2,max=255"`
	Slug     string                 `json:"slug" binding:"required,min=2,max=100"`
	Domain   string                 `json:"domain" binding:"omitempty,max=255"`
	Type     string                 `json:"type" binding:"required,oneof=hotel ecommerce vehicle wedding business"`
	Settings map[string]interface{} `json:"settings" binding:"omitempty"`
}

// UpdateWebsiteRequest represents request to update website information.
// The slug is immutable and cannot be changed after creation.
type UpdateWebsiteRequest struct {
	Name     *string                 `json:"name" binding:"omitempty,min=2,max=255"`
	Domain   *string                 `json:"domain" binding:"omitempty,max=255"`
	Status   *string                 `json:"status" binding:"omitempty,oneof=draft active inactive suspended"`
	Settings *map[string]interface{} `json:"settings" binding:"omitempty"`
}

// Validate validates that at least one field is provided for update
func (r *UpdateWebsiteRequest) Validate() (bool, string) {
	if r.Name == nil && r.Domain == nil && r.Status == nil && r.Settings == nil {
		return false, "At least one field must be provided for update"
	}
	return true, ""
}

// WebsiteResponse represents website data in response
type WebsiteResponse struct {
	ID        string                 `json:"id"`
	Name      string                 `json:"name"`
	Slug      string                 `json:"slug"`
	Domain    string                 `json:"domain,omitempty"`
	Type      string                 `json:"type"`
	OwnerID   string                 `json:"owner_id"`
	Status    string                 `json:"status"`
	Settings  map[string]interface{} `json:"settings,omitempty"`
	CreatedAt string                 `json:"created_at"`
	UpdatedAt string                 `json:"updated_at"`
}

// ListWebsitesQuery represents query parameters for listing websites
type ListWebsitesQuery struct {
	Page    int    `form:"page" binding:"omitempty,min=1"`
	Limit   int    `form:"limit" binding:"omitempty,min=1,max=100"`
	OwnerID string `form:"owner_id" binding:"omitempty,uuid"`
	Type    string `form:"type" binding:"omitempty,oneof=hotel ecommerce vehicle wedding business"`
	Status  string `form:"status" binding:"omitempty,oneof=draft active inactive suspended"`
	Search  string `form:"search" binding:"omitempty,max=255"`
}

// SetDefaults sets default values for query parameters
func (q *ListWebsitesQuery) SetDefaults() {
	if q.Page == 0 {
		q.Page = 1
	}
	if q.Limit == 0 {
		q.Limit = 20
	}
}

// ListWebsitesResponse represents paginated list of websites
type ListWebsitesResponse struct {
	Websites   []WebsiteResponse `json:"websites"`
	TotalCount int               `json:"total_count"`
	Page       int               `json:"page"`
	Limit      int               `json:"limit"`
	TotalPages int               `json:"total_pages"`
}
