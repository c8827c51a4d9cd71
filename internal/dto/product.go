package dto

// CreateProductRequest represents request to create a product
type CreateProductRequest struct {
	CategoryID  string   `json:"category_id" binding:"omitempty,uuid"`
	Name        string   `json:"name" binding:"required,min=2,max=255"`
	Slug        string   `json:"slug" binding:"required,min=2,max=100"`
	Description string   `json:"description" binding:"omitempty,max=5000"`
	Price       float64  `json:"price" binding:"required,min=0"`
	SalePrice   *float64 `json:"sale_price" binding:"omitempty,min=0"`
	Stock       int      `json:"stock" binding:"omitempty,min=0"`
	SKU         string   `json:"sku" binding:"omitempty,max=100"`
	Images      []string `json:"images" binding:"omitempty,dive,url"`
}

// UpdateProductRequest represents request to update a product
type UpdateProductRequest struct {
	CategoryID  *string   `json:"category_id" binding:"omitempty,uuid"`
	Name        *string   `json:"name" binding:"omitempty,min=2,max=255"`
	Description *string   `json:"description" binding:"omitempty,max=5000"`
	Price       *float64  `json:"price" binding:"omitempty,min=0"`
	SalePrice   *float64  `json:"sale_price" binding:"omitempty,min=0"`
	Stock       *int      `json:"stock" binding:"omitempty,min=0"`
	SKU         *string   `json:"sku" binding:"omitempty,max=100"`
	Images      *[]string `json:"images" binding:"omitempty,dive,url"`
	IsActive    *bool     `json:"is_active" binding:"omitempty"`
}

// Validate validates that at least one field is provided for update
func (r *UpdateProductRequest) Validate() (bool, string) {
	if r.CategoryID == nil && r.Name == nil && r.Description == nil && r.Price == nil &&
		r.SalePrice == nil && r.Stock == nil && r.SKU == nil && r.Images == nil && r.IsActive == nil {
		return false, "At least one field must be provided for update"
	}
	return true, ""
}

// ProductResponse represents product data in response
type ProductResponse struct {
	ID             string   `json:"id"`
	WebsiteID      string   `json:"website_id"`
	VendorID       string   `json:"vendor_id"`
	CategoryID     string   `json:"category_id,omitempty"`
	Name           string   `json:"name"`
	Slug           string   `json:"slug"`
	Description    string   `json:"description,omitempty"`
	Price          float64  `json:"price"`
	SalePrice      *float64 `json:"sale_price,omitempty"`
	EffectivePrice float64  `json:"effective_price"`
	Stock          int      `json:"stock"`
	SKU            string   `json:"sku,omitempty"`
	Images         []string `json:"images,omitempty"`
	IsActive       bool     `json:"is_active"`
	CreatedAt      string   `json:"created_at"`
	UpdatedAt      string   `json:"updated_at"`
}

// ListProductsQuery represents query parameters for listing products
type ListProductsQuery struct {
	Page       int    `form:"page" binding:"omitempty,min=1"`
	Limit      int    `form:"limit" binding:"omitempty,min=1,max=100"`
	CategoryID string `form:"category_id" binding:"omitempty,uuid"`
	IsActive   *bool  `form:"is_active" binding:"omitempty"`
	Search     string `form:"search" binding:"omitempty,max=255"`
}

// SetDefaults sets default values for query parameters
func (q *ListProductsQuery) SetDefaults() {
	if q.Page == 0 {
		q.Page = 1
	}
	if q.Limit == 0 {
		q.Limit = 20
	}
}

// ListProductsResponse represents paginated list of products
type ListProductsResponse struct {
	Products   []ProductResponse `json:"products"`
	TotalCount int               `json:"total_count"`
	Page       int               `json:"page"`
	Limit      int               `json:"limit"`
	TotalPages int               `json:"total_pages"`
}

// CreateCategoryRequest represents request to create a category
type CreateCategoryRequest struct {
	Name     string `json:"name" binding:"required,min=2,max=255"`
	Slug     string `json:"slug" binding:"required,min=2,max=100"`
	ParentID string `json:"parent_id" binding:"omitempty,uuid"`
}

// UpdateCategoryRequest represents request to update a category
type UpdateCategoryRequest struct {
	Name     *string `json:"name" binding:"omitempty,min=2,max=255"`
	ParentID *string `json:"parent_id" binding:"omitempty,uuid"`
}

// CategoryResponse represents category data in response
type CategoryResponse struct {
	ID        string `json:"id"`
	WebsiteID string `json:"website_id"`
	Name      string `json:"name"`
	Slug      string `json:"slug"`
	ParentID  string `json:"parent_id,omitempty"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}
