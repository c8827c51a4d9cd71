package dto

// CreateVehicleRequest represents request to create a vehicle listing
type CreateVehicleRequest struct {
	Make         string   `json:"make" binding:"required,min=1,max=100"`
	Model        string   `json:"model" binding:"required,min=1,max=100"`
	Year         int      `json:"year" binding:"required,min=1900,max=2100"`
	Price        float64  `json:"price" binding:"required,min=0"`
	Mileage      int      `json:"mileage" binding:"omitempty,min=0"`
	FuelType     string   `json:"fuel_type" binding:"omitempty,max=50"`
	Transmission string   `json:"transmission" binding:"omitempty,max=50"`
	Color        string   `json:"color" binding:"omitempty,max=50"`
	Images       []string `json:"images" binding:"omitempty,dive,url"`
}

// UpdateVehicleRequest represents request to update a vehicle listing
type UpdateVehicleRequest struct {
	Make         *string   `json:"make" binding:"omitempty,min=1,max=100"`
	Model        *string   `json:"model" binding:"omitempty,min=1,max=100"`
	Year         *int      `json:"year" binding:"omitempty,min=1900,max=2100"`
	Price        *float64  `json:"price" binding:"omitempty,min=0"`
	Mileage      *int      `json:"mileage" binding:"omitempty,min=0"`
	FuelType     *string   `json:"fuel_type" binding:"omitempty,max=50"`
	Transmission *string   `json:"transmission" binding:"omitempty,max=50"`
	Color        *string   `json:"color" binding:"omitempty,max=50"`
	Images       *[]string `json:"images" binding:"omitempty,dive,url"`
	Status       *string   `json:"status" binding:"omitempty,oneof=available sold reserved"`
}

// Validate validates that at least one field is provided for update
func (r *UpdateVehicleRequest) Validate() (bool, string) {
	if r.Make == nil && r.Model == nil && r.Year == nil && r.Price == nil &&
		r.Mileage == nil && r.FuelType == nil && r.Transmission == nil &&
		r.Color == nil && r.Images == nil && r.Status == nil {
		return false, "At least one field must be provided for update"
	}
	return true, ""
}

// VehicleResponse represents vehicle data in response
type VehicleResponse struct {
	ID           string   `json:"id"`
	WebsiteID    string   `json:"website_id"`
	VendorID     string   `json:"vendor_id"`
	Make         string   `json:"make"`
	Model        string   `json:"model"`
	Year         int      `json:"year"`
	Price        float64  `json:"price"`
	Mileage      int      `json:"mileage,omitempty"`
	FuelType     string   `json:"fuel_type,omitempty"`
	Transmission string   `json:"transmission,omitempty"`
	Color        string   `json:"color,omitempty"`
	Images       []string `json:"images,omitempty"`
	Status       string   `json:"status"`
	CreatedAt    string   `json:"created_at"`
	UpdatedAt    string   `json:"updated_at"`
}

// ListVehiclesQuery represents query parameters for listing vehicles
type ListVehiclesQuery struct {
	Page     int     `form:"page" binding:"omitempty,min=1"`
	Limit    int     `form:"limit" binding:"omitempty,min=1,max=100"`
	Make     string  `form:"make" binding:"omitempty,max=100"`
	Status   string  `form:"status" binding:"omitempty,oneof=available sold reserved"`
	MinYear  int     `form:"min_year" binding:"omitempty,min=1900"`
	MaxPrice float64 `form:"max_price" binding:"omitempty,min=0"`
}

// SetDefaults sets default values for query parameters
func (q *ListVehiclesQuery) SetDefaults() {
	if q.Page == 0 {
		q.Page = 1
	}
	if q.Limit == 0 {
		q.Limit = 20
	}
}

// ListVehiclesResponse represents paginated list of vehicles
type ListVehiclesResponse struct {
	Vehicles   []VehicleResponse `json:"vehicles"`
	TotalCount int               `json:"total_count"`
	Page       int               `json:"page"`
	Limit      int               `json:"limit"`
	TotalPages int               `json:"total_pages"`
}
