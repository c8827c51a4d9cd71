package domain

import "time"

// VehicleStatus is the closed set of listing states
type VehicleStatus string

const (
	VehicleStatusAvailable VehicleStatus = "available"
	VehicleStatusSold      VehicleStatus = "sold"
	VehicleStatusReserved  VehicleStatus = "reserved"
)

// IsValid returns true if the status is a known state
func (s VehicleStatus) IsValid() bool {
	switch s {
	case VehicleStatusAvailable, VehicleStatusSold, VehicleStatusReserved:
		return true
	}
	return false
}

// Vehicle represents a vehicle listing under a vehicle-marketplace website
type Vehicle struct {
	ID           string        `json:"id"`
	WebsiteID    string        `json:"website_id"`
	VendorID     string        `json:"vendor_id"`
	Make         string        `json:"make"`
	Model        string        `json:"model"`
	Year         int           `json:"year"`
	Price        float64       `json:"price"`
	Mileage      int           `json:"mileage,omitempty"`
	FuelType     string        `json:"fuel_type,omitempty"`
	Transmission string        `json:"transmission,omitempty"`
	Color        string        `json:"color,omitempty"`
	Images       []string      `json:"images,omitempty"`
	Status       VehicleStatus `json:"status"`
	CreatedAt    time.Time     `json:"created_at"`
	UpdatedAt    time.Time     `json:"updated_at"`
	DeletedAt    *time.Time    `json:"deleted_at,omitempty"` // Soft delete support
}
