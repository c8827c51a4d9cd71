package domain

import "time"

// Product represents an e-commerce product under an ecommerce-type website
type Product struct {
	ID          string     `json:"id"`
	WebsiteID   string     `json:"website_id"`
	VendorID    string     `json:"vendor_id"`
	CategoryID  string     `json:"category_id,omitempty"`
	Name        string     `json:"name"`
	Slug        string     `json:"slug"`
	Description string     `json:"description,omitempty"`
	Price       float64    `json:"price"`
	SalePrice   *float64   `json:"sale_price,omitempty"`
	Stock       int        `json:"stock"`
	SKU         string     `json:"sku,omitempty"`
	Images      []string   `json:"images,omitempty"`
	IsActive    bool       `json:"is_active"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
	DeletedAt   *time.Time `json:"deleted_at,omitempty"` // Soft delete support
}

// EffectivePrice returns the sale price when set, the base price otherwise
func (p *Product) EffectivePrice() float64 {
	if p.SalePrice != nil {
		return *p.SalePrice
	}
	return p.Price
}

// Category groups products within a website
type Category struct {
	ID        string     `json:"id"`
	WebsiteID string     `json:"website_id"`
	Name      string     `json:"name"`
	Slug      string     `json:"slug"`
	ParentID  string     `json:"parent_id,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
	DeletedAt *time.Time `json:"deleted_at,omitempty"`
}
