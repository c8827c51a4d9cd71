package dto

import "github.com/rnqayush/storefront-platform/internal/domain"

// OrderItemRequest is a product line on order creation
type OrderItemRequest struct {
	ProductID string `json:"product_id" binding:"required,uuid"`
	Quantity  int    `json:"quantity" binding:"required,min=1"`
}

// CreateOrderRequest represents request to create an order
type CreateOrderRequest struct {
	Items           []OrderItemRequest `json:"items" binding:"required,min=1,dive"`
	ShippingAddress string             `json:"shipping_address" binding:"omitempty,max=500"`
}

// UpdateOrderStatusRequest represents request to move an order through its states
type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=pending paid shipped delivered cancelled"`
}

// OrderResponse represents order data in response
type OrderResponse struct {
	ID              string             `json:"id"`
	WebsiteID       string             `json:"website_id"`
	VendorID        string             `json:"vendor_id"`
	CustomerID      string             `json:"customer_id"`
	Items           []domain.OrderItem `json:"items"`
	Total           float64            `json:"total"`
	Currency        string             `json:"currency"`
	Status          string             `json:"status"`
	ShippingAddress string             `json:"shipping_address,omitempty"`
	CreatedAt       string             `json:"created_at"`
	UpdatedAt       string             `json:"updated_at"`
}

// ListOrdersQuery represents query parameters for listing orders
type ListOrdersQuery struct {
	Page   int    `form:"page" binding:"omitempty,min=1"`
	Limit  int    `form:"limit" binding:"omitempty,min=1,max=100"`
	Status string `form:"status" binding:"omitempty,oneof=pending paid shipped delivered cancelled"`
}

// SetDefaults sets default values for query parameters
func (q *ListOrdersQuery) SetDefaults() {
	if q.Page == 0 {
		q.Page = 1
	}
	if q.Limit == 0 {
		q.Limit = 20
	}
}

// ListOrdersResponse represents paginated list of orders
type ListOrdersResponse struct {
	Orders     []OrderResponse `json:"orders"`
	TotalCount int             `json:"total_count"`
	Page       int             `json:"page"`
	Limit      int             `json:"limit"`
	TotalPages int             `json:"total_pages"`
}
