package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// OrderStatus is the closed set of order states
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusPaid      OrderStatus = "paid"
	OrderStatusShipped   OrderStatus = "shipped"
	OrderStatusDelivered OrderStatus = "delivered"
	OrderStatusCancelled OrderStatus = "cancelled"
)

// IsValid returns true if the status is a known state
func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderStatusPending, OrderStatusPaid, OrderStatusShipped, OrderStatusDelivered, OrderStatusCancelled:
		return true
	}
	return false
}

// OrderItem is a product line on an order
type OrderItem struct {
	ProductID string  `json:"product_id"`
	Name      string  `json:"name"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
	Subtotal  float64 `json:"subtotal"`
}

// Order represents an e-commerce purchase against a website
type Order struct {
	ID              string      `json:"id"`
	WebsiteID       string      `json:"website_id"`
	VendorID        string      `json:"vendor_id"`
	CustomerID      string      `json:"customer_id"`
	Items           []OrderItem `json:"items"`
	Total           float64     `json:"total"`
	Currency        string      `json:"currency"`
	Status          OrderStatus `json:"status"`
	ShippingAddress string      `json:"shipping_address,omitempty"`
	CreatedAt       time.Time   `json:"created_at"`
	UpdatedAt       time.Time   `json:"updated_at"`
	DeletedAt       *time.Time  `json:"deleted_at,omitempty"` // Soft delete support
}

// NewOrder creates a pending order from its line items
func NewOrder(websiteID, vendorID, customerID string, items []OrderItem) (*Order, error) {
	if websiteID == "" || vendorID == "" || customerID == "" {
		return nil, errors.New("website_id, vendor_id and customer_id are required")
	}
	if len(items) == 0 {
		return nil, errors.New("order must contain at least one item")
	}

	var total float64
	for i := range items {
		items[i].Subtotal = float64(items[i].Quantity) * items[i].UnitPrice
		total += items[i].Subtotal
	}

	now := time.Now()
	return &Order{
		ID:         uuid.New().String(),
		WebsiteID:  websiteID,
		VendorID:   vendorID,
		CustomerID: customerID,
		Items:      items,
		Total:      total,
		Currency:   "USD",
		Status:     OrderStatusPending,
		CreatedAt:  now,
		UpdatedAt:  now,
	}, nil
}
