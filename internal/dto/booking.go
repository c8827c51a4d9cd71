package dto

import "github.com/rnqayush/storefront-platform/internal/domain"

// HotelBookingDetailsRequest is the hotel payload on booking creation
type HotelBookingDetailsRequest struct {
	RoomID       string `json:"room_id" binding:"required,uuid"`
	CheckInDate  string `json:"check_in_date" binding:"required"`
	CheckOutDate string `json:"check_out_date" binding:"required"`
	Guests       int    `json:"guests" binding:"required,min=1"`
}

// WeddingBookingDetailsRequest is the wedding payload on booking creation
type WeddingBookingDetailsRequest struct {
	EventDate   string `json:"event_date" binding:"required"`
	Location    string `json:"location" binding:"required,max=500"`
	GuestCount  int    `json:"guest_count" binding:"omitempty,min=1"`
	ServiceType string `json:"service_type" binding:"omitempty,max=100"`
}

// BusinessBookingDetailsRequest is the appointment payload on booking creation
type BusinessBookingDetailsRequest struct {
	ServiceID       string `json:"service_id" binding:"omitempty,uuid"`
	AppointmentDate string `json:"appointment_date" binding:"required"`
	AppointmentTime string `json:"appointment_time" binding:"required"`
	Notes           string `json:"notes" binding:"omitempty,max=1000"`
}

// PricingRequest is the price breakdown on booking creation. The total is
// recomputed server-side from the components.
type PricingRequest struct {
	BasePrice     float64 `json:"base_price" binding:"required,min=0"`
	Taxes         float64 `json:"taxes" binding:"omitempty,min=0"`
	ServiceCharge float64 `json:"service_charge" binding:"omitempty,min=0"`
	Discount      float64 `json:"discount" binding:"omitempty,min=0"`
	Currency      string  `json:"currency" binding:"omitempty,len=3"`
}

// CreateBookingRequest represents request to create a booking
type CreateBookingRequest struct {
	VendorID string                         `json:"vendor_id" binding:"required,uuid"`
	Category string                         `json:"category" binding:"required,oneof=hotel wedding business"`
	Hotel    *HotelBookingDetailsRequest    `json:"hotel" binding:"omitempty"`
	Wedding  *WeddingBookingDetailsRequest  `json:"wedding" binding:"omitempty"`
	Business *BusinessBookingDetailsRequest `json:"business" binding:"omitempty"`
	Pricing  PricingRequest                 `json:"pricing" binding:"required"`
}

// Validate checks that the details payload matches the category
func (r *CreateBookingRequest) Validate() (bool, string) {
	switch domain.BookingCategory(r.Category) {
	case domain.BookingCategoryHotel:
		if r.Hotel == nil {
			return false, "hotel details are required for hotel bookings"
		}
	case domain.BookingCategoryWedding:
		if r.Wedding == nil {
			return false, "wedding details are required for wedding bookings"
		}
	case domain.BookingCategoryBusiness:
		if r.Business == nil {
			return false, "business details are required for business bookings"
		}
	}
	return true, ""
}

// CheckInRequest represents request to check in a booking
type CheckInRequest struct {
	ActualGuests int `json:"actual_guests" binding:"required,min=1"`
}

// CancelBookingRequest represents request to cancel a booking
type CancelBookingRequest struct {
	Reason string `json:"reason" binding:"required,min=3,max=500"`
}

// MarkPaidRequest represents request to record payment against a booking
type MarkPaidRequest struct {
	Method        string  `json:"method" binding:"required,max=50"`
	TransactionID string  `json:"transaction_id" binding:"omitempty,max=255"`
	Amount        float64 `json:"amount" binding:"required,min=0"`
}

// BookingResponse represents booking data in response
type BookingResponse struct {
	ID         string `json:"id"`
	WebsiteID  string `json:"website_id"`
	VendorID   string `json:"vendor_id"`
	CustomerID string `json:"customer_id"`
	Category   string `json:"category"`

	Hotel    *domain.HotelBookingDetails    `json:"hotel,omitempty"`
	Wedding  *domain.WeddingBookingDetails  `json:"wedding,omitempty"`
	Business *domain.BusinessBookingDetails `json:"business,omitempty"`

	Pricing domain.Pricing       `json:"pricing"`
	Payment domain.PaymentRecord `json:"payment"`

	Status string `json:"status"`

	ConfirmedBy  string `json:"confirmed_by,omitempty"`
	ConfirmedAt  string `json:"confirmed_at,omitempty"`
	ActualGuests *int   `json:"actual_guests,omitempty"`
	CheckedInAt  string `json:"checked_in_at,omitempty"`
	CheckedOutAt string `json:"checked_out_at,omitempty"`
	CompletedAt  string `json:"completed_at,omitempty"`

	CancelReason string `json:"cancel_reason,omitempty"`
	CancelledBy  string `json:"cancelled_by,omitempty"`
	CancelledAt  string `json:"cancelled_at,omitempty"`

	ReviewID string `json:"review_id,omitempty"`

	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

// ListBookingsQuery represents query parameters for listing bookings
type ListBookingsQuery struct {
	Page     int    `form:"page" binding:"omitempty,min=1"`
	Limit    int    `form:"limit" binding:"omitempty,min=1,max=100"`
	Category string `form:"category" binding:"omitempty,oneof=hotel wedding business"`
	Status   string `form:"status" binding:"omitempty,oneof=pending confirmed checked-in checked-out completed cancelled"`
}

// SetDefaults sets default values for query parameters
func (q *ListBookingsQuery) SetDefaults() {
	if q.Page == 0 {
		q.Page = 1
	}
	if q.Limit == 0 {
		q.Limit = 20
	}
}

// ListBookingsResponse represents paginated list of bookings
type ListBookingsResponse struct {
	Bookings   []BookingResponse `json:"bookings"`
	TotalCount int               `json:"total_count"`
	Page       int               `json:"page"`
	Limit      int               `json:"limit"`
	TotalPages int               `json:"total_pages"`
}
