package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// BookingStatus represents the lifecycle state of a booking
type BookingStatus string

const (
	BookingStatusPending    BookingStatus = "pending"
	BookingStatusConfirmed  BookingStatus = "confirmed"
	BookingStatusCheckedIn  BookingStatus = "checked-in"
	BookingStatusCheckedOut BookingStatus = "checked-out"
	BookingStatusCompleted  BookingStatus = "completed"
	BookingStatusCancelled  BookingStatus = "cancelled"
)

// validTransitions defines allowed status transitions.
// Key is current status, value is list of allowed next statuses.
var validTransitions = map[BookingStatus][]BookingStatus{
	BookingStatusPending:    {BookingStatusConfirmed, BookingStatusCancelled},
	BookingStatusConfirmed:  {BookingStatusCheckedIn, BookingStatusCancelled},
	BookingStatusCheckedIn:  {BookingStatusCheckedOut, BookingStatusCancelled},
	BookingStatusCheckedOut: {BookingStatusCompleted, BookingStatusCancelled},
	BookingStatusCompleted:  {}, // Terminal state
	BookingStatusCancelled:  {}, // Terminal state
}

// IsTerminal returns true if the status is a terminal state
func (s BookingStatus) IsTerminal() bool {
	return s == BookingStatusCompleted || s == BookingStatusCancelled
}

// IsValid returns true if the status is a known booking status
func (s BookingStatus) IsValid() bool {
	_, exists := validTransitions[s]
	return exists
}

// CanTransitionTo returns true if transition to the target status is allowed
func (s BookingStatus) CanTransitionTo(target BookingStatus) bool {
	allowed, exists := validTransitions[s]
	if !exists {
		return false
	}
	for _, a := range allowed {
		if a == target {
			return true
		}
	}
	return false
}

// BookingCategory is the closed set of booking verticals
type BookingCategory string

const (
	BookingCategoryHotel    BookingCategory = "hotel"
	BookingCategoryWedding  BookingCategory = "wedding"
	BookingCategoryBusiness BookingCategory = "business"
)

// IsValid returns true if the category is known
func (c BookingCategory) IsValid() bool {
	switch c {
	case BookingCategoryHotel, BookingCategoryWedding, BookingCategoryBusiness:
		return true
	}
	return false
}

// CancelActor identifies who cancelled a booking
type CancelActor string

const (
	CancelActorCustomer CancelActor = "customer"
	CancelActorVendor   CancelActor = "vendor"
	CancelActorAdmin    CancelActor = "admin"
)

// HotelBookingDetails is the hotel-specific payload
type HotelBookingDetails struct {
	RoomID       string    `json:"room_id"`
	RoomName     string    `json:"room_name,omitempty"`
	CheckInDate  time.Time `json:"check_in_date"`
	CheckOutDate time.Time `json:"check_out_date"`
	Guests       int       `json:"guests"`
}

// WeddingBookingDetails is the wedding-specific payload
type WeddingBookingDetails struct {
	EventDate   time.Time `json:"event_date"`
	Location    string    `json:"location"`
	GuestCount  int       `json:"guest_count,omitempty"`
	ServiceType string    `json:"service_type,omitempty"`
}

// BusinessBookingDetails is the business-appointment payload
type BusinessBookingDetails struct {
	ServiceID       string    `json:"service_id,omitempty"`
	AppointmentDate time.Time `json:"appointment_date"`
	AppointmentTime string    `json:"appointment_time"`
	Notes           string    `json:"notes,omitempty"`
}

// Pricing is the booking price breakdown
type Pricing struct {
	BasePrice     float64 `json:"base_price"`
	Taxes         float64 `json:"taxes"`
	ServiceCharge float64 `json:"service_charge"`
	Discount      float64 `json:"discount"`
	Total         float64 `json:"total"`
	Currency      string  `json:"currency"`
}

// ComputeTotal derives the total from the breakdown
func (p *Pricing) ComputeTotal() {
	p.Total = p.BasePrice + p.Taxes + p.ServiceCharge - p.Discount
}

// PaymentStatus is the closed set of payment states on a booking
type PaymentStatus string

const (
	PaymentStatusUnpaid   PaymentStatus = "unpaid"
	PaymentStatusPaid     PaymentStatus = "paid"
	PaymentStatusRefunded PaymentStatus = "refunded"
)

// PaymentRecord is the payment sub-record on a booking. It tracks what was
// paid, not how; there is no gateway integration here.
type PaymentRecord struct {
	Status        PaymentStatus `json:"status"`
	Method        string        `json:"method,omitempty"`
	TransactionID string        `json:"transaction_id,omitempty"`
	AmountPaid    float64       `json:"amount_paid"`
	PaidAt        *time.Time    `json:"paid_at,omitempty"`
}

// Booking represents a reservation linking a customer, a vendor, and
// category-specific scheduling data. Status transitions are one-directional
// except cancellation, which is reachable from any non-terminal state.
type Booking struct {
	ID         string          `json:"id"`
	WebsiteID  string          `json:"website_id"`
	VendorID   string          `json:"vendor_id"`
	CustomerID string          `json:"customer_id"`
	Category   BookingCategory `json:"category"`

	Hotel    *HotelBookingDetails    `json:"hotel,omitempty"`
	Wedding  *WeddingBookingDetails  `json:"wedding,omitempty"`
	Business *BusinessBookingDetails `json:"business,omitempty"`

	Pricing Pricing       `json:"pricing"`
	Payment PaymentRecord `json:"payment"`

	Status BookingStatus `json:"status"`

	ConfirmedBy  string     `json:"confirmed_by,omitempty"`
	ConfirmedAt  *time.Time `json:"confirmed_at,omitempty"`
	ActualGuests *int       `json:"actual_guests,omitempty"`
	CheckedInAt  *time.Time `json:"checked_in_at,omitempty"`
	CheckedOutAt *time.Time `json:"checked_out_at,omitempty"`
	CompletedAt  *time.Time `json:"completed_at,omitempty"`

	CancelReason string      `json:"cancel_reason,omitempty"`
	CancelledBy  CancelActor `json:"cancelled_by,omitempty"`
	CancelledAt  *time.Time  `json:"cancelled_at,omitempty"`

	ReviewID string `json:"review_id,omitempty"`

	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
	DeletedAt *time.Time `json:"deleted_at,omitempty"` // Soft delete support
}

// NewBooking creates a booking in the pending state
func NewBooking(websiteID, vendorID, customerID string, category BookingCategory, pricing Pricing) (*Booking, error) {
	if websiteID == "" {
		return nil, errors.New("website_id is required")
	}
	if vendorID == "" {
		return nil, errors.New("vendor_id is required")
	}
	if customerID == "" {
		return nil, errors.New("customer_id is required")
	}
	if !category.IsValid() {
		return nil, errors.New("invalid booking category")
	}
	if pricing.Currency == "" {
		pricing.Currency = "USD"
	}
	pricing.ComputeTotal()

	now := time.Now()
	return &Booking{
		ID:         uuid.New().String(),
		WebsiteID:  websiteID,
		VendorID:   vendorID,
		CustomerID: customerID,
		Category:   category,
		Pricing:    pricing,
		Payment:    PaymentRecord{Status: PaymentStatusUnpaid},
		Status:     BookingStatusPending,
		CreatedAt:  now,
		UpdatedAt:  now,
	}, nil
}

// Confirm transitions pending -> confirmed and records the confirming user
func (b *Booking) Confirm(userID string) error {
	if b.Status != BookingStatusPending {
		return ErrOnlyPendingConfirmable
	}
	now := time.Now()
	b.Status = BookingStatusConfirmed
	b.ConfirmedBy = userID
	b.ConfirmedAt = &now
	b.UpdatedAt = now
	return nil
}

// CheckIn transitions confirmed -> checked-in and records the actual guest count
func (b *Booking) CheckIn(actualGuests int) error {
	if b.Status != BookingStatusConfirmed {
		return ErrOnlyConfirmedCheckIn
	}
	now := time.Now()
	b.Status = BookingStatusCheckedIn
	b.ActualGuests = &actualGuests
	b.CheckedInAt = &now
	b.UpdatedAt = now
	return nil
}

// CheckOut transitions checked-in -> checked-out. The booking must carry a
// recorded check-in timestamp.
func (b *Booking) CheckOut() error {
	if b.Status != BookingStatusCheckedIn || b.CheckedInAt == nil {
		return ErrNotCheckedIn
	}
	now := time.Now()
	b.Status = BookingStatusCheckedOut
	b.CheckedOutAt = &now
	b.UpdatedAt = now
	return nil
}

// Complete transitions checked-out -> completed
func (b *Booking) Complete() error {
	if b.Status != BookingStatusCheckedOut {
		return ErrOnlyCheckedOutComplete
	}
	now := time.Now()
	b.Status = BookingStatusCompleted
	b.CompletedAt = &now
	b.UpdatedAt = now
	return nil
}

// Cancel transitions any non-terminal status -> cancelled, recording the
// reason and the acting party
func (b *Booking) Cancel(reason string, actor CancelActor) error {
	switch b.Status {
	case BookingStatusCancelled:
		return ErrAlreadyCancelled
	case BookingStatusCompleted:
		return ErrCannotCancelCompleted
	}
	now := time.Now()
	b.Status = BookingStatusCancelled
	b.CancelReason = reason
	b.CancelledBy = actor
	b.CancelledAt = &now
	b.UpdatedAt = now
	return nil
}

// AttachReview links a review to a completed booking. A review can be
// attached once, and only to a completed booking.
func (b *Booking) AttachReview(reviewID string) error {
	if b.ReviewID != "" {
		return ErrAlreadyReviewed
	}
	if b.Status != BookingStatusCompleted {
		return ErrReviewRequiresCompleted
	}
	b.ReviewID = reviewID
	b.UpdatedAt = time.Now()
	return nil
}

// MarkPaid records payment against the booking
func (b *Booking) MarkPaid(method, transactionID string, amount float64) {
	now := time.Now()
	b.Payment.Status = PaymentStatusPaid
	b.Payment.Method = method
	b.Payment.TransactionID = transactionID
	b.Payment.AmountPaid = amount
	b.Payment.PaidAt = &now
	b.UpdatedAt = now
}
