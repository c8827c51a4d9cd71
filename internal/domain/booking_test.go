package domain

import (
	"errors"
	"testing"
)

func newTestBooking(t *testing.T) *Booking {
	t.Helper()
	booking, err := NewBooking("website-123", "vendor-123", "customer-123", BookingCategoryHotel, Pricing{BasePrice: 100})
	if err != nil {
		t.Fatalf("NewBooking() error = %v", err)
	}
	return booking
}

// advance walks a fresh booking forward to the given status
func advance(t *testing.T, b *Booking, target BookingStatus) {
	t.Helper()
	steps := []struct {
		status BookingStatus
		fn     func() error
	}{
		{BookingStatusConfirmed, func() error { return b.Confirm("vendor-user-1") }},
		{BookingStatusCheckedIn, func() error { return b.CheckIn(2) }},
		{BookingStatusCheckedOut, b.CheckOut},
		{BookingStatusCompleted, b.Complete},
	}
	for _, step := range steps {
		if b.Status == target {
			return
		}
		if err := step.fn(); err != nil {
			t.Fatalf("advance to %s: %v", step.status, err)
		}
	}
}

func TestNewBooking(t *testing.T) {
	tests := []struct {
		name       string
		websiteID  string
		vendorID   string
		customerID string
		category   BookingCategory
		wantErr    bool
	}{
		{
			name:       "valid booking",
			websiteID:  "website-123",
			vendorID:   "vendor-123",
			customerID: "customer-123",
			category:   BookingCategoryHotel,
			wantErr:    false,
		},
		{
			name:       "missing website_id",
			websiteID:  "",
			vendorID:   "vendor-123",
			customerID: "customer-123",
			category:   BookingCategoryHotel,
			wantErr:    true,
		},
		{
			name:       "missing vendor_id",
			websiteID:  "website-123",
			vendorID:   "",
			customerID: "customer-123",
			category:   BookingCategoryWedding,
			wantErr:    true,
		},
		{
			name:       "missing customer_id",
			websiteID:  "website-123",
			vendorID:   "vendor-123",
			customerID: "",
			category:   BookingCategoryBusiness,
			wantErr:    true,
		},
		{
			name:       "unknown category",
			websiteID:  "website-123",
			vendorID:   "vendor-123",
			customerID: "customer-123",
			category:   BookingCategory("flights"),
			wantErr:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			booking, err := NewBooking(tt.websiteID, tt.vendorID, tt.customerID, tt.category, Pricing{BasePrice: 100})
			if (err != nil) != tt.wantErr {
				t.Errorf("NewBooking() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if err != nil {
				return
			}
			if booking.Status != BookingStatusPending {
				t.Errorf("new booking status = %s, want %s", booking.Status, BookingStatusPending)
			}
			if booking.Payment.Status != PaymentStatusUnpaid {
				t.Errorf("new booking payment status = %s, want %s", booking.Payment.Status, PaymentStatusUnpaid)
			}
			if booking.ID == "" {
				t.Error("new booking has empty ID")
			}
		})
	}
}

func TestNewBookingDefaultsCurrency(t *testing.T) {
	booking := newTestBooking(t)
	if booking.Pricing.Currency != "USD" {
		t.Errorf("currency = %q, want USD", booking.Pricing.Currency)
	}
}

func TestPricingComputeTotal(t *testing.T) {
	p := Pricing{BasePrice: 200, Taxes: 14, ServiceCharge: 20, Discount: 34}
	p.ComputeTotal()
	if p.Total != 200 {
		t.Errorf("total = %v, want 200", p.Total)
	}
}

func TestBookingFullLifecycle(t *testing.T) {
	booking := newTestBooking(t)

	if err := booking.Confirm("vendor-user-1"); err != nil {
		t.Fatalf("Confirm() error = %v", err)
	}
	if booking.ConfirmedAt == nil || booking.ConfirmedBy != "vendor-user-1" {
		t.Error("Confirm() did not record confirming user and timestamp")
	}

	if err := booking.CheckIn(3); err != nil {
		t.Fatalf("CheckIn() error = %v", err)
	}
	if booking.ActualGuests == nil || *booking.ActualGuests != 3 {
		t.Error("CheckIn() did not record actual guests")
	}
	if booking.CheckedInAt == nil {
		t.Error("CheckIn() did not record timestamp")
	}

	if err := booking.CheckOut(); err != nil {
		t.Fatalf("CheckOut() error = %v", err)
	}
	if booking.CheckedOutAt == nil {
		t.Error("CheckOut() did not record timestamp")
	}

	if err := booking.Complete(); err != nil {
		t.Fatalf("Complete() error = %v", err)
	}
	if booking.CompletedAt == nil {
		t.Error("Complete() did not record timestamp")
	}
	if booking.Status != BookingStatusCompleted {
		t.Errorf("final status = %s, want %s", booking.Status, BookingStatusCompleted)
	}
}

func TestBookingInvalidTransitions(t *testing.T) {
	tests := []struct {
		name    string
		from    BookingStatus
		attempt func(b *Booking) error
		wantErr *Error
	}{
		{"confirm confirmed", BookingStatusConfirmed, func(b *Booking) error { return b.Confirm("u") }, ErrOnlyPendingConfirmable},
		{"confirm completed", BookingStatusCompleted, func(b *Booking) error { return b.Confirm("u") }, ErrOnlyPendingConfirmable},
		{"check in pending", BookingStatusPending, func(b *Booking) error { return b.CheckIn(1) }, ErrOnlyConfirmedCheckIn},
		{"check in checked-in", BookingStatusCheckedIn, func(b *Booking) error { return b.CheckIn(1) }, ErrOnlyConfirmedCheckIn},
		{"check out pending", BookingStatusPending, func(b *Booking) error { return b.CheckOut() }, ErrNotCheckedIn},
		{"check out confirmed", BookingStatusConfirmed, func(b *Booking) error { return b.CheckOut() }, ErrNotCheckedIn},
		{"complete checked-in", BookingStatusCheckedIn, func(b *Booking) error { return b.Complete() }, ErrOnlyCheckedOutComplete},
		{"complete pending", BookingStatusPending, func(b *Booking) error { return b.Complete() }, ErrOnlyCheckedOutComplete},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			booking := newTestBooking(t)
			advance(t, booking, tt.from)

			err := tt.attempt(booking)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("error = %v, want %v", err, tt.wantErr)
			}
			if booking.Status != tt.from {
				t.Errorf("status changed to %s on failed transition", booking.Status)
			}
		})
	}
}

func TestBookingCancel(t *testing.T) {
	cancellable := []BookingStatus{
		BookingStatusPending,
		BookingStatusConfirmed,
		BookingStatusCheckedIn,
		BookingStatusCheckedOut,
	}

	for _, from := range cancellable {
		t.Run("cancel from "+string(from), func(t *testing.T) {
			booking := newTestBooking(t)
			advance(t, booking, from)

			if err := booking.Cancel("change of plans", CancelActorCustomer); err != nil {
				t.Fatalf("Cancel() error = %v", err)
			}
			if booking.Status != BookingStatusCancelled {
				t.Errorf("status = %s, want %s", booking.Status, BookingStatusCancelled)
			}
			if booking.CancelReason != "change of plans" {
				t.Errorf("cancel reason = %q", booking.CancelReason)
			}
			if booking.CancelledBy != CancelActorCustomer {
				t.Errorf("cancelled by = %s", booking.CancelledBy)
			}
			if booking.CancelledAt == nil {
				t.Error("Cancel() did not record timestamp")
			}
		})
	}

	t.Run("cancel completed", func(t *testing.T) {
		booking := newTestBooking(t)
		advance(t, booking, BookingStatusCompleted)

		if err := booking.Cancel("too late", CancelActorVendor); !errors.Is(err, ErrCannotCancelCompleted) {
			t.Errorf("error = %v, want %v", err, ErrCannotCancelCompleted)
		}
	})

	t.Run("cancel cancelled", func(t *testing.T) {
		booking := newTestBooking(t)
		if err := booking.Cancel("first", CancelActorCustomer); err != nil {
			t.Fatalf("Cancel() error = %v", err)
		}
		if err := booking.Cancel("again", CancelActorCustomer); !errors.Is(err, ErrAlreadyCancelled) {
			t.Errorf("error = %v, want %v", err, ErrAlreadyCancelled)
		}
	})
}

func TestBookingAttachReview(t *testing.T) {
	t.Run("requires completed", func(t *testing.T) {
		booking := newTestBooking(t)
		advance(t, booking, BookingStatusCheckedOut)

		if err := booking.AttachReview("review-1"); !errors.Is(err, ErrReviewRequiresCompleted) {
			t.Errorf("error = %v, want %v", err, ErrReviewRequiresCompleted)
		}
	})

	t.Run("attaches once", func(t *testing.T) {
		booking := newTestBooking(t)
		advance(t, booking, BookingStatusCompleted)

		if err := booking.AttachReview("review-1"); err != nil {
			t.Fatalf("AttachReview() error = %v", err)
		}
		if booking.ReviewID != "review-1" {
			t.Errorf("review ID = %q", booking.ReviewID)
		}
		if err := booking.AttachReview("review-2"); !errors.Is(err, ErrAlreadyReviewed) {
			t.Errorf("error = %v, want %v", err, ErrAlreadyReviewed)
		}
		if booking.ReviewID != "review-1" {
			t.Errorf("review ID overwritten to %q", booking.ReviewID)
		}
	})
}

func TestBookingMarkPaid(t *testing.T) {
	booking := newTestBooking(t)
	booking.MarkPaid("card", "txn-42", 100)

	if booking.Payment.Status != PaymentStatusPaid {
		t.Errorf("payment status = %s, want %s", booking.Payment.Status, PaymentStatusPaid)
	}
	if booking.Payment.Method != "card" || booking.Payment.TransactionID != "txn-42" {
		t.Error("MarkPaid() did not record method and transaction")
	}
	if booking.Payment.AmountPaid != 100 {
		t.Errorf("amount paid = %v, want 100", booking.Payment.AmountPaid)
	}
	if booking.Payment.PaidAt == nil {
		t.Error("MarkPaid() did not record timestamp")
	}
}

func TestBookingStatusCanTransitionTo(t *testing.T) {
	tests := []struct {
		from BookingStatus
		to   BookingStatus
		want bool
	}{
		{BookingStatusPending, BookingStatusConfirmed, true},
		{BookingStatusPending, BookingStatusCheckedIn, false},
		{BookingStatusConfirmed, BookingStatusCheckedIn, true},
		{BookingStatusConfirmed, BookingStatusCompleted, false},
		{BookingStatusCheckedIn, BookingStatusCheckedOut, true},
		{BookingStatusCheckedOut, BookingStatusCompleted, true},
		{BookingStatusCheckedOut, BookingStatusCheckedIn, false},
		{BookingStatusCompleted, BookingStatusCancelled, false},
		{BookingStatusCancelled, BookingStatusPending, false},
		{BookingStatusPending, BookingStatusCancelled, true},
		{BookingStatusCheckedIn, BookingStatusCancelled, true},
	}

	for _, tt := range tests {
		if got := tt.from.CanTransitionTo(tt.to); got != tt.want {
			t.Errorf("%s -> %s = %v, want %v", tt.from, tt.to, got, tt.want)
		}
	}
}

func TestBookingStatusIsTerminal(t *testing.T) {
	if !BookingStatusCompleted.IsTerminal() || !BookingStatusCancelled.IsTerminal() {
		t.Error("completed and cancelled should be terminal")
	}
	for _, s := range []BookingStatus{BookingStatusPending, BookingStatusConfirmed, BookingStatusCheckedIn, BookingStatusCheckedOut} {
		if s.IsTerminal() {
			t.Errorf("%s should not be terminal", s)
		}
	}
}
