package domain

// Error is a domain error carrying a machine-readable code alongside the
// human message. Handlers map the code to an HTTP status via pkg/response.
type Error struct {
	Code    string
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// NewError creates a domain error
func NewError(code, message string) *Error {
	return &Error{Code: code, Message: message}
}

// Booking lifecycle errors. Each transition failure names the specific
// violated rule so API consumers can tell the cases apart.
var (
	ErrOnlyPendingConfirmable  = NewError("INVALID_STATUS", "Only pending bookings can be confirmed")
	ErrOnlyConfirmedCheckIn    = NewError("INVALID_STATUS", "Only confirmed bookings can be checked in")
	ErrNotCheckedIn            = NewError("INVALID_STATUS", "Booking must be checked in before checkout")
	ErrOnlyCheckedOutComplete  = NewError("INVALID_STATUS", "Only checked-out bookings can be completed")
	ErrAlreadyCancelled        = NewError("ALREADY_CANCELLED", "Booking is already cancelled")
	ErrCannotCancelCompleted   = NewError("CANNOT_CANCEL_COMPLETED", "Cannot cancel a completed booking")
	ErrAlreadyReviewed         = NewError("ALREADY_REVIEWED", "Booking already has a review")
	ErrReviewRequiresCompleted = NewError("NOT_COMPLETED", "Only completed bookings can be reviewed")
)

// Not-found errors
var (
	ErrWebsiteNotFound = NewError("WEBSITE_NOT_FOUND", "Website not found")
	ErrVendorNotFound  = NewError("VENDOR_NOT_FOUND", "Vendor not found")
	ErrBookingNotFound = NewError("BOOKING_NOT_FOUND", "Booking not found")
	ErrUserNotFound    = NewError("NOT_FOUND", "User not found")
	ErrProductNotFound = NewError("NOT_FOUND", "Product not found")
	ErrHotelNotFound   = NewError("NOT_FOUND", "Hotel not found")
	ErrVehicleNotFound = NewError("NOT_FOUND", "Vehicle not found")
	ErrOrderNotFound   = NewError("NOT_FOUND", "Order not found")
	ErrReviewNotFound  = NewError("NOT_FOUND", "Review not found")
)

// Conflict / validation errors
var (
	ErrSlugTaken          = NewError("SLUG_TAKEN", "Website with this slug already exists")
	ErrReservedSlug       = NewError("RESERVED_SLUG", "This slug is reserved and cannot be used")
	ErrInvalidSlug        = NewError("INVALID_SLUG", "Slug must contain only lowercase letters, numbers, and hyphens")
	ErrEmailTaken         = NewError("EMAIL_TAKEN", "An account with this email already exists")
	ErrInvalidCredentials = NewError("INVALID_CREDENTIALS", "Invalid email or password")
	ErrNotOwner           = NewError("FORBIDDEN", "You do not own this resource")
)
