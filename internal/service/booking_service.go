package service

import (
	"context"
	"errors"
	"math"
	"time"

	"github.com/rnqayush/storefront-platform/internal/domain"
	"github.com/rnqayush/storefront-platform/internal/dto"
	"github.com/rnqayush/storefront-platform/internal/repository"
)

var (
	ErrNotBookingCustomer = errors.New("booking belongs to another customer")
	ErrNotBookingVendor   = errors.New("booking belongs to another vendor")
)

// Actor identifies the authenticated caller of a booking operation
type Actor struct {
	UserID string
	Role   domain.UserRole
}

// BookingService defines the interface for the booking lifecycle
type BookingService interface {
	// Create creates a pending booking under the resolved website
	Create(ctx context.Context, websiteID, customerID string, req *dto.CreateBookingRequest) (*dto.BookingResponse, error)
	// GetByID retrieves a booking, enforcing that the caller participates in it
	GetByID(ctx context.Context, id string, actor Actor) (*dto.BookingResponse, error)
	// List retrieves bookings scoped to the caller
	List(ctx context.Context, websiteID string, actor Actor, query *dto.ListBookingsQuery) (*dto.ListBookingsResponse, error)
	// Confirm transitions pending -> confirmed; vendor or admin only
	Confirm(ctx context.Context, id string, actor Actor) (*dto.BookingResponse, error)
	// CheckIn transitions confirmed -> checked-in; vendor or admin only
	CheckIn(ctx context.Context, id string, actor Actor, req *dto.CheckInRequest) (*dto.BookingResponse, error)
	// CheckOut transitions checked-in -> checked-out; vendor or admin only
	CheckOut(ctx context.Context, id string, actor Actor) (*dto.BookingResponse, error)
	// Complete transitions checked-out -> completed; vendor or admin only
	Complete(ctx context.Context, id string, actor Actor) (*dto.BookingResponse, error)
	// Cancel transitions any non-terminal state -> cancelled
	Cancel(ctx context.Context, id string, actor Actor, req *dto.CancelBookingRequest) (*dto.BookingResponse, error)
	// MarkPaid records payment against a booking; vendor or admin only
	MarkPaid(ctx context.Context, id string, actor Actor, req *dto.MarkPaidRequest) (*dto.BookingResponse, error)
}

// bookingService implements BookingService
type bookingService struct {
	bookingRepo repository.BookingRepository
	vendorRepo  repository.VendorRepository
	hotelRepo   repository.HotelRepository
}

// NewBookingService creates a new BookingService
func NewBookingService(bookingRepo repository.BookingRepository, vendorRepo repository.VendorRepository, hotelRepo repository.HotelRepository) BookingService {
	return &bookingService{
		bookingRepo: bookingRepo,
		vendorRepo:  vendorRepo,
		hotelRepo:   hotelRepo,
	}
}

// Create creates a pending booking under the resolved website
func (s *bookingService) Create(ctx context.Context, websiteID, customerID string, req *dto.CreateBookingRequest) (*dto.BookingResponse, error) {
	if valid, errMsg := req.Validate(); !valid {
		return nil, errors.New(errMsg)
	}

	vendor, err := s.vendorRepo.GetByID(ctx, req.VendorID)
	if err != nil {
		return nil, err
	}
	if vendor == nil || vendor.WebsiteID != websiteID {
		return nil, domain.ErrVendorNotFound
	}

	pricing := domain.Pricing{
		BasePrice:     req.Pricing.BasePrice,
		Taxes:         req.Pricing.Taxes,
		ServiceCharge: req.Pricing.ServiceCharge,
		Discount:      req.Pricing.Discount,
		Currency:      req.Pricing.Currency,
	}

	booking, err := domain.NewBooking(websiteID, req.VendorID, customerID, domain.BookingCategory(req.Category), pricing)
	if err != nil {
		return nil, err
	}

	hotelID := ""
	switch booking.Category {
	case domain.BookingCategoryHotel:
		details, hID, err := s.resolveHotelDetails(ctx, req.Hotel)
		if err != nil {
			return nil, err
		}
		booking.Hotel = details
		hotelID = hID
	case domain.BookingCategoryWedding:
		eventDate, err := time.Parse(time.RFC3339, req.Wedding.EventDate)
		if err != nil {
			return nil, errors.New("event_date must be RFC3339")
		}
		booking.Wedding = &domain.WeddingBookingDetails{
			EventDate:   eventDate,
			Location:    req.Wedding.Location,
			GuestCount:  req.Wedding.GuestCount,
			ServiceType: req.Wedding.ServiceType,
		}
	case domain.BookingCategoryBusiness:
		appointmentDate, err := time.Parse(time.RFC3339, req.Business.AppointmentDate)
		if err != nil {
			return nil, errors.New("appointment_date must be RFC3339")
		}
		booking.Business = &domain.BusinessBookingDetails{
			ServiceID:       req.Business.ServiceID,
			AppointmentDate: appointmentDate,
			AppointmentTime: req.Business.AppointmentTime,
			Notes:           req.Business.Notes,
		}
	}

	if err := s.bookingRepo.CreateWithCounters(ctx, booking, hotelID); err != nil {
		return nil, err
	}

	return toBookingResponse(booking), nil
}

// resolveHotelDetails validates the room and derives the owning hotel
func (s *bookingService) resolveHotelDetails(ctx context.Context, req *dto.HotelBookingDetailsRequest) (*domain.HotelBookingDetails, string, error) {
	room, err := s.hotelRepo.GetRoomByID(ctx, req.RoomID)
	if err != nil {
		return nil, "", err
	}
	if room == nil {
		return nil, "", domain.ErrHotelNotFound
	}

	checkIn, err := time.Parse(time.RFC3339, req.CheckInDate)
	if err != nil {
		return nil, "", errors.New("check_in_date must be RFC3339")
	}
	checkOut, err := time.Parse(time.RFC3339, req.CheckOutDate)
	if err != nil {
		return nil, "", errors.New("check_out_date must be RFC3339")
	}
	if !checkOut.After(checkIn) {
		return nil, "", errors.New("check_out_date must be after check_in_date")
	}

	return &domain.HotelBookingDetails{
		RoomID:       room.ID,
		RoomName:     room.Name,
		CheckInDate:  checkIn,
		CheckOutDate: checkOut,
		Guests:       req.Guests,
	}, room.HotelID, nil
}

// loadBooking fetches a booking and enforces the caller's access to it.
// Customers see only their own bookings; vendors only those against their
// vendor profile; admins see everything.
func (s *bookingService) loadBooking(ctx context.Context, id string, actor Actor) (*domain.Booking, error) {
	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if booking == nil {
		return nil, domain.ErrBookingNotFound
	}

	switch actor.Role {
	case domain.RoleAdmin:
		return booking, nil
	case domain.RoleCustomer:
		if booking.CustomerID != actor.UserID {
			return nil, ErrNotBookingCustomer
		}
		return booking, nil
	case domain.RoleVendor:
		vendor, err := s.vendorRepo.GetByUserID(ctx, actor.UserID)
		if err != nil {
			return nil, err
		}
		if vendor == nil || booking.VendorID != vendor.ID {
			return nil, ErrNotBookingVendor
		}
		return booking, nil
	}
	return nil, domain.ErrBookingNotFound
}

// requireVendorSide enforces that the actor manages the booking's vendor side
func (s *bookingService) requireVendorSide(ctx context.Context, id string, actor Actor) (*domain.Booking, error) {
	if actor.Role == domain.RoleCustomer {
		return nil, ErrNotBookingVendor
	}
	return s.loadBooking(ctx, id, actor)
}

// GetByID retrieves a booking, enforcing that the caller participates in it
func (s *bookingService) GetByID(ctx context.Context, id string, actor Actor) (*dto.BookingResponse, error) {
	booking, err := s.loadBooking(ctx, id, actor)
	if err != nil {
		return nil, err
	}
	return toBookingResponse(booking), nil
}

// List retrieves bookings scoped to the caller
func (s *bookingService) List(ctx context.Context, websiteID string, actor Actor, query *dto.ListBookingsQuery) (*dto.ListBookingsResponse, error) {
	query.SetDefaults()

	filter := repository.BookingFilter{
		WebsiteID: websiteID,
		Category:  domain.BookingCategory(query.Category),
		Status:    domain.BookingStatus(query.Status),
	}

	switch actor.Role {
	case domain.RoleCustomer:
		filter.CustomerID = actor.UserID
	case domain.RoleVendor:
		vendor, err := s.vendorRepo.GetByUserID(ctx, actor.UserID)
		if err != nil {
			return nil, err
		}
		if vendor == nil {
			return nil, domain.ErrVendorNotFound
		}
		filter.VendorID = vendor.ID
	}

	bookings, totalCount, err := s.bookingRepo.List(ctx, query.Page, query.Limit, filter)
	if err != nil {
		return nil, err
	}

	bookingResponses := make([]dto.BookingResponse, 0, len(bookings))
	for _, booking := range bookings {
		bookingResponses = append(bookingResponses, *toBookingResponse(booking))
	}

	totalPages := int(math.Ceil(float64(totalCount) / float64(query.Limit)))

	return &dto.ListBookingsResponse{
		Bookings:   bookingResponses,
		TotalCount: totalCount,
		Page:       query.Page,
		Limit:      query.Limit,
		TotalPages: totalPages,
	}, nil
}

// Confirm transitions pending -> confirmed
func (s *bookingService) Confirm(ctx context.Context, id string, actor Actor) (*dto.BookingResponse, error) {
	booking, err := s.requireVendorSide(ctx, id, actor)
	if err != nil {
		return nil, err
	}
	if err := booking.Confirm(actor.UserID); err != nil {
		return nil, err
	}
	if err := s.bookingRepo.Update(ctx, booking); err != nil {
		return nil, err
	}
	return toBookingResponse(booking), nil
}

// CheckIn transitions confirmed -> checked-in
func (s *bookingService) CheckIn(ctx context.Context, id string, actor Actor, req *dto.CheckInRequest) (*dto.BookingResponse, error) {
	booking, err := s.requireVendorSide(ctx, id, actor)
	if err != nil {
		return nil, err
	}
	if err := booking.CheckIn(req.ActualGuests); err != nil {
		return nil, err
	}
	if err := s.bookingRepo.Update(ctx, booking); err != nil {
		return nil, err
	}
	return toBookingResponse(booking), nil
}

// CheckOut transitions checked-in -> checked-out
func (s *bookingService) CheckOut(ctx context.Context, id string, actor Actor) (*dto.BookingResponse, error) {
	booking, err := s.requireVendorSide(ctx, id, actor)
	if err != nil {
		return nil, err
	}
	if err := booking.CheckOut(); err != nil {
		return nil, err
	}
	if err := s.bookingRepo.Update(ctx, booking); err != nil {
		return nil, err
	}
	return toBookingResponse(booking), nil
}

// Complete transitions checked-out -> completed
func (s *bookingService) Complete(ctx context.Context, id string, actor Actor) (*dto.BookingResponse, error) {
	booking, err := s.requireVendorSide(ctx, id, actor)
	if err != nil {
		return nil, err
	}
	if err := booking.Complete(); err != nil {
		return nil, err
	}
	if err := s.bookingRepo.Update(ctx, booking); err != nil {
		return nil, err
	}
	return toBookingResponse(booking), nil
}

// Cancel transitions any non-terminal state -> cancelled. Any participant
// may cancel; the recorded actor reflects the caller's role.
func (s *bookingService) Cancel(ctx context.Context, id string, actor Actor, req *dto.CancelBookingRequest) (*dto.BookingResponse, error) {
	booking, err := s.loadBooking(ctx, id, actor)
	if err != nil {
		return nil, err
	}

	cancelActor := domain.CancelActorCustomer
	switch actor.Role {
	case domain.RoleVendor:
		cancelActor = domain.CancelActorVendor
	case domain.RoleAdmin:
		cancelActor = domain.CancelActorAdmin
	}

	if err := booking.Cancel(req.Reason, cancelActor); err != nil {
		return nil, err
	}
	if err := s.bookingRepo.Update(ctx, booking); err != nil {
		return nil, err
	}
	return toBookingResponse(booking), nil
}

// MarkPaid records payment against a booking
func (s *bookingService) MarkPaid(ctx context.Context, id string, actor Actor, req *dto.MarkPaidRequest) (*dto.BookingResponse, error) {
	booking, err := s.requireVendorSide(ctx, id, actor)
	if err != nil {
		return nil, err
	}
	booking.MarkPaid(req.Method, req.TransactionID, req.Amount)
	if err := s.bookingRepo.Update(ctx, booking); err != nil {
		return nil, err
	}
	return toBookingResponse(booking), nil
}

func formatTimePtr(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(time.RFC3339)
}

// toBookingResponse converts domain.Booking to dto.BookingResponse
func toBookingResponse(booking *domain.Booking) *dto.BookingResponse {
	return &dto.BookingResponse{
		ID:           booking.ID,
		WebsiteID:    booking.WebsiteID,
		VendorID:     booking.VendorID,
		CustomerID:   booking.CustomerID,
		Category:     string(booking.Category),
		Hotel:        booking.Hotel,
		Wedding:      booking.Wedding,
		Business:     booking.Business,
		Pricing:      booking.Pricing,
		Payment:      booking.Payment,
		Status:       string(booking.Status),
		ConfirmedBy:  booking.ConfirmedBy,
		ConfirmedAt:  formatTimePtr(booking.ConfirmedAt),
		ActualGuests: booking.ActualGuests,
		CheckedInAt:  formatTimePtr(booking.CheckedInAt),
		CheckedOutAt: formatTimePtr(booking.CheckedOutAt),
		CompletedAt:  formatTimePtr(booking.CompletedAt),
		CancelReason: booking.CancelReason,
		CancelledBy:  string(booking.CancelledBy),
		CancelledAt:  formatTimePtr(booking.CancelledAt),
		ReviewID:     booking.ReviewID,
		CreatedAt:    booking.CreatedAt.Format(time.RFC3339),
		UpdatedAt:    booking.UpdatedAt.Format(time.RFC3339),
	}
}
