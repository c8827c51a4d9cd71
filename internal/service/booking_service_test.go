package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rnqayush/storefront-platform/internal/domain"
	"github.com/rnqayush/storefront-platform/internal/dto"
	"github.com/rnqayush/storefront-platform/internal/repository"
)

// --- in-memory fakes ---

type fakeBookingRepo struct {
	bookings    map[string]*domain.Booking
	vendors     *fakeVendorRepo
	lastHotelID string
	reviews     []*domain.Review
}

func newFakeBookingRepo() *fakeBookingRepo {
	return &fakeBookingRepo{bookings: make(map[string]*domain.Booking)}
}

func (r *fakeBookingRepo) CreateWithCounters(_ context.Context, booking *domain.Booking, hotelID string) error {
	r.bookings[booking.ID] = booking
	r.lastHotelID = hotelID
	return nil
}

func (r *fakeBookingRepo) GetByID(_ context.Context, id string) (*domain.Booking, error) {
	return r.bookings[id], nil
}

func (r *fakeBookingRepo) List(_ context.Context, _, _ int, filter repository.BookingFilter) ([]*domain.Booking, int, error) {
	var out []*domain.Booking
	for _, b := range r.bookings {
		if filter.CustomerID != "" && b.CustomerID != filter.CustomerID {
			continue
		}
		if filter.VendorID != "" && b.VendorID != filter.VendorID {
			continue
		}
		out = append(out, b)
	}
	return out, len(out), nil
}

func (r *fakeBookingRepo) Update(_ context.Context, booking *domain.Booking) error {
	r.bookings[booking.ID] = booking
	return nil
}

func (r *fakeBookingRepo) AttachReview(_ context.Context, booking *domain.Booking, review *domain.Review, hotelID string) error {
	r.bookings[booking.ID] = booking
	r.reviews = append(r.reviews, review)
	r.lastHotelID = hotelID
	if r.vendors != nil {
		if vendor := r.vendors.vendors[review.VendorID]; vendor != nil {
			vendor.ApplyRating(review.Rating)
		}
	}
	return nil
}

func (r *fakeBookingRepo) SoftDelete(_ context.Context, id string) error {
	delete(r.bookings, id)
	return nil
}

type fakeVendorRepo struct {
	vendors map[string]*domain.Vendor
}

func newFakeVendorRepo(vendors ...*domain.Vendor) *fakeVendorRepo {
	r := &fakeVendorRepo{vendors: make(map[string]*domain.Vendor)}
	for _, v := range vendors {
		r.vendors[v.ID] = v
	}
	return r
}

func (r *fakeVendorRepo) Create(_ context.Context, vendor *domain.Vendor) error {
	r.vendors[vendor.ID] = vendor
	return nil
}

func (r *fakeVendorRepo) GetByID(_ context.Context, id string) (*domain.Vendor, error) {
	return r.vendors[id], nil
}

func (r *fakeVendorRepo) GetByWebsiteID(_ context.Context, websiteID string) (*domain.Vendor, error) {
	for _, v := range r.vendors {
		if v.WebsiteID == websiteID {
			return v, nil
		}
	}
	return nil, nil
}

func (r *fakeVendorRepo) GetByUserID(_ context.Context, userID string) (*domain.Vendor, error) {
	for _, v := range r.vendors {
		if v.UserID == userID {
			return v, nil
		}
	}
	return nil, nil
}

func (r *fakeVendorRepo) List(_ context.Context, _, _ int, _, _, _ string) ([]*domain.Vendor, int, error) {
	return nil, 0, nil
}

func (r *fakeVendorRepo) Update(_ context.Context, vendor *domain.Vendor) error {
	r.vendors[vendor.ID] = vendor
	return nil
}

func (r *fakeVendorRepo) SoftDelete(_ context.Context, id string) error {
	delete(r.vendors, id)
	return nil
}

type fakeHotelRepo struct {
	rooms map[string]*domain.Room
}

func newFakeHotelRepo(rooms ...*domain.Room) *fakeHotelRepo {
	r := &fakeHotelRepo{rooms: make(map[string]*domain.Room)}
	for _, room := range rooms {
		r.rooms[room.ID] = room
	}
	return r
}

func (r *fakeHotelRepo) Create(_ context.Context, _ *domain.Hotel) error  { return nil }
func (r *fakeHotelRepo) GetByID(_ context.Context, _ string) (*domain.Hotel, error) {
	return nil, nil
}
func (r *fakeHotelRepo) List(_ context.Context, _, _ int, _, _, _ string) ([]*domain.Hotel, int, error) {
	return nil, 0, nil
}
func (r *fakeHotelRepo) Update(_ context.Context, _ *domain.Hotel) error    { return nil }
func (r *fakeHotelRepo) SoftDelete(_ context.Context, _ string) error       { return nil }
func (r *fakeHotelRepo) CreateRoom(_ context.Context, _ *domain.Room) error { return nil }
func (r *fakeHotelRepo) GetRoomByID(_ context.Context, id string) (*domain.Room, error) {
	return r.rooms[id], nil
}
func (r *fakeHotelRepo) ListRooms(_ context.Context, _ string) ([]*domain.Room, error) {
	return nil, nil
}
func (r *fakeHotelRepo) UpdateRoom(_ context.Context, _ *domain.Room) error { return nil }
func (r *fakeHotelRepo) SoftDeleteRoom(_ context.Context, _ string) error   { return nil }

// --- fixtures ---

const (
	testWebsiteID  = "7f9c24e8-3b1a-4f6d-9c2e-8a5b7d1e0f3a"
	testVendorID   = "1a2b3c4d-5e6f-4a7b-8c9d-0e1f2a3b4c5d"
	testVendorUser = "vendor-user-1"
	testCustomerID = "customer-1"
	testRoomID     = "9d8c7b6a-5f4e-4d3c-b2a1-0f9e8d7c6b5a"
	testHotelID    = "2b3c4d5e-6f7a-4b8c-9d0e-1f2a3b4c5d6e"
)

func newTestService() (*bookingService, *fakeBookingRepo) {
	bookingRepo := newFakeBookingRepo()
	vendorRepo := newFakeVendorRepo(&domain.Vendor{
		ID:        testVendorID,
		UserID:    testVendorUser,
		WebsiteID: testWebsiteID,
	})
	hotelRepo := newFakeHotelRepo(&domain.Room{
		ID:      testRoomID,
		HotelID: testHotelID,
		Name:    "Deluxe King",
	})
	bookingRepo.vendors = vendorRepo
	svc := NewBookingService(bookingRepo, vendorRepo, hotelRepo).(*bookingService)
	return svc, bookingRepo
}

func hotelCreateRequest() *dto.CreateBookingRequest {
	checkIn := time.Now().Add(24 * time.Hour).Format(time.RFC3339)
	checkOut := time.Now().Add(72 * time.Hour).Format(time.RFC3339)
	return &dto.CreateBookingRequest{
		VendorID: testVendorID,
		Category: "hotel",
		Hotel: &dto.HotelBookingDetailsRequest{
			RoomID:       testRoomID,
			CheckInDate:  checkIn,
			CheckOutDate: checkOut,
			Guests:       2,
		},
		Pricing: dto.PricingRequest{BasePrice: 300, Taxes: 21, Discount: 21},
	}
}

var (
	vendorActor   = Actor{UserID: testVendorUser, Role: domain.RoleVendor}
	customerActor = Actor{UserID: testCustomerID, Role: domain.RoleCustomer}
	adminActor    = Actor{UserID: "admin-1", Role: domain.RoleAdmin}
)

// --- tests ---

func TestBookingServiceCreate(t *testing.T) {
	svc, repo := newTestService()

	resp, err := svc.Create(context.Background(), testWebsiteID, testCustomerID, hotelCreateRequest())
	require.NoError(t, err)

	assert.Equal(t, "pending", resp.Status)
	assert.Equal(t, 300.0, resp.Pricing.Total)
	assert.Equal(t, "USD", resp.Pricing.Currency)
	require.NotNil(t, resp.Hotel)
	assert.Equal(t, "Deluxe King", resp.Hotel.RoomName)
	assert.Equal(t, testHotelID, repo.lastHotelID)
}

func TestBookingServiceCreateVendorMismatch(t *testing.T) {
	svc, _ := newTestService()

	req := hotelCreateRequest()
	req.VendorID = "66666666-7777-4888-9999-aaaaaaaabbbb"

	_, err := svc.Create(context.Background(), testWebsiteID, testCustomerID, req)
	assert.ErrorIs(t, err, domain.ErrVendorNotFound)
}

func TestBookingServiceCreateRejectsInvertedDates(t *testing.T) {
	svc, _ := newTestService()

	req := hotelCreateRequest()
	req.Hotel.CheckInDate, req.Hotel.CheckOutDate = req.Hotel.CheckOutDate, req.Hotel.CheckInDate

	_, err := svc.Create(context.Background(), testWebsiteID, testCustomerID, req)
	assert.Error(t, err)
}

func TestBookingServiceLifecycle(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	created, err := svc.Create(ctx, testWebsiteID, testCustomerID, hotelCreateRequest())
	require.NoError(t, err)

	resp, err := svc.Confirm(ctx, created.ID, vendorActor)
	require.NoError(t, err)
	assert.Equal(t, "confirmed", resp.Status)
	assert.Equal(t, testVendorUser, resp.ConfirmedBy)

	resp, err = svc.CheckIn(ctx, created.ID, vendorActor, &dto.CheckInRequest{ActualGuests: 2})
	require.NoError(t, err)
	assert.Equal(t, "checked-in", resp.Status)

	resp, err = svc.CheckOut(ctx, created.ID, vendorActor)
	require.NoError(t, err)
	assert.Equal(t, "checked-out", resp.Status)

	resp, err = svc.Complete(ctx, created.ID, vendorActor)
	require.NoError(t, err)
	assert.Equal(t, "completed", resp.Status)
	assert.NotEmpty(t, resp.CompletedAt)
}

func TestBookingServiceConfirmRejectsCustomer(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	created, err := svc.Create(ctx, testWebsiteID, testCustomerID, hotelCreateRequest())
	require.NoError(t, err)

	_, err = svc.Confirm(ctx, created.ID, customerActor)
	assert.ErrorIs(t, err, ErrNotBookingVendor)
}

func TestBookingServiceSkippedTransition(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	created, err := svc.Create(ctx, testWebsiteID, testCustomerID, hotelCreateRequest())
	require.NoError(t, err)

	// pending -> checked-in is not allowed
	_, err = svc.CheckIn(ctx, created.ID, vendorActor, &dto.CheckInRequest{ActualGuests: 2})
	assert.ErrorIs(t, err, domain.ErrOnlyConfirmedCheckIn)
}

func TestBookingServiceCustomerAccess(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	created, err := svc.Create(ctx, testWebsiteID, testCustomerID, hotelCreateRequest())
	require.NoError(t, err)

	_, err = svc.GetByID(ctx, created.ID, Actor{UserID: "intruder", Role: domain.RoleCustomer})
	assert.ErrorIs(t, err, ErrNotBookingCustomer)

	resp, err := svc.GetByID(ctx, created.ID, customerActor)
	require.NoError(t, err)
	assert.Equal(t, created.ID, resp.ID)

	resp, err = svc.GetByID(ctx, created.ID, adminActor)
	require.NoError(t, err)
	assert.Equal(t, created.ID, resp.ID)
}

func TestBookingServiceCancel(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	created, err := svc.Create(ctx, testWebsiteID, testCustomerID, hotelCreateRequest())
	require.NoError(t, err)

	resp, err := svc.Cancel(ctx, created.ID, customerActor, &dto.CancelBookingRequest{Reason: "changed plans"})
	require.NoError(t, err)
	assert.Equal(t, "cancelled", resp.Status)
	assert.Equal(t, "customer", resp.CancelledBy)
	assert.Equal(t, "changed plans", resp.CancelReason)

	_, err = svc.Cancel(ctx, created.ID, customerActor, &dto.CancelBookingRequest{Reason: "again"})
	assert.ErrorIs(t, err, domain.ErrAlreadyCancelled)
}

func TestBookingServiceMarkPaid(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	created, err := svc.Create(ctx, testWebsiteID, testCustomerID, hotelCreateRequest())
	require.NoError(t, err)

	resp, err := svc.MarkPaid(ctx, created.ID, vendorActor, &dto.MarkPaidRequest{
		Method:        "card",
		TransactionID: "txn-1",
		Amount:        300,
	})
	require.NoError(t, err)
	assert.Equal(t, domain.PaymentStatusPaid, resp.Payment.Status)
	assert.Equal(t, 300.0, resp.Payment.AmountPaid)
}

func TestBookingServiceGetByIDNotFound(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.GetByID(context.Background(), "missing", adminActor)
	assert.ErrorIs(t, err, domain.ErrBookingNotFound)
}

func completeBooking(t *testing.T, svc *bookingService, id string) {
	t.Helper()
	ctx := context.Background()
	for _, fn := range []func() (*dto.BookingResponse, error){
		func() (*dto.BookingResponse, error) { return svc.Confirm(ctx, id, vendorActor) },
		func() (*dto.BookingResponse, error) {
			return svc.CheckIn(ctx, id, vendorActor, &dto.CheckInRequest{ActualGuests: 2})
		},
		func() (*dto.BookingResponse, error) { return svc.CheckOut(ctx, id, vendorActor) },
		func() (*dto.BookingResponse, error) { return svc.Complete(ctx, id, vendorActor) },
	} {
		if _, err := fn(); err != nil {
			t.Fatalf("completeBooking: %v", err)
		}
	}
}

func TestReviewServiceCreate(t *testing.T) {
	svc, bookingRepo := newTestService()
	ctx := context.Background()

	created, err := svc.Create(ctx, testWebsiteID, testCustomerID, hotelCreateRequest())
	require.NoError(t, err)
	completeBooking(t, svc, created.ID)

	reviews := NewReviewService(bookingRepo, nil, svc.hotelRepo)

	resp, err := reviews.Create(ctx, created.ID, testCustomerID, &dto.CreateReviewRequest{Rating: 5, Comment: "great stay"})
	require.NoError(t, err)
	assert.Equal(t, 5, resp.Rating)
	assert.Equal(t, testVendorID, resp.VendorID)

	// The rating transaction receives the hotel derived from the booked room
	assert.Equal(t, testHotelID, bookingRepo.lastHotelID)
	require.Len(t, bookingRepo.reviews, 1)

	// A second review against the same booking is rejected
	_, err = reviews.Create(ctx, created.ID, testCustomerID, &dto.CreateReviewRequest{Rating: 1})
	assert.ErrorIs(t, err, domain.ErrAlreadyReviewed)
}

func TestReviewServiceRatingRunningMean(t *testing.T) {
	svc, bookingRepo := newTestService()
	ctx := context.Background()

	reviews := NewReviewService(bookingRepo, nil, svc.hotelRepo)

	for i, rating := range []int{5, 3, 4} {
		created, err := svc.Create(ctx, testWebsiteID, testCustomerID, hotelCreateRequest())
		require.NoError(t, err)
		completeBooking(t, svc, created.ID)

		_, err = reviews.Create(ctx, created.ID, testCustomerID, &dto.CreateReviewRequest{Rating: rating})
		require.NoError(t, err, "review %d", i)
	}

	vendor := bookingRepo.vendors.vendors[testVendorID]
	require.NotNil(t, vendor)
	assert.InDelta(t, 4.0, vendor.Rating, 1e-9)
	assert.Equal(t, 3, vendor.ReviewCount)
}

func TestReviewServiceCreateRequiresCompleted(t *testing.T) {
	svc, bookingRepo := newTestService()
	ctx := context.Background()

	created, err := svc.Create(ctx, testWebsiteID, testCustomerID, hotelCreateRequest())
	require.NoError(t, err)

	reviews := NewReviewService(bookingRepo, nil, svc.hotelRepo)

	_, err = reviews.Create(ctx, created.ID, testCustomerID, &dto.CreateReviewRequest{Rating: 4})
	assert.ErrorIs(t, err, domain.ErrReviewRequiresCompleted)
}

func TestReviewServiceCreateRejectsOtherCustomer(t *testing.T) {
	svc, bookingRepo := newTestService()
	ctx := context.Background()

	created, err := svc.Create(ctx, testWebsiteID, testCustomerID, hotelCreateRequest())
	require.NoError(t, err)
	completeBooking(t, svc, created.ID)

	reviews := NewReviewService(bookingRepo, nil, svc.hotelRepo)

	_, err = reviews.Create(ctx, created.ID, "intruder", &dto.CreateReviewRequest{Rating: 5})
	assert.ErrorIs(t, err, ErrNotBookingCustomer)
}

// interface conformance
var (
	_ repository.BookingRepository = (*fakeBookingRepo)(nil)
	_ repository.VendorRepository  = (*fakeVendorRepo)(nil)
	_ repository.HotelRepository   = (*fakeHotelRepo)(nil)
)
