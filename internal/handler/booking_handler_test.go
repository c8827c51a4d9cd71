package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/rnqayush/storefront-platform/internal/domain"
	"github.com/rnqayush/storefront-platform/internal/dto"
	tenantmw "github.com/rnqayush/storefront-platform/internal/middleware"
	"github.com/rnqayush/storefront-platform/internal/service"
	pkgmw "github.com/rnqayush/storefront-platform/pkg/middleware"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// stubBookingService lets each test inject the behavior it needs
type stubBookingService struct {
	createFn     func(ctx context.Context, websiteID, customerID string, req *dto.CreateBookingRequest) (*dto.BookingResponse, error)
	transitionFn func(id string, actor service.Actor) (*dto.BookingResponse, error)
}

func (s *stubBookingService) Create(ctx context.Context, websiteID, customerID string, req *dto.CreateBookingRequest) (*dto.BookingResponse, error) {
	return s.createFn(ctx, websiteID, customerID, req)
}

func (s *stubBookingService) GetByID(_ context.Context, id string, actor service.Actor) (*dto.BookingResponse, error) {
	return s.transitionFn(id, actor)
}

func (s *stubBookingService) List(_ context.Context, _ string, _ service.Actor, _ *dto.ListBookingsQuery) (*dto.ListBookingsResponse, error) {
	return &dto.ListBookingsResponse{}, nil
}

func (s *stubBookingService) Confirm(_ context.Context, id string, actor service.Actor) (*dto.BookingResponse, error) {
	return s.transitionFn(id, actor)
}

func (s *stubBookingService) CheckIn(_ context.Context, id string, actor service.Actor, _ *dto.CheckInRequest) (*dto.BookingResponse, error) {
	return s.transitionFn(id, actor)
}

func (s *stubBookingService) CheckOut(_ context.Context, id string, actor service.Actor) (*dto.BookingResponse, error) {
	return s.transitionFn(id, actor)
}

func (s *stubBookingService) Complete(_ context.Context, id string, actor service.Actor) (*dto.BookingResponse, error) {
	return s.transitionFn(id, actor)
}

func (s *stubBookingService) Cancel(_ context.Context, id string, actor service.Actor, _ *dto.CancelBookingRequest) (*dto.BookingResponse, error) {
	return s.transitionFn(id, actor)
}

func (s *stubBookingService) MarkPaid(_ context.Context, id string, actor service.Actor, _ *dto.MarkPaidRequest) (*dto.BookingResponse, error) {
	return s.transitionFn(id, actor)
}

var _ service.BookingService = (*stubBookingService)(nil)

type requestContext struct {
	website *domain.Website
	userID  string
	role    string
}

func setupBookingRouter(svc service.BookingService, rc requestContext) *gin.Engine {
	r := gin.New()
	r.Use(func(c *gin.Context) {
		if rc.website != nil {
			c.Set(tenantmw.ContextKeyWebsite, rc.website)
		}
		if rc.userID != "" {
			c.Set(pkgmw.ContextKeyUserID, rc.userID)
			c.Set(pkgmw.ContextKeyRole, rc.role)
		}
		c.Next()
	})

	h := NewBookingHandler(svc)
	r.POST("/bookings", h.Create)
	r.POST("/bookings/:id/confirm", h.Confirm)
	r.POST("/bookings/:id/cancel", h.Cancel)
	return r
}

func tenantWebsite() *domain.Website {
	return &domain.Website{ID: "website-1", Slug: "acme", OwnerID: "owner-1", Status: domain.WebsiteStatusActive}
}

const createBody = `{
	"vendor_id": "1a2b3c4d-5e6f-4a7b-8c9d-0e1f2a3b4c5d",
	"category": "hotel",
	"hotel": {
		"room_id": "9d8c7b6a-5f4e-4d3c-b2a1-0f9e8d7c6b5a",
		"check_in_date": "2026-09-01T14:00:00Z",
		"check_out_date": "2026-09-03T11:00:00Z",
		"guests": 2
	},
	"pricing": {"base_price": 200}
}`

func TestBookingHandlerCreate(t *testing.T) {
	svc := &stubBookingService{
		createFn: func(_ context.Context, websiteID, customerID string, _ *dto.CreateBookingRequest) (*dto.BookingResponse, error) {
			assert.Equal(t, "website-1", websiteID)
			assert.Equal(t, "customer-1", customerID)
			return &dto.BookingResponse{ID: "booking-1", Status: "pending"}, nil
		},
	}
	router := setupBookingRouter(svc, requestContext{website: tenantWebsite(), userID: "customer-1", role: "customer"})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/bookings", strings.NewReader(createBody))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), `"success":true`)
	assert.Contains(t, w.Body.String(), "booking-1")
}

func TestBookingHandlerCreateNoTenant(t *testing.T) {
	svc := &stubBookingService{}
	router := setupBookingRouter(svc, requestContext{userID: "customer-1", role: "customer"})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/bookings", strings.NewReader(createBody))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "WEBSITE_NOT_FOUND")
}

func TestBookingHandlerCreateUnauthenticated(t *testing.T) {
	svc := &stubBookingService{}
	router := setupBookingRouter(svc, requestContext{website: tenantWebsite()})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/bookings", strings.NewReader(createBody))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestBookingHandlerCreateMismatchedDetails(t *testing.T) {
	svc := &stubBookingService{}
	router := setupBookingRouter(svc, requestContext{website: tenantWebsite(), userID: "customer-1", role: "customer"})

	body := `{
		"vendor_id": "1a2b3c4d-5e6f-4a7b-8c9d-0e1f2a3b4c5d",
		"category": "hotel",
		"pricing": {"base_price": 200}
	}`

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/bookings", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "hotel details are required")
}

func TestBookingHandlerTransitionErrors(t *testing.T) {
	tests := []struct {
		name     string
		path     string
		body     string
		err      error
		wantCode int
		wantBody string
	}{
		{
			"confirm non-pending", "/bookings/b1/confirm", "",
			domain.ErrOnlyPendingConfirmable, http.StatusConflict, "INVALID_STATUS",
		},
		{
			"cancel cancelled", "/bookings/b1/cancel", `{"reason": "changed plans"}`,
			domain.ErrAlreadyCancelled, http.StatusConflict, "ALREADY_CANCELLED",
		},
		{
			"cancel completed", "/bookings/b1/cancel", `{"reason": "changed plans"}`,
			domain.ErrCannotCancelCompleted, http.StatusConflict, "CANNOT_CANCEL_COMPLETED",
		},
		{
			"confirm missing booking", "/bookings/b1/confirm", "",
			domain.ErrBookingNotFound, http.StatusNotFound, "BOOKING_NOT_FOUND",
		},
		{
			"confirm as customer", "/bookings/b1/confirm", "",
			service.ErrNotBookingVendor, http.StatusForbidden, "FORBIDDEN",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &stubBookingService{
				transitionFn: func(string, service.Actor) (*dto.BookingResponse, error) {
					return nil, tt.err
				},
			}
			router := setupBookingRouter(svc, requestContext{website: tenantWebsite(), userID: "customer-1", role: "customer"})

			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, tt.path, strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.wantCode, w.Code)
			assert.Contains(t, w.Body.String(), tt.wantBody)
		})
	}
}

func TestBookingHandlerConfirmSuccess(t *testing.T) {
	svc := &stubBookingService{
		transitionFn: func(id string, actor service.Actor) (*dto.BookingResponse, error) {
			assert.Equal(t, "b1", id)
			assert.Equal(t, domain.RoleVendor, actor.Role)
			return &dto.BookingResponse{ID: id, Status: "confirmed"}, nil
		},
	}
	router := setupBookingRouter(svc, requestContext{website: tenantWebsite(), userID: "vendor-user-1", role: "vendor"})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/bookings/b1/confirm", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"confirmed"`)
}
