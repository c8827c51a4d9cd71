package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/rnqayush/storefront-platform/internal/dto"
	"github.com/rnqayush/storefront-platform/internal/service"
	"github.com/rnqayush/storefront-platform/pkg/response"
	"github.com/rnqayush/storefront-platform/pkg/telemetry"
)

// BookingHandler handles booking lifecycle HTTP requests
type BookingHandler struct {
	bookingService service.BookingService
	transitions    *telemetry.Counter
}

// NewBookingHandler creates a new BookingHandler
func NewBookingHandler(bookingService service.BookingService) *BookingHandler {
	transitions, _ := telemetry.NewCounter(telemetry.MetricOpts{
		Name:        "booking_transitions_total",
		Description: "Booking state transitions by resulting status",
		Unit:        "{transition}",
	})
	return &BookingHandler{
		bookingService: bookingService,
		transitions:    transitions,
	}
}

func (h *BookingHandler) countTransition(c *gin.Context, status string) {
	if h.transitions == nil {
		return
	}
	attrs := []attribute.KeyValue{telemetry.BookingStatusAttr(status)}
	if websiteID, ok := resolvedWebsiteID(c); ok {
		attrs = append(attrs, telemetry.WebsiteIDAttr(websiteID))
	}
	h.transitions.Inc(c.Request.Context(), attrs...)
}

// Create handles POST /bookings
func (h *BookingHandler) Create(c *gin.Context) {
	ctx, span := telemetry.StartSpan(c.Request.Context(), "handler.booking.create")
	defer span.End()
	c.Request = c.Request.WithContext(ctx)

	websiteID, ok := resolvedWebsiteID(c)
	if !ok {
		span.SetStatus(codes.Error, "no tenant")
		c.JSON(http.StatusNotFound, response.Error(response.ErrCodeWebsiteNotFound, "Website not found"))
		return
	}

	actor, ok := currentActor(c)
	if !ok {
		span.SetStatus(codes.Error, "unauthorized")
		c.JSON(http.StatusUnauthorized, response.Unauthorized(""))
		return
	}

	var req dto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "invalid request")
		c.JSON(http.StatusBadRequest, response.BadRequest(err.Error()))
		return
	}
	if valid, msg := req.Validate(); !valid {
		span.SetStatus(codes.Error, "invalid request")
		c.JSON(http.StatusBadRequest, response.BadRequest(msg))
		return
	}

	span.SetAttributes(
		attribute.String("booking.category", req.Category),
		attribute.String("booking.vendor_id", req.VendorID),
	)

	result, err := h.bookingService.Create(ctx, websiteID, actor.UserID, &req)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "create failed")
		respondError(c, err)
		return
	}

	span.SetAttributes(attribute.String("booking.id", result.ID))
	h.countTransition(c, result.Status)
	c.JSON(http.StatusCreated, response.Success(result))
}

// GetByID handles GET /bookings/:id
func (h *BookingHandler) GetByID(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, response.BadRequest("Booking ID is required"))
		return
	}

	actor, ok := currentActor(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, response.Unauthorized(""))
		return
	}

	result, err := h.bookingService.GetByID(c.Request.Context(), id, actor)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(result))
}

// List handles GET /bookings
func (h *BookingHandler) List(c *gin.Context) {
	websiteID, ok := resolvedWebsiteID(c)
	if !ok {
		c.JSON(http.StatusNotFound, response.Error(response.ErrCodeWebsiteNotFound, "Website not found"))
		return
	}

	actor, ok := currentActor(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, response.Unauthorized(""))
		return
	}

	var query dto.ListBookingsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, response.BadRequest(err.Error()))
		return
	}

	result, err := h.bookingService.List(c.Request.Context(), websiteID, actor, &query)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(result))
}

// Confirm handles POST /bookings/:id/confirm
func (h *BookingHandler) Confirm(c *gin.Context) {
	h.transition(c, "handler.booking.confirm", func(ctx *gin.Context, id string, actor service.Actor) (*dto.BookingResponse, error) {
		return h.bookingService.Confirm(ctx.Request.Context(), id, actor)
	})
}

// CheckIn handles POST /bookings/:id/check-in
func (h *BookingHandler) CheckIn(c *gin.Context) {
	var req dto.CheckInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.BadRequest(err.Error()))
		return
	}

	h.transition(c, "handler.booking.check_in", func(ctx *gin.Context, id string, actor service.Actor) (*dto.BookingResponse, error) {
		return h.bookingService.CheckIn(ctx.Request.Context(), id, actor, &req)
	})
}

// CheckOut handles POST /bookings/:id/check-out
func (h *BookingHandler) CheckOut(c *gin.Context) {
	h.transition(c, "handler.booking.check_out", func(ctx *gin.Context, id string, actor service.Actor) (*dto.BookingResponse, error) {
		return h.bookingService.CheckOut(ctx.Request.Context(), id, actor)
	})
}

// Complete handles POST /bookings/:id/complete
func (h *BookingHandler) Complete(c *gin.Context) {
	h.transition(c, "handler.booking.complete", func(ctx *gin.Context, id string, actor service.Actor) (*dto.BookingResponse, error) {
		return h.bookingService.Complete(ctx.Request.Context(), id, actor)
	})
}

// Cancel handles POST /bookings/:id/cancel
func (h *BookingHandler) Cancel(c *gin.Context) {
	var req dto.CancelBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.BadRequest(err.Error()))
		return
	}

	h.transition(c, "handler.booking.cancel", func(ctx *gin.Context, id string, actor service.Actor) (*dto.BookingResponse, error) {
		return h.bookingService.Cancel(ctx.Request.Context(), id, actor, &req)
	})
}

// MarkPaid handles POST /bookings/:id/pay
func (h *BookingHandler) MarkPaid(c *gin.Context) {
	var req dto.MarkPaidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.BadRequest(err.Error()))
		return
	}

	h.transition(c, "handler.booking.mark_paid", func(ctx *gin.Context, id string, actor service.Actor) (*dto.BookingResponse, error) {
		return h.bookingService.MarkPaid(ctx.Request.Context(), id, actor, &req)
	})
}

// transition runs one booking state change under a span
func (h *BookingHandler) transition(c *gin.Context, spanName string, fn func(*gin.Context, string, service.Actor) (*dto.BookingResponse, error)) {
	ctx, span := telemetry.StartSpan(c.Request.Context(), spanName)
	defer span.End()
	c.Request = c.Request.WithContext(ctx)

	id := c.Param("id")
	if id == "" {
		span.SetStatus(codes.Error, "missing id")
		c.JSON(http.StatusBadRequest, response.BadRequest("Booking ID is required"))
		return
	}
	span.SetAttributes(attribute.String("booking.id", id))

	actor, ok := currentActor(c)
	if !ok {
		span.SetStatus(codes.Error, "unauthorized")
		c.JSON(http.StatusUnauthorized, response.Unauthorized(""))
		return
	}

	result, err := fn(c, id, actor)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "transition failed")
		respondError(c, err)
		return
	}

	span.SetAttributes(attribute.String("booking.status", result.Status))
	h.countTransition(c, result.Status)
	c.JSON(http.StatusOK, response.Success(result))
}
