package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rnqayush/storefront-platform/internal/domain"
	tenantmw "github.com/rnqayush/storefront-platform/internal/middleware"
	"github.com/rnqayush/storefront-platform/internal/service"
	"github.com/rnqayush/storefront-platform/pkg/middleware"
	"github.com/rnqayush/storefront-platform/pkg/response"
)

// currentActor builds the service-layer actor from the JWT context
func currentActor(c *gin.Context) (service.Actor, bool) {
	userID, ok := middleware.GetUserID(c)
	if !ok || userID == "" {
		return service.Actor{}, false
	}
	role, _ := middleware.GetRole(c)
	return service.Actor{UserID: userID, Role: domain.UserRole(role)}, true
}

// resolvedWebsiteID returns the ID of the tenant website resolved for the
// request. Routes using it sit behind RequireTenant.
func resolvedWebsiteID(c *gin.Context) (string, bool) {
	website, ok := tenantmw.GetWebsite(c)
	if !ok {
		return "", false
	}
	return website.ID, true
}

// callerVendorID resolves the authenticated user's vendor profile ID.
// Returns false when the request was already answered.
func callerVendorID(c *gin.Context, vendors service.VendorService) (string, bool) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, response.Unauthorized(""))
		return "", false
	}

	vendor, err := vendors.GetByUserID(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return "", false
	}

	return vendor.ID, true
}

// respondError maps domain and service errors to the response envelope.
// Unrecognized errors come back as a plain 500 without leaking internals.
func respondError(c *gin.Context, err error) {
	var domainErr *domain.Error
	if errors.As(err, &domainErr) {
		c.JSON(response.GetHTTPStatus(domainErr.Code), response.Error(domainErr.Code, domainErr.Message))
		return
	}

	switch {
	case errors.Is(err, service.ErrNotBookingCustomer),
		errors.Is(err, service.ErrNotBookingVendor),
		errors.Is(err, service.ErrNotOrderCustomer),
		errors.Is(err, service.ErrNotEventOwner),
		errors.Is(err, service.ErrAccountDisabled):
		c.JSON(http.StatusForbidden, response.Forbidden(err.Error()))
	case errors.Is(err, service.ErrRoomNotFound),
		errors.Is(err, service.ErrCategoryNotFound),
		errors.Is(err, service.ErrWeddingVendorNotFound),
		errors.Is(err, service.ErrWeddingEventNotFound),
		errors.Is(err, service.ErrBusinessServiceNotFound):
		c.JSON(http.StatusNotFound, response.NotFound(err.Error()))
	case errors.Is(err, service.ErrVendorProfileExists),
		errors.Is(err, service.ErrProductSlugTaken),
		errors.Is(err, service.ErrInsufficientStock):
		c.JSON(http.StatusConflict, response.Error(response.ErrCodeConflict, err.Error()))
	case errors.Is(err, service.ErrInvalidOrderStatus):
		c.JSON(http.StatusBadRequest, response.BadRequest(err.Error()))
	case errors.Is(err, service.ErrTooManyLoginAttempts):
		c.JSON(http.StatusTooManyRequests, response.Error(response.ErrCodeTooManyRequests, "Too many failed login attempts. Please try again later."))
	default:
		c.JSON(http.StatusInternalServerError, response.InternalError(""))
	}
}
