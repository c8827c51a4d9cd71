package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rnqayush/storefront-platform/internal/dto"
	"github.com/rnqayush/storefront-platform/internal/service"
	"github.com/rnqayush/storefront-platform/pkg/response"
)

// BusinessHandler handles business service HTTP requests
type BusinessHandler struct {
	businessService service.BusinessService
	vendorService   service.VendorService
}

// NewBusinessHandler creates a new BusinessHandler
func NewBusinessHandler(businessService service.BusinessService, vendorService service.VendorService) *BusinessHandler {
	return &BusinessHandler{
		businessService: businessService,
		vendorService:   vendorService,
	}
}

// Create handles POST /services
func (h *BusinessHandler) Create(c *gin.Context) {
	websiteID, ok := resolvedWebsiteID(c)
	if !ok {
		c.JSON(http.StatusNotFound, response.Error(response.ErrCodeWebsiteNotFound, "Website not found"))
		return
	}

	vendorID, ok := callerVendorID(c, h.vendorService)
	if !ok {
		return
	}

	var req dto.CreateBusinessServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.BadRequest(err.Error()))
		return
	}

	result, err := h.businessService.Create(c.Request.Context(), websiteID, vendorID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, response.Success(result))
}

// GetByID handles GET /services/:id
func (h *BusinessHandler) GetByID(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, response.BadRequest("Service ID is required"))
		return
	}

	result, err := h.businessService.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(result))
}

// List handles GET /services - services of the resolved website
func (h *BusinessHandler) List(c *gin.Context) {
	websiteID, ok := resolvedWebsiteID(c)
	if !ok {
		c.JSON(http.StatusNotFound, response.Error(response.ErrCodeWebsiteNotFound, "Website not found"))
		return
	}

	var query dto.ListBusinessServicesQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, response.BadRequest(err.Error()))
		return
	}

	result, err := h.businessService.List(c.Request.Context(), websiteID, &query)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(result))
}

// Update handles PUT /services/:id
func (h *BusinessHandler) Update(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, response.BadRequest("Service ID is required"))
		return
	}

	var req dto.UpdateBusinessServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.BadRequest(err.Error()))
		return
	}

	result, err := h.businessService.Update(c.Request.Context(), id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(result))
}

// Delete handles DELETE /services/:id
func (h *BusinessHandler) Delete(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, response.BadRequest("Service ID is required"))
		return
	}

	if err := h.businessService.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(gin.H{"message": "Service deleted successfully"}))
}
