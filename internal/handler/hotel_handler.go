package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rnqayush/storefront-platform/internal/dto"
	"github.com/rnqayush/storefront-platform/internal/service"
	"github.com/rnqayush/storefront-platform/pkg/response"
)

// HotelHandler handles hotel and room HTTP requests
type HotelHandler struct {
	hotelService  service.HotelService
	vendorService service.VendorService
}

// NewHotelHandler creates a new HotelHandler
func NewHotelHandler(hotelService service.HotelService, vendorService service.VendorService) *HotelHandler {
	return &HotelHandler{
		hotelService:  hotelService,
		vendorService: vendorService,
	}
}

// Create handles POST /hotels
func (h *HotelHandler) Create(c *gin.Context) {
	websiteID, ok := resolvedWebsiteID(c)
	if !ok {
		c.JSON(http.StatusNotFound, response.Error(response.ErrCodeWebsiteNotFound, "Website not found"))
		return
	}

	vendorID, ok := callerVendorID(c, h.vendorService)
	if !ok {
		return
	}

	var req dto.CreateHotelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.BadRequest(err.Error()))
		return
	}

	result, err := h.hotelService.Create(c.Request.Context(), websiteID, vendorID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, response.Success(result))
}

// GetByID handles GET /hotels/:id
func (h *HotelHandler) GetByID(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, response.BadRequest("Hotel ID is required"))
		return
	}

	result, err := h.hotelService.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(result))
}

// List handles GET /hotels - hotels of the resolved website
func (h *HotelHandler) List(c *gin.Context) {
	websiteID, ok := resolvedWebsiteID(c)
	if !ok {
		c.JSON(http.StatusNotFound, response.Error(response.ErrCodeWebsiteNotFound, "Website not found"))
		return
	}

	var query dto.ListHotelsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, response.BadRequest(err.Error()))
		return
	}

	result, err := h.hotelService.List(c.Request.Context(), websiteID, &query)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(result))
}

// Update handles PUT /hotels/:id
func (h *HotelHandler) Update(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, response.BadRequest("Hotel ID is required"))
		return
	}

	var req dto.UpdateHotelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.BadRequest(err.Error()))
		return
	}

	result, err := h.hotelService.Update(c.Request.Context(), id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(result))
}

// Delete handles DELETE /hotels/:id
func (h *HotelHandler) Delete(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, response.BadRequest("Hotel ID is required"))
		return
	}

	if err := h.hotelService.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(gin.H{"message": "Hotel deleted successfully"}))
}

// CreateRoom handles POST /hotels/:id/rooms
func (h *HotelHandler) CreateRoom(c *gin.Context) {
	hotelID := c.Param("id")
	if hotelID == "" {
		c.JSON(http.StatusBadRequest, response.BadRequest("Hotel ID is required"))
		return
	}

	var req dto.CreateRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.BadRequest(err.Error()))
		return
	}

	result, err := h.hotelService.CreateRoom(c.Request.Context(), hotelID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, response.Success(result))
}

// ListRooms handles GET /hotels/:id/rooms
func (h *HotelHandler) ListRooms(c *gin.Context) {
	hotelID := c.Param("id")
	if hotelID == "" {
		c.JSON(http.StatusBadRequest, response.BadRequest("Hotel ID is required"))
		return
	}

	result, err := h.hotelService.ListRooms(c.Request.Context(), hotelID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(result))
}

// UpdateRoom handles PUT /rooms/:id
func (h *HotelHandler) UpdateRoom(c *gin.Context) {
	roomID := c.Param("id")
	if roomID == "" {
		c.JSON(http.StatusBadRequest, response.BadRequest("Room ID is required"))
		return
	}

	var req dto.UpdateRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.BadRequest(err.Error()))
		return
	}

	result, err := h.hotelService.UpdateRoom(c.Request.Context(), roomID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(result))
}

// DeleteRoom handles DELETE /rooms/:id
func (h *HotelHandler) DeleteRoom(c *gin.Context) {
	roomID := c.Param("id")
	if roomID == "" {
		c.JSON(http.StatusBadRequest, response.BadRequest("Room ID is required"))
		return
	}

	if err := h.hotelService.DeleteRoom(c.Request.Context(), roomID); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(gin.H{"message": "Room deleted successfully"}))
}
