package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rnqayush/storefront-platform/internal/dto"
	"github.com/rnqayush/storefront-platform/internal/service"
	"github.com/rnqayush/storefront-platform/pkg/response"
)

// ProductHandler handles product catalog HTTP requests
type ProductHandler struct {
	productService service.ProductService
	vendorService  service.VendorService
}

// NewProductHandler creates a new ProductHandler
func NewProductHandler(productService service.ProductService, vendorService service.VendorService) *ProductHandler {
	return &ProductHandler{
		productService: productService,
		vendorService:  vendorService,
	}
}

// Create handles POST /products
func (h *ProductHandler) Create(c *gin.Context) {
	websiteID, ok := resolvedWebsiteID(c)
	if !ok {
		c.JSON(http.StatusNotFound, response.Error(response.ErrCodeWebsiteNotFound, "Website not found"))
		return
	}

	vendorID, ok := callerVendorID(c, h.vendorService)
	if !ok {
		return
	}

	var req dto.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.BadRequest(err.Error()))
		return
	}

	result, err := h.productService.Create(c.Request.Context(), websiteID, vendorID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, response.Success(result))
}

// GetByID handles GET /products/id/:id
func (h *ProductHandler) GetByID(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, response.BadRequest("Product ID is required"))
		return
	}

	result, err := h.productService.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(result))
}

// GetBySlug handles GET /products/:productSlug - scoped to the resolved
// website so different storefronts can reuse slugs
func (h *ProductHandler) GetBySlug(c *gin.Context) {
	websiteID, ok := resolvedWebsiteID(c)
	if !ok {
		c.JSON(http.StatusNotFound, response.Error(response.ErrCodeWebsiteNotFound, "Website not found"))
		return
	}

	slug := c.Param("productSlug")
	if slug == "" {
		c.JSON(http.StatusBadRequest, response.BadRequest("Product slug is required"))
		return
	}

	result, err := h.productService.GetBySlug(c.Request.Context(), websiteID, slug)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(result))
}

// List handles GET /products - products of the resolved website
func (h *ProductHandler) List(c *gin.Context) {
	websiteID, ok := resolvedWebsiteID(c)
	if !ok {
		c.JSON(http.StatusNotFound, response.Error(response.ErrCodeWebsiteNotFound, "Website not found"))
		return
	}

	var query dto.ListProductsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, response.BadRequest(err.Error()))
		return
	}

	result, err := h.productService.List(c.Request.Context(), websiteID, &query)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(result))
}

// Update handles PUT /products/:id
func (h *ProductHandler) Update(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, response.BadRequest("Product ID is required"))
		return
	}

	var req dto.UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.BadRequest(err.Error()))
		return
	}

	result, err := h.productService.Update(c.Request.Context(), id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(result))
}

// Delete handles DELETE /products/:id
func (h *ProductHandler) Delete(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, response.BadRequest("Product ID is required"))
		return
	}

	if err := h.productService.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(gin.H{"message": "Product deleted successfully"}))
}

// CreateCategory handles POST /categories
func (h *ProductHandler) CreateCategory(c *gin.Context) {
	websiteID, ok := resolvedWebsiteID(c)
	if !ok {
		c.JSON(http.StatusNotFound, response.Error(response.ErrCodeWebsiteNotFound, "Website not found"))
		return
	}

	var req dto.CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.BadRequest(err.Error()))
		return
	}

	result, err := h.productService.CreateCategory(c.Request.Context(), websiteID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, response.Success(result))
}

// ListCategories handles GET /categories
func (h *ProductHandler) ListCategories(c *gin.Context) {
	websiteID, ok := resolvedWebsiteID(c)
	if !ok {
		c.JSON(http.StatusNotFound, response.Error(response.ErrCodeWebsiteNotFound, "Website not found"))
		return
	}

	result, err := h.productService.ListCategories(c.Request.Context(), websiteID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(result))
}

// UpdateCategory handles PUT /categories/:id
func (h *ProductHandler) UpdateCategory(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, response.BadRequest("Category ID is required"))
		return
	}

	var req dto.UpdateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.BadRequest(err.Error()))
		return
	}

	result, err := h.productService.UpdateCategory(c.Request.Context(), id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(result))
}

// DeleteCategory handles DELETE /categories/:id
func (h *ProductHandler) DeleteCategory(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, response.BadRequest("Category ID is required"))
		return
	}

	if err := h.productService.DeleteCategory(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(gin.H{"message": "Category deleted successfully"}))
}
