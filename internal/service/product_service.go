package service

import (
	"context"
	"errors"
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/rnqayush/storefront-platform/internal/domain"
	"github.com/rnqayush/storefront-platform/internal/dto"
	"github.com/rnqayush/storefront-platform/internal/repository"
)

var (
	ErrProductSlugTaken = errors.New("product with this slug already exists on this website")
	ErrCategoryNotFound = errors.New("category not found")
)

// ProductService defines the interface for the e-commerce catalog
type ProductService interface {
	// Create creates a product under the website
	Create(ctx context.Context, websiteID, vendorID string, req *dto.CreateProductRequest) (*dto.ProductResponse, error)
	// GetByID retrieves a product by ID
	GetByID(ctx context.Context, id string) (*dto.ProductResponse, error)
	// GetBySlug retrieves a product by website and slug
	GetBySlug(ctx context.Context, websiteID, slug string) (*dto.ProductResponse, error)
	// List retrieves the products of a website
	List(ctx context.Context, websiteID string, query *dto.ListProductsQuery) (*dto.ListProductsResponse, error)
	// Update updates a product
	Update(ctx context.Context, id string, req *dto.UpdateProductRequest) (*dto.ProductResponse, error)
	// Delete soft deletes a product
	Delete(ctx context.Context, id string) error

	// CreateCategory creates a category under the website
	CreateCategory(ctx context.Context, websiteID string, req *dto.CreateCategoryRequest) (*dto.CategoryResponse, error)
	// ListCategories retrieves the categories of a website
	ListCategories(ctx context.Context, websiteID string) ([]dto.CategoryResponse, error)
	// UpdateCategory updates a category
	UpdateCategory(ctx context.Context, id string, req *dto.UpdateCategoryRequest) (*dto.CategoryResponse, error)
	// DeleteCategory soft deletes a category
	DeleteCategory(ctx context.Context, id string) error
}

// productService implements ProductService
type productService struct {
	productRepo repository.ProductRepository
}

// NewProductService creates a new ProductService
func NewProductService(productRepo repository.ProductRepository) ProductService {
	return &productService{productRepo: productRepo}
}

// Create creates a product under the website
func (s *productService) Create(ctx context.Context, websiteID, vendorID string, req *dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if err := domain.ValidateSlug(req.Slug); err != nil {
		return nil, err
	}

	existing, err := s.productRepo.GetBySlug(ctx, websiteID, req.Slug)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrProductSlugTaken
	}

	now := time.Now()
	product := &domain.Product{
		ID:          uuid.New().String(),
		WebsiteID:   websiteID,
		VendorID:    vendorID,
		CategoryID:  req.CategoryID,
		Name:        req.Name,
		Slug:        req.Slug,
		Description: req.Description,
		Price:       req.Price,
		SalePrice:   req.SalePrice,
		Stock:       req.Stock,
		SKU:         req.SKU,
		Images:      req.Images,
		IsActive:    true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.productRepo.Create(ctx, product); err != nil {
		return nil, err
	}

	return toProductResponse(product), nil
}

// GetByID retrieves a product by ID
func (s *productService) GetByID(ctx context.Context, id string) (*dto.ProductResponse, error) {
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrProductNotFound
	}
	return toProductResponse(product), nil
}

// GetBySlug retrieves a product by website and slug
func (s *productService) GetBySlug(ctx context.Context, websiteID, slug string) (*dto.ProductResponse, error) {
	product, err := s.productRepo.GetBySlug(ctx, websiteID, slug)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrProductNotFound
	}
	return toProductResponse(product), nil
}

// List retrieves the products of a website
func (s *productService) List(ctx context.Context, websiteID string, query *dto.ListProductsQuery) (*dto.ListProductsResponse, error) {
	query.SetDefaults()

	filter := repository.ProductFilter{
		WebsiteID:  websiteID,
		CategoryID: query.CategoryID,
		IsActive:   query.IsActive,
		Search:     query.Search,
	}

	products, totalCount, err := s.productRepo.List(ctx, query.Page, query.Limit, filter)
	if err != nil {
		return nil, err
	}

	productResponses := make([]dto.ProductResponse, 0, len(products))
	for _, product := range products {
		productResponses = append(productResponses, *toProductResponse(product))
	}

	totalPages := int(math.Ceil(float64(totalCount) / float64(query.Limit)))

	return &dto.ListProductsResponse{
		Products:   productResponses,
		TotalCount: totalCount,
		Page:       query.Page,
		Limit:      query.Limit,
		TotalPages: totalPages,
	}, nil
}

// Update updates a product
func (s *productService) Update(ctx context.Context, id string, req *dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	if valid, errMsg := req.Validate(); !valid {
		return nil, errors.New(errMsg)
	}

	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrProductNotFound
	}

	if req.CategoryID != nil {
		product.CategoryID = *req.CategoryID
	}
	if req.Name != nil {
		product.Name = *req.Name
	}
	if req.Description != nil {
		product.Description = *req.Description
	}
	if req.Price != nil {
		product.Price = *req.Price
	}
	if req.SalePrice != nil {
		product.SalePrice = req.SalePrice
	}
	if req.Stock != nil {
		product.Stock = *req.Stock
	}
	if req.SKU != nil {
		product.SKU = *req.SKU
	}
	if req.Images != nil {
		product.Images = *req.Images
	}
	if req.IsActive != nil {
		product.IsActive = *req.IsActive
	}

	if err := s.productRepo.Update(ctx, product); err != nil {
		return nil, err
	}

	return toProductResponse(product), nil
}

// Delete soft deletes a product
func (s *productService) Delete(ctx context.Context, id string) error {
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if product == nil {
		return domain.ErrProductNotFound
	}
	return s.productRepo.SoftDelete(ctx, id)
}

// CreateCategory creates a category under the website
func (s *productService) CreateCategory(ctx context.Context, websiteID string, req *dto.CreateCategoryRequest) (*dto.CategoryResponse, error) {
	if err := domain.ValidateSlug(req.Slug); err != nil {
		return nil, err
	}

	now := time.Now()
	category := &domain.Category{
		ID:        uuid.New().String(),
		WebsiteID: websiteID,
		Name:      req.Name,
		Slug:      req.Slug,
		ParentID:  req.ParentID,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.productRepo.CreateCategory(ctx, category); err != nil {
		return nil, err
	}

	return toCategoryResponse(category), nil
}

// ListCategories retrieves the categories of a website
func (s *productService) ListCategories(ctx context.Context, websiteID string) ([]dto.CategoryResponse, error) {
	categories, err := s.productRepo.ListCategories(ctx, websiteID)
	if err != nil {
		return nil, err
	}

	categoryResponses := make([]dto.CategoryResponse, 0, len(categories))
	for _, category := range categories {
		categoryResponses = append(categoryResponses, *toCategoryResponse(category))
	}
	return categoryResponses, nil
}

// UpdateCategory updates a category
func (s *productService) UpdateCategory(ctx context.Context, id string, req *dto.UpdateCategoryRequest) (*dto.CategoryResponse, error) {
	category, err := s.productRepo.GetCategoryByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, ErrCategoryNotFound
	}

	if req.Name != nil {
		category.Name = *req.Name
	}
	if req.ParentID != nil {
		category.ParentID = *req.ParentID
	}

	if err := s.productRepo.UpdateCategory(ctx, category); err != nil {
		return nil, err
	}

	return toCategoryResponse(category), nil
}

// DeleteCategory soft deletes a category
func (s *productService) DeleteCategory(ctx context.Context, id string) error {
	category, err := s.productRepo.GetCategoryByID(ctx, id)
	if err != nil {
		return err
	}
	if category == nil {
		return ErrCategoryNotFound
	}
	return s.productRepo.SoftDeleteCategory(ctx, id)
}

// toProductResponse converts domain.Product to dto.ProductResponse
func toProductResponse(product *domain.Product) *dto.ProductResponse {
	return &dto.ProductResponse{
		ID:             product.ID,
		WebsiteID:      product.WebsiteID,
		VendorID:       product.VendorID,
		CategoryID:     product.CategoryID,
		Name:           product.Name,
		Slug:           product.Slug,
		Description:    product.Description,
		Price:          product.Price,
		SalePrice:      product.SalePrice,
		EffectivePrice: product.EffectivePrice(),
		Stock:          product.Stock,
		SKU:            product.SKU,
		Images:         product.Images,
		IsActive:       product.IsActive,
		CreatedAt:      product.CreatedAt.Format(time.RFC3339),
		UpdatedAt:      product.UpdatedAt.Format(time.RFC3339),
	}
}

// toCategoryResponse converts domain.Category to dto.CategoryResponse
func toCategoryResponse(category *domain.Category) *dto.CategoryResponse {
	return &dto.CategoryResponse{
		ID:        category.ID,
		WebsiteID: category.WebsiteID,
		Name:      category.Name,
		Slug:      category.Slug,
		ParentID:  category.ParentID,
		CreatedAt: category.CreatedAt.Format(time.RFC3339),
		UpdatedAt: category.UpdatedAt.Format(time.RFC3339),
	}
}
