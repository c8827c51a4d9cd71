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

var ErrVendorProfileExists = errors.New("user already has a vendor profile for this website")

// VendorService defines the interface for vendor profile operations
type VendorService interface {
	// Create creates a vendor profile for the user
	Create(ctx context.Context, userID string, req *dto.CreateVendorRequest) (*dto.VendorResponse, error)
	// GetByID retrieves a vendor by ID
	GetByID(ctx context.Context, id string) (*dto.VendorResponse, error)
	// GetByUserID retrieves the vendor profile owned by a user
	GetByUserID(ctx context.Context, userID string) (*dto.VendorResponse, error)
	// List retrieves the vendors of a website
	List(ctx context.Context, websiteID string, query *dto.ListVendorsQuery) (*dto.ListVendorsResponse, error)
	// Update updates a vendor
	Update(ctx context.Context, id string, req *dto.UpdateVendorRequest) (*dto.VendorResponse, error)
	// Delete soft deletes a vendor
	Delete(ctx context.Context, id string) error
}

// vendorService implements VendorService
type vendorService struct {
	vendorRepo  repository.VendorRepository
	websiteRepo repository.WebsiteRepository
}

// NewVendorService creates a new VendorService
func NewVendorService(vendorRepo repository.VendorRepository, websiteRepo repository.WebsiteRepository) VendorService {
	return &vendorService{
		vendorRepo:  vendorRepo,
		websiteRepo: websiteRepo,
	}
}

// Create creates a vendor profile for the user
func (s *vendorService) Create(ctx context.Context, userID string, req *dto.CreateVendorRequest) (*dto.VendorResponse, error) {
	website, err := s.websiteRepo.GetByID(ctx, req.WebsiteID)
	if err != nil {
		return nil, err
	}
	if website == nil {
		return nil, domain.ErrWebsiteNotFound
	}

	existing, err := s.vendorRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if existing != nil && existing.WebsiteID == req.WebsiteID {
		return nil, ErrVendorProfileExists
	}

	now := time.Now()
	vendor := &domain.Vendor{
		ID:           uuid.New().String(),
		UserID:       userID,
		WebsiteID:    req.WebsiteID,
		BusinessName: req.BusinessName,
		Description:  req.Description,
		Category:     req.Category,
		ContactEmail: req.ContactEmail,
		ContactPhone: req.ContactPhone,
		Address:      req.Address,
		City:         req.City,
		Country:      req.Country,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.vendorRepo.Create(ctx, vendor); err != nil {
		return nil, err
	}

	return toVendorResponse(vendor), nil
}

// GetByID retrieves a vendor by ID
func (s *vendorService) GetByID(ctx context.Context, id string) (*dto.VendorResponse, error) {
	vendor, err := s.vendorRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if vendor == nil {
		return nil, domain.ErrVendorNotFound
	}
	return toVendorResponse(vendor), nil
}

// GetByUserID retrieves the vendor profile owned by a user
func (s *vendorService) GetByUserID(ctx context.Context, userID string) (*dto.VendorResponse, error) {
	vendor, err := s.vendorRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if vendor == nil {
		return nil, domain.ErrVendorNotFound
	}
	return toVendorResponse(vendor), nil
}

// List retrieves the vendors of a website
func (s *vendorService) List(ctx context.Context, websiteID string, query *dto.ListVendorsQuery) (*dto.ListVendorsResponse, error) {
	query.SetDefaults()

	vendors, totalCount, err := s.vendorRepo.List(ctx, query.Page, query.Limit, websiteID, query.Category, query.Search)
	if err != nil {
		return nil, err
	}

	vendorResponses := make([]dto.VendorResponse, 0, len(vendors))
	for _, vendor := range vendors {
		vendorResponses = append(vendorResponses, *toVendorResponse(vendor))
	}

	totalPages := int(math.Ceil(float64(totalCount) / float64(query.Limit)))

	return &dto.ListVendorsResponse{
		Vendors:    vendorResponses,
		TotalCount: totalCount,
		Page:       query.Page,
		Limit:      query.Limit,
		TotalPages: totalPages,
	}, nil
}

// Update updates a vendor
func (s *vendorService) Update(ctx context.Context, id string, req *dto.UpdateVendorRequest) (*dto.VendorResponse, error) {
	if valid, errMsg := req.Validate(); !valid {
		return nil, errors.New(errMsg)
	}

	vendor, err := s.vendorRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if vendor == nil {
		return nil, domain.ErrVendorNotFound
	}

	if req.BusinessName != nil {
		vendor.BusinessName = *req.BusinessName
	}
	if req.Description != nil {
		vendor.Description = *req.Description
	}
	if req.Category != nil {
		vendor.Category = *req.Category
	}
	if req.ContactEmail != nil {
		vendor.ContactEmail = *req.ContactEmail
	}
	if req.ContactPhone != nil {
		vendor.ContactPhone = *req.ContactPhone
	}
	if req.Address != nil {
		vendor.Address = *req.Address
	}
	if req.City != nil {
		vendor.City = *req.City
	}
	if req.Country != nil {
		vendor.Country = *req.Country
	}
	if req.IsActive != nil {
		vendor.IsActive = *req.IsActive
	}

	if err := s.vendorRepo.Update(ctx, vendor); err != nil {
		return nil, err
	}

	return toVendorResponse(vendor), nil
}

// Delete soft deletes a vendor
func (s *vendorService) Delete(ctx context.Context, id string) error {
	vendor, err := s.vendorRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if vendor == nil {
		return domain.ErrVendorNotFound
	}
	return s.vendorRepo.SoftDelete(ctx, id)
}

// toVendorResponse converts domain.Vendor to dto.VendorResponse
func toVendorResponse(vendor *domain.Vendor) *dto.VendorResponse {
	return &dto.VendorResponse{
		ID:            vendor.ID,
		UserID:        vendor.UserID,
		WebsiteID:     vendor.WebsiteID,
		BusinessName:  vendor.BusinessName,
		Description:   vendor.Description,
		Category:      vendor.Category,
		ContactEmail:  vendor.ContactEmail,
		ContactPhone:  vendor.ContactPhone,
		Address:       vendor.Address,
		City:          vendor.City,
		Country:       vendor.Country,
		Rating:        vendor.Rating,
		ReviewCount:   vendor.ReviewCount,
		TotalBookings: vendor.TotalBookings,
		IsVerified:    vendor.IsVerified,
		IsActive:      vendor.IsActive,
		CreatedAt:     vendor.CreatedAt.Format(time.RFC3339),
		UpdatedAt:     vendor.UpdatedAt.Format(time.RFC3339),
	}
}
