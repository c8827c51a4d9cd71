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

var ErrBusinessServiceNotFound = errors.New("business service not found")

// BusinessService defines the interface for the business-services vertical
type BusinessService interface {
	// Create creates a business service under the website
	Create(ctx context.Context, websiteID, vendorID string, req *dto.CreateBusinessServiceRequest) (*dto.BusinessServiceResponse, error)
	// GetByID retrieves a business service by ID
	GetByID(ctx context.Context, id string) (*dto.BusinessServiceResponse, error)
	// List retrieves the business services of a website
	List(ctx context.Context, websiteID string, query *dto.ListBusinessServicesQuery) (*dto.ListBusinessServicesResponse, error)
	// Update updates a business service
	Update(ctx context.Context, id string, req *dto.UpdateBusinessServiceRequest) (*dto.BusinessServiceResponse, error)
	// Delete soft deletes a business service
	Delete(ctx context.Context, id string) error
}

// businessService implements BusinessService
type businessService struct {
	serviceRepo repository.BusinessServiceRepository
}

// NewBusinessService creates a new BusinessService
func NewBusinessService(serviceRepo repository.BusinessServiceRepository) BusinessService {
	return &businessService{serviceRepo: serviceRepo}
}

// Create creates a business service under the website
func (s *businessService) Create(ctx context.Context, websiteID, vendorID string, req *dto.CreateBusinessServiceRequest) (*dto.BusinessServiceResponse, error) {
	now := time.Now()
	service := &domain.BusinessService{
		ID:          uuid.New().String(),
		WebsiteID:   websiteID,
		VendorID:    vendorID,
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		DurationMin: req.DurationMin,
		IsActive:    true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.serviceRepo.Create(ctx, service); err != nil {
		return nil, err
	}

	return toBusinessServiceResponse(service), nil
}

// GetByID retrieves a business service by ID
func (s *businessService) GetByID(ctx context.Context, id string) (*dto.BusinessServiceResponse, error) {
	service, err := s.serviceRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if service == nil {
		return nil, ErrBusinessServiceNotFound
	}
	return toBusinessServiceResponse(service), nil
}

// List retrieves the business services of a website
func (s *businessService) List(ctx context.Context, websiteID string, query *dto.ListBusinessServicesQuery) (*dto.ListBusinessServicesResponse, error) {
	query.SetDefaults()

	services, totalCount, err := s.serviceRepo.List(ctx, query.Page, query.Limit, websiteID, query.IsActive)
	if err != nil {
		return nil, err
	}

	serviceResponses := make([]dto.BusinessServiceResponse, 0, len(services))
	for _, service := range services {
		serviceResponses = append(serviceResponses, *toBusinessServiceResponse(service))
	}

	totalPages := int(math.Ceil(float64(totalCount) / float64(query.Limit)))

	return &dto.ListBusinessServicesResponse{
		Services:   serviceResponses,
		TotalCount: totalCount,
		Page:       query.Page,
		Limit:      query.Limit,
		TotalPages: totalPages,
	}, nil
}

// Update updates a business service
func (s *businessService) Update(ctx context.Context, id string, req *dto.UpdateBusinessServiceRequest) (*dto.BusinessServiceResponse, error) {
	service, err := s.serviceRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if service == nil {
		return nil, ErrBusinessServiceNotFound
	}

	if req.Name != nil {
		service.Name = *req.Name
	}
	if req.Description != nil {
		service.Description = *req.Description
	}
	if req.Price != nil {
		service.Price = *req.Price
	}
	if req.DurationMin != nil {
		service.DurationMin = *req.DurationMin
	}
	if req.IsActive != nil {
		service.IsActive = *req.IsActive
	}

	if err := s.serviceRepo.Update(ctx, service); err != nil {
		return nil, err
	}

	return toBusinessServiceResponse(service), nil
}

// Delete soft deletes a business service
func (s *businessService) Delete(ctx context.Context, id string) error {
	service, err := s.serviceRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if service == nil {
		return ErrBusinessServiceNotFound
	}
	return s.serviceRepo.SoftDelete(ctx, id)
}

// toBusinessServiceResponse converts domain.BusinessService to dto.BusinessServiceResponse
func toBusinessServiceResponse(service *domain.BusinessService) *dto.BusinessServiceResponse {
	return &dto.BusinessServiceResponse{
		ID:          service.ID,
		WebsiteID:   service.WebsiteID,
		VendorID:    service.VendorID,
		Name:        service.Name,
		Description: service.Description,
		Price:       service.Price,
		DurationMin: service.DurationMin,
		IsActive:    service.IsActive,
		CreatedAt:   service.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   service.UpdatedAt.Format(time.RFC3339),
	}
}
