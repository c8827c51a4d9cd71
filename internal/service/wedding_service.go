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
	ErrWeddingVendorNotFound = errors.New("wedding vendor not found")
	ErrWeddingEventNotFound  = errors.New("wedding event not found")
	ErrNotEventOwner         = errors.New("wedding event belongs to another customer")
)

// WeddingService defines the interface for the wedding vertical
type WeddingService interface {
	// CreateVendor creates a wedding vendor listing under the website
	CreateVendor(ctx context.Context, websiteID, vendorID string, req *dto.CreateWeddingVendorRequest) (*dto.WeddingVendorResponse, error)
	// GetVendorByID retrieves a wedding vendor by ID
	GetVendorByID(ctx context.Context, id string) (*dto.WeddingVendorResponse, error)
	// ListVendors retrieves the wedding vendors of a website
	ListVendors(ctx context.Context, websiteID string, query *dto.ListWeddingVendorsQuery) (*dto.ListWeddingVendorsResponse, error)
	// UpdateVendor updates a wedding vendor listing
	UpdateVendor(ctx context.Context, id string, req *dto.UpdateWeddingVendorRequest) (*dto.WeddingVendorResponse, error)
	// DeleteVendor soft deletes a wedding vendor listing
	DeleteVendor(ctx context.Context, id string) error

	// CreateEvent creates a wedding event for the customer
	CreateEvent(ctx context.Context, websiteID, customerID string, req *dto.CreateWeddingEventRequest) (*dto.WeddingEventResponse, error)
	// GetEventByID retrieves a wedding event, enforcing customer access
	GetEventByID(ctx context.Context, id string, actor Actor) (*dto.WeddingEventResponse, error)
	// ListEvents retrieves wedding events scoped to the caller
	ListEvents(ctx context.Context, websiteID string, actor Actor, page, limit int) (*dto.ListWeddingEventsResponse, error)
	// UpdateEvent updates a wedding event, enforcing customer access
	UpdateEvent(ctx context.Context, id string, actor Actor, req *dto.UpdateWeddingEventRequest) (*dto.WeddingEventResponse, error)
	// DeleteEvent soft deletes a wedding event, enforcing customer access
	DeleteEvent(ctx context.Context, id string, actor Actor) error
}

// weddingService implements WeddingService
type weddingService struct {
	weddingRepo repository.WeddingRepository
}

// NewWeddingService creates a new WeddingService
func NewWeddingService(weddingRepo repository.WeddingRepository) WeddingService {
	return &weddingService{weddingRepo: weddingRepo}
}

// CreateVendor creates a wedding vendor listing under the website
func (s *weddingService) CreateVendor(ctx context.Context, websiteID, vendorID string, req *dto.CreateWeddingVendorRequest) (*dto.WeddingVendorResponse, error) {
	now := time.Now()
	vendor := &domain.WeddingVendor{
		ID:          uuid.New().String(),
		WebsiteID:   websiteID,
		VendorID:    vendorID,
		Name:        req.Name,
		ServiceType: req.ServiceType,
		Description: req.Description,
		PriceFrom:   req.PriceFrom,
		City:        req.City,
		Images:      req.Images,
		IsActive:    true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.weddingRepo.CreateVendor(ctx, vendor); err != nil {
		return nil, err
	}

	return toWeddingVendorResponse(vendor), nil
}

// GetVendorByID retrieves a wedding vendor by ID
func (s *weddingService) GetVendorByID(ctx context.Context, id string) (*dto.WeddingVendorResponse, error) {
	vendor, err := s.weddingRepo.GetVendorByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if vendor == nil {
		return nil, ErrWeddingVendorNotFound
	}
	return toWeddingVendorResponse(vendor), nil
}

// ListVendors retrieves the wedding vendors of a website
func (s *weddingService) ListVendors(ctx context.Context, websiteID string, query *dto.ListWeddingVendorsQuery) (*dto.ListWeddingVendorsResponse, error) {
	query.SetDefaults()

	vendors, totalCount, err := s.weddingRepo.ListVendors(ctx, query.Page, query.Limit, websiteID, query.ServiceType, query.City)
	if err != nil {
		return nil, err
	}

	vendorResponses := make([]dto.WeddingVendorResponse, 0, len(vendors))
	for _, vendor := range vendors {
		vendorResponses = append(vendorResponses, *toWeddingVendorResponse(vendor))
	}

	totalPages := int(math.Ceil(float64(totalCount) / float64(query.Limit)))

	return &dto.ListWeddingVendorsResponse{
		Vendors:    vendorResponses,
		TotalCount: totalCount,
		Page:       query.Page,
		Limit:      query.Limit,
		TotalPages: totalPages,
	}, nil
}

// UpdateVendor updates a wedding vendor listing
func (s *weddingService) UpdateVendor(ctx context.Context, id string, req *dto.UpdateWeddingVendorRequest) (*dto.WeddingVendorResponse, error) {
	vendor, err := s.weddingRepo.GetVendorByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if vendor == nil {
		return nil, ErrWeddingVendorNotFound
	}

	if req.Name != nil {
		vendor.Name = *req.Name
	}
	if req.ServiceType != nil {
		vendor.ServiceType = *req.ServiceType
	}
	if req.Description != nil {
		vendor.Description = *req.Description
	}
	if req.PriceFrom != nil {
		vendor.PriceFrom = *req.PriceFrom
	}
	if req.City != nil {
		vendor.City = *req.City
	}
	if req.Images != nil {
		vendor.Images = *req.Images
	}
	if req.IsActive != nil {
		vendor.IsActive = *req.IsActive
	}

	if err := s.weddingRepo.UpdateVendor(ctx, vendor); err != nil {
		return nil, err
	}

	return toWeddingVendorResponse(vendor), nil
}

// DeleteVendor soft deletes a wedding vendor listing
func (s *weddingService) DeleteVendor(ctx context.Context, id string) error {
	vendor, err := s.weddingRepo.GetVendorByID(ctx, id)
	if err != nil {
		return err
	}
	if vendor == nil {
		return ErrWeddingVendorNotFound
	}
	return s.weddingRepo.SoftDeleteVendor(ctx, id)
}

// CreateEvent creates a wedding event for the customer
func (s *weddingService) CreateEvent(ctx context.Context, websiteID, customerID string, req *dto.CreateWeddingEventRequest) (*dto.WeddingEventResponse, error) {
	eventDate, err := time.Parse(time.RFC3339, req.EventDate)
	if err != nil {
		return nil, errors.New("event_date must be RFC3339")
	}

	now := time.Now()
	event := &domain.WeddingEvent{
		ID:         uuid.New().String(),
		WebsiteID:  websiteID,
		CustomerID: customerID,
		Title:      req.Title,
		EventDate:  eventDate,
		Location:   req.Location,
		GuestCount: req.GuestCount,
		Budget:     req.Budget,
		Notes:      req.Notes,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := s.weddingRepo.CreateEvent(ctx, event); err != nil {
		return nil, err
	}

	return toWeddingEventResponse(event), nil
}

// loadEvent fetches an event and enforces the caller's access to it
func (s *weddingService) loadEvent(ctx context.Context, id string, actor Actor) (*domain.WeddingEvent, error) {
	event, err := s.weddingRepo.GetEventByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if event == nil {
		return nil, ErrWeddingEventNotFound
	}
	if actor.Role == domain.RoleCustomer && event.CustomerID != actor.UserID {
		return nil, ErrNotEventOwner
	}
	return event, nil
}

// GetEventByID retrieves a wedding event, enforcing customer access
func (s *weddingService) GetEventByID(ctx context.Context, id string, actor Actor) (*dto.WeddingEventResponse, error) {
	event, err := s.loadEvent(ctx, id, actor)
	if err != nil {
		return nil, err
	}
	return toWeddingEventResponse(event), nil
}

// ListEvents retrieves wedding events scoped to the caller
func (s *weddingService) ListEvents(ctx context.Context, websiteID string, actor Actor, page, limit int) (*dto.ListWeddingEventsResponse, error) {
	if page == 0 {
		page = 1
	}
	if limit == 0 {
		limit = 20
	}

	customerID := ""
	if actor.Role == domain.RoleCustomer {
		customerID = actor.UserID
	}

	events, totalCount, err := s.weddingRepo.ListEvents(ctx, page, limit, websiteID, customerID)
	if err != nil {
		return nil, err
	}

	eventResponses := make([]dto.WeddingEventResponse, 0, len(events))
	for _, event := range events {
		eventResponses = append(eventResponses, *toWeddingEventResponse(event))
	}

	totalPages := int(math.Ceil(float64(totalCount) / float64(limit)))

	return &dto.ListWeddingEventsResponse{
		Events:     eventResponses,
		TotalCount: totalCount,
		Page:       page,
		Limit:      limit,
		TotalPages: totalPages,
	}, nil
}

// UpdateEvent updates a wedding event, enforcing customer access
func (s *weddingService) UpdateEvent(ctx context.Context, id string, actor Actor, req *dto.UpdateWeddingEventRequest) (*dto.WeddingEventResponse, error) {
	event, err := s.loadEvent(ctx, id, actor)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		event.Title = *req.Title
	}
	if req.EventDate != nil {
		eventDate, err := time.Parse(time.RFC3339, *req.EventDate)
		if err != nil {
			return nil, errors.New("event_date must be RFC3339")
		}
		event.EventDate = eventDate
	}
	if req.Location != nil {
		event.Location = *req.Location
	}
	if req.GuestCount != nil {
		event.GuestCount = *req.GuestCount
	}
	if req.Budget != nil {
		event.Budget = *req.Budget
	}
	if req.Notes != nil {
		event.Notes = *req.Notes
	}

	if err := s.weddingRepo.UpdateEvent(ctx, event); err != nil {
		return nil, err
	}

	return toWeddingEventResponse(event), nil
}

// DeleteEvent soft deletes a wedding event, enforcing customer access
func (s *weddingService) DeleteEvent(ctx context.Context, id string, actor Actor) error {
	if _, err := s.loadEvent(ctx, id, actor); err != nil {
		return err
	}
	return s.weddingRepo.SoftDeleteEvent(ctx, id)
}

// toWeddingVendorResponse converts domain.WeddingVendor to dto.WeddingVendorResponse
func toWeddingVendorResponse(vendor *domain.WeddingVendor) *dto.WeddingVendorResponse {
	return &dto.WeddingVendorResponse{
		ID:          vendor.ID,
		WebsiteID:   vendor.WebsiteID,
		VendorID:    vendor.VendorID,
		Name:        vendor.Name,
		ServiceType: vendor.ServiceType,
		Description: vendor.Description,
		PriceFrom:   vendor.PriceFrom,
		City:        vendor.City,
		Images:      vendor.Images,
		IsActive:    vendor.IsActive,
		CreatedAt:   vendor.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   vendor.UpdatedAt.Format(time.RFC3339),
	}
}

// toWeddingEventResponse converts domain.WeddingEvent to dto.WeddingEventResponse
func toWeddingEventResponse(event *domain.WeddingEvent) *dto.WeddingEventResponse {
	return &dto.WeddingEventResponse{
		ID:         event.ID,
		WebsiteID:  event.WebsiteID,
		CustomerID: event.CustomerID,
		Title:      event.Title,
		EventDate:  event.EventDate.Format(time.RFC3339),
		Location:   event.Location,
		GuestCount: event.GuestCount,
		Budget:     event.Budget,
		Notes:      event.Notes,
		CreatedAt:  event.CreatedAt.Format(time.RFC3339),
		UpdatedAt:  event.UpdatedAt.Format(time.RFC3339),
	}
}
