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

// VehicleService defines the interface for the vehicle marketplace catalog
type VehicleService interface {
	// Create creates a vehicle listing under the website
	Create(ctx context.Context, websiteID, vendorID string, req *dto.CreateVehicleRequest) (*dto.VehicleResponse, error)
	// GetByID retrieves a vehicle by ID
	GetByID(ctx context.Context, id string) (*dto.VehicleResponse, error)
	// List retrieves the vehicles of a website
	List(ctx context.Context, websiteID string, query *dto.ListVehiclesQuery) (*dto.ListVehiclesResponse, error)
	// Update updates a vehicle listing
	Update(ctx context.Context, id string, req *dto.UpdateVehicleRequest) (*dto.VehicleResponse, error)
	// Delete soft deletes a vehicle listing
	Delete(ctx context.Context, id string) error
}

// vehicleService implements VehicleService
type vehicleService struct {
	vehicleRepo repository.VehicleRepository
}

// NewVehicleService creates a new VehicleService
func NewVehicleService(vehicleRepo repository.VehicleRepository) VehicleService {
	return &vehicleService{vehicleRepo: vehicleRepo}
}

// Create creates a vehicle listing under the website
func (s *vehicleService) Create(ctx context.Context, websiteID, vendorID string, req *dto.CreateVehicleRequest) (*dto.VehicleResponse, error) {
	now := time.Now()
	vehicle := &domain.Vehicle{
		ID:           uuid.New().String(),
		WebsiteID:    websiteID,
		VendorID:     vendorID,
		Make:         req.Make,
		Model:        req.Model,
		Year:         req.Year,
		Price:        req.Price,
		Mileage:      req.Mileage,
		FuelType:     req.FuelType,
		Transmission: req.Transmission,
		Color:        req.Color,
		Images:       req.Images,
		Status:       domain.VehicleStatusAvailable,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.vehicleRepo.Create(ctx, vehicle); err != nil {
		return nil, err
	}

	return toVehicleResponse(vehicle), nil
}

// GetByID retrieves a vehicle by ID
func (s *vehicleService) GetByID(ctx context.Context, id string) (*dto.VehicleResponse, error) {
	vehicle, err := s.vehicleRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if vehicle == nil {
		return nil, domain.ErrVehicleNotFound
	}
	return toVehicleResponse(vehicle), nil
}

// List retrieves the vehicles of a website
func (s *vehicleService) List(ctx context.Context, websiteID string, query *dto.ListVehiclesQuery) (*dto.ListVehiclesResponse, error) {
	query.SetDefaults()

	filter := repository.VehicleFilter{
		WebsiteID: websiteID,
		Make:      query.Make,
		Status:    domain.VehicleStatus(query.Status),
		MinYear:   query.MinYear,
		MaxPrice:  query.MaxPrice,
	}

	vehicles, totalCount, err := s.vehicleRepo.List(ctx, query.Page, query.Limit, filter)
	if err != nil {
		return nil, err
	}

	vehicleResponses := make([]dto.VehicleResponse, 0, len(vehicles))
	for _, vehicle := range vehicles {
		vehicleResponses = append(vehicleResponses, *toVehicleResponse(vehicle))
	}

	totalPages := int(math.Ceil(float64(totalCount) / float64(query.Limit)))

	return &dto.ListVehiclesResponse{
		Vehicles:   vehicleResponses,
		TotalCount: totalCount,
		Page:       query.Page,
		Limit:      query.Limit,
		TotalPages: totalPages,
	}, nil
}

// Update updates a vehicle listing
func (s *vehicleService) Update(ctx context.Context, id string, req *dto.UpdateVehicleRequest) (*dto.VehicleResponse, error) {
	if valid, errMsg := req.Validate(); !valid {
		return nil, errors.New(errMsg)
	}

	vehicle, err := s.vehicleRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if vehicle == nil {
		return nil, domain.ErrVehicleNotFound
	}

	if req.Make != nil {
		vehicle.Make = *req.Make
	}
	if req.Model != nil {
		vehicle.Model = *req.Model
	}
	if req.Year != nil {
		vehicle.Year = *req.Year
	}
	if req.Price != nil {
		vehicle.Price = *req.Price
	}
	if req.Mileage != nil {
		vehicle.Mileage = *req.Mileage
	}
	if req.FuelType != nil {
		vehicle.FuelType = *req.FuelType
	}
	if req.Transmission != nil {
		vehicle.Transmission = *req.Transmission
	}
	if req.Color != nil {
		vehicle.Color = *req.Color
	}
	if req.Images != nil {
		vehicle.Images = *req.Images
	}
	if req.Status != nil {
		vehicle.Status = domain.VehicleStatus(*req.Status)
	}

	if err := s.vehicleRepo.Update(ctx, vehicle); err != nil {
		return nil, err
	}

	return toVehicleResponse(vehicle), nil
}

// Delete soft deletes a vehicle listing
func (s *vehicleService) Delete(ctx context.Context, id string) error {
	vehicle, err := s.vehicleRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if vehicle == nil {
		return domain.ErrVehicleNotFound
	}
	return s.vehicleRepo.SoftDelete(ctx, id)
}

// toVehicleResponse converts domain.Vehicle to dto.VehicleResponse
func toVehicleResponse(vehicle *domain.Vehicle) *dto.VehicleResponse {
	return &dto.VehicleResponse{
		ID:           vehicle.ID,
		WebsiteID:    vehicle.WebsiteID,
		VendorID:     vehicle.VendorID,
		Make:         vehicle.Make,
		Model:        vehicle.Model,
		Year:         vehicle.Year,
		Price:        vehicle.Price,
		Mileage:      vehicle.Mileage,
		FuelType:     vehicle.FuelType,
		Transmission: vehicle.Transmission,
		Color:        vehicle.Color,
		Images:       vehicle.Images,
		Status:       string(vehicle.Status),
		CreatedAt:    vehicle.CreatedAt.Format(time.RFC3339),
		UpdatedAt:    vehicle.UpdatedAt.Format(time.RFC3339),
	}
}
