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

var ErrRoomNotFound = errors.New("room not found")

// HotelService defines the interface for hotel and room catalog operations
type HotelService interface {
	// Create creates a hotel listing under the website
	Create(ctx context.Context, websiteID, vendorID string, req *dto.CreateHotelRequest) (*dto.HotelResponse, error)
	// GetByID retrieves a hotel by ID
	GetByID(ctx context.Context, id string) (*dto.HotelResponse, error)
	// List retrieves the hotels of a website
	List(ctx context.Context, websiteID string, query *dto.ListHotelsQuery) (*dto.ListHotelsResponse, error)
	// Update updates a hotel
	Update(ctx context.Context, id string, req *dto.UpdateHotelRequest) (*dto.HotelResponse, error)
	// Delete soft deletes a hotel
	Delete(ctx context.Context, id string) error

	// CreateRoom creates a room under a hotel
	CreateRoom(ctx context.Context, hotelID string, req *dto.CreateRoomRequest) (*dto.RoomResponse, error)
	// ListRooms retrieves the rooms of a hotel
	ListRooms(ctx context.Context, hotelID string) ([]dto.RoomResponse, error)
	// UpdateRoom updates a room
	UpdateRoom(ctx context.Context, roomID string, req *dto.UpdateRoomRequest) (*dto.RoomResponse, error)
	// DeleteRoom soft deletes a room
	DeleteRoom(ctx context.Context, roomID string) error
}

// hotelService implements HotelService
type hotelService struct {
	hotelRepo repository.HotelRepository
}

// NewHotelService creates a new HotelService
func NewHotelService(hotelRepo repository.HotelRepository) HotelService {
	return &hotelService{hotelRepo: hotelRepo}
}

// Create creates a hotel listing under the website
func (s *hotelService) Create(ctx context.Context, websiteID, vendorID string, req *dto.CreateHotelRequest) (*dto.HotelResponse, error) {
	now := time.Now()
	hotel := &domain.Hotel{
		ID:          uuid.New().String(),
		WebsiteID:   websiteID,
		VendorID:    vendorID,
		Name:        req.Name,
		Description: req.Description,
		Address:     req.Address,
		City:        req.City,
		Country:     req.Country,
		StarRating:  req.StarRating,
		Amenities:   req.Amenities,
		Images:      req.Images,
		IsActive:    true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.hotelRepo.Create(ctx, hotel); err != nil {
		return nil, err
	}

	return toHotelResponse(hotel), nil
}

// GetByID retrieves a hotel by ID
func (s *hotelService) GetByID(ctx context.Context, id string) (*dto.HotelResponse, error) {
	hotel, err := s.hotelRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if hotel == nil {
		return nil, domain.ErrHotelNotFound
	}
	return toHotelResponse(hotel), nil
}

// List retrieves the hotels of a website
func (s *hotelService) List(ctx context.Context, websiteID string, query *dto.ListHotelsQuery) (*dto.ListHotelsResponse, error) {
	query.SetDefaults()

	hotels, totalCount, err := s.hotelRepo.List(ctx, query.Page, query.Limit, websiteID, query.City, query.Search)
	if err != nil {
		return nil, err
	}

	hotelResponses := make([]dto.HotelResponse, 0, len(hotels))
	for _, hotel := range hotels {
		hotelResponses = append(hotelResponses, *toHotelResponse(hotel))
	}

	totalPages := int(math.Ceil(float64(totalCount) / float64(query.Limit)))

	return &dto.ListHotelsResponse{
		Hotels:     hotelResponses,
		TotalCount: totalCount,
		Page:       query.Page,
		Limit:      query.Limit,
		TotalPages: totalPages,
	}, nil
}

// Update updates a hotel
func (s *hotelService) Update(ctx context.Context, id string, req *dto.UpdateHotelRequest) (*dto.HotelResponse, error) {
	if valid, errMsg := req.Validate(); !valid {
		return nil, errors.New(errMsg)
	}

	hotel, err := s.hotelRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if hotel == nil {
		return nil, domain.ErrHotelNotFound
	}

	if req.Name != nil {
		hotel.Name = *req.Name
	}
	if req.Description != nil {
		hotel.Description = *req.Description
	}
	if req.Address != nil {
		hotel.Address = *req.Address
	}
	if req.City != nil {
		hotel.City = *req.City
	}
	if req.Country != nil {
		hotel.Country = *req.Country
	}
	if req.StarRating != nil {
		hotel.StarRating = *req.StarRating
	}
	if req.Amenities != nil {
		hotel.Amenities = *req.Amenities
	}
	if req.Images != nil {
		hotel.Images = *req.Images
	}
	if req.IsActive != nil {
		hotel.IsActive = *req.IsActive
	}

	if err := s.hotelRepo.Update(ctx, hotel); err != nil {
		return nil, err
	}

	return toHotelResponse(hotel), nil
}

// Delete soft deletes a hotel
func (s *hotelService) Delete(ctx context.Context, id string) error {
	hotel, err := s.hotelRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if hotel == nil {
		return domain.ErrHotelNotFound
	}
	return s.hotelRepo.SoftDelete(ctx, id)
}

// CreateRoom creates a room under a hotel
func (s *hotelService) CreateRoom(ctx context.Context, hotelID string, req *dto.CreateRoomRequest) (*dto.RoomResponse, error) {
	hotel, err := s.hotelRepo.GetByID(ctx, hotelID)
	if err != nil {
		return nil, err
	}
	if hotel == nil {
		return nil, domain.ErrHotelNotFound
	}

	now := time.Now()
	room := &domain.Room{
		ID:            uuid.New().String(),
		HotelID:       hotelID,
		Name:          req.Name,
		Description:   req.Description,
		PricePerNight: req.PricePerNight,
		Capacity:      req.Capacity,
		TotalRooms:    req.TotalRooms,
		Images:        req.Images,
		IsActive:      true,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := s.hotelRepo.CreateRoom(ctx, room); err != nil {
		return nil, err
	}

	return toRoomResponse(room), nil
}

// ListRooms retrieves the rooms of a hotel
func (s *hotelService) ListRooms(ctx context.Context, hotelID string) ([]dto.RoomResponse, error) {
	rooms, err := s.hotelRepo.ListRooms(ctx, hotelID)
	if err != nil {
		return nil, err
	}

	roomResponses := make([]dto.RoomResponse, 0, len(rooms))
	for _, room := range rooms {
		roomResponses = append(roomResponses, *toRoomResponse(room))
	}
	return roomResponses, nil
}

// UpdateRoom updates a room
func (s *hotelService) UpdateRoom(ctx context.Context, roomID string, req *dto.UpdateRoomRequest) (*dto.RoomResponse, error) {
	room, err := s.hotelRepo.GetRoomByID(ctx, roomID)
	if err != nil {
		return nil, err
	}
	if room == nil {
		return nil, ErrRoomNotFound
	}

	if req.Name != nil {
		room.Name = *req.Name
	}
	if req.Description != nil {
		room.Description = *req.Description
	}
	if req.PricePerNight != nil {
		room.PricePerNight = *req.PricePerNight
	}
	if req.Capacity != nil {
		room.Capacity = *req.Capacity
	}
	if req.TotalRooms != nil {
		room.TotalRooms = *req.TotalRooms
	}
	if req.Images != nil {
		room.Images = *req.Images
	}
	if req.IsActive != nil {
		room.IsActive = *req.IsActive
	}

	if err := s.hotelRepo.UpdateRoom(ctx, room); err != nil {
		return nil, err
	}

	return toRoomResponse(room), nil
}

// DeleteRoom soft deletes a room
func (s *hotelService) DeleteRoom(ctx context.Context, roomID string) error {
	room, err := s.hotelRepo.GetRoomByID(ctx, roomID)
	if err != nil {
		return err
	}
	if room == nil {
		return ErrRoomNotFound
	}
	return s.hotelRepo.SoftDeleteRoom(ctx, roomID)
}

// toHotelResponse converts domain.Hotel to dto.HotelResponse
func toHotelResponse(hotel *domain.Hotel) *dto.HotelResponse {
	return &dto.HotelResponse{
		ID:            hotel.ID,
		WebsiteID:     hotel.WebsiteID,
		VendorID:      hotel.VendorID,
		Name:          hotel.Name,
		Description:   hotel.Description,
		Address:       hotel.Address,
		City:          hotel.City,
		Country:       hotel.Country,
		StarRating:    hotel.StarRating,
		Amenities:     hotel.Amenities,
		Images:        hotel.Images,
		Rating:        hotel.Rating,
		ReviewCount:   hotel.ReviewCount,
		TotalBookings: hotel.TotalBookings,
		IsActive:      hotel.IsActive,
		CreatedAt:     hotel.CreatedAt.Format(time.RFC3339),
		UpdatedAt:     hotel.UpdatedAt.Format(time.RFC3339),
	}
}

// toRoomResponse converts domain.Room to dto.RoomResponse
func toRoomResponse(room *domain.Room) *dto.RoomResponse {
	return &dto.RoomResponse{
		ID:            room.ID,
		HotelID:       room.HotelID,
		Name:          room.Name,
		Description:   room.Description,
		PricePerNight: room.PricePerNight,
		Capacity:      room.Capacity,
		TotalRooms:    room.TotalRooms,
		Images:        room.Images,
		IsActive:      room.IsActive,
		CreatedAt:     room.CreatedAt.Format(time.RFC3339),
		UpdatedAt:     room.UpdatedAt.Format(time.RFC3339),
	}
}
