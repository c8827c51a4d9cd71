package service

import (
	"context"
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/rnqayush/storefront-platform/internal/domain"
	"github.com/rnqayush/storefront-platform/internal/dto"
	"github.com/rnqayush/storefront-platform/internal/repository"
)

// ReviewService defines the interface for review operations
type ReviewService interface {
	// Create reviews a completed booking. The review insert, the booking
	// link, and the rating aggregates commit in one transaction.
	Create(ctx context.Context, bookingID, customerID string, req *dto.CreateReviewRequest) (*dto.ReviewResponse, error)
	// GetByID retrieves a review by ID
	GetByID(ctx context.Context, id string) (*dto.ReviewResponse, error)
	// List retrieves the reviews of a website
	List(ctx context.Context, websiteID string, query *dto.ListReviewsQuery) (*dto.ListReviewsResponse, error)
}

// reviewService implements ReviewService
type reviewService struct {
	bookingRepo repository.BookingRepository
	reviewRepo  repository.ReviewRepository
	hotelRepo   repository.HotelRepository
}

// NewReviewService creates a new ReviewService
func NewReviewService(bookingRepo repository.BookingRepository, reviewRepo repository.ReviewRepository, hotelRepo repository.HotelRepository) ReviewService {
	return &reviewService{
		bookingRepo: bookingRepo,
		reviewRepo:  reviewRepo,
		hotelRepo:   hotelRepo,
	}
}

// Create reviews a completed booking
func (s *reviewService) Create(ctx context.Context, bookingID, customerID string, req *dto.CreateReviewRequest) (*dto.ReviewResponse, error) {
	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if booking == nil {
		return nil, domain.ErrBookingNotFound
	}
	if booking.CustomerID != customerID {
		return nil, ErrNotBookingCustomer
	}

	now := time.Now()
	review := &domain.Review{
		ID:         uuid.New().String(),
		BookingID:  booking.ID,
		WebsiteID:  booking.WebsiteID,
		VendorID:   booking.VendorID,
		CustomerID: customerID,
		Rating:     req.Rating,
		Comment:    req.Comment,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	// Validates the one-review rule and the completed-status requirement,
	// and stamps the booking before the transactional write.
	if err := booking.AttachReview(review.ID); err != nil {
		return nil, err
	}

	hotelID := ""
	if booking.Category == domain.BookingCategoryHotel && booking.Hotel != nil {
		room, err := s.hotelRepo.GetRoomByID(ctx, booking.Hotel.RoomID)
		if err != nil {
			return nil, err
		}
		if room != nil {
			hotelID = room.HotelID
		}
	}

	if err := s.bookingRepo.AttachReview(ctx, booking, review, hotelID); err != nil {
		return nil, err
	}

	return toReviewResponse(review), nil
}

// GetByID retrieves a review by ID
func (s *reviewService) GetByID(ctx context.Context, id string) (*dto.ReviewResponse, error) {
	review, err := s.reviewRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if review == nil {
		return nil, domain.ErrReviewNotFound
	}
	return toReviewResponse(review), nil
}

// List retrieves the reviews of a website
func (s *reviewService) List(ctx context.Context, websiteID string, query *dto.ListReviewsQuery) (*dto.ListReviewsResponse, error) {
	query.SetDefaults()

	reviews, totalCount, err := s.reviewRepo.List(ctx, query.Page, query.Limit, websiteID, query.VendorID)
	if err != nil {
		return nil, err
	}

	reviewResponses := make([]dto.ReviewResponse, 0, len(reviews))
	for _, review := range reviews {
		reviewResponses = append(reviewResponses, *toReviewResponse(review))
	}

	totalPages := int(math.Ceil(float64(totalCount) / float64(query.Limit)))

	return &dto.ListReviewsResponse{
		Reviews:    reviewResponses,
		TotalCount: totalCount,
		Page:       query.Page,
		Limit:      query.Limit,
		TotalPages: totalPages,
	}, nil
}

// toReviewResponse converts domain.Review to dto.ReviewResponse
func toReviewResponse(review *domain.Review) *dto.ReviewResponse {
	return &dto.ReviewResponse{
		ID:         review.ID,
		BookingID:  review.BookingID,
		WebsiteID:  review.WebsiteID,
		VendorID:   review.VendorID,
		CustomerID: review.CustomerID,
		Rating:     review.Rating,
		Comment:    review.Comment,
		CreatedAt:  review.CreatedAt.Format(time.RFC3339),
		UpdatedAt:  review.UpdatedAt.Format(time.RFC3339),
	}
}
