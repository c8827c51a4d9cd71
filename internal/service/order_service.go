package service

import (
	"context"
	"errors"
	"math"
	"time"

	"github.com/rnqayush/storefront-platform/internal/domain"
	"github.com/rnqayush/storefront-platform/internal/dto"
	"github.com/rnqayush/storefront-platform/internal/repository"
)

var (
	ErrInsufficientStock  = errors.New("insufficient stock for product")
	ErrNotOrderCustomer   = errors.New("order belongs to another customer")
	ErrInvalidOrderStatus = errors.New("invalid order status")
)

// OrderService defines the interface for e-commerce orders
type OrderService interface {
	// Create creates an order from active products, decrementing stock
	Create(ctx context.Context, websiteID, customerID string, req *dto.CreateOrderRequest) (*dto.OrderResponse, error)
	// GetByID retrieves an order, enforcing customer access
	GetByID(ctx context.Context, id string, actor Actor) (*dto.OrderResponse, error)
	// List retrieves orders scoped to the caller
	List(ctx context.Context, websiteID string, actor Actor, query *dto.ListOrdersQuery) (*dto.ListOrdersResponse, error)
	// UpdateStatus moves an order through its states; vendor or admin only
	UpdateStatus(ctx context.Context, id string, req *dto.UpdateOrderStatusRequest) (*dto.OrderResponse, error)
}

// orderService implements OrderService
type orderService struct {
	orderRepo   repository.OrderRepository
	productRepo repository.ProductRepository
}

// NewOrderService creates a new OrderService
func NewOrderService(orderRepo repository.OrderRepository, productRepo repository.ProductRepository) OrderService {
	return &orderService{
		orderRepo:   orderRepo,
		productRepo: productRepo,
	}
}

// Create creates an order from active products, decrementing stock
func (s *orderService) Create(ctx context.Context, websiteID, customerID string, req *dto.CreateOrderRequest) (*dto.OrderResponse, error) {
	items := make([]domain.OrderItem, 0, len(req.Items))
	vendorID := ""
	products := make([]*domain.Product, 0, len(req.Items))

	for _, item := range req.Items {
		product, err := s.productRepo.GetByID(ctx, item.ProductID)
		if err != nil {
			return nil, err
		}
		if product == nil || product.WebsiteID != websiteID || !product.IsActive {
			return nil, domain.ErrProductNotFound
		}
		if product.Stock < item.Quantity {
			return nil, ErrInsufficientStock
		}
		vendorID = product.VendorID
		products = append(products, product)
		items = append(items, domain.OrderItem{
			ProductID: product.ID,
			Name:      product.Name,
			Quantity:  item.Quantity,
			UnitPrice: product.EffectivePrice(),
		})
	}

	order, err := domain.NewOrder(websiteID, vendorID, customerID, items)
	if err != nil {
		return nil, err
	}
	order.ShippingAddress = req.ShippingAddress

	if err := s.orderRepo.Create(ctx, order); err != nil {
		return nil, err
	}

	for i, product := range products {
		product.Stock -= req.Items[i].Quantity
		if err := s.productRepo.Update(ctx, product); err != nil {
			return nil, err
		}
	}

	return toOrderResponse(order), nil
}

// GetByID retrieves an order, enforcing customer access
func (s *orderService) GetByID(ctx context.Context, id string, actor Actor) (*dto.OrderResponse, error) {
	order, err := s.orderRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.ErrOrderNotFound
	}
	if actor.Role == domain.RoleCustomer && order.CustomerID != actor.UserID {
		return nil, ErrNotOrderCustomer
	}
	return toOrderResponse(order), nil
}

// List retrieves orders scoped to the caller
func (s *orderService) List(ctx context.Context, websiteID string, actor Actor, query *dto.ListOrdersQuery) (*dto.ListOrdersResponse, error) {
	query.SetDefaults()

	customerID := ""
	if actor.Role == domain.RoleCustomer {
		customerID = actor.UserID
	}

	orders, totalCount, err := s.orderRepo.List(ctx, query.Page, query.Limit, websiteID, customerID, domain.OrderStatus(query.Status))
	if err != nil {
		return nil, err
	}

	orderResponses := make([]dto.OrderResponse, 0, len(orders))
	for _, order := range orders {
		orderResponses = append(orderResponses, *toOrderResponse(order))
	}

	totalPages := int(math.Ceil(float64(totalCount) / float64(query.Limit)))

	return &dto.ListOrdersResponse{
		Orders:     orderResponses,
		TotalCount: totalCount,
		Page:       query.Page,
		Limit:      query.Limit,
		TotalPages: totalPages,
	}, nil
}

// UpdateStatus moves an order through its states
func (s *orderService) UpdateStatus(ctx context.Context, id string, req *dto.UpdateOrderStatusRequest) (*dto.OrderResponse, error) {
	order, err := s.orderRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.ErrOrderNotFound
	}

	status := domain.OrderStatus(req.Status)
	if !status.IsValid() {
		return nil, ErrInvalidOrderStatus
	}

	if err := s.orderRepo.UpdateStatus(ctx, id, status); err != nil {
		return nil, err
	}

	order.Status = status
	return toOrderResponse(order), nil
}

// toOrderResponse converts domain.Order to dto.OrderResponse
func toOrderResponse(order *domain.Order) *dto.OrderResponse {
	return &dto.OrderResponse{
		ID:              order.ID,
		WebsiteID:       order.WebsiteID,
		VendorID:        order.VendorID,
		CustomerID:      order.CustomerID,
		Items:           order.Items,
		Total:           order.Total,
		Currency:        order.Currency,
		Status:          string(order.Status),
		ShippingAddress: order.ShippingAddress,
		CreatedAt:       order.CreatedAt.Format(time.RFC3339),
		UpdatedAt:       order.UpdatedAt.Format(time.RFC3339),
	}
}
