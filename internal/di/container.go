package di

import (
	"github.com/rnqayush/storefront-platform/internal/handler"
	"github.com/rnqayush/storefront-platform/internal/repository"
	"github.com/rnqayush/storefront-platform/internal/service"
	"github.com/rnqayush/storefront-platform/pkg/config"
	"github.com/rnqayush/storefront-platform/pkg/database"
	"github.com/rnqayush/storefront-platform/pkg/redis"
)

// Container holds all dependencies for the platform
type Container struct {
	// Infrastructure
	DB    *database.PostgresDB
	Redis *redis.Client

	// Repositories
	UserRepo     repository.UserRepository
	WebsiteRepo  repository.WebsiteRepository
	VendorRepo   repository.VendorRepository
	BookingRepo  repository.BookingRepository
	ReviewRepo   repository.ReviewRepository
	HotelRepo    repository.HotelRepository
	ProductRepo  repository.ProductRepository
	VehicleRepo  repository.VehicleRepository
	OrderRepo    repository.OrderRepository
	WeddingRepo  repository.WeddingRepository
	BusinessRepo repository.BusinessServiceRepository

	// Services
	AuthService     service.AuthService
	WebsiteService  service.WebsiteService
	VendorService   service.VendorService
	BookingService  service.BookingService
	ReviewService   service.ReviewService
	HotelService    service.HotelService
	ProductService  service.ProductService
	VehicleService  service.VehicleService
	OrderService    service.OrderService
	WeddingService  service.WeddingService
	BusinessService service.BusinessService

	// Handlers
	HealthHandler   *handler.HealthHandler
	AuthHandler     *handler.AuthHandler
	WebsiteHandler  *handler.WebsiteHandler
	VendorHandler   *handler.VendorHandler
	BookingHandler  *handler.BookingHandler
	ReviewHandler   *handler.ReviewHandler
	HotelHandler    *handler.HotelHandler
	ProductHandler  *handler.ProductHandler
	VehicleHandler  *handler.VehicleHandler
	OrderHandler    *handler.OrderHandler
	WeddingHandler  *handler.WeddingHandler
	BusinessHandler *handler.BusinessHandler
}

// NewContainer creates a new dependency injection container
func NewContainer(cfg *config.Config, db *database.PostgresDB, redisClient *redis.Client) *Container {
	c := &Container{
		DB:    db,
		Redis: redisClient,
	}

	pool := db.Pool()

	// Repositories
	c.UserRepo = repository.NewPostgresUserRepository(pool)
	c.WebsiteRepo = repository.NewPostgresWebsiteRepository(pool)
	c.VendorRepo = repository.NewPostgresVendorRepository(pool)
	c.BookingRepo = repository.NewPostgresBookingRepository(pool)
	c.ReviewRepo = repository.NewPostgresReviewRepository(pool)
	c.HotelRepo = repository.NewPostgresHotelRepository(pool)
	c.ProductRepo = repository.NewPostgresProductRepository(pool)
	c.VehicleRepo = repository.NewPostgresVehicleRepository(pool)
	c.OrderRepo = repository.NewPostgresOrderRepository(pool)
	c.WeddingRepo = repository.NewPostgresWeddingRepository(pool)
	c.BusinessRepo = repository.NewPostgresBusinessServiceRepository(pool)

	// Services
	loginLimiter := service.NewRedisLoginLimiter(redisClient, cfg.Auth.MaxLoginAttempts, cfg.Auth.LoginAttemptWindow)
	c.AuthService = service.NewAuthService(c.UserRepo, loginLimiter, cfg.JWT.Secret, cfg.JWT.AccessTokenTTL)
	c.WebsiteService = service.NewWebsiteService(c.WebsiteRepo, redisClient, cfg.Redis.WebsiteCacheTTL)
	c.VendorService = service.NewVendorService(c.VendorRepo, c.WebsiteRepo)
	c.BookingService = service.NewBookingService(c.BookingRepo, c.VendorRepo, c.HotelRepo)
	c.ReviewService = service.NewReviewService(c.BookingRepo, c.ReviewRepo, c.HotelRepo)
	c.HotelService = service.NewHotelService(c.HotelRepo)
	c.ProductService = service.NewProductService(c.ProductRepo)
	c.VehicleService = service.NewVehicleService(c.VehicleRepo)
	c.OrderService = service.NewOrderService(c.OrderRepo, c.ProductRepo)
	c.WeddingService = service.NewWeddingService(c.WeddingRepo)
	c.BusinessService = service.NewBusinessService(c.BusinessRepo)

	// Handlers
	cookieMaxAge := int(cfg.JWT.AccessTokenTTL.Seconds())
	c.HealthHandler = handler.NewHealthHandler(db, redisClient)
	c.AuthHandler = handler.NewAuthHandler(c.AuthService, cfg.JWT.CookieName, cookieMaxAge)
	c.WebsiteHandler = handler.NewWebsiteHandler(c.WebsiteService)
	c.VendorHandler = handler.NewVendorHandler(c.VendorService)
	c.BookingHandler = handler.NewBookingHandler(c.BookingService)
	c.ReviewHandler = handler.NewReviewHandler(c.ReviewService)
	c.HotelHandler = handler.NewHotelHandler(c.HotelService, c.VendorService)
	c.ProductHandler = handler.NewProductHandler(c.ProductService, c.VendorService)
	c.VehicleHandler = handler.NewVehicleHandler(c.VehicleService, c.VendorService)
	c.OrderHandler = handler.NewOrderHandler(c.OrderService)
	c.WeddingHandler = handler.NewWeddingHandler(c.WeddingService, c.VendorService)
	c.BusinessHandler = handler.NewBusinessHandler(c.BusinessService, c.VendorService)

	return c
}
