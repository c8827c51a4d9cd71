package router

import (
	"github.com/gin-gonic/gin"

	"github.com/rnqayush/storefront-platform/internal/di"
	"github.com/rnqayush/storefront-platform/internal/domain"
	tenantmw "github.com/rnqayush/storefront-platform/internal/middleware"
	"github.com/rnqayush/storefront-platform/pkg/config"
	"github.com/rnqayush/storefront-platform/pkg/middleware"
)

// Setup builds the gin engine and registers all routes
func Setup(cfg *config.Config, c *di.Container) *gin.Engine {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger())
	r.Use(middleware.Metrics())

	corsCfg := middleware.DefaultCORSConfig()
	corsCfg.AllowOrigins = cfg.CORS.AllowedOrigins
	r.Use(middleware.CORSWithConfig(corsCfg))

	r.GET("/health", c.HealthHandler.Liveness)
	r.GET("/health/ready", c.HealthHandler.Readiness)

	jwtCfg := &middleware.JWTConfig{
		Secret:     cfg.JWT.Secret,
		CookieName: cfg.JWT.CookieName,
	}
	authRequired := middleware.JWTMiddleware(jwtCfg)
	vendorOnly := middleware.RequireRole(string(domain.RoleVendor), string(domain.RoleAdmin))

	v1 := r.Group("/api/v1")

	// Authentication
	auth := v1.Group("/auth")
	{
		auth.POST("/register", c.AuthHandler.Register)
		auth.POST("/login", c.AuthHandler.Login)
		auth.POST("/logout", c.AuthHandler.Logout)
		auth.GET("/me", authRequired, c.AuthHandler.Me)
		auth.PUT("/me", authRequired, c.AuthHandler.UpdateMe)
	}

	// Website management (dashboard side, no tenant context). Mutations load
	// the target website and run the shared ownership guard.
	loadWebsite := tenantmw.LoadWebsiteParam(c.WebsiteService)
	websiteOwnerOnly := tenantmw.RequireOwner(tenantmw.WebsiteOwner, string(domain.RoleAdmin))
	websites := v1.Group("/websites", authRequired)
	{
		websites.POST("", c.WebsiteHandler.Create)
		websites.GET("", c.WebsiteHandler.List)
		websites.GET("/:id", c.WebsiteHandler.GetByID)
		websites.GET("/slug/:slug", c.WebsiteHandler.GetBySlug)
		websites.PUT("/:id", loadWebsite, websiteOwnerOnly, c.WebsiteHandler.Update)
		websites.DELETE("/:id", loadWebsite, websiteOwnerOnly, c.WebsiteHandler.Delete)
	}

	// Vendor profile management
	vendors := v1.Group("/vendors", authRequired)
	{
		vendors.POST("", c.VendorHandler.Create)
		vendors.GET("/me", c.VendorHandler.Me)
		vendors.GET("/:id", c.VendorHandler.GetByID)
		vendors.PUT("/:id", vendorOnly, c.VendorHandler.Update)
		vendors.DELETE("/:id", vendorOnly, c.VendorHandler.Delete)
	}

	resolver := tenantmw.TenantResolver(c.WebsiteService, cfg.Server.BaseDomain)

	// Storefront routes are registered twice with the same handlers: under
	// /sites/:slug the tenant comes from the URL, under /storefront it comes
	// from the Host subdomain or the X-Tenant-Slug header.
	registerStorefront(v1.Group("/sites/:slug", resolver, tenantmw.RequireTenant()), c, authRequired, vendorOnly)
	registerStorefront(v1.Group("/storefront", resolver, tenantmw.RequireTenant()), c, authRequired, vendorOnly)

	return r
}

// registerStorefront registers the tenant-scoped routes on g
func registerStorefront(g *gin.RouterGroup, c *di.Container, authRequired, vendorOnly gin.HandlerFunc) {
	g.GET("", c.WebsiteHandler.Current)

	// Public catalog
	g.GET("/vendors", c.VendorHandler.List)
	g.GET("/reviews", c.ReviewHandler.List)
	g.GET("/reviews/:id", c.ReviewHandler.GetByID)

	g.GET("/hotels", c.HotelHandler.List)
	g.GET("/hotels/:id", c.HotelHandler.GetByID)
	g.GET("/hotels/:id/rooms", c.HotelHandler.ListRooms)

	g.GET("/products", c.ProductHandler.List)
	g.GET("/products/:productSlug", c.ProductHandler.GetBySlug)
	g.GET("/products/id/:id", c.ProductHandler.GetByID)
	g.GET("/categories", c.ProductHandler.ListCategories)

	g.GET("/vehicles", c.VehicleHandler.List)
	g.GET("/vehicles/:id", c.VehicleHandler.GetByID)

	g.GET("/wedding/vendors", c.WeddingHandler.ListVendors)
	g.GET("/wedding/vendors/:id", c.WeddingHandler.GetVendorByID)

	g.GET("/services", c.BusinessHandler.List)
	g.GET("/services/:id", c.BusinessHandler.GetByID)

	// Bookings and reviews
	bookings := g.Group("/bookings", authRequired)
	{
		bookings.POST("", c.BookingHandler.Create)
		bookings.GET("", c.BookingHandler.List)
		bookings.GET("/:id", c.BookingHandler.GetByID)
		bookings.POST("/:id/confirm", c.BookingHandler.Confirm)
		bookings.POST("/:id/check-in", c.BookingHandler.CheckIn)
		bookings.POST("/:id/check-out", c.BookingHandler.CheckOut)
		bookings.POST("/:id/complete", c.BookingHandler.Complete)
		bookings.POST("/:id/cancel", c.BookingHandler.Cancel)
		bookings.POST("/:id/pay", c.BookingHandler.MarkPaid)
		bookings.POST("/:id/review", c.ReviewHandler.Create)
	}

	// Orders
	orders := g.Group("/orders", authRequired)
	{
		orders.POST("", c.OrderHandler.Create)
		orders.GET("", c.OrderHandler.List)
		orders.GET("/:id", c.OrderHandler.GetByID)
		orders.PUT("/:id/status", vendorOnly, c.OrderHandler.UpdateStatus)
	}

	// Wedding events
	events := g.Group("/wedding/events", authRequired)
	{
		events.POST("", c.WeddingHandler.CreateEvent)
		events.GET("", c.WeddingHandler.ListEvents)
		events.GET("/:id", c.WeddingHandler.GetEventByID)
		events.PUT("/:id", c.WeddingHandler.UpdateEvent)
		events.DELETE("/:id", c.WeddingHandler.DeleteEvent)
	}

	// Vendor-side catalog management
	manage := g.Group("", authRequired, vendorOnly)
	{
		manage.POST("/hotels", c.HotelHandler.Create)
		manage.PUT("/hotels/:id", c.HotelHandler.Update)
		manage.DELETE("/hotels/:id", c.HotelHandler.Delete)
		manage.POST("/hotels/:id/rooms", c.HotelHandler.CreateRoom)
		manage.PUT("/rooms/:id", c.HotelHandler.UpdateRoom)
		manage.DELETE("/rooms/:id", c.HotelHandler.DeleteRoom)

		manage.POST("/products", c.ProductHandler.Create)
		manage.PUT("/products/id/:id", c.ProductHandler.Update)
		manage.DELETE("/products/id/:id", c.ProductHandler.Delete)
		manage.POST("/categories", c.ProductHandler.CreateCategory)
		manage.PUT("/categories/:id", c.ProductHandler.UpdateCategory)
		manage.DELETE("/categories/:id", c.ProductHandler.DeleteCategory)

		manage.POST("/vehicles", c.VehicleHandler.Create)
		manage.PUT("/vehicles/:id", c.VehicleHandler.Update)
		manage.DELETE("/vehicles/:id", c.VehicleHandler.Delete)

		manage.POST("/wedding/vendors", c.WeddingHandler.CreateVendor)
		manage.PUT("/wedding/vendors/:id", c.WeddingHandler.UpdateVendor)
		manage.DELETE("/wedding/vendors/:id", c.WeddingHandler.DeleteVendor)

		manage.POST("/services", c.BusinessHandler.Create)
		manage.PUT("/services/:id", c.BusinessHandler.Update)
		manage.DELETE("/services/:id", c.BusinessHandler.Delete)
	}
}
