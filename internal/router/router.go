// internal/router/router.go
package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/javajoker/retail-backend/internal/config"
	"github.com/javajoker/retail-backend/internal/handlers"
	"github.com/javajoker/retail-backend/internal/middleware"
	"github.com/javajoker/retail-backend/internal/models"
	"github.com/javajoker/retail-backend/internal/repository"
	"github.com/javajoker/retail-backend/internal/services"
	"github.com/javajoker/retail-backend/internal/utils"
)

// Initialize wires services, handlers and routes. The returned func stops
// the rate limiters' background work and must be called on shutdown.
func Initialize(db *gorm.DB, cfg *config.Config) (*gin.Engine, func(), error) {
	storageService, err := services.NewStorageService(cfg)
	if err != nil {
		return nil, nil, err
	}
	r, cleanup := New(db, cfg, storageService)
	return r, cleanup, nil
}

// New builds the engine around an already configured storage backend.
func New(db *gorm.DB, cfg *config.Config, storageService *services.StorageService) (*gin.Engine, func()) {
	jwtManager := utils.NewJWTManager(cfg.JWT.SecretKey, cfg.JWT.AccessTokenTTL)

	// Initialize services
	authService := services.NewAuthService(db, jwtManager)
	productService := services.NewProductService(repository.New[models.Product](db), storageService, cfg.Upload.MaxFileSize)
	orderService := services.NewOrderService(db)
	adminService := services.NewAdminService(db)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService)
	productHandler := handlers.NewProductHandler(productService)
	orderHandler := handlers.NewOrderHandler(orderService)
	adminHandler := handlers.NewAdminHandler(adminService)

	categoryHandler := handlers.NewCatalogHandler[models.Category, services.CategoryRequest](
		services.NewCatalogService(repository.New[models.Category](db), "Category", "SubCategories"))
	subCategoryHandler := handlers.NewCatalogHandler[models.SubCategory, services.SubCategoryRequest](
		services.NewCatalogService(repository.New[models.SubCategory](db), "Subcategory", "Category"))
	sizeHandler := handlers.NewCatalogHandler[models.Size, services.SizeRequest](
		services.NewCatalogService(repository.New[models.Size](db), "Size"))
	colorHandler := handlers.NewCatalogHandler[models.Color, services.ColorRequest](
		services.NewCatalogService(repository.New[models.Color](db), "Color"))
	brandHandler := handlers.NewCatalogHandler[models.Brand, services.BrandRequest](
		services.NewCatalogService(repository.New[models.Brand](db), "Brand"))

	uploadLimiter := middleware.PerMinute(cfg.RateLimit.UploadsPerMinute, cfg.RateLimit.UploadBurst)
	authLimiter := middleware.PerMinute(cfg.RateLimit.AuthPerMinute, cfg.RateLimit.AuthBurst)
	cleanup := func() {
		uploadLimiter.Stop()
		authLimiter.Stop()
	}

	// Initialize Gin router
	r := gin.New()
	r.HandleMethodNotAllowed = true
	r.MaxMultipartMemory = 8 << 20

	// Global middleware
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS(cfg.CORS))
	r.Use(middleware.I18nMiddleware())
	r.Use(middleware.ErrorHandler())

	r.NoRoute(middleware.NoRoute)
	r.NoMethod(middleware.NoMethod)

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"version": "1.0.0",
		})
	})

	// Uploaded images (local storage backend)
	if !cfg.AWS.Enabled() {
		r.Static(cfg.Upload.PublicPath, cfg.Upload.Dir)
	}

	requireAuth := middleware.AuthRequired(jwtManager, authService)
	requireAdmin := []gin.HandlerFunc{requireAuth, middleware.AdminRequired()}

	api := r.Group("/api")
	{
		// Authentication routes
		auth := api.Group("/auth")
		{
			auth.POST("/register", authLimiter.Middleware(), authHandler.Register)
			auth.POST("/login", authLimiter.Middleware(), authHandler.Login)
			auth.GET("/me", requireAuth, authHandler.GetProfile)
		}

		// Product routes
		products := api.Group("/products")
		{
			products.GET("", productHandler.GetProducts)
			products.GET("/:id", productHandler.GetProduct)
			products.POST("",
				uploadLimiter.Middleware(),
				middleware.ImageUpload(cfg.Upload.MaxBodySize, cfg.Upload.MaxFileSize),
				productHandler.CreateProduct,
			)
			products.PUT("/:id", productHandler.UpdateProduct)
			products.PATCH("/:id", productHandler.UpdateProduct)
			products.DELETE("/:id", productHandler.DeleteProduct)
		}

		// Catalog routes; writes are admin only
		categoryHandler.Register(api.Group("/categories"), requireAdmin...)
		subCategoryHandler.Register(api.Group("/subcategories"), requireAdmin...)
		sizeHandler.Register(api.Group("/sizes"), requireAdmin...)
		colorHandler.Register(api.Group("/colors"), requireAdmin...)
		brandHandler.Register(api.Group("/brands"), requireAdmin...)

		// Order routes
		orders := api.Group("/orders")
		orders.Use(requireAuth)
		{
			orders.POST("", orderHandler.CreateOrder)
			orders.GET("", orderHandler.GetOrders)
			orders.GET("/:id", orderHandler.GetOrder)
			orders.PATCH("/:id/status", middleware.AdminRequired(), orderHandler.UpdateOrderStatus)
			orders.POST("/:id/cancel", orderHandler.CancelOrder)
		}

		// Admin routes
		admin := api.Group("/admin", requireAdmin...)
		{
			admin.GET("/dashboard/stats", adminHandler.GetDashboardStats)
			admin.GET("/users", adminHandler.GetUsers)
			admin.PATCH("/users/:id/status", adminHandler.UpdateUserStatus)
		}
	}

	return r, cleanup
}
