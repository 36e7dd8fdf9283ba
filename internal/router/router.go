// internal/router/router.go
package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/artstone/artstone-backend/internal/config"
	"github.com/artstone/artstone-backend/internal/handlers"
	"github.com/artstone/artstone-backend/internal/i18n"
	"github.com/artstone/artstone-backend/internal/middleware"
	"github.com/artstone/artstone-backend/internal/services"
	"github.com/artstone/artstone-backend/internal/utils"
)

func Initialize(db *gorm.DB, cfg *config.Config) (*gin.Engine, error) {
	// Initialize services
	storageService, err := services.NewStorageService(cfg)
	if err != nil {
		return nil, err
	}

	authService := services.NewAuthService(db, cfg)
	categoryService := services.NewCategoryService(db)
	productService := services.NewProductService(db)
	contactService := services.NewContactService(db)
	mediaService := services.NewMediaService(db, storageService)
	adminService := services.NewAdminService(db)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService)
	categoryHandler := handlers.NewCategoryHandler(categoryService)
	productHandler := handlers.NewProductHandler(productService)
	contactHandler := handlers.NewContactHandler(contactService)
	mediaHandler := handlers.NewMediaHandler(mediaService)
	adminHandler := handlers.NewAdminHandler(adminService)
	healthHandler := handlers.NewHealthHandler(db)

	// Set JWT secret
	utils.SetJWTSecret(cfg.JWT.SecretKey)

	r := gin.New()

	// Global middleware
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger())
	r.Use(middleware.CORS(cfg))
	r.Use(middleware.I18n(cfg.I18n.DefaultLocale))
	r.Use(middleware.FromConfig(cfg.RateLimit).Middleware())

	// Locally stored uploads; in production media lives on S3/CloudFront.
	if cfg.Environment != "production" {
		r.Static("/uploads", "./uploads")
	}

	api := r.Group("/api")
	{
		api.GET("/health", healthHandler.Check)

		// Public storefront
		api.GET("/products", productHandler.ListPublic)
		api.GET("/products/:slug", productHandler.GetBySlug)
		api.GET("/categories", categoryHandler.ListPublic)
		api.POST("/contact", contactHandler.Submit)

		// Authentication
		auth := api.Group("/auth")
		auth.Use(middleware.AuthRateLimit())
		{
			auth.POST("/login", authHandler.Login)
			auth.POST("/register", middleware.AuthRequired(), middleware.AdminRequired(), authHandler.Register)
			auth.GET("/me", middleware.AuthRequired(), authHandler.GetMe)
			auth.PUT("/profile", middleware.AuthRequired(), authHandler.UpdateProfile)
			auth.PUT("/change-password", middleware.AuthRequired(), authHandler.ChangePassword)
			auth.POST("/refresh-token", middleware.AuthRequired(), authHandler.RefreshToken)
		}

		// Back office, admin and editor roles
		admin := api.Group("/admin")
		admin.Use(middleware.AuthRequired())
		admin.Use(middleware.AuditLog(db))
		{
			admin.GET("/dashboard/stats", adminHandler.GetDashboardStats)

			products := admin.Group("/products")
			{
				products.GET("", productHandler.List)
				products.POST("", productHandler.Create)
				products.GET("/:id", productHandler.Get)
				products.PUT("/:id", productHandler.Update)
				products.PATCH("/:id/status", productHandler.ToggleStatus)
				products.DELETE("/:id", productHandler.Delete)
			}

			categories := admin.Group("/categories")
			{
				categories.GET("", categoryHandler.List)
				categories.POST("", categoryHandler.Create)
				categories.GET("/:id", categoryHandler.Get)
				categories.PUT("/:id", categoryHandler.Update)
				categories.PATCH("/:id/status", categoryHandler.ToggleStatus)
				categories.DELETE("/:id", categoryHandler.Delete)
			}

			contacts := admin.Group("/contacts")
			{
				contacts.GET("", contactHandler.List)
				contacts.GET("/:id", contactHandler.Get)
				contacts.PUT("/:id/status", contactHandler.UpdateStatus)
				contacts.PUT("/:id/priority", contactHandler.UpdatePriority)
				contacts.PUT("/:id/notes", contactHandler.UpdateNotes)
				contacts.POST("/bulk-status", contactHandler.BulkUpdateStatus)
				contacts.DELETE("/:id", contactHandler.Delete)
			}

			media := admin.Group("/media")
			{
				media.GET("", mediaHandler.List)
				media.POST("", middleware.UploadRateLimit(), mediaHandler.Upload)
				media.GET("/:id", mediaHandler.Get)
				media.PUT("/:id", mediaHandler.UpdateAlt)
				media.DELETE("/:id", middleware.AdminRequired(), mediaHandler.Delete)
			}
		}
	}

	r.NoRoute(func(c *gin.Context) {
		lang := utils.GetLangFromContext(c)
		utils.ErrorResponse(c, http.StatusNotFound,
			i18n.T(lang, i18n.KeyRouteNotFound, c.Request.URL.Path), nil)
	})

	return r, nil
}
