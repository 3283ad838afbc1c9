// internal/router/router.go
package router

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/murtazakhan2595/Ops-Products-Management-System/internal/config"
	"github.com/murtazakhan2595/Ops-Products-Management-System/internal/handlers"
	"github.com/murtazakhan2595/Ops-Products-Management-System/internal/middleware"
	"github.com/murtazakhan2595/Ops-Products-Management-System/internal/repositories"
	"github.com/murtazakhan2595/Ops-Products-Management-System/internal/services"
)

func Initialize(db *gorm.DB, cfg *config.Config) (*gin.Engine, error) {
	// Initialize repositories
	productRepo := repositories.NewGormProductRepository(db)
	ownerRepo := repositories.NewGormOwnerRepository(db)

	// Initialize services
	productService := services.NewProductService(productRepo, ownerRepo)
	ownerService := services.NewOwnerService(ownerRepo)
	statsService := services.NewStatsService(db)
	storageService, err := services.NewStorageService(cfg)
	if err != nil {
		return nil, err
	}

	// Initialize handlers
	productHandler := handlers.NewProductHandler(productService)
	ownerHandler := handlers.NewOwnerHandler(ownerService)
	statsHandler := handlers.NewStatsHandler(statsService)
	uploadHandler := handlers.NewUploadHandler(storageService)

	r := gin.New()
	r.MaxMultipartMemory = 8 << 20

	// Global middleware
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger())
	r.Use(middleware.CORS())

	api := r.Group("/api")
	api.Use(middleware.GeneralRateLimit())
	{
		api.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{
				"status":    "ok",
				"timestamp": time.Now().UTC().Format(time.RFC3339),
			})
		})

		products := api.Group("/products")
		{
			products.GET("", productHandler.GetProducts)
			products.GET("/:id", productHandler.GetProduct)
			products.POST("", productHandler.CreateProduct)
			products.PUT("/:id", productHandler.UpdateProduct)
			products.DELETE("/:id", productHandler.DeleteProduct)
		}

		owners := api.Group("/owners")
		{
			owners.GET("", ownerHandler.GetOwners)
			owners.GET("/:id", ownerHandler.GetOwner)
			owners.GET("/:id/products", ownerHandler.GetOwnerProducts)
		}

		api.GET("/stats", statsHandler.GetDashboardStats)
		api.POST("/upload", middleware.UploadRateLimit(), uploadHandler.UploadImage)
	}

	// Uploaded files are served directly from the upload directory.
	r.Static("/uploads", cfg.Upload.Dir)

	return r, nil
}
