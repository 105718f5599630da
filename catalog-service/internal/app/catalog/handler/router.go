package handler

import (
	"net/http"
	"slices"

	"github.com/sunshineittechnologies/sunshine-blinds-service/pkg/logger"
	"github.com/sunshineittechnologies/sunshine-blinds-service/pkg/metrics"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const serviceName = "catalog-service"

// RouterOptions configures cross-cutting behaviour of the HTTP surface.
type RouterOptions struct {
	// Auth guards POST/PUT routes when non-nil.
	Auth           *AuthMiddleware
	AllowedOrigins []string
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.DefaultConfig()
	if len(origins) == 0 || slices.Contains(origins, "*") {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = origins
	}
	cfg.AllowHeaders = append(cfg.AllowHeaders, "Authorization", logger.RequestIDHeader)
	cfg.ExposeHeaders = []string{logger.RequestIDHeader}
	return cfg
}

func SetupRoutes(categoryHandler *CategoryHandler, productHandler *ProductHandler, opts RouterOptions) *gin.Engine {
	router := gin.New()

	router.Use(gin.Recovery())
	router.Use(logger.GinLoggerMiddleware())
	router.Use(metrics.GinPrometheusMiddleware(serviceName))
	router.Use(cors.New(corsConfig(opts.AllowedOrigins)))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"service": serviceName,
		})
	})

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	var writeGuard []gin.HandlerFunc
	if opts.Auth != nil {
		writeGuard = []gin.HandlerFunc{opts.Auth.Authenticate(), opts.Auth.RequireRole("manager", "admin")}
	}

	api := router.Group("/api")
	{
		categories := api.Group("/categories")
		categories.GET("", categoryHandler.GetAllCategories)
		categories.GET("/:categoryId", categoryHandler.GetCategory)
		categories.POST("", append(writeGuard, categoryHandler.CreateCategory)...)
		categories.PUT("/:categoryId/image-upload-status", append(writeGuard, categoryHandler.UpdateImageUploadStatus)...)

		products := api.Group("/products")
		products.GET("", productHandler.GetAllProducts)
		products.GET("/:productId", productHandler.GetProduct)
		products.GET("/category/:categoryId", productHandler.GetProductsByCategory)
		products.POST("", append(writeGuard, productHandler.CreateProduct)...)
	}

	return router
}
