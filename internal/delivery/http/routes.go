package http

import (
	"github.com/gin-gonic/gin"
	"github.com/greenscan/backend/config"
)

// SetupRouter creates and configures the Gin router
func SetupRouter(cfg *config.Config, handler *Handler) *gin.Engine {
	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	// Global middleware
	router.Use(RecoveryMiddleware())
	router.Use(LoggerMiddleware())
	router.Use(CORSMiddleware(cfg.Server.AllowedOrigins))
	router.Use(RateLimitMiddleware(cfg.RateLimit.PerIP, cfg.RateLimit.Burst))

	router.GET("/health", handler.HealthCheck)

	v1 := router.Group("/api/v1")
	{
		products := v1.Group("/products")
		{
			products.GET("/:barcode", handler.GetProduct)
		}

		scan := v1.Group("/scan")
		{
			scan.POST("/start", handler.StartScan)
			scan.POST("/stop", handler.StopScan)
			scan.GET("/status", handler.ScanStatus)
			scan.POST("/detections", handler.PushDetection)
			scan.GET("/result", handler.ScanResult)
		}

		v1.POST("/share", handler.Share)
	}

	return router
}
