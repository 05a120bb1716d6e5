package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"battery-shipment-monitor/internal/config"
	"battery-shipment-monitor/internal/delivery/http/handler"
	"battery-shipment-monitor/internal/infrastructure/database/postgres"
	"battery-shipment-monitor/internal/logger"
	"battery-shipment-monitor/internal/middleware"
	"battery-shipment-monitor/internal/notification"
	"battery-shipment-monitor/internal/realtime"
	"battery-shipment-monitor/internal/usecase/admission"
	contractUC "battery-shipment-monitor/internal/usecase/contract"
	"battery-shipment-monitor/pkg/lock"
)

// Dependencies carries the shared infrastructure the router wires together.
type Dependencies struct {
	DB         *postgres.DB
	Locker     lock.Locker
	Hub        *realtime.Hub
	Publisher  realtime.Publisher
	Dispatcher *notification.Dispatcher
}

func SetupRoutes(cfg *config.Config, deps *Dependencies) *gin.Engine {
	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.SecurityHeadersMiddleware())
	router.Use(middleware.CORSMiddleware(&cfg.CORS))
	router.Use(middleware.RequestSizeLimitMiddleware(10 << 20))
	router.Use(middleware.RateLimitMiddleware(cfg.RateLimit.GeneralRPS, cfg.RateLimit.GeneralBurst))

	router.GET("/health", func(c *gin.Context) {
		if err := deps.DB.Health(); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":  "unhealthy",
				"message": "Database connection failed",
			})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"message": "Service is running",
		})
	})

	contractRepository := postgres.NewContractRepository(deps.DB)
	shipmentRepository := postgres.NewShipmentRepository(deps.DB)
	txManager := postgres.NewTxManager(deps.DB)

	contractService := contractUC.NewService(contractRepository, deps.Locker, deps.Publisher)
	admissionService := admission.NewService(
		txManager,
		shipmentRepository,
		deps.Locker,
		deps.Dispatcher,
		deps.Publisher,
		cfg.Notify.Recipient,
	)

	contractHandler := handler.NewContractHandler(contractService)
	shipmentHandler := handler.NewShipmentHandler(admissionService)
	streamHandler := handler.NewStreamHandler(deps.Hub)

	v1 := router.Group("/api/v1")
	{
		protected := v1.Group("")
		protected.Use(middleware.AuthMiddleware(cfg))
		{
			shipmentHandler.RegisterRoutes(protected)
			contractHandler.RegisterRoutes(protected)
			streamHandler.RegisterRoutes(protected)

			admin := protected.Group("")
			admin.Use(middleware.AdminOnly())
			{
				contractHandler.RegisterAdminRoutes(admin)
			}
		}
	}

	logger.Info("All routes initialized")
	return router
}
