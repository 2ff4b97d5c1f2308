package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"fleet-telematics-monitor/internal/config"
	"fleet-telematics-monitor/internal/delivery/http/handler"
	"fleet-telematics-monitor/internal/infrastructure/database/postgres"
	"fleet-telematics-monitor/internal/logger"
	"fleet-telematics-monitor/internal/middleware"
	"fleet-telematics-monitor/internal/usecase/booking"
	"fleet-telematics-monitor/internal/usecase/fleet"
	"fleet-telematics-monitor/internal/usecase/report"
	"fleet-telematics-monitor/internal/usecase/telemetry"
	"fleet-telematics-monitor/internal/usecase/user"
)

func SetupRoutes(cfg *config.Config, db *postgres.DB) *gin.Engine {
	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.Default()

	// Middleware order: request ID, logging, security headers, CORS, request
	// size limit, general rate limit.
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.SecurityHeadersMiddleware())
	router.Use(middleware.CORSMiddleware(&cfg.CORS))
	router.Use(middleware.RequestSizeLimitMiddleware(10 << 20))
	router.Use(middleware.RateLimitMiddleware(cfg.RateLimit.GeneralRPS, cfg.RateLimit.GeneralBurst))

	router.GET("/health", func(c *gin.Context) {
		if err := db.Health(); err != nil {
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

	userRepository := postgres.NewUserRepository(db)
	userService := user.NewService(userRepository, cfg)
	userHandler := handler.NewUserHandler(userService)

	fleetRepository := postgres.NewFleetRepository(db)
	fleetService := fleet.NewService(fleetRepository)
	fleetHandler := handler.NewFleetHandler(fleetService)

	telemetryRepository := postgres.NewTelemetryRepository(db)
	telemetryService := telemetry.NewService(telemetryRepository)
	telemetryHandler := handler.NewTelemetryHandler(telemetryService)

	reportService := report.NewService(telemetryRepository, fleetRepository, userRepository)
	reportHandler := handler.NewReportHandler(reportService)

	bookingRepository := postgres.NewBookingRepository(db)
	keyRepository := postgres.NewKeyRepository(db)
	bookingService := booking.NewService(bookingRepository, keyRepository)
	bookingHandler := handler.NewBookingHandler(bookingService)

	v1 := router.Group("/api/v1")
	{
		userHandler.RegisterAuthRoutes(v1)

		protected := v1.Group("")
		protected.Use(middleware.AuthMiddleware(cfg))
		{
			userHandler.RegisterRoutes(protected)
			fleetHandler.RegisterRoutes(protected)
			bookingHandler.RegisterRoutes(protected)

			// Raw records and reports are staff-facing.
			staff := protected.Group("")
			staff.Use(middleware.StaffOnly())
			{
				telemetryHandler.RegisterRoutes(staff)
				reportHandler.RegisterRoutes(staff)
			}

			admin := protected.Group("/admin")
			admin.Use(middleware.AdminOnly())
			{
				userHandler.RegisterAdminRoutes(admin)
			}
		}
	}

	logger.Info("All routes initialized")
	return router
}
