package routes

import (
	"time"

	"home-services-backend/internal/api/handlers"
	"home-services-backend/internal/api/middleware"
	"home-services-backend/internal/config"
	"home-services-backend/internal/feed"
	"home-services-backend/internal/repository"
	"home-services-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// SetupRoutes configures all the routes for the application
func SetupRoutes(db *gorm.DB, cfg *config.Config) *gin.Engine {
	// Create router
	router := gin.New()

	// Add middleware
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.CORS(cfg))

	// Initialize validator
	validator := validator.New()

	// Initialize repositories
	technicianRepo := repository.NewTechnicianRepository(db)
	serviceTypeRepo := repository.NewServiceTypeRepository(db)
	serviceRepo := repository.NewServiceRepository(db)
	customerRepo := repository.NewCustomerRepository(db)
	workOrderRepo := repository.NewWorkOrderRepository(db)
	availabilityRepo := repository.NewAvailabilityRepository(db)
	availabilityRequestRepo := repository.NewAvailabilityRequestRepository(db)
	warrantyRepo := repository.NewWarrantyRepository(db)
	serviceRequestRepo := repository.NewServiceRequestRepository(db)

	// Initialize services
	technicianService := service.NewTechnicianService(technicianRepo, validator)
	catalogService := service.NewCatalogService(serviceRepo, serviceTypeRepo, validator)
	workOrderService := service.NewWorkOrderService(workOrderRepo, validator, nil)
	availabilityService := service.NewAvailabilityService(availabilityRepo, availabilityRequestRepo, technicianRepo, validator)
	financialService := service.NewFinancialService(workOrderRepo, nil)
	warrantyService := service.NewWarrantyService(warrantyRepo, customerRepo, serviceRequestRepo, validator, logrus.StandardLogger(), nil)
	appointmentService := service.NewAppointmentService(customerRepo, serviceRepo, serviceRequestRepo, technicianRepo, workOrderRepo, validator, logrus.StandardLogger())
	authService := service.NewAuthService(cfg, validator, nil)

	// Upstream snapshot feed; only wired when a base URL is configured
	var feedHandler *handlers.FeedHandler
	if cfg.FeedBaseURL != "" {
		feedClient := feed.NewClient(cfg.FeedBaseURL, time.Duration(cfg.FeedTimeoutSec)*time.Second)
		feedHandler = handlers.NewFeedHandler(feed.NewRefresher(feedClient))
	}

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db)
	authHandler := handlers.NewAuthHandler(authService)
	technicianHandler := handlers.NewTechnicianHandler(technicianService)
	catalogHandler := handlers.NewCatalogHandler(catalogService)
	workOrderHandler := handlers.NewWorkOrderHandler(workOrderService)
	availabilityHandler := handlers.NewAvailabilityHandler(availabilityService)
	financialHandler := handlers.NewFinancialHandler(financialService)
	warrantyHandler := handlers.NewWarrantyHandler(warrantyService)
	appointmentHandler := handlers.NewAppointmentHandler(appointmentService)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	// Swagger documentation route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Admin login
	router.POST("/api/login", authHandler.Login)

	// Booking form endpoints; served unprefixed
	router.POST("/workorders/expanded", appointmentHandler.CreateExpanded)
	router.POST("/confirmation", appointmentHandler.Confirmation)

	// Public catalog and warranty routes
	public := router.Group("/api")
	{
		public.GET("/services", catalogHandler.ListServices)
		public.GET("/service-types", catalogHandler.ListServiceTypes)

		warranty := public.Group("/warranty")
		{
			warranty.POST("/lookup", warrantyHandler.Lookup)
			warranty.POST("/details", warrantyHandler.RequestDetails)
			warranty.POST("/service", warrantyHandler.RequestService)
		}
	}

	// Admin API routes, all behind the session token
	v1 := router.Group("/api/v1")
	v1.Use(authHandler.RequireAuth())
	{
		// Technician routes
		technicians := v1.Group("/technicians")
		{
			technicians.GET("", technicianHandler.ListTechnicians)
			technicians.POST("", technicianHandler.CreateTechnician)
			technicians.GET("/:id", technicianHandler.GetTechnician)
			technicians.PUT("/:id", technicianHandler.UpdateTechnician)
			technicians.DELETE("/:id", technicianHandler.DeleteTechnician)
		}

		// Service catalog routes
		services := v1.Group("/services")
		{
			services.GET("", catalogHandler.ListServices)
			services.POST("", catalogHandler.CreateService)
			services.GET("/:id", catalogHandler.GetService)
			services.PUT("/:id", catalogHandler.UpdateService)
			services.DELETE("/:id", catalogHandler.DeleteService)
		}
		v1.GET("/service-types", catalogHandler.ListServiceTypes)

		// Work order routes
		workorders := v1.Group("/workorders")
		{
			workorders.GET("", workOrderHandler.ListWorkOrders)
			workorders.POST("", workOrderHandler.CreateWorkOrder)
			workorders.GET("/:code", workOrderHandler.GetWorkOrder)
			workorders.PATCH("/:code/status", workOrderHandler.UpdateWorkOrderStatus)
			workorders.POST("/:code/cancel", workOrderHandler.CancelWorkOrder)
		}

		// Availability and timesheet routes
		v1.POST("/availability", availabilityHandler.SubmitAvailability)
		v1.GET("/timesheet", availabilityHandler.GetTimesheet)
		v1.GET("/timesheet/overlaps", availabilityHandler.GetOverlaps)

		// Availability request review workflow
		requests := v1.Group("/availability-requests")
		{
			requests.GET("", availabilityHandler.ListAvailabilityRequests)
			requests.POST("", availabilityHandler.CreateAvailabilityRequest)
			requests.POST("/:id/approve", availabilityHandler.ApproveAvailabilityRequest)
			requests.POST("/:id/reject", availabilityHandler.RejectAvailabilityRequest)
		}

		// Financial report routes
		reports := v1.Group("/reports")
		{
			reports.GET("", financialHandler.GetReport)
			reports.GET("/export", financialHandler.ExportReport)
		}

		// Upstream feed routes
		if feedHandler != nil {
			feedGroup := v1.Group("/feed")
			{
				feedGroup.POST("/refresh", feedHandler.Refresh)
				feedGroup.GET("/latest", feedHandler.Latest)
			}
		}
	}

	// Catch-all route for undefined endpoints
	router.NoRoute(func(c *gin.Context) {
		c.JSON(404, gin.H{
			"error":      "Endpoint not found",
			"path":       c.Request.URL.Path,
			"method":     c.Request.Method,
			"request_id": c.GetString("request_id"),
		})
	})

	return router
}

// SetupHealthRoutes sets up only health check routes (useful for testing)
func SetupHealthRoutes(db *gorm.DB) *gin.Engine {
	router := gin.New()
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())

	healthHandler := handlers.NewHealthHandler(db)
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	return router
}
