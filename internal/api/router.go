package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/cleancity/waste-collection-api/internal/api/handler"
	"github.com/cleancity/waste-collection-api/internal/api/middleware"
	"github.com/cleancity/waste-collection-api/internal/core/domain"
	"github.com/cleancity/waste-collection-api/internal/core/ports"
	"github.com/cleancity/waste-collection-api/internal/core/service"
	"github.com/cleancity/waste-collection-api/internal/infrastructure/config"
	mongodb "github.com/cleancity/waste-collection-api/internal/infrastructure/db/mongo"
	redisdb "github.com/cleancity/waste-collection-api/internal/infrastructure/db/redis"
	healthhandlers "github.com/cleancity/waste-collection-api/internal/infrastructure/http/handlers"
)

// NewRouter builds and returns the Echo instance with all routes
// registered. rdb may be nil; live-location features then degrade to the
// persisted record.
func NewRouter(db *mongo.Database, rdb *redis.Client, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.CORS())
	e.Use(echoprometheus.NewMiddleware("wastetrack"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	cleanerRepo := mongodb.NewCleanerRepository(db)
	complaintRepo := mongodb.NewComplaintRepository(db)
	routeRepo := mongodb.NewRouteRepository(db)

	var locations ports.LocationCache
	if rdb != nil {
		locations = redisdb.NewLocationTracker(rdb)
	}

	authService := service.NewAuthService(userRepo, cleanerRepo, service.AuthConfig{
		JWTSecret:     cfg.JWTSecret,
		TokenTTL:      cfg.TokenTTL,
		AdminEmail:    cfg.AdminEmail,
		AdminPassword: cfg.AdminPassword,
	}, log)
	complaintService := service.NewComplaintService(complaintRepo, userRepo, cleanerRepo, cfg.StrictTransitions, log)
	cleanerService := service.NewCleanerService(cleanerRepo, locations, log)
	routeService := service.NewRouteService(routeRepo, cleanerRepo, cfg.StrictTransitions, log)

	authHandler := handler.NewAuthHandler(authService)
	complaintHandler := handler.NewComplaintHandler(complaintService)
	cleanerHandler := handler.NewCleanerHandler(cleanerService)
	routeHandler := handler.NewRouteHandler(routeService)

	auth := middleware.Auth(cfg.JWTSecret)
	userOnly := middleware.RBAC(domain.RoleUser)
	cleanerOnly := middleware.RBAC(domain.RoleCleaner)
	adminOnly := middleware.RBAC(domain.RoleAdmin)

	// --- Auth routes (public) ---
	authGroup := e.Group("/api/auth")
	authGroup.POST("/register", authHandler.Register)
	authGroup.POST("/login", authHandler.Login)
	authGroup.POST("/register-cleaner", authHandler.RegisterCleaner)
	authGroup.POST("/admin-login", authHandler.AdminLogin)

	// --- Complaint routes ---
	complaints := e.Group("/api/complaints", auth)
	complaints.POST("", complaintHandler.Create, userOnly)
	complaints.GET("/my-complaints", complaintHandler.ListMine, userOnly)
	complaints.GET("/cleaner-complaints", complaintHandler.ListForCleaner, cleanerOnly)
	complaints.PUT("/:id/status", complaintHandler.UpdateStatus, cleanerOnly)
	complaints.GET("", complaintHandler.ListAll, adminOnly)
	complaints.PUT("/:id/assign", complaintHandler.Assign, adminOnly)
	complaints.GET("/analytics", complaintHandler.Analytics, adminOnly)

	// --- Cleaner routes ---
	cleaners := e.Group("/api/cleaners", auth)
	cleaners.GET("/profile", cleanerHandler.Profile, cleanerOnly)
	cleaners.PUT("/status", cleanerHandler.UpdateStatus, cleanerOnly)
	cleaners.GET("", cleanerHandler.List, adminOnly)
	cleaners.GET("/:id/location", cleanerHandler.LiveLocation, adminOnly)
	cleaners.PUT("/:id/area", cleanerHandler.UpdateArea, adminOnly)
	cleaners.DELETE("/:id", cleanerHandler.Delete, adminOnly)

	// --- Route routes ---
	routes := e.Group("/api/routes", auth)
	routes.GET("/my-routes", routeHandler.ListMine, cleanerOnly)
	routes.PUT("/:id/status", routeHandler.UpdateStatus, cleanerOnly)
	routes.POST("", routeHandler.Create, adminOnly)
	routes.GET("", routeHandler.ListAll, adminOnly)
	routes.DELETE("/:id", routeHandler.Delete, adminOnly)

	// --- Health probes and metrics (no auth required) ---
	healthHandler := healthhandlers.NewHealthHandler()
	readinessHandler := healthhandlers.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
