// api/routes/router.go
package routes

import (
	"net/http"
	"time"

	"busline/internal/auth"
	"busline/internal/busroutes"
	"busline/internal/fleet"
	"busline/internal/reservations"
	"busline/internal/shared/config"
	"busline/internal/shared/database"
	"busline/internal/trips"

	"github.com/gin-gonic/gin"
)

// Router holds all route dependencies
type Router struct {
	config      *config.Config
	db          *database.DB
	publisher   reservations.EventPublisher
	tripService trips.Service // For dependency injection into reservations
}

// NewRouter creates a new router instance
func NewRouter(cfg *config.Config, db *database.DB, publisher reservations.EventPublisher) *Router {
	return &Router{
		config:    cfg,
		db:        db,
		publisher: publisher,
	}
}

// SetupRoutes configures all application routes
func (r *Router) SetupRoutes(engine *gin.Engine) {
	// Health check and basic info endpoints
	r.setupHealthRoutes(engine)

	// API routes
	api := engine.Group(r.config.GetAPIBasePath())
	{
		// Setup auth routes
		r.setupAuthRoutes(api)

		// Setup route catalog routes
		r.setupBusRouteRoutes(api)

		// Setup fleet routes
		r.setupFleetRoutes(api)

		// Setup trip routes (must be before reservation routes for dependency injection)
		r.setupTripRoutes(api)

		// Setup reservation routes
		r.setupReservationRoutes(api)
	}
}

// setupHealthRoutes sets up health check and system status routes
func (r *Router) setupHealthRoutes(engine *gin.Engine) {
	engine.GET("/health", func(c *gin.Context) {
		// Perform health checks
		if err := r.db.HealthCheck(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":    "unhealthy",
				"error":     err.Error(),
				"timestamp": time.Now(),
				"service":   "busline-backend",
			})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"status":    "healthy",
			"timestamp": time.Now(),
			"service":   "busline-backend",
		})
	})

	engine.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
			"version": r.config.APIVersion,
		})
	})

	engine.GET("/status", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":      "operational",
			"api_version": r.config.APIVersion,
			"timestamp":   time.Now(),
		})
	})
}

// setupAuthRoutes configures admin authentication routes
func (r *Router) setupAuthRoutes(rg *gin.RouterGroup) {
	authRepo := auth.NewRepository(r.db.GetPostgreSQL())
	authService := auth.NewService(authRepo, r.config)
	authController := auth.NewController(authService)

	auth.SetupAuthRoutes(rg, authController)
}

// setupBusRouteRoutes configures route catalog routes
func (r *Router) setupBusRouteRoutes(rg *gin.RouterGroup) {
	routeRepo := busroutes.NewRepository(r.db.GetPostgreSQL())
	routeService := busroutes.NewService(routeRepo)
	routeController := busroutes.NewController(routeService)

	busroutes.SetupRouteRoutes(rg, r.config, routeController)
}

// setupFleetRoutes configures bus fleet routes
func (r *Router) setupFleetRoutes(rg *gin.RouterGroup) {
	busRepo := fleet.NewRepository(r.db.GetPostgreSQL())
	busService := fleet.NewService(busRepo)
	busController := fleet.NewController(busService)

	fleet.SetupBusRoutes(rg, r.config, busController)
}

// setupTripRoutes configures trip schedule routes
func (r *Router) setupTripRoutes(rg *gin.RouterGroup) {
	tripRepo := trips.NewRepository(r.db.GetPostgreSQL())
	tripService := trips.NewService(tripRepo)
	tripController := trips.NewController(tripService)

	// Store trip service for dependency injection
	r.tripService = tripService

	trips.SetupTripRoutes(rg, r.config, tripController)
}

// setupReservationRoutes configures seat reservation routes
func (r *Router) setupReservationRoutes(rg *gin.RouterGroup) {
	reservationRepo := reservations.NewRepository(r.db.GetPostgreSQL())
	capacityProvider := reservations.NewTripCapacityProvider(r.tripService)
	reservationService := reservations.NewService(
		reservationRepo,
		capacityProvider,
		reservations.NewCodeGenerator(),
		r.publisher,
	)
	reservationController := reservations.NewController(reservationService)

	reservations.SetupReservationRoutes(rg, reservationController)
}
