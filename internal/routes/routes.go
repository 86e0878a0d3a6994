package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/land-broker/internal/audit"
	"github.com/BruksfildServices01/land-broker/internal/auth"
	landdomain "github.com/BruksfildServices01/land-broker/internal/domain/land"
	locationdomain "github.com/BruksfildServices01/land-broker/internal/domain/location"
	userdomain "github.com/BruksfildServices01/land-broker/internal/domain/user"
	"github.com/BruksfildServices01/land-broker/internal/handlers"
	"github.com/BruksfildServices01/land-broker/internal/logging"
	"github.com/BruksfildServices01/land-broker/internal/middleware"
	"github.com/BruksfildServices01/land-broker/internal/ratelimit"
	ucAuth "github.com/BruksfildServices01/land-broker/internal/usecase/auth"
	ucLand "github.com/BruksfildServices01/land-broker/internal/usecase/land"
	ucLocation "github.com/BruksfildServices01/land-broker/internal/usecase/location"
)

// Stores groups the persistence side. Both the gorm repositories and the
// in-memory store satisfy it.
type Stores struct {
	Users     userdomain.Repository
	Locations locationdomain.Repository
	Lands     landdomain.Repository
	AuditLogs audit.Reader
	Health    handlers.Pinger
}

type Dependencies struct {
	Stores

	Tokens  *auth.TokenService
	Limiter ratelimit.Limiter
	Audit   *audit.Dispatcher
	Log     logging.Logger
}

func RegisterRoutes(r *gin.Engine, deps Dependencies) {

	// ======================================================
	// USE CASES
	// ======================================================
	loginUC := ucAuth.NewLogin(
		deps.Users,
		deps.Tokens,
		deps.Limiter,
		deps.Audit,
		deps.Log,
	)

	searchLocationsUC := ucLocation.NewSearchLocations(deps.Locations)
	createLocationUC := ucLocation.NewCreateLocation(deps.Locations)

	listLandsUC := ucLand.NewListLands(deps.Lands)
	getLandUC := ucLand.NewGetLand(deps.Lands)
	createLandUC := ucLand.NewCreateLand(deps.Lands, deps.Locations, deps.Audit)
	updateLandUC := ucLand.NewUpdateLand(deps.Lands, deps.Locations, deps.Audit)
	deleteLandUC := ucLand.NewDeleteLand(deps.Lands, deps.Audit)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(loginUC)
	meHandler := handlers.NewMeHandler(deps.Users)
	locationHandler := handlers.NewLocationHandler(searchLocationsUC, createLocationUC)
	landHandler := handlers.NewLandHandler(
		listLandsUC,
		getLandUC,
		createLandUC,
		updateLandUC,
		deleteLandUC,
	)
	auditLogsHandler := handlers.NewAuditLogsHandler(deps.AuditLogs)
	healthHandler := handlers.NewHealthHandler(deps.Health)

	requireAuth := middleware.AuthMiddleware(deps.Tokens)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		api.GET("/health", healthHandler.Check)

		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/auth/login", authHandler.Login)
		api.GET("/auth/verify", requireAuth, authHandler.Verify)
		api.GET("/auth/me", requireAuth, meHandler.GetMe)

		// ------------------------------
		// LOCATIONS (public)
		// ------------------------------
		api.GET("/locations", locationHandler.List)
		api.POST("/locations", locationHandler.Create)

		// ------------------------------
		// PRIVATE
		// ------------------------------
		secured := api.Group("/")
		secured.Use(requireAuth)
		{
			secured.GET("/lands", landHandler.List)
			secured.POST("/lands", landHandler.Create)
			secured.GET("/lands/:id", landHandler.Get)
			secured.PUT("/lands/:id", landHandler.Update)
			secured.DELETE("/lands/:id", landHandler.Delete)

			secured.GET("/audit-logs", auditLogsHandler.List)
		}
	}
}
