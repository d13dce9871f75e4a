package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"

	"github.com/orgatlas/orgatlas/internal/dbpool"
	"github.com/orgatlas/orgatlas/internal/middleware"
)

// RouterDeps holds all dependencies needed by the router.
type RouterDeps struct {
	Log           *logrus.Logger
	Pool          *dbpool.Pool
	Buildings     BuildingRepository
	Organizations OrganizationRepository
	Phones        PhoneNumberRepository
	Categories    CategoryRepository
	APIKey        string
	CORSOrigins   []string
	Version       string
}

// Router-level limits.
const (
	maxBodySize = 1 << 20 // 1 MB
	rateLimit   = 100     // requests per second per IP
	rateBurst   = 200     // token bucket burst size
)

// setupMiddleware configures all middleware on the Gin engine.
func setupMiddleware(ctx context.Context, r *gin.Engine, deps *RouterDeps) {
	r.SetTrustedProxies(nil) //nolint:errcheck // nil always succeeds.
	r.Use(middleware.RequestID(deps.Log))
	r.Use(ginLogger(deps.Log))
	r.Use(gin.Recovery())
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.MaxBodySize(maxBodySize))
	r.Use(cors.New(cors.Config{
		AllowOrigins:     deps.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", middleware.APIKeyHeader},
		MaxAge:           1 * time.Hour,
		AllowCredentials: false,
	}))
	r.Use(middleware.NewRateLimiter(ctx, rateLimit, rateBurst).Handler())
	r.Use(middleware.PrometheusMiddleware())

	// Metrics endpoint (unauthenticated, like health).
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
}

// registerRoutes sets up all API route handlers on the given router group.
func registerRoutes(api *gin.RouterGroup, deps *RouterDeps) {
	log := deps.Log

	health := NewHealthHandler(deps.Pool, log, deps.Version)
	buildings := NewBuildingHandler(deps.Buildings, log)
	orgs := NewOrganizationHandler(deps.Organizations, log)
	phones := NewPhoneHandler(deps.Phones, log)
	categories := NewCategoryHandler(deps.Categories, log)

	// Health and readiness are unauthenticated.
	api.GET("/health", health.Liveness)
	api.GET("/ready", health.Readiness)

	// All other API routes require the static API key.
	api.Use(middleware.APIKeyAuth(deps.APIKey, log))

	// Buildings.
	api.GET("/buildings", buildings.List)
	api.POST("/buildings", buildings.Create)
	api.GET("/buildings/:id", buildings.Get)
	api.PUT("/buildings/:id", buildings.Update)
	api.DELETE("/buildings/:id", buildings.Delete)
	api.POST("/buildings/find/radius", buildings.FindInRadius)
	api.POST("/buildings/find/bbox", buildings.FindInBBox)

	// Organizations. Static segments are registered before the :id routes so
	// gin does not treat "by-name" as an id.
	api.GET("/organizations", orgs.List)
	api.POST("/organizations", orgs.Create)
	api.GET("/organizations/by-name", orgs.GetByName)
	api.GET("/organizations/by-building/:building_id", orgs.ListByBuilding)
	api.GET("/organizations/by-category", orgs.FindByCategory)
	api.POST("/organizations/find/radius", orgs.FindInRadius)
	api.POST("/organizations/find/bbox", orgs.FindInBBox)
	api.GET("/organizations/:id", orgs.Get)
	api.PUT("/organizations/:id", orgs.Update)
	api.DELETE("/organizations/:id", orgs.Delete)

	// Phone numbers.
	api.GET("/phone-numbers", phones.List)
	api.POST("/phone-numbers", phones.Create)
	api.GET("/phone-numbers/:id", phones.Get)
	api.PUT("/phone-numbers/:id", phones.Update)
	api.DELETE("/phone-numbers/:id", phones.Delete)

	// Business categories.
	api.GET("/categories", categories.List)
	api.POST("/categories", categories.Create)
	api.GET("/categories/by-path", categories.GetByPath)
	api.GET("/categories/:id", categories.Get)
	api.PUT("/categories/:id", categories.Update)
	api.DELETE("/categories/:id", categories.Delete)
}

// NewRouter creates and configures the Gin engine with all middleware and routes.
func NewRouter(ctx context.Context, deps *RouterDeps) http.Handler {
	r := gin.New()
	setupMiddleware(ctx, r, deps)
	registerRoutes(r.Group("/api/v1"), deps)

	return r
}
