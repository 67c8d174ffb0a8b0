package api

import (
	"github.com/google/uuid"
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "github.com/moodmenu/recipe-api/docs"
	"github.com/moodmenu/recipe-api/internal/api/handler"
	"github.com/moodmenu/recipe-api/internal/api/middleware"
	"github.com/moodmenu/recipe-api/internal/core/ports"
)

// Dependencies is everything the HTTP layer needs from the rest of the
// process.
type Dependencies struct {
	Auth    ports.AuthService
	Recipes ports.RecipeService
	Cookie  handler.CookieConfig
	Logger  zerolog.Logger
	// Readiness lists the backends probed by /health/ready.
	Readiness map[string]handler.Pinger
	// Registry receives the HTTP metrics. A fresh registry is used when nil;
	// /metrics always includes the default registry as well.
	Registry *prometheus.Registry
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Dependencies) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Logger)

	registry := deps.Registry
	if registry == nil {
		registry = prometheus.NewRegistry()
	}

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestIDWithConfig(echomiddleware.RequestIDConfig{Generator: uuid.NewString}))
	e.Use(middleware.RequestLogger(deps.Logger))
	e.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Namespace:  "moodrecipes",
		Subsystem:  "http",
		Registerer: registry,
	}))

	// --- Operational endpoints (no auth required) ---
	e.GET("/health", handler.NewHealthHandler().Liveness)
	e.GET("/health/ready", handler.NewReadinessHandler(deps.Readiness).Readiness)
	e.GET("/metrics", echoprometheus.NewHandlerWithConfig(echoprometheus.HandlerConfig{
		Gatherer: prometheus.Gatherers{registry, prometheus.DefaultGatherer},
	}))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	authHandler := handler.NewAuthHandler(deps.Auth, deps.Cookie, deps.Logger)
	recipeHandler := handler.NewRecipeHandler(deps.Recipes)
	adminRecipeHandler := handler.NewAdminRecipeHandler(deps.Recipes)
	adminUserHandler := handler.NewAdminUserHandler(deps.Auth)

	requireAuth := middleware.RequireAuthenticated(deps.Auth, deps.Cookie.Name)
	requireElevated := middleware.RequireElevated()

	api := e.Group("/api")

	// --- Auth routes ---
	api.POST("/login", authHandler.Login)
	api.POST("/logout", authHandler.Logout)
	api.GET("/auth/status", authHandler.Status)

	// --- Catalog (any authenticated user) ---
	api.GET("/moods", recipeHandler.Moods, requireAuth)
	api.GET("/recipes/:mood", recipeHandler.Pick, requireAuth)

	// --- Administration (elevated only) ---
	admin := api.Group("/admin", requireAuth, requireElevated)
	admin.GET("/recipes", adminRecipeHandler.List)
	admin.POST("/recipes", adminRecipeHandler.Create)
	admin.PUT("/recipes/:id", adminRecipeHandler.Update)
	admin.PATCH("/recipes/:id/toggle", adminRecipeHandler.Toggle)
	admin.POST("/users", adminUserHandler.Create)
	admin.GET("/users", adminUserHandler.List)

	return e
}
