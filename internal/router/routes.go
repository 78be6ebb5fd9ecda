package router

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/localspot/discovery-api/internal/config"
	"github.com/localspot/discovery-api/internal/handler"
	middlewarepkg "github.com/localspot/discovery-api/internal/middleware"
)

// Handlers aggregates HTTP handlers used by the router.
type Handlers struct {
	Businesses *handler.BusinessesHandler
	Lookups    *handler.LookupHandler
}

// Register wires all HTTP routes for the API.
func Register(e *echo.Echo, cfg *config.Config, handlers Handlers) {
	e.GET("/healthz", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	limiter := middlewarepkg.QueryRateLimiter(cfg.RateLimitQueries)

	e.GET("/businesses", handlers.Businesses.List, limiter)
	e.GET("/businesses/:id", handlers.Businesses.Get, limiter)
	e.GET("/interests", handlers.Lookups.Interests)
	e.GET("/deal-breakers", handlers.Lookups.DealBreakers)
}
