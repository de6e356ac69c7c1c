package http

import (
	"github.com/gin-gonic/gin"
	"github.com/guttosm/shiprate-service/internal/middleware"
)

// PublicRouteGroup defines routes that don't require authentication.
type PublicRouteGroup interface {
	// RegisterPublicRoutes registers public routes to the given router group.
	RegisterPublicRoutes(rg *gin.RouterGroup)
}

// ProtectedRouteGroup defines routes that require authentication.
type ProtectedRouteGroup interface {
	// RegisterProtectedRoutes registers protected routes to the given router group.
	RegisterProtectedRoutes(rg *gin.RouterGroup, cfg *RouterConfig)
}

// RatesRoutes registers the checkout rates endpoint.
type RatesRoutes struct {
	handler *Handler
}

// NewRatesRoutes creates the checkout route group.
func NewRatesRoutes(handler *Handler) *RatesRoutes {
	return &RatesRoutes{handler: handler}
}

// RegisterPublicRoutes registers POST /rates.
func (r *RatesRoutes) RegisterPublicRoutes(rg *gin.RouterGroup) {
	rg.POST("/rates", r.handler.CalculateRates)
}

// AdminRoutes registers the administrator endpoints under /admin.
type AdminRoutes struct {
	handler *AdminHandler
}

// NewAdminRoutes creates the admin route group.
func NewAdminRoutes(handler *AdminHandler) *AdminRoutes {
	return &AdminRoutes{handler: handler}
}

// RegisterProtectedRoutes registers the admin routes behind API key auth.
// The settings and discovery routes exist only when a settings store is
// configured.
func (r *AdminRoutes) RegisterProtectedRoutes(rg *gin.RouterGroup, cfg *RouterConfig) {
	admin := rg.Group("/admin", middleware.APIKeyAuth(cfg.AdminAPIKeys))
	if cfg.AdminRateLimit > 0 {
		limiter := middleware.NewRateLimiter(cfg.AdminRateLimit, cfg.RateWindow)
		admin.Use(limiter.KeyRateLimit())
	}

	admin.GET("/services", r.handler.ListServices)
	admin.POST("/credentials/test", r.handler.TestCredentials)

	if r.handler.manager != nil {
		admin.GET("/settings", r.handler.GetSettings)
		admin.PUT("/settings", r.handler.UpdateSettings)
	}
	if r.handler.discovery != nil {
		admin.POST("/services/discover", r.handler.DiscoverServices)
	}
}
