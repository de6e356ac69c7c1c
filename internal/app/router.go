// Package app provides router configuration.
package app

import (
	"github.com/rs/zerolog/log"

	"github.com/guttosm/shiprate-service/config"
	"github.com/guttosm/shiprate-service/internal/http"
)

// RouterComponents holds router-related components.
type RouterComponents struct {
	Handler       *http.Handler
	AdminHandler  *http.AdminHandler
	HealthHandler *http.HealthHandler
	Config        http.RouterConfig
}

// InitializeRouter initializes HTTP handlers and router configuration.
func InitializeRouter(
	services *ServiceComponents,
	cacheComponents *CacheComponents,
	dbComponents *DatabaseComponents,
	cfg config.Config,
) *RouterComponents {
	handler := http.NewHandler(services.Calculator)
	healthHandler := http.NewHealthHandler()

	if breaker := services.Client.Breaker(); breaker != nil {
		healthHandler.RegisterCircuitBreaker("shipstation", breaker)
	}
	if cacheComponents != nil && cacheComponents.Checker != nil {
		healthHandler.RegisterChecker("redis", cacheComponents.Checker)
	}
	if dbComponents != nil {
		healthHandler.RegisterChecker("mongodb", http.HealthCheckFunc(dbComponents.DB.HealthCheck))
		healthHandler.RegisterCircuitBreaker("mongodb_settings", dbComponents.SettingsCircuitBreaker)
	}

	var adminHandler *http.AdminHandler
	if len(cfg.Auth.AdminAPIKeys) > 0 {
		var opts []http.AdminOption
		if services.Manager != nil {
			opts = append(opts, http.WithSettingsManager(services.Manager))
		}
		if services.Discovery != nil {
			opts = append(opts, http.WithDiscovery(services.Discovery))
		}
		adminHandler = http.NewAdminHandler(services.Client, services.Settings, opts...)
	} else {
		event := log.Warn()
		if services.Manager != nil {
			event = event.Bool("settings_store", true)
		}
		event.Msg("ADMIN_API_KEYS not set, admin routes are disabled")
	}

	routerCfg := http.RouterConfig{
		RateLimit:      cfg.Server.RateLimit,
		RateWindow:     cfg.Server.RateWindow,
		AdminRateLimit: cfg.Server.AdminRateLimit,
		AdminAPIKeys:   cfg.Auth.AdminAPIKeys,
		CORSOrigins:    cfg.Server.CORSOrigins,
		SwaggerUser:    cfg.Server.SwaggerUser,
		SwaggerPass:    cfg.Server.SwaggerPass,
		RequestTimeout: cfg.Server.RequestTimeout,
	}

	return &RouterComponents{
		Handler:       handler,
		AdminHandler:  adminHandler,
		HealthHandler: healthHandler,
		Config:        routerCfg,
	}
}
