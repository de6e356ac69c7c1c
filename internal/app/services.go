// Package app provides service initialization.
package app

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/guttosm/shiprate-service/config"
	"github.com/guttosm/shiprate-service/internal/cache"
	"github.com/guttosm/shiprate-service/internal/circuitbreaker"
	"github.com/guttosm/shiprate-service/internal/service"
	"github.com/guttosm/shiprate-service/internal/shipstation"
)

const seedTimeout = 5 * time.Second

// ServiceComponents holds service-related components.
type ServiceComponents struct {
	Client     *shipstation.Client
	Settings   service.SettingsProvider
	Calculator service.RateCalculator
	// Manager and Discovery are only set when settings are stored.
	Manager   service.SettingsManager
	Discovery *service.ServiceDiscovery
}

// InitializeServices builds the ShipStation client, the settings source and
// the rate pipeline.
func InitializeServices(cfg config.Config, store cache.Store, db *DatabaseComponents) *ServiceComponents {
	breaker := circuitbreaker.New(shipstation.BreakerConfig(circuitbreaker.Config{
		FailureThreshold: cfg.Provider.CircuitBreakerFailureThreshold,
		SuccessThreshold: cfg.Provider.CircuitBreakerSuccessThreshold,
		Timeout:          cfg.Provider.CircuitBreakerTimeout,
		Name:             "shipstation",
	}))

	client := shipstation.NewClient(
		shipstation.WithBaseURL(cfg.Provider.BaseURL),
		shipstation.WithTimeouts(cfg.Provider.RateTimeout, cfg.Provider.CredentialTimeout),
		shipstation.WithCache(store, cfg.Cache.ProviderTTL),
		shipstation.WithCircuitBreaker(breaker),
	)

	components := &ServiceComponents{Client: client}

	seed := cfg.Shipping.Settings()
	if db != nil {
		settings := service.NewSettingsService(db.SettingsRepo, seed,
			service.WithSettingsCacheTTL(cfg.Cache.SettingsTTL),
		)
		seedSettings(settings)
		components.Settings = settings
		components.Manager = settings
		components.Discovery = service.NewServiceDiscovery(client, settings)
	} else {
		components.Settings = service.NewStaticSettingsProvider(seed)
	}

	components.Calculator = service.NewRateCalculatorService(client, components.Settings, store,
		service.WithRatesTTL(cfg.Cache.RatesTTL),
		service.WithLockTiming(cfg.Cache.LockTTL, cfg.Cache.LockWindow),
	)

	return components
}

// seedSettings stores the environment settings when no document exists yet.
func seedSettings(settings *service.SettingsService) {
	ctx, cancel := context.WithTimeout(context.Background(), seedTimeout)
	defer cancel()

	if err := settings.Seed(ctx); err != nil {
		log.Warn().Err(err).Msg("Failed to seed settings document")
	}
}
