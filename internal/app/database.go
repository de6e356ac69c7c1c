// Package app provides database initialization and setup.
package app

import (
	"github.com/rs/zerolog/log"

	"github.com/guttosm/shiprate-service/config"
	"github.com/guttosm/shiprate-service/internal/circuitbreaker"
	"github.com/guttosm/shiprate-service/internal/repository"
)

// DatabaseComponents holds database-related components.
type DatabaseComponents struct {
	DB                     *repository.MongoDB
	SettingsRepo           repository.SettingsRepositoryInterface
	SettingsCircuitBreaker *circuitbreaker.CircuitBreaker
}

// InitializeDatabase connects to MongoDB and builds the settings repository.
// Returns nil if database is disabled or connection fails.
func InitializeDatabase(cfg config.DatabaseConfig) *DatabaseComponents {
	if !cfg.Enabled {
		return nil
	}

	db, err := repository.NewMongoDB(cfg.URI, cfg.DatabaseName)
	if err != nil {
		log.Error().Err(err).Msg("Failed to connect to MongoDB - continuing with environment settings")
		return nil
	}

	log.Info().Str("database", cfg.DatabaseName).Msg("Connected to MongoDB")

	settingsCB := circuitbreaker.New(circuitbreaker.Config{
		FailureThreshold: cfg.CircuitBreakerFailureThreshold,
		SuccessThreshold: cfg.CircuitBreakerSuccessThreshold,
		Timeout:          cfg.CircuitBreakerTimeout,
		Name:             "mongodb-settings",
	})

	settingsRepo := repository.NewSettingsRepository(db)

	return &DatabaseComponents{
		DB:                     db,
		SettingsRepo:           repository.NewSettingsRepositoryWithCircuitBreaker(settingsRepo, settingsCB),
		SettingsCircuitBreaker: settingsCB,
	}
}
