package repository

import (
	"context"
	"errors"

	"github.com/guttosm/shiprate-service/internal/circuitbreaker"
	"github.com/guttosm/shiprate-service/internal/domain/model"
)

// SettingsRepositoryWithCircuitBreaker routes every settings call through a breaker.
type SettingsRepositoryWithCircuitBreaker struct {
	repo           SettingsRepositoryInterface
	circuitBreaker *circuitbreaker.CircuitBreaker
}

// NewSettingsRepositoryWithCircuitBreaker wraps repo with cb.
func NewSettingsRepositoryWithCircuitBreaker(repo SettingsRepositoryInterface, cb *circuitbreaker.CircuitBreaker) *SettingsRepositoryWithCircuitBreaker {
	return &SettingsRepositoryWithCircuitBreaker{
		repo:           repo,
		circuitBreaker: cb,
	}
}

// Get returns the settings document with circuit breaker protection.
// While the circuit is open it returns nil so callers fall back to seed settings.
func (r *SettingsRepositoryWithCircuitBreaker) Get(ctx context.Context) (*SettingsDocument, error) {
	result, err := circuitbreaker.Do(ctx, r.circuitBreaker, func() (*SettingsDocument, error) {
		return r.repo.Get(ctx)
	})
	if errors.Is(err, circuitbreaker.ErrCircuitOpen) {
		return nil, nil
	}
	return result, err
}

// Save stores settings with circuit breaker protection. Writes are never
// silently dropped: an open circuit is returned as an error.
func (r *SettingsRepositoryWithCircuitBreaker) Save(ctx context.Context, settings model.Settings, updatedBy string) (*SettingsDocument, error) {
	return circuitbreaker.Do(ctx, r.circuitBreaker, func() (*SettingsDocument, error) {
		return r.repo.Save(ctx, settings, updatedBy)
	})
}

// SeedIfMissing seeds settings with circuit breaker protection.
func (r *SettingsRepositoryWithCircuitBreaker) SeedIfMissing(ctx context.Context, settings model.Settings) (bool, error) {
	return circuitbreaker.Do(ctx, r.circuitBreaker, func() (bool, error) {
		return r.repo.SeedIfMissing(ctx, settings)
	})
}

// GetCircuitBreaker exposes the breaker to the readiness probe.
func (r *SettingsRepositoryWithCircuitBreaker) GetCircuitBreaker() *circuitbreaker.CircuitBreaker {
	return r.circuitBreaker
}
