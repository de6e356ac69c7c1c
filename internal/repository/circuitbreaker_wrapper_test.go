//go:build !integration

package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/guttosm/shiprate-service/internal/circuitbreaker"
	"github.com/guttosm/shiprate-service/internal/domain/model"
)

// stubSettingsRepository fails every call while err is set.
type stubSettingsRepository struct {
	doc   *SettingsDocument
	err   error
	calls int
}

func (s *stubSettingsRepository) Get(context.Context) (*SettingsDocument, error) {
	s.calls++
	return s.doc, s.err
}

func (s *stubSettingsRepository) Save(_ context.Context, settings model.Settings, updatedBy string) (*SettingsDocument, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return &SettingsDocument{ID: GlobalSettingsID, Settings: settings, Version: 2, UpdatedBy: updatedBy}, nil
}

func (s *stubSettingsRepository) SeedIfMissing(context.Context, model.Settings) (bool, error) {
	s.calls++
	return s.err == nil, s.err
}

func newTestBreaker() *circuitbreaker.CircuitBreaker {
	return circuitbreaker.New(circuitbreaker.Config{
		FailureThreshold: 2,
		SuccessThreshold: 1,
		Timeout:          time.Minute,
		Name:             "settings-test",
	})
}

func TestSettingsRepositoryWithCircuitBreaker(t *testing.T) {
	ctx := context.Background()
	errStore := errors.New("connection reset")

	t.Run("passes results through while closed", func(t *testing.T) {
		stub := &stubSettingsRepository{doc: &SettingsDocument{ID: GlobalSettingsID, Version: 3}}
		repo := NewSettingsRepositoryWithCircuitBreaker(stub, newTestBreaker())

		doc, err := repo.Get(ctx)
		require.NoError(t, err)
		assert.Equal(t, 3, doc.Version)

		saved, err := repo.Save(ctx, model.Settings{APIKey: "k"}, "admin")
		require.NoError(t, err)
		assert.Equal(t, "admin", saved.UpdatedBy)

		created, err := repo.SeedIfMissing(ctx, model.Settings{})
		require.NoError(t, err)
		assert.True(t, created)
	})

	t.Run("open circuit reads return nil without calling the store", func(t *testing.T) {
		stub := &stubSettingsRepository{err: errStore}
		cb := newTestBreaker()
		repo := NewSettingsRepositoryWithCircuitBreaker(stub, cb)

		for i := 0; i < 2; i++ {
			_, err := repo.Get(ctx)
			assert.ErrorIs(t, err, errStore)
		}
		require.True(t, cb.IsOpen())

		doc, err := repo.Get(ctx)
		assert.NoError(t, err)
		assert.Nil(t, doc)
		assert.Equal(t, 2, stub.calls)
	})

	t.Run("open circuit writes report the circuit error", func(t *testing.T) {
		stub := &stubSettingsRepository{err: errStore}
		cb := newTestBreaker()
		repo := NewSettingsRepositoryWithCircuitBreaker(stub, cb)

		for i := 0; i < 2; i++ {
			_, _ = repo.Save(ctx, model.Settings{}, "admin")
		}

		_, err := repo.Save(ctx, model.Settings{}, "admin")
		assert.ErrorIs(t, err, circuitbreaker.ErrCircuitOpen)

		_, err = repo.SeedIfMissing(ctx, model.Settings{})
		assert.ErrorIs(t, err, circuitbreaker.ErrCircuitOpen)
	})

	t.Run("exposes the breaker", func(t *testing.T) {
		cb := newTestBreaker()
		repo := NewSettingsRepositoryWithCircuitBreaker(&stubSettingsRepository{}, cb)

		assert.Same(t, cb, repo.GetCircuitBreaker())
	})
}
