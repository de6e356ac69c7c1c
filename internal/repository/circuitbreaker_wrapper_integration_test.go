//go:build integration

package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/guttosm/shiprate-service/internal/circuitbreaker"
)

func TestSettingsRepositoryWithCircuitBreaker_Integration(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	db := setupTestDBFromSharedContainer(t)

	cb := circuitbreaker.New(circuitbreaker.DefaultConfig())
	wrappedRepo := NewSettingsRepositoryWithCircuitBreaker(NewSettingsRepository(db), cb)

	created, err := wrappedRepo.SeedIfMissing(ctx, testSettings("seeded"))
	require.NoError(t, err)
	assert.True(t, created)

	doc, err := wrappedRepo.Save(ctx, testSettings("saved"), "admin")
	require.NoError(t, err)
	assert.Equal(t, 2, doc.Version)

	doc, err = wrappedRepo.Get(ctx)
	require.NoError(t, err)
	require.NotNil(t, doc)
	assert.Equal(t, "saved", doc.Settings.APIKey)
	assert.Equal(t, circuitbreaker.StateClosed, cb.State())
}

func TestSettingsRepositoryWithCircuitBreaker_ClosedConnection(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	db := setupTestDBFromSharedContainer(t)
	require.NoError(t, db.Close(ctx))

	cb := circuitbreaker.New(circuitbreaker.Config{
		FailureThreshold: 2,
		SuccessThreshold: 1,
		Timeout:          time.Minute,
		Name:             "settings-closed",
	})
	wrappedRepo := NewSettingsRepositoryWithCircuitBreaker(NewSettingsRepository(db), cb)

	for i := 0; i < 2; i++ {
		_, err := wrappedRepo.Get(ctx)
		assert.Error(t, err)
	}
	require.True(t, cb.IsOpen())

	doc, err := wrappedRepo.Get(ctx)
	assert.NoError(t, err, "open circuit reads fall back to nil")
	assert.Nil(t, doc)

	_, err = wrappedRepo.Save(ctx, testSettings("k"), "admin")
	assert.ErrorIs(t, err, circuitbreaker.ErrCircuitOpen)
}
