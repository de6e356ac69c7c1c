//go:build integration

package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMongoDB_Integration(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	uri := getSharedContainerURI()
	dbName := sanitizeDBName(t.Name())

	db, err := NewMongoDB(uri, dbName)
	require.NoError(t, err)
	defer func() {
		require.NoError(t, db.Close(ctx))
	}()

	t.Run("connection successful", func(t *testing.T) {
		assert.NotNil(t, db.Client)
		assert.NotNil(t, db.Database)
		assert.NotNil(t, db.Settings)
		assert.Equal(t, settingsCollection, db.Settings.Name())
	})

	t.Run("health check", func(t *testing.T) {
		pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()

		assert.NoError(t, db.HealthCheck(pingCtx))
	})

	t.Run("custom pool configuration", func(t *testing.T) {
		cfg := DefaultMongoConfig()
		cfg.MaxPoolSize = 5
		cfg.EnableCompression = false

		custom, err := NewMongoDBWithConfig(uri, dbName, cfg)
		require.NoError(t, err)
		defer func() { _ = custom.Close(ctx) }()

		assert.NoError(t, custom.HealthCheck(ctx))
	})
}

func TestMongoDB_UnreachableServer(t *testing.T) {
	cfg := DefaultMongoConfig()
	cfg.ConnectTimeout = 500 * time.Millisecond
	cfg.ServerSelectionTimeout = 300 * time.Millisecond

	db, err := NewMongoDBWithConfig("mongodb://127.0.0.1:1", "unreachable", cfg)

	assert.Error(t, err)
	assert.Nil(t, db)
}
