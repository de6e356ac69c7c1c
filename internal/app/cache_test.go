//go:build !integration

package app

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/guttosm/shiprate-service/config"
	"github.com/guttosm/shiprate-service/internal/cache"
)

func TestInitializeCache(t *testing.T) {
	tests := []struct {
		name string
		cfg  config.CacheConfig
	}{
		{
			name: "memory backend",
			cfg:  config.CacheConfig{Backend: config.CacheBackendMemory, Size: 100, Shards: 4},
		},
		{
			name: "unknown backend",
			cfg:  config.CacheConfig{Backend: "memcached", Size: 100, Shards: 4},
		},
		{
			name: "unreachable redis falls back",
			cfg:  config.CacheConfig{Backend: config.CacheBackendRedis, RedisURL: "redis://127.0.0.1:1/0", Size: 100, Shards: 4},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			components := InitializeCache(tt.cfg)
			require.NotNil(t, components)
			t.Cleanup(func() { _ = components.Close(context.Background()) })

			assert.Equal(t, config.CacheBackendMemory, components.Backend)
			assert.IsType(t, &cache.ShardedStore{}, components.Store)
			assert.Nil(t, components.Checker)
		})
	}
}
