package app

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/guttosm/shiprate-service/config"
	"github.com/guttosm/shiprate-service/internal/cache"
	"github.com/guttosm/shiprate-service/internal/http"
)

const redisConnectTimeout = 5 * time.Second

// CacheComponents holds the store shared by the rate pipeline and the
// ShipStation client.
type CacheComponents struct {
	Store   cache.Store
	Backend string
	// Checker is set when the store lives outside the process.
	Checker http.HealthChecker
	Close   func(context.Context) error
}

// InitializeCache builds the configured store. A Redis backend that cannot be
// reached falls back to the in-process store.
func InitializeCache(cfg config.CacheConfig) *CacheComponents {
	if cfg.Backend == config.CacheBackendRedis {
		if components := initializeRedis(cfg); components != nil {
			return components
		}
		log.Warn().Msg("Falling back to in-memory rate cache; in-flight markers are not shared between instances")
	} else if cfg.Backend != config.CacheBackendMemory {
		log.Warn().Str("backend", cfg.Backend).Msg("Unknown cache backend, using memory")
	}

	store := cache.NewShardedStore(cfg.Size, cfg.Shards)
	return &CacheComponents{
		Store:   store,
		Backend: config.CacheBackendMemory,
		Close: func(context.Context) error {
			store.Stop()
			return nil
		},
	}
}

func initializeRedis(cfg config.CacheConfig) *CacheComponents {
	ctx, cancel := context.WithTimeout(context.Background(), redisConnectTimeout)
	defer cancel()

	client, err := cache.NewRedisClient(ctx, cfg.RedisURL)
	if err != nil {
		log.Error().Err(err).Msg("Failed to connect to Redis")
		return nil
	}

	log.Info().Str("prefix", cfg.KeyPrefix).Msg("Connected to Redis")

	store := cache.NewRedisStore(client, cfg.KeyPrefix)
	return &CacheComponents{
		Store:   store,
		Backend: config.CacheBackendRedis,
		Checker: http.HealthCheckFunc(store.Ping),
		Close: func(context.Context) error {
			return store.Close()
		},
	}
}
