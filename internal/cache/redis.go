package cache

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/guttosm/shiprate-service/internal/metrics"
)

// RedisStore is a Store backed by Redis, shared by every service instance.
type RedisStore struct {
	client *redis.Client
	prefix string
}

// NewRedisClient builds a client from a redis:// URL or a bare host:port and
// verifies the connection.
func NewRedisClient(ctx context.Context, redisURL string) (*redis.Client, error) {
	var opts *redis.Options
	if strings.HasPrefix(redisURL, "redis://") || strings.HasPrefix(redisURL, "rediss://") {
		parsed, err := redis.ParseURL(redisURL)
		if err != nil {
			return nil, fmt.Errorf("parse redis url: %w", err)
		}
		opts = parsed
	} else {
		opts = &redis.Options{Addr: redisURL}
	}

	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return client, nil
}

// NewRedisStore wraps client. Every key is namespaced with prefix.
func NewRedisStore(client *redis.Client, prefix string) *RedisStore {
	return &RedisStore{client: client, prefix: prefix}
}

func (r *RedisStore) key(k string) string {
	return r.prefix + k
}

// Get reads key. redis.Nil is reported as a miss.
func (r *RedisStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	raw, err := r.client.Get(ctx, r.key(key)).Bytes()
	if errors.Is(err, redis.Nil) {
		metrics.RecordCacheOperation("get", "miss")
		return nil, false, nil
	}
	if err != nil {
		metrics.RecordCacheOperation("get", "error")
		return nil, false, fmt.Errorf("redis get %q: %w", key, err)
	}
	metrics.RecordCacheOperation("get", "hit")
	return raw, true, nil
}

// Set writes key with ttl. A non-positive ttl deletes the key.
func (r *RedisStore) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if ttl <= 0 {
		return r.Delete(ctx, key)
	}
	if err := r.client.Set(ctx, r.key(key), value, ttl).Err(); err != nil {
		metrics.RecordCacheOperation("set", "error")
		return fmt.Errorf("redis set %q: %w", key, err)
	}
	metrics.RecordCacheOperation("set", "success")
	return nil
}

// Delete removes key.
func (r *RedisStore) Delete(ctx context.Context, key string) error {
	if err := r.client.Del(ctx, r.key(key)).Err(); err != nil {
		metrics.RecordCacheOperation("delete", "error")
		return fmt.Errorf("redis del %q: %w", key, err)
	}
	metrics.RecordCacheOperation("delete", "success")
	return nil
}

// Ping checks the connection, used by readiness probes.
func (r *RedisStore) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

// Close releases the underlying client.
func (r *RedisStore) Close() error {
	return r.client.Close()
}
