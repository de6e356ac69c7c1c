// Package cache provides the shared TTL key/value stores used for rate and
// session-lock entries.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"
)

// Store is a TTL-keyed byte store. Implementations guarantee read-your-writes
// until the TTL elapses and last-write-wins between concurrent writers.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}

// Metrics provides cache performance metrics.
type Metrics struct {
	Hits      int64
	Misses    int64
	Evictions int64
	Size      int
	Capacity  int
}

// StoreWithMetrics extends Store with metrics reporting.
type StoreWithMetrics interface {
	Store
	Metrics() Metrics
}

// GetJSON reads key and decodes it into a T. A decode failure is returned as an
// error; callers usually treat it as a miss.
func GetJSON[T any](ctx context.Context, s Store, key string) (T, bool, error) {
	var out T
	raw, ok, err := s.Get(ctx, key)
	if err != nil || !ok {
		return out, false, err
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		return out, false, fmt.Errorf("decode cache entry %q: %w", key, err)
	}
	return out, true, nil
}

// SetJSON encodes value as JSON and stores it under key.
func SetJSON(ctx context.Context, s Store, key string, value any, ttl time.Duration) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode cache entry %q: %w", key, err)
	}
	return s.Set(ctx, key, raw, ttl)
}
