package cache

import (
	"context"
	"hash/fnv"
	"time"
)

// ShardedStore distributes keys across several MemoryStores to reduce lock
// contention under concurrent checkouts.
type ShardedStore struct {
	shards    []*MemoryStore
	shardMask uint32
}

// NewShardedStore creates a sharded store with the given total capacity.
// numShards is rounded up to the next power of 2.
func NewShardedStore(capacity, numShards int, opts ...MemoryOption) *ShardedStore {
	if numShards <= 0 {
		numShards = 16
	}
	n := 1
	for n < numShards {
		n *= 2
	}

	perShard := capacity / n
	if perShard < 1 {
		perShard = 1
	}

	shardOpts := append([]MemoryOption{WithCapacity(perShard)}, opts...)
	shards := make([]*MemoryStore, n)
	for i := range shards {
		shards[i] = NewMemoryStore(shardOpts...)
	}

	return &ShardedStore{shards: shards, shardMask: uint32(n - 1)}
}

func (s *ShardedStore) shard(key string) *MemoryStore {
	h := fnv.New32a()
	_, _ = h.Write([]byte(key))
	return s.shards[h.Sum32()&s.shardMask]
}

// Get reads key from its shard.
func (s *ShardedStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	return s.shard(key).Get(ctx, key)
}

// Set writes key to its shard.
func (s *ShardedStore) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	return s.shard(key).Set(ctx, key, value, ttl)
}

// Delete removes key from its shard.
func (s *ShardedStore) Delete(ctx context.Context, key string) error {
	return s.shard(key).Delete(ctx, key)
}

// Stop shuts down every shard.
func (s *ShardedStore) Stop() {
	for _, shard := range s.shards {
		shard.Stop()
	}
}

// Metrics returns aggregated metrics from all shards.
func (s *ShardedStore) Metrics() Metrics {
	var total Metrics
	for _, shard := range s.shards {
		m := shard.Metrics()
		total.Hits += m.Hits
		total.Misses += m.Misses
		total.Evictions += m.Evictions
		total.Size += m.Size
		total.Capacity += m.Capacity
	}
	return total
}
