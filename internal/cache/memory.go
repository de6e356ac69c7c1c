package cache

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/guttosm/shiprate-service/internal/metrics"
)

const (
	defaultCapacity        = 10000
	defaultCleanupInterval = 30 * time.Second
)

// MemoryOption configures a MemoryStore.
type MemoryOption func(*MemoryStore)

// WithCapacity bounds the number of entries before LRU eviction kicks in.
func WithCapacity(capacity int) MemoryOption {
	return func(m *MemoryStore) {
		if capacity > 0 {
			m.capacity = capacity
		}
	}
}

// WithCleanupInterval sets how often the reaper sweeps expired entries.
func WithCleanupInterval(d time.Duration) MemoryOption {
	return func(m *MemoryStore) {
		if d > 0 {
			m.cleanupInterval = d
		}
	}
}

// WithClock replaces time.Now, mainly for tests.
func WithClock(now func() time.Time) MemoryOption {
	return func(m *MemoryStore) {
		if now != nil {
			m.now = now
		}
	}
}

// MemoryStore is an in-process Store combining LRU eviction with per-entry
// TTL expiration. A background goroutine reaps expired entries until Stop.
type MemoryStore struct {
	mu              sync.RWMutex
	capacity        int
	cleanupInterval time.Duration
	now             func() time.Time
	items           map[string]*entry
	head            *entry
	tail            *entry
	stopCh          chan struct{}
	stopOnce        sync.Once
	hits            int64
	misses          int64
	evictions       int64
}

type entry struct {
	key       string
	value     []byte
	expiresAt time.Time
	prev      *entry
	next      *entry
}

// NewMemoryStore creates a MemoryStore and starts its reaper.
func NewMemoryStore(opts ...MemoryOption) *MemoryStore {
	m := &MemoryStore{
		capacity:        defaultCapacity,
		cleanupInterval: defaultCleanupInterval,
		now:             time.Now,
		stopCh:          make(chan struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	m.items = make(map[string]*entry, m.capacity)
	go m.startCleanup()
	return m
}

// Get returns a copy of the value stored under key if it has not expired.
// The lookup, expiry check and LRU bump happen under one write lock because
// Set rewrites entries in place.
func (m *MemoryStore) Get(_ context.Context, key string) ([]byte, bool, error) {
	m.mu.Lock()
	e, ok := m.items[key]
	if !ok {
		m.mu.Unlock()
		atomic.AddInt64(&m.misses, 1)
		metrics.RecordCacheOperation("get", "miss")
		return nil, false, nil
	}

	if !m.now().Before(e.expiresAt) {
		m.removeEntry(e)
		m.mu.Unlock()
		atomic.AddInt64(&m.misses, 1)
		metrics.RecordCacheOperation("get", "expired")
		return nil, false, nil
	}

	m.moveToFront(e)
	value := append([]byte(nil), e.value...)
	m.mu.Unlock()

	atomic.AddInt64(&m.hits, 1)
	metrics.RecordCacheOperation("get", "hit")
	return value, true, nil
}

// Set stores value under key for ttl. A non-positive ttl deletes the key.
func (m *MemoryStore) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if ttl <= 0 {
		return m.Delete(ctx, key)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	stored := append([]byte(nil), value...)
	expiresAt := m.now().Add(ttl)

	if e, ok := m.items[key]; ok {
		e.value = stored
		e.expiresAt = expiresAt
		m.moveToFront(e)
		metrics.RecordCacheOperation("set", "success")
		return nil
	}

	e := &entry{key: key, value: stored, expiresAt: expiresAt}
	m.items[key] = e
	m.addToFront(e)

	if len(m.items) > m.capacity {
		m.removeTail()
		atomic.AddInt64(&m.evictions, 1)
		metrics.RecordCacheOperation("evict", "capacity")
	}
	metrics.RecordCacheOperation("set", "success")
	metrics.UpdateCacheSize(len(m.items))
	return nil
}

// Delete removes key. Deleting a missing key is not an error.
func (m *MemoryStore) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if e, ok := m.items[key]; ok {
		m.removeEntry(e)
		metrics.RecordCacheOperation("delete", "success")
	}
	return nil
}

// Len returns the number of entries, including ones not yet reaped.
func (m *MemoryStore) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.items)
}

// Metrics returns current cache performance metrics.
func (m *MemoryStore) Metrics() Metrics {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return Metrics{
		Hits:      atomic.LoadInt64(&m.hits),
		Misses:    atomic.LoadInt64(&m.misses),
		Evictions: atomic.LoadInt64(&m.evictions),
		Size:      len(m.items),
		Capacity:  m.capacity,
	}
}

// Stop shuts the reaper down. It is safe to call more than once.
func (m *MemoryStore) Stop() {
	m.stopOnce.Do(func() { close(m.stopCh) })
}

func (m *MemoryStore) startCleanup() {
	ticker := time.NewTicker(m.cleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			m.cleanup()
		case <-m.stopCh:
			return
		}
	}
}

// cleanup removes all expired entries.
func (m *MemoryStore) cleanup() {
	m.mu.Lock()
	defer m.mu.Unlock()

	current := m.now()
	for _, e := range m.items {
		if !current.Before(e.expiresAt) {
			m.removeEntry(e)
		}
	}
	metrics.UpdateCacheSize(len(m.items))
}

func (m *MemoryStore) removeEntry(e *entry) {
	delete(m.items, e.key)
	m.unlink(e)
}

func (m *MemoryStore) moveToFront(e *entry) {
	if e == m.head {
		return
	}
	m.unlink(e)
	m.addToFront(e)
}

func (m *MemoryStore) addToFront(e *entry) {
	e.prev = nil
	e.next = m.head
	if m.head != nil {
		m.head.prev = e
	}
	m.head = e
	if m.tail == nil {
		m.tail = e
	}
}

func (m *MemoryStore) unlink(e *entry) {
	if e.prev != nil {
		e.prev.next = e.next
	} else {
		m.head = e.next
	}
	if e.next != nil {
		e.next.prev = e.prev
	} else {
		m.tail = e.prev
	}
	e.prev = nil
	e.next = nil
}

// removeTail removes the least recently used entry.
func (m *MemoryStore) removeTail() {
	if m.tail == nil {
		return
	}
	m.removeEntry(m.tail)
}
