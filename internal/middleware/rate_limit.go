package middleware

import (
	"hash/fnv"
	"math"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/shiprate-service/internal/domain/dto"
	"github.com/guttosm/shiprate-service/internal/i18n"
	"github.com/guttosm/shiprate-service/internal/metrics"
)

const defaultNumShards = 16

// Rate limit scopes, also used as the metric label.
const (
	scopeIP  = "ip"
	scopeKey = "key"
)

// window is one caller's fixed window.
type window struct {
	remaining int
	resetAt   time.Time
}

type limiterShard struct {
	mu      sync.Mutex
	windows map[uint64]*window
}

// decision is the outcome of counting one request.
type decision struct {
	allowed   bool
	remaining int
	resetIn   time.Duration
}

// ShardedRateLimiter is a fixed window limiter. Callers are identified by a
// 64 bit hash, so API keys are never held in memory, and spread over shards
// to keep lock contention low.
type ShardedRateLimiter struct {
	shards []*limiterShard
	rate   int
	window time.Duration
	now    func() time.Time
	stopCh chan struct{}
	once   sync.Once
}

// RateLimiterOption configures a ShardedRateLimiter.
type RateLimiterOption func(*ShardedRateLimiter)

// WithShards sets the shard count. Values below one keep the default.
func WithShards(n int) RateLimiterOption {
	return func(rl *ShardedRateLimiter) {
		if n > 0 {
			rl.shards = make([]*limiterShard, n)
		}
	}
}

// WithClock replaces time.Now, for tests.
func WithClock(now func() time.Time) RateLimiterOption {
	return func(rl *ShardedRateLimiter) { rl.now = now }
}

// NewRateLimiter allows rate requests per caller per window and starts a
// sweeper that drops idle callers until Stop is called.
func NewRateLimiter(rate int, win time.Duration, opts ...RateLimiterOption) *ShardedRateLimiter {
	rl := &ShardedRateLimiter{
		shards: make([]*limiterShard, defaultNumShards),
		rate:   rate,
		window: win,
		now:    time.Now,
		stopCh: make(chan struct{}),
	}
	for _, opt := range opts {
		opt(rl)
	}
	for i := range rl.shards {
		rl.shards[i] = &limiterShard{windows: make(map[uint64]*window)}
	}

	go rl.sweep()
	return rl
}

func identity(scope, value string) uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(scope))
	_, _ = h.Write([]byte{0})
	_, _ = h.Write([]byte(value))
	return h.Sum64()
}

func (rl *ShardedRateLimiter) take(id uint64) decision {
	shard := rl.shards[id%uint64(len(rl.shards))]
	now := rl.now()

	shard.mu.Lock()
	defer shard.mu.Unlock()

	w, ok := shard.windows[id]
	if !ok || !now.Before(w.resetAt) {
		w = &window{remaining: rl.rate, resetAt: now.Add(rl.window)}
		shard.windows[id] = w
	}

	d := decision{resetIn: w.resetAt.Sub(now)}
	if w.remaining <= 0 {
		return d
	}
	w.remaining--
	d.allowed = true
	d.remaining = w.remaining
	return d
}

// RateLimit limits requests per client IP.
func (rl *ShardedRateLimiter) RateLimit() gin.HandlerFunc {
	return rl.limit(func(c *gin.Context) (string, string) {
		return scopeIP, c.ClientIP()
	})
}

// KeyRateLimit limits admin requests per API key, or per client IP when no
// key was sent. Credential tests and discovery call the provider, so they
// get their own budget.
func (rl *ShardedRateLimiter) KeyRateLimit() gin.HandlerFunc {
	return rl.limit(func(c *gin.Context) (string, string) {
		if key := c.GetHeader(APIKeyHeader); key != "" {
			return scopeKey, key
		}
		return scopeIP, c.ClientIP()
	})
}

func (rl *ShardedRateLimiter) limit(identify func(*gin.Context) (scope, value string)) gin.HandlerFunc {
	return func(c *gin.Context) {
		scope, value := identify(c)
		d := rl.take(identity(scope, value))
		resetSeconds := strconv.Itoa(int(math.Ceil(d.resetIn.Seconds())))

		c.Header("X-RateLimit-Limit", strconv.Itoa(rl.rate))
		c.Header("X-RateLimit-Remaining", strconv.Itoa(d.remaining))
		c.Header("X-RateLimit-Reset", resetSeconds)

		if !d.allowed {
			metrics.RecordRateLimitRejection(scope)
			c.Header("Retry-After", resetSeconds)
			message := i18n.GetTranslator().Translate(i18n.ErrKeyRateLimitExceeded, i18n.GetLocale(c))
			c.AbortWithStatusJSON(http.StatusTooManyRequests,
				dto.NewError(dto.ErrCodeRateLimit, message).WithRequestID(GetRequestID(c)))
			return
		}
		c.Next()
	}
}

func (rl *ShardedRateLimiter) sweep() {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			rl.dropExpired()
		case <-rl.stopCh:
			return
		}
	}
}

// dropExpired forgets callers whose window closed more than a window ago.
func (rl *ShardedRateLimiter) dropExpired() {
	cutoff := rl.now().Add(-rl.window)
	for _, shard := range rl.shards {
		shard.mu.Lock()
		for id, w := range shard.windows {
			if w.resetAt.Before(cutoff) {
				delete(shard.windows, id)
			}
		}
		shard.mu.Unlock()
	}
}

// Stop ends the sweeper. It is safe to call more than once.
func (rl *ShardedRateLimiter) Stop() {
	rl.once.Do(func() { close(rl.stopCh) })
}

// Stats reports how many callers each shard is tracking.
func (rl *ShardedRateLimiter) Stats() (total int, perShard []int) {
	perShard = make([]int, len(rl.shards))
	for i, shard := range rl.shards {
		shard.mu.Lock()
		perShard[i] = len(shard.windows)
		shard.mu.Unlock()
		total += perShard[i]
	}
	return total, perShard
}
