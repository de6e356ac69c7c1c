package http

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/shiprate-service/internal/circuitbreaker"
)

// readinessCheckTimeout bounds each dependency check.
const readinessCheckTimeout = 2 * time.Second

// HealthChecker pings one dependency.
type HealthChecker interface {
	Check(ctx context.Context) error
}

// HealthCheckFunc adapts a ping function such as MongoDB.HealthCheck.
type HealthCheckFunc func(ctx context.Context) error

// Check calls f.
func (f HealthCheckFunc) Check(ctx context.Context) error {
	return f(ctx)
}

// HealthHandler serves the liveness and readiness probes.
type HealthHandler struct {
	checkers        map[string]HealthChecker
	circuitBreakers map[string]*circuitbreaker.CircuitBreaker
}

// NewHealthHandler returns a handler with nothing registered; readiness is
// then always ok.
func NewHealthHandler() *HealthHandler {
	return &HealthHandler{
		checkers:        make(map[string]HealthChecker),
		circuitBreakers: make(map[string]*circuitbreaker.CircuitBreaker),
	}
}

// RegisterChecker registers a dependency check, e.g. "mongodb" or "redis".
func (h *HealthHandler) RegisterChecker(name string, checker HealthChecker) {
	h.checkers[name] = checker
}

// RegisterCircuitBreaker reports the breaker state as name_circuit. An open
// breaker makes the service not ready.
func (h *HealthHandler) RegisterCircuitBreaker(name string, cb *circuitbreaker.CircuitBreaker) {
	h.circuitBreakers[name] = cb
}

// Register mounts /healthz and /readyz.
func (h *HealthHandler) Register(router *gin.Engine) {
	router.GET("/healthz", h.Liveness)
	router.GET("/readyz", h.Readiness)
}

// Liveness handles the liveness probe endpoint.
// @Summary     Liveness probe
// @Description Returns OK if the service is running.
// @Tags        Health
// @Produce     json
// @Success     200 {object} map[string]string "Service is alive"
// @Router      /healthz [get]
func (h *HealthHandler) Liveness(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// Readiness handles the readiness probe endpoint.
//
// An open provider breaker marks the service degraded: checkout would still
// answer, but with no rates.
//
// @Summary     Readiness probe
// @Description Returns OK if the settings store, the cache and the provider breaker are healthy.
// @Tags        Health
// @Produce     json
// @Success     200 {object} map[string]interface{} "Service is ready"
// @Failure     503 {object} map[string]interface{} "Service is not ready"
// @Router      /readyz [get]
func (h *HealthHandler) Readiness(c *gin.Context) {
	checks := h.runCheckers(c.Request.Context())
	ready := true
	for _, result := range checks {
		if result != "ok" {
			ready = false
		}
	}

	for name, cb := range h.circuitBreakers {
		stats := cb.GetStats()
		checks[name+"_circuit"] = stats.State
		ready = ready && stats.IsHealthy
	}

	if len(checks) == 0 {
		checks["service"] = "ok"
	}

	status, label := http.StatusOK, "ok"
	if !ready {
		status, label = http.StatusServiceUnavailable, "degraded"
	}
	c.JSON(status, gin.H{"status": label, "checks": checks})
}

// runCheckers pings every dependency at once so a slow store does not
// delay the others. Each check gets its own deadline.
func (h *HealthHandler) runCheckers(ctx context.Context) map[string]interface{} {
	var (
		mu     sync.Mutex
		wg     sync.WaitGroup
		checks = make(map[string]interface{}, len(h.checkers)+len(h.circuitBreakers))
	)

	for name, checker := range h.checkers {
		wg.Add(1)
		go func(name string, checker HealthChecker) {
			defer wg.Done()
			checkCtx, cancel := context.WithTimeout(ctx, readinessCheckTimeout)
			defer cancel()

			result := "ok"
			if err := checker.Check(checkCtx); err != nil {
				result = err.Error()
			}
			mu.Lock()
			checks[name] = result
			mu.Unlock()
		}(name, checker)
	}
	wg.Wait()

	return checks
}
