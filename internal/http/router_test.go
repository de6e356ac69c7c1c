package http

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/guttosm/shiprate-service/internal/domain/model"
	"github.com/guttosm/shiprate-service/internal/mocks"
	"github.com/guttosm/shiprate-service/internal/service"
)

func newTestAdmin() *AdminHandler {
	return NewAdminHandler(new(mocks.MockCredentialTester), service.NewStaticSettingsProvider(model.Settings{}))
}

func TestNewRouter(t *testing.T) {
	handler := NewHandler(new(mocks.MockRateCalculator))

	tests := []struct {
		name  string
		admin *AdminHandler
		cfg   RouterConfig
	}{
		{
			name: "default config",
			cfg:  DefaultRouterConfig(),
		},
		{
			name:  "with admin routes",
			admin: newTestAdmin(),
			cfg: RouterConfig{
				RateLimit:      100,
				RateWindow:     time.Minute,
				AdminRateLimit: 10,
				AdminAPIKeys:   []string{"test-key"},
			},
		},
		{
			name: "without rate limiting or timeout",
			cfg:  RouterConfig{},
		},
		{
			name: "with swagger credentials",
			cfg: RouterConfig{
				SwaggerUser: "docs",
				SwaggerPass: "secret",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := NewRouter(handler, tt.admin, NewHealthHandler(), tt.cfg)
			assert.NotNil(t, router)
		})
	}
}

func TestRouter_Endpoints(t *testing.T) {
	cfg := DefaultRouterConfig()
	cfg.AdminAPIKeys = []string{"test-key"}
	router := NewRouter(NewHandler(new(mocks.MockRateCalculator)), newTestAdmin(), NewHealthHandler(), cfg)

	tests := []struct {
		name           string
		method         string
		path           string
		expectedStatus int
	}{
		{
			name:           "healthz endpoint",
			method:         http.MethodGet,
			path:           "/healthz",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "readyz endpoint",
			method:         http.MethodGet,
			path:           "/readyz",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "metrics endpoint",
			method:         http.MethodGet,
			path:           "/metrics",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "swagger endpoint",
			method:         http.MethodGet,
			path:           "/swagger/index.html",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "rates endpoint without body",
			method:         http.MethodPost,
			path:           "/api/rates",
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "admin endpoint without key",
			method:         http.MethodGet,
			path:           "/api/admin/services",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "rates endpoint only accepts POST",
			method:         http.MethodGet,
			path:           "/api/rates",
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, nil)
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}

func TestRouter_SwaggerBasicAuth(t *testing.T) {
	cfg := DefaultRouterConfig()
	cfg.SwaggerUser = "docs"
	cfg.SwaggerPass = "secret"
	router := NewRouter(nil, nil, NewHealthHandler(), cfg)

	req := httptest.NewRequest(http.MethodGet, "/swagger/index.html", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	req = httptest.NewRequest(http.MethodGet, "/swagger/index.html", nil)
	req.SetBasicAuth("docs", "secret")
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRouter_GlobalRateLimit(t *testing.T) {
	cfg := DefaultRouterConfig()
	cfg.RateLimit = 2
	router := NewRouter(nil, nil, NewHealthHandler(), cfg)

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
		req.RemoteAddr = "203.0.113.7:4000"
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		codes = append(codes, w.Code)
	}

	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)
}

func TestRouter_AdminKeyRateLimit(t *testing.T) {
	cfg := DefaultRouterConfig()
	cfg.AdminRateLimit = 1
	cfg.AdminAPIKeys = []string{"key-one-0001", "key-two-0002"}
	router := NewRouter(nil, newTestAdmin(), NewHealthHandler(), cfg)

	call := func(key string) int {
		req := httptest.NewRequest(http.MethodGet, "/api/admin/services", nil)
		req.Header.Set("X-API-Key", key)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w.Code
	}

	assert.Equal(t, http.StatusOK, call("key-one-0001"))
	assert.Equal(t, http.StatusTooManyRequests, call("key-one-0001"))
	assert.Equal(t, http.StatusOK, call("key-two-0002"), "budget is per key")
}

func TestRouter_CORS(t *testing.T) {
	cfg := DefaultRouterConfig()
	cfg.CORSOrigins = []string{"https://shop.example.com"}
	router := NewRouter(NewHandler(new(mocks.MockRateCalculator)), nil, NewHealthHandler(), cfg)

	req := httptest.NewRequest(http.MethodOptions, "/api/rates", nil)
	req.Header.Set("Origin", "https://shop.example.com")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, "https://shop.example.com", w.Header().Get("Access-Control-Allow-Origin"))
	assert.True(t, strings.Contains(w.Header().Get("Access-Control-Allow-Methods"), http.MethodPost))
}
