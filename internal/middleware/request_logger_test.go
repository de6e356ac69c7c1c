package middleware

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func captureLogs(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	previous := log.Logger
	log.Logger = zerolog.New(&buf)
	t.Cleanup(func() { log.Logger = previous })
	return &buf
}

func Test_getLogLevel(t *testing.T) {
	tests := []struct {
		statusCode int
		expected   zerolog.Level
	}{
		{statusCode: 200, expected: zerolog.InfoLevel},
		{statusCode: 301, expected: zerolog.InfoLevel},
		{statusCode: 400, expected: zerolog.WarnLevel},
		{statusCode: 404, expected: zerolog.WarnLevel},
		{statusCode: 500, expected: zerolog.ErrorLevel},
		{statusCode: 503, expected: zerolog.ErrorLevel},
	}

	for _, tt := range tests {
		t.Run(http.StatusText(tt.statusCode), func(t *testing.T) {
			assert.Equal(t, tt.expected, getLogLevel(tt.statusCode))
		})
	}
}

func TestRequestLogger(t *testing.T) {
	tests := []struct {
		name       string
		path       string
		status     int
		wantLogged bool
		wantLevel  string
	}{
		{name: "regular request", path: "/api/rates", status: http.StatusOK, wantLogged: true, wantLevel: "info"},
		{name: "client error", path: "/api/rates", status: http.StatusBadRequest, wantLogged: true, wantLevel: "warn"},
		{name: "skipped probe", path: "/healthz", status: http.StatusOK, wantLogged: false},
		{name: "failing probe is still logged", path: "/healthz", status: http.StatusServiceUnavailable, wantLogged: true, wantLevel: "error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := captureLogs(t)

			router := gin.New()
			router.Use(RequestID(), RequestLogger("/healthz", "/metrics"))
			router.GET(tt.path, func(c *gin.Context) {
				c.Status(tt.status)
			})

			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			req.Header.Set(RequestIDHeader, "req-1")
			router.ServeHTTP(httptest.NewRecorder(), req)

			if !tt.wantLogged {
				assert.Empty(t, buf.String())
				return
			}

			var entry map[string]interface{}
			require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
			assert.Equal(t, tt.wantLevel, entry["level"])
			assert.Equal(t, "req-1", entry["request_id"])
			assert.Equal(t, tt.path, entry["path"])
			assert.Equal(t, float64(tt.status), entry["status_code"])
		})
	}
}
