package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecovery(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name           string
		handler        gin.HandlerFunc
		expectedStatus int
		checkResponse  func(*testing.T, *httptest.ResponseRecorder)
	}{
		{
			name:           "panic becomes the internal error envelope",
			handler:        func(*gin.Context) { panic("provider response was nil") },
			expectedStatus: http.StatusInternalServerError,
			checkResponse: func(t *testing.T, w *httptest.ResponseRecorder) {
				var body map[string]interface{}
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
				assert.Equal(t, "internal_error", body["error"])
				assert.Equal(t, "rq-1", body["request_id"])
			},
		},
		{
			name: "panic after the body was written keeps the response",
			handler: func(c *gin.Context) {
				c.String(http.StatusOK, "partial")
				panic("late panic")
			},
			expectedStatus: http.StatusOK,
			checkResponse: func(t *testing.T, w *httptest.ResponseRecorder) {
				assert.Equal(t, "partial", w.Body.String())
			},
		},
		{
			name:           "no panic passes through",
			handler:        func(c *gin.Context) { c.String(http.StatusOK, "ok") },
			expectedStatus: http.StatusOK,
			checkResponse: func(t *testing.T, w *httptest.ResponseRecorder) {
				assert.Equal(t, "ok", w.Body.String())
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			captureLogs(t)
			router := gin.New()
			router.Use(RequestID(), Recovery())
			router.GET("/rates", tt.handler)

			req := httptest.NewRequest(http.MethodGet, "/rates", nil)
			req.Header.Set(RequestIDHeader, "rq-1")
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			tt.checkResponse(t, w)
		})
	}
}

func TestRecovery_LogsWithRequestID(t *testing.T) {
	buf := captureLogs(t)

	router := gin.New()
	router.Use(RequestID(), Recovery())
	router.POST("/api/rates", func(*gin.Context) { panic("boom") })

	req := httptest.NewRequest(http.MethodPost, "/api/rates", nil)
	req.Header.Set(RequestIDHeader, "rq-panic")
	router.ServeHTTP(httptest.NewRecorder(), req)

	logged := buf.String()
	assert.Contains(t, logged, `"request_id":"rq-panic"`)
	assert.Contains(t, logged, `"panic":"boom"`)
	assert.Contains(t, logged, `"method":"POST"`)
	assert.Contains(t, logged, `"stack"`)
}

func TestRecovery_WithoutRequestID(t *testing.T) {
	buf := captureLogs(t)

	router := gin.New()
	router.Use(Recovery())
	router.GET("/panic", func(*gin.Context) { panic("no id") })

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/panic", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, buf.String(), `"panic":"no id"`)
}
