package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestTimeout(t *testing.T) {
	tests := []struct {
		name       string
		timeout    time.Duration
		handler    gin.HandlerFunc
		wantStatus int
	}{
		{
			name:    "fast request completes",
			timeout: time.Second,
			handler: func(c *gin.Context) {
				c.Status(http.StatusOK)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:    "handler honouring the deadline gets a 504",
			timeout: 20 * time.Millisecond,
			handler: func(c *gin.Context) {
				<-c.Request.Context().Done()
			},
			wantStatus: http.StatusGatewayTimeout,
		},
		{
			name:    "response written before the deadline is kept",
			timeout: 20 * time.Millisecond,
			handler: func(c *gin.Context) {
				c.JSON(http.StatusOK, gin.H{"rates": []string{}})
				<-c.Request.Context().Done()
			},
			wantStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := gin.New()
			router.Use(Timeout(tt.timeout))
			router.GET("/test", tt.handler)

			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/test", nil))

			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}
}

func TestTimeout_ContextHasDeadline(t *testing.T) {
	router := gin.New()
	router.Use(Timeout(0))

	var remaining time.Duration
	router.GET("/test", func(c *gin.Context) {
		deadline, ok := c.Request.Context().Deadline()
		assert.True(t, ok)
		remaining = time.Until(deadline)
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/test", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.InDelta(t, DefaultRequestTimeout.Seconds(), remaining.Seconds(), 1)
}
