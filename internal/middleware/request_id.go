package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/guttosm/shiprate-service/internal/logger"
)

// RequestIDHeader carries the correlation ID in both directions.
const RequestIDHeader = "X-Request-ID"

// maxRequestIDLength bounds caller supplied IDs before they reach logs.
const maxRequestIDLength = 128

// ContextKey namespaces values stored on the gin context.
type ContextKey string

// RequestIDKey is the gin context key holding the request ID.
const RequestIDKey ContextKey = "request_id"

// RequestID tags every request with a correlation ID. A caller supplied
// X-Request-ID is kept when it is short and printable; anything else is
// replaced by a fresh UUID.
//
// The request context carries a logger bound to the ID, so services below
// the handlers log through zerolog.Ctx(ctx).
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(RequestIDHeader)
		if !validRequestID(requestID) {
			requestID = uuid.NewString()
		}

		c.Set(string(RequestIDKey), requestID)
		c.Header(RequestIDHeader, requestID)

		reqLogger := logger.Logger().With().Str("request_id", requestID).Logger()
		c.Request = c.Request.WithContext(reqLogger.WithContext(c.Request.Context()))
		c.Next()
	}
}

func validRequestID(id string) bool {
	if id == "" || len(id) > maxRequestIDLength {
		return false
	}
	for i := 0; i < len(id); i++ {
		if id[i] < 0x21 || id[i] > 0x7e {
			return false
		}
	}
	return true
}

// GetRequestID returns the ID set by RequestID, or "" outside that middleware.
func GetRequestID(c *gin.Context) string {
	id, _ := c.Get(string(RequestIDKey))
	requestID, _ := id.(string)
	return requestID
}
