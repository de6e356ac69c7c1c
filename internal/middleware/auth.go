package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/shiprate-service/internal/domain/dto"
	"github.com/guttosm/shiprate-service/internal/i18n"
)

const (
	// APIKeyHeader is the HTTP header name for API key authentication.
	APIKeyHeader = "X-API-Key"

	adminIdentityKey = "admin_identity"
)

// APIKeyAuth returns a middleware that guards the admin routes with a static
// set of API keys read from the X-API-Key header. Keys are never taken from
// the query string, which ends up in access logs. With no validKeys every
// request is rejected.
//
// On success the caller's identity ("api-key:" plus the last four characters
// of the key) is stored for audit fields such as updated_by.
func APIKeyAuth(validKeys []string) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.GetHeader(APIKeyHeader)
		if key == "" {
			abortUnauthorized(c, i18n.ErrKeyAPIKeyRequired)
			return
		}
		if !keyAllowed(validKeys, key) {
			abortUnauthorized(c, i18n.ErrKeyInvalidAPIKey)
			return
		}

		c.Set(adminIdentityKey, identityFor(key))
		c.Next()
	}
}

// GetAdminIdentity returns the identity set by APIKeyAuth, or "" outside the
// admin routes.
func GetAdminIdentity(c *gin.Context) string {
	if v, ok := c.Get(adminIdentityKey); ok {
		if id, ok := v.(string); ok {
			return id
		}
	}
	return ""
}

func keyAllowed(validKeys []string, key string) bool {
	for _, k := range validKeys {
		if subtle.ConstantTimeCompare([]byte(k), []byte(key)) == 1 {
			return true
		}
	}
	return false
}

func identityFor(key string) string {
	if len(key) <= 4 {
		return "api-key"
	}
	return "api-key:" + key[len(key)-4:]
}

func abortUnauthorized(c *gin.Context, messageKey string) {
	locale := i18n.GetLocale(c)
	errorResp := dto.NewError(dto.ErrCodeUnauthorized, i18n.GetTranslator().Translate(messageKey, locale)).
		WithRequestID(GetRequestID(c))
	c.AbortWithStatusJSON(http.StatusUnauthorized, errorResp)
}
