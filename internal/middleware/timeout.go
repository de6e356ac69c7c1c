package middleware

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/shiprate-service/internal/domain/dto"
	"github.com/guttosm/shiprate-service/internal/i18n"
)

// DefaultRequestTimeout bounds a request when no timeout is configured. It
// sits above the provider timeouts so a slow carrier fetch fails on its own
// first.
const DefaultRequestTimeout = 45 * time.Second

// Timeout returns a middleware that puts a deadline on the request context.
// Handlers are expected to honour the context; if the deadline passed and
// nothing was written yet, a 504 is returned.
func Timeout(timeout time.Duration) gin.HandlerFunc {
	if timeout <= 0 {
		timeout = DefaultRequestTimeout
	}

	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), timeout)
		defer cancel()
		c.Request = c.Request.WithContext(ctx)

		c.Next()

		if errors.Is(ctx.Err(), context.DeadlineExceeded) && !c.Writer.Written() {
			locale := i18n.GetLocale(c)
			errorResp := dto.NewError(dto.ErrCodeTimeout, i18n.GetTranslator().Translate(i18n.ErrKeyTimeout, locale)).
				WithRequestID(GetRequestID(c))
			c.AbortWithStatusJSON(http.StatusGatewayTimeout, errorResp)
		}
	}
}
