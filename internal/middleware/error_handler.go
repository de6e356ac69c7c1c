package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/shiprate-service/internal/domain/dto"
	"github.com/guttosm/shiprate-service/internal/i18n"
	"github.com/guttosm/shiprate-service/internal/logger"
)

// ErrorHandler returns a middleware that logs errors attached to the gin
// context and writes a generic 500 when the handler did not respond.
// Client errors are logged at warn level, everything else at error level.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}

		err := c.Errors.Last()
		requestID := GetRequestID(c)
		status := c.Writer.Status()

		log := logger.FromContext(c.Request.Context())
		event := log.Error()
		if c.Writer.Written() && status >= 400 && status < 500 {
			event = log.Warn()
		}
		event.
			Err(err.Err).
			Int("errors", len(c.Errors)).
			Str("path", c.Request.URL.Path).
			Str("method", c.Request.Method).
			Int("status_code", status).
			Msg("Request error")

		if !c.Writer.Written() {
			message := i18n.GetTranslator().Translate(i18n.ErrKeyInternalError, i18n.GetLocale(c))
			c.JSON(http.StatusInternalServerError, dto.NewError(dto.ErrCodeInternal, message).WithRequestID(requestID))
		}
	}
}
