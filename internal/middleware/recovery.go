package middleware

import (
	"runtime/debug"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/tbrandt27/football-pick-em-sub003/internal/httpapi"
)

// Recovery returns a middleware that recovers from panics and logs them.
// The client gets the same generic 500 body as any other unhandled error.
func Recovery(logger *zap.SugaredLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				logger.Errorw("panic recovered",
					"error", err,
					"path", c.Request.URL.Path,
					"method", c.Request.Method,
					"client_ip", c.ClientIP(),
					"stack", string(debug.Stack()),
				)

				httpapi.InternalError(c)
				c.Abort()
			}
		}()

		c.Next()
	}
}
