package middleware

import (
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"

	"quote_service/internal/adapter/http/dto/response"
	"quote_service/internal/infrastructure/logging"

	"github.com/gin-gonic/gin"
)

// Recovery turns a panic into a 500 with the standard error body.
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				logging.FromContext(c.Request.Context()).Error("panic recovered",
					slog.String("error", fmt.Sprint(r)),
					slog.String("stack", string(debug.Stack())),
					slog.String("method", c.Request.Method),
					slog.String("path", c.Request.URL.Path),
				)

				if !c.Writer.Written() {
					c.AbortWithStatusJSON(http.StatusInternalServerError, response.Error("An internal error occurred"))
				} else {
					c.Abort()
				}
			}
		}()

		c.Next()
	}
}
