package middleware

import (
	"github.com/gin-gonic/gin"

	"voice-task-parser/pkg/response"
)

// Recovery turns a handler panic into the generic 500 envelope.
func (m Middleware) Recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, err any) {
		m.l.Errorf(c.Request.Context(), "middleware.Recovery: panic: %v", err)
		response.InternalError(c, nil)
	})
}
