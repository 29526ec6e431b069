package middleware

import (
	"net/http"
	"runtime/debug"

	"chaseplus/pkg/logger"

	"github.com/gin-gonic/gin"
)

func RecoveryMiddleware(log *logger.Logger) gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Error("[PANIC] %s %s: %v\n%s", c.Request.Method, c.Request.URL.Path, recovered, debug.Stack())

		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		c.Abort()
	})
}
