package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/campusfound/api/internal/pkg/logger"
)

var skipPaths = map[string]bool{
	"/health": true,
}

// Logger logs each request with method, path, status, latency and user (when set).
func Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		if skipPaths[path] {
			c.Next()
			return
		}

		start := time.Now()
		c.Next()

		status := c.Writer.Status()
		latency := time.Since(start)
		userID := c.GetString("userID")

		if userID == "" {
			userID = "-"
		}

		if status >= 500 {
			logger.Error("%s %s -> %d (%v) user=%s", c.Request.Method, path, status, latency, userID)
		} else if status >= 400 {
			logger.Warn("%s %s -> %d (%v) user=%s", c.Request.Method, path, status, latency, userID)
		} else {
			logger.Info("%s %s -> %d (%v) user=%s", c.Request.Method, path, status, latency, userID)
		}
	}
}
