package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/mssola/user_agent"
	"github.com/sirupsen/logrus"
)

// RequestLogger logs every request with method, path, status, latency and
// a parsed client platform. Skips nothing; health checks are cheap enough
// to keep in the log.
func RequestLogger(logger *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		query := c.Request.URL.RawQuery

		c.Next()

		ua := user_agent.New(c.Request.UserAgent())
		browser, _ := ua.Browser()

		fields := logrus.Fields{
			"method":     c.Request.Method,
			"path":       path,
			"status":     c.Writer.Status(),
			"latency_ms": time.Since(start).Milliseconds(),
			"client_ip":  c.ClientIP(),
			"platform":   ua.Platform(),
			"os":         ua.OS(),
			"browser":    browser,
			"mobile":     ua.Mobile(),
		}
		if query != "" {
			fields["query"] = query
		}

		entry := logger.WithFields(fields)
		switch {
		case c.Writer.Status() >= 500:
			entry.Error("Request completed")
		case c.Writer.Status() >= 400:
			entry.Warn("Request completed")
		default:
			entry.Info("Request completed")
		}
	}
}
