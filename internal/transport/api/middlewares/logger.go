package middlewares

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// Logger пишет строку лога на каждый запрос. Приватные ошибки из c.Errors попадают только сюда.
func Logger(l *logrus.Logger) gin.HandlerFunc {
	log := l.WithField("component", "http")
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		entry := log.WithFields(logrus.Fields{
			"method":     c.Request.Method,
			"path":       c.Request.URL.Path,
			"status":     c.Writer.Status(),
			"duration":   time.Since(start),
			"ip":         c.ClientIP(),
			"request_id": c.GetString(RequestIDKey),
		})

		switch {
		case len(c.Errors) > 0:
			entry.WithField("errors", c.Errors.String()).Warn("http request")
		case c.Writer.Status() >= 500: //nolint:mnd
			entry.Error("http request")
		default:
			entry.Info("http request")
		}
	}
}
