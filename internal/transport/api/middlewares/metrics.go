package middlewares

import (
	"strconv"
	"time"

	"github.com/fsdevblog/ppob-ledger/internal/metrics"
	"github.com/gin-gonic/gin"
)

// Metrics измеряет время ответа. Метка route - шаблон маршрута, а не путь, чтобы имя шлюза и id из пути
// не раздували кол-во серий.
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		metrics.HTTPLatency.
			WithLabelValues(c.Request.Method, route, strconv.Itoa(c.Writer.Status())).
			Observe(time.Since(start).Seconds())
	}
}
