package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/fyyur/fyyur-backend/utils"
)

// NewMetrics counts requests and observes their latency, labelled by route template so that
// ids do not blow up the cardinality.
func NewMetrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		method := c.Request.Method
		utils.MetricRequestCount.WithLabelValues(method, route, strconv.Itoa(c.Writer.Status())).Inc()
		utils.MetricRequestLatency.WithLabelValues(method, route).Observe(time.Since(start).Seconds())
	}
}
