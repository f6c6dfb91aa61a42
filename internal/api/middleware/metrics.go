package middleware

import (
	"strconv"
	"time"

	"catalog-go/internal/infra/metrics"

	"github.com/gin-gonic/gin"
)

// Metrics 记录请求数与耗时；route 使用注册的路由模板，未匹配时为 unmatched
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		method := c.Request.Method
		metrics.RequestsTotal.WithLabelValues(method, route, strconv.Itoa(c.Writer.Status())).Inc()
		metrics.RequestDuration.WithLabelValues(method, route).Observe(time.Since(start).Seconds())
	}
}
