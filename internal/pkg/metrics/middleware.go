// File: internal/pkg/metrics/middleware.go
package metrics

import (
	"net/http"
	"time"

	"github.com/ahwuoc/web-manager-nro-teav2/internal/pkg/ctxkey"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// routeTracker 限制路由标签基数，未注册路由超限后折叠为 "other"
var routeTracker = NewPathLimitTracker(256)

// Middleware Echo 中间件 - 记录请求指标并将 HTTP 方法存储到 context
func Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			// 健康检查端点不计入指标
			if IsHealthCheckEndpoint(c.Request().URL.Path) {
				return next(c)
			}

			// 将 HTTP 方法存储到 context
			ctx := c.Request().Context()
			ctx = ctxkey.WithValue(ctx, ctxkey.HTTPMethod, c.Request().Method)
			c.SetRequest(c.Request().WithContext(ctx))

			DefaultHTTPMetrics.IncInProgress()
			start := time.Now()

			err := next(c)

			// 使用路由模板而非真实路径，避免标签基数爆炸
			route := routeTracker.TrackPath(NormalizeRoute(c.Path()))
			DefaultHTTPMetrics.RecordRequest(route, c.Request().Method,
				c.Response().Status, time.Since(start))
			DefaultHTTPMetrics.DecInProgress()

			return err
		}
	}
}

// Handler 返回 Prometheus metrics HTTP 处理器
// 用于暴露 /metrics 端点
func Handler() http.Handler {
	return promhttp.Handler()
}

// EchoHandler Echo 框架的 Prometheus metrics 处理器
func EchoHandler() echo.HandlerFunc {
	h := promhttp.Handler()
	return func(c echo.Context) error {
		h.ServeHTTP(c.Response().Writer, c.Request())
		return nil
	}
}
