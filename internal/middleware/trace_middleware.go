package middleware

import (
	"github.com/ahwuoc/web-manager-nro-teav2/internal/pkg/ctxkey"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// TraceMiddleware 链路追踪中间件
// 优先复用上游传入的 X-Trace-ID，没有则生成新的 UUID。
func TraceMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			// 生成或获取 trace ID
			traceID := c.Request().Header.Get("X-Trace-ID")
			if traceID == "" {
				traceID = uuid.New().String()
			}

			// 设置到 Echo context
			c.Set("trace_id", traceID)

			// 设置响应头，方便前端或调用方进行问题追踪
			c.Response().Header().Set("X-Trace-ID", traceID)

			// 更新 request context
			ctx := c.Request().Context()
			ctx = ctxkey.WithValue(ctx, ctxkey.TraceID, traceID)
			c.SetRequest(c.Request().WithContext(ctx))

			return next(c)
		}
	}
}
