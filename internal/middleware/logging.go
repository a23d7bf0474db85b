package middleware

import (
	"time"

	"github.com/ahwuoc/web-manager-nro-teav2/internal/pkg/log"

	"github.com/labstack/echo/v4"
)

// LoggingMiddleware 日志中间件
func LoggingMiddleware(logger log.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			// 健康检查端点不记录
			path := c.Request().URL.Path
			if path == "/health" || path == "/metrics" || path == "/favicon.ico" {
				return next(c)
			}

			start := time.Now()

			// 记录请求开始
			logger.InfoContext(c.Request().Context(), "请求开始",
				log.String("method", c.Request().Method),
				log.String("path", path),
				log.String("query", c.Request().URL.RawQuery),
				log.String("client_ip", c.RealIP()),
			)

			// 执行下一个处理器
			err := next(c)

			// 计算处理时间
			duration := time.Since(start)
			statusCode := c.Response().Status

			// 记录请求完成
			if err != nil {
				logger.ErrorContext(c.Request().Context(), "请求处理出错",
					log.String("method", c.Request().Method),
					log.String("path", path),
					log.Int("status_code", statusCode),
					log.Duration("duration", duration.Milliseconds()),
					log.Any("error", err),
				)
				return err
			}

			if statusCode >= 500 {
				logger.ErrorContext(c.Request().Context(), "请求完成",
					log.String("method", c.Request().Method),
					log.String("path", path),
					log.Int("status_code", statusCode),
					log.Duration("duration", duration.Milliseconds()),
				)
			} else if statusCode >= 400 {
				logger.WarnContext(c.Request().Context(), "请求完成",
					log.String("method", c.Request().Method),
					log.String("path", path),
					log.Int("status_code", statusCode),
					log.Duration("duration", duration.Milliseconds()),
				)
			} else {
				logger.InfoContext(c.Request().Context(), "请求完成",
					log.String("method", c.Request().Method),
					log.String("path", path),
					log.Int("status_code", statusCode),
					log.Duration("duration", duration.Milliseconds()),
				)
			}

			return nil
		}
	}
}
