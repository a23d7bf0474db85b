package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/nats-io/nats.go"
	echoSwagger "github.com/swaggo/echo-swagger"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	_ "github.com/ahwuoc/web-manager-nro-teav2/docs/admin" // Swagger 生成的文档

	custommiddleware "github.com/ahwuoc/web-manager-nro-teav2/internal/middleware"
	"github.com/ahwuoc/web-manager-nro-teav2/internal/modules/admin"
	"github.com/ahwuoc/web-manager-nro-teav2/internal/modules/admin/tasks"
	"github.com/ahwuoc/web-manager-nro-teav2/internal/pkg/config"
	"github.com/ahwuoc/web-manager-nro-teav2/internal/pkg/i18n"
	"github.com/ahwuoc/web-manager-nro-teav2/internal/pkg/log"
	"github.com/ahwuoc/web-manager-nro-teav2/internal/pkg/metrics"
	"github.com/ahwuoc/web-manager-nro-teav2/internal/pkg/notify"
	"github.com/ahwuoc/web-manager-nro-teav2/internal/pkg/redis"
	"github.com/ahwuoc/web-manager-nro-teav2/internal/pkg/response"
	"github.com/ahwuoc/web-manager-nro-teav2/internal/pkg/security"
	"github.com/ahwuoc/web-manager-nro-teav2/internal/pkg/validator"
)

func main() {
	// 1. 加载配置并初始化日志
	cfg := config.Load()
	log.Init(parseLogLevel(cfg.LogLevel), cfg.Environment)
	logger := log.GetLogger()
	logger.Info("启动管理后台服务", log.Any("config", cfg.ForLog()))

	// 2. 连接游戏数据库
	db, err := gorm.Open(mysql.Open(cfg.MySQL.DSN()), &gorm.Config{
		Logger: gormLogLevel(cfg.Environment),
	})
	if err != nil {
		logger.Error("连接数据库失败", err)
		os.Exit(1)
	}
	sqlDB, err := db.DB()
	if err != nil {
		logger.Error("获取底层数据库连接失败", err)
		os.Exit(1)
	}
	sqlDB.SetMaxOpenConns(20)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(time.Hour)

	// 3. 连接 Redis（可选，目录缓存）
	var cache *redis.Client
	if cfg.Redis.Enabled {
		cache, err = redis.NewClient(redis.Config{
			Host:     cfg.Redis.Host,
			Port:     cfg.Redis.Port,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err != nil {
			logger.Warn("连接 Redis 失败，目录查询退化为直连数据库", log.Any("error", err))
			cache = nil
		}
	}

	// 4. 连接 NATS（可选，变更事件广播）
	if cfg.Nats.URL != "" {
		nc, err := nats.Connect(cfg.Nats.URL,
			nats.MaxReconnects(-1),
			nats.ReconnectWait(2*time.Second),
		)
		if err != nil {
			logger.Warn("连接 NATS 失败，变更事件广播停用", log.Any("error", err))
		} else {
			notify.SetNatsConn(nc)
			defer nc.Close()
		}
	}

	// 5. 组装 HTTP 服务
	respWriter := response.NewWriter()

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = validator.New()

	e.Use(security.CORSMiddleware(cfg.CORSAllowOrigins))
	e.Use(security.SecurityHeadersMiddleware())
	e.Use(custommiddleware.TraceMiddleware())
	e.Use(custommiddleware.LoggingMiddleware(logger))
	e.Use(metrics.Middleware())
	e.Use(custommiddleware.RateLimitMiddleware())
	e.Use(custommiddleware.RecoveryMiddleware(respWriter, logger))
	e.Use(custommiddleware.ErrorMiddleware(respWriter, logger))
	e.Use(i18n.Middleware())

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})
	e.GET("/metrics", metrics.EchoHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	adminModule := admin.NewModule(db, cache,
		time.Duration(cfg.CatalogCacheTTLMinutes)*time.Minute, respWriter)
	adminModule.RegisterRoutes(e)

	// 6. 目录缓存预热任务
	var warmTask *tasks.CatalogWarmTask
	if cache != nil {
		warmTask = tasks.NewCatalogWarmTask(adminModule.CatalogService(), cfg.CatalogWarmCron, logger)
		warmTask.Start()
	}

	// 7. 启动并等待退出信号
	go func() {
		logger.Info("HTTP 服务监听中", log.String("addr", cfg.HTTPAddr))
		if err := e.Start(cfg.HTTPAddr); err != nil && err != http.ErrServerClosed {
			logger.Error("HTTP 服务异常退出", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("收到退出信号，开始优雅关闭")

	if warmTask != nil {
		warmTask.Stop()
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		logger.Error("HTTP 服务关闭失败", err)
	}
	if err := sqlDB.Close(); err != nil {
		logger.Error("数据库连接关闭失败", err)
	}
	logger.Info("管理后台服务已退出")
}

// parseLogLevel 解析日志级别配置
func parseLogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// gormLogLevel 生产环境静默 SQL 日志
func gormLogLevel(environment string) gormlogger.Interface {
	if environment == "production" {
		return gormlogger.Default.LogMode(gormlogger.Silent)
	}
	return gormlogger.Default.LogMode(gormlogger.Warn)
}
