// File: internal/pkg/config/config.go
package config

import (
	"fmt"
	"strings"
)

// Config 管理后台服务配置
type Config struct {
	Environment string // development / production
	LogLevel    string // debug / info / warn / error
	HTTPAddr    string // HTTP 监听地址

	MySQL MySQLConfig
	Redis RedisConfig
	Nats  NatsConfig

	CatalogCacheTTLMinutes int    // 物品目录缓存有效期（分钟）
	CatalogWarmCron        string // 目录缓存预热 cron 表达式

	CORSAllowOrigins []string // 管理前端域名，默认放开全部
}

// MySQLConfig 游戏数据库配置
type MySQLConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Database string
	Params   string // DSN 额外参数
}

// DSN 构建 go-sql-driver 格式的连接字符串
// 优先级：MYSQL_DSN 环境变量中的完整 DSN > 从各个部分构建
func (m MySQLConfig) DSN() string {
	if dsn := GetEnvOrDefault("MYSQL_DSN", ""); dsn != "" {
		return dsn
	}
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?%s",
		m.User, m.Password, m.Host, m.Port, m.Database, m.Params)
}

// RedisConfig 缓存配置；Enabled 为 false 时服务退化为直连数据库
type RedisConfig struct {
	Enabled  bool
	Host     string
	Port     int
	Password string
	DB       int
}

// NatsConfig 变更事件广播配置；URL 为空时静默停用
type NatsConfig struct {
	URL string
}

// Load 从环境变量加载配置
func Load() *Config {
	return &Config{
		Environment: GetEnvOrDefault("APP_ENV", "development"),
		LogLevel:    GetEnvOrDefault("LOG_LEVEL", "info"),
		HTTPAddr:    GetEnvOrDefault("HTTP_ADDR", ":8080"),

		MySQL: MySQLConfig{
			Host:     GetEnvOrDefault("MYSQL_HOST", "localhost"),
			Port:     GetEnvIntOrDefault("MYSQL_PORT", 3306),
			User:     GetEnvOrDefault("MYSQL_USER", "root"),
			Password: GetEnvOrDefault("MYSQL_PASSWORD", ""),
			Database: GetEnvOrDefault("MYSQL_DATABASE", "nro"),
			// clientFoundRows：让 UPDATE 返回匹配行数而非修改行数，
			// 否则提交未变化的值会被误判为记录不存在
			Params: GetEnvOrDefault("MYSQL_PARAMS", "charset=utf8mb4&parseTime=True&loc=Local&clientFoundRows=true"),
		},

		Redis: RedisConfig{
			Enabled:  GetEnvBoolOrDefault("REDIS_ENABLED", false),
			Host:     GetEnvOrDefault("REDIS_HOST", "localhost"),
			Port:     GetEnvIntOrDefault("REDIS_PORT", 6379),
			Password: GetEnvOrDefault("REDIS_PASSWORD", ""),
			DB:       GetEnvIntOrDefault("REDIS_DB", 0),
		},

		Nats: NatsConfig{
			URL: GetEnvOrDefault("NATS_URL", ""),
		},

		CatalogCacheTTLMinutes: GetEnvIntOrDefault("CATALOG_CACHE_TTL_MINUTES", 30),
		CatalogWarmCron:        GetEnvOrDefault("CATALOG_WARM_CRON", "@every 15m"),

		CORSAllowOrigins: strings.Split(GetEnvOrDefault("CORS_ALLOW_ORIGINS", "*"), ","),
	}
}

// ForLog 返回适合日志输出的配置快照（敏感字段脱敏）
func (c *Config) ForLog() map[string]any {
	return SanitizeConfigForLog(map[string]any{
		"environment":    c.Environment,
		"log_level":      c.LogLevel,
		"http_addr":      c.HTTPAddr,
		"mysql_host":     c.MySQL.Host,
		"mysql_port":     c.MySQL.Port,
		"mysql_database": c.MySQL.Database,
		"mysql_password": c.MySQL.Password,
		"redis_enabled":  c.Redis.Enabled,
		"redis_host":     c.Redis.Host,
		"redis_password": c.Redis.Password,
		"nats_url":       c.Nats.URL,
	})
}
