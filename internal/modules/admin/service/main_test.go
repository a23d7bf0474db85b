package service

import (
	"os"
	"testing"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestDB 设置测试数据库连接；连不上时跳过用例
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := os.Getenv("MYSQL_TEST_DSN")
	if dsn == "" {
		dsn = "root:root@tcp(localhost:3306)/nro?charset=utf8mb4&parseTime=true&loc=Local&clientFoundRows=true"
	}

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Skipf("无法连接测试数据库: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Skipf("获取数据库连接失败: %v", err)
	}
	if err := sqlDB.Ping(); err != nil {
		t.Skipf("跳过依赖数据库的测试，原因: %v", err)
	}
	return db
}
