package tasks

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/ahwuoc/web-manager-nro-teav2/internal/modules/admin/service"
	"github.com/ahwuoc/web-manager-nro-teav2/internal/pkg/log"
)

// CatalogWarmTask 目录缓存预热任务
// 模板表只在游戏版本更新时变动，周期性预热保证缓存过期后
// 第一个请求不必承担全量加载。
type CatalogWarmTask struct {
	catalogService *service.CatalogService
	spec           string
	logger         log.Logger
	cron           *cron.Cron
}

// NewCatalogWarmTask 创建目录缓存预热任务；spec 为 cron 表达式（如 "@every 15m"）
func NewCatalogWarmTask(catalogService *service.CatalogService, spec string, logger log.Logger) *CatalogWarmTask {
	return &CatalogWarmTask{
		catalogService: catalogService,
		spec:           spec,
		logger:         logger,
	}
}

// Start 启动定时任务；启动时先同步预热一次
func (t *CatalogWarmTask) Start() {
	t.warm()

	t.cron = cron.New()
	_, err := t.cron.AddFunc(t.spec, t.warm)
	if err != nil {
		t.logger.Error("【定时任务】添加目录预热任务失败", err, log.String("spec", t.spec))
		return
	}

	t.cron.Start()
	t.logger.Info("【定时任务】目录缓存预热已启动", log.String("spec", t.spec))
}

// Stop 停止定时任务
func (t *CatalogWarmTask) Stop() {
	if t.cron != nil {
		t.cron.Stop()
	}
}

func (t *CatalogWarmTask) warm() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	start := time.Now()
	if err := t.catalogService.WarmCache(ctx); err != nil {
		t.logger.Error("【定时任务】目录缓存预热失败", err)
		return
	}
	t.logger.Info("【定时任务】目录缓存预热完成",
		log.Duration("elapsed", time.Since(start).Milliseconds()))
}
