// @title Web Manager NRO API
// @version 1.0
// @description Ngọc Rồng Online 游戏管理后台 API
// @host localhost
// @BasePath /

package admin

import (
	"time"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/ahwuoc/web-manager-nro-teav2/internal/modules/admin/handler"
	"github.com/ahwuoc/web-manager-nro-teav2/internal/modules/admin/service"
	"github.com/ahwuoc/web-manager-nro-teav2/internal/pkg/redis"
	"github.com/ahwuoc/web-manager-nro-teav2/internal/pkg/response"
)

// Module 管理后台模块，持有全部 HTTP 处理器
type Module struct {
	catalogService *service.CatalogService

	giftcodeHandler  *handler.GiftcodeHandler
	bossHandler      *handler.BossHandler
	shopHandler      *handler.ShopHandler
	milestoneHandler *handler.MilestoneHandler
	weeklyTopHandler *handler.WeeklyTopHandler
	playerHandler    *handler.PlayerHandler
	historyHandler   *handler.HistoryHandler
	catalogHandler   *handler.CatalogHandler
	decodeHandler    *handler.DecodeHandler
}

// NewModule 创建管理后台模块；cache 可为 nil（目录查询退化为纯数据库）
func NewModule(db *gorm.DB, cache *redis.Client, catalogCacheTTL time.Duration, respWriter response.Writer) *Module {
	catalogService := service.NewCatalogService(db, cache, catalogCacheTTL)

	return &Module{
		catalogService:   catalogService,
		giftcodeHandler:  handler.NewGiftcodeHandler(db, respWriter),
		bossHandler:      handler.NewBossHandler(db, respWriter),
		shopHandler:      handler.NewShopHandler(db, respWriter),
		milestoneHandler: handler.NewMilestoneHandler(db, respWriter),
		weeklyTopHandler: handler.NewWeeklyTopHandler(db, respWriter),
		playerHandler:    handler.NewPlayerHandler(db, respWriter),
		historyHandler:   handler.NewHistoryHandler(db, respWriter),
		catalogHandler:   handler.NewCatalogHandler(catalogService, respWriter),
		decodeHandler:    handler.NewDecodeHandler(db, catalogService, respWriter),
	}
}

// CatalogService 暴露目录服务供缓存预热任务使用
func (m *Module) CatalogService() *service.CatalogService {
	return m.catalogService
}

// RegisterRoutes 注册全部管理后台路由
func (m *Module) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api")

	// 礼品码
	api.GET("/giftcode", m.giftcodeHandler.GetGiftcodes)
	api.POST("/giftcode", m.giftcodeHandler.CreateGiftcode)
	api.GET("/giftcode/:id", m.giftcodeHandler.GetGiftcode)
	api.GET("/giftcode/:id/detail", m.decodeHandler.GetGiftcodeDetail)
	api.PUT("/giftcode/:id", m.giftcodeHandler.UpdateGiftcode)
	api.DELETE("/giftcode/:id", m.giftcodeHandler.DeleteGiftcode)

	// Boss 配置（复合主键 id + levelIndex）
	api.GET("/boss-data", m.bossHandler.GetBosses)
	api.POST("/boss-data", m.bossHandler.CreateBoss)
	api.GET("/boss-data/:id/:levelIndex", m.bossHandler.GetBoss)
	api.GET("/boss-data/:id/:levelIndex/decoded", m.decodeHandler.GetBossView)
	api.PUT("/boss-data/:id/:levelIndex", m.bossHandler.UpdateBoss)
	api.DELETE("/boss-data/:id/:levelIndex", m.bossHandler.DeleteBoss)

	// 商店与 Tab
	api.GET("/shops", m.shopHandler.GetShops)
	api.GET("/tab-shop", m.shopHandler.GetTabShops)
	api.POST("/tab-shop", m.shopHandler.CreateTabShop)
	api.GET("/tab-shop/:id", m.shopHandler.GetTabShop)
	api.GET("/tab-shop/:id/items", m.decodeHandler.GetTabShopItems)
	api.PUT("/tab-shop/:id", m.shopHandler.UpdateTabShop)
	api.DELETE("/tab-shop/:id", m.shopHandler.DeleteTabShop)

	// 里程碑
	api.GET("/moc-nap", m.milestoneHandler.GetMocNaps)
	api.POST("/moc-nap", m.milestoneHandler.CreateMocNap)
	api.PUT("/moc-nap/:id", m.milestoneHandler.UpdateMocNap)
	api.DELETE("/moc-nap/:id", m.milestoneHandler.DeleteMocNap)

	api.GET("/moc-online", m.milestoneHandler.GetMocOnlines)
	api.POST("/moc-online", m.milestoneHandler.CreateMocOnline)
	api.PUT("/moc-online/:id", m.milestoneHandler.UpdateMocOnline)
	api.DELETE("/moc-online/:id", m.milestoneHandler.DeleteMocOnline)

	api.GET("/moc-tieutien", m.milestoneHandler.GetMocTieuTiens)
	api.POST("/moc-tieutien", m.milestoneHandler.CreateMocTieuTien)
	api.PUT("/moc-tieutien/:id", m.milestoneHandler.UpdateMocTieuTien)
	api.DELETE("/moc-tieutien/:id", m.milestoneHandler.DeleteMocTieuTien)

	// 礼包：集合接口已停用，单条更新/删除保留
	api.GET("/goi-qua", m.milestoneHandler.GoiQuaDisabled)
	api.POST("/goi-qua", m.milestoneHandler.GoiQuaDisabled)
	api.PUT("/goi-qua/:id", m.milestoneHandler.UpdateGoiQua)
	api.DELETE("/goi-qua/:id", m.milestoneHandler.DeleteGoiQua)

	// 周排行榜
	api.GET("/weekly-top-types", m.weeklyTopHandler.GetTypes)
	api.POST("/weekly-top-types", m.weeklyTopHandler.CreateType)
	api.GET("/weekly-top-types/:id", m.weeklyTopHandler.GetType)
	api.PUT("/weekly-top-types/:id", m.weeklyTopHandler.UpdateType)
	api.DELETE("/weekly-top-types/:id", m.weeklyTopHandler.DeleteType)

	api.GET("/weekly-top-rewards", m.weeklyTopHandler.GetRewards)
	api.POST("/weekly-top-rewards", m.weeklyTopHandler.CreateReward)
	api.GET("/weekly-top-rewards/:id/detail", m.decodeHandler.GetTopRewardDetail)
	api.PUT("/weekly-top-rewards/:id", m.weeklyTopHandler.UpdateReward)
	api.DELETE("/weekly-top-rewards/:id", m.weeklyTopHandler.DeleteReward)

	// 玩家账号
	api.GET("/players", m.playerHandler.SearchAccounts)
	api.GET("/players/:id", m.playerHandler.GetAccount)
	api.PUT("/players/:id/ban", m.playerHandler.SetBan)
	api.PUT("/players/:id/cash", m.playerHandler.AdjustCash)
	api.PUT("/players/:id/vang", m.playerHandler.AdjustVang)

	// 交易记录
	api.GET("/history-transaction", m.historyHandler.SearchHistory)
	api.DELETE("/history-transaction", m.historyHandler.DeleteAllHistory)
	api.DELETE("/history-transaction/:id", m.historyHandler.DeleteHistory)

	// 只读目录
	api.GET("/item-template", m.catalogHandler.GetItemTemplates)
	api.GET("/item-option-template", m.catalogHandler.GetItemOptionTemplates)
	api.GET("/skill-template", m.catalogHandler.GetSkillTemplates)
	api.GET("/map-template", m.catalogHandler.GetMapTemplates)
}
