package handler

import (
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/ahwuoc/web-manager-nro-teav2/internal/modules/admin/service"
	"github.com/ahwuoc/web-manager-nro-teav2/internal/pkg/response"
)

// DecodeHandler 编码列解码视图处理器
type DecodeHandler struct {
	service    *service.DecodeService
	respWriter response.Writer
}

// NewDecodeHandler 创建解码视图处理器
func NewDecodeHandler(db *gorm.DB, catalog *service.CatalogService, respWriter response.Writer) *DecodeHandler {
	return &DecodeHandler{
		service:    service.NewDecodeService(db, catalog),
		respWriter: respWriter,
	}
}

// GetBossView 获取 Boss 解码视图
// @Summary 获取 Boss 全部编码列的解码结果
// @Tags Boss配置
// @Produce json
// @Param id path int true "Boss ID"
// @Param levelIndex path int true "等级序号"
// @Success 200 {object} response.ResponseResult[service.BossView]
// @Router /api/boss-data/{id}/{levelIndex}/decoded [get]
func (h *DecodeHandler) GetBossView(c echo.Context) error {
	// 1. 解析复合主键
	id, err := pathInt(c, "id")
	if err != nil {
		return response.EchoBadRequest(c, h.respWriter, "参数错误")
	}
	levelIndex, err := pathInt(c, "levelIndex")
	if err != nil {
		return response.EchoBadRequest(c, h.respWriter, "参数错误")
	}

	// 2. 查询并解码
	view, err := h.service.GetBossView(c.Request().Context(), id, levelIndex)
	if err != nil {
		return response.EchoError(c, h.respWriter, err)
	}

	return response.EchoOK(c, h.respWriter, view)
}

// GetGiftcodeDetail 获取礼品码奖励明细的解码结果
// @Summary 获取礼品码 detail 列的解码结果（含物品名称）
// @Tags 礼品码
// @Produce json
// @Param id path int true "礼品码ID"
// @Success 200 {object} response.ResponseResult[[]codec.EnrichedDetailItem]
// @Router /api/giftcode/{id}/detail [get]
func (h *DecodeHandler) GetGiftcodeDetail(c echo.Context) error {
	id, err := pathInt(c, "id")
	if err != nil {
		return response.EchoBadRequest(c, h.respWriter, "参数错误")
	}

	items, err := h.service.GetGiftcodeDetail(c.Request().Context(), id)
	if err != nil {
		return response.EchoError(c, h.respWriter, err)
	}

	return response.EchoOK(c, h.respWriter, items)
}

// GetTabShopItems 获取商店 Tab 商品的解码结果
// @Summary 获取 Tab items 列的解码结果（含物品名称）
// @Tags 商店
// @Produce json
// @Param id path int true "Tab ID"
// @Success 200 {object} response.ResponseResult[[]codec.EnrichedShopItem]
// @Router /api/tab-shop/{id}/items [get]
func (h *DecodeHandler) GetTabShopItems(c echo.Context) error {
	id, err := pathInt(c, "id")
	if err != nil {
		return response.EchoBadRequest(c, h.respWriter, "参数错误")
	}

	items, err := h.service.GetTabShopItems(c.Request().Context(), id)
	if err != nil {
		return response.EchoError(c, h.respWriter, err)
	}

	return response.EchoOK(c, h.respWriter, items)
}

// GetTopRewardDetail 获取周排行榜奖励明细的解码结果
// @Summary 获取奖励 details 列的解码结果（含物品名称）
// @Tags 周排行榜
// @Produce json
// @Param id path int true "奖励ID"
// @Success 200 {object} response.ResponseResult[[]codec.EnrichedDetailItem]
// @Router /api/weekly-top-rewards/{id}/detail [get]
func (h *DecodeHandler) GetTopRewardDetail(c echo.Context) error {
	id, err := pathInt(c, "id")
	if err != nil {
		return response.EchoBadRequest(c, h.respWriter, "参数错误")
	}

	items, err := h.service.GetTopRewardDetail(c.Request().Context(), id)
	if err != nil {
		return response.EchoError(c, h.respWriter, err)
	}

	return response.EchoOK(c, h.respWriter, items)
}
