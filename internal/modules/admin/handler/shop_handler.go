package handler

import (
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/ahwuoc/web-manager-nro-teav2/internal/modules/admin/dto"
	"github.com/ahwuoc/web-manager-nro-teav2/internal/modules/admin/service"
	"github.com/ahwuoc/web-manager-nro-teav2/internal/pkg/response"
)

// ShopHandler 商店与 Tab HTTP 处理器
type ShopHandler struct {
	service    *service.ShopService
	respWriter response.Writer
}

// NewShopHandler 创建商店处理器
func NewShopHandler(db *gorm.DB, respWriter response.Writer) *ShopHandler {
	return &ShopHandler{
		service:    service.NewShopService(db),
		respWriter: respWriter,
	}
}

// GetShops 获取商店列表
// @Summary 获取商店列表
// @Description 获取所有商店（含归属 NPC 模板）
// @Tags 商店
// @Accept json
// @Produce json
// @Success 200 {object} response.ResponseResult[[]entity.Shop] "成功返回商店列表"
// @Failure 500 {object} response.ResponseResult[response.EmptyData] "服务器内部错误"
// @Router /api/shops [get]
func (h *ShopHandler) GetShops(c echo.Context) error {
	ctx := c.Request().Context()

	shops, err := h.service.GetShops(ctx)
	if err != nil {
		return response.EchoError(c, h.respWriter, err)
	}

	return response.EchoOK(c, h.respWriter, shops)
}

// GetTabShops 获取 Tab 列表
// @Summary 获取商店 Tab 列表
// @Description 获取商店 Tab 列表，支持按 shop_id 过滤，按 tab_index 升序
// @Tags 商店
// @Accept json
// @Produce json
// @Param shop_id query int false "按商店ID过滤"
// @Success 200 {object} response.ResponseResult[[]entity.TabShop] "成功返回 Tab 列表"
// @Failure 500 {object} response.ResponseResult[response.EmptyData] "服务器内部错误"
// @Router /api/tab-shop [get]
func (h *ShopHandler) GetTabShops(c echo.Context) error {
	ctx := c.Request().Context()

	tabs, err := h.service.GetTabShops(ctx, queryInt(c, "shop_id"))
	if err != nil {
		return response.EchoError(c, h.respWriter, err)
	}

	return response.EchoOK(c, h.respWriter, tabs)
}

// GetTabShop 获取 Tab 详情
// @Summary 获取商店 Tab 详情
// @Description 根据ID获取单个商店 Tab（含归属商店与 NPC 模板）
// @Tags 商店
// @Accept json
// @Produce json
// @Param id path int true "Tab ID"
// @Success 200 {object} response.ResponseResult[entity.TabShop] "成功返回 Tab 详情"
// @Failure 404 {object} response.ResponseResult[response.EmptyData] "Tab 不存在"
// @Router /api/tab-shop/{id} [get]
func (h *ShopHandler) GetTabShop(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := pathInt(c, "id")
	if err != nil {
		return response.EchoBadRequest(c, h.respWriter, "ID 必须为整数")
	}

	tab, err := h.service.GetTabShopByID(ctx, id)
	if err != nil {
		return response.EchoError(c, h.respWriter, err)
	}

	return response.EchoOK(c, h.respWriter, tab)
}

// CreateTabShop 创建 Tab
// @Summary 创建商店 Tab
// @Description 创建新的商店 Tab，items 缺省为空列表
// @Tags 商店
// @Accept json
// @Produce json
// @Param request body dto.CreateTabShopRequest true "创建 Tab 请求"
// @Success 200 {object} response.ResponseResult[entity.TabShop] "成功返回创建的 Tab"
// @Failure 400 {object} response.ResponseResult[response.EmptyData] "请求参数错误"
// @Router /api/tab-shop [post]
func (h *ShopHandler) CreateTabShop(c echo.Context) error {
	ctx := c.Request().Context()

	// 1. 绑定和验证请求参数
	var req dto.CreateTabShopRequest
	if err := c.Bind(&req); err != nil {
		return response.EchoBadRequest(c, h.respWriter, "参数错误")
	}
	if err := c.Validate(&req); err != nil {
		return response.EchoBadRequest(c, h.respWriter, err.Error())
	}

	// 2. 创建 Tab
	tab, err := h.service.CreateTabShop(ctx, &req)
	if err != nil {
		return response.EchoError(c, h.respWriter, err)
	}

	return response.EchoOK(c, h.respWriter, tab)
}

// UpdateTabShop 更新 Tab
// @Summary 更新商店 Tab
// @Description 更新指定ID的商店 Tab，支持部分字段更新
// @Tags 商店
// @Accept json
// @Produce json
// @Param id path int true "Tab ID"
// @Param request body dto.UpdateTabShopRequest true "更新 Tab 请求"
// @Success 200 {object} response.ResponseResult[entity.TabShop] "成功返回更新后的 Tab"
// @Failure 404 {object} response.ResponseResult[response.EmptyData] "Tab 不存在"
// @Router /api/tab-shop/{id} [put]
func (h *ShopHandler) UpdateTabShop(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := pathInt(c, "id")
	if err != nil {
		return response.EchoBadRequest(c, h.respWriter, "ID 必须为整数")
	}

	var req dto.UpdateTabShopRequest
	if err := c.Bind(&req); err != nil {
		return response.EchoBadRequest(c, h.respWriter, "参数错误")
	}
	if err := c.Validate(&req); err != nil {
		return response.EchoBadRequest(c, h.respWriter, err.Error())
	}

	tab, err := h.service.UpdateTabShop(ctx, id, &req)
	if err != nil {
		return response.EchoError(c, h.respWriter, err)
	}

	return response.EchoOK(c, h.respWriter, tab)
}

// DeleteTabShop 删除 Tab
// @Summary 删除商店 Tab
// @Description 删除指定ID的商店 Tab
// @Tags 商店
// @Accept json
// @Produce json
// @Param id path int true "Tab ID"
// @Success 200 {object} response.ResponseResult[response.EmptyData] "删除成功"
// @Failure 404 {object} response.ResponseResult[response.EmptyData] "Tab 不存在"
// @Router /api/tab-shop/{id} [delete]
func (h *ShopHandler) DeleteTabShop(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := pathInt(c, "id")
	if err != nil {
		return response.EchoBadRequest(c, h.respWriter, "ID 必须为整数")
	}

	if err := h.service.DeleteTabShop(ctx, id); err != nil {
		return response.EchoError(c, h.respWriter, err)
	}

	return response.EchoOK(c, h.respWriter, response.EmptyData{})
}
