package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/ahwuoc/web-manager-nro-teav2/internal/modules/admin/service"
	"github.com/ahwuoc/web-manager-nro-teav2/internal/pkg/response"
	"github.com/ahwuoc/web-manager-nro-teav2/internal/repository/entity"
)

// CatalogHandler 只读目录 HTTP 处理器
// 每个目录返回 {list, map}：list 为有序列表，map 为 id 索引
// （前端奖励明细名称补全的输入）。
type CatalogHandler struct {
	service    *service.CatalogService
	respWriter response.Writer
}

// NewCatalogHandler 创建目录处理器
func NewCatalogHandler(svc *service.CatalogService, respWriter response.Writer) *CatalogHandler {
	return &CatalogHandler{
		service:    svc,
		respWriter: respWriter,
	}
}

// GetItemTemplates 获取物品模板目录
// @Summary 获取物品模板目录
// @Description 获取物品模板列表和 id 索引；ids 为逗号分隔的过滤列表
// @Tags 目录
// @Produce json
// @Param ids query string false "逗号分隔的物品模板ID列表"
// @Success 200 {object} response.ResponseResult[map[string]interface{}] "成功返回 list 与 map"
// @Router /api/item-template [get]
func (h *CatalogHandler) GetItemTemplates(c echo.Context) error {
	ctx := c.Request().Context()

	items, err := h.service.GetItemTemplates(ctx, queryIDs(c, "ids"))
	if err != nil {
		return response.EchoError(c, h.respWriter, err)
	}

	byID := make(map[int]entity.ItemTemplate, len(items))
	for _, item := range items {
		byID[item.ID] = item
	}

	return response.EchoOK(c, h.respWriter, map[string]interface{}{
		"list": items,
		"map":  byID,
	})
}

// GetItemOptionTemplates 获取物品属性模板目录
// @Summary 获取物品属性模板目录
// @Tags 目录
// @Produce json
// @Param ids query string false "逗号分隔的属性模板ID列表"
// @Success 200 {object} response.ResponseResult[map[string]interface{}] "成功返回 list 与 map"
// @Router /api/item-option-template [get]
func (h *CatalogHandler) GetItemOptionTemplates(c echo.Context) error {
	ctx := c.Request().Context()

	options, err := h.service.GetItemOptionTemplates(ctx, queryIDs(c, "ids"))
	if err != nil {
		return response.EchoError(c, h.respWriter, err)
	}

	byID := make(map[int]entity.ItemOptionTemplate, len(options))
	for _, opt := range options {
		byID[opt.ID] = opt
	}

	return response.EchoOK(c, h.respWriter, map[string]interface{}{
		"list": options,
		"map":  byID,
	})
}

// GetSkillTemplates 获取技能模板目录
// @Summary 获取技能模板目录
// @Tags 目录
// @Produce json
// @Success 200 {object} response.ResponseResult[map[string]interface{}] "成功返回 list 与 map"
// @Router /api/skill-template [get]
func (h *CatalogHandler) GetSkillTemplates(c echo.Context) error {
	ctx := c.Request().Context()

	skills, err := h.service.GetSkillTemplates(ctx)
	if err != nil {
		return response.EchoError(c, h.respWriter, err)
	}

	byID := make(map[int]entity.SkillTemplate, len(skills))
	for _, skill := range skills {
		byID[skill.ID] = skill
	}

	return response.EchoOK(c, h.respWriter, map[string]interface{}{
		"list": skills,
		"map":  byID,
	})
}

// GetMapTemplates 获取地图模板目录
// @Summary 获取地图模板目录
// @Tags 目录
// @Produce json
// @Success 200 {object} response.ResponseResult[map[string]interface{}] "成功返回 list 与 map"
// @Router /api/map-template [get]
func (h *CatalogHandler) GetMapTemplates(c echo.Context) error {
	ctx := c.Request().Context()

	maps, err := h.service.GetMapTemplates(ctx)
	if err != nil {
		return response.EchoError(c, h.respWriter, err)
	}

	byID := make(map[int]entity.MapTemplate, len(maps))
	for _, m := range maps {
		byID[m.ID] = m
	}

	return response.EchoOK(c, h.respWriter, map[string]interface{}{
		"list": maps,
		"map":  byID,
	})
}
