package handler

import (
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/ahwuoc/web-manager-nro-teav2/internal/modules/admin/service"
	"github.com/ahwuoc/web-manager-nro-teav2/internal/pkg/response"
)

// HistoryHandler 交易记录 HTTP 处理器
type HistoryHandler struct {
	service    *service.HistoryService
	respWriter response.Writer
}

// NewHistoryHandler 创建交易记录处理器
func NewHistoryHandler(db *gorm.DB, respWriter response.Writer) *HistoryHandler {
	return &HistoryHandler{
		service:    service.NewHistoryService(db),
		respWriter: respWriter,
	}
}

// SearchHistory 分页搜索交易记录
// @Summary 分页搜索交易记录
// @Description 按玩家名/物品列模糊搜索，按交易时间倒序分页
// @Tags 交易记录
// @Produce json
// @Param search query string false "搜索关键词"
// @Param page query int false "页码(默认1)"
// @Param pageSize query int false "每页数量(默认20，最大100)"
// @Success 200 {object} response.ResponseResult[map[string]interface{}] "成功返回记录列表和总数"
// @Router /api/history-transaction [get]
func (h *HistoryHandler) SearchHistory(c echo.Context) error {
	ctx := c.Request().Context()

	// 1. 解析查询参数
	search := c.QueryParam("search")
	page := queryIntDefault(c, "page", 1)
	pageSize := queryIntDefault(c, "pageSize", 20)

	// 2. 分页查询
	list, total, err := h.service.SearchHistory(ctx, search, page, pageSize)
	if err != nil {
		return response.EchoError(c, h.respWriter, err)
	}

	return response.EchoOK(c, h.respWriter, map[string]interface{}{
		"list":     list,
		"total":    total,
		"page":     page,
		"pageSize": pageSize,
	})
}

// DeleteHistory 删除单条交易记录
// @Summary 删除单条交易记录
// @Tags 交易记录
// @Produce json
// @Param id path int true "记录ID"
// @Success 200 {object} response.ResponseResult[response.EmptyData] "删除成功"
// @Failure 404 {object} response.ResponseResult[response.EmptyData] "记录不存在"
// @Router /api/history-transaction/{id} [delete]
func (h *HistoryHandler) DeleteHistory(c echo.Context) error {
	id, err := pathInt(c, "id")
	if err != nil {
		return response.EchoBadRequest(c, h.respWriter, "ID 必须为整数")
	}
	if err := h.service.DeleteHistory(c.Request().Context(), id); err != nil {
		return response.EchoError(c, h.respWriter, err)
	}
	return response.EchoOK(c, h.respWriter, response.EmptyData{})
}

// DeleteAllHistory 清空所有交易记录
// @Summary 清空所有交易记录
// @Tags 交易记录
// @Produce json
// @Success 200 {object} response.ResponseResult[response.EmptyData] "清空成功"
// @Router /api/history-transaction [delete]
func (h *HistoryHandler) DeleteAllHistory(c echo.Context) error {
	if err := h.service.DeleteAllHistory(c.Request().Context()); err != nil {
		return response.EchoError(c, h.respWriter, err)
	}
	return response.EchoOK(c, h.respWriter, response.EmptyData{})
}
