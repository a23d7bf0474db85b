package handler

import (
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/ahwuoc/web-manager-nro-teav2/internal/modules/admin/dto"
	"github.com/ahwuoc/web-manager-nro-teav2/internal/modules/admin/service"
	"github.com/ahwuoc/web-manager-nro-teav2/internal/pkg/response"
)

// WeeklyTopHandler 周排行榜 HTTP 处理器
type WeeklyTopHandler struct {
	service    *service.WeeklyTopService
	respWriter response.Writer
}

// NewWeeklyTopHandler 创建周排行榜处理器
func NewWeeklyTopHandler(db *gorm.DB, respWriter response.Writer) *WeeklyTopHandler {
	return &WeeklyTopHandler{
		service:    service.NewWeeklyTopService(db),
		respWriter: respWriter,
	}
}

// GetTypes 获取排行榜类型列表
// @Summary 获取周排行榜类型列表
// @Description 获取所有排行榜类型，按 order_index 升序，内嵌各自的奖励（按 rank_from 升序）
// @Tags 周排行榜
// @Produce json
// @Success 200 {object} response.ResponseResult[[]entity.WeeklyTopType] "成功返回类型列表"
// @Router /api/weekly-top-types [get]
func (h *WeeklyTopHandler) GetTypes(c echo.Context) error {
	types, err := h.service.GetTypes(c.Request().Context())
	if err != nil {
		return response.EchoError(c, h.respWriter, err)
	}
	return response.EchoOK(c, h.respWriter, types)
}

// GetType 获取排行榜类型详情
// @Summary 获取周排行榜类型详情
// @Tags 周排行榜
// @Produce json
// @Param id path int true "类型ID"
// @Success 200 {object} response.ResponseResult[entity.WeeklyTopType] "成功返回类型详情"
// @Failure 404 {object} response.ResponseResult[response.EmptyData] "类型不存在"
// @Router /api/weekly-top-types/{id} [get]
func (h *WeeklyTopHandler) GetType(c echo.Context) error {
	id, err := pathInt(c, "id")
	if err != nil {
		return response.EchoBadRequest(c, h.respWriter, "ID 必须为整数")
	}

	t, err := h.service.GetTypeByID(c.Request().Context(), id)
	if err != nil {
		return response.EchoError(c, h.respWriter, err)
	}
	return response.EchoOK(c, h.respWriter, t)
}

// CreateType 创建排行榜类型
// @Summary 创建周排行榜类型
// @Tags 周排行榜
// @Accept json
// @Produce json
// @Param request body dto.CreateTopTypeRequest true "创建类型请求"
// @Success 200 {object} response.ResponseResult[entity.WeeklyTopType] "成功返回创建的类型"
// @Failure 400 {object} response.ResponseResult[response.EmptyData] "请求参数错误"
// @Router /api/weekly-top-types [post]
func (h *WeeklyTopHandler) CreateType(c echo.Context) error {
	var req dto.CreateTopTypeRequest
	if err := c.Bind(&req); err != nil {
		return response.EchoBadRequest(c, h.respWriter, "参数错误")
	}
	if err := c.Validate(&req); err != nil {
		return response.EchoBadRequest(c, h.respWriter, err.Error())
	}

	t, err := h.service.CreateType(c.Request().Context(), &req)
	if err != nil {
		return response.EchoError(c, h.respWriter, err)
	}
	return response.EchoOK(c, h.respWriter, t)
}

// UpdateType 更新排行榜类型
// @Summary 更新周排行榜类型
// @Tags 周排行榜
// @Accept json
// @Produce json
// @Param id path int true "类型ID"
// @Param request body dto.UpdateTopTypeRequest true "更新类型请求"
// @Success 200 {object} response.ResponseResult[entity.WeeklyTopType] "成功返回更新后的类型"
// @Failure 404 {object} response.ResponseResult[response.EmptyData] "类型不存在"
// @Router /api/weekly-top-types/{id} [put]
func (h *WeeklyTopHandler) UpdateType(c echo.Context) error {
	id, err := pathInt(c, "id")
	if err != nil {
		return response.EchoBadRequest(c, h.respWriter, "ID 必须为整数")
	}

	var req dto.UpdateTopTypeRequest
	if err := c.Bind(&req); err != nil {
		return response.EchoBadRequest(c, h.respWriter, "参数错误")
	}
	if err := c.Validate(&req); err != nil {
		return response.EchoBadRequest(c, h.respWriter, err.Error())
	}

	t, err := h.service.UpdateType(c.Request().Context(), id, &req)
	if err != nil {
		return response.EchoError(c, h.respWriter, err)
	}
	return response.EchoOK(c, h.respWriter, t)
}

// DeleteType 删除排行榜类型
// @Summary 删除周排行榜类型
// @Tags 周排行榜
// @Produce json
// @Param id path int true "类型ID"
// @Success 200 {object} response.ResponseResult[response.EmptyData] "删除成功"
// @Failure 404 {object} response.ResponseResult[response.EmptyData] "类型不存在"
// @Router /api/weekly-top-types/{id} [delete]
func (h *WeeklyTopHandler) DeleteType(c echo.Context) error {
	id, err := pathInt(c, "id")
	if err != nil {
		return response.EchoBadRequest(c, h.respWriter, "ID 必须为整数")
	}
	if err := h.service.DeleteType(c.Request().Context(), id); err != nil {
		return response.EchoError(c, h.respWriter, err)
	}
	return response.EchoOK(c, h.respWriter, response.EmptyData{})
}

// GetRewards 获取奖励列表
// @Summary 获取周排行榜奖励列表
// @Description 获取奖励列表，支持按 top_type_id 过滤，按 rank_from 升序
// @Tags 周排行榜
// @Produce json
// @Param top_type_id query int false "按排行榜类型过滤"
// @Success 200 {object} response.ResponseResult[[]entity.WeeklyTopReward] "成功返回奖励列表"
// @Router /api/weekly-top-rewards [get]
func (h *WeeklyTopHandler) GetRewards(c echo.Context) error {
	rewards, err := h.service.GetRewards(c.Request().Context(), queryInt(c, "top_type_id"))
	if err != nil {
		return response.EchoError(c, h.respWriter, err)
	}
	return response.EchoOK(c, h.respWriter, rewards)
}

// CreateReward 创建奖励
// @Summary 创建周排行榜奖励
// @Description 创建新的奖励段位，rank_to 不能小于 rank_from
// @Tags 周排行榜
// @Accept json
// @Produce json
// @Param request body dto.CreateTopRewardRequest true "创建奖励请求"
// @Success 200 {object} response.ResponseResult[entity.WeeklyTopReward] "成功返回创建的奖励"
// @Failure 400 {object} response.ResponseResult[response.EmptyData] "请求参数错误"
// @Failure 404 {object} response.ResponseResult[response.EmptyData] "排行榜类型不存在"
// @Router /api/weekly-top-rewards [post]
func (h *WeeklyTopHandler) CreateReward(c echo.Context) error {
	var req dto.CreateTopRewardRequest
	if err := c.Bind(&req); err != nil {
		return response.EchoBadRequest(c, h.respWriter, "参数错误")
	}
	if err := c.Validate(&req); err != nil {
		return response.EchoBadRequest(c, h.respWriter, err.Error())
	}

	r, err := h.service.CreateReward(c.Request().Context(), &req)
	if err != nil {
		return response.EchoError(c, h.respWriter, err)
	}
	return response.EchoOK(c, h.respWriter, r)
}

// UpdateReward 更新奖励
// @Summary 更新周排行榜奖励
// @Tags 周排行榜
// @Accept json
// @Produce json
// @Param id path int true "奖励ID"
// @Param request body dto.UpdateTopRewardRequest true "更新奖励请求"
// @Success 200 {object} response.ResponseResult[entity.WeeklyTopReward] "成功返回更新后的奖励"
// @Failure 404 {object} response.ResponseResult[response.EmptyData] "奖励不存在"
// @Router /api/weekly-top-rewards/{id} [put]
func (h *WeeklyTopHandler) UpdateReward(c echo.Context) error {
	id, err := pathInt(c, "id")
	if err != nil {
		return response.EchoBadRequest(c, h.respWriter, "ID 必须为整数")
	}

	var req dto.UpdateTopRewardRequest
	if err := c.Bind(&req); err != nil {
		return response.EchoBadRequest(c, h.respWriter, "参数错误")
	}
	if err := c.Validate(&req); err != nil {
		return response.EchoBadRequest(c, h.respWriter, err.Error())
	}

	r, err := h.service.UpdateReward(c.Request().Context(), id, &req)
	if err != nil {
		return response.EchoError(c, h.respWriter, err)
	}
	return response.EchoOK(c, h.respWriter, r)
}

// DeleteReward 删除奖励
// @Summary 删除周排行榜奖励
// @Tags 周排行榜
// @Produce json
// @Param id path int true "奖励ID"
// @Success 200 {object} response.ResponseResult[response.EmptyData] "删除成功"
// @Failure 404 {object} response.ResponseResult[response.EmptyData] "奖励不存在"
// @Router /api/weekly-top-rewards/{id} [delete]
func (h *WeeklyTopHandler) DeleteReward(c echo.Context) error {
	id, err := pathInt(c, "id")
	if err != nil {
		return response.EchoBadRequest(c, h.respWriter, "ID 必须为整数")
	}
	if err := h.service.DeleteReward(c.Request().Context(), id); err != nil {
		return response.EchoError(c, h.respWriter, err)
	}
	return response.EchoOK(c, h.respWriter, response.EmptyData{})
}
