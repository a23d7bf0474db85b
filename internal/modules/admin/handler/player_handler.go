package handler

import (
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/ahwuoc/web-manager-nro-teav2/internal/modules/admin/dto"
	"github.com/ahwuoc/web-manager-nro-teav2/internal/modules/admin/service"
	"github.com/ahwuoc/web-manager-nro-teav2/internal/pkg/response"
)

// PlayerHandler 玩家账号 HTTP 处理器
type PlayerHandler struct {
	service    *service.PlayerService
	respWriter response.Writer
}

// NewPlayerHandler 创建玩家账号处理器
func NewPlayerHandler(db *gorm.DB, respWriter response.Writer) *PlayerHandler {
	return &PlayerHandler{
		service:    service.NewPlayerService(db),
		respWriter: respWriter,
	}
}

// SearchAccounts 搜索账号
// @Summary 搜索玩家账号
// @Description 按用户名/邮箱/角色名模糊搜索，按ID倒序，最多返回 50 条；金币列序列化为字符串
// @Tags 玩家
// @Produce json
// @Param search query string false "搜索关键词"
// @Success 200 {object} response.ResponseResult[[]entity.Account] "成功返回账号列表"
// @Router /api/players [get]
func (h *PlayerHandler) SearchAccounts(c echo.Context) error {
	accounts, err := h.service.SearchAccounts(c.Request().Context(), c.QueryParam("search"))
	if err != nil {
		return response.EchoError(c, h.respWriter, err)
	}
	return response.EchoOK(c, h.respWriter, accounts)
}

// GetAccount 获取账号详情
// @Summary 获取玩家账号详情
// @Tags 玩家
// @Produce json
// @Param id path int true "账号ID"
// @Success 200 {object} response.ResponseResult[entity.Account] "成功返回账号详情"
// @Failure 404 {object} response.ResponseResult[response.EmptyData] "账号不存在"
// @Router /api/players/{id} [get]
func (h *PlayerHandler) GetAccount(c echo.Context) error {
	id, err := pathInt(c, "id")
	if err != nil {
		return response.EchoBadRequest(c, h.respWriter, "ID 必须为整数")
	}

	acc, err := h.service.GetAccountByID(c.Request().Context(), id)
	if err != nil {
		return response.EchoError(c, h.respWriter, err)
	}
	return response.EchoOK(c, h.respWriter, acc)
}

// SetBan 封禁/解封账号
// @Summary 封禁或解封玩家账号
// @Tags 玩家
// @Accept json
// @Produce json
// @Param id path int true "账号ID"
// @Param request body dto.BanAccountRequest true "封禁请求"
// @Success 200 {object} response.ResponseResult[entity.Account] "成功返回更新后的账号"
// @Failure 404 {object} response.ResponseResult[response.EmptyData] "账号不存在"
// @Router /api/players/{id}/ban [put]
func (h *PlayerHandler) SetBan(c echo.Context) error {
	id, err := pathInt(c, "id")
	if err != nil {
		return response.EchoBadRequest(c, h.respWriter, "ID 必须为整数")
	}

	var req dto.BanAccountRequest
	if err := c.Bind(&req); err != nil {
		return response.EchoBadRequest(c, h.respWriter, "参数错误")
	}
	if err := c.Validate(&req); err != nil {
		return response.EchoBadRequest(c, h.respWriter, err.Error())
	}

	acc, err := h.service.SetBan(c.Request().Context(), id, &req)
	if err != nil {
		return response.EchoError(c, h.respWriter, err)
	}
	return response.EchoOK(c, h.respWriter, acc)
}

// AdjustCash 调整账号 cash
// @Summary 调整玩家账号 cash
// @Description 增加或扣减 cash（负数为扣减，结果不小于 0）；add_to_danap 为 true 时同步累加充值总额
// @Tags 玩家
// @Accept json
// @Produce json
// @Param id path int true "账号ID"
// @Param request body dto.AdjustCashRequest true "调整请求"
// @Success 200 {object} response.ResponseResult[entity.Account] "成功返回更新后的账号"
// @Failure 404 {object} response.ResponseResult[response.EmptyData] "账号不存在"
// @Router /api/players/{id}/cash [put]
func (h *PlayerHandler) AdjustCash(c echo.Context) error {
	id, err := pathInt(c, "id")
	if err != nil {
		return response.EchoBadRequest(c, h.respWriter, "ID 必须为整数")
	}

	var req dto.AdjustCashRequest
	if err := c.Bind(&req); err != nil {
		return response.EchoBadRequest(c, h.respWriter, "参数错误")
	}
	if err := c.Validate(&req); err != nil {
		return response.EchoBadRequest(c, h.respWriter, err.Error())
	}

	acc, err := h.service.AdjustCash(c.Request().Context(), id, &req)
	if err != nil {
		return response.EchoError(c, h.respWriter, err)
	}
	return response.EchoOK(c, h.respWriter, acc)
}

// AdjustVang 调整账号金币
// @Summary 调整玩家账号金币（vang）
// @Description 增加或扣减金币（BigInt 列，请求金额为字符串承载的整数，结果不小于 0）
// @Tags 玩家
// @Accept json
// @Produce json
// @Param id path int true "账号ID"
// @Param request body dto.AdjustVangRequest true "调整请求"
// @Success 200 {object} response.ResponseResult[entity.Account] "成功返回更新后的账号"
// @Failure 404 {object} response.ResponseResult[response.EmptyData] "账号不存在"
// @Router /api/players/{id}/vang [put]
func (h *PlayerHandler) AdjustVang(c echo.Context) error {
	id, err := pathInt(c, "id")
	if err != nil {
		return response.EchoBadRequest(c, h.respWriter, "ID 必须为整数")
	}

	var req dto.AdjustVangRequest
	if err := c.Bind(&req); err != nil {
		return response.EchoBadRequest(c, h.respWriter, "参数错误")
	}
	if err := c.Validate(&req); err != nil {
		return response.EchoBadRequest(c, h.respWriter, err.Error())
	}

	acc, err := h.service.AdjustVang(c.Request().Context(), id, &req)
	if err != nil {
		return response.EchoError(c, h.respWriter, err)
	}
	return response.EchoOK(c, h.respWriter, acc)
}
