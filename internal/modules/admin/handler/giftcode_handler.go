package handler

import (
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/ahwuoc/web-manager-nro-teav2/internal/modules/admin/dto"
	"github.com/ahwuoc/web-manager-nro-teav2/internal/modules/admin/service"
	"github.com/ahwuoc/web-manager-nro-teav2/internal/pkg/response"
)

// GiftcodeHandler 礼品码 HTTP 处理器
type GiftcodeHandler struct {
	service    *service.GiftcodeService
	respWriter response.Writer
}

// NewGiftcodeHandler 创建礼品码处理器
func NewGiftcodeHandler(db *gorm.DB, respWriter response.Writer) *GiftcodeHandler {
	return &GiftcodeHandler{
		service:    service.NewGiftcodeService(db),
		respWriter: respWriter,
	}
}

// GetGiftcodes 获取礼品码列表
// @Summary 获取礼品码列表
// @Description 获取所有礼品码，按创建顺序倒序（最新优先）
// @Tags 礼品码
// @Accept json
// @Produce json
// @Success 200 {object} response.ResponseResult[[]entity.Giftcode] "成功返回礼品码列表"
// @Failure 500 {object} response.ResponseResult[response.EmptyData] "服务器内部错误"
// @Router /api/giftcode [get]
func (h *GiftcodeHandler) GetGiftcodes(c echo.Context) error {
	ctx := c.Request().Context()

	giftcodes, err := h.service.GetGiftcodes(ctx)
	if err != nil {
		return response.EchoError(c, h.respWriter, err)
	}

	return response.EchoOK(c, h.respWriter, giftcodes)
}

// GetGiftcode 获取礼品码详情
// @Summary 获取礼品码详情
// @Description 根据ID获取单个礼品码
// @Tags 礼品码
// @Accept json
// @Produce json
// @Param id path int true "礼品码ID"
// @Success 200 {object} response.ResponseResult[entity.Giftcode] "成功返回礼品码详情"
// @Failure 404 {object} response.ResponseResult[response.EmptyData] "礼品码不存在"
// @Router /api/giftcode/{id} [get]
func (h *GiftcodeHandler) GetGiftcode(c echo.Context) error {
	ctx := c.Request().Context()

	// 1. 获取礼品码ID
	id, err := pathInt(c, "id")
	if err != nil {
		return response.EchoBadRequest(c, h.respWriter, "ID 必须为整数")
	}

	// 2. 查询
	gc, err := h.service.GetGiftcodeByID(ctx, id)
	if err != nil {
		return response.EchoError(c, h.respWriter, err)
	}

	return response.EchoOK(c, h.respWriter, gc)
}

// CreateGiftcode 创建礼品码
// @Summary 创建礼品码
// @Description 创建新的礼品码，码值必须唯一
// @Tags 礼品码
// @Accept json
// @Produce json
// @Param request body dto.CreateGiftcodeRequest true "创建礼品码请求"
// @Success 200 {object} response.ResponseResult[entity.Giftcode] "成功返回创建的礼品码"
// @Failure 400 {object} response.ResponseResult[response.EmptyData] "请求参数错误"
// @Failure 409 {object} response.ResponseResult[response.EmptyData] "礼品码已存在"
// @Router /api/giftcode [post]
func (h *GiftcodeHandler) CreateGiftcode(c echo.Context) error {
	ctx := c.Request().Context()

	// 1. 绑定和验证请求参数
	var req dto.CreateGiftcodeRequest
	if err := c.Bind(&req); err != nil {
		return response.EchoBadRequest(c, h.respWriter, "参数错误")
	}
	if err := c.Validate(&req); err != nil {
		return response.EchoBadRequest(c, h.respWriter, err.Error())
	}

	// 2. 创建礼品码
	gc, err := h.service.CreateGiftcode(ctx, &req)
	if err != nil {
		return response.EchoError(c, h.respWriter, err)
	}

	return response.EchoOK(c, h.respWriter, gc)
}

// UpdateGiftcode 更新礼品码
// @Summary 更新礼品码
// @Description 更新指定ID的礼品码，支持部分字段更新
// @Tags 礼品码
// @Accept json
// @Produce json
// @Param id path int true "礼品码ID"
// @Param request body dto.UpdateGiftcodeRequest true "更新礼品码请求"
// @Success 200 {object} response.ResponseResult[entity.Giftcode] "成功返回更新后的礼品码"
// @Failure 404 {object} response.ResponseResult[response.EmptyData] "礼品码不存在"
// @Router /api/giftcode/{id} [put]
func (h *GiftcodeHandler) UpdateGiftcode(c echo.Context) error {
	ctx := c.Request().Context()

	// 1. 获取礼品码ID
	id, err := pathInt(c, "id")
	if err != nil {
		return response.EchoBadRequest(c, h.respWriter, "ID 必须为整数")
	}

	// 2. 绑定和验证请求参数
	var req dto.UpdateGiftcodeRequest
	if err := c.Bind(&req); err != nil {
		return response.EchoBadRequest(c, h.respWriter, "参数错误")
	}
	if err := c.Validate(&req); err != nil {
		return response.EchoBadRequest(c, h.respWriter, err.Error())
	}

	// 3. 更新礼品码
	gc, err := h.service.UpdateGiftcode(ctx, id, &req)
	if err != nil {
		return response.EchoError(c, h.respWriter, err)
	}

	return response.EchoOK(c, h.respWriter, gc)
}

// DeleteGiftcode 删除礼品码
// @Summary 删除礼品码
// @Description 删除指定ID的礼品码
// @Tags 礼品码
// @Accept json
// @Produce json
// @Param id path int true "礼品码ID"
// @Success 200 {object} response.ResponseResult[response.EmptyData] "删除成功"
// @Failure 404 {object} response.ResponseResult[response.EmptyData] "礼品码不存在"
// @Router /api/giftcode/{id} [delete]
func (h *GiftcodeHandler) DeleteGiftcode(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := pathInt(c, "id")
	if err != nil {
		return response.EchoBadRequest(c, h.respWriter, "ID 必须为整数")
	}

	if err := h.service.DeleteGiftcode(ctx, id); err != nil {
		return response.EchoError(c, h.respWriter, err)
	}

	return response.EchoOK(c, h.respWriter, response.EmptyData{})
}
