package handler

import (
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/ahwuoc/web-manager-nro-teav2/internal/modules/admin/dto"
	"github.com/ahwuoc/web-manager-nro-teav2/internal/modules/admin/service"
	"github.com/ahwuoc/web-manager-nro-teav2/internal/pkg/response"
	"github.com/ahwuoc/web-manager-nro-teav2/internal/pkg/xerrors"
)

// MilestoneHandler 里程碑与礼包 HTTP 处理器
type MilestoneHandler struct {
	service    *service.MilestoneService
	respWriter response.Writer
}

// NewMilestoneHandler 创建里程碑处理器
func NewMilestoneHandler(db *gorm.DB, respWriter response.Writer) *MilestoneHandler {
	return &MilestoneHandler{
		service:    service.NewMilestoneService(db),
		respWriter: respWriter,
	}
}

// ==================== 充值里程碑 ====================

// GetMocNaps 获取充值里程碑列表
// @Summary 获取充值里程碑列表
// @Tags 里程碑
// @Produce json
// @Success 200 {object} response.ResponseResult[[]entity.MocNap] "成功返回列表"
// @Router /api/moc-nap [get]
func (h *MilestoneHandler) GetMocNaps(c echo.Context) error {
	list, err := h.service.GetMocNaps(c.Request().Context())
	if err != nil {
		return response.EchoError(c, h.respWriter, err)
	}
	return response.EchoOK(c, h.respWriter, list)
}

// CreateMocNap 创建充值里程碑
// @Summary 创建充值里程碑
// @Tags 里程碑
// @Accept json
// @Produce json
// @Param request body dto.CreateMocNapRequest true "创建请求"
// @Success 200 {object} response.ResponseResult[entity.MocNap] "成功返回创建的里程碑"
// @Failure 400 {object} response.ResponseResult[response.EmptyData] "请求参数错误"
// @Router /api/moc-nap [post]
func (h *MilestoneHandler) CreateMocNap(c echo.Context) error {
	var req dto.CreateMocNapRequest
	if err := c.Bind(&req); err != nil {
		return response.EchoBadRequest(c, h.respWriter, "参数错误")
	}
	if err := c.Validate(&req); err != nil {
		return response.EchoBadRequest(c, h.respWriter, err.Error())
	}

	m, err := h.service.CreateMocNap(c.Request().Context(), &req)
	if err != nil {
		return response.EchoError(c, h.respWriter, err)
	}
	return response.EchoOK(c, h.respWriter, m)
}

// UpdateMocNap 更新充值里程碑
// @Summary 更新充值里程碑
// @Tags 里程碑
// @Accept json
// @Produce json
// @Param id path int true "里程碑ID"
// @Param request body dto.UpdateMilestoneRequest true "更新请求"
// @Success 200 {object} response.ResponseResult[entity.MocNap] "成功返回更新后的里程碑"
// @Failure 404 {object} response.ResponseResult[response.EmptyData] "里程碑不存在"
// @Router /api/moc-nap/{id} [put]
func (h *MilestoneHandler) UpdateMocNap(c echo.Context) error {
	id, err := pathInt(c, "id")
	if err != nil {
		return response.EchoBadRequest(c, h.respWriter, "ID 必须为整数")
	}

	var req dto.UpdateMilestoneRequest
	if err := c.Bind(&req); err != nil {
		return response.EchoBadRequest(c, h.respWriter, "参数错误")
	}
	if err := c.Validate(&req); err != nil {
		return response.EchoBadRequest(c, h.respWriter, err.Error())
	}

	m, err := h.service.UpdateMocNap(c.Request().Context(), id, &req)
	if err != nil {
		return response.EchoError(c, h.respWriter, err)
	}
	return response.EchoOK(c, h.respWriter, m)
}

// DeleteMocNap 删除充值里程碑
// @Summary 删除充值里程碑
// @Tags 里程碑
// @Produce json
// @Param id path int true "里程碑ID"
// @Success 200 {object} response.ResponseResult[response.EmptyData] "删除成功"
// @Failure 404 {object} response.ResponseResult[response.EmptyData] "里程碑不存在"
// @Router /api/moc-nap/{id} [delete]
func (h *MilestoneHandler) DeleteMocNap(c echo.Context) error {
	id, err := pathInt(c, "id")
	if err != nil {
		return response.EchoBadRequest(c, h.respWriter, "ID 必须为整数")
	}
	if err := h.service.DeleteMocNap(c.Request().Context(), id); err != nil {
		return response.EchoError(c, h.respWriter, err)
	}
	return response.EchoOK(c, h.respWriter, response.EmptyData{})
}

// ==================== 在线时长里程碑 ====================

// GetMocOnlines 获取在线时长里程碑列表
// @Summary 获取在线时长里程碑列表
// @Tags 里程碑
// @Produce json
// @Success 200 {object} response.ResponseResult[[]entity.MocOnline] "成功返回列表"
// @Router /api/moc-online [get]
func (h *MilestoneHandler) GetMocOnlines(c echo.Context) error {
	list, err := h.service.GetMocOnlines(c.Request().Context())
	if err != nil {
		return response.EchoError(c, h.respWriter, err)
	}
	return response.EchoOK(c, h.respWriter, list)
}

// CreateMocOnline 创建在线时长里程碑
// @Summary 创建在线时长里程碑
// @Tags 里程碑
// @Accept json
// @Produce json
// @Param request body dto.CreateMocOnlineRequest true "创建请求"
// @Success 200 {object} response.ResponseResult[entity.MocOnline] "成功返回创建的里程碑"
// @Failure 400 {object} response.ResponseResult[response.EmptyData] "请求参数错误"
// @Router /api/moc-online [post]
func (h *MilestoneHandler) CreateMocOnline(c echo.Context) error {
	var req dto.CreateMocOnlineRequest
	if err := c.Bind(&req); err != nil {
		return response.EchoBadRequest(c, h.respWriter, "参数错误")
	}
	if err := c.Validate(&req); err != nil {
		return response.EchoBadRequest(c, h.respWriter, err.Error())
	}

	m, err := h.service.CreateMocOnline(c.Request().Context(), &req)
	if err != nil {
		return response.EchoError(c, h.respWriter, err)
	}
	return response.EchoOK(c, h.respWriter, m)
}

// UpdateMocOnline 更新在线时长里程碑
// @Summary 更新在线时长里程碑
// @Tags 里程碑
// @Accept json
// @Produce json
// @Param id path int true "里程碑ID"
// @Param request body dto.UpdateMilestoneRequest true "更新请求"
// @Success 200 {object} response.ResponseResult[entity.MocOnline] "成功返回更新后的里程碑"
// @Failure 404 {object} response.ResponseResult[response.EmptyData] "里程碑不存在"
// @Router /api/moc-online/{id} [put]
func (h *MilestoneHandler) UpdateMocOnline(c echo.Context) error {
	id, err := pathInt(c, "id")
	if err != nil {
		return response.EchoBadRequest(c, h.respWriter, "ID 必须为整数")
	}

	var req dto.UpdateMilestoneRequest
	if err := c.Bind(&req); err != nil {
		return response.EchoBadRequest(c, h.respWriter, "参数错误")
	}
	if err := c.Validate(&req); err != nil {
		return response.EchoBadRequest(c, h.respWriter, err.Error())
	}

	m, err := h.service.UpdateMocOnline(c.Request().Context(), id, &req)
	if err != nil {
		return response.EchoError(c, h.respWriter, err)
	}
	return response.EchoOK(c, h.respWriter, m)
}

// DeleteMocOnline 删除在线时长里程碑
// @Summary 删除在线时长里程碑
// @Tags 里程碑
// @Produce json
// @Param id path int true "里程碑ID"
// @Success 200 {object} response.ResponseResult[response.EmptyData] "删除成功"
// @Failure 404 {object} response.ResponseResult[response.EmptyData] "里程碑不存在"
// @Router /api/moc-online/{id} [delete]
func (h *MilestoneHandler) DeleteMocOnline(c echo.Context) error {
	id, err := pathInt(c, "id")
	if err != nil {
		return response.EchoBadRequest(c, h.respWriter, "ID 必须为整数")
	}
	if err := h.service.DeleteMocOnline(c.Request().Context(), id); err != nil {
		return response.EchoError(c, h.respWriter, err)
	}
	return response.EchoOK(c, h.respWriter, response.EmptyData{})
}

// ==================== 消费里程碑 ====================

// GetMocTieuTiens 获取消费里程碑列表
// @Summary 获取消费里程碑列表
// @Tags 里程碑
// @Produce json
// @Success 200 {object} response.ResponseResult[[]entity.MocTieuTien] "成功返回列表"
// @Router /api/moc-tieutien [get]
func (h *MilestoneHandler) GetMocTieuTiens(c echo.Context) error {
	list, err := h.service.GetMocTieuTiens(c.Request().Context())
	if err != nil {
		return response.EchoError(c, h.respWriter, err)
	}
	return response.EchoOK(c, h.respWriter, list)
}

// CreateMocTieuTien 创建消费里程碑
// @Summary 创建消费里程碑
// @Tags 里程碑
// @Accept json
// @Produce json
// @Param request body dto.CreateMocTieuTienRequest true "创建请求"
// @Success 200 {object} response.ResponseResult[entity.MocTieuTien] "成功返回创建的里程碑"
// @Failure 400 {object} response.ResponseResult[response.EmptyData] "请求参数错误"
// @Router /api/moc-tieutien [post]
func (h *MilestoneHandler) CreateMocTieuTien(c echo.Context) error {
	var req dto.CreateMocTieuTienRequest
	if err := c.Bind(&req); err != nil {
		return response.EchoBadRequest(c, h.respWriter, "参数错误")
	}
	if err := c.Validate(&req); err != nil {
		return response.EchoBadRequest(c, h.respWriter, err.Error())
	}

	m, err := h.service.CreateMocTieuTien(c.Request().Context(), &req)
	if err != nil {
		return response.EchoError(c, h.respWriter, err)
	}
	return response.EchoOK(c, h.respWriter, m)
}

// UpdateMocTieuTien 更新消费里程碑
// @Summary 更新消费里程碑
// @Tags 里程碑
// @Accept json
// @Produce json
// @Param id path int true "里程碑ID"
// @Param request body dto.UpdateMilestoneRequest true "更新请求"
// @Success 200 {object} response.ResponseResult[entity.MocTieuTien] "成功返回更新后的里程碑"
// @Failure 404 {object} response.ResponseResult[response.EmptyData] "里程碑不存在"
// @Router /api/moc-tieutien/{id} [put]
func (h *MilestoneHandler) UpdateMocTieuTien(c echo.Context) error {
	id, err := pathInt(c, "id")
	if err != nil {
		return response.EchoBadRequest(c, h.respWriter, "ID 必须为整数")
	}

	var req dto.UpdateMilestoneRequest
	if err := c.Bind(&req); err != nil {
		return response.EchoBadRequest(c, h.respWriter, "参数错误")
	}
	if err := c.Validate(&req); err != nil {
		return response.EchoBadRequest(c, h.respWriter, err.Error())
	}

	m, err := h.service.UpdateMocTieuTien(c.Request().Context(), id, &req)
	if err != nil {
		return response.EchoError(c, h.respWriter, err)
	}
	return response.EchoOK(c, h.respWriter, m)
}

// DeleteMocTieuTien 删除消费里程碑
// @Summary 删除消费里程碑
// @Tags 里程碑
// @Produce json
// @Param id path int true "里程碑ID"
// @Success 200 {object} response.ResponseResult[response.EmptyData] "删除成功"
// @Failure 404 {object} response.ResponseResult[response.EmptyData] "里程碑不存在"
// @Router /api/moc-tieutien/{id} [delete]
func (h *MilestoneHandler) DeleteMocTieuTien(c echo.Context) error {
	id, err := pathInt(c, "id")
	if err != nil {
		return response.EchoBadRequest(c, h.respWriter, "ID 必须为整数")
	}
	if err := h.service.DeleteMocTieuTien(c.Request().Context(), id); err != nil {
		return response.EchoError(c, h.respWriter, err)
	}
	return response.EchoOK(c, h.respWriter, response.EmptyData{})
}

// ==================== 礼包 ====================
// 礼包的集合查询/创建在线上已停用，仅保留单条更新与删除。

// GoiQuaDisabled 礼包集合接口已停用
// @Summary 礼包集合接口（已停用）
// @Tags 里程碑
// @Produce json
// @Failure 503 {object} response.ResponseResult[response.EmptyData] "功能已停用"
// @Router /api/goi-qua [get]
func (h *MilestoneHandler) GoiQuaDisabled(c echo.Context) error {
	return response.EchoError(c, h.respWriter, xerrors.FromCode(xerrors.CodeFeatureDisabled))
}

// UpdateGoiQua 更新礼包
// @Summary 更新礼包
// @Tags 里程碑
// @Accept json
// @Produce json
// @Param id path int true "礼包ID"
// @Param request body dto.UpdateGoiQuaRequest true "更新请求"
// @Success 200 {object} response.ResponseResult[entity.GoiQua] "成功返回更新后的礼包"
// @Failure 404 {object} response.ResponseResult[response.EmptyData] "礼包不存在"
// @Router /api/goi-qua/{id} [put]
func (h *MilestoneHandler) UpdateGoiQua(c echo.Context) error {
	id, err := pathInt(c, "id")
	if err != nil {
		return response.EchoBadRequest(c, h.respWriter, "ID 必须为整数")
	}

	var req dto.UpdateGoiQuaRequest
	if err := c.Bind(&req); err != nil {
		return response.EchoBadRequest(c, h.respWriter, "参数错误")
	}
	if err := c.Validate(&req); err != nil {
		return response.EchoBadRequest(c, h.respWriter, err.Error())
	}

	g, err := h.service.UpdateGoiQua(c.Request().Context(), id, &req)
	if err != nil {
		return response.EchoError(c, h.respWriter, err)
	}
	return response.EchoOK(c, h.respWriter, g)
}

// DeleteGoiQua 删除礼包
// @Summary 删除礼包
// @Tags 里程碑
// @Produce json
// @Param id path int true "礼包ID"
// @Success 200 {object} response.ResponseResult[response.EmptyData] "删除成功"
// @Failure 404 {object} response.ResponseResult[response.EmptyData] "礼包不存在"
// @Router /api/goi-qua/{id} [delete]
func (h *MilestoneHandler) DeleteGoiQua(c echo.Context) error {
	id, err := pathInt(c, "id")
	if err != nil {
		return response.EchoBadRequest(c, h.respWriter, "ID 必须为整数")
	}
	if err := h.service.DeleteGoiQua(c.Request().Context(), id); err != nil {
		return response.EchoError(c, h.respWriter, err)
	}
	return response.EchoOK(c, h.respWriter, response.EmptyData{})
}
