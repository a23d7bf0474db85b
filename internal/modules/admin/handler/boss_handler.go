package handler

import (
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/ahwuoc/web-manager-nro-teav2/internal/modules/admin/dto"
	"github.com/ahwuoc/web-manager-nro-teav2/internal/modules/admin/service"
	"github.com/ahwuoc/web-manager-nro-teav2/internal/pkg/response"
)

// BossHandler Boss 配置 HTTP 处理器
type BossHandler struct {
	service    *service.BossService
	respWriter response.Writer
}

// NewBossHandler 创建 Boss 处理器
func NewBossHandler(db *gorm.DB, respWriter response.Writer) *BossHandler {
	return &BossHandler{
		service:    service.NewBossService(db),
		respWriter: respWriter,
	}
}

// GetBosses 获取 Boss 列表
// @Summary 获取 Boss 列表
// @Description 获取 Boss 配置列表，支持按名称过滤；grouped=true 时按 Boss ID 分组返回
// @Tags Boss配置
// @Accept json
// @Produce json
// @Param boss_name query string false "按 Boss 名称过滤"
// @Param grouped query bool false "按 Boss ID 分组"
// @Success 200 {object} response.ResponseResult[[]entity.BossData] "成功返回 Boss 列表"
// @Failure 500 {object} response.ResponseResult[response.EmptyData] "服务器内部错误"
// @Router /api/boss-data [get]
func (h *BossHandler) GetBosses(c echo.Context) error {
	ctx := c.Request().Context()

	// 1. 解析查询参数
	var bossName *string
	if name := c.QueryParam("boss_name"); name != "" {
		bossName = &name
	}

	// 2. 分组视图
	if c.QueryParam("grouped") == "true" {
		groups, err := h.service.GetBossesGrouped(ctx, bossName)
		if err != nil {
			return response.EchoError(c, h.respWriter, err)
		}
		return response.EchoOK(c, h.respWriter, groups)
	}

	// 3. 平铺列表
	bosses, err := h.service.GetBosses(ctx, bossName)
	if err != nil {
		return response.EchoError(c, h.respWriter, err)
	}

	return response.EchoOK(c, h.respWriter, bosses)
}

// GetBoss 获取 Boss 详情
// @Summary 获取 Boss 详情
// @Description 根据复合主键 (id, level_index) 获取单个 Boss 等级配置
// @Tags Boss配置
// @Accept json
// @Produce json
// @Param id path int true "Boss ID"
// @Param levelIndex path int true "等级序号"
// @Success 200 {object} response.ResponseResult[entity.BossData] "成功返回 Boss 详情"
// @Failure 404 {object} response.ResponseResult[response.EmptyData] "Boss 不存在"
// @Router /api/boss-data/{id}/{levelIndex} [get]
func (h *BossHandler) GetBoss(c echo.Context) error {
	ctx := c.Request().Context()

	id, levelIndex, err := h.bossKey(c)
	if err != nil {
		return response.EchoBadRequest(c, h.respWriter, "主键必须为整数")
	}

	boss, err := h.service.GetBossByKey(ctx, id, levelIndex)
	if err != nil {
		return response.EchoError(c, h.respWriter, err)
	}

	return response.EchoOK(c, h.respWriter, boss)
}

// CreateBoss 创建 Boss
// @Summary 创建 Boss
// @Description 创建新的 Boss 等级配置；编码列缺省时填充默认值
// @Tags Boss配置
// @Accept json
// @Produce json
// @Param request body dto.CreateBossRequest true "创建 Boss 请求"
// @Success 200 {object} response.ResponseResult[entity.BossData] "成功返回创建的 Boss"
// @Failure 400 {object} response.ResponseResult[response.EmptyData] "请求参数错误"
// @Failure 409 {object} response.ResponseResult[response.EmptyData] "同一 ID 和等级序号的 Boss 已存在"
// @Router /api/boss-data [post]
func (h *BossHandler) CreateBoss(c echo.Context) error {
	ctx := c.Request().Context()

	// 1. 绑定和验证请求参数
	var req dto.CreateBossRequest
	if err := c.Bind(&req); err != nil {
		return response.EchoBadRequest(c, h.respWriter, "参数错误")
	}
	if err := c.Validate(&req); err != nil {
		return response.EchoBadRequest(c, h.respWriter, err.Error())
	}

	// 2. 创建 Boss
	boss, err := h.service.CreateBoss(ctx, &req)
	if err != nil {
		return response.EchoError(c, h.respWriter, err)
	}

	return response.EchoOK(c, h.respWriter, boss)
}

// UpdateBoss 更新 Boss
// @Summary 更新 Boss
// @Description 更新指定复合主键的 Boss 配置，支持部分字段更新
// @Tags Boss配置
// @Accept json
// @Produce json
// @Param id path int true "Boss ID"
// @Param levelIndex path int true "等级序号"
// @Param request body dto.UpdateBossRequest true "更新 Boss 请求"
// @Success 200 {object} response.ResponseResult[entity.BossData] "成功返回更新后的 Boss"
// @Failure 404 {object} response.ResponseResult[response.EmptyData] "Boss 不存在"
// @Router /api/boss-data/{id}/{levelIndex} [put]
func (h *BossHandler) UpdateBoss(c echo.Context) error {
	ctx := c.Request().Context()

	// 1. 获取复合主键
	id, levelIndex, err := h.bossKey(c)
	if err != nil {
		return response.EchoBadRequest(c, h.respWriter, "主键必须为整数")
	}

	// 2. 绑定和验证请求参数
	var req dto.UpdateBossRequest
	if err := c.Bind(&req); err != nil {
		return response.EchoBadRequest(c, h.respWriter, "参数错误")
	}
	if err := c.Validate(&req); err != nil {
		return response.EchoBadRequest(c, h.respWriter, err.Error())
	}

	// 3. 更新 Boss
	boss, err := h.service.UpdateBoss(ctx, id, levelIndex, &req)
	if err != nil {
		return response.EchoError(c, h.respWriter, err)
	}

	return response.EchoOK(c, h.respWriter, boss)
}

// DeleteBoss 删除 Boss
// @Summary 删除 Boss
// @Description 删除指定复合主键的 Boss 等级配置
// @Tags Boss配置
// @Accept json
// @Produce json
// @Param id path int true "Boss ID"
// @Param levelIndex path int true "等级序号"
// @Success 200 {object} response.ResponseResult[response.EmptyData] "删除成功"
// @Failure 404 {object} response.ResponseResult[response.EmptyData] "Boss 不存在"
// @Router /api/boss-data/{id}/{levelIndex} [delete]
func (h *BossHandler) DeleteBoss(c echo.Context) error {
	ctx := c.Request().Context()

	id, levelIndex, err := h.bossKey(c)
	if err != nil {
		return response.EchoBadRequest(c, h.respWriter, "主键必须为整数")
	}

	if err := h.service.DeleteBoss(ctx, id, levelIndex); err != nil {
		return response.EchoError(c, h.respWriter, err)
	}

	return response.EchoOK(c, h.respWriter, response.EmptyData{})
}

func (h *BossHandler) bossKey(c echo.Context) (int, int, error) {
	id, err := pathInt(c, "id")
	if err != nil {
		return 0, 0, err
	}
	levelIndex, err := pathInt(c, "levelIndex")
	if err != nil {
		return 0, 0, err
	}
	return id, levelIndex, nil
}
