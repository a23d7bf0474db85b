package dto

// CreateMocNapRequest 创建充值里程碑请求
type CreateMocNapRequest struct {
	Info           string  `json:"info" validate:"required,max=255"`
	RequiredAmount int     `json:"required_amount" validate:"gte=0"`
	Detail         *string `json:"detail,omitempty"`
}

// CreateMocOnlineRequest 创建在线时长里程碑请求
type CreateMocOnlineRequest struct {
	Info           string  `json:"info" validate:"required,max=255"`
	RequiredOnline int     `json:"required_online" validate:"gte=0"`
	Detail         *string `json:"detail,omitempty"`
}

// CreateMocTieuTienRequest 创建消费里程碑请求
type CreateMocTieuTienRequest struct {
	Info          string  `json:"info" validate:"required,max=255"`
	RequiredSpend int     `json:"required_spend" validate:"gte=0"`
	Detail        *string `json:"detail,omitempty"`
}

// UpdateMilestoneRequest 更新里程碑请求（三类里程碑共用，部分更新）
// required 列按里程碑类别映射到各自的列名。
type UpdateMilestoneRequest struct {
	Info     *string `json:"info,omitempty" validate:"omitempty,max=255"`
	Required *int    `json:"required,omitempty" validate:"omitempty,gte=0"`
	Detail   *string `json:"detail,omitempty"`
}

// Updates 转换为列名到新值的映射；requiredColumn 为该里程碑的阈值列名
func (r *UpdateMilestoneRequest) Updates(requiredColumn string) map[string]interface{} {
	updates := make(map[string]interface{})
	if r.Info != nil {
		updates["info"] = *r.Info
	}
	if r.Required != nil {
		updates[requiredColumn] = *r.Required
	}
	if r.Detail != nil {
		updates["detail"] = *r.Detail
	}
	return updates
}

// UpdateGoiQuaRequest 更新礼包请求（部分更新）
type UpdateGoiQuaRequest struct {
	Info           *string `json:"info,omitempty" validate:"omitempty,max=255"`
	RequiredAmount *int    `json:"required_amount,omitempty" validate:"omitempty,gte=0"`
	Detail         *string `json:"detail,omitempty"`
}

// Updates 转换为列名到新值的映射
func (r *UpdateGoiQuaRequest) Updates() map[string]interface{} {
	updates := make(map[string]interface{})
	if r.Info != nil {
		updates["info"] = *r.Info
	}
	if r.RequiredAmount != nil {
		updates["required_amount"] = *r.RequiredAmount
	}
	if r.Detail != nil {
		updates["detail"] = *r.Detail
	}
	return updates
}
