package dto

// CreateTopTypeRequest 创建周排行榜类型请求
// column_name 为玩家表上用于排名的列。
type CreateTopTypeRequest struct {
	Name       string `json:"name" validate:"required,max=100"`
	OrderIndex int    `json:"order_index" validate:"gte=0"`
	ColumnName string `json:"column_name" validate:"required,max=64"`
}

// UpdateTopTypeRequest 更新周排行榜类型请求（部分更新）
type UpdateTopTypeRequest struct {
	Name       *string `json:"name,omitempty" validate:"omitempty,max=100"`
	OrderIndex *int    `json:"order_index,omitempty" validate:"omitempty,gte=0"`
	ColumnName *string `json:"column_name,omitempty" validate:"omitempty,max=64"`
}

// Updates 转换为列名到新值的映射
func (r *UpdateTopTypeRequest) Updates() map[string]interface{} {
	updates := make(map[string]interface{})
	if r.Name != nil {
		updates["name"] = *r.Name
	}
	if r.OrderIndex != nil {
		updates["order_index"] = *r.OrderIndex
	}
	if r.ColumnName != nil {
		updates["column_name"] = *r.ColumnName
	}
	return updates
}

// CreateTopRewardRequest 创建周排行榜奖励请求
// details 为 DetailItem 列表的 JSON 文本；名次区间在服务层校验 rank_to >= rank_from。
type CreateTopRewardRequest struct {
	TopTypeID   int     `json:"top_type_id" validate:"required,gte=1"`
	RankFrom    int     `json:"rank_from" validate:"required,gte=1"`
	RankTo      int     `json:"rank_to" validate:"required,gte=1"`
	Details     *string `json:"details,omitempty"`
	Description *string `json:"description,omitempty" validate:"omitempty,max=255"`
}

// UpdateTopRewardRequest 更新周排行榜奖励请求（部分更新）
type UpdateTopRewardRequest struct {
	TopTypeID   *int    `json:"top_type_id,omitempty" validate:"omitempty,gte=1"`
	RankFrom    *int    `json:"rank_from,omitempty" validate:"omitempty,gte=1"`
	RankTo      *int    `json:"rank_to,omitempty" validate:"omitempty,gte=1"`
	Details     *string `json:"details,omitempty"`
	Description *string `json:"description,omitempty" validate:"omitempty,max=255"`
}

// Updates 转换为列名到新值的映射
func (r *UpdateTopRewardRequest) Updates() map[string]interface{} {
	updates := make(map[string]interface{})
	if r.TopTypeID != nil {
		updates["top_type_id"] = *r.TopTypeID
	}
	if r.RankFrom != nil {
		updates["rank_from"] = *r.RankFrom
	}
	if r.RankTo != nil {
		updates["rank_to"] = *r.RankTo
	}
	if r.Details != nil {
		updates["details"] = *r.Details
	}
	if r.Description != nil {
		updates["description"] = *r.Description
	}
	return updates
}
