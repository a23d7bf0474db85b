package dto

// CreateTabShopRequest 创建商店 Tab 请求
// items 为 ShopItem 列表的 JSON 文本。
type CreateTabShopRequest struct {
	ShopID   int     `json:"shop_id" validate:"required,gte=1"`
	TabName  string  `json:"tab_name" validate:"required,max=100"`
	TabIndex int     `json:"tab_index" validate:"gte=0"`
	Items    *string `json:"items,omitempty"`
}

// UpdateTabShopRequest 更新商店 Tab 请求（部分更新）
type UpdateTabShopRequest struct {
	ShopID   *int    `json:"shop_id,omitempty" validate:"omitempty,gte=1"`
	TabName  *string `json:"tab_name,omitempty" validate:"omitempty,max=100"`
	TabIndex *int    `json:"tab_index,omitempty" validate:"omitempty,gte=0"`
	Items    *string `json:"items,omitempty"`
}

// Updates 转换为列名到新值的映射
func (r *UpdateTabShopRequest) Updates() map[string]interface{} {
	updates := make(map[string]interface{})
	if r.ShopID != nil {
		updates["shop_id"] = *r.ShopID
	}
	if r.TabName != nil {
		updates["tab_name"] = *r.TabName
	}
	if r.TabIndex != nil {
		updates["tab_index"] = *r.TabIndex
	}
	if r.Items != nil {
		updates["items"] = *r.Items
	}
	return updates
}
