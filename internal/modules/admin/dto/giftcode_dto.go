package dto

import "time"

// CreateGiftcodeRequest 创建礼品码请求
// detail 为 DetailItem 列表的 JSON 文本，由编辑端生成。
type CreateGiftcodeRequest struct {
	Code      string    `json:"code" validate:"required,giftcode_format"`
	CountLeft int       `json:"count_left" validate:"gte=0"`
	Detail    string    `json:"detail" validate:"required"`
	Expired   time.Time `json:"expired" validate:"required"`
	Type      int       `json:"type" validate:"gte=0"`
}

// UpdateGiftcodeRequest 更新礼品码请求（部分更新）
type UpdateGiftcodeRequest struct {
	Code      *string    `json:"code,omitempty" validate:"omitempty,giftcode_format"`
	CountLeft *int       `json:"count_left,omitempty" validate:"omitempty,gte=0"`
	Detail    *string    `json:"detail,omitempty"`
	Expired   *time.Time `json:"expired,omitempty"`
	Type      *int       `json:"type,omitempty" validate:"omitempty,gte=0"`
}

// Updates 转换为列名到新值的映射
func (r *UpdateGiftcodeRequest) Updates() map[string]interface{} {
	updates := make(map[string]interface{})
	if r.Code != nil {
		updates["code"] = *r.Code
	}
	if r.CountLeft != nil {
		updates["count_left"] = *r.CountLeft
	}
	if r.Detail != nil {
		updates["detail"] = *r.Detail
	}
	if r.Expired != nil {
		updates["expired"] = *r.Expired
	}
	if r.Type != nil {
		updates["type"] = *r.Type
	}
	return updates
}
