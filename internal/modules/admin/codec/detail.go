package codec

import "encoding/json"

// ItemOption 物品属性 {id, param}
type ItemOption struct {
	ID    int `json:"id"`
	Param int `json:"param"`
}

// DetailItem 奖励明细的一项
// 礼品码、里程碑、礼包、周排行榜奖励共用这一方言。
// gold/gem 为附加货币奖励，0 值省略。
type DetailItem struct {
	TempID   int          `json:"temp_id"`
	Quantity int          `json:"quantity"`
	Options  []ItemOption `json:"options"`
	Gold     int          `json:"gold,omitempty"`
	Gem      int          `json:"gem,omitempty"`
}

// DecodeDetail 解码 detail 列；损坏输入返回空列表
func DecodeDetail(raw string) []DetailItem {
	var items []DetailItem
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		return []DetailItem{}
	}
	if items == nil {
		return []DetailItem{}
	}
	// options 统一为非 nil，前端遍历时不必判空
	for i := range items {
		if items[i].Options == nil {
			items[i].Options = []ItemOption{}
		}
	}
	return items
}

// EncodeDetail 编码 detail 列
func EncodeDetail(items []DetailItem) string {
	normalized := make([]DetailItem, len(items))
	for i, item := range items {
		if item.Options == nil {
			item.Options = []ItemOption{}
		}
		normalized[i] = item
	}

	data, err := json.Marshal(normalized)
	if err != nil {
		return "[]"
	}
	return string(data)
}
