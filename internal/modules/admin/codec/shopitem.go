package codec

import "encoding/json"

// ShopItem tab_shop.items 列的一项商品
type ShopItem struct {
	Cost     int          `json:"cost"`
	TypeSell int          `json:"type_sell"`
	IsNew    bool         `json:"is_new"`
	TempID   int          `json:"temp_id"`
	ItemSpec int          `json:"item_spec"`
	Options  []ItemOption `json:"options"`
	IsSell   bool         `json:"is_sell"`
}

// DecodeShopItems 解码 items 列；损坏输入返回空列表
func DecodeShopItems(raw string) []ShopItem {
	var items []ShopItem
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		return []ShopItem{}
	}
	if items == nil {
		return []ShopItem{}
	}
	for i := range items {
		if items[i].Options == nil {
			items[i].Options = []ItemOption{}
		}
	}
	return items
}

// EncodeShopItems 编码 items 列
func EncodeShopItems(items []ShopItem) string {
	normalized := make([]ShopItem, len(items))
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
