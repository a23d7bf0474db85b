package codec

import (
	"fmt"

	"github.com/ahwuoc/web-manager-nro-teav2/internal/repository/entity"
)

// 名称补全：把解码后的奖励/商品行与物品目录拼接出展示名称。
// 纯函数，目录以调用方传入的 map 为准，绝不触发 I/O；
// 目录缺失的 ID 使用占位名，不视为错误。

// ItemName 物品展示名，目录缺失时返回 "Item #<id>"
func ItemName(items map[int]entity.ItemTemplate, id int) string {
	if item, ok := items[id]; ok {
		return item.Name
	}
	return fmt.Sprintf("Item #%d", id)
}

// OptionName 属性展示名，目录缺失时返回 "Option #<id>"
func OptionName(options map[int]entity.ItemOptionTemplate, id int) string {
	if opt, ok := options[id]; ok {
		return opt.Name
	}
	return fmt.Sprintf("Option #%d", id)
}

// EnrichedOption 带名称的物品属性
type EnrichedOption struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Param int    `json:"param"`
}

// EnrichedDetailItem 带名称的奖励明细项
type EnrichedDetailItem struct {
	TempID   int              `json:"temp_id"`
	ItemName string           `json:"item_name"`
	Quantity int              `json:"quantity"`
	Options  []EnrichedOption `json:"options"`
	Gold     int              `json:"gold,omitempty"`
	Gem      int              `json:"gem,omitempty"`
}

// EnrichDetail 为奖励明细补全物品与属性名称
func EnrichDetail(items []DetailItem, itemMap map[int]entity.ItemTemplate, optionMap map[int]entity.ItemOptionTemplate) []EnrichedDetailItem {
	result := make([]EnrichedDetailItem, len(items))
	for i, item := range items {
		options := make([]EnrichedOption, len(item.Options))
		for j, opt := range item.Options {
			options[j] = EnrichedOption{
				ID:    opt.ID,
				Name:  OptionName(optionMap, opt.ID),
				Param: opt.Param,
			}
		}
		result[i] = EnrichedDetailItem{
			TempID:   item.TempID,
			ItemName: ItemName(itemMap, item.TempID),
			Quantity: item.Quantity,
			Options:  options,
			Gold:     item.Gold,
			Gem:      item.Gem,
		}
	}
	return result
}

// EnrichedReward 带名称的掉落行
type EnrichedReward struct {
	RewardLine
	DisplayName string `json:"display_name"`
}

// EnrichRewards 为掉落行补全展示名称
// 特殊掉落（type）直接使用类型标签，物品掉落查物品目录。
func EnrichRewards(rewards []RewardLine, itemMap map[int]entity.ItemTemplate) []EnrichedReward {
	result := make([]EnrichedReward, len(rewards))
	for i, r := range rewards {
		name := r.Type
		if r.Type == "" && r.ItemID != nil {
			name = ItemName(itemMap, *r.ItemID)
		}
		result[i] = EnrichedReward{
			RewardLine:  r,
			DisplayName: name,
		}
	}
	return result
}

// EnrichedShopItem 带名称的商品行
type EnrichedShopItem struct {
	ShopItem
	ItemName string `json:"item_name"`
}

// EnrichShopItems 为商品行补全物品名称
func EnrichShopItems(items []ShopItem, itemMap map[int]entity.ItemTemplate) []EnrichedShopItem {
	result := make([]EnrichedShopItem, len(items))
	for i, item := range items {
		result[i] = EnrichedShopItem{
			ShopItem: item,
			ItemName: ItemName(itemMap, item.TempID),
		}
	}
	return result
}
