package codec

import "encoding/json"

// OutfitSlots 外观的基本槽位数：[head, body, leg, weapon, slot5, slot6]
const OutfitSlots = 6

// DecodeOutfit 解码 outfit 列
// 短数组补 -1 到 6 位；超过 6 位的历史数据原样保留（只补齐，不截断）。
// 损坏输入返回全 -1 的默认外观。
func DecodeOutfit(raw string) []int {
	var outfit []int
	if err := json.Unmarshal([]byte(raw), &outfit); err != nil {
		return defaultOutfit()
	}
	if outfit == nil {
		return defaultOutfit()
	}
	for len(outfit) < OutfitSlots {
		outfit = append(outfit, -1)
	}
	return outfit
}

// EncodeOutfit 编码 outfit 列，编码前同样补齐到 6 位
func EncodeOutfit(outfit []int) string {
	normalized := make([]int, len(outfit))
	copy(normalized, outfit)
	for len(normalized) < OutfitSlots {
		normalized = append(normalized, -1)
	}

	data, err := json.Marshal(normalized)
	if err != nil {
		return "[-1,-1,-1,-1,-1,-1]"
	}
	return string(data)
}

func defaultOutfit() []int {
	return []int{-1, -1, -1, -1, -1, -1}
}
