// Package codec 实现游戏文本列中各种 JSON 方言的编解码。
//
// 游戏数据库把奖励、商品、外观等结构化数据存成文本列里的 JSON，
// 各列的方言略有差异（裸整数简写、默认值省略、定长数组补齐等）。
// 本包的解码函数在输入损坏时一律返回空结构，绝不向调用方返回错误：
// 管理后台必须能打开任何历史脏数据。范围类校验放在 DTO 的 validate
// 标签上，编解码层不做校验。
package codec

import (
	"encoding/json"
	"fmt"
)

// 特殊掉落类型（非物品奖励）
const (
	PayoutGold       = "GOLD"
	PayoutExp        = "EXP"
	PayoutRuby       = "RUBY"
	PayoutDoThanLinh = "DO_THAN_LINH"
	PayoutDotLien    = "DOT_LIEN"
)

// 掉落条件标签
const (
	ConditionTask31    = "TASK_31"
	ConditionTask32    = "TASK_32"
	ConditionTask33    = "TASK_33"
	ConditionTopDamage = "TOP_DAMAGE"
)

// RewardQuantity 数量区间 [min,max]
// 历史数据中存在裸整数写法 n，解码时归一为 [n,n]。
type RewardQuantity struct {
	Min int
	Max int
}

// MarshalJSON 始终编码为 [min,max]
func (q RewardQuantity) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]int{q.Min, q.Max})
}

// UnmarshalJSON 接受 [min,max]、[n] 和裸整数 n 三种写法
func (q *RewardQuantity) UnmarshalJSON(data []byte) error {
	var arr []int
	if err := json.Unmarshal(data, &arr); err == nil {
		switch len(arr) {
		case 0:
			return fmt.Errorf("quantity 不能为空数组")
		case 1:
			q.Min, q.Max = arr[0], arr[0]
		default:
			q.Min, q.Max = arr[0], arr[1]
		}
		return nil
	}

	var n int
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("quantity 格式错误: %w", err)
	}
	q.Min, q.Max = n, n
	return nil
}

// RewardLoop 掉落轮次区间 [min,max]，默认 [1,1]（编码时省略）
type RewardLoop struct {
	Min int
	Max int
}

// MarshalJSON 编码为 [min,max]
func (l RewardLoop) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]int{l.Min, l.Max})
}

// UnmarshalJSON 接受 [min,max] 和 [n] 写法
func (l *RewardLoop) UnmarshalJSON(data []byte) error {
	var arr []int
	if err := json.Unmarshal(data, &arr); err != nil {
		return fmt.Errorf("loop 格式错误: %w", err)
	}
	switch len(arr) {
	case 0:
		return fmt.Errorf("loop 不能为空数组")
	case 1:
		l.Min, l.Max = arr[0], arr[0]
	default:
		l.Min, l.Max = arr[0], arr[1]
	}
	return nil
}

// IsDefault 是否为默认轮次 [1,1]
func (l RewardLoop) IsDefault() bool {
	return l.Min == 1 && l.Max == 1
}

// ItemOptionRange 物品属性区间
// 参数固定时编码为 [id,param]，区间时编码为 [id,paramMin,paramMax]。
type ItemOptionRange struct {
	ID       int
	ParamMin int
	ParamMax int
}

// MarshalJSON 两元素/三元素的紧凑数组写法
func (o ItemOptionRange) MarshalJSON() ([]byte, error) {
	if o.ParamMin == o.ParamMax {
		return json.Marshal([2]int{o.ID, o.ParamMin})
	}
	return json.Marshal([3]int{o.ID, o.ParamMin, o.ParamMax})
}

// UnmarshalJSON 接受 [id,param] 和 [id,min,max] 两种写法
func (o *ItemOptionRange) UnmarshalJSON(data []byte) error {
	var arr []int
	if err := json.Unmarshal(data, &arr); err != nil {
		return fmt.Errorf("itemOptions 行格式错误: %w", err)
	}
	switch len(arr) {
	case 2:
		o.ID, o.ParamMin, o.ParamMax = arr[0], arr[1], arr[1]
	case 3:
		o.ID, o.ParamMin, o.ParamMax = arr[0], arr[1], arr[2]
	default:
		return fmt.Errorf("itemOptions 行必须是 2 或 3 个元素，实际 %d 个", len(arr))
	}
	return nil
}

// RewardLine Boss 掉落配置的一行
// itemId 与 type 互斥：普通物品掉落用 itemId，金币/经验等特殊掉落用 type。
// playerOnly 三态保留原文：历史数据只写 false（对公众可见的开关），
// 缺省同样表示可见，不在编解码层归一。
type RewardLine struct {
	ItemID      *int              `json:"itemId,omitempty"`
	Type        string            `json:"type,omitempty"`
	Quantity    RewardQuantity    `json:"quantity"`
	Chance      int               `json:"chance"`
	Loop        *RewardLoop       `json:"loop,omitempty"`
	PlayerOnly  *bool             `json:"playerOnly,omitempty"`
	Condition   string            `json:"condition,omitempty"`
	ItemOptions []ItemOptionRange `json:"itemOptions,omitempty"`
}

// LoopRange 返回轮次区间，缺省为 (1,1)
func (r RewardLine) LoopRange() (min, max int) {
	if r.Loop == nil {
		return 1, 1
	}
	return r.Loop.Min, r.Loop.Max
}

// Visible 是否对公众可见（playerOnly 缺省或为 false 时可见）
func (r RewardLine) Visible() bool {
	return r.PlayerOnly == nil || !*r.PlayerOnly
}

// DecodeRewards 解码 rewards 列；损坏输入返回空列表
func DecodeRewards(raw string) []RewardLine {
	var rewards []RewardLine
	if err := json.Unmarshal([]byte(raw), &rewards); err != nil {
		return []RewardLine{}
	}
	if rewards == nil {
		return []RewardLine{}
	}
	return rewards
}

// EncodeRewards 编码 rewards 列；默认轮次 [1,1] 省略
// itemId 与 type 互斥，两者都有值时以 type 为准（与名称补全的优先级一致），
// 绝不同时落库。
func EncodeRewards(rewards []RewardLine) string {
	normalized := make([]RewardLine, len(rewards))
	for i, r := range rewards {
		if r.Loop != nil && r.Loop.IsDefault() {
			r.Loop = nil
		}
		if r.Type != "" {
			r.ItemID = nil
		}
		normalized[i] = r
	}

	data, err := json.Marshal(normalized)
	if err != nil {
		return "[]"
	}
	return string(data)
}
