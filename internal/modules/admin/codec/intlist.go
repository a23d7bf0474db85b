package codec

import "encoding/json"

// DecodeIntList 解码纯整数数组列（hp 血条、map_join）；损坏输入返回空列表
func DecodeIntList(raw string) []int {
	var list []int
	if err := json.Unmarshal([]byte(raw), &list); err != nil {
		return []int{}
	}
	if list == nil {
		return []int{}
	}
	return list
}

// EncodeIntList 编码纯整数数组列
func EncodeIntList(list []int) string {
	if list == nil {
		return "[]"
	}
	data, err := json.Marshal(list)
	if err != nil {
		return "[]"
	}
	return string(data)
}
