package codec

import (
	"encoding/json"
	"fmt"
)

// SkillEntry Boss 技能条目，紧凑数组写法 [skillId, level, cooldownMs]
// 各元素不做单独校验，技能是否存在由编辑界面对照技能目录提示。
type SkillEntry struct {
	SkillID    int
	Level      int
	CooldownMs int
}

// MarshalJSON 编码为 [skillId, level, cooldownMs]
func (s SkillEntry) MarshalJSON() ([]byte, error) {
	return json.Marshal([3]int{s.SkillID, s.Level, s.CooldownMs})
}

// UnmarshalJSON 解码三元素数组
func (s *SkillEntry) UnmarshalJSON(data []byte) error {
	var arr []int
	if err := json.Unmarshal(data, &arr); err != nil {
		return fmt.Errorf("skill 条目格式错误: %w", err)
	}
	if len(arr) != 3 {
		return fmt.Errorf("skill 条目必须是 3 个元素，实际 %d 个", len(arr))
	}
	s.SkillID, s.Level, s.CooldownMs = arr[0], arr[1], arr[2]
	return nil
}

// DecodeSkills 解码 skills 列；损坏输入返回空列表
func DecodeSkills(raw string) []SkillEntry {
	var skills []SkillEntry
	if err := json.Unmarshal([]byte(raw), &skills); err != nil {
		return []SkillEntry{}
	}
	if skills == nil {
		return []SkillEntry{}
	}
	return skills
}

// EncodeSkills 编码 skills 列
func EncodeSkills(skills []SkillEntry) string {
	if skills == nil {
		skills = []SkillEntry{}
	}
	data, err := json.Marshal(skills)
	if err != nil {
		return "[]"
	}
	return string(data)
}
