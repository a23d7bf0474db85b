package codec

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strconv"
)

// 聊天行说话者标签
const (
	ChatTagBoss   = -1 // Boss 说
	ChatTagPlayer = -2 // 玩家说
)

// 聊天行格式 "|<tag>|<text>"
var chatLineRe = regexp.MustCompile(`^\|(-?\d+)\|(.*)$`)

// ChatLine Boss 台词（text_start/text_mid/text_end 列）的一行
// 标签 -1 为 Boss 说、-2 为玩家说，其它历史标签原样保留。
type ChatLine struct {
	Tag  int    `json:"tag"`
	Text string `json:"text"`
}

// IsBoss 是否为 Boss 台词
func (c ChatLine) IsBoss() bool {
	return c.Tag == ChatTagBoss
}

// DecodeChatLines 解码台词列
// 不匹配 "|tag|text" 格式的字符串整体作为 Boss 台词处理。
// 损坏输入返回空列表。
func DecodeChatLines(raw string) []ChatLine {
	var lines []string
	if err := json.Unmarshal([]byte(raw), &lines); err != nil {
		return []ChatLine{}
	}

	result := make([]ChatLine, 0, len(lines))
	for _, line := range lines {
		m := chatLineRe.FindStringSubmatch(line)
		if m == nil {
			result = append(result, ChatLine{Tag: ChatTagBoss, Text: line})
			continue
		}
		tag, err := strconv.Atoi(m[1])
		if err != nil {
			result = append(result, ChatLine{Tag: ChatTagBoss, Text: line})
			continue
		}
		result = append(result, ChatLine{Tag: tag, Text: m[2]})
	}
	return result
}

// EncodeChatLines 编码台词列
func EncodeChatLines(lines []ChatLine) string {
	formatted := make([]string, len(lines))
	for i, line := range lines {
		formatted[i] = fmt.Sprintf("|%d|%s", line.Tag, line.Text)
	}

	data, err := json.Marshal(formatted)
	if err != nil {
		return "[]"
	}
	return string(data)
}
