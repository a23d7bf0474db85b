package codec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeOutfit(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want []int
	}{
		{
			name: "标准 6 位外观",
			raw:  "[143,144,145,-1,-1,-1]",
			want: []int{143, 144, 145, -1, -1, -1},
		},
		{
			name: "短数组补 -1 到 6 位",
			raw:  "[143,144]",
			want: []int{143, 144, -1, -1, -1, -1},
		},
		{
			name: "超过 6 位原样保留",
			raw:  "[1,2,3,4,5,6,7]",
			want: []int{1, 2, 3, 4, 5, 6, 7},
		},
		{
			name: "损坏输入返回默认外观",
			raw:  "oops",
			want: []int{-1, -1, -1, -1, -1, -1},
		},
		{
			name: "JSON null 返回默认外观",
			raw:  "null",
			want: []int{-1, -1, -1, -1, -1, -1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DecodeOutfit(tt.raw))
		})
	}
}

func TestOutfit_RoundTrip(t *testing.T) {
	// 7 位历史数据往返后不被截断
	raw := "[1,2,3,4,5,6,7]"
	decoded := DecodeOutfit(raw)
	again := DecodeOutfit(EncodeOutfit(decoded))
	assert.Equal(t, decoded, again)

	// 短数组编码时同样补齐
	assert.Equal(t, "[143,144,-1,-1,-1,-1]", EncodeOutfit([]int{143, 144}))
}

func TestSkills(t *testing.T) {
	t.Run("三元组解码", func(t *testing.T) {
		skills := DecodeSkills("[[101,5,3000],[102,1,10000]]")
		require.Len(t, skills, 2)
		assert.Equal(t, SkillEntry{SkillID: 101, Level: 5, CooldownMs: 3000}, skills[0])
		assert.Equal(t, SkillEntry{SkillID: 102, Level: 1, CooldownMs: 10000}, skills[1])
	})

	t.Run("元素数不对返回空列表", func(t *testing.T) {
		assert.Empty(t, DecodeSkills("[[101,5]]"))
	})

	t.Run("往返一致", func(t *testing.T) {
		decoded := DecodeSkills("[[101,5,3000]]")
		assert.Equal(t, decoded, DecodeSkills(EncodeSkills(decoded)))
	})
}

func TestChatLines(t *testing.T) {
	t.Run("标签解析", func(t *testing.T) {
		lines := DecodeChatLines(`["|-1|Ta là Boss","|-2|Cứu tôi với","|7|Lời thoại lạ"]`)
		require.Len(t, lines, 3)
		assert.Equal(t, ChatLine{Tag: ChatTagBoss, Text: "Ta là Boss"}, lines[0])
		assert.True(t, lines[0].IsBoss())
		assert.Equal(t, ChatLine{Tag: ChatTagPlayer, Text: "Cứu tôi với"}, lines[1])
		// 其它历史标签原样保留
		assert.Equal(t, ChatLine{Tag: 7, Text: "Lời thoại lạ"}, lines[2])
	})

	t.Run("不匹配格式整体作为 Boss 台词", func(t *testing.T) {
		lines := DecodeChatLines(`["xin chào"]`)
		require.Len(t, lines, 1)
		assert.Equal(t, ChatLine{Tag: ChatTagBoss, Text: "xin chào"}, lines[0])
	})

	t.Run("空文本保留", func(t *testing.T) {
		lines := DecodeChatLines(`["|-1|"]`)
		require.Len(t, lines, 1)
		assert.Equal(t, ChatLine{Tag: ChatTagBoss, Text: ""}, lines[0])
	})

	t.Run("损坏输入返回空列表", func(t *testing.T) {
		assert.Empty(t, DecodeChatLines("oops"))
	})

	t.Run("往返一致", func(t *testing.T) {
		raw := `["|-1|Ta là Boss","|-2|Cứu tôi","|3|khác"]`
		decoded := DecodeChatLines(raw)
		assert.Equal(t, raw, EncodeChatLines(decoded))
	})
}

func TestIntList(t *testing.T) {
	t.Run("血条列表", func(t *testing.T) {
		assert.Equal(t, []int{1000000, 2000000}, DecodeIntList("[1000000,2000000]"))
	})

	t.Run("损坏输入返回空列表", func(t *testing.T) {
		assert.Equal(t, []int{}, DecodeIntList("oops"))
		assert.Equal(t, []int{}, DecodeIntList("null"))
	})

	t.Run("编码", func(t *testing.T) {
		assert.Equal(t, "[0]", EncodeIntList([]int{0}))
		assert.Equal(t, "[]", EncodeIntList(nil))
	})
}
