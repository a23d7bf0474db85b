package codec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeRewards_QuantityForms(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		wantMin int
		wantMax int
	}{
		{
			name:    "标准区间写法 [min,max]",
			raw:     `[{"itemId":14,"quantity":[1,5],"chance":100}]`,
			wantMin: 1,
			wantMax: 5,
		},
		{
			name:    "裸整数写法归一为 [n,n]",
			raw:     `[{"itemId":14,"quantity":3,"chance":100}]`,
			wantMin: 3,
			wantMax: 3,
		},
		{
			name:    "单元素数组归一为 [n,n]",
			raw:     `[{"itemId":14,"quantity":[7],"chance":100}]`,
			wantMin: 7,
			wantMax: 7,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rewards := DecodeRewards(tt.raw)
			require.Len(t, rewards, 1)
			assert.Equal(t, tt.wantMin, rewards[0].Quantity.Min)
			assert.Equal(t, tt.wantMax, rewards[0].Quantity.Max)
		})
	}
}

func TestDecodeRewards_ItemIDAndType(t *testing.T) {
	t.Run("物品掉落行", func(t *testing.T) {
		rewards := DecodeRewards(`[{"itemId":457,"quantity":[1,1],"chance":50}]`)
		require.Len(t, rewards, 1)
		require.NotNil(t, rewards[0].ItemID)
		assert.Equal(t, 457, *rewards[0].ItemID)
		assert.Empty(t, rewards[0].Type)
		assert.Equal(t, 50, rewards[0].Chance)
	})

	t.Run("特殊掉落行", func(t *testing.T) {
		rewards := DecodeRewards(`[{"type":"GOLD","quantity":[1000,5000],"chance":100}]`)
		require.Len(t, rewards, 1)
		assert.Nil(t, rewards[0].ItemID)
		assert.Equal(t, PayoutGold, rewards[0].Type)
	})
}

func TestRewards_LoopDefault(t *testing.T) {
	t.Run("缺省 loop 视为 [1,1]", func(t *testing.T) {
		rewards := DecodeRewards(`[{"itemId":1,"quantity":[1,1],"chance":100}]`)
		require.Len(t, rewards, 1)
		min, max := rewards[0].LoopRange()
		assert.Equal(t, 1, min)
		assert.Equal(t, 1, max)
	})

	t.Run("编码时省略默认 loop [1,1]", func(t *testing.T) {
		encoded := EncodeRewards([]RewardLine{{
			ItemID:   intPtr(1),
			Quantity: RewardQuantity{Min: 1, Max: 1},
			Chance:   100,
			Loop:     &RewardLoop{Min: 1, Max: 1},
		}})
		assert.NotContains(t, encoded, "loop")
	})

	t.Run("非默认 loop 保留", func(t *testing.T) {
		encoded := EncodeRewards([]RewardLine{{
			ItemID:   intPtr(1),
			Quantity: RewardQuantity{Min: 1, Max: 1},
			Chance:   100,
			Loop:     &RewardLoop{Min: 2, Max: 5},
		}})
		assert.Contains(t, encoded, `"loop":[2,5]`)
	})
}

func TestRewards_PlayerOnlyTriState(t *testing.T) {
	t.Run("缺省时可见且不补写字段", func(t *testing.T) {
		rewards := DecodeRewards(`[{"itemId":1,"quantity":[1,1],"chance":100}]`)
		require.Len(t, rewards, 1)
		assert.Nil(t, rewards[0].PlayerOnly)
		assert.True(t, rewards[0].Visible())

		encoded := EncodeRewards(rewards)
		assert.NotContains(t, encoded, "playerOnly")
	})

	t.Run("显式 false 原样保留", func(t *testing.T) {
		raw := `[{"itemId":1,"quantity":[1,1],"chance":100,"playerOnly":false}]`
		rewards := DecodeRewards(raw)
		require.Len(t, rewards, 1)
		require.NotNil(t, rewards[0].PlayerOnly)
		assert.False(t, *rewards[0].PlayerOnly)
		assert.True(t, rewards[0].Visible())

		encoded := EncodeRewards(rewards)
		assert.Contains(t, encoded, `"playerOnly":false`)
	})

	t.Run("显式 true 不对公众可见", func(t *testing.T) {
		rewards := DecodeRewards(`[{"itemId":1,"quantity":[1,1],"chance":100,"playerOnly":true}]`)
		require.Len(t, rewards, 1)
		assert.False(t, rewards[0].Visible())
	})
}

func TestRewards_ItemOptionRows(t *testing.T) {
	t.Run("两元素与三元素行", func(t *testing.T) {
		raw := `[{"itemId":1,"quantity":[1,1],"chance":100,"itemOptions":[[5,10],[6,1,20]]}]`
		rewards := DecodeRewards(raw)
		require.Len(t, rewards, 1)
		require.Len(t, rewards[0].ItemOptions, 2)

		assert.Equal(t, ItemOptionRange{ID: 5, ParamMin: 10, ParamMax: 10}, rewards[0].ItemOptions[0])
		assert.Equal(t, ItemOptionRange{ID: 6, ParamMin: 1, ParamMax: 20}, rewards[0].ItemOptions[1])
	})

	t.Run("min==max 时编码回两元素写法", func(t *testing.T) {
		encoded := EncodeRewards([]RewardLine{{
			ItemID:      intPtr(1),
			Quantity:    RewardQuantity{Min: 1, Max: 1},
			Chance:      100,
			ItemOptions: []ItemOptionRange{{ID: 5, ParamMin: 10, ParamMax: 10}},
		}})
		assert.Contains(t, encoded, `"itemOptions":[[5,10]]`)
	})
}

func TestRewards_Condition(t *testing.T) {
	raw := `[{"itemId":1,"quantity":[1,1],"chance":100,"condition":"TOP_DAMAGE"}]`
	rewards := DecodeRewards(raw)
	require.Len(t, rewards, 1)
	assert.Equal(t, ConditionTopDamage, rewards[0].Condition)
}

func TestRewards_RoundTrip(t *testing.T) {
	raw := `[{"quantity":[1,5],"chance":80,"itemId":457,"loop":[2,3],"playerOnly":false,"condition":"TASK_31","itemOptions":[[5,10],[6,1,20]]},{"quantity":[1000,2000],"chance":100,"type":"GOLD"}]`

	decoded := DecodeRewards(raw)
	encoded := EncodeRewards(decoded)
	again := DecodeRewards(encoded)

	assert.Equal(t, decoded, again)
}

func TestDecodeRewards_Malformed(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{name: "非 JSON 文本", raw: "not json"},
		{name: "空字符串", raw: ""},
		{name: "JSON 对象而非数组", raw: `{"itemId":1}`},
		{name: "quantity 类型错误", raw: `[{"itemId":1,"quantity":"abc","chance":100}]`},
		{name: "itemOptions 行元素不足", raw: `[{"itemId":1,"quantity":[1,1],"chance":100,"itemOptions":[[5]]}]`},
		{name: "JSON null", raw: "null"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rewards := DecodeRewards(tt.raw)
			assert.NotNil(t, rewards)
			assert.Empty(t, rewards)
		})
	}
}

func intPtr(n int) *int {
	return &n
}

func TestEncodeRewards_TypeClearsItemID(t *testing.T) {
	// 从 itemId 掉落改成特殊掉落后，itemId 必须被丢弃
	rewards := DecodeRewards(`[{"itemId":457,"quantity":[1,1],"chance":100}]`)
	require.Len(t, rewards, 1)
	rewards[0].Type = PayoutGold

	encoded := EncodeRewards(rewards)
	assert.NotContains(t, encoded, "itemId")
	assert.Contains(t, encoded, `"type":"GOLD"`)

	decoded := DecodeRewards(encoded)
	require.Len(t, decoded, 1)
	assert.Nil(t, decoded[0].ItemID)
	assert.Equal(t, PayoutGold, decoded[0].Type)
}
