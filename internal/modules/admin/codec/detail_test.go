package codec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeDetail(t *testing.T) {
	t.Run("完整明细", func(t *testing.T) {
		raw := `[{"temp_id":457,"quantity":5,"options":[{"id":5,"param":10}],"gold":1000,"gem":20}]`
		items := DecodeDetail(raw)
		require.Len(t, items, 1)
		assert.Equal(t, 457, items[0].TempID)
		assert.Equal(t, 5, items[0].Quantity)
		assert.Equal(t, []ItemOption{{ID: 5, Param: 10}}, items[0].Options)
		assert.Equal(t, 1000, items[0].Gold)
		assert.Equal(t, 20, items[0].Gem)
	})

	t.Run("options 缺省归一为空列表", func(t *testing.T) {
		items := DecodeDetail(`[{"temp_id":1,"quantity":1}]`)
		require.Len(t, items, 1)
		assert.NotNil(t, items[0].Options)
		assert.Empty(t, items[0].Options)
	})

	t.Run("损坏输入返回空列表", func(t *testing.T) {
		for _, raw := range []string{"", "not json", "{}", "null"} {
			items := DecodeDetail(raw)
			assert.NotNil(t, items)
			assert.Empty(t, items)
		}
	})
}

func TestEncodeDetail(t *testing.T) {
	t.Run("0 值 gold/gem 省略", func(t *testing.T) {
		encoded := EncodeDetail([]DetailItem{{TempID: 1, Quantity: 2, Options: []ItemOption{}}})
		assert.NotContains(t, encoded, "gold")
		assert.NotContains(t, encoded, "gem")
	})

	t.Run("空列表编码为 []", func(t *testing.T) {
		assert.Equal(t, "[]", EncodeDetail(nil))
		assert.Equal(t, "[]", EncodeDetail([]DetailItem{}))
	})

	t.Run("往返一致", func(t *testing.T) {
		raw := `[{"temp_id":457,"quantity":5,"options":[{"id":5,"param":10},{"id":6,"param":3}],"gold":1000},{"temp_id":12,"quantity":1,"options":[]}]`
		decoded := DecodeDetail(raw)
		again := DecodeDetail(EncodeDetail(decoded))
		assert.Equal(t, decoded, again)
	})
}

func TestShopItems(t *testing.T) {
	t.Run("完整商品行", func(t *testing.T) {
		raw := `[{"cost":5000,"type_sell":1,"is_new":true,"temp_id":78,"item_spec":0,"options":[{"id":5,"param":10}],"is_sell":true}]`
		items := DecodeShopItems(raw)
		require.Len(t, items, 1)
		assert.Equal(t, 5000, items[0].Cost)
		assert.Equal(t, 1, items[0].TypeSell)
		assert.True(t, items[0].IsNew)
		assert.Equal(t, 78, items[0].TempID)
		assert.True(t, items[0].IsSell)
	})

	t.Run("损坏输入返回空列表", func(t *testing.T) {
		items := DecodeShopItems("oops")
		assert.NotNil(t, items)
		assert.Empty(t, items)
	})

	t.Run("往返一致", func(t *testing.T) {
		raw := `[{"cost":5000,"type_sell":1,"is_new":false,"temp_id":78,"item_spec":2,"options":[],"is_sell":true}]`
		decoded := DecodeShopItems(raw)
		again := DecodeShopItems(EncodeShopItems(decoded))
		assert.Equal(t, decoded, again)
	})
}
