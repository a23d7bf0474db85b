package codec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ahwuoc/web-manager-nro-teav2/internal/repository/entity"
)

func testItemMap() map[int]entity.ItemTemplate {
	return map[int]entity.ItemTemplate{
		457: {ID: 457, Name: "Ngọc Rồng 1 sao"},
		12:  {ID: 12, Name: "Áo vải thô"},
	}
}

func testOptionMap() map[int]entity.ItemOptionTemplate {
	return map[int]entity.ItemOptionTemplate{
		5: {ID: 5, Name: "Tăng HP"},
	}
}

func TestEnrichDetail(t *testing.T) {
	items := []DetailItem{
		{TempID: 457, Quantity: 5, Options: []ItemOption{{ID: 5, Param: 10}, {ID: 99, Param: 3}}},
		{TempID: 1000, Quantity: 1, Options: []ItemOption{}},
	}

	enriched := EnrichDetail(items, testItemMap(), testOptionMap())
	require.Len(t, enriched, 2)

	assert.Equal(t, "Ngọc Rồng 1 sao", enriched[0].ItemName)
	assert.Equal(t, "Tăng HP", enriched[0].Options[0].Name)
	// 目录缺失的 ID 使用占位名
	assert.Equal(t, "Option #99", enriched[0].Options[1].Name)
	assert.Equal(t, "Item #1000", enriched[1].ItemName)
}

func TestEnrichRewards(t *testing.T) {
	rewards := []RewardLine{
		{ItemID: intPtr(457), Quantity: RewardQuantity{Min: 1, Max: 1}, Chance: 100},
		{Type: PayoutGold, Quantity: RewardQuantity{Min: 1000, Max: 2000}, Chance: 100},
		{ItemID: intPtr(888), Quantity: RewardQuantity{Min: 1, Max: 1}, Chance: 50},
	}

	enriched := EnrichRewards(rewards, testItemMap())
	require.Len(t, enriched, 3)
	assert.Equal(t, "Ngọc Rồng 1 sao", enriched[0].DisplayName)
	assert.Equal(t, "GOLD", enriched[1].DisplayName)
	assert.Equal(t, "Item #888", enriched[2].DisplayName)
}

func TestEnrichShopItems(t *testing.T) {
	items := []ShopItem{
		{TempID: 12, Cost: 500, IsSell: true, Options: []ItemOption{}},
		{TempID: 777, Cost: 100, Options: []ItemOption{}},
	}

	enriched := EnrichShopItems(items, testItemMap())
	require.Len(t, enriched, 2)
	assert.Equal(t, "Áo vải thô", enriched[0].ItemName)
	assert.Equal(t, "Item #777", enriched[1].ItemName)
}
