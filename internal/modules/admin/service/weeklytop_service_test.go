package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ahwuoc/web-manager-nro-teav2/internal/modules/admin/dto"
	"github.com/ahwuoc/web-manager-nro-teav2/internal/pkg/xerrors"
)

func TestWeeklyTopService_TypesAndRewards(t *testing.T) {
	db := setupTestDB(t)
	svc := NewWeeklyTopService(db)
	ctx := context.Background()

	// 创建类型
	topType, err := svc.CreateType(ctx, &dto.CreateTopTypeRequest{
		Name:       "Top sát thương test",
		OrderIndex: 99,
		ColumnName: "damage_test",
	})
	require.NoError(t, err)
	defer func() {
		if err := svc.DeleteType(ctx, topType.ID); err != nil {
			t.Logf("Warning: failed to cleanup top type %d: %v", topType.ID, err)
		}
	}()

	// 名次区间倒置被拒绝
	_, err = svc.CreateReward(ctx, &dto.CreateTopRewardRequest{
		TopTypeID: topType.ID,
		RankFrom:  5,
		RankTo:    3,
	})
	require.Error(t, err)

	// 不存在的类型被拒绝
	_, err = svc.CreateReward(ctx, &dto.CreateTopRewardRequest{
		TopTypeID: -99999,
		RankFrom:  1,
		RankTo:    3,
	})
	require.Error(t, err)
	appErr, ok := err.(*xerrors.AppError)
	require.True(t, ok)
	assert.Equal(t, xerrors.CodeTopTypeNotFound, appErr.Code)

	// 创建奖励
	reward, err := svc.CreateReward(ctx, &dto.CreateTopRewardRequest{
		TopTypeID:   topType.ID,
		RankFrom:    1,
		RankTo:      3,
		Details:     stringPtr(`[{"temp_id":457,"quantity":10,"options":[]}]`),
		Description: stringPtr("Top 1-3"),
	})
	require.NoError(t, err)
	defer func() {
		if err := svc.DeleteReward(ctx, reward.ID); err != nil {
			t.Logf("Warning: failed to cleanup top reward %d: %v", reward.ID, err)
		}
	}()

	// 类型详情内嵌奖励
	got, err := svc.GetTypeByID(ctx, topType.ID)
	require.NoError(t, err)
	require.Len(t, got.WeeklyTopRewards, 1)
	assert.Equal(t, 1, got.WeeklyTopRewards[0].RankFrom)

	// 按类型过滤奖励
	rewards, err := svc.GetRewards(ctx, intPtr(topType.ID))
	require.NoError(t, err)
	require.Len(t, rewards, 1)
	assert.Equal(t, reward.ID, rewards[0].ID)

	// 更新奖励
	updated, err := svc.UpdateReward(ctx, reward.ID, &dto.UpdateTopRewardRequest{
		RankTo: intPtr(5),
	})
	require.NoError(t, err)
	assert.Equal(t, 5, updated.RankTo)
}
