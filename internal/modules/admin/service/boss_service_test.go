package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ahwuoc/web-manager-nro-teav2/internal/modules/admin/dto"
	"github.com/ahwuoc/web-manager-nro-teav2/internal/pkg/xerrors"
)

const testBossID = 987654

// cleanupBoss 清理测试数据
func cleanupBoss(t *testing.T, svc *BossService, id int) {
	t.Helper()
	ctx := context.Background()
	bosses, err := svc.GetBosses(ctx, nil)
	if err != nil {
		t.Logf("Warning: failed to list bosses for cleanup: %v", err)
		return
	}
	for _, boss := range bosses {
		if boss.ID == id {
			if err := svc.DeleteBoss(ctx, boss.ID, boss.LevelIndex); err != nil {
				t.Logf("Warning: failed to cleanup boss %d:%d: %v", boss.ID, boss.LevelIndex, err)
			}
		}
	}
}

func TestBossService_CRUD(t *testing.T) {
	db := setupTestDB(t)
	svc := NewBossService(db)
	ctx := context.Background()

	cleanupBoss(t, svc, testBossID)
	defer cleanupBoss(t, svc, testBossID)

	// 创建时编码列填充默认值
	created, err := svc.CreateBoss(ctx, &dto.CreateBossRequest{
		ID:         testBossID,
		LevelIndex: 0,
		BossName:   "Test Boss",
		Dame:       1000000,
	})
	require.NoError(t, err)
	assert.Equal(t, "[0]", created.HP)
	assert.Equal(t, "[-1,-1,-1,-1,-1,-1]", created.Outfit)
	assert.Equal(t, "[]", created.Rewards)
	assert.True(t, created.IsZone01SpawnDisabled)
	assert.True(t, created.AutoSpawn)

	// 复合主键冲突
	_, err = svc.CreateBoss(ctx, &dto.CreateBossRequest{
		ID:         testBossID,
		LevelIndex: 0,
		BossName:   "Dup Boss",
	})
	require.Error(t, err)
	appErr, ok := err.(*xerrors.AppError)
	require.True(t, ok)
	assert.Equal(t, xerrors.CodeBossExists, appErr.Code)

	// 同一 ID 的第二个等级可以创建
	_, err = svc.CreateBoss(ctx, &dto.CreateBossRequest{
		ID:         testBossID,
		LevelIndex: 1,
		BossName:   "Test Boss",
		Dame:       2000000,
	})
	require.NoError(t, err)

	// 分组列表：两个等级归到同一组
	groups, err := svc.GetBossesGrouped(ctx, stringPtr("Test Boss"))
	require.NoError(t, err)
	var found bool
	for _, g := range groups {
		if g.ID == testBossID {
			found = true
			assert.Len(t, g.Levels, 2)
		}
	}
	assert.True(t, found)

	// 部分更新
	updated, err := svc.UpdateBoss(ctx, testBossID, 0, &dto.UpdateBossRequest{
		Rewards: stringPtr(`[{"itemId":14,"quantity":[1,1],"chance":100}]`),
	})
	require.NoError(t, err)
	assert.Contains(t, updated.Rewards, `"itemId":14`)
	assert.Equal(t, "Test Boss", updated.BossName)

	// 删除
	require.NoError(t, svc.DeleteBoss(ctx, testBossID, 0))
	require.NoError(t, svc.DeleteBoss(ctx, testBossID, 1))

	_, err = svc.GetBossByKey(ctx, testBossID, 0)
	require.Error(t, err)
	appErr, ok = err.(*xerrors.AppError)
	require.True(t, ok)
	assert.Equal(t, xerrors.CodeBossNotFound, appErr.Code)
}
