package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ahwuoc/web-manager-nro-teav2/internal/modules/admin/dto"
	"github.com/ahwuoc/web-manager-nro-teav2/internal/pkg/xerrors"
)

// cleanupGiftcodes 清理测试数据
func cleanupGiftcodes(t *testing.T, svc *GiftcodeService, codes []string) {
	t.Helper()
	ctx := context.Background()
	list, err := svc.GetGiftcodes(ctx)
	if err != nil {
		t.Logf("Warning: failed to list giftcodes for cleanup: %v", err)
		return
	}
	want := make(map[string]bool, len(codes))
	for _, code := range codes {
		want[code] = true
	}
	for _, gc := range list {
		if want[gc.Code] {
			if err := svc.DeleteGiftcode(ctx, gc.ID); err != nil {
				t.Logf("Warning: failed to cleanup giftcode %s: %v", gc.Code, err)
			}
		}
	}
}

func TestGiftcodeService_CRUD(t *testing.T) {
	db := setupTestDB(t)
	svc := NewGiftcodeService(db)
	ctx := context.Background()

	code := "TESTGC2026"
	cleanupGiftcodes(t, svc, []string{code})
	defer cleanupGiftcodes(t, svc, []string{code})

	// 创建
	created, err := svc.CreateGiftcode(ctx, &dto.CreateGiftcodeRequest{
		Code:      code,
		CountLeft: 100,
		Detail:    `[{"temp_id":457,"quantity":5,"options":[]}]`,
		Expired:   time.Now().Add(24 * time.Hour),
		Type:      0,
	})
	require.NoError(t, err)
	require.NotZero(t, created.ID)
	assert.Equal(t, code, created.Code)
	assert.Equal(t, 100, created.CountLeft)

	// 重复创建返回礼品码已存在
	_, err = svc.CreateGiftcode(ctx, &dto.CreateGiftcodeRequest{
		Code:      code,
		CountLeft: 1,
		Detail:    "[]",
		Expired:   time.Now().Add(time.Hour),
	})
	require.Error(t, err)
	appErr, ok := err.(*xerrors.AppError)
	require.True(t, ok)
	assert.Equal(t, xerrors.CodeGiftcodeExists, appErr.Code)

	// 更新
	updated, err := svc.UpdateGiftcode(ctx, created.ID, &dto.UpdateGiftcodeRequest{
		CountLeft: intPtr(50),
	})
	require.NoError(t, err)
	assert.Equal(t, 50, updated.CountLeft)
	assert.Equal(t, code, updated.Code)

	// 查询
	got, err := svc.GetGiftcodeByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, 50, got.CountLeft)

	// 删除
	require.NoError(t, svc.DeleteGiftcode(ctx, created.ID))

	// 删除后查询返回不存在
	_, err = svc.GetGiftcodeByID(ctx, created.ID)
	require.Error(t, err)
	appErr, ok = err.(*xerrors.AppError)
	require.True(t, ok)
	assert.Equal(t, xerrors.CodeGiftcodeNotFound, appErr.Code)
}

func TestGiftcodeService_NotFound(t *testing.T) {
	db := setupTestDB(t)
	svc := NewGiftcodeService(db)
	ctx := context.Background()

	_, err := svc.GetGiftcodeByID(ctx, -99999)
	require.Error(t, err)
	appErr, ok := err.(*xerrors.AppError)
	require.True(t, ok)
	assert.Equal(t, xerrors.CodeGiftcodeNotFound, appErr.Code)

	err = svc.DeleteGiftcode(ctx, -99999)
	require.Error(t, err)
	appErr, ok = err.(*xerrors.AppError)
	require.True(t, ok)
	assert.Equal(t, xerrors.CodeGiftcodeNotFound, appErr.Code)
}

func TestGiftcodeService_UpdateUnchangedValues(t *testing.T) {
	db := setupTestDB(t)
	svc := NewGiftcodeService(db)
	ctx := context.Background()

	code := "TESTGCNOOP2026"
	cleanupGiftcodes(t, svc, []string{code})
	defer cleanupGiftcodes(t, svc, []string{code})

	created, err := svc.CreateGiftcode(ctx, &dto.CreateGiftcodeRequest{
		Code:      code,
		CountLeft: 50,
		Detail:    `[]`,
		Expired:   time.Now().Add(24 * time.Hour),
		Type:      0,
	})
	require.NoError(t, err)

	// 提交与当前值相同的更新不能被误判为记录不存在
	updated, err := svc.UpdateGiftcode(ctx, created.ID, &dto.UpdateGiftcodeRequest{
		CountLeft: intPtr(50),
	})
	require.NoError(t, err)
	assert.Equal(t, 50, updated.CountLeft)
}
