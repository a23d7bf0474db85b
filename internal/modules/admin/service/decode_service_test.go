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

func TestDecodeService_GiftcodeDetail(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	giftcodes := NewGiftcodeService(db)
	catalog := NewCatalogService(db, nil, time.Minute)
	svc := NewDecodeService(db, catalog)

	created, err := giftcodes.CreateGiftcode(ctx, &dto.CreateGiftcodeRequest{
		Code:      "DECODETEST2026",
		CountLeft: 5,
		Detail:    `[{"temp_id":14,"quantity":2,"options":[{"id":5,"param":10}]},{"temp_id":-1,"quantity":0,"gold":50000}]`,
		Expired:   time.Now().Add(24 * time.Hour),
		Type:      0,
	})
	require.NoError(t, err)
	defer func() {
		if err := giftcodes.DeleteGiftcode(ctx, created.ID); err != nil {
			t.Logf("清理礼品码失败: %v", err)
		}
	}()

	items, err := svc.GetGiftcodeDetail(ctx, created.ID)
	require.NoError(t, err)
	require.Len(t, items, 2)

	assert.Equal(t, 14, items[0].TempID)
	assert.Equal(t, 2, items[0].Quantity)
	assert.NotEmpty(t, items[0].ItemName, "缺目录时也应返回占位名")
	require.Len(t, items[0].Options, 1)
	assert.Equal(t, 5, items[0].Options[0].ID)
	assert.Equal(t, 10, items[0].Options[0].Param)

	assert.Equal(t, 50000, items[1].Gold)
}

func TestDecodeService_GiftcodeDetail_NotFound(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	svc := NewDecodeService(db, NewCatalogService(db, nil, time.Minute))

	_, err := svc.GetGiftcodeDetail(ctx, 99999999)
	require.Error(t, err)
	appErr, ok := err.(*xerrors.AppError)
	require.True(t, ok)
	assert.Equal(t, xerrors.CodeGiftcodeNotFound, appErr.Code)
}

func TestDecodeService_BossView_NotFound(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	svc := NewDecodeService(db, NewCatalogService(db, nil, time.Minute))

	_, err := svc.GetBossView(ctx, 99999999, 0)
	require.Error(t, err)
	appErr, ok := err.(*xerrors.AppError)
	require.True(t, ok)
	assert.Equal(t, xerrors.CodeBossNotFound, appErr.Code)
}
