package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ahwuoc/web-manager-nro-teav2/internal/modules/admin/dto"
	"github.com/ahwuoc/web-manager-nro-teav2/internal/pkg/xerrors"
	"github.com/ahwuoc/web-manager-nro-teav2/internal/repository/entity"
)

func TestPlayerService_CashClamp(t *testing.T) {
	db := setupTestDB(t)
	svc := NewPlayerService(db)
	ctx := context.Background()

	// 准备测试账号
	acc := &entity.Account{Username: "test_cash_clamp", Cash: 10, Danap: 0}
	require.NoError(t, db.WithContext(ctx).Create(acc).Error)
	defer db.WithContext(ctx).Delete(&entity.Account{}, acc.ID)

	// 扣减超过余额时钳制为 0
	updated, err := svc.AdjustCash(ctx, acc.ID, &dto.AdjustCashRequest{Amount: -100})
	require.NoError(t, err)
	assert.Equal(t, 0, updated.Cash)

	// 增加并同步累加充值总额
	updated, err = svc.AdjustCash(ctx, acc.ID, &dto.AdjustCashRequest{Amount: 500, AddToDanap: true})
	require.NoError(t, err)
	assert.Equal(t, 500, updated.Cash)
	assert.Equal(t, 500, updated.Danap)

	// 扣减不影响充值总额
	updated, err = svc.AdjustCash(ctx, acc.ID, &dto.AdjustCashRequest{Amount: -200})
	require.NoError(t, err)
	assert.Equal(t, 300, updated.Cash)
	assert.Equal(t, 500, updated.Danap)
}

func TestPlayerService_VangClamp(t *testing.T) {
	db := setupTestDB(t)
	svc := NewPlayerService(db)
	ctx := context.Background()

	acc := &entity.Account{Username: "test_vang_clamp", Vang: 1000}
	require.NoError(t, db.WithContext(ctx).Create(acc).Error)
	defer db.WithContext(ctx).Delete(&entity.Account{}, acc.ID)

	updated, err := svc.AdjustVang(ctx, acc.ID, &dto.AdjustVangRequest{Amount: -5000})
	require.NoError(t, err)
	assert.Equal(t, int64(0), updated.Vang)

	updated, err = svc.AdjustVang(ctx, acc.ID, &dto.AdjustVangRequest{Amount: 2000000000})
	require.NoError(t, err)
	assert.Equal(t, int64(2000000000), updated.Vang)
}

func TestPlayerService_Ban(t *testing.T) {
	db := setupTestDB(t)
	svc := NewPlayerService(db)
	ctx := context.Background()

	acc := &entity.Account{Username: "test_ban_toggle"}
	require.NoError(t, db.WithContext(ctx).Create(acc).Error)
	defer db.WithContext(ctx).Delete(&entity.Account{}, acc.ID)

	updated, err := svc.SetBan(ctx, acc.ID, &dto.BanAccountRequest{Ban: boolPtr(true)})
	require.NoError(t, err)
	assert.True(t, updated.Ban)

	updated, err = svc.SetBan(ctx, acc.ID, &dto.BanAccountRequest{Ban: boolPtr(false)})
	require.NoError(t, err)
	assert.False(t, updated.Ban)
}

func TestPlayerService_NotFound(t *testing.T) {
	db := setupTestDB(t)
	svc := NewPlayerService(db)
	ctx := context.Background()

	_, err := svc.GetAccountByID(ctx, -99999)
	require.Error(t, err)
	appErr, ok := err.(*xerrors.AppError)
	require.True(t, ok)
	assert.Equal(t, xerrors.CodeAccountNotFound, appErr.Code)
}

func TestPlayerService_SetBanSameState(t *testing.T) {
	db := setupTestDB(t)
	svc := NewPlayerService(db)
	ctx := context.Background()

	acc := &entity.Account{Username: "test_ban_repeat", Ban: false}
	require.NoError(t, db.WithContext(ctx).Create(acc).Error)
	defer db.WithContext(ctx).Delete(&entity.Account{}, acc.ID)

	// 重复提交当前状态不能被误判为账号不存在
	updated, err := svc.SetBan(ctx, acc.ID, &dto.BanAccountRequest{Ban: boolPtr(false)})
	require.NoError(t, err)
	assert.False(t, updated.Ban)

	updated, err = svc.SetBan(ctx, acc.ID, &dto.BanAccountRequest{Ban: boolPtr(true)})
	require.NoError(t, err)
	assert.True(t, updated.Ban)

	updated, err = svc.SetBan(ctx, acc.ID, &dto.BanAccountRequest{Ban: boolPtr(true)})
	require.NoError(t, err)
	assert.True(t, updated.Ban)
}
