package service

import (
	"context"
	"errors"

	"github.com/ahwuoc/web-manager-nro-teav2/internal/modules/admin/dto"
	"github.com/ahwuoc/web-manager-nro-teav2/internal/pkg/xerrors"
	"github.com/ahwuoc/web-manager-nro-teav2/internal/repository/entity"
	"github.com/ahwuoc/web-manager-nro-teav2/internal/repository/impl"
	"github.com/ahwuoc/web-manager-nro-teav2/internal/repository/interfaces"

	"gorm.io/gorm"
)

// PlayerService 玩家账号服务
type PlayerService struct {
	repo interfaces.AccountRepository
}

// NewPlayerService 创建玩家账号服务
func NewPlayerService(db *gorm.DB) *PlayerService {
	return &PlayerService{
		repo: impl.NewAccountRepository(db),
	}
}

// SearchAccounts 模糊搜索账号（用户名/邮箱/角色名）
func (s *PlayerService) SearchAccounts(ctx context.Context, search string) ([]entity.Account, error) {
	return s.repo.Search(ctx, search)
}

// GetAccountByID 根据ID获取账号
func (s *PlayerService) GetAccountByID(ctx context.Context, id int) (*entity.Account, error) {
	acc, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, xerrors.FromCode(xerrors.CodeAccountNotFound)
		}
		return nil, err
	}
	return acc, nil
}

// SetBan 封禁/解封账号
func (s *PlayerService) SetBan(ctx context.Context, id int, req *dto.BanAccountRequest) (*entity.Account, error) {
	if err := s.repo.Update(ctx, id, map[string]interface{}{"ban": *req.Ban}); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, xerrors.FromCode(xerrors.CodeAccountNotFound)
		}
		return nil, err
	}
	return s.GetAccountByID(ctx, id)
}

// AdjustCash 调整账号 cash；结果钳制为不小于 0，可同步累加充值总额
func (s *PlayerService) AdjustCash(ctx context.Context, id int, req *dto.AdjustCashRequest) (*entity.Account, error) {
	acc, err := s.GetAccountByID(ctx, id)
	if err != nil {
		return nil, err
	}

	newCash := acc.Cash + req.Amount
	if newCash < 0 {
		newCash = 0
	}
	updates := map[string]interface{}{"cash": newCash}
	if req.AddToDanap && req.Amount > 0 {
		updates["danap"] = acc.Danap + req.Amount
	}

	if err := s.repo.Update(ctx, id, updates); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, xerrors.FromCode(xerrors.CodeAccountNotFound)
		}
		return nil, err
	}
	return s.GetAccountByID(ctx, id)
}

// AdjustVang 调整账号金币（BigInt 列）；结果钳制为不小于 0
func (s *PlayerService) AdjustVang(ctx context.Context, id int, req *dto.AdjustVangRequest) (*entity.Account, error) {
	acc, err := s.GetAccountByID(ctx, id)
	if err != nil {
		return nil, err
	}

	newVang := acc.Vang + req.Amount
	if newVang < 0 {
		newVang = 0
	}

	if err := s.repo.Update(ctx, id, map[string]interface{}{"vang": newVang}); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, xerrors.FromCode(xerrors.CodeAccountNotFound)
		}
		return nil, err
	}
	return s.GetAccountByID(ctx, id)
}
