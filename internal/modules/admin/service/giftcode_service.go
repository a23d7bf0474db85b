package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/ahwuoc/web-manager-nro-teav2/internal/modules/admin/dto"
	"github.com/ahwuoc/web-manager-nro-teav2/internal/pkg/notify"
	"github.com/ahwuoc/web-manager-nro-teav2/internal/pkg/xerrors"
	"github.com/ahwuoc/web-manager-nro-teav2/internal/repository/entity"
	"github.com/ahwuoc/web-manager-nro-teav2/internal/repository/impl"
	"github.com/ahwuoc/web-manager-nro-teav2/internal/repository/interfaces"

	"gorm.io/gorm"
)

// GiftcodeService 礼品码服务
type GiftcodeService struct {
	repo interfaces.GiftcodeRepository
}

// NewGiftcodeService 创建礼品码服务
func NewGiftcodeService(db *gorm.DB) *GiftcodeService {
	return &GiftcodeService{
		repo: impl.NewGiftcodeRepository(db),
	}
}

// GetGiftcodes 获取礼品码列表（最新优先）
func (s *GiftcodeService) GetGiftcodes(ctx context.Context) ([]entity.Giftcode, error) {
	return s.repo.List(ctx)
}

// GetGiftcodeByID 根据ID获取礼品码
func (s *GiftcodeService) GetGiftcodeByID(ctx context.Context, id int) (*entity.Giftcode, error) {
	gc, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, xerrors.FromCode(xerrors.CodeGiftcodeNotFound)
		}
		return nil, err
	}
	return gc, nil
}

// CreateGiftcode 创建礼品码
func (s *GiftcodeService) CreateGiftcode(ctx context.Context, req *dto.CreateGiftcodeRequest) (*entity.Giftcode, error) {
	// 业务验证：礼品码唯一
	exists, err := s.repo.ExistsByCode(ctx, req.Code)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, xerrors.New(xerrors.CodeGiftcodeExists, fmt.Sprintf("礼品码已存在: %s", req.Code))
	}

	gc := &entity.Giftcode{
		Code:      req.Code,
		CountLeft: req.CountLeft,
		Detail:    req.Detail,
		Expired:   req.Expired,
		Type:      req.Type,
	}
	if err := s.repo.Create(ctx, gc); err != nil {
		return nil, err
	}

	publishChange(ctx, notify.SubjectGiftcodeChanged, "giftcode", "created", strconv.Itoa(gc.ID))
	return gc, nil
}

// UpdateGiftcode 部分更新礼品码
func (s *GiftcodeService) UpdateGiftcode(ctx context.Context, id int, req *dto.UpdateGiftcodeRequest) (*entity.Giftcode, error) {
	if req.Code != nil {
		// 礼品码改名时检查是否与其它记录冲突
		existing, err := s.repo.GetByID(ctx, id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, xerrors.FromCode(xerrors.CodeGiftcodeNotFound)
			}
			return nil, err
		}
		if existing.Code != *req.Code {
			exists, err := s.repo.ExistsByCode(ctx, *req.Code)
			if err != nil {
				return nil, err
			}
			if exists {
				return nil, xerrors.New(xerrors.CodeGiftcodeExists, fmt.Sprintf("礼品码已存在: %s", *req.Code))
			}
		}
	}

	updates := req.Updates()
	if len(updates) > 0 {
		if err := s.repo.Update(ctx, id, updates); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, xerrors.FromCode(xerrors.CodeGiftcodeNotFound)
			}
			return nil, err
		}
	}

	publishChange(ctx, notify.SubjectGiftcodeChanged, "giftcode", "updated", strconv.Itoa(id))
	return s.GetGiftcodeByID(ctx, id)
}

// DeleteGiftcode 删除礼品码
func (s *GiftcodeService) DeleteGiftcode(ctx context.Context, id int) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return xerrors.FromCode(xerrors.CodeGiftcodeNotFound)
		}
		return err
	}

	publishChange(ctx, notify.SubjectGiftcodeChanged, "giftcode", "deleted", strconv.Itoa(id))
	return nil
}
