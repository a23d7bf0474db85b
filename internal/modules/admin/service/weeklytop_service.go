package service

import (
	"context"
	"errors"
	"strconv"

	"github.com/ahwuoc/web-manager-nro-teav2/internal/modules/admin/dto"
	"github.com/ahwuoc/web-manager-nro-teav2/internal/pkg/notify"
	"github.com/ahwuoc/web-manager-nro-teav2/internal/pkg/xerrors"
	"github.com/ahwuoc/web-manager-nro-teav2/internal/repository/entity"
	"github.com/ahwuoc/web-manager-nro-teav2/internal/repository/impl"
	"github.com/ahwuoc/web-manager-nro-teav2/internal/repository/interfaces"

	"gorm.io/gorm"
)

// WeeklyTopService 周排行榜服务
type WeeklyTopService struct {
	repo interfaces.WeeklyTopRepository
}

// NewWeeklyTopService 创建周排行榜服务
func NewWeeklyTopService(db *gorm.DB) *WeeklyTopService {
	return &WeeklyTopService{
		repo: impl.NewWeeklyTopRepository(db),
	}
}

// GetTypes 获取排行榜类型列表（内嵌奖励）
func (s *WeeklyTopService) GetTypes(ctx context.Context) ([]entity.WeeklyTopType, error) {
	return s.repo.ListTypes(ctx)
}

// GetTypeByID 根据ID获取排行榜类型
func (s *WeeklyTopService) GetTypeByID(ctx context.Context, id int) (*entity.WeeklyTopType, error) {
	t, err := s.repo.GetTypeByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, xerrors.FromCode(xerrors.CodeTopTypeNotFound)
		}
		return nil, err
	}
	return t, nil
}

// CreateType 创建排行榜类型
func (s *WeeklyTopService) CreateType(ctx context.Context, req *dto.CreateTopTypeRequest) (*entity.WeeklyTopType, error) {
	t := &entity.WeeklyTopType{
		Name:       req.Name,
		OrderIndex: req.OrderIndex,
		ColumnName: req.ColumnName,
	}
	if err := s.repo.CreateType(ctx, t); err != nil {
		return nil, err
	}
	publishChange(ctx, notify.SubjectTopChanged, "top_type", "created", strconv.Itoa(t.ID))
	return t, nil
}

// UpdateType 部分更新排行榜类型
func (s *WeeklyTopService) UpdateType(ctx context.Context, id int, req *dto.UpdateTopTypeRequest) (*entity.WeeklyTopType, error) {
	updates := req.Updates()
	if len(updates) > 0 {
		if err := s.repo.UpdateType(ctx, id, updates); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, xerrors.FromCode(xerrors.CodeTopTypeNotFound)
			}
			return nil, err
		}
	}
	publishChange(ctx, notify.SubjectTopChanged, "top_type", "updated", strconv.Itoa(id))
	return s.GetTypeByID(ctx, id)
}

// DeleteType 删除排行榜类型
func (s *WeeklyTopService) DeleteType(ctx context.Context, id int) error {
	if err := s.repo.DeleteType(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return xerrors.FromCode(xerrors.CodeTopTypeNotFound)
		}
		return err
	}
	publishChange(ctx, notify.SubjectTopChanged, "top_type", "deleted", strconv.Itoa(id))
	return nil
}

// GetRewards 获取奖励列表，可按排行榜类型过滤
func (s *WeeklyTopService) GetRewards(ctx context.Context, topTypeID *int) ([]entity.WeeklyTopReward, error) {
	return s.repo.ListRewards(ctx, topTypeID)
}

// GetRewardByID 根据ID获取奖励
func (s *WeeklyTopService) GetRewardByID(ctx context.Context, id int) (*entity.WeeklyTopReward, error) {
	r, err := s.repo.GetRewardByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, xerrors.FromCode(xerrors.CodeTopRewardNotFound)
		}
		return nil, err
	}
	return r, nil
}

// CreateReward 创建奖励
func (s *WeeklyTopService) CreateReward(ctx context.Context, req *dto.CreateTopRewardRequest) (*entity.WeeklyTopReward, error) {
	if req.RankTo < req.RankFrom {
		return nil, xerrors.NewValidationError("rank_to", "结束名次不能小于起始名次")
	}

	// 所属排行榜类型必须存在
	if _, err := s.GetTypeByID(ctx, req.TopTypeID); err != nil {
		return nil, err
	}

	details := "[]"
	if req.Details != nil {
		details = *req.Details
	}
	r := &entity.WeeklyTopReward{
		TopTypeID:   req.TopTypeID,
		RankFrom:    req.RankFrom,
		RankTo:      req.RankTo,
		Details:     details,
		Description: req.Description,
	}
	if err := s.repo.CreateReward(ctx, r); err != nil {
		return nil, err
	}
	publishChange(ctx, notify.SubjectTopChanged, "top_reward", "created", strconv.Itoa(r.ID))
	return r, nil
}

// UpdateReward 部分更新奖励
func (s *WeeklyTopService) UpdateReward(ctx context.Context, id int, req *dto.UpdateTopRewardRequest) (*entity.WeeklyTopReward, error) {
	if req.RankFrom != nil && req.RankTo != nil && *req.RankTo < *req.RankFrom {
		return nil, xerrors.NewValidationError("rank_to", "结束名次不能小于起始名次")
	}
	if req.TopTypeID != nil {
		if _, err := s.GetTypeByID(ctx, *req.TopTypeID); err != nil {
			return nil, err
		}
	}

	updates := req.Updates()
	if len(updates) > 0 {
		if err := s.repo.UpdateReward(ctx, id, updates); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, xerrors.FromCode(xerrors.CodeTopRewardNotFound)
			}
			return nil, err
		}
	}
	publishChange(ctx, notify.SubjectTopChanged, "top_reward", "updated", strconv.Itoa(id))
	return s.GetRewardByID(ctx, id)
}

// DeleteReward 删除奖励
func (s *WeeklyTopService) DeleteReward(ctx context.Context, id int) error {
	if err := s.repo.DeleteReward(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return xerrors.FromCode(xerrors.CodeTopRewardNotFound)
		}
		return err
	}
	publishChange(ctx, notify.SubjectTopChanged, "top_reward", "deleted", strconv.Itoa(id))
	return nil
}
