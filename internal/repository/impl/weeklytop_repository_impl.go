package impl

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/ahwuoc/web-manager-nro-teav2/internal/repository/entity"
	"github.com/ahwuoc/web-manager-nro-teav2/internal/repository/interfaces"
)

type weeklyTopRepositoryImpl struct {
	db *gorm.DB
}

// NewWeeklyTopRepository 创建周排行榜仓储实例
func NewWeeklyTopRepository(db *gorm.DB) interfaces.WeeklyTopRepository {
	return &weeklyTopRepositoryImpl{db: db}
}

// ListTypes 查询排行榜类型（内嵌奖励）
func (r *weeklyTopRepositoryImpl) ListTypes(ctx context.Context) ([]entity.WeeklyTopType, error) {
	var types []entity.WeeklyTopType
	err := r.db.WithContext(ctx).
		Preload("WeeklyTopRewards", func(db *gorm.DB) *gorm.DB {
			return db.Order("rank_from ASC")
		}).
		Order("order_index ASC").
		Find(&types).Error
	if err != nil {
		return nil, fmt.Errorf("查询排行榜类型失败: %w", err)
	}
	return types, nil
}

// GetTypeByID 根据ID获取排行榜类型（内嵌奖励）
func (r *weeklyTopRepositoryImpl) GetTypeByID(ctx context.Context, id int) (*entity.WeeklyTopType, error) {
	var t entity.WeeklyTopType
	err := r.db.WithContext(ctx).
		Preload("WeeklyTopRewards", func(db *gorm.DB) *gorm.DB {
			return db.Order("rank_from ASC")
		}).
		First(&t, id).Error
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// CreateType 创建排行榜类型
func (r *weeklyTopRepositoryImpl) CreateType(ctx context.Context, t *entity.WeeklyTopType) error {
	if err := r.db.WithContext(ctx).Create(t).Error; err != nil {
		return fmt.Errorf("创建排行榜类型失败: %w", err)
	}
	return nil
}

// UpdateType 部分更新排行榜类型
func (r *weeklyTopRepositoryImpl) UpdateType(ctx context.Context, id int, updates map[string]interface{}) error {
	return updateByID(ctx, r.db, &entity.WeeklyTopType{}, id, updates)
}

// DeleteType 删除排行榜类型
func (r *weeklyTopRepositoryImpl) DeleteType(ctx context.Context, id int) error {
	return deleteByID(ctx, r.db, &entity.WeeklyTopType{}, id)
}

// ListRewards 查询奖励列表，可按 top_type_id 过滤
func (r *weeklyTopRepositoryImpl) ListRewards(ctx context.Context, topTypeID *int) ([]entity.WeeklyTopReward, error) {
	var rewards []entity.WeeklyTopReward

	query := r.db.WithContext(ctx).Order("rank_from ASC")
	if topTypeID != nil {
		query = query.Where("top_type_id = ?", *topTypeID)
	}

	if err := query.Find(&rewards).Error; err != nil {
		return nil, fmt.Errorf("查询排行榜奖励失败: %w", err)
	}
	return rewards, nil
}

// GetRewardByID 根据ID获取奖励
func (r *weeklyTopRepositoryImpl) GetRewardByID(ctx context.Context, id int) (*entity.WeeklyTopReward, error) {
	var reward entity.WeeklyTopReward
	if err := r.db.WithContext(ctx).First(&reward, id).Error; err != nil {
		return nil, err
	}
	return &reward, nil
}

// CreateReward 创建奖励
func (r *weeklyTopRepositoryImpl) CreateReward(ctx context.Context, reward *entity.WeeklyTopReward) error {
	if err := r.db.WithContext(ctx).Create(reward).Error; err != nil {
		return fmt.Errorf("创建排行榜奖励失败: %w", err)
	}
	return nil
}

// UpdateReward 部分更新奖励
func (r *weeklyTopRepositoryImpl) UpdateReward(ctx context.Context, id int, updates map[string]interface{}) error {
	return updateByID(ctx, r.db, &entity.WeeklyTopReward{}, id, updates)
}

// DeleteReward 删除奖励
func (r *weeklyTopRepositoryImpl) DeleteReward(ctx context.Context, id int) error {
	return deleteByID(ctx, r.db, &entity.WeeklyTopReward{}, id)
}
