package interfaces

import (
	"context"

	"github.com/ahwuoc/web-manager-nro-teav2/internal/repository/entity"
)

// WeeklyTopRepository 周排行榜仓储接口
type WeeklyTopRepository interface {
	// ListTypes 查询排行榜类型（内嵌奖励，按 rank_from 升序），按 order_index 升序
	ListTypes(ctx context.Context) ([]entity.WeeklyTopType, error)

	// GetTypeByID 根据ID获取排行榜类型（内嵌奖励）
	GetTypeByID(ctx context.Context, id int) (*entity.WeeklyTopType, error)

	// CreateType 创建排行榜类型
	CreateType(ctx context.Context, t *entity.WeeklyTopType) error

	// UpdateType 部分更新排行榜类型
	UpdateType(ctx context.Context, id int, updates map[string]interface{}) error

	// DeleteType 删除排行榜类型
	DeleteType(ctx context.Context, id int) error

	// ListRewards 查询奖励列表，可按 top_type_id 过滤，按 rank_from 升序
	ListRewards(ctx context.Context, topTypeID *int) ([]entity.WeeklyTopReward, error)

	// GetRewardByID 根据ID获取奖励
	GetRewardByID(ctx context.Context, id int) (*entity.WeeklyTopReward, error)

	// CreateReward 创建奖励
	CreateReward(ctx context.Context, r *entity.WeeklyTopReward) error

	// UpdateReward 部分更新奖励
	UpdateReward(ctx context.Context, id int, updates map[string]interface{}) error

	// DeleteReward 删除奖励
	DeleteReward(ctx context.Context, id int) error
}
