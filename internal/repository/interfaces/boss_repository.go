package interfaces

import (
	"context"

	"github.com/ahwuoc/web-manager-nro-teav2/internal/repository/entity"
)

// BossRepository Boss 配置仓储接口
// boss_data 使用 (id, level_index) 复合主键。
type BossRepository interface {
	// List 查询 Boss 列表，可按 boss_name 过滤，按 (id, level_index) 升序
	List(ctx context.Context, bossName *string) ([]entity.BossData, error)

	// GetByKey 根据复合主键获取 Boss
	GetByKey(ctx context.Context, id, levelIndex int) (*entity.BossData, error)

	// ExistsByKey 检查复合主键是否已存在
	ExistsByKey(ctx context.Context, id, levelIndex int) (bool, error)

	// Create 创建 Boss
	Create(ctx context.Context, boss *entity.BossData) error

	// Update 部分更新 Boss，updates 的键为列名
	Update(ctx context.Context, id, levelIndex int, updates map[string]interface{}) error

	// Delete 删除 Boss
	Delete(ctx context.Context, id, levelIndex int) error
}
