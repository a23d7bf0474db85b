package impl

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/ahwuoc/web-manager-nro-teav2/internal/repository/entity"
	"github.com/ahwuoc/web-manager-nro-teav2/internal/repository/interfaces"
)

type bossRepositoryImpl struct {
	db *gorm.DB
}

// NewBossRepository 创建 Boss 仓储实例
func NewBossRepository(db *gorm.DB) interfaces.BossRepository {
	return &bossRepositoryImpl{db: db}
}

// List 查询 Boss 列表，可按 boss_name 过滤
func (r *bossRepositoryImpl) List(ctx context.Context, bossName *string) ([]entity.BossData, error) {
	var bosses []entity.BossData

	query := r.db.WithContext(ctx).Order("id ASC, level_index ASC")
	if bossName != nil && *bossName != "" {
		query = query.Where("boss_name = ?", *bossName)
	}

	if err := query.Find(&bosses).Error; err != nil {
		return nil, fmt.Errorf("查询 Boss 列表失败: %w", err)
	}
	return bosses, nil
}

// GetByKey 根据复合主键获取 Boss
func (r *bossRepositoryImpl) GetByKey(ctx context.Context, id, levelIndex int) (*entity.BossData, error) {
	var boss entity.BossData
	err := r.db.WithContext(ctx).
		Where("id = ? AND level_index = ?", id, levelIndex).
		First(&boss).Error
	if err != nil {
		return nil, err
	}
	return &boss, nil
}

// ExistsByKey 检查复合主键是否已存在
func (r *bossRepositoryImpl) ExistsByKey(ctx context.Context, id, levelIndex int) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entity.BossData{}).
		Where("id = ? AND level_index = ?", id, levelIndex).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("检查 Boss 是否存在失败: %w", err)
	}
	return count > 0, nil
}

// Create 创建 Boss
func (r *bossRepositoryImpl) Create(ctx context.Context, boss *entity.BossData) error {
	if err := r.db.WithContext(ctx).Create(boss).Error; err != nil {
		return fmt.Errorf("创建 Boss 失败: %w", err)
	}
	return nil
}

// Update 部分更新 Boss
func (r *bossRepositoryImpl) Update(ctx context.Context, id, levelIndex int, updates map[string]interface{}) error {
	if len(updates) == 0 {
		return nil
	}
	result := r.db.WithContext(ctx).Model(&entity.BossData{}).
		Where("id = ? AND level_index = ?", id, levelIndex).
		Updates(updates)
	if result.Error != nil {
		return fmt.Errorf("更新 Boss 失败: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Delete 删除 Boss
func (r *bossRepositoryImpl) Delete(ctx context.Context, id, levelIndex int) error {
	result := r.db.WithContext(ctx).
		Where("id = ? AND level_index = ?", id, levelIndex).
		Delete(&entity.BossData{})
	if result.Error != nil {
		return fmt.Errorf("删除 Boss 失败: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
