package impl

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/ahwuoc/web-manager-nro-teav2/internal/repository/entity"
	"github.com/ahwuoc/web-manager-nro-teav2/internal/repository/interfaces"
)

type giftcodeRepositoryImpl struct {
	db *gorm.DB
}

// NewGiftcodeRepository 创建礼品码仓储实例
func NewGiftcodeRepository(db *gorm.DB) interfaces.GiftcodeRepository {
	return &giftcodeRepositoryImpl{db: db}
}

// List 查询礼品码列表，最新优先
func (r *giftcodeRepositoryImpl) List(ctx context.Context) ([]entity.Giftcode, error) {
	var giftcodes []entity.Giftcode
	if err := r.db.WithContext(ctx).Order("id DESC").Find(&giftcodes).Error; err != nil {
		return nil, fmt.Errorf("查询礼品码列表失败: %w", err)
	}
	return giftcodes, nil
}

// GetByID 根据ID获取礼品码
func (r *giftcodeRepositoryImpl) GetByID(ctx context.Context, id int) (*entity.Giftcode, error) {
	var giftcode entity.Giftcode
	if err := r.db.WithContext(ctx).First(&giftcode, id).Error; err != nil {
		return nil, err
	}
	return &giftcode, nil
}

// ExistsByCode 检查礼品码是否已存在
func (r *giftcodeRepositoryImpl) ExistsByCode(ctx context.Context, code string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entity.Giftcode{}).
		Where("code = ?", code).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("检查礼品码是否存在失败: %w", err)
	}
	return count > 0, nil
}

// Create 创建礼品码
func (r *giftcodeRepositoryImpl) Create(ctx context.Context, giftcode *entity.Giftcode) error {
	if err := r.db.WithContext(ctx).Create(giftcode).Error; err != nil {
		return fmt.Errorf("创建礼品码失败: %w", err)
	}
	return nil
}

// Update 部分更新礼品码
func (r *giftcodeRepositoryImpl) Update(ctx context.Context, id int, updates map[string]interface{}) error {
	if len(updates) == 0 {
		return nil
	}
	result := r.db.WithContext(ctx).Model(&entity.Giftcode{}).
		Where("id = ?", id).
		Updates(updates)
	if result.Error != nil {
		return fmt.Errorf("更新礼品码失败: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Delete 删除礼品码
func (r *giftcodeRepositoryImpl) Delete(ctx context.Context, id int) error {
	result := r.db.WithContext(ctx).Delete(&entity.Giftcode{}, id)
	if result.Error != nil {
		return fmt.Errorf("删除礼品码失败: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
