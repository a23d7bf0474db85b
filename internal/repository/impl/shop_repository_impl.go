package impl

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/ahwuoc/web-manager-nro-teav2/internal/repository/entity"
	"github.com/ahwuoc/web-manager-nro-teav2/internal/repository/interfaces"
)

type shopRepositoryImpl struct {
	db *gorm.DB
}

// NewShopRepository 创建商店仓储实例
func NewShopRepository(db *gorm.DB) interfaces.ShopRepository {
	return &shopRepositoryImpl{db: db}
}

// ListShops 查询所有商店（含 NPC 模板）
func (r *shopRepositoryImpl) ListShops(ctx context.Context) ([]entity.Shop, error) {
	var shops []entity.Shop
	err := r.db.WithContext(ctx).
		Preload("NpcTemplate").
		Order("id ASC").
		Find(&shops).Error
	if err != nil {
		return nil, fmt.Errorf("查询商店列表失败: %w", err)
	}
	return shops, nil
}

// ListTabShops 查询 Tab 列表，可按 shop_id 过滤
func (r *shopRepositoryImpl) ListTabShops(ctx context.Context, shopID *int) ([]entity.TabShop, error) {
	var tabShops []entity.TabShop

	query := r.db.WithContext(ctx).
		Preload("Shop").
		Preload("Shop.NpcTemplate").
		Order("tab_index ASC")
	if shopID != nil {
		query = query.Where("shop_id = ?", *shopID)
	}

	if err := query.Find(&tabShops).Error; err != nil {
		return nil, fmt.Errorf("查询 Tab 列表失败: %w", err)
	}
	return tabShops, nil
}

// GetTabShopByID 根据ID获取 Tab
func (r *shopRepositoryImpl) GetTabShopByID(ctx context.Context, id int) (*entity.TabShop, error) {
	var tabShop entity.TabShop
	err := r.db.WithContext(ctx).
		Preload("Shop").
		Preload("Shop.NpcTemplate").
		First(&tabShop, id).Error
	if err != nil {
		return nil, err
	}
	return &tabShop, nil
}

// CreateTabShop 创建 Tab，创建后重新加载关联
func (r *shopRepositoryImpl) CreateTabShop(ctx context.Context, tabShop *entity.TabShop) error {
	if err := r.db.WithContext(ctx).Create(tabShop).Error; err != nil {
		return fmt.Errorf("创建 Tab 失败: %w", err)
	}

	// 重新加载所属商店及 NPC 模板
	return r.db.WithContext(ctx).
		Preload("Shop").
		Preload("Shop.NpcTemplate").
		First(tabShop, tabShop.ID).Error
}

// UpdateTabShop 部分更新 Tab
func (r *shopRepositoryImpl) UpdateTabShop(ctx context.Context, id int, updates map[string]interface{}) error {
	if len(updates) == 0 {
		return nil
	}
	result := r.db.WithContext(ctx).Model(&entity.TabShop{}).
		Where("id = ?", id).
		Updates(updates)
	if result.Error != nil {
		return fmt.Errorf("更新 Tab 失败: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// DeleteTabShop 删除 Tab
func (r *shopRepositoryImpl) DeleteTabShop(ctx context.Context, id int) error {
	result := r.db.WithContext(ctx).Delete(&entity.TabShop{}, id)
	if result.Error != nil {
		return fmt.Errorf("删除 Tab 失败: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
