package impl

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/ahwuoc/web-manager-nro-teav2/internal/repository/entity"
	"github.com/ahwuoc/web-manager-nro-teav2/internal/repository/interfaces"
)

type catalogRepositoryImpl struct {
	db *gorm.DB
}

// NewCatalogRepository 创建目录仓储实例
func NewCatalogRepository(db *gorm.DB) interfaces.CatalogRepository {
	return &catalogRepositoryImpl{db: db}
}

// ListItemTemplates 查询物品模板
func (r *catalogRepositoryImpl) ListItemTemplates(ctx context.Context, ids []int) ([]entity.ItemTemplate, error) {
	var items []entity.ItemTemplate

	query := r.db.WithContext(ctx).Order("id ASC")
	if len(ids) > 0 {
		query = query.Where("id IN ?", ids)
	}

	if err := query.Find(&items).Error; err != nil {
		return nil, fmt.Errorf("查询物品模板失败: %w", err)
	}
	return items, nil
}

// ListItemOptionTemplates 查询物品属性模板
func (r *catalogRepositoryImpl) ListItemOptionTemplates(ctx context.Context, ids []int) ([]entity.ItemOptionTemplate, error) {
	var options []entity.ItemOptionTemplate

	query := r.db.WithContext(ctx).Order("id ASC")
	if len(ids) > 0 {
		query = query.Where("id IN ?", ids)
	}

	if err := query.Find(&options).Error; err != nil {
		return nil, fmt.Errorf("查询物品属性模板失败: %w", err)
	}
	return options, nil
}

// ListSkillTemplates 查询技能模板
func (r *catalogRepositoryImpl) ListSkillTemplates(ctx context.Context) ([]entity.SkillTemplate, error) {
	var skills []entity.SkillTemplate
	err := r.db.WithContext(ctx).
		Order("nclass_id ASC, id ASC").
		Find(&skills).Error
	if err != nil {
		return nil, fmt.Errorf("查询技能模板失败: %w", err)
	}
	return skills, nil
}

// ListMapTemplates 查询地图模板
func (r *catalogRepositoryImpl) ListMapTemplates(ctx context.Context) ([]entity.MapTemplate, error) {
	var maps []entity.MapTemplate
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&maps).Error; err != nil {
		return nil, fmt.Errorf("查询地图模板失败: %w", err)
	}
	return maps, nil
}
