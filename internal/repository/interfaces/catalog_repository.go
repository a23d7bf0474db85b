package interfaces

import (
	"context"

	"github.com/ahwuoc/web-manager-nro-teav2/internal/repository/entity"
)

// CatalogRepository 只读目录仓储接口
// 物品/属性/技能/地图模板，供前端展示和奖励明细的名称补全。
type CatalogRepository interface {
	// ListItemTemplates 查询物品模板，ids 为空时返回全部，按 id 升序
	ListItemTemplates(ctx context.Context, ids []int) ([]entity.ItemTemplate, error)

	// ListItemOptionTemplates 查询物品属性模板，ids 为空时返回全部，按 id 升序
	ListItemOptionTemplates(ctx context.Context, ids []int) ([]entity.ItemOptionTemplate, error)

	// ListSkillTemplates 查询技能模板，按 (nclass_id, id) 升序
	ListSkillTemplates(ctx context.Context) ([]entity.SkillTemplate, error)

	// ListMapTemplates 查询地图模板，按 id 升序
	ListMapTemplates(ctx context.Context) ([]entity.MapTemplate, error)
}
