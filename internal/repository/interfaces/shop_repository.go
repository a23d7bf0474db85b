package interfaces

import (
	"context"

	"github.com/ahwuoc/web-manager-nro-teav2/internal/repository/entity"
)

// ShopRepository 商店仓储接口
// tab_shop 的查询统一预加载所属 shop 及其 NPC 模板。
type ShopRepository interface {
	// ListShops 查询所有商店（含 NPC 模板），按 id 升序
	ListShops(ctx context.Context) ([]entity.Shop, error)

	// ListTabShops 查询 Tab 列表，可按 shop_id 过滤，按 tab_index 升序
	ListTabShops(ctx context.Context, shopID *int) ([]entity.TabShop, error)

	// GetTabShopByID 根据ID获取 Tab
	GetTabShopByID(ctx context.Context, id int) (*entity.TabShop, error)

	// CreateTabShop 创建 Tab，创建后重新加载关联
	CreateTabShop(ctx context.Context, tabShop *entity.TabShop) error

	// UpdateTabShop 部分更新 Tab，updates 的键为列名
	UpdateTabShop(ctx context.Context, id int, updates map[string]interface{}) error

	// DeleteTabShop 删除 Tab
	DeleteTabShop(ctx context.Context, id int) error
}
