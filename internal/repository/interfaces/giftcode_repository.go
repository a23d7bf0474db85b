package interfaces

import (
	"context"

	"github.com/ahwuoc/web-manager-nro-teav2/internal/repository/entity"
)

// GiftcodeRepository 礼品码仓储接口
type GiftcodeRepository interface {
	// List 查询礼品码列表，按 id 降序（最新优先）
	List(ctx context.Context) ([]entity.Giftcode, error)

	// GetByID 根据ID获取礼品码
	GetByID(ctx context.Context, id int) (*entity.Giftcode, error)

	// ExistsByCode 检查礼品码是否已存在
	ExistsByCode(ctx context.Context, code string) (bool, error)

	// Create 创建礼品码
	Create(ctx context.Context, giftcode *entity.Giftcode) error

	// Update 部分更新礼品码，updates 的键为列名
	Update(ctx context.Context, id int, updates map[string]interface{}) error

	// Delete 删除礼品码
	Delete(ctx context.Context, id int) error
}
