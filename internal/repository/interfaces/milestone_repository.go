package interfaces

import (
	"context"

	"github.com/ahwuoc/web-manager-nro-teav2/internal/repository/entity"
)

// MocNapRepository 充值里程碑仓储接口
type MocNapRepository interface {
	List(ctx context.Context) ([]entity.MocNap, error)
	GetByID(ctx context.Context, id int) (*entity.MocNap, error)
	Create(ctx context.Context, m *entity.MocNap) error
	Update(ctx context.Context, id int, updates map[string]interface{}) error
	Delete(ctx context.Context, id int) error
}

// MocOnlineRepository 在线时长里程碑仓储接口
type MocOnlineRepository interface {
	List(ctx context.Context) ([]entity.MocOnline, error)
	GetByID(ctx context.Context, id int) (*entity.MocOnline, error)
	Create(ctx context.Context, m *entity.MocOnline) error
	Update(ctx context.Context, id int, updates map[string]interface{}) error
	Delete(ctx context.Context, id int) error
}

// MocTieuTienRepository 消费里程碑仓储接口
type MocTieuTienRepository interface {
	List(ctx context.Context) ([]entity.MocTieuTien, error)
	GetByID(ctx context.Context, id int) (*entity.MocTieuTien, error)
	Create(ctx context.Context, m *entity.MocTieuTien) error
	Update(ctx context.Context, id int, updates map[string]interface{}) error
	Delete(ctx context.Context, id int) error
}

// GoiQuaRepository 礼包仓储接口
// 集合查询/创建在线上被停用，仓储仍保留单条更新与删除。
type GoiQuaRepository interface {
	GetByID(ctx context.Context, id int) (*entity.GoiQua, error)
	Update(ctx context.Context, id int, updates map[string]interface{}) error
	Delete(ctx context.Context, id int) error
}
