package interfaces

import (
	"context"

	"github.com/ahwuoc/web-manager-nro-teav2/internal/repository/entity"
)

// HistoryRepository 交易记录仓储接口
type HistoryRepository interface {
	// Search 分页搜索交易记录（玩家名/物品列模糊匹配），按 time_tran 降序
	Search(ctx context.Context, search string, page, pageSize int) ([]entity.HistoryTransaction, int64, error)

	// Delete 删除单条记录
	Delete(ctx context.Context, id int) error

	// DeleteAll 清空所有记录
	DeleteAll(ctx context.Context) error
}
