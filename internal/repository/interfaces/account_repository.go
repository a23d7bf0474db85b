package interfaces

import (
	"context"

	"github.com/ahwuoc/web-manager-nro-teav2/internal/repository/entity"
)

// AccountRepository 玩家账号仓储接口
type AccountRepository interface {
	// Search 模糊搜索账号（用户名/邮箱/角色名），按 id 降序，最多 50 条
	Search(ctx context.Context, search string) ([]entity.Account, error)

	// GetByID 根据ID获取账号（含角色信息）
	GetByID(ctx context.Context, id int) (*entity.Account, error)

	// Update 部分更新账号，updates 的键为列名
	Update(ctx context.Context, id int, updates map[string]interface{}) error
}
