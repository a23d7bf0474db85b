package impl

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/ahwuoc/web-manager-nro-teav2/internal/repository/entity"
	"github.com/ahwuoc/web-manager-nro-teav2/internal/repository/interfaces"
)

// searchLimit 账号搜索结果上限
const searchLimit = 50

type accountRepositoryImpl struct {
	db *gorm.DB
}

// NewAccountRepository 创建玩家账号仓储实例
func NewAccountRepository(db *gorm.DB) interfaces.AccountRepository {
	return &accountRepositoryImpl{db: db}
}

// Search 模糊搜索账号（用户名/邮箱/角色名）
func (r *accountRepositoryImpl) Search(ctx context.Context, search string) ([]entity.Account, error) {
	var accounts []entity.Account

	query := r.db.WithContext(ctx).
		Preload("Player").
		Order("id DESC").
		Limit(searchLimit)

	if search != "" {
		pattern := "%" + search + "%"
		query = query.
			Joins("LEFT JOIN player ON player.account_id = account.id").
			Where("account.username LIKE ? OR account.email LIKE ? OR player.name LIKE ?",
				pattern, pattern, pattern)
	}

	if err := query.Find(&accounts).Error; err != nil {
		return nil, fmt.Errorf("搜索账号失败: %w", err)
	}
	return accounts, nil
}

// GetByID 根据ID获取账号（含角色信息）
func (r *accountRepositoryImpl) GetByID(ctx context.Context, id int) (*entity.Account, error) {
	var account entity.Account
	err := r.db.WithContext(ctx).
		Preload("Player").
		First(&account, id).Error
	if err != nil {
		return nil, err
	}
	return &account, nil
}

// Update 部分更新账号
func (r *accountRepositoryImpl) Update(ctx context.Context, id int, updates map[string]interface{}) error {
	return updateByID(ctx, r.db, &entity.Account{}, id, updates)
}
