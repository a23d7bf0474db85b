package impl

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/ahwuoc/web-manager-nro-teav2/internal/repository/entity"
	"github.com/ahwuoc/web-manager-nro-teav2/internal/repository/interfaces"
)

type historyRepositoryImpl struct {
	db *gorm.DB
}

// NewHistoryRepository 创建交易记录仓储实例
func NewHistoryRepository(db *gorm.DB) interfaces.HistoryRepository {
	return &historyRepositoryImpl{db: db}
}

// Search 分页搜索交易记录
func (r *historyRepositoryImpl) Search(ctx context.Context, search string, page, pageSize int) ([]entity.HistoryTransaction, int64, error) {
	query := r.db.WithContext(ctx).Model(&entity.HistoryTransaction{})

	if search != "" {
		pattern := "%" + search + "%"
		query = query.Where(
			"player_1 LIKE ? OR player_2 LIKE ? OR item_player_1 LIKE ? OR item_player_2 LIKE ?",
			pattern, pattern, pattern, pattern)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("统计交易记录失败: %w", err)
	}

	var records []entity.HistoryTransaction
	err := query.
		Order("time_tran DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&records).Error
	if err != nil {
		return nil, 0, fmt.Errorf("查询交易记录失败: %w", err)
	}

	return records, total, nil
}

// Delete 删除单条记录
func (r *historyRepositoryImpl) Delete(ctx context.Context, id int) error {
	return deleteByID(ctx, r.db, &entity.HistoryTransaction{}, id)
}

// DeleteAll 清空所有记录
func (r *historyRepositoryImpl) DeleteAll(ctx context.Context) error {
	// gorm 不允许无条件删除，使用恒真条件
	err := r.db.WithContext(ctx).Where("1 = 1").Delete(&entity.HistoryTransaction{}).Error
	if err != nil {
		return fmt.Errorf("清空交易记录失败: %w", err)
	}
	return nil
}
