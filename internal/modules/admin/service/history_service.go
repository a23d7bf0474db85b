package service

import (
	"context"
	"errors"
	"strconv"

	"github.com/ahwuoc/web-manager-nro-teav2/internal/pkg/xerrors"
	"github.com/ahwuoc/web-manager-nro-teav2/internal/repository/entity"
	"github.com/ahwuoc/web-manager-nro-teav2/internal/repository/impl"
	"github.com/ahwuoc/web-manager-nro-teav2/internal/repository/interfaces"

	"gorm.io/gorm"
)

const (
	defaultHistoryPageSize = 20
	maxHistoryPageSize     = 100
)

// HistoryService 交易记录服务
type HistoryService struct {
	repo interfaces.HistoryRepository
}

// NewHistoryService 创建交易记录服务
func NewHistoryService(db *gorm.DB) *HistoryService {
	return &HistoryService{
		repo: impl.NewHistoryRepository(db),
	}
}

// SearchHistory 分页搜索交易记录
func (s *HistoryService) SearchHistory(ctx context.Context, search string, page, pageSize int) ([]entity.HistoryTransaction, int64, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = defaultHistoryPageSize
	}
	if pageSize > maxHistoryPageSize {
		pageSize = maxHistoryPageSize
	}
	return s.repo.Search(ctx, search, page, pageSize)
}

// DeleteHistory 删除单条交易记录
func (s *HistoryService) DeleteHistory(ctx context.Context, id int) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return xerrors.NewNotFoundError("交易记录", strconv.Itoa(id))
		}
		return err
	}
	return nil
}

// DeleteAllHistory 清空所有交易记录
func (s *HistoryService) DeleteAllHistory(ctx context.Context) error {
	return s.repo.DeleteAll(ctx)
}
