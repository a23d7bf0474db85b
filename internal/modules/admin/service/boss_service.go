package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/ahwuoc/web-manager-nro-teav2/internal/modules/admin/dto"
	"github.com/ahwuoc/web-manager-nro-teav2/internal/pkg/notify"
	"github.com/ahwuoc/web-manager-nro-teav2/internal/pkg/xerrors"
	"github.com/ahwuoc/web-manager-nro-teav2/internal/repository/entity"
	"github.com/ahwuoc/web-manager-nro-teav2/internal/repository/impl"
	"github.com/ahwuoc/web-manager-nro-teav2/internal/repository/interfaces"

	"gorm.io/gorm"
)

// BossService Boss 配置服务
type BossService struct {
	repo interfaces.BossRepository
}

// NewBossService 创建 Boss 服务
func NewBossService(db *gorm.DB) *BossService {
	return &BossService{
		repo: impl.NewBossRepository(db),
	}
}

// BossGroup 同一 Boss ID 下的所有等级
type BossGroup struct {
	ID     int               `json:"id"`
	Name   string            `json:"name"`
	Levels []entity.BossData `json:"levels"`
}

// GetBosses 获取 Boss 列表，可按名称过滤
func (s *BossService) GetBosses(ctx context.Context, bossName *string) ([]entity.BossData, error) {
	return s.repo.List(ctx, bossName)
}

// GetBossesGrouped 获取按 Boss ID 分组的列表
// 列表已按 (id, level_index) 升序，分组保持出现顺序。
func (s *BossService) GetBossesGrouped(ctx context.Context, bossName *string) ([]BossGroup, error) {
	bosses, err := s.repo.List(ctx, bossName)
	if err != nil {
		return nil, err
	}

	groups := make([]BossGroup, 0)
	index := make(map[int]int)
	for _, boss := range bosses {
		i, ok := index[boss.ID]
		if !ok {
			index[boss.ID] = len(groups)
			groups = append(groups, BossGroup{ID: boss.ID, Name: boss.BossName})
			i = len(groups) - 1
		}
		groups[i].Levels = append(groups[i].Levels, boss)
	}
	return groups, nil
}

// GetBossByKey 根据复合主键获取 Boss
func (s *BossService) GetBossByKey(ctx context.Context, id, levelIndex int) (*entity.BossData, error) {
	boss, err := s.repo.GetByKey(ctx, id, levelIndex)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, xerrors.FromCode(xerrors.CodeBossNotFound)
		}
		return nil, err
	}
	return boss, nil
}

// CreateBoss 创建 Boss
func (s *BossService) CreateBoss(ctx context.Context, req *dto.CreateBossRequest) (*entity.BossData, error) {
	// 业务验证：复合主键唯一
	exists, err := s.repo.ExistsByKey(ctx, req.ID, req.LevelIndex)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, xerrors.New(xerrors.CodeBossExists,
			fmt.Sprintf("Boss 已存在: id=%d level_index=%d", req.ID, req.LevelIndex))
	}

	boss := req.ToEntity()
	if err := s.repo.Create(ctx, boss); err != nil {
		return nil, err
	}

	publishChange(ctx, notify.SubjectBossChanged, "boss", "created", bossKey(boss.ID, boss.LevelIndex))
	return boss, nil
}

// UpdateBoss 部分更新 Boss
func (s *BossService) UpdateBoss(ctx context.Context, id, levelIndex int, req *dto.UpdateBossRequest) (*entity.BossData, error) {
	updates := req.Updates()
	if len(updates) > 0 {
		if err := s.repo.Update(ctx, id, levelIndex, updates); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, xerrors.FromCode(xerrors.CodeBossNotFound)
			}
			return nil, err
		}
	}

	publishChange(ctx, notify.SubjectBossChanged, "boss", "updated", bossKey(id, levelIndex))
	return s.GetBossByKey(ctx, id, levelIndex)
}

// DeleteBoss 删除 Boss
func (s *BossService) DeleteBoss(ctx context.Context, id, levelIndex int) error {
	if err := s.repo.Delete(ctx, id, levelIndex); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return xerrors.FromCode(xerrors.CodeBossNotFound)
		}
		return err
	}

	publishChange(ctx, notify.SubjectBossChanged, "boss", "deleted", bossKey(id, levelIndex))
	return nil
}

func bossKey(id, levelIndex int) string {
	return fmt.Sprintf("%d:%d", id, levelIndex)
}
