package service

import (
	"context"
	"errors"
	"strconv"

	"github.com/ahwuoc/web-manager-nro-teav2/internal/modules/admin/dto"
	"github.com/ahwuoc/web-manager-nro-teav2/internal/pkg/notify"
	"github.com/ahwuoc/web-manager-nro-teav2/internal/pkg/xerrors"
	"github.com/ahwuoc/web-manager-nro-teav2/internal/repository/entity"
	"github.com/ahwuoc/web-manager-nro-teav2/internal/repository/impl"
	"github.com/ahwuoc/web-manager-nro-teav2/internal/repository/interfaces"

	"gorm.io/gorm"
)

// ShopService 商店与 Tab 服务
type ShopService struct {
	repo interfaces.ShopRepository
}

// NewShopService 创建商店服务
func NewShopService(db *gorm.DB) *ShopService {
	return &ShopService{
		repo: impl.NewShopRepository(db),
	}
}

// GetShops 获取商店列表（含 NPC 模板）
func (s *ShopService) GetShops(ctx context.Context) ([]entity.Shop, error) {
	return s.repo.ListShops(ctx)
}

// GetTabShops 获取 Tab 列表，可按 shop_id 过滤
func (s *ShopService) GetTabShops(ctx context.Context, shopID *int) ([]entity.TabShop, error) {
	return s.repo.ListTabShops(ctx, shopID)
}

// GetTabShopByID 根据ID获取 Tab
func (s *ShopService) GetTabShopByID(ctx context.Context, id int) (*entity.TabShop, error) {
	tab, err := s.repo.GetTabShopByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, xerrors.FromCode(xerrors.CodeTabShopNotFound)
		}
		return nil, err
	}
	return tab, nil
}

// CreateTabShop 创建 Tab
func (s *ShopService) CreateTabShop(ctx context.Context, req *dto.CreateTabShopRequest) (*entity.TabShop, error) {
	items := "[]"
	if req.Items != nil {
		items = *req.Items
	}
	tab := &entity.TabShop{
		ShopID:   req.ShopID,
		TabName:  req.TabName,
		TabIndex: req.TabIndex,
		Items:    items,
	}
	if err := s.repo.CreateTabShop(ctx, tab); err != nil {
		return nil, err
	}

	publishChange(ctx, notify.SubjectShopChanged, "shop", "created", strconv.Itoa(tab.ID))
	return tab, nil
}

// UpdateTabShop 部分更新 Tab
func (s *ShopService) UpdateTabShop(ctx context.Context, id int, req *dto.UpdateTabShopRequest) (*entity.TabShop, error) {
	updates := req.Updates()
	if len(updates) > 0 {
		if err := s.repo.UpdateTabShop(ctx, id, updates); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, xerrors.FromCode(xerrors.CodeTabShopNotFound)
			}
			return nil, err
		}
	}

	publishChange(ctx, notify.SubjectShopChanged, "shop", "updated", strconv.Itoa(id))
	return s.GetTabShopByID(ctx, id)
}

// DeleteTabShop 删除 Tab
func (s *ShopService) DeleteTabShop(ctx context.Context, id int) error {
	if err := s.repo.DeleteTabShop(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return xerrors.FromCode(xerrors.CodeTabShopNotFound)
		}
		return err
	}

	publishChange(ctx, notify.SubjectShopChanged, "shop", "deleted", strconv.Itoa(id))
	return nil
}
