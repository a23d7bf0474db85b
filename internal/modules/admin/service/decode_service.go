package service

import (
	"context"
	"errors"

	"github.com/ahwuoc/web-manager-nro-teav2/internal/modules/admin/codec"
	"github.com/ahwuoc/web-manager-nro-teav2/internal/pkg/xerrors"
	"github.com/ahwuoc/web-manager-nro-teav2/internal/repository/entity"
	"github.com/ahwuoc/web-manager-nro-teav2/internal/repository/impl"
	"github.com/ahwuoc/web-manager-nro-teav2/internal/repository/interfaces"

	"gorm.io/gorm"
)

// DecodeService 编码列的解码视图
// 编辑界面通过这些接口拿到已解析并补全名称的结构，
// 不再在前端重复实现各列的 JSON 方言。
type DecodeService struct {
	bossRepo     interfaces.BossRepository
	giftcodeRepo interfaces.GiftcodeRepository
	shopRepo     interfaces.ShopRepository
	topRepo      interfaces.WeeklyTopRepository
	catalog      *CatalogService
}

// NewDecodeService 创建解码视图服务
func NewDecodeService(db *gorm.DB, catalog *CatalogService) *DecodeService {
	return &DecodeService{
		bossRepo:     impl.NewBossRepository(db),
		giftcodeRepo: impl.NewGiftcodeRepository(db),
		shopRepo:     impl.NewShopRepository(db),
		topRepo:      impl.NewWeeklyTopRepository(db),
		catalog:      catalog,
	}
}

// ==================== 视图模型 ====================

// BossView Boss 全部编码列的解码结果
type BossView struct {
	Boss      entity.BossData       `json:"boss"`
	HP        []int                 `json:"hp"`
	Outfit    []int                 `json:"outfit"`
	MapJoin   []int                 `json:"map_join"`
	Skills    []codec.SkillEntry    `json:"skills"`
	TextStart []codec.ChatLine      `json:"text_start"`
	TextMid   []codec.ChatLine      `json:"text_mid"`
	TextEnd   []codec.ChatLine      `json:"text_end"`
	Rewards   []codec.EnrichedReward `json:"rewards"`
}

// GetBossView 获取 Boss 的解码视图
func (s *DecodeService) GetBossView(ctx context.Context, id, levelIndex int) (*BossView, error) {
	boss, err := s.bossRepo.GetByKey(ctx, id, levelIndex)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, xerrors.FromCode(xerrors.CodeBossNotFound)
		}
		return nil, err
	}

	itemMap, err := s.catalog.ItemTemplateMap(ctx)
	if err != nil {
		return nil, err
	}

	return &BossView{
		Boss:      *boss,
		HP:        codec.DecodeIntList(boss.HP),
		Outfit:    codec.DecodeOutfit(boss.Outfit),
		MapJoin:   codec.DecodeIntList(boss.MapJoin),
		Skills:    codec.DecodeSkills(boss.Skills),
		TextStart: codec.DecodeChatLines(boss.TextStart),
		TextMid:   codec.DecodeChatLines(boss.TextMid),
		TextEnd:   codec.DecodeChatLines(boss.TextEnd),
		Rewards:   codec.EnrichRewards(codec.DecodeRewards(boss.Rewards), itemMap),
	}, nil
}

// GetGiftcodeDetail 获取礼品码 detail 列的解码结果
func (s *DecodeService) GetGiftcodeDetail(ctx context.Context, id int) ([]codec.EnrichedDetailItem, error) {
	giftcode, err := s.giftcodeRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, xerrors.FromCode(xerrors.CodeGiftcodeNotFound)
		}
		return nil, err
	}
	return s.enrichDetail(ctx, giftcode.Detail)
}

// GetTabShopItems 获取商店 Tab items 列的解码结果
func (s *DecodeService) GetTabShopItems(ctx context.Context, id int) ([]codec.EnrichedShopItem, error) {
	tabShop, err := s.shopRepo.GetTabShopByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, xerrors.FromCode(xerrors.CodeTabShopNotFound)
		}
		return nil, err
	}

	itemMap, err := s.catalog.ItemTemplateMap(ctx)
	if err != nil {
		return nil, err
	}
	return codec.EnrichShopItems(codec.DecodeShopItems(tabShop.Items), itemMap), nil
}

// GetTopRewardDetail 获取周排行榜奖励 details 列的解码结果
func (s *DecodeService) GetTopRewardDetail(ctx context.Context, id int) ([]codec.EnrichedDetailItem, error) {
	reward, err := s.topRepo.GetRewardByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, xerrors.FromCode(xerrors.CodeTopRewardNotFound)
		}
		return nil, err
	}
	return s.enrichDetail(ctx, reward.Details)
}

func (s *DecodeService) enrichDetail(ctx context.Context, raw string) ([]codec.EnrichedDetailItem, error) {
	itemMap, err := s.catalog.ItemTemplateMap(ctx)
	if err != nil {
		return nil, err
	}
	optionMap, err := s.catalog.ItemOptionTemplateMap(ctx)
	if err != nil {
		return nil, err
	}
	return codec.EnrichDetail(codec.DecodeDetail(raw), itemMap, optionMap), nil
}
