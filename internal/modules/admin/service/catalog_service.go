package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/ahwuoc/web-manager-nro-teav2/internal/pkg/log"
	"github.com/ahwuoc/web-manager-nro-teav2/internal/pkg/redis"
	"github.com/ahwuoc/web-manager-nro-teav2/internal/repository/entity"
	"github.com/ahwuoc/web-manager-nro-teav2/internal/repository/impl"
	"github.com/ahwuoc/web-manager-nro-teav2/internal/repository/interfaces"

	"gorm.io/gorm"
)

// 目录缓存键
const (
	cacheKeyItemTemplates       = "catalog:item_template"
	cacheKeyItemOptionTemplates = "catalog:item_option_template"
	cacheKeySkillTemplates      = "catalog:skill_template"
	cacheKeyMapTemplates        = "catalog:map_template"
)

// CatalogService 只读目录服务
// 全量列表走 Redis 缓存（模板表只在游戏版本更新时变动）；
// 按 id 过滤的查询直接落库。缓存不可用时退化为纯数据库查询。
type CatalogService struct {
	repo     interfaces.CatalogRepository
	cache    *redis.Client
	cacheTTL time.Duration
}

// NewCatalogService 创建目录服务；cache 可为 nil
func NewCatalogService(db *gorm.DB, cache *redis.Client, cacheTTL time.Duration) *CatalogService {
	return &CatalogService{
		repo:     impl.NewCatalogRepository(db),
		cache:    cache,
		cacheTTL: cacheTTL,
	}
}

// GetItemTemplates 获取物品模板，ids 为空时返回全部
func (s *CatalogService) GetItemTemplates(ctx context.Context, ids []int) ([]entity.ItemTemplate, error) {
	if len(ids) > 0 {
		return s.repo.ListItemTemplates(ctx, ids)
	}
	var items []entity.ItemTemplate
	err := s.cachedList(ctx, cacheKeyItemTemplates, &items, func() (interface{}, error) {
		return s.repo.ListItemTemplates(ctx, nil)
	})
	return items, err
}

// GetItemOptionTemplates 获取物品属性模板，ids 为空时返回全部
func (s *CatalogService) GetItemOptionTemplates(ctx context.Context, ids []int) ([]entity.ItemOptionTemplate, error) {
	if len(ids) > 0 {
		return s.repo.ListItemOptionTemplates(ctx, ids)
	}
	var options []entity.ItemOptionTemplate
	err := s.cachedList(ctx, cacheKeyItemOptionTemplates, &options, func() (interface{}, error) {
		return s.repo.ListItemOptionTemplates(ctx, nil)
	})
	return options, err
}

// GetSkillTemplates 获取技能模板
func (s *CatalogService) GetSkillTemplates(ctx context.Context) ([]entity.SkillTemplate, error) {
	var skills []entity.SkillTemplate
	err := s.cachedList(ctx, cacheKeySkillTemplates, &skills, func() (interface{}, error) {
		return s.repo.ListSkillTemplates(ctx)
	})
	return skills, err
}

// GetMapTemplates 获取地图模板
func (s *CatalogService) GetMapTemplates(ctx context.Context) ([]entity.MapTemplate, error) {
	var maps []entity.MapTemplate
	err := s.cachedList(ctx, cacheKeyMapTemplates, &maps, func() (interface{}, error) {
		return s.repo.ListMapTemplates(ctx)
	})
	return maps, err
}

// ItemTemplateMap 物品模板的 id 索引（奖励明细名称补全的输入）
func (s *CatalogService) ItemTemplateMap(ctx context.Context) (map[int]entity.ItemTemplate, error) {
	items, err := s.GetItemTemplates(ctx, nil)
	if err != nil {
		return nil, err
	}
	byID := make(map[int]entity.ItemTemplate, len(items))
	for _, item := range items {
		byID[item.ID] = item
	}
	return byID, nil
}

// ItemOptionTemplateMap 物品属性模板的 id 索引
func (s *CatalogService) ItemOptionTemplateMap(ctx context.Context) (map[int]entity.ItemOptionTemplate, error) {
	options, err := s.GetItemOptionTemplates(ctx, nil)
	if err != nil {
		return nil, err
	}
	byID := make(map[int]entity.ItemOptionTemplate, len(options))
	for _, opt := range options {
		byID[opt.ID] = opt
	}
	return byID, nil
}

// WarmCache 预热所有目录缓存（定时任务与启动时调用）
func (s *CatalogService) WarmCache(ctx context.Context) error {
	if s.cache == nil {
		return nil
	}
	if err := s.warmOne(ctx, cacheKeyItemTemplates, func() (interface{}, error) {
		return s.repo.ListItemTemplates(ctx, nil)
	}); err != nil {
		return err
	}
	if err := s.warmOne(ctx, cacheKeyItemOptionTemplates, func() (interface{}, error) {
		return s.repo.ListItemOptionTemplates(ctx, nil)
	}); err != nil {
		return err
	}
	if err := s.warmOne(ctx, cacheKeySkillTemplates, func() (interface{}, error) {
		return s.repo.ListSkillTemplates(ctx)
	}); err != nil {
		return err
	}
	return s.warmOne(ctx, cacheKeyMapTemplates, func() (interface{}, error) {
		return s.repo.ListMapTemplates(ctx)
	})
}

// cachedList 读穿缓存：命中则反序列化，未命中回源并写回
func (s *CatalogService) cachedList(ctx context.Context, key string, dest interface{}, load func() (interface{}, error)) error {
	if s.cache != nil {
		cached, err := s.cache.GetString(ctx, key)
		if err == nil {
			if err := json.Unmarshal([]byte(cached), dest); err == nil {
				return nil
			}
			// 缓存内容损坏，删除后回源
			_ = s.cache.DeleteKey(ctx, key)
		} else if !redis.IsNil(err) {
			log.WarnContext(ctx, "读取目录缓存失败", log.String("key", key), log.Any("error", err))
		}
	}

	list, err := load()
	if err != nil {
		return err
	}

	data, err := json.Marshal(list)
	if err != nil {
		return err
	}
	if s.cache != nil {
		if err := s.cache.SetWithTTL(ctx, key, string(data), s.cacheTTL); err != nil {
			log.WarnContext(ctx, "写入目录缓存失败", log.String("key", key), log.Any("error", err))
		}
	}
	return json.Unmarshal(data, dest)
}

func (s *CatalogService) warmOne(ctx context.Context, key string, load func() (interface{}, error)) error {
	list, err := load()
	if err != nil {
		return err
	}
	data, err := json.Marshal(list)
	if err != nil {
		return err
	}
	return s.cache.SetWithTTL(ctx, key, string(data), s.cacheTTL)
}
