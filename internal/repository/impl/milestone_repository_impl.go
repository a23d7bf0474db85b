package impl

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/ahwuoc/web-manager-nro-teav2/internal/repository/entity"
	"github.com/ahwuoc/web-manager-nro-teav2/internal/repository/interfaces"
)

// updateByID 按主键部分更新，零行受影响时返回 gorm.ErrRecordNotFound
func updateByID(ctx context.Context, db *gorm.DB, model interface{}, id int, updates map[string]interface{}) error {
	if len(updates) == 0 {
		return nil
	}
	result := db.WithContext(ctx).Model(model).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		return fmt.Errorf("更新失败: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// deleteByID 按主键删除，零行受影响时返回 gorm.ErrRecordNotFound
func deleteByID(ctx context.Context, db *gorm.DB, model interface{}, id int) error {
	result := db.WithContext(ctx).Where("id = ?", id).Delete(model)
	if result.Error != nil {
		return fmt.Errorf("删除失败: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

type mocNapRepositoryImpl struct {
	db *gorm.DB
}

// NewMocNapRepository 创建充值里程碑仓储实例
func NewMocNapRepository(db *gorm.DB) interfaces.MocNapRepository {
	return &mocNapRepositoryImpl{db: db}
}

func (r *mocNapRepositoryImpl) List(ctx context.Context) ([]entity.MocNap, error) {
	var list []entity.MocNap
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&list).Error; err != nil {
		return nil, fmt.Errorf("查询充值里程碑列表失败: %w", err)
	}
	return list, nil
}

func (r *mocNapRepositoryImpl) GetByID(ctx context.Context, id int) (*entity.MocNap, error) {
	var m entity.MocNap
	if err := r.db.WithContext(ctx).First(&m, id).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *mocNapRepositoryImpl) Create(ctx context.Context, m *entity.MocNap) error {
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return fmt.Errorf("创建充值里程碑失败: %w", err)
	}
	return nil
}

func (r *mocNapRepositoryImpl) Update(ctx context.Context, id int, updates map[string]interface{}) error {
	return updateByID(ctx, r.db, &entity.MocNap{}, id, updates)
}

func (r *mocNapRepositoryImpl) Delete(ctx context.Context, id int) error {
	return deleteByID(ctx, r.db, &entity.MocNap{}, id)
}

type mocOnlineRepositoryImpl struct {
	db *gorm.DB
}

// NewMocOnlineRepository 创建在线时长里程碑仓储实例
func NewMocOnlineRepository(db *gorm.DB) interfaces.MocOnlineRepository {
	return &mocOnlineRepositoryImpl{db: db}
}

func (r *mocOnlineRepositoryImpl) List(ctx context.Context) ([]entity.MocOnline, error) {
	var list []entity.MocOnline
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&list).Error; err != nil {
		return nil, fmt.Errorf("查询在线时长里程碑列表失败: %w", err)
	}
	return list, nil
}

func (r *mocOnlineRepositoryImpl) GetByID(ctx context.Context, id int) (*entity.MocOnline, error) {
	var m entity.MocOnline
	if err := r.db.WithContext(ctx).First(&m, id).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *mocOnlineRepositoryImpl) Create(ctx context.Context, m *entity.MocOnline) error {
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return fmt.Errorf("创建在线时长里程碑失败: %w", err)
	}
	return nil
}

func (r *mocOnlineRepositoryImpl) Update(ctx context.Context, id int, updates map[string]interface{}) error {
	return updateByID(ctx, r.db, &entity.MocOnline{}, id, updates)
}

func (r *mocOnlineRepositoryImpl) Delete(ctx context.Context, id int) error {
	return deleteByID(ctx, r.db, &entity.MocOnline{}, id)
}

type mocTieuTienRepositoryImpl struct {
	db *gorm.DB
}

// NewMocTieuTienRepository 创建消费里程碑仓储实例
func NewMocTieuTienRepository(db *gorm.DB) interfaces.MocTieuTienRepository {
	return &mocTieuTienRepositoryImpl{db: db}
}

func (r *mocTieuTienRepositoryImpl) List(ctx context.Context) ([]entity.MocTieuTien, error) {
	var list []entity.MocTieuTien
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&list).Error; err != nil {
		return nil, fmt.Errorf("查询消费里程碑列表失败: %w", err)
	}
	return list, nil
}

func (r *mocTieuTienRepositoryImpl) GetByID(ctx context.Context, id int) (*entity.MocTieuTien, error) {
	var m entity.MocTieuTien
	if err := r.db.WithContext(ctx).First(&m, id).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *mocTieuTienRepositoryImpl) Create(ctx context.Context, m *entity.MocTieuTien) error {
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return fmt.Errorf("创建消费里程碑失败: %w", err)
	}
	return nil
}

func (r *mocTieuTienRepositoryImpl) Update(ctx context.Context, id int, updates map[string]interface{}) error {
	return updateByID(ctx, r.db, &entity.MocTieuTien{}, id, updates)
}

func (r *mocTieuTienRepositoryImpl) Delete(ctx context.Context, id int) error {
	return deleteByID(ctx, r.db, &entity.MocTieuTien{}, id)
}

type goiQuaRepositoryImpl struct {
	db *gorm.DB
}

// NewGoiQuaRepository 创建礼包仓储实例
func NewGoiQuaRepository(db *gorm.DB) interfaces.GoiQuaRepository {
	return &goiQuaRepositoryImpl{db: db}
}

func (r *goiQuaRepositoryImpl) GetByID(ctx context.Context, id int) (*entity.GoiQua, error) {
	var m entity.GoiQua
	if err := r.db.WithContext(ctx).First(&m, id).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *goiQuaRepositoryImpl) Update(ctx context.Context, id int, updates map[string]interface{}) error {
	return updateByID(ctx, r.db, &entity.GoiQua{}, id, updates)
}

func (r *goiQuaRepositoryImpl) Delete(ctx context.Context, id int) error {
	return deleteByID(ctx, r.db, &entity.GoiQua{}, id)
}
