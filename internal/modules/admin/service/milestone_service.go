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

// MilestoneService 里程碑服务（充值 / 在线时长 / 消费）与礼包服务
type MilestoneService struct {
	mocNap      interfaces.MocNapRepository
	mocOnline   interfaces.MocOnlineRepository
	mocTieuTien interfaces.MocTieuTienRepository
	goiQua      interfaces.GoiQuaRepository
}

// NewMilestoneService 创建里程碑服务
func NewMilestoneService(db *gorm.DB) *MilestoneService {
	return &MilestoneService{
		mocNap:      impl.NewMocNapRepository(db),
		mocOnline:   impl.NewMocOnlineRepository(db),
		mocTieuTien: impl.NewMocTieuTienRepository(db),
		goiQua:      impl.NewGoiQuaRepository(db),
	}
}

func milestoneNotFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return xerrors.FromCode(xerrors.CodeMilestoneNotFound)
	}
	return err
}

func detailOrEmpty(detail *string) string {
	if detail != nil {
		return *detail
	}
	return "[]"
}

// ==================== 充值里程碑 ====================

// GetMocNaps 获取充值里程碑列表
func (s *MilestoneService) GetMocNaps(ctx context.Context) ([]entity.MocNap, error) {
	return s.mocNap.List(ctx)
}

// GetMocNapByID 根据ID获取充值里程碑
func (s *MilestoneService) GetMocNapByID(ctx context.Context, id int) (*entity.MocNap, error) {
	m, err := s.mocNap.GetByID(ctx, id)
	if err != nil {
		return nil, milestoneNotFound(err)
	}
	return m, nil
}

// CreateMocNap 创建充值里程碑
func (s *MilestoneService) CreateMocNap(ctx context.Context, req *dto.CreateMocNapRequest) (*entity.MocNap, error) {
	m := &entity.MocNap{
		Info:           req.Info,
		RequiredAmount: req.RequiredAmount,
		Detail:         detailOrEmpty(req.Detail),
	}
	if err := s.mocNap.Create(ctx, m); err != nil {
		return nil, err
	}
	publishChange(ctx, notify.SubjectMilestoneChanged, "moc_nap", "created", strconv.Itoa(m.ID))
	return m, nil
}

// UpdateMocNap 部分更新充值里程碑
func (s *MilestoneService) UpdateMocNap(ctx context.Context, id int, req *dto.UpdateMilestoneRequest) (*entity.MocNap, error) {
	updates := req.Updates("required_amount")
	if len(updates) > 0 {
		if err := s.mocNap.Update(ctx, id, updates); err != nil {
			return nil, milestoneNotFound(err)
		}
	}
	publishChange(ctx, notify.SubjectMilestoneChanged, "moc_nap", "updated", strconv.Itoa(id))
	return s.GetMocNapByID(ctx, id)
}

// DeleteMocNap 删除充值里程碑
func (s *MilestoneService) DeleteMocNap(ctx context.Context, id int) error {
	if err := s.mocNap.Delete(ctx, id); err != nil {
		return milestoneNotFound(err)
	}
	publishChange(ctx, notify.SubjectMilestoneChanged, "moc_nap", "deleted", strconv.Itoa(id))
	return nil
}

// ==================== 在线时长里程碑 ====================

// GetMocOnlines 获取在线时长里程碑列表
func (s *MilestoneService) GetMocOnlines(ctx context.Context) ([]entity.MocOnline, error) {
	return s.mocOnline.List(ctx)
}

// GetMocOnlineByID 根据ID获取在线时长里程碑
func (s *MilestoneService) GetMocOnlineByID(ctx context.Context, id int) (*entity.MocOnline, error) {
	m, err := s.mocOnline.GetByID(ctx, id)
	if err != nil {
		return nil, milestoneNotFound(err)
	}
	return m, nil
}

// CreateMocOnline 创建在线时长里程碑
func (s *MilestoneService) CreateMocOnline(ctx context.Context, req *dto.CreateMocOnlineRequest) (*entity.MocOnline, error) {
	m := &entity.MocOnline{
		Info:           req.Info,
		RequiredOnline: req.RequiredOnline,
		Detail:         detailOrEmpty(req.Detail),
	}
	if err := s.mocOnline.Create(ctx, m); err != nil {
		return nil, err
	}
	publishChange(ctx, notify.SubjectMilestoneChanged, "moc_online", "created", strconv.Itoa(m.ID))
	return m, nil
}

// UpdateMocOnline 部分更新在线时长里程碑
func (s *MilestoneService) UpdateMocOnline(ctx context.Context, id int, req *dto.UpdateMilestoneRequest) (*entity.MocOnline, error) {
	updates := req.Updates("required_online")
	if len(updates) > 0 {
		if err := s.mocOnline.Update(ctx, id, updates); err != nil {
			return nil, milestoneNotFound(err)
		}
	}
	publishChange(ctx, notify.SubjectMilestoneChanged, "moc_online", "updated", strconv.Itoa(id))
	return s.GetMocOnlineByID(ctx, id)
}

// DeleteMocOnline 删除在线时长里程碑
func (s *MilestoneService) DeleteMocOnline(ctx context.Context, id int) error {
	if err := s.mocOnline.Delete(ctx, id); err != nil {
		return milestoneNotFound(err)
	}
	publishChange(ctx, notify.SubjectMilestoneChanged, "moc_online", "deleted", strconv.Itoa(id))
	return nil
}

// ==================== 消费里程碑 ====================

// GetMocTieuTiens 获取消费里程碑列表
func (s *MilestoneService) GetMocTieuTiens(ctx context.Context) ([]entity.MocTieuTien, error) {
	return s.mocTieuTien.List(ctx)
}

// GetMocTieuTienByID 根据ID获取消费里程碑
func (s *MilestoneService) GetMocTieuTienByID(ctx context.Context, id int) (*entity.MocTieuTien, error) {
	m, err := s.mocTieuTien.GetByID(ctx, id)
	if err != nil {
		return nil, milestoneNotFound(err)
	}
	return m, nil
}

// CreateMocTieuTien 创建消费里程碑
func (s *MilestoneService) CreateMocTieuTien(ctx context.Context, req *dto.CreateMocTieuTienRequest) (*entity.MocTieuTien, error) {
	m := &entity.MocTieuTien{
		Info:          req.Info,
		RequiredSpend: req.RequiredSpend,
		Detail:        detailOrEmpty(req.Detail),
	}
	if err := s.mocTieuTien.Create(ctx, m); err != nil {
		return nil, err
	}
	publishChange(ctx, notify.SubjectMilestoneChanged, "moc_tieutien", "created", strconv.Itoa(m.ID))
	return m, nil
}

// UpdateMocTieuTien 部分更新消费里程碑
func (s *MilestoneService) UpdateMocTieuTien(ctx context.Context, id int, req *dto.UpdateMilestoneRequest) (*entity.MocTieuTien, error) {
	updates := req.Updates("required_spend")
	if len(updates) > 0 {
		if err := s.mocTieuTien.Update(ctx, id, updates); err != nil {
			return nil, milestoneNotFound(err)
		}
	}
	publishChange(ctx, notify.SubjectMilestoneChanged, "moc_tieutien", "updated", strconv.Itoa(id))
	return s.GetMocTieuTienByID(ctx, id)
}

// DeleteMocTieuTien 删除消费里程碑
func (s *MilestoneService) DeleteMocTieuTien(ctx context.Context, id int) error {
	if err := s.mocTieuTien.Delete(ctx, id); err != nil {
		return milestoneNotFound(err)
	}
	publishChange(ctx, notify.SubjectMilestoneChanged, "moc_tieutien", "deleted", strconv.Itoa(id))
	return nil
}

// ==================== 礼包 ====================
// 礼包的集合查询/创建已停用（线上运营决定），只保留单条更新与删除。

// UpdateGoiQua 部分更新礼包
func (s *MilestoneService) UpdateGoiQua(ctx context.Context, id int, req *dto.UpdateGoiQuaRequest) (*entity.GoiQua, error) {
	updates := req.Updates()
	if len(updates) > 0 {
		if err := s.goiQua.Update(ctx, id, updates); err != nil {
			return nil, milestoneNotFound(err)
		}
	}
	publishChange(ctx, notify.SubjectMilestoneChanged, "goi_qua", "updated", strconv.Itoa(id))
	g, err := s.goiQua.GetByID(ctx, id)
	if err != nil {
		return nil, milestoneNotFound(err)
	}
	return g, nil
}

// DeleteGoiQua 删除礼包
func (s *MilestoneService) DeleteGoiQua(ctx context.Context, id int) error {
	if err := s.goiQua.Delete(ctx, id); err != nil {
		return milestoneNotFound(err)
	}
	publishChange(ctx, notify.SubjectMilestoneChanged, "goi_qua", "deleted", strconv.Itoa(id))
	return nil
}
