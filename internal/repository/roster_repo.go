package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/BukiOffor/kud-server/internal/model"
	pkgerrors "github.com/BukiOffor/kud-server/pkg/errors"
)

// RosterRepository 排位表数据访问接口
type RosterRepository interface {
	Create(ctx context.Context, roster *model.Roster) error
	GetByID(ctx context.Context, id string) (*model.Roster, error)
	// GetByIDForUpdate 行锁读取，用于激活事务内串行化同一排位表的并发激活
	GetByIDForUpdate(ctx context.Context, id string) (*model.Roster, error)
	// FindActive 查找当前激活的排位表，不存在时返回 (nil, nil)
	FindActive(ctx context.Context) (*model.Roster, error)
	List(ctx context.Context) ([]model.Roster, error)
	Update(ctx context.Context, roster *model.Roster) error
	// ReplaceQuotas 整体替换场地配额
	ReplaceQuotas(ctx context.Context, rosterID string, quotas []model.RosterQuota) error
	// SetActive 翻转激活标记，仅允许在激活事务内调用
	SetActive(ctx context.Context, rosterID string, active bool) error
	Delete(ctx context.Context, id string) error
}

type rosterRepo struct {
	db *gorm.DB
}

// NewRosterRepo 创建 RosterRepository 实例
func NewRosterRepo(db *gorm.DB) RosterRepository {
	return &rosterRepo{db: db}
}

func (r *rosterRepo) Create(ctx context.Context, roster *model.Roster) error {
	return r.db.WithContext(ctx).Create(roster).Error
}

func (r *rosterRepo) GetByID(ctx context.Context, id string) (*model.Roster, error) {
	var roster model.Roster
	err := r.db.WithContext(ctx).
		Preload("Quotas").
		Where("roster_id = ?", id).
		First(&roster).Error
	if err != nil {
		return nil, err
	}
	return &roster, nil
}

func (r *rosterRepo) GetByIDForUpdate(ctx context.Context, id string) (*model.Roster, error) {
	var roster model.Roster
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("roster_id = ?", id).
		First(&roster).Error
	if err != nil {
		return nil, err
	}
	// Preload 与行锁不兼容，配额单独查询
	err = r.db.WithContext(ctx).
		Where("roster_id = ?", id).
		Find(&roster.Quotas).Error
	if err != nil {
		return nil, err
	}
	return &roster, nil
}

func (r *rosterRepo) FindActive(ctx context.Context) (*model.Roster, error) {
	var roster model.Roster
	err := r.db.WithContext(ctx).
		Preload("Quotas").
		Where("is_active = ?", true).
		First(&roster).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &roster, nil
}

func (r *rosterRepo) List(ctx context.Context) ([]model.Roster, error) {
	var rosters []model.Roster
	err := r.db.WithContext(ctx).
		Preload("Quotas").
		Order("created_at DESC").
		Find(&rosters).Error
	return rosters, err
}

func (r *rosterRepo) Update(ctx context.Context, roster *model.Roster) error {
	oldVersion := roster.Version
	result := r.db.WithContext(ctx).
		Model(roster).
		Where("roster_id = ? AND version = ?", roster.RosterID, oldVersion).
		Updates(map[string]interface{}{
			"name":             roster.Name,
			"year":             roster.Year,
			"start_date":       roster.StartDate,
			"end_date":         roster.EndDate,
			"use_gender_quota": roster.UseGenderQuota,
			"allow_overflow":   roster.AllowOverflow,
			"updated_by":       roster.UpdatedBy,
			"version":          oldVersion + 1,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return pkgerrors.ErrOptimisticLock
	}
	roster.Version = oldVersion + 1
	return nil
}

func (r *rosterRepo) ReplaceQuotas(ctx context.Context, rosterID string, quotas []model.RosterQuota) error {
	if err := r.db.WithContext(ctx).
		Where("roster_id = ?", rosterID).
		Delete(&model.RosterQuota{}).Error; err != nil {
		return err
	}
	if len(quotas) == 0 {
		return nil
	}
	for i := range quotas {
		quotas[i].RosterID = rosterID
	}
	return r.db.WithContext(ctx).Create(&quotas).Error
}

func (r *rosterRepo) SetActive(ctx context.Context, rosterID string, active bool) error {
	return r.db.WithContext(ctx).
		Model(&model.Roster{}).
		Where("roster_id = ?", rosterID).
		Update("is_active", active).Error
}

func (r *rosterRepo) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).
		Where("roster_id = ?", id).
		Delete(&model.Roster{}).Error
}
