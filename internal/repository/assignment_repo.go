package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/BukiOffor/kud-server/internal/model"
)

// AssignmentRepository 排位分配数据访问接口
type AssignmentRepository interface {
	BatchCreate(ctx context.Context, assignments []model.RosterAssignment) error
	Create(ctx context.Context, assignment *model.RosterAssignment) error
	GetByID(ctx context.Context, id string) (*model.RosterAssignment, error)
	// DeleteByRoster 删除某排位表的全部分配（支持幂等重激活）
	DeleteByRoster(ctx context.Context, rosterID string) error
	// ListByRoster 查询某排位表的分配，hall 非空时按场地过滤
	ListByRoster(ctx context.Context, rosterID string, hall *model.Hall) ([]model.RosterAssignment, error)
	// ListByUser 查询某用户的全部历史分配（按时间倒序）
	ListByUser(ctx context.Context, userID string) ([]model.RosterAssignment, error)
	// RecentHalls 查询用户在指定年度最近 limit 次被分配的场地
	RecentHalls(ctx context.Context, userID, year string, limit int) ([]model.Hall, error)
	UpdateHall(ctx context.Context, assignmentID string, hall model.Hall) error
}

type assignmentRepo struct {
	db *gorm.DB
}

// NewAssignmentRepo 创建 AssignmentRepository 实例
func NewAssignmentRepo(db *gorm.DB) AssignmentRepository {
	return &assignmentRepo{db: db}
}

func (r *assignmentRepo) BatchCreate(ctx context.Context, assignments []model.RosterAssignment) error {
	if len(assignments) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&assignments).Error
}

func (r *assignmentRepo) Create(ctx context.Context, assignment *model.RosterAssignment) error {
	return r.db.WithContext(ctx).Create(assignment).Error
}

func (r *assignmentRepo) GetByID(ctx context.Context, id string) (*model.RosterAssignment, error) {
	var assignment model.RosterAssignment
	err := r.db.WithContext(ctx).
		Preload("User").
		Where("assignment_id = ?", id).
		First(&assignment).Error
	if err != nil {
		return nil, err
	}
	return &assignment, nil
}

func (r *assignmentRepo) DeleteByRoster(ctx context.Context, rosterID string) error {
	return r.db.WithContext(ctx).
		Where("roster_id = ?", rosterID).
		Delete(&model.RosterAssignment{}).Error
}

func (r *assignmentRepo) ListByRoster(ctx context.Context, rosterID string, hall *model.Hall) ([]model.RosterAssignment, error) {
	query := r.db.WithContext(ctx).
		Preload("User").
		Where("roster_id = ?", rosterID)
	if hall != nil {
		query = query.Where("hall = ?", *hall)
	}

	var assignments []model.RosterAssignment
	err := query.Order("created_at ASC").Find(&assignments).Error
	return assignments, err
}

func (r *assignmentRepo) ListByUser(ctx context.Context, userID string) ([]model.RosterAssignment, error) {
	var assignments []model.RosterAssignment
	err := r.db.WithContext(ctx).
		Preload("Roster").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&assignments).Error
	return assignments, err
}

func (r *assignmentRepo) RecentHalls(ctx context.Context, userID, year string, limit int) ([]model.Hall, error) {
	var halls []model.Hall
	err := r.db.WithContext(ctx).
		Model(&model.RosterAssignment{}).
		Where("user_id = ? AND year = ?", userID, year).
		Order("created_at DESC").
		Limit(limit).
		Pluck("hall", &halls).Error
	return halls, err
}

func (r *assignmentRepo) UpdateHall(ctx context.Context, assignmentID string, hall model.Hall) error {
	return r.db.WithContext(ctx).
		Model(&model.RosterAssignment{}).
		Where("assignment_id = ?", assignmentID).
		Update("hall", hall).Error
}
