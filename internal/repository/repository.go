package repository

import (
	"context"

	"gorm.io/gorm"
)

// Repository 所有 Repository 的聚合入口
type Repository struct {
	User        UserRepository
	Roster      RosterRepository
	Assignment  AssignmentRepository
	ActivityLog ActivityLogRepository
	Tx          TxManager
}

// TxManager 事务边界抽象
// 回调中拿到的 Repository 绑定同一事务连接，回调返回错误则整体回滚
type TxManager interface {
	Transaction(ctx context.Context, fn func(repo *Repository) error) error
}

// NewRepository 创建 Repository 聚合
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{
		User:        NewUserRepo(db),
		Roster:      NewRosterRepo(db),
		Assignment:  NewAssignmentRepo(db),
		ActivityLog: NewActivityLogRepo(db),
		Tx:          &gormTxManager{db: db},
	}
}

type gormTxManager struct {
	db *gorm.DB
}

func (m *gormTxManager) Transaction(ctx context.Context, fn func(repo *Repository) error) error {
	return m.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(NewRepository(tx))
	})
}
