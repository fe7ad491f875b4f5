package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/BukiOffor/kud-server/internal/model"
)

// UserRepository 用户数据访问接口
type UserRepository interface {
	Create(ctx context.Context, user *model.User) error
	GetByID(ctx context.Context, id string) (*model.User, error)
	GetByRegNo(ctx context.Context, regNo string) (*model.User, error)
	List(ctx context.Context, offset, limit int) ([]model.User, int64, error)
	// ListActive 返回全部在册用户（候选池）
	ListActive(ctx context.Context) ([]model.User, error)
	Update(ctx context.Context, user *model.User) error
	// UpdateCurrentHall 写回用户当前场地冗余字段
	UpdateCurrentHall(ctx context.Context, userID string, hall model.Hall) error
	SetActive(ctx context.Context, userID string, active bool) error
	Delete(ctx context.Context, id string) error
}

type userRepo struct {
	db *gorm.DB
}

// NewUserRepo 创建 UserRepository 实例
func NewUserRepo(db *gorm.DB) UserRepository {
	return &userRepo{db: db}
}

func (r *userRepo) Create(ctx context.Context, user *model.User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

func (r *userRepo) GetByID(ctx context.Context, id string) (*model.User, error) {
	var user model.User
	err := r.db.WithContext(ctx).
		Where("user_id = ?", id).
		First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepo) GetByRegNo(ctx context.Context, regNo string) (*model.User, error) {
	var user model.User
	err := r.db.WithContext(ctx).
		Where("reg_no = ?", regNo).
		First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepo) List(ctx context.Context, offset, limit int) ([]model.User, int64, error) {
	var users []model.User
	var total int64

	if err := r.db.WithContext(ctx).Model(&model.User{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&users).Error
	return users, total, err
}

func (r *userRepo) ListActive(ctx context.Context) ([]model.User, error) {
	var users []model.User
	err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("created_at ASC").
		Find(&users).Error
	return users, err
}

func (r *userRepo) Update(ctx context.Context, user *model.User) error {
	return r.db.WithContext(ctx).
		Model(user).
		Where("user_id = ?", user.UserID).
		Updates(map[string]interface{}{
			"first_name": user.FirstName,
			"last_name":  user.LastName,
			"email":      user.Email,
			"role":       user.Role,
			"gender":     user.Gender,
			"updated_by": user.UpdatedBy,
		}).Error
}

func (r *userRepo) UpdateCurrentHall(ctx context.Context, userID string, hall model.Hall) error {
	return r.db.WithContext(ctx).
		Model(&model.User{}).
		Where("user_id = ?", userID).
		Update("current_hall", hall).Error
}

func (r *userRepo) SetActive(ctx context.Context, userID string, active bool) error {
	return r.db.WithContext(ctx).
		Model(&model.User{}).
		Where("user_id = ?", userID).
		Update("is_active", active).Error
}

func (r *userRepo) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).
		Where("user_id = ?", id).
		Delete(&model.User{}).Error
}
