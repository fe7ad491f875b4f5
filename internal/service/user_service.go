package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/BukiOffor/kud-server/internal/dto"
	"github.com/BukiOffor/kud-server/internal/model"
	"github.com/BukiOffor/kud-server/internal/repository"
)

// ── 用户模块业务错误 ──

var (
	ErrUserNotFound    = errors.New("用户不存在")
	ErrRegNoExists     = errors.New("注册号已存在")
	ErrInvalidRole     = errors.New("非法角色")
	ErrInvalidGender   = errors.New("非法性别取值")
	ErrPasswordTooWeak = errors.New("密码长度不足")
)

// UserService 用户业务接口
type UserService interface {
	Create(ctx context.Context, req *dto.CreateUserRequest, callerID string) (*dto.UserResponse, error)
	GetByID(ctx context.Context, id string) (*dto.UserResponse, error)
	List(ctx context.Context, req *dto.ListUsersRequest) ([]dto.UserResponse, int64, error)
	Update(ctx context.Context, id string, req *dto.UpdateUserRequest, callerID string) (*dto.UserResponse, error)
	SetActive(ctx context.Context, id string, active bool, callerID string) error
	Delete(ctx context.Context, id, callerID string) error
}

type userService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewUserService 创建 UserService 实例
func NewUserService(repo *repository.Repository, logger *zap.Logger) UserService {
	return &userService{repo: repo, logger: logger}
}

func (s *userService) Create(ctx context.Context, req *dto.CreateUserRequest, callerID string) (*dto.UserResponse, error) {
	if len(req.Password) < 8 {
		return nil, ErrPasswordTooWeak
	}

	role := req.Role
	if role == "" {
		role = "member"
	}
	if role != "admin" && role != "member" {
		return nil, ErrInvalidRole
	}

	gender, err := validateGender(req.Gender)
	if err != nil {
		return nil, err
	}

	if _, err := s.repo.User.GetByRegNo(ctx, req.RegNo); err == nil {
		return nil, ErrRegNoExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		RegNo:        req.RegNo,
		Email:        req.Email,
		PasswordHash: string(hash),
		Role:         role,
		Gender:       gender,
		IsActive:     true,
	}
	user.CreatedBy = &callerID
	user.UpdatedBy = &callerID

	if err := s.repo.User.Create(ctx, user); err != nil {
		s.logger.Error("创建用户失败", zap.Error(err))
		return nil, err
	}

	resp := toUserResponse(user)
	return &resp, nil
}

func (s *userService) GetByID(ctx context.Context, id string) (*dto.UserResponse, error) {
	user, err := s.repo.User.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	resp := toUserResponse(user)
	return &resp, nil
}

func (s *userService) List(ctx context.Context, req *dto.ListUsersRequest) ([]dto.UserResponse, int64, error) {
	users, total, err := s.repo.User.List(ctx, req.GetOffset(), req.GetPageSize())
	if err != nil {
		s.logger.Error("查询用户列表失败", zap.Error(err))
		return nil, 0, err
	}
	result := make([]dto.UserResponse, 0, len(users))
	for i := range users {
		result = append(result, toUserResponse(&users[i]))
	}
	return result, total, nil
}

func (s *userService) Update(ctx context.Context, id string, req *dto.UpdateUserRequest, callerID string) (*dto.UserResponse, error) {
	user, err := s.repo.User.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	if req.FirstName != nil {
		user.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		user.LastName = *req.LastName
	}
	if req.Email != nil {
		user.Email = *req.Email
	}
	if req.Role != nil {
		if *req.Role != "admin" && *req.Role != "member" {
			return nil, ErrInvalidRole
		}
		user.Role = *req.Role
	}
	if req.Gender != nil {
		gender, err := validateGender(req.Gender)
		if err != nil {
			return nil, err
		}
		user.Gender = gender
	}
	user.UpdatedBy = &callerID

	if err := s.repo.User.Update(ctx, user); err != nil {
		s.logger.Error("更新用户失败", zap.Error(err))
		return nil, err
	}

	resp := toUserResponse(user)
	return &resp, nil
}

func (s *userService) SetActive(ctx context.Context, id string, active bool, callerID string) error {
	if _, err := s.repo.User.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		return err
	}
	if err := s.repo.User.SetActive(ctx, id, active); err != nil {
		s.logger.Error("更新用户在册状态失败", zap.Error(err))
		return err
	}
	return nil
}

func (s *userService) Delete(ctx context.Context, id, callerID string) error {
	if _, err := s.repo.User.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		return err
	}
	if err := s.repo.User.Delete(ctx, id); err != nil {
		s.logger.Error("删除用户失败", zap.Error(err))
		return err
	}
	return nil
}

// validateGender 校验并归一化性别取值，空指针表示未填写
func validateGender(gender *string) (*string, error) {
	if gender == nil {
		return nil, nil
	}
	g := strings.ToLower(*gender)
	if g != model.GenderMale && g != model.GenderFemale {
		return nil, ErrInvalidGender
	}
	return &g, nil
}

// toUserResponse 转换用户为响应
func toUserResponse(user *model.User) dto.UserResponse {
	var hall *string
	if user.CurrentHall != nil {
		h := string(*user.CurrentHall)
		hall = &h
	}
	return dto.UserResponse{
		ID:          user.UserID,
		FullName:    user.FullName(),
		FirstName:   user.FirstName,
		LastName:    user.LastName,
		RegNo:       user.RegNo,
		Email:       user.Email,
		Role:        user.Role,
		Gender:      user.Gender,
		IsActive:    user.IsActive,
		CurrentHall: hall,
		CreatedAt:   user.CreatedAt.Format(time.RFC3339),
	}
}
