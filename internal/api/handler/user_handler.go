package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/BukiOffor/kud-server/internal/dto"
	"github.com/BukiOffor/kud-server/internal/service"
	"github.com/BukiOffor/kud-server/pkg/response"
)

// UserHandler 用户模块 HTTP 处理器
type UserHandler struct {
	userSvc   service.UserService
	rosterSvc service.RosterService
}

// NewUserHandler 创建 UserHandler
func NewUserHandler(userSvc service.UserService, rosterSvc service.RosterService) *UserHandler {
	return &UserHandler{userSvc: userSvc, rosterSvc: rosterSvc}
}

// CreateUser 创建用户
// POST /api/v1/users
func (h *UserHandler) CreateUser(c *gin.Context) {
	var req dto.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 11001, "参数校验失败")
		return
	}

	callerID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	user, err := h.userSvc.Create(c.Request.Context(), &req, callerID)
	if err != nil {
		h.handleUserError(c, err)
		return
	}

	response.Created(c, user)
}

// ListUsers 用户列表
// GET /api/v1/users
func (h *UserHandler) ListUsers(c *gin.Context) {
	var req dto.ListUsersRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, 11001, "参数校验失败")
		return
	}

	users, total, err := h.userSvc.List(c.Request.Context(), &req)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OKPage(c, users, total, req.GetPage(), req.GetPageSize())
}

// GetUser 获取用户
// GET /api/v1/users/:id
func (h *UserHandler) GetUser(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 11001, "用户ID不能为空")
		return
	}

	user, err := h.userSvc.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleUserError(c, err)
		return
	}

	response.OK(c, user)
}

// UpdateUser 更新用户
// PUT /api/v1/users/:id
func (h *UserHandler) UpdateUser(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 11001, "用户ID不能为空")
		return
	}

	var req dto.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 11001, "参数校验失败")
		return
	}

	callerID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	user, err := h.userSvc.Update(c.Request.Context(), id, &req, callerID)
	if err != nil {
		h.handleUserError(c, err)
		return
	}

	response.OK(c, user)
}

// SetUserActive 更新用户在册状态
// PUT /api/v1/users/:id/active
func (h *UserHandler) SetUserActive(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 11001, "用户ID不能为空")
		return
	}

	var req struct {
		IsActive *bool `json:"is_active" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 11001, "参数校验失败")
		return
	}

	callerID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	if err := h.userSvc.SetActive(c.Request.Context(), id, *req.IsActive, callerID); err != nil {
		h.handleUserError(c, err)
		return
	}

	response.OK(c, nil)
}

// DeleteUser 删除用户
// DELETE /api/v1/users/:id
func (h *UserHandler) DeleteUser(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 11001, "用户ID不能为空")
		return
	}

	callerID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	if err := h.userSvc.Delete(c.Request.Context(), id, callerID); err != nil {
		h.handleUserError(c, err)
		return
	}

	response.OK(c, nil)
}

// GetUserHistory 用户历史分配
// GET /api/v1/users/:id/history
func (h *UserHandler) GetUserHistory(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 11001, "用户ID不能为空")
		return
	}

	history, err := h.rosterSvc.UserHistory(c.Request.Context(), id)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, gin.H{"list": history})
}

// GetMyHistory 当前用户历史分配
// GET /api/v1/users/me/history
func (h *UserHandler) GetMyHistory(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	history, err := h.rosterSvc.UserHistory(c.Request.Context(), userID)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, gin.H{"list": history})
}

// handleUserError 统一处理用户模块业务错误
func (h *UserHandler) handleUserError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrUserNotFound):
		response.NotFound(c, 11101, "用户不存在")
	case errors.Is(err, service.ErrRegNoExists):
		response.Conflict(c, 11102, "注册号已存在")
	case errors.Is(err, service.ErrInvalidRole):
		response.BadRequest(c, 11103, "非法角色")
	case errors.Is(err, service.ErrInvalidGender):
		response.BadRequest(c, 11104, "非法性别取值")
	case errors.Is(err, service.ErrPasswordTooWeak):
		response.BadRequest(c, 11105, "密码长度不足")
	default:
		response.InternalError(c)
	}
}
