package handler

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"

	"github.com/BukiOffor/kud-server/internal/dto"
	"github.com/BukiOffor/kud-server/internal/service"
	pkgerrors "github.com/BukiOffor/kud-server/pkg/errors"
	"github.com/BukiOffor/kud-server/pkg/response"
)

// RosterHandler 排位模块 HTTP 处理器
type RosterHandler struct {
	rosterSvc service.RosterService
	exportSvc service.ExportService
}

// NewRosterHandler 创建 RosterHandler
func NewRosterHandler(rosterSvc service.RosterService, exportSvc service.ExportService) *RosterHandler {
	return &RosterHandler{rosterSvc: rosterSvc, exportSvc: exportSvc}
}

// CreateRoster 创建排位表
// POST /api/v1/rosters
func (h *RosterHandler) CreateRoster(c *gin.Context) {
	var req dto.CreateRosterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 12001, "参数校验失败")
		return
	}

	callerID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	roster, err := h.rosterSvc.Create(c.Request.Context(), &req, callerID)
	if err != nil {
		h.handleRosterError(c, err)
		return
	}

	response.Created(c, roster)
}

// ListRosters 排位表列表
// GET /api/v1/rosters
func (h *RosterHandler) ListRosters(c *gin.Context) {
	rosters, err := h.rosterSvc.List(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, gin.H{"list": rosters})
}

// GetRoster 获取排位表
// GET /api/v1/rosters/:id
func (h *RosterHandler) GetRoster(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 12001, "排位表ID不能为空")
		return
	}

	roster, err := h.rosterSvc.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleRosterError(c, err)
		return
	}

	response.OK(c, roster)
}

// UpdateRoster 更新排位表
// PUT /api/v1/rosters/:id
func (h *RosterHandler) UpdateRoster(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 12001, "排位表ID不能为空")
		return
	}

	var req dto.UpdateRosterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 12001, "参数校验失败")
		return
	}

	callerID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	roster, err := h.rosterSvc.Update(c.Request.Context(), id, &req, callerID)
	if err != nil {
		h.handleRosterError(c, err)
		return
	}

	response.OK(c, roster)
}

// DeleteRoster 删除排位表
// DELETE /api/v1/rosters/:id
func (h *RosterHandler) DeleteRoster(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 12001, "排位表ID不能为空")
		return
	}

	callerID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	if err := h.rosterSvc.Delete(c.Request.Context(), id, callerID); err != nil {
		h.handleRosterError(c, err)
		return
	}

	response.OK(c, nil)
}

// ActivateRoster 激活排位表
// POST /api/v1/rosters/:id/activate
func (h *RosterHandler) ActivateRoster(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 12001, "排位表ID不能为空")
		return
	}

	callerID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	result, err := h.rosterSvc.Activate(c.Request.Context(), id, callerID)
	if err != nil {
		h.handleRosterError(c, err)
		return
	}

	response.OK(c, result)
}

// ListAssignments 查看分配明细
// GET /api/v1/rosters/:id/assignments?hall=main_hall
func (h *RosterHandler) ListAssignments(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 12001, "排位表ID不能为空")
		return
	}

	var hall *string
	if v := c.Query("hall"); v != "" {
		hall = &v
	}

	assignments, err := h.rosterSvc.Assignments(c.Request.Context(), id, hall)
	if err != nil {
		h.handleRosterError(c, err)
		return
	}

	response.OK(c, gin.H{"list": assignments})
}

// UpdateAssignmentHall 手动调整分配场地
// PUT /api/v1/assignments/:id/hall
func (h *RosterHandler) UpdateAssignmentHall(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 12001, "分配记录ID不能为空")
		return
	}

	var req dto.UpdateAssignmentHallRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 12001, "参数校验失败")
		return
	}

	callerID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	if err := h.rosterSvc.UpdateAssignmentHall(c.Request.Context(), id, &req, callerID); err != nil {
		h.handleRosterError(c, err)
		return
	}

	response.OK(c, nil)
}

// AddUserToRoster 手动追加用户到排位表
// POST /api/v1/rosters/:id/assignments
func (h *RosterHandler) AddUserToRoster(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 12001, "排位表ID不能为空")
		return
	}

	var req dto.AddUserToRosterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 12001, "参数校验失败")
		return
	}

	callerID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	if err := h.rosterSvc.AddUserToRoster(c.Request.Context(), id, &req, callerID); err != nil {
		h.handleRosterError(c, err)
		return
	}

	response.Created(c, nil)
}

// GetStats 全场地填充统计
// GET /api/v1/rosters/:id/stats
func (h *RosterHandler) GetStats(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 12001, "排位表ID不能为空")
		return
	}

	stats, err := h.rosterSvc.Stats(c.Request.Context(), id)
	if err != nil {
		h.handleRosterError(c, err)
		return
	}

	response.OK(c, gin.H{"list": stats})
}

// GetHallStats 单场地填充统计
// GET /api/v1/rosters/:id/stats/:hall
func (h *RosterHandler) GetHallStats(c *gin.Context) {
	id := c.Param("id")
	hall := c.Param("hall")
	if id == "" || hall == "" {
		response.BadRequest(c, 12001, "排位表ID与场地不能为空")
		return
	}

	stats, err := h.rosterSvc.StatsForHall(c.Request.Context(), id, hall)
	if err != nil {
		h.handleRosterError(c, err)
		return
	}

	response.OK(c, stats)
}

// ExportRoster 导出排位表分配明细
// GET /api/v1/rosters/:id/export?hall=main_hall
func (h *RosterHandler) ExportRoster(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 12001, "排位表ID不能为空")
		return
	}

	var hall *string
	if v := c.Query("hall"); v != "" {
		hall = &v
	}

	callerID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	buf, filename, err := h.exportSvc.ExportRoster(c.Request.Context(), id, hall, callerID)
	if err != nil {
		h.handleRosterError(c, err)
		return
	}

	c.Header("Content-Disposition",
		fmt.Sprintf(`attachment; filename*=UTF-8''%s`, url.PathEscape(filename)))
	c.Data(http.StatusOK,
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		buf.Bytes())
}

// handleRosterError 统一处理排位模块业务错误
func (h *RosterHandler) handleRosterError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrRosterNotFound):
		response.NotFound(c, 12101, "排位表不存在")
	case errors.Is(err, service.ErrRosterAlreadyActive):
		response.Conflict(c, 12102, "排位表已处于激活状态")
	case errors.Is(err, service.ErrRosterEnded):
		response.BadRequest(c, 12103, "排位表结束日期已过")
	case errors.Is(err, service.ErrRosterNotStarted):
		response.BadRequest(c, 12104, "排位表开始日期尚未到来")
	case errors.Is(err, service.ErrRosterDateInvalid):
		response.BadRequest(c, 12105, "日期格式无效或结束日期早于开始日期")
	case errors.Is(err, service.ErrRosterQuotaInvalid):
		response.BadRequest(c, 12106, "场地配额非法")
	case errors.Is(err, service.ErrRosterNoCapacity):
		response.BadRequest(c, 12107, "排位表未配置任何可用席位")
	case errors.Is(err, service.ErrInvalidHall):
		response.BadRequest(c, 12108, "非法场地")
	case errors.Is(err, service.ErrAssignmentNotFound):
		response.NotFound(c, 12109, "分配记录不存在")
	case errors.Is(err, service.ErrNoEligibleUsers):
		response.BadRequest(c, 12110, "无在册候选人可供排位")
	case errors.Is(err, service.ErrExportNoAssignments):
		response.BadRequest(c, 12111, "该排位表暂无分配记录")
	case errors.Is(err, pkgerrors.ErrOptimisticLock):
		response.Conflict(c, 12112, "排位表已被他人修改，请刷新后重试")
	case errors.Is(err, service.ErrExportGenerateFail):
		response.InternalError(c)
	default:
		response.InternalError(c)
	}
}
