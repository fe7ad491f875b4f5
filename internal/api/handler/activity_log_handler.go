package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/BukiOffor/kud-server/internal/dto"
	"github.com/BukiOffor/kud-server/internal/service"
	"github.com/BukiOffor/kud-server/pkg/response"
)

// ActivityLogHandler 审计日志模块 HTTP 处理器
type ActivityLogHandler struct {
	logSvc service.ActivityLogService
}

// NewActivityLogHandler 创建 ActivityLogHandler
func NewActivityLogHandler(logSvc service.ActivityLogService) *ActivityLogHandler {
	return &ActivityLogHandler{logSvc: logSvc}
}

// ListLogs 审计日志列表
// GET /api/v1/activity-logs
func (h *ActivityLogHandler) ListLogs(c *gin.Context) {
	var req dto.ListActivityLogsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, 14001, "参数校验失败")
		return
	}

	logs, total, err := h.logSvc.List(c.Request.Context(), &req)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OKPage(c, logs, total, req.GetPage(), req.GetPageSize())
}
