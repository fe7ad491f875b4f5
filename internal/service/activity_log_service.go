package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/BukiOffor/kud-server/internal/dto"
	"github.com/BukiOffor/kud-server/internal/repository"
)

// ActivityLogService 审计日志业务接口（只读查询，写入由各业务模块尽力而为触发）
type ActivityLogService interface {
	List(ctx context.Context, req *dto.ListActivityLogsRequest) ([]dto.ActivityLogResponse, int64, error)
}

type activityLogService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewActivityLogService 创建 ActivityLogService 实例
func NewActivityLogService(repo *repository.Repository, logger *zap.Logger) ActivityLogService {
	return &activityLogService{repo: repo, logger: logger}
}

func (s *activityLogService) List(ctx context.Context, req *dto.ListActivityLogsRequest) ([]dto.ActivityLogResponse, int64, error) {
	logs, total, err := s.repo.ActivityLog.List(ctx, req.GetOffset(), req.GetPageSize())
	if err != nil {
		s.logger.Error("查询审计日志失败", zap.Error(err))
		return nil, 0, err
	}

	result := make([]dto.ActivityLogResponse, 0, len(logs))
	for i := range logs {
		l := &logs[i]
		result = append(result, dto.ActivityLogResponse{
			ID:         l.LogID,
			Action:     l.Action,
			ActorID:    l.ActorID,
			TargetID:   l.TargetID,
			TargetType: l.TargetType,
			Details:    l.Details,
			CreatedAt:  l.CreatedAt.Format(time.RFC3339),
		})
	}
	return result, total, nil
}
