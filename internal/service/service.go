package service

import (
	"go.uber.org/zap"

	"github.com/BukiOffor/kud-server/config"
	"github.com/BukiOffor/kud-server/internal/repository"
	"github.com/BukiOffor/kud-server/pkg/jwt"
	"github.com/BukiOffor/kud-server/pkg/redis"
)

// Service 所有 Service 的聚合入口
type Service struct {
	Auth        AuthService
	User        UserService
	Roster      RosterService
	Export      ExportService
	ActivityLog ActivityLogService
}

// NewService 创建 Service 聚合
// rdb 可为 nil，此时认证模块的黑名单能力降级
func NewService(cfg *config.Config, repo *repository.Repository, jwtMgr *jwt.Manager, rdb *redis.Client, logger *zap.Logger) *Service {
	return &Service{
		Auth:        NewAuthService(repo, jwtMgr, rdb, &cfg.Auth, logger),
		User:        NewUserService(repo, logger),
		Roster:      NewRosterService(repo, cfg.Roster.HistoryLookback, logger),
		Export:      NewExportService(repo, logger),
		ActivityLog: NewActivityLogService(repo, logger),
	}
}
