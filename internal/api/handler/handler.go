package handler

import "github.com/BukiOffor/kud-server/internal/service"

// Handler 所有 Handler 的聚合入口
type Handler struct {
	Auth        *AuthHandler
	User        *UserHandler
	Roster      *RosterHandler
	ActivityLog *ActivityLogHandler
}

// NewHandler 创建 Handler 聚合
func NewHandler(svc *service.Service) *Handler {
	return &Handler{
		Auth:        NewAuthHandler(svc.Auth, svc.User),
		User:        NewUserHandler(svc.User, svc.Roster),
		Roster:      NewRosterHandler(svc.Roster, svc.Export),
		ActivityLog: NewActivityLogHandler(svc.ActivityLog),
	}
}
