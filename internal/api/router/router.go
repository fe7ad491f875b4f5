package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/BukiOffor/kud-server/config"
	"github.com/BukiOffor/kud-server/internal/api/handler"
	"github.com/BukiOffor/kud-server/internal/api/middleware"
	"github.com/BukiOffor/kud-server/pkg/jwt"
	"github.com/BukiOffor/kud-server/pkg/redis"
)

// Setup 初始化并返回 Gin 路由引擎
func Setup(cfg *config.Config, h *handler.Handler, jwtMgr *jwt.Manager, rdb *redis.Client, logger *zap.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()

	// ── 全局中间件 ──
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.CORS(cfg.Server.CORS.AllowOrigins))

	// ── 健康检查 ──
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// ── API v1 ──
	v1 := r.Group("/api/v1")
	{
		// 认证模块（无需认证）
		auth := v1.Group("/auth")
		{
			auth.POST("/login", h.Auth.Login)
			auth.POST("/refresh", h.Auth.Refresh)
		}

		// 需要认证的路由
		authorized := v1.Group("")
		authorized.Use(middleware.JWTAuth(jwtMgr, rdb))
		{
			// 认证模块（需要认证）
			authorized.POST("/auth/logout", h.Auth.Logout)
			authorized.GET("/auth/me", h.Auth.GetCurrentUser)

			// 用户模块
			users := authorized.Group("/users")
			{
				users.GET("/me/history", h.User.GetMyHistory)
				users.GET("", middleware.RoleAuth("admin"), h.User.ListUsers)
				users.POST("", middleware.RoleAuth("admin"), h.User.CreateUser)
				users.GET("/:id", middleware.RoleAuth("admin"), h.User.GetUser)
				users.PUT("/:id", middleware.RoleAuth("admin"), h.User.UpdateUser)
				users.PUT("/:id/active", middleware.RoleAuth("admin"), h.User.SetUserActive)
				users.DELETE("/:id", middleware.RoleAuth("admin"), h.User.DeleteUser)
				users.GET("/:id/history", middleware.RoleAuth("admin"), h.User.GetUserHistory)
			}

			// 排位模块
			rosters := authorized.Group("/rosters")
			{
				rosters.GET("", h.Roster.ListRosters)
				rosters.GET("/:id", h.Roster.GetRoster)
				rosters.GET("/:id/assignments", h.Roster.ListAssignments)
				rosters.GET("/:id/stats", h.Roster.GetStats)
				rosters.GET("/:id/stats/:hall", h.Roster.GetHallStats)
				rosters.POST("", middleware.RoleAuth("admin"), h.Roster.CreateRoster)
				rosters.PUT("/:id", middleware.RoleAuth("admin"), h.Roster.UpdateRoster)
				rosters.DELETE("/:id", middleware.RoleAuth("admin"), h.Roster.DeleteRoster)
				rosters.POST("/:id/activate", middleware.RoleAuth("admin"), h.Roster.ActivateRoster)
				rosters.POST("/:id/assignments", middleware.RoleAuth("admin"), h.Roster.AddUserToRoster)
				rosters.GET("/:id/export", middleware.RoleAuth("admin"), h.Roster.ExportRoster)
			}

			// 分配记录模块
			assignments := authorized.Group("/assignments")
			{
				assignments.PUT("/:id/hall", middleware.RoleAuth("admin"), h.Roster.UpdateAssignmentHall)
			}

			// 审计日志模块
			logs := authorized.Group("/activity-logs")
			{
				logs.GET("", middleware.RoleAuth("admin"), h.ActivityLog.ListLogs)
			}
		}
	}

	return r
}
