package model

import "time"

// 审计动作类型
const (
	ActionRosterCreated     = "roster_created"
	ActionRosterUpdated     = "roster_updated"
	ActionRosterDeleted     = "roster_deleted"
	ActionRosterActivated   = "roster_activated"
	ActionRosterExported    = "roster_exported"
	ActionUserHallUpdated   = "user_hall_updated"
	ActionUserAddedToRoster = "user_added_to_roster"
)

// ActivityLog 操作审计日志 — 对应 activity_logs（纯追加，尽力而为写入）
type ActivityLog struct {
	LogID      string    `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"log_id"`
	Action     string    `gorm:"type:varchar(50);not null;index"                json:"action"`
	ActorID    string    `gorm:"type:uuid;not null"                             json:"actor_id"`
	TargetID   *string   `gorm:"type:uuid"                                      json:"target_id,omitempty"`
	TargetType *string   `gorm:"type:varchar(50)"                               json:"target_type,omitempty"`
	Details    string    `gorm:"type:varchar(500)"                              json:"details,omitempty"`
	CreatedAt  time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"             json:"created_at"`
}

// TableName 指定表名
func (ActivityLog) TableName() string { return "activity_logs" }
