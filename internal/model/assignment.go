package model

import "time"

// RosterAssignment 排位分配记录 — 对应 roster_assignments
// 每次激活整表重建（先删后插），year 从所属排位表冗余复制以加速历史回溯查询
type RosterAssignment struct {
	AssignmentID string    `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"assignment_id"`
	RosterID     string    `gorm:"type:uuid;not null;index"                       json:"roster_id"`
	UserID       string    `gorm:"type:uuid;not null;index"                       json:"user_id"`
	Hall         Hall      `gorm:"type:varchar(20);not null"                      json:"hall"`
	Year         string    `gorm:"type:varchar(20);not null;index"                json:"year"`
	CreatedAt    time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"             json:"created_at"`

	// 关联
	User   *User   `gorm:"foreignKey:UserID;references:UserID"       json:"user,omitempty"`
	Roster *Roster `gorm:"foreignKey:RosterID;references:RosterID"   json:"roster,omitempty"`
}

// TableName 指定表名
func (RosterAssignment) TableName() string { return "roster_assignments" }
