package model

import "time"

// Hall 固定场地枚举（不落库为独立表，作为封闭字符串枚举使用）
type Hall string

const (
	HallMainHall Hall = "main_hall"
	HallHallOne  Hall = "hall_one"
	HallGallery  Hall = "gallery"
	HallBasement Hall = "basement"
	HallOutside  Hall = "outside"
)

// AllHalls 返回全部场地（固定顺序）
func AllHalls() []Hall {
	return []Hall{HallMainHall, HallHallOne, HallGallery, HallBasement, HallOutside}
}

// Valid 校验是否为合法场地
func (h Hall) Valid() bool {
	switch h {
	case HallMainHall, HallHallOne, HallGallery, HallBasement, HallOutside:
		return true
	}
	return false
}

// Roster 排位表 — 对应 rosters
type Roster struct {
	RosterID       string    `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"roster_id"`
	Name           string    `gorm:"type:varchar(100);not null"                     json:"name"`
	Year           string    `gorm:"type:varchar(20);not null"                      json:"year"` // 历史回溯的年度标签
	StartDate      time.Time `gorm:"type:date;not null"                             json:"start_date"`
	EndDate        time.Time `gorm:"type:date;not null"                             json:"end_date"`
	IsActive       bool      `gorm:"not null;default:false"                         json:"is_active"`
	UseGenderQuota bool      `gorm:"not null;default:false"                         json:"use_gender_quota"`
	AllowOverflow  bool      `gorm:"not null;default:true"                          json:"allow_overflow"` // 席位耗尽时是否允许超额兜底
	VersionedModel

	// 关联
	Quotas []RosterQuota `gorm:"foreignKey:RosterID" json:"quotas,omitempty"`
}

// TableName 指定表名
func (Roster) TableName() string { return "rosters" }

// TotalSeats 全部场地的总席位数
func (r *Roster) TotalSeats() int {
	total := 0
	for _, q := range r.Quotas {
		total += q.TotalSeats
	}
	return total
}

// QuotaFor 查找指定场地的配额，未配置时返回 nil
func (r *Roster) QuotaFor(hall Hall) *RosterQuota {
	for i := range r.Quotas {
		if r.Quotas[i].Hall == hall {
			return &r.Quotas[i]
		}
	}
	return nil
}

// RosterQuota 排位表场地配额 — 对应 roster_quotas
// MaleSeats/FemaleSeats 为可选的性别子配额，仅在 Roster.UseGenderQuota 时生效
type RosterQuota struct {
	QuotaID     string `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"quota_id"`
	RosterID    string `gorm:"type:uuid;not null;index"                       json:"roster_id"`
	Hall        Hall   `gorm:"type:varchar(20);not null"                      json:"hall"`
	TotalSeats  int    `gorm:"not null;default:0"                             json:"total_seats"`
	MaleSeats   *int   `json:"male_seats,omitempty"`
	FemaleSeats *int   `json:"female_seats,omitempty"`
}

// TableName 指定表名
func (RosterQuota) TableName() string { return "roster_quotas" }
