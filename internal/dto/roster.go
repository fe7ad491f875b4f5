package dto

// HallQuotaRequest 单个场地配额
type HallQuotaRequest struct {
	Hall        string `json:"hall" binding:"required"`
	TotalSeats  int    `json:"total_seats"`
	MaleSeats   *int   `json:"male_seats,omitempty"`
	FemaleSeats *int   `json:"female_seats,omitempty"`
}

// CreateRosterRequest 创建排位表请求
type CreateRosterRequest struct {
	Name           string             `json:"name" binding:"required"`
	Year           string             `json:"year" binding:"required"`
	StartDate      string             `json:"start_date" binding:"required"` // YYYY-MM-DD
	EndDate        string             `json:"end_date" binding:"required"`   // YYYY-MM-DD
	UseGenderQuota bool               `json:"use_gender_quota"`
	AllowOverflow  *bool              `json:"allow_overflow,omitempty"` // 缺省 true
	Quotas         []HallQuotaRequest `json:"quotas" binding:"required"`
}

// UpdateRosterRequest 更新排位表请求（nil 字段不变更）
type UpdateRosterRequest struct {
	Name           *string            `json:"name,omitempty"`
	Year           *string            `json:"year,omitempty"`
	StartDate      *string            `json:"start_date,omitempty"`
	EndDate        *string            `json:"end_date,omitempty"`
	UseGenderQuota *bool              `json:"use_gender_quota,omitempty"`
	AllowOverflow  *bool              `json:"allow_overflow,omitempty"`
	Quotas         []HallQuotaRequest `json:"quotas,omitempty"`
}

// HallQuotaResponse 场地配额响应
type HallQuotaResponse struct {
	Hall        string `json:"hall"`
	TotalSeats  int    `json:"total_seats"`
	MaleSeats   *int   `json:"male_seats,omitempty"`
	FemaleSeats *int   `json:"female_seats,omitempty"`
}

// RosterResponse 排位表响应
type RosterResponse struct {
	ID             string              `json:"roster_id"`
	Name           string              `json:"name"`
	Year           string              `json:"year"`
	StartDate      string              `json:"start_date"`
	EndDate        string              `json:"end_date"`
	IsActive       bool                `json:"is_active"`
	UseGenderQuota bool                `json:"use_gender_quota"`
	AllowOverflow  bool                `json:"allow_overflow"`
	Quotas         []HallQuotaResponse `json:"quotas"`
	CreatedAt      string              `json:"created_at"`
	UpdatedAt      string              `json:"updated_at"`
}

// ActivateRosterResponse 激活结果汇总
type ActivateRosterResponse struct {
	RosterID        string         `json:"roster_id"`
	TotalCandidates int            `json:"total_candidates"`
	Assigned        int            `json:"assigned"`
	Unassigned      int            `json:"unassigned"`
	TierCounts      map[string]int `json:"tier_counts"` // preferred | gender_relaxed | history_relaxed | overflow | unassigned
	Warnings        []string       `json:"warnings,omitempty"`
}

// AssignmentResponse 分配记录响应
type AssignmentResponse struct {
	ID        string  `json:"assignment_id"`
	UserID    string  `json:"user_id"`
	FullName  string  `json:"full_name"`
	RegNo     string  `json:"reg_no"`
	Gender    *string `json:"gender,omitempty"`
	Hall      string  `json:"hall"`
	CreatedAt string  `json:"created_at"`
}

// UpdateAssignmentHallRequest 手动调整分配场地请求
type UpdateAssignmentHallRequest struct {
	Hall string `json:"hall" binding:"required"`
}

// AddUserToRosterRequest 手动追加用户到排位表请求
type AddUserToRosterRequest struct {
	UserID string `json:"user_id" binding:"required"`
	Hall   string `json:"hall" binding:"required"`
}

// HallStatsResponse 单场地填充统计
type HallStatsResponse struct {
	Hall              string  `json:"hall"`
	RosterID          string  `json:"roster_id"`
	TotalExpected     int     `json:"total_expected"`
	TotalAssigned     int     `json:"total_assigned"`
	TotalUnassigned   int     `json:"total_unassigned"`
	PercentAssigned   float64 `json:"percentage_assigned"`
	PercentUnassigned float64 `json:"percentage_unassigned"`
	MaleCount         int     `json:"number_of_male"`
	FemaleCount       int     `json:"number_of_female"`
}

// UserRosterHistoryResponse 用户历史分配响应
type UserRosterHistoryResponse struct {
	AssignmentID string `json:"assignment_id"`
	RosterID     string `json:"roster_id"`
	RosterName   string `json:"roster_name"`
	Hall         string `json:"hall"`
	Year         string `json:"year"`
	StartDate    string `json:"start_date,omitempty"`
	EndDate      string `json:"end_date,omitempty"`
	IsActive     bool   `json:"is_active"`
	CreatedAt    string `json:"created_at"`
}
