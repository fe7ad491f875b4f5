package dto

// ListActivityLogsRequest 审计日志列表请求
type ListActivityLogsRequest struct {
	PageRequest
}

// ActivityLogResponse 审计日志响应
type ActivityLogResponse struct {
	ID         string  `json:"log_id"`
	Action     string  `json:"action"`
	ActorID    string  `json:"actor_id"`
	TargetID   *string `json:"target_id,omitempty"`
	TargetType *string `json:"target_type,omitempty"`
	Details    string  `json:"details,omitempty"`
	CreatedAt  string  `json:"created_at"`
}
