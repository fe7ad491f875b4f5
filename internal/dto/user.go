package dto

// CreateUserRequest 创建用户请求（管理员）
type CreateUserRequest struct {
	FirstName string  `json:"first_name" binding:"required"`
	LastName  string  `json:"last_name" binding:"required"`
	RegNo     string  `json:"reg_no" binding:"required"`
	Email     string  `json:"email" binding:"required,email"`
	Password  string  `json:"password" binding:"required,min=8"`
	Role      string  `json:"role"`
	Gender    *string `json:"gender,omitempty"`
}

// UpdateUserRequest 更新用户请求（nil 字段不变更）
type UpdateUserRequest struct {
	FirstName *string `json:"first_name,omitempty"`
	LastName  *string `json:"last_name,omitempty"`
	Email     *string `json:"email,omitempty"`
	Role      *string `json:"role,omitempty"`
	Gender    *string `json:"gender,omitempty"`
}

// ListUsersRequest 用户列表请求
type ListUsersRequest struct {
	PageRequest
}

// UserResponse 用户响应
type UserResponse struct {
	ID          string  `json:"user_id"`
	FullName    string  `json:"full_name"`
	FirstName   string  `json:"first_name"`
	LastName    string  `json:"last_name"`
	RegNo       string  `json:"reg_no"`
	Email       string  `json:"email"`
	Role        string  `json:"role"`
	Gender      *string `json:"gender,omitempty"`
	IsActive    bool    `json:"is_active"`
	CurrentHall *string `json:"current_hall,omitempty"`
	CreatedAt   string  `json:"created_at"`
}
