package model

// 性别取值（users.gender 为可空列，历史数据存在大小写混用，读取时统一小写比较）
const (
	GenderMale   = "male"
	GenderFemale = "female"
)

// User 用户表 — 对应 users
type User struct {
	UserID       string  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"user_id"`
	FirstName    string  `gorm:"type:varchar(100);not null"                     json:"first_name"`
	LastName     string  `gorm:"type:varchar(100);not null"                     json:"last_name"`
	RegNo        string  `gorm:"type:varchar(50);not null;uniqueIndex"          json:"reg_no"`
	Email        string  `gorm:"type:varchar(255);not null"                     json:"email"`
	PasswordHash string  `gorm:"type:varchar(255);not null"                     json:"-"`
	Role         string  `gorm:"type:varchar(20);not null;default:'member'"     json:"role"` // admin | member
	Gender       *string `gorm:"type:varchar(10)"                               json:"gender,omitempty"`
	IsActive     bool    `gorm:"not null;default:true"                          json:"is_active"`
	CurrentHall  *Hall   `gorm:"type:varchar(20)"                               json:"current_hall,omitempty"` // 冗余字段，激活提交时写回
	BaseModel
}

// TableName 指定表名
func (User) TableName() string { return "users" }

// FullName 拼接姓名
func (u *User) FullName() string { return u.FirstName + " " + u.LastName }
