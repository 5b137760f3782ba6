// Package model 定义数据库模型，用户/部门数据以 DB 为真源.
package model

import (
	"time"

	"gorm.io/gorm"
)

// 角色常量，存储在 users.role 中.
const (
	RoleAdmin = "ROLE_ADMIN"
	RoleUser  = "ROLE_USER"
)

// User 用户模型.
type User struct {
	ID       int64  `gorm:"primaryKey"            json:"id"`
	Username string `gorm:"size:255;uniqueIndex"  json:"username"`
	// PasswordHash bcrypt 哈希，永不出现在响应中
	PasswordHash string `gorm:"size:128" json:"-"`
	Role         string `gorm:"size:32;index" json:"role"`
	// DepartmentID 为空表示未分配部门；普通用户没有部门时无法访问任何部门文档
	DepartmentID *int64 `gorm:"index" json:"department_id,omitempty"`
	Enabled      bool   `gorm:"default:true" json:"enabled"`
	// 审计
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

// Roles 返回用户的角色列表（当前模型单角色，保持切片形式兼容令牌声明）.
func (u *User) Roles() []string {
	if u.Role == "" {
		return []string{RoleUser}
	}

	return []string{u.Role}
}

// IsAdmin 报告用户是否为管理员.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
