// Package auth 提供令牌签发/验证与部门级访问控制.
package auth

import "strings"

// Role 表示请求方的角色（使用 iota 实现的枚举，数值越大权限越高）。
type Role int

const (
	RoleUser Role = iota + 1
	RoleAdmin
)

// String 返回角色的字符串表示，与令牌声明中的形式一致。
func (r Role) String() string {
	switch r {
	case RoleAdmin:
		return "ROLE_ADMIN"
	case RoleUser:
		fallthrough
	default:
		return "ROLE_USER"
	}
}

// ParseRole 从字符串解析角色，未知值降级为 user。
func ParseRole(s string) Role {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "ROLE_ADMIN", "ADMIN":
		return RoleAdmin
	case "ROLE_USER", "USER":
		fallthrough
	default:
		return RoleUser
	}
}

// Principal 已认证请求方的身份信息，从令牌声明还原.
type Principal struct {
	UserID   int64  `json:"userId"`
	Username string `json:"username"`
	Roles    []Role `json:"roles"`
	// DepartmentID 为空表示未分配部门
	DepartmentID *int64 `json:"departmentId,omitempty"`
}

// HasRole 报告 principal 是否持有指定角色.
func (p *Principal) HasRole(r Role) bool {
	for _, have := range p.Roles {
		if have == r {
			return true
		}
	}

	return false
}

// IsAdmin 报告 principal 是否为管理员.
func (p *Principal) IsAdmin() bool {
	return p.HasRole(RoleAdmin)
}

// RoleNames 返回字符串形式的角色列表，用于令牌声明和响应.
func (p *Principal) RoleNames() []string {
	names := make([]string, 0, len(p.Roles))
	for _, r := range p.Roles {
		names = append(names, r.String())
	}

	return names
}
