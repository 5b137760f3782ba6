package auth_test

import (
	"testing"

	"github.com/yeisme/docvault/pkg/internal/auth"
)

func deptID(id int64) *int64 { return &id }

// TestCanAccessDocument 表驱动测试部门访问规则.
func TestCanAccessDocument(t *testing.T) {
	tests := []struct {
		name    string
		p       *auth.Principal
		docDept *int64
		want    bool
	}{
		{
			name:    "nil principal denied",
			p:       nil,
			docDept: deptID(1),
			want:    false,
		},
		{
			name:    "admin accesses any department",
			p:       &auth.Principal{Roles: []auth.Role{auth.RoleAdmin}},
			docDept: deptID(5),
			want:    true,
		},
		{
			name:    "admin accesses document without department",
			p:       &auth.Principal{Roles: []auth.Role{auth.RoleAdmin}},
			docDept: nil,
			want:    true,
		},
		{
			name:    "user matches own department",
			p:       &auth.Principal{Roles: []auth.Role{auth.RoleUser}, DepartmentID: deptID(2)},
			docDept: deptID(2),
			want:    true,
		},
		{
			name:    "user denied other department",
			p:       &auth.Principal{Roles: []auth.Role{auth.RoleUser}, DepartmentID: deptID(2)},
			docDept: deptID(3),
			want:    false,
		},
		{
			name:    "user without department denied",
			p:       &auth.Principal{Roles: []auth.Role{auth.RoleUser}},
			docDept: deptID(2),
			want:    false,
		},
		{
			name:    "user denied document without department",
			p:       &auth.Principal{Roles: []auth.Role{auth.RoleUser}, DepartmentID: deptID(2)},
			docDept: nil,
			want:    false,
		},
		{
			name:    "no roles denied",
			p:       &auth.Principal{DepartmentID: deptID(2)},
			docDept: deptID(2),
			want:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := auth.CanAccessDocument(tt.p, tt.docDept); got != tt.want {
				t.Errorf("CanAccessDocument() = %v, want %v", got, tt.want)
			}
		})
	}
}

// TestParseRole 测试角色解析的大小写与降级行为.
func TestParseRole(t *testing.T) {
	cases := map[string]auth.Role{
		"ROLE_ADMIN": auth.RoleAdmin,
		"admin":      auth.RoleAdmin,
		"ROLE_USER":  auth.RoleUser,
		"user":       auth.RoleUser,
		"unknown":    auth.RoleUser,
		"":           auth.RoleUser,
	}

	for in, want := range cases {
		if got := auth.ParseRole(in); got != want {
			t.Errorf("ParseRole(%q) = %v, want %v", in, got, want)
		}
	}
}
