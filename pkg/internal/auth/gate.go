package auth

// CanAccessDocument 判定 principal 是否可以访问属于 docDept 部门的文档.
//
// 规则：
//   - 管理员可访问任何文档
//   - 普通用户仅当自身部门与文档部门均非空且相等时可访问
//   - 文档无部门标记时，仅管理员可访问
func CanAccessDocument(p *Principal, docDept *int64) bool {
	if p == nil {
		return false
	}

	if p.IsAdmin() {
		return true
	}

	if !p.HasRole(RoleUser) {
		return false
	}

	if p.DepartmentID == nil || docDept == nil {
		return false
	}

	return *p.DepartmentID == *docDept
}
