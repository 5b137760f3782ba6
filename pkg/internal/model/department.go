package model

import (
	"time"

	"gorm.io/gorm"
)

// Department 部门模型，文档按部门隔离.
type Department struct {
	ID   int64  `gorm:"primaryKey"           json:"id"`
	Name string `gorm:"size:255;uniqueIndex" json:"name"`
	// 审计
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

// Client 客户模型，用于检索过滤器的候选值.
type Client struct {
	ID   int64  `gorm:"primaryKey"     json:"id"`
	Name string `gorm:"size:512;index" json:"name"`
	// AccountNumber 原始账号串（可能含连字符/空格），匹配时按纯数字比较
	AccountNumber string `gorm:"size:64;index" json:"account_number"`
	DepartmentID  *int64 `gorm:"index"         json:"department_id,omitempty"`
	// 审计
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}
