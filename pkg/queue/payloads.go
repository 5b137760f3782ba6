package queue

import "time"

// EventHeader 定义所有事件的通用头部元数据.
// 建议在发布消息时填充 TraceID、OccurredAt、Producer 等，便于追踪链路与审计.
type EventHeader struct {
	// Topic 冗余记录消息主题，便于离线处理或转储后定位来源主题.
	Topic string `json:"topic"`
	// TraceID 分布式追踪/关联 ID，可来自中间件或业务生成.
	TraceID string `json:"trace_id,omitempty"`
	// Producer 生产者服务名或节点标识.
	Producer string `json:"producer,omitempty"`
	// OccurredAt 事件发生时间（UTC，RFC3339）.
	OccurredAt time.Time `json:"occurred_at"`
	// Version 事件负载版本，便于向后兼容演进.
	Version string `json:"version,omitempty"`
}

// Message 是统一的消息封装，Header + Payload.
// T 即不同主题对应的负载结构体.
type Message[T any] struct {
	Header  EventHeader `json:"header"`
	Payload T           `json:"payload"`
}

// -------------------------- 文档领域 --------------------------

// DocumentRef 标识目录中的一个文档.
type DocumentRef struct {
	FileName     string `json:"file_name"`
	Path         string `json:"path,omitempty"`
	Size         int64  `json:"size,omitempty"`
	Extension    string `json:"extension,omitempty"`
	DepartmentID *int64 `json:"department_id,omitempty"`
	Status       string `json:"status,omitempty"`
}

// DocumentUploadedPayload 文件写入 incoming-scan 完成.
type DocumentUploadedPayload struct {
	Document DocumentRef `json:"document"`
	// Optional 业务上下文，如上传者.
	Uploader string `json:"uploader,omitempty"`
	Source   string `json:"source,omitempty"`
}

// DocumentAccessedPayload 文档元数据被读取.
type DocumentAccessedPayload struct {
	Document DocumentRef `json:"document"`
	UserID   int64       `json:"user_id,omitempty"`
}

// DocumentDownloadedPayload 文档内容被下载.
type DocumentDownloadedPayload struct {
	Document DocumentRef `json:"document"`
	UserID   int64       `json:"user_id,omitempty"`
}

// -------------------------- 目录领域 --------------------------

// CatalogRefreshRequestedPayload 请求重建目录快照.
type CatalogRefreshRequestedPayload struct {
	Requester string `json:"requester,omitempty"` // 触发来源：admin/cron
	Force     bool   `json:"force,omitempty"`
}

// CatalogRefreshedPayload 目录快照重建完成.
type CatalogRefreshedPayload struct {
	Mode       string        `json:"mode"` // local / remote
	Generation string        `json:"generation"`
	Documents  int           `json:"documents"`
	Duration   time.Duration `json:"duration,omitempty"`
}

// CatalogRefreshFailedPayload 目录快照重建失败.
type CatalogRefreshFailedPayload struct {
	Mode  string `json:"mode"`
	Error string `json:"error"`
}

// -------------------------- OCR 流水线领域 --------------------------

// OCRMetadataPayload OCR 流水线回传的文档元数据.
type OCRMetadataPayload struct {
	Document   DocumentRef `json:"document"`
	Confidence float64     `json:"confidence,omitempty"` // OCR 置信度 0-1
	PageCount  int         `json:"page_count,omitempty"`
	Language   string      `json:"language,omitempty"`
}

// OCRNotifyFailedPayload OCR 回调处理失败.
type OCRNotifyFailedPayload struct {
	Document DocumentRef `json:"document"`
	Error    string      `json:"error"`
}

// -------------------------- 账户领域 --------------------------

// UserSignedUpPayload 新用户注册完成.
type UserSignedUpPayload struct {
	UserID       int64  `json:"user_id"`
	Username     string `json:"username"`
	DepartmentID *int64 `json:"department_id,omitempty"`
}
