package types

// DocumentInfo 单个文档的对外表示.
// FileName 与 Name、Path 字段并存是历史兼容：旧客户端读 name/path，新客户端读 fileName.
type DocumentInfo struct {
	FileName      string  `json:"fileName"`
	Name          string  `json:"name"`
	Path          string  `json:"path,omitempty"`
	Size          int64   `json:"size"`
	ModifiedAt    string  `json:"modifiedAt,omitempty"` // RFC3339
	Extension     string  `json:"extension,omitempty"`
	Status        string  `json:"status,omitempty"` // COMPLETED / PENDING
	OCRConfidence float64 `json:"ocrConfidence,omitempty"`
	DepartmentID  *int64  `json:"departmentId,omitempty"`
	Snippet       string  `json:"snippet"` // OCR 文本摘录，来源未提供时为空串
}

// ListFilesResponse 扁平文件列表响应.
type ListFilesResponse struct {
	Files []DocumentInfo `json:"files"`
	Total int            `json:"total"`
}

// FindFileResponse 按名称查找单个文件的响应.
type FindFileResponse struct {
	Document DocumentInfo `json:"document"`
}

// UploadDocumentResponse 上传文件到 incoming-scan 的响应.
type UploadDocumentResponse struct {
	FileName string `json:"fileName"`
	Size     int64  `json:"size"`
	Path     string `json:"path"`
	Success  bool   `json:"success"`
	Error    string `json:"error,omitempty"`
}

// IndexStatusResponse 目录快照状态.
type IndexStatusResponse struct {
	Mode        string `json:"mode"` // local / remote
	Generation  string `json:"generation,omitempty"`
	Version     int64  `json:"version"`
	RefreshedAt string `json:"refreshedAt,omitempty"` // RFC3339
	Documents   int    `json:"documents"`
}

// RefreshIndexResponse 手动刷新目录的响应.
type RefreshIndexResponse struct {
	Status IndexStatusResponse `json:"status"`
}

// FilterValuesResponse 过滤器候选值（如全部扩展名）.
type FilterValuesResponse struct {
	Values []string `json:"values"`
}
