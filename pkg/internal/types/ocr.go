package types

// OCRNotifyRequest OCR 流水线处理完成后的回调负载.
type OCRNotifyRequest struct {
	FileName     string  `json:"fileName"     rule:"required,max=512"`
	Path         string  `json:"path,omitempty"`
	Status       string  `json:"status,omitempty"` // COMPLETED / PENDING / FAILED
	Confidence   float64 `json:"confidence,omitempty"`
	PageCount    int     `json:"pageCount,omitempty"`
	Language     string  `json:"language,omitempty"`
	DepartmentID *int64  `json:"departmentId,omitempty"`
}

// OCRNotifyResponse OCR 回调响应.
type OCRNotifyResponse struct {
	Accepted bool   `json:"accepted"`
	FileName string `json:"fileName"`
}
