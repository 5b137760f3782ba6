package types

// SearchDocumentsRequest 文档检索请求.
// 所有过滤条件可选，缺省即不约束该维度；page/pageSize 非法或缺省时回落到 1/20.
// 目前参与过滤的是 clientName 与 accountNumber，其余字段随请求往返回显，
// 保留给后续的完整过滤流水线.
type SearchDocumentsRequest struct {
	ClientName        string   `form:"clientName"        json:"clientName"        rule:"omitempty,max=100"`
	AccountNumber     string   `form:"accountNumber"     json:"accountNumber"     rule:"omitempty,max=20"`
	Department        string   `form:"department"        json:"department"        rule:"omitempty,max=50"`
	FundDateStart     string   `form:"fundDateStart"     json:"fundDateStart"`     // YYYY-MM-DD
	FundDateEnd       string   `form:"fundDateEnd"       json:"fundDateEnd"`       // YYYY-MM-DD
	FileExtensions    []string `form:"fileExtensions"    json:"fileExtensions"`    // 不含点
	DateModifiedStart string   `form:"dateModifiedStart" json:"dateModifiedStart"` // YYYY-MM-DD
	DateModifiedEnd   string   `form:"dateModifiedEnd"   json:"dateModifiedEnd"`   // YYYY-MM-DD
	FileSizeMin       int64    `form:"fileSizeMin"       json:"fileSizeMin"       rule:"omitempty,min=0"`
	FileSizeMax       int64    `form:"fileSizeMax"       json:"fileSizeMax"       rule:"omitempty,min=1"`
	OCRConfidenceMin  int      `form:"ocrConfidenceMin"  json:"ocrConfidenceMin"  rule:"omitempty,min=0,max=100"`
	IndexStatus       string   `form:"indexStatus"       json:"indexStatus"       rule:"omitempty,oneof=PENDING COMPLETED FAILED"`
	FullTextSearch    string   `form:"fullTextSearch"    json:"fullTextSearch"    rule:"omitempty,max=1000"`
	Page              int      `form:"page"              json:"page"              rule:"omitempty,min=1"`
	PageSize          int      `form:"pageSize"          json:"pageSize"          rule:"omitempty,min=1,max=100"`
	SortBy            string   `form:"sortBy"            json:"sortBy"`
	SortOrder         string   `form:"sortOrder"         json:"sortOrder"         rule:"omitempty,oneof=asc desc"`
}

// SearchDocumentsResponse 文档检索响应.
// 每个过滤字段都规范化后回显（缺省回显空串/零值），客户端可据此往返查询状态，
// 因此回显字段一律不加 omitempty.
type SearchDocumentsResponse struct {
	Documents   []DocumentInfo `json:"documents"`
	TotalCount  int            `json:"totalCount"`
	TotalPages  int            `json:"totalPages"`
	CurrentPage int            `json:"currentPage"`
	PageSize    int            `json:"pageSize"`

	ClientName        string   `json:"clientName"`
	AccountNumber     string   `json:"accountNumber"`
	Department        string   `json:"department"`
	FundDateStart     string   `json:"fundDateStart"`
	FundDateEnd       string   `json:"fundDateEnd"`
	FileExtensions    []string `json:"fileExtensions"`
	DateModifiedStart string   `json:"dateModifiedStart"`
	DateModifiedEnd   string   `json:"dateModifiedEnd"`
	FileSizeMin       int64    `json:"fileSizeMin"`
	FileSizeMax       int64    `json:"fileSizeMax"`
	OCRConfidenceMin  int      `json:"ocrConfidenceMin"`
	IndexStatus       string   `json:"indexStatus"`
	FullTextSearch    string   `json:"fullTextSearch"`
	SortBy            string   `json:"sortBy"`
	SortOrder         string   `json:"sortOrder"`
}
