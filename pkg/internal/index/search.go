package index

import (
	"strings"
	"time"

	"github.com/yeisme/docvault/pkg/internal/types"
)

const (
	defaultPage     = 1
	defaultPageSize = 20
)

// Search 在快照上执行过滤 + 分页，纯函数，不触碰文件系统或网络.
//
// 过滤阶段：
//   - clientName：文件名的大小写不敏感子串匹配
//   - accountNumber：剔除非数字后做子串匹配；过滤值不含数字时该阶段跳过
//
// 其余过滤字段（部门、日期/大小区间、置信度、扩展名集合、全文、状态、排序）
// 在请求中被接受并规范化后原样回显，暂不参与过滤.
func Search(req *types.SearchDocumentsRequest, cat *Catalog) *types.SearchDocumentsResponse {
	client := strings.TrimSpace(req.ClientName)
	account := strings.TrimSpace(req.AccountNumber)

	page := req.Page
	if page < 1 {
		page = defaultPage
	}

	pageSize := req.PageSize
	if pageSize < 1 {
		pageSize = defaultPageSize
	}

	clientLower := strings.ToLower(client)
	accountDigits := digitsOnly(account)

	matched := make([]Record, 0, len(cat.Records))

	for _, rec := range cat.Records {
		if clientLower != "" && !strings.Contains(strings.ToLower(rec.FileName), clientLower) {
			continue
		}

		if accountDigits != "" && !strings.Contains(digitsOnly(rec.FileName), accountDigits) {
			continue
		}

		matched = append(matched, rec)
	}

	total := len(matched)
	totalPages := (total + pageSize - 1) / pageSize

	// 超出末页时返回空页，不报错
	start := (page - 1) * pageSize
	if start > total {
		start = total
	}

	end := start + pageSize
	if end > total {
		end = total
	}

	docs := make([]types.DocumentInfo, 0, end-start)
	for _, rec := range matched[start:end] {
		docs = append(docs, RecordInfo(rec))
	}

	return &types.SearchDocumentsResponse{
		Documents:   docs,
		TotalCount:  total,
		TotalPages:  totalPages,
		CurrentPage: page,
		PageSize:    pageSize,

		ClientName:        client,
		AccountNumber:     account,
		Department:        strings.TrimSpace(req.Department),
		FundDateStart:     strings.TrimSpace(req.FundDateStart),
		FundDateEnd:       strings.TrimSpace(req.FundDateEnd),
		FileExtensions:    normalizeExtensions(req.FileExtensions),
		DateModifiedStart: strings.TrimSpace(req.DateModifiedStart),
		DateModifiedEnd:   strings.TrimSpace(req.DateModifiedEnd),
		FileSizeMin:       req.FileSizeMin,
		FileSizeMax:       req.FileSizeMax,
		OCRConfidenceMin:  req.OCRConfidenceMin,
		IndexStatus:       strings.TrimSpace(req.IndexStatus),
		FullTextSearch:    strings.TrimSpace(req.FullTextSearch),
		SortBy:            strings.TrimSpace(req.SortBy),
		SortOrder:         strings.TrimSpace(req.SortOrder),
	}
}

// normalizeExtensions 去掉空白与前导点；缺省回显空列表而非 null.
func normalizeExtensions(exts []string) []string {
	out := make([]string, 0, len(exts))

	for _, ext := range exts {
		ext = strings.TrimPrefix(strings.TrimSpace(ext), ".")
		if ext == "" {
			continue
		}

		out = append(out, ext)
	}

	return out
}

// RecordInfo 将内部 Record 转为对外的 DocumentInfo.
func RecordInfo(rec Record) types.DocumentInfo {
	info := types.DocumentInfo{
		FileName:      rec.FileName,
		Name:          rec.FileName,
		Path:          rec.Path,
		Size:          rec.Size,
		Extension:     rec.Extension,
		Status:        rec.Status,
		OCRConfidence: rec.OCRConfidence,
		DepartmentID:  rec.DepartmentID,
		Snippet:       rec.Snippet,
	}

	if !rec.ModifiedAt.IsZero() {
		info.ModifiedAt = rec.ModifiedAt.Format(time.RFC3339)
	}

	return info
}

// digitsOnly 剔除字符串中的所有非数字字符.
func digitsOnly(s string) string {
	var b strings.Builder

	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}

	return b.String()
}
