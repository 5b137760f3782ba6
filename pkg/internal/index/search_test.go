package index_test

import (
	"strings"
	"testing"
	"time"

	"github.com/bytedance/sonic"

	"github.com/yeisme/docvault/pkg/internal/index"
	"github.com/yeisme/docvault/pkg/internal/types"
)

// newCatalog 构造固定快照用于检索测试.
func newCatalog(names ...string) *index.Catalog {
	records := make([]index.Record, 0, len(names))
	for _, name := range names {
		records = append(records, index.Record{
			FileName:   name,
			Path:       "/data/" + name,
			Size:       100,
			ModifiedAt: time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC),
			Status:     index.StatusCompleted,
		})
	}

	return &index.Catalog{Mode: index.ModeLocal, Records: records}
}

// TestSearch_NoFilters 测试无过滤条件时返回全部文档与默认分页.
func TestSearch_NoFilters(t *testing.T) {
	cat := newCatalog("a.pdf", "b.pdf", "c.pdf")

	resp := index.Search(&types.SearchDocumentsRequest{}, cat)

	if resp.TotalCount != 3 {
		t.Errorf("Expected total 3, got %d", resp.TotalCount)
	}

	if resp.CurrentPage != 1 || resp.PageSize != 20 {
		t.Errorf("Expected default page 1/size 20, got %d/%d", resp.CurrentPage, resp.PageSize)
	}

	if resp.TotalPages != 1 {
		t.Errorf("Expected 1 total page, got %d", resp.TotalPages)
	}

	if len(resp.Documents) != 3 {
		t.Errorf("Expected 3 documents, got %d", len(resp.Documents))
	}
}

// TestSearch_ClientName 测试客户名大小写不敏感子串匹配.
func TestSearch_ClientName(t *testing.T) {
	cat := newCatalog("ACME_statement.pdf", "acme_invoice.pdf", "globex_invoice.pdf")

	resp := index.Search(&types.SearchDocumentsRequest{ClientName: "  Acme "}, cat)

	if resp.TotalCount != 2 {
		t.Fatalf("Expected 2 matches, got %d", resp.TotalCount)
	}

	// 过滤条件 trim 后回显
	if resp.ClientName != "Acme" {
		t.Errorf("Expected echoed clientName 'Acme', got %q", resp.ClientName)
	}
}

// TestSearch_AccountNumber 测试账号数字子串匹配与非数字跳过.
func TestSearch_AccountNumber(t *testing.T) {
	cat := newCatalog("stmt_12-34-56.pdf", "stmt_999.pdf", "letter.pdf")

	// 过滤值中的连字符被剔除后匹配
	resp := index.Search(&types.SearchDocumentsRequest{AccountNumber: "123-456"}, cat)
	if resp.TotalCount != 1 {
		t.Fatalf("Expected 1 match for 123-456, got %d", resp.TotalCount)
	}

	if resp.Documents[0].FileName != "stmt_12-34-56.pdf" {
		t.Errorf("Unexpected match: %s", resp.Documents[0].FileName)
	}

	// 全非数字的过滤值：阶段跳过，等同无过滤
	resp = index.Search(&types.SearchDocumentsRequest{AccountNumber: "abc-def"}, cat)
	if resp.TotalCount != 3 {
		t.Errorf("Expected account stage to be skipped, got total %d", resp.TotalCount)
	}
}

// TestSearch_CombinedFilters 测试两个过滤阶段串联（AND）.
func TestSearch_CombinedFilters(t *testing.T) {
	cat := newCatalog("acme_100.pdf", "acme_200.pdf", "globex_100.pdf")

	resp := index.Search(&types.SearchDocumentsRequest{ClientName: "acme", AccountNumber: "100"}, cat)
	if resp.TotalCount != 1 {
		t.Fatalf("Expected 1 match, got %d", resp.TotalCount)
	}

	if resp.Documents[0].FileName != "acme_100.pdf" {
		t.Errorf("Unexpected match: %s", resp.Documents[0].FileName)
	}
}

// TestSearch_Pagination 测试分页边界.
func TestSearch_Pagination(t *testing.T) {
	names := make([]string, 0, 45)
	for i := range 45 {
		names = append(names, string(rune('a'+i%26))+"_doc.pdf")
	}

	cat := newCatalog(names...)

	// 第二页，每页 20
	resp := index.Search(&types.SearchDocumentsRequest{Page: 2, PageSize: 20}, cat)
	if len(resp.Documents) != 20 {
		t.Errorf("Expected 20 documents on page 2, got %d", len(resp.Documents))
	}

	if resp.TotalPages != 3 {
		t.Errorf("Expected 3 total pages, got %d", resp.TotalPages)
	}

	// 末页只有 5 条
	resp = index.Search(&types.SearchDocumentsRequest{Page: 3, PageSize: 20}, cat)
	if len(resp.Documents) != 5 {
		t.Errorf("Expected 5 documents on page 3, got %d", len(resp.Documents))
	}

	// 超出末页：空页，无错误
	resp = index.Search(&types.SearchDocumentsRequest{Page: 9, PageSize: 20}, cat)
	if len(resp.Documents) != 0 {
		t.Errorf("Expected empty page past the end, got %d", len(resp.Documents))
	}

	if resp.CurrentPage != 9 {
		t.Errorf("Expected echoed page 9, got %d", resp.CurrentPage)
	}

	// 非法 page/pageSize 回落默认值
	resp = index.Search(&types.SearchDocumentsRequest{Page: -1, PageSize: 0}, cat)
	if resp.CurrentPage != 1 || resp.PageSize != 20 {
		t.Errorf("Expected defaults 1/20, got %d/%d", resp.CurrentPage, resp.PageSize)
	}
}

// TestSearch_EmptyCatalog 测试空快照.
func TestSearch_EmptyCatalog(t *testing.T) {
	resp := index.Search(&types.SearchDocumentsRequest{ClientName: "acme"}, newCatalog())

	if resp.TotalCount != 0 || resp.TotalPages != 0 {
		t.Errorf("Expected 0/0, got %d/%d", resp.TotalCount, resp.TotalPages)
	}

	if len(resp.Documents) != 0 {
		t.Errorf("Expected no documents, got %d", len(resp.Documents))
	}
}

// TestSearch_EchoesPassthroughFilters 测试未参与过滤的字段也会规范化后回显.
func TestSearch_EchoesPassthroughFilters(t *testing.T) {
	cat := newCatalog("a.pdf")

	resp := index.Search(&types.SearchDocumentsRequest{
		Department:        " ops ",
		FundDateStart:     " 2024-01-01 ",
		FundDateEnd:       "2024-06-30",
		FileExtensions:    []string{" .pdf ", "", "docx"},
		DateModifiedStart: " 2024-05-01 ",
		FileSizeMin:       100,
		FileSizeMax:       5000,
		OCRConfidenceMin:  80,
		IndexStatus:       "COMPLETED",
		FullTextSearch:    " quarterly ",
		SortBy:            " name ",
		SortOrder:         "desc",
	}, cat)

	if resp.Department != "ops" || resp.FullTextSearch != "quarterly" || resp.SortBy != "name" {
		t.Errorf("Expected trimmed echo, got %q/%q/%q", resp.Department, resp.FullTextSearch, resp.SortBy)
	}

	if resp.FundDateStart != "2024-01-01" || resp.DateModifiedStart != "2024-05-01" {
		t.Errorf("Expected date echoes, got %q/%q", resp.FundDateStart, resp.DateModifiedStart)
	}

	if resp.FileSizeMin != 100 || resp.FileSizeMax != 5000 || resp.OCRConfidenceMin != 80 {
		t.Errorf("Expected numeric echoes, got %d/%d/%d", resp.FileSizeMin, resp.FileSizeMax, resp.OCRConfidenceMin)
	}

	if len(resp.FileExtensions) != 2 || resp.FileExtensions[0] != "pdf" || resp.FileExtensions[1] != "docx" {
		t.Errorf("Expected normalized extensions [pdf docx], got %v", resp.FileExtensions)
	}

	// 未应用过滤
	if resp.TotalCount != 1 {
		t.Errorf("Expected passthrough filters not to affect total, got %d", resp.TotalCount)
	}
}

// TestSearch_EchoKeysAlwaysPresent 测试回显字段序列化后始终在场，缺省为零值.
// 客户端依赖固定键集往返其查询状态.
func TestSearch_EchoKeysAlwaysPresent(t *testing.T) {
	cat := newCatalog("a.pdf")

	resp := index.Search(&types.SearchDocumentsRequest{
		Department:     "ops",
		FileSizeMin:    100,
		FullTextSearch: "q",
	}, cat)

	raw, err := sonic.Marshal(resp)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}

	body := string(raw)

	for _, want := range []string{
		`"department":"ops"`,
		`"fileSizeMin":100`,
		`"fullTextSearch":"q"`,
		`"clientName":""`,
		`"accountNumber":""`,
		`"indexStatus":""`,
		`"fileExtensions":[]`,
		`"sortOrder":""`,
		`"ocrConfidenceMin":0`,
	} {
		if !strings.Contains(body, want) {
			t.Errorf("Expected response JSON to contain %s, got %s", want, body)
		}
	}
}

// TestRecordInfo 测试 Record 到 DocumentInfo 的转换（含别名字段）.
func TestRecordInfo(t *testing.T) {
	dept := int64(4)
	rec := index.Record{
		FileName:      "x.pdf",
		Path:          "/data/x.pdf",
		Size:          9,
		ModifiedAt:    time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC),
		Extension:     "pdf",
		Status:        index.StatusCompleted,
		OCRConfidence: 0.93,
		DepartmentID:  &dept,
		Snippet:       "statement for x",
	}

	info := index.RecordInfo(rec)

	if info.FileName != "x.pdf" || info.Name != "x.pdf" {
		t.Errorf("Expected name alias to match fileName, got %q/%q", info.FileName, info.Name)
	}

	if info.ModifiedAt != "2024-01-02T03:04:05Z" {
		t.Errorf("Unexpected modifiedAt: %s", info.ModifiedAt)
	}

	if info.DepartmentID == nil || *info.DepartmentID != 4 {
		t.Errorf("Expected departmentId 4, got %v", info.DepartmentID)
	}

	if info.Snippet != "statement for x" {
		t.Errorf("Expected snippet to carry over, got %q", info.Snippet)
	}
}
