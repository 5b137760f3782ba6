package index_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/yeisme/docvault/pkg/internal/index"
	"github.com/yeisme/docvault/pkg/internal/types"
)

// TestResolve_Local 测试本地解析：精确、大小写不敏感、目录剥离.
func TestResolve_Local(t *testing.T) {
	base, src := newLocalBase(t)
	idx := index.New(src)
	r := index.NewResolver(idx, src)

	writeFile(t, filepath.Join(base, "fully_indexed"), "Report.pdf", "data")
	writeFile(t, filepath.Join(base, "partially_indexed"), "draft.pdf", "half")

	// 精确命中 fully_indexed
	path, err := r.Resolve("Report.pdf")
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}

	if path != filepath.Join(base, "fully_indexed", "Report.pdf") {
		t.Errorf("Unexpected path: %s", path)
	}

	// 大小写不敏感命中
	if _, err := r.Resolve("report.PDF"); err != nil {
		t.Errorf("Expected case-insensitive hit, got %v", err)
	}

	// partially_indexed 命中
	path, err = r.Resolve("draft.pdf")
	if err != nil {
		t.Fatalf("Resolve failed for partial: %v", err)
	}

	if path != filepath.Join(base, "partially_indexed", "draft.pdf") {
		t.Errorf("Unexpected partial path: %s", path)
	}

	// 目录成分被剥除：../../etc/passwd 只取 passwd
	if _, err := r.Resolve("../../etc/Report.pdf"); err != nil {
		t.Errorf("Expected directory components to be stripped, got %v", err)
	}

	// 未知文件
	_, err = r.Resolve("missing.pdf")
	if !errors.Is(err, types.ErrNotFound) {
		t.Errorf("Expected ErrNotFound, got %v", err)
	}

	// 空名称
	_, err = r.Resolve("  ")
	if !errors.Is(err, types.ErrInvalidRequest) {
		t.Errorf("Expected ErrInvalidRequest, got %v", err)
	}
}

// TestResolve_RemoteSnapshotOnly 测试远端模式只查快照.
func TestResolve_RemoteSnapshotOnly(t *testing.T) {
	idx := index.New(staticSource{records: []index.Record{
		{FileName: "scan.pdf", Path: "https://ocr.example.com/files/scan.pdf"},
	}})

	if err := idx.Refresh(context.Background()); err != nil {
		t.Fatalf("Refresh failed: %v", err)
	}

	r := index.NewResolver(idx, nil)

	path, err := r.Resolve("SCAN.pdf")
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}

	if path != "https://ocr.example.com/files/scan.pdf" {
		t.Errorf("Unexpected remote path: %s", path)
	}

	if _, err := r.Resolve("other.pdf"); !errors.Is(err, types.ErrNotFound) {
		t.Errorf("Expected ErrNotFound, got %v", err)
	}
}

// staticSource 固定记录的来源.
type staticSource struct {
	records []index.Record
}

func (s staticSource) Mode() string { return index.ModeRemote }

func (s staticSource) List(ctx context.Context) ([]index.Record, error) {
	return s.records, nil
}

// TestOpenAbsolute 测试特权绝对路径下载的校验.
func TestOpenAbsolute(t *testing.T) {
	base, src := newLocalBase(t)
	idx := index.New(src)
	r := index.NewResolver(idx, src)

	writeFile(t, filepath.Join(base, "fully_indexed"), "ok.pdf", "x")
	target := filepath.Join(base, "fully_indexed", "ok.pdf")

	got, err := r.OpenAbsolute(target)
	if err != nil {
		t.Fatalf("OpenAbsolute failed: %v", err)
	}

	if got != target {
		t.Errorf("Unexpected path: %s", got)
	}

	// 空路径与 "undefined" 按 BadRequest 处理
	for _, bad := range []string{"", "   ", "undefined", "UNDEFINED"} {
		if _, err := r.OpenAbsolute(bad); !errors.Is(err, types.ErrInvalidRequest) {
			t.Errorf("Expected ErrInvalidRequest for %q, got %v", bad, err)
		}
	}

	// 不存在的文件
	if _, err := r.OpenAbsolute(filepath.Join(base, "nope.pdf")); !errors.Is(err, types.ErrNotFound) {
		t.Errorf("Expected ErrNotFound, got %v", err)
	}

	// 目录不是常规文件
	if _, err := r.OpenAbsolute(filepath.Join(base, "fully_indexed")); !errors.Is(err, types.ErrNotFound) {
		t.Errorf("Expected ErrNotFound for directory, got %v", err)
	}
}
