package index_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/yeisme/docvault/pkg/internal/index"
)

// writeFile 在目录下写入测试文件.
func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()

	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to write %s: %v", name, err)
	}
}

// newLocalBase 构造带标准目录布局的临时 OCR 根目录.
func newLocalBase(t *testing.T) (string, *index.LocalSource) {
	t.Helper()

	base := t.TempDir()

	src, err := index.NewLocalSource(base)
	if err != nil {
		t.Fatalf("NewLocalSource failed: %v", err)
	}

	return base, src
}

// TestNewLocalSource_CreatesLayout 测试构造时创建目录布局.
func TestNewLocalSource_CreatesLayout(t *testing.T) {
	base, _ := newLocalBase(t)

	for _, dir := range []string{"incoming-scan", "fully_indexed", "partially_indexed", "failed"} {
		if _, err := os.Stat(filepath.Join(base, dir)); err != nil {
			t.Errorf("Expected directory %s to exist: %v", dir, err)
		}
	}
}

// TestNewLocalSource_EmptyPath 测试空根目录报错.
func TestNewLocalSource_EmptyPath(t *testing.T) {
	if _, err := index.NewLocalSource("  "); err == nil {
		t.Error("Expected error for empty base path")
	}
}

// TestLocalList 测试本地扫描：两个目录合并，failed 与子目录跳过.
func TestLocalList(t *testing.T) {
	base, src := newLocalBase(t)

	writeFile(t, filepath.Join(base, "fully_indexed"), "acme_123.pdf", "done")
	writeFile(t, filepath.Join(base, "partially_indexed"), "globex_456.pdf", "half")
	writeFile(t, filepath.Join(base, "failed"), "broken.pdf", "nope")
	writeFile(t, filepath.Join(base, "incoming-scan"), "fresh.pdf", "new")

	// 子目录不应被递归
	if err := os.MkdirAll(filepath.Join(base, "fully_indexed", "nested"), 0o755); err != nil {
		t.Fatal(err)
	}

	writeFile(t, filepath.Join(base, "fully_indexed", "nested"), "hidden.pdf", "x")

	records, err := src.List(context.Background())
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}

	if len(records) != 2 {
		t.Fatalf("Expected 2 records, got %d", len(records))
	}

	byName := map[string]index.Record{}
	for _, rec := range records {
		byName[rec.FileName] = rec
	}

	full, ok := byName["acme_123.pdf"]
	if !ok {
		t.Fatal("Expected acme_123.pdf in listing")
	}

	if full.Status != index.StatusCompleted {
		t.Errorf("Expected status COMPLETED, got %s", full.Status)
	}

	if full.Extension != "pdf" {
		t.Errorf("Expected extension pdf, got %q", full.Extension)
	}

	if full.Size != int64(len("done")) {
		t.Errorf("Expected size %d, got %d", len("done"), full.Size)
	}

	partial, ok := byName["globex_456.pdf"]
	if !ok {
		t.Fatal("Expected globex_456.pdf in listing")
	}

	if partial.Status != index.StatusPending {
		t.Errorf("Expected status PENDING, got %s", partial.Status)
	}
}

// TestRefresh_PublishesSnapshot 测试刷新发布新快照且版本递增.
func TestRefresh_PublishesSnapshot(t *testing.T) {
	base, src := newLocalBase(t)
	idx := index.New(src)

	// 构造后快照为空但可用
	empty := idx.Snapshot()
	if empty == nil {
		t.Fatal("Expected initial snapshot")
	}

	if len(empty.Records) != 0 {
		t.Errorf("Expected empty initial snapshot, got %d records", len(empty.Records))
	}

	writeFile(t, filepath.Join(base, "fully_indexed"), "report.pdf", "data")

	if err := idx.Refresh(context.Background()); err != nil {
		t.Fatalf("Refresh failed: %v", err)
	}

	snap := idx.Snapshot()
	if len(snap.Records) != 1 {
		t.Fatalf("Expected 1 record after refresh, got %d", len(snap.Records))
	}

	if snap.Version <= empty.Version {
		t.Errorf("Expected version to increase: %d -> %d", empty.Version, snap.Version)
	}

	if snap.Generation == "" || snap.Generation == empty.Generation {
		t.Error("Expected a fresh generation id")
	}

	if snap.Mode != index.ModeLocal {
		t.Errorf("Expected mode local, got %s", snap.Mode)
	}
}

// TestRefresh_GenerationsMonotonic 测试连续刷新产生严格递增的代号.
// 同一毫秒内的多次刷新依赖单调熵源保证顺序.
func TestRefresh_GenerationsMonotonic(t *testing.T) {
	_, src := newLocalBase(t)
	idx := index.New(src)

	prev := idx.Snapshot().Generation

	for range 10 {
		if err := idx.Refresh(context.Background()); err != nil {
			t.Fatalf("Refresh failed: %v", err)
		}

		gen := idx.Snapshot().Generation
		if gen <= prev {
			t.Fatalf("Expected strictly increasing generations, got %s after %s", gen, prev)
		}

		prev = gen
	}
}

// failingSource 总是失败的来源，用于验证旧快照保留.
type failingSource struct{}

func (failingSource) Mode() string { return index.ModeLocal }

func (failingSource) List(ctx context.Context) ([]index.Record, error) {
	return nil, errors.New("scan failed")
}

// TestRefresh_FailureKeepsSnapshot 测试来源失败时旧快照保持可用.
func TestRefresh_FailureKeepsSnapshot(t *testing.T) {
	idx := index.New(failingSource{})

	before := idx.Snapshot()

	if err := idx.Refresh(context.Background()); err == nil {
		t.Fatal("Expected refresh error")
	}

	after := idx.Snapshot()
	if after != before {
		t.Error("Expected snapshot to be unchanged after failed refresh")
	}
}

// TestFindByName 测试快照查找与本地实时回退.
func TestFindByName(t *testing.T) {
	base, src := newLocalBase(t)
	idx := index.New(src)

	writeFile(t, filepath.Join(base, "fully_indexed"), "Invoice_2024.PDF", "x")

	if err := idx.Refresh(context.Background()); err != nil {
		t.Fatalf("Refresh failed: %v", err)
	}

	// 大小写不敏感命中快照
	rec, ok := idx.FindByName("invoice_2024.pdf")
	if !ok {
		t.Fatal("Expected case-insensitive snapshot hit")
	}

	if rec.FileName != "Invoice_2024.PDF" {
		t.Errorf("Expected original file name, got %s", rec.FileName)
	}

	// 快照之后新落盘的文件通过实时扫描找到
	writeFile(t, filepath.Join(base, "partially_indexed"), "late_arrival.pdf", "y")

	rec, ok = idx.FindByName("LATE_ARRIVAL.pdf")
	if !ok {
		t.Fatal("Expected live fallback hit for file added after refresh")
	}

	if rec.Status != index.StatusPending {
		t.Errorf("Expected PENDING status from partial dir, got %s", rec.Status)
	}

	// 未命中
	if _, ok := idx.FindByName("nope.pdf"); ok {
		t.Error("Expected miss for unknown file")
	}

	if _, ok := idx.FindByName("   "); ok {
		t.Error("Expected miss for blank name")
	}
}
