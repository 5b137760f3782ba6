package index

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"
)

// LocalSource 扫描 OCR 根目录下的已索引子目录.
// fully_indexed 与 partially_indexed 各扫一遍（非递归），failed 永不扫描.
type LocalSource struct {
	basePath string
}

// NewLocalSource 构造本地来源，确保目录布局存在.
// 根目录不可用时返回错误，调用方应让启动失败.
func NewLocalSource(basePath string) (*LocalSource, error) {
	basePath = strings.TrimSpace(basePath)
	if basePath == "" {
		return nil, fmt.Errorf("index base path is empty")
	}

	abs, err := filepath.Abs(basePath)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve index base path: %w", err)
	}

	for _, dir := range []string{DirIncoming, DirFullyIndexed, DirPartiallyIndexed, DirFailed} {
		if err := os.MkdirAll(filepath.Join(abs, dir), 0o755); err != nil {
			return nil, fmt.Errorf("failed to prepare directory %s: %w", dir, err)
		}
	}

	return &LocalSource{basePath: abs}, nil
}

// Mode 返回 local.
func (s *LocalSource) Mode() string {
	return ModeLocal
}

// BasePath 返回 OCR 根目录的绝对路径.
func (s *LocalSource) BasePath() string {
	return s.basePath
}

// IncomingDir 返回 incoming-scan 目录，上传落盘用.
func (s *LocalSource) IncomingDir() string {
	return filepath.Join(s.basePath, DirIncoming)
}

// List 并发扫描两个已索引目录，任一目录失败则整体失败（旧快照保留）.
func (s *LocalSource) List(ctx context.Context) ([]Record, error) {
	var (
		mu      sync.Mutex
		records []Record
	)

	g, ctx := errgroup.WithContext(ctx)

	scan := func(dir, status string) func() error {
		return func() error {
			recs, err := s.scanDir(ctx, filepath.Join(s.basePath, dir), status)
			if err != nil {
				return err
			}

			mu.Lock()
			records = append(records, recs...)
			mu.Unlock()

			return nil
		}
	}

	g.Go(scan(DirFullyIndexed, StatusCompleted))
	g.Go(scan(DirPartiallyIndexed, StatusPending))

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return records, nil
}

// scanDir 非递归读取单个目录，子目录与不可 stat 的条目跳过.
func (s *LocalSource) scanDir(ctx context.Context, dir, status string) ([]Record, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", dir, err)
	}

	records := make([]Record, 0, len(entries))

	for _, entry := range entries {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		if entry.IsDir() {
			continue
		}

		info, err := entry.Info()
		if err != nil {
			continue
		}

		records = append(records, newLocalRecord(dir, entry.Name(), info.Size(), info.ModTime(), status))
	}

	return records, nil
}

// newLocalRecord 从文件系统信息构造 Record.
func newLocalRecord(dir, name string, size int64, modTime time.Time, status string) Record {
	return Record{
		FileName:   name,
		Path:       filepath.Join(dir, name),
		Size:       size,
		ModifiedAt: modTime,
		Extension:  extensionOf(name),
		Status:     status,
	}
}

// extensionOf 返回最后一个点之后的部分，无点或点在结尾时为空.
func extensionOf(name string) string {
	idx := strings.LastIndex(name, ".")
	if idx < 0 || idx == len(name)-1 {
		return ""
	}

	return name[idx+1:]
}

// FindLive 在两个已索引目录中实时查找（大小写不敏感），
// 覆盖刷新间隔内新落盘、尚未进入快照的文件.
func (s *LocalSource) FindLive(name string) (Record, bool) {
	for _, probe := range []struct {
		dir    string
		status string
	}{
		{DirFullyIndexed, StatusCompleted},
		{DirPartiallyIndexed, StatusPending},
	} {
		dir := filepath.Join(s.basePath, probe.dir)

		// 先按原样精确匹配
		if info, err := os.Stat(filepath.Join(dir, name)); err == nil && info.Mode().IsRegular() {
			return newLocalRecord(dir, name, info.Size(), info.ModTime(), probe.status), true
		}

		// 再做一次大小写不敏感的目录扫描
		entries, err := os.ReadDir(dir)
		if err != nil {
			continue
		}

		for _, entry := range entries {
			if entry.IsDir() || !strings.EqualFold(entry.Name(), name) {
				continue
			}

			info, err := entry.Info()
			if err != nil {
				continue
			}

			return newLocalRecord(dir, entry.Name(), info.Size(), info.ModTime(), probe.status), true
		}
	}

	return Record{}, false
}
