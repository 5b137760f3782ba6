// Package index 维护文档目录快照：本地扫描或远端 OCR 列表，
// 加上检索、按名定位与下载路径解析.
//
// 快照采用 copy-on-write：Refresh 构建新的 Catalog 后通过
// atomic.Pointer 原子发布，读取方永远拿到一致的完整快照，无锁.
package index

import (
	"context"
	"crypto/rand"
	"io"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/oklog/ulid"
	"github.com/rs/zerolog"

	"github.com/yeisme/docvault/pkg/log"
	"github.com/yeisme/docvault/pkg/metrics"
)

// 目录模式，构造时确定一次，运行期不变.
const (
	ModeLocal  = "local"
	ModeRemote = "remote"
)

// 文档状态，对应 OCR 流水线的产出目录.
const (
	StatusCompleted = "COMPLETED" // fully_indexed
	StatusPending   = "PENDING"   // partially_indexed
)

// OCR 根目录下的子目录布局；failed 永不扫描.
const (
	DirIncoming         = "incoming-scan"
	DirFullyIndexed     = "fully_indexed"
	DirPartiallyIndexed = "partially_indexed"
	DirFailed           = "failed"
)

// Record 目录中一个文档的内部表示.
type Record struct {
	FileName      string
	Path          string // 本地绝对路径或远端 URL
	Size          int64
	ModifiedAt    time.Time
	Extension     string // 最后一个点之后的部分，无点则为空
	Status        string
	OCRConfidence float64
	DepartmentID  *int64
	Snippet       string // OCR 文本摘录，仅远端对象条目可能携带
}

// Catalog 一次刷新产出的不可变快照.
// 发布后任何路径都不得修改 Records.
type Catalog struct {
	Mode        string
	Version     int64  // 严格递增
	Generation  string // ULID，跨重启可区分
	RefreshedAt time.Time
	Records     []Record
}

// Source 目录数据来源，本地扫描或远端列表.
type Source interface {
	Mode() string
	List(ctx context.Context) ([]Record, error)
}

// liveFinder 支持快照未命中时的实时查找（本地模式）.
type liveFinder interface {
	FindLive(name string) (Record, bool)
}

// Index 持有当前快照并负责刷新.
type Index struct {
	source  Source
	current atomic.Pointer[Catalog]
	logger  *zerolog.Logger

	mu      sync.Mutex // 保护 version 与 ULID 熵源
	version int64
	entropy io.Reader // ulid.Monotonic，同毫秒内保证递增
}

// New 构造 Index 并发布一个空快照，检索在首次刷新前即可用（返回空结果）.
func New(source Source) *Index {
	idx := &Index{
		source:  source,
		logger:  log.Logger(),
		entropy: ulid.Monotonic(rand.Reader, 0),
	}

	idx.publish([]Record{})

	return idx
}

// Mode 返回目录模式.
func (i *Index) Mode() string {
	return i.source.Mode()
}

// Snapshot 返回当前快照，调用方只读.
func (i *Index) Snapshot() *Catalog {
	return i.current.Load()
}

// Refresh 重建快照并原子发布.
// 来源失败时保留旧快照并返回错误；并发刷新时最后发布者生效.
func (i *Index) Refresh(ctx context.Context) error {
	start := time.Now()
	mode := i.source.Mode()

	records, err := i.source.List(ctx)
	if err != nil {
		metrics.CatalogRefreshTotal.WithLabelValues(mode, "failure").Inc()
		i.logger.Error().Err(err).Str("mode", mode).Msg("Catalog refresh failed, keeping previous snapshot")

		return err
	}

	cat := i.publish(records)

	elapsed := time.Since(start)
	metrics.CatalogRefreshTotal.WithLabelValues(mode, "success").Inc()
	metrics.CatalogRefreshDuration.WithLabelValues(mode).Observe(elapsed.Seconds())
	metrics.CatalogDocuments.WithLabelValues(mode).Set(float64(len(records)))

	i.logger.Info().
		Str("mode", mode).
		Str("generation", cat.Generation).
		Int64("version", cat.Version).
		Int("documents", len(records)).
		Dur("elapsed", elapsed).
		Msg("Catalog refreshed")

	return nil
}

// publish 构建并原子发布新快照.
func (i *Index) publish(records []Record) *Catalog {
	i.mu.Lock()
	i.version++
	version := i.version
	generation := ulid.MustNew(ulid.Now(), i.entropy).String()
	i.mu.Unlock()

	cat := &Catalog{
		Mode:        i.source.Mode(),
		Version:     version,
		Generation:  generation,
		RefreshedAt: time.Now(),
		Records:     records,
	}

	i.current.Store(cat)

	return cat
}

// FindByName 在快照中按名称查找（大小写不敏感的精确匹配）.
// 本地模式快照未命中时退回到目录的实时扫描，覆盖刷新间隔内新落盘的文件.
func (i *Index) FindByName(name string) (Record, bool) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Record{}, false
	}

	for _, rec := range i.Snapshot().Records {
		if strings.EqualFold(rec.FileName, name) {
			return rec, true
		}
	}

	if lf, ok := i.source.(liveFinder); ok {
		return lf.FindLive(name)
	}

	return Record{}, false
}
