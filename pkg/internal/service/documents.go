package service

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/bytedance/sonic"
	"github.com/cespare/xxhash/v2"

	"github.com/yeisme/docvault/pkg/cache"
	"github.com/yeisme/docvault/pkg/configs"
	ctxPkg "github.com/yeisme/docvault/pkg/context"
	"github.com/yeisme/docvault/pkg/internal/auth"
	"github.com/yeisme/docvault/pkg/internal/index"
	"github.com/yeisme/docvault/pkg/internal/model"
	"github.com/yeisme/docvault/pkg/internal/storage/db"
	"github.com/yeisme/docvault/pkg/internal/storage/mq"
	"github.com/yeisme/docvault/pkg/internal/types"
	"github.com/yeisme/docvault/pkg/log"
	"github.com/yeisme/docvault/pkg/metrics"
	"github.com/yeisme/docvault/pkg/queue"
)

const (
	// searchCacheTTL 检索结果缓存时长；键里编入了快照代号，刷新即整体失效.
	searchCacheTTL = 30 * time.Second
	// filterQueryLimit 过滤器候选值的单次查询上限.
	filterQueryLimit = 200
)

// DocumentService 文档目录的检索、定位、上传与刷新.
type DocumentService struct {
	idx      *index.Index
	resolver *index.Resolver
	// local 仅本地模式非 nil
	local *index.LocalSource

	dbClient *db.Client
	mqClient *mq.Client
	cache    *cache.Cache
}

// NewDocumentService 从请求上下文组装文档服务.
// idx/resolver/local 为应用级单例，由 handle 层透传.
func NewDocumentService(c context.Context, idx *index.Index, resolver *index.Resolver, local *index.LocalSource) *DocumentService {
	svc := &DocumentService{
		idx:      idx,
		resolver: resolver,
		local:    local,
		dbClient: ctxPkg.GetDBClient(c),
		mqClient: ctxPkg.GetMQClient(c),
	}

	if kvClient := ctxPkg.GetKVClient(c); kvClient != nil {
		svc.cache = cache.NewCache(kvClient.KVStore)
	}

	return svc
}

// Remote 报告目录是否为远端模式（下载走重定向而非本地发送）.
func (s *DocumentService) Remote() bool {
	return s.idx.Mode() == index.ModeRemote
}

// Search 在当前快照上执行检索，结果按快照代号缓存.
func (s *DocumentService) Search(ctx context.Context, req *types.SearchDocumentsRequest) (*types.SearchDocumentsResponse, error) {
	cat := s.idx.Snapshot()

	start := time.Now()
	defer func() {
		metrics.SearchDuration.WithLabelValues(cat.Mode).Observe(time.Since(start).Seconds())
	}()

	if s.cache == nil {
		return index.Search(req, cat), nil
	}

	key := searchCacheKey(req, cat.Generation)

	return cache.GetOrSet(ctx, s.cache, key, func() (*types.SearchDocumentsResponse, error) {
		return index.Search(req, cat), nil
	}, searchCacheTTL)
}

// searchCacheKey 生成检索缓存键：快照代号 + 规范化请求的哈希.
func searchCacheKey(req *types.SearchDocumentsRequest, generation string) string {
	raw, err := sonic.Marshal(req)
	if err != nil {
		raw = fmt.Appendf(nil, "%+v", req)
	}

	return fmt.Sprintf("search:%s:%x", generation, xxhash.Sum64(raw))
}

// ListFiles 返回快照中的扁平文件列表，可选按名称做大小写不敏感子串过滤.
func (s *DocumentService) ListFiles(nameFilter string) *types.ListFilesResponse {
	cat := s.idx.Snapshot()
	filter := strings.ToLower(strings.TrimSpace(nameFilter))

	files := make([]types.DocumentInfo, 0, len(cat.Records))

	for _, rec := range cat.Records {
		if filter != "" && !strings.Contains(strings.ToLower(rec.FileName), filter) {
			continue
		}

		files = append(files, index.RecordInfo(rec))
	}

	return &types.ListFilesResponse{Files: files, Total: len(files)}
}

// FindFile 按名称查找单个文件（大小写不敏感的精确匹配）.
func (s *DocumentService) FindFile(name string) (*types.FindFileResponse, error) {
	rec, ok := s.idx.FindByName(name)
	if !ok {
		return nil, fmt.Errorf("%w: %s", types.ErrNotFound, strings.TrimSpace(name))
	}

	return &types.FindFileResponse{Document: index.RecordInfo(rec)}, nil
}

// Meta 返回文档元数据，先过部门访问门禁，命中后发布访问事件.
func (s *DocumentService) Meta(ctx context.Context, p *auth.Principal, name string) (*types.FindFileResponse, error) {
	rec, err := s.gatedRecord(p, name)
	if err != nil {
		return nil, err
	}

	// 访问事件量大，单独受开关控制
	if configs.GetConfig().Events.Document.Accessed {
		s.publish(func(pub message.Publisher) error {
			return queue.PublishDocumentAccessed(pub, queue.DocumentAccessedPayload{
				Document: docRef(rec),
				UserID:   p.UserID,
			}, queue.WithProducer(producerName))
		})
	}

	return &types.FindFileResponse{Document: index.RecordInfo(rec)}, nil
}

// Download 解析文档的下载路径（本地绝对路径或远端 URL），先过部门门禁.
func (s *DocumentService) Download(ctx context.Context, p *auth.Principal, name string) (string, error) {
	rec, err := s.gatedRecord(p, name)
	if err != nil {
		return "", err
	}

	path, err := s.resolver.Resolve(rec.FileName)
	if err != nil {
		return "", err
	}

	s.publish(func(pub message.Publisher) error {
		return queue.PublishDocumentDownloaded(pub, queue.DocumentDownloadedPayload{
			Document: docRef(rec),
			UserID:   p.UserID,
		}, queue.WithProducer(producerName))
	})

	return path, nil
}

// gatedRecord 查找记录并应用部门访问门禁.
func (s *DocumentService) gatedRecord(p *auth.Principal, name string) (index.Record, error) {
	rec, ok := s.idx.FindByName(name)
	if !ok {
		return index.Record{}, fmt.Errorf("%w: %s", types.ErrNotFound, strings.TrimSpace(name))
	}

	if !auth.CanAccessDocument(p, rec.DepartmentID) {
		return index.Record{}, types.ErrForbidden
	}

	return rec, nil
}

// OpenAbsolute 校验特权端点传入的绝对路径.
func (s *DocumentService) OpenAbsolute(path string) (string, error) {
	return s.resolver.OpenAbsolute(path)
}

// Upload 把文件写入 incoming-scan，交由 OCR 流水线处理.
// 仅本地模式可用；文件名中的目录成分剥除（防穿越）.
func (s *DocumentService) Upload(ctx context.Context, fileName string, src io.Reader, uploader string) (*types.UploadDocumentResponse, error) {
	if s.local == nil {
		return nil, fmt.Errorf("%w: uploads require local catalog mode", types.ErrInvalidRequest)
	}

	base := filepath.Base(strings.TrimSpace(fileName))
	if base == "" || base == "." || base == ".." || base == string(filepath.Separator) {
		return nil, fmt.Errorf("%w: invalid file name %q", types.ErrInvalidRequest, fileName)
	}

	dst := filepath.Join(s.local.IncomingDir(), base)

	f, err := os.Create(dst)
	if err != nil {
		return nil, fmt.Errorf("failed to create %s: %w", dst, err)
	}

	written, err := io.Copy(f, src)
	if closeErr := f.Close(); err == nil {
		err = closeErr
	}

	if err != nil {
		// 半成品不留给流水线
		_ = os.Remove(dst)

		return nil, fmt.Errorf("failed to write %s: %w", dst, err)
	}

	if configs.GetConfig().Events.Document.Uploaded {
		s.publish(func(pub message.Publisher) error {
			return queue.PublishDocumentUploaded(pub, queue.DocumentUploadedPayload{
				Document: queue.DocumentRef{
					FileName:  base,
					Path:      dst,
					Size:      written,
					Extension: strings.TrimPrefix(filepath.Ext(base), "."),
				},
				Uploader: uploader,
				Source:   "api",
			}, queue.WithProducer(producerName))
		})
	}

	return &types.UploadDocumentResponse{
		FileName: base,
		Size:     written,
		Path:     dst,
		Success:  true,
	}, nil
}

// Status 返回当前快照状态.
func (s *DocumentService) Status() *types.IndexStatusResponse {
	return catalogStatus(s.idx.Snapshot())
}

// Refresh 重建目录快照并发布刷新事件.
func (s *DocumentService) Refresh(ctx context.Context, requester string) (*types.RefreshIndexResponse, error) {
	start := time.Now()

	if err := s.idx.Refresh(ctx); err != nil {
		s.publish(func(pub message.Publisher) error {
			msg, merr := queue.NewWatermillMessage(queue.TopicCatalogRefreshFailed, queue.CatalogRefreshFailedPayload{
				Mode:  s.idx.Mode(),
				Error: err.Error(),
			}, queue.WithProducer(producerName))
			if merr != nil {
				return merr
			}

			return pub.Publish(queue.TopicCatalogRefreshFailed, msg)
		})

		return nil, err
	}

	cat := s.idx.Snapshot()

	if configs.GetConfig().Events.Document.CatalogRefreshed {
		s.publish(func(pub message.Publisher) error {
			return queue.PublishCatalogRefreshed(pub, queue.CatalogRefreshedPayload{
				Mode:       cat.Mode,
				Generation: cat.Generation,
				Documents:  len(cat.Records),
				Duration:   time.Since(start),
			}, queue.WithProducer(producerName))
		})
	}

	log.Logger().Info().
		Str("requester", requester).
		Str("generation", cat.Generation).
		Msg("Catalog refresh requested")

	return &types.RefreshIndexResponse{Status: *catalogStatus(cat)}, nil
}

// Departments 返回部门名称列表（检索过滤器候选值）.
func (s *DocumentService) Departments(ctx context.Context) (*types.FilterValuesResponse, error) {
	if s.dbClient == nil {
		return &types.FilterValuesResponse{Values: []string{}}, nil
	}

	var names []string

	err := s.dbClient.GetDB().WithContext(ctx).
		Model(&model.Department{}).
		Order("name").
		Limit(filterQueryLimit).
		Pluck("name", &names).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list departments: %w", err)
	}

	return &types.FilterValuesResponse{Values: names}, nil
}

// Clients 返回客户名称列表，可按前缀过滤（大小写不敏感）.
func (s *DocumentService) Clients(ctx context.Context, prefix string) (*types.FilterValuesResponse, error) {
	if s.dbClient == nil {
		return &types.FilterValuesResponse{Values: []string{}}, nil
	}

	q := s.dbClient.GetDB().WithContext(ctx).
		Model(&model.Client{}).
		Order("name").
		Limit(filterQueryLimit)

	if prefix = strings.TrimSpace(prefix); prefix != "" {
		q = q.Where("lower(name) LIKE ?", strings.ToLower(prefix)+"%")
	}

	var names []string
	if err := q.Pluck("name", &names).Error; err != nil {
		return nil, fmt.Errorf("failed to list clients: %w", err)
	}

	return &types.FilterValuesResponse{Values: names}, nil
}

// FileExtensions 返回快照中出现过的扩展名（去重、小写、排序）.
func (s *DocumentService) FileExtensions() *types.FilterValuesResponse {
	cat := s.idx.Snapshot()
	seen := make(map[string]struct{}, 8)

	for _, rec := range cat.Records {
		if rec.Extension == "" {
			continue
		}

		seen[strings.ToLower(rec.Extension)] = struct{}{}
	}

	values := make([]string, 0, len(seen))
	for ext := range seen {
		values = append(values, ext)
	}

	sort.Strings(values)

	return &types.FilterValuesResponse{Values: values}
}

// publish 尽力而为地发布事件，失败仅记日志，不影响主流程.
func (s *DocumentService) publish(fn func(pub message.Publisher) error) {
	if s.mqClient == nil || !configs.GetConfig().Events.Enabled {
		return
	}

	if err := fn(s.mqClient.Publisher()); err != nil {
		log.Logger().Warn().Err(err).Msg("Failed to publish event")
	}
}

// docRef 把内部 Record 转为事件负载中的文档引用.
func docRef(rec index.Record) queue.DocumentRef {
	return queue.DocumentRef{
		FileName:     rec.FileName,
		Path:         rec.Path,
		Size:         rec.Size,
		Extension:    rec.Extension,
		DepartmentID: rec.DepartmentID,
		Status:       rec.Status,
	}
}

// catalogStatus 把快照转为对外的状态结构.
func catalogStatus(cat *index.Catalog) *types.IndexStatusResponse {
	status := &types.IndexStatusResponse{
		Mode:       cat.Mode,
		Generation: cat.Generation,
		Version:    cat.Version,
		Documents:  len(cat.Records),
	}

	if !cat.RefreshedAt.IsZero() {
		status.RefreshedAt = cat.RefreshedAt.Format(time.RFC3339)
	}

	return status
}
