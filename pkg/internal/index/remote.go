package index

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/bytedance/sonic"
	"github.com/rs/zerolog"
	"github.com/sony/gobreaker"

	"github.com/yeisme/docvault/pkg/configs"
	"github.com/yeisme/docvault/pkg/internal/types"
	"github.com/yeisme/docvault/pkg/log"
	"github.com/yeisme/docvault/pkg/metrics"
)

// probePaths 远端列表的候选路径，按序探测，第一个 2xx 生效.
// 顺序兼容多个版本的 OCR 服务端.
var probePaths = []string{
	"api/files/list",
	"files/list",
	"list",
	"api/files",
	"files",
}

// maxListBody 远端列表响应体的读取上限.
const maxListBody = 32 << 20 // 32MB

// RemoteSource 从外部 OCR 服务拉取文档列表.
type RemoteSource struct {
	baseURL string
	token   string
	client  *http.Client
	breaker *gobreaker.CircuitBreaker
	logger  *zerolog.Logger
}

// NewRemoteSource 构造远端来源；超时必须有限，缺省回落到默认值.
func NewRemoteSource(cfg configs.IndexConfig, cbCfg configs.CircuitBreakerConfig) *RemoteSource {
	timeout := cfg.RemoteTimeout
	if timeout <= 0 {
		timeout = configs.DefaultRemoteTimeout
	}

	settings := gobreaker.Settings{
		Name:        "ocr-remote-listing",
		MaxRequests: cbCfg.MaxRequestsInHalf,
		Interval:    time.Duration(cbCfg.IntervalSeconds) * time.Second,
		Timeout:     time.Duration(cbCfg.TimeoutSeconds) * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			total := counts.Requests
			if total < cbCfg.MinRequests {
				return false
			}
			// 失败比例
			failureRate := float64(counts.TotalFailures) / float64(total)
			return failureRate >= cbCfg.FailureRate
		},
	}

	return &RemoteSource{
		baseURL: strings.TrimRight(strings.TrimSpace(cfg.RemoteURL), "/"),
		token:   strings.TrimSpace(cfg.APIToken),
		client:  &http.Client{Timeout: timeout},
		breaker: gobreaker.NewCircuitBreaker(settings),
		logger:  log.Logger(),
	}
}

// Mode 返回 remote.
func (s *RemoteSource) Mode() string {
	return ModeRemote
}

// List 按序探测候选路径：404 静默跳过，其他非 2xx 记日志后跳过，
// 第一个 2xx 响应解析后返回；全部失败时返回错误（旧快照保留）.
func (s *RemoteSource) List(ctx context.Context) ([]Record, error) {
	var lastErr error

	for _, path := range probePaths {
		records, err := s.probe(ctx, path)
		if err == nil {
			metrics.RemoteProbeTotal.WithLabelValues(path, "success").Inc()
			return records, nil
		}

		metrics.RemoteProbeTotal.WithLabelValues(path, "failure").Inc()

		if errNotFound(err) {
			// 404 是正常的版本差异，换下一个候选
			lastErr = err
			continue
		}

		s.logger.Warn().Err(err).Str("path", path).Msg("Remote listing probe failed, trying next candidate")
		lastErr = err
	}

	return nil, fmt.Errorf("%w: %v", types.ErrRemoteUnavailable, lastErr)
}

// errStatus 携带 HTTP 状态码的探测错误.
type errStatus struct {
	code int
	path string
}

func (e *errStatus) Error() string {
	return fmt.Sprintf("probe %s returned status %d", e.path, e.code)
}

func errNotFound(err error) bool {
	if es, ok := err.(*errStatus); ok {
		return es.code == http.StatusNotFound
	}

	return false
}

// probe 请求单个候选路径，经过熔断器.
func (s *RemoteSource) probe(ctx context.Context, path string) ([]Record, error) {
	result, err := s.breaker.Execute(func() (any, error) {
		return s.fetch(ctx, path)
	})
	if err != nil {
		return nil, err
	}

	records, ok := result.([]Record)
	if !ok {
		return nil, fmt.Errorf("unexpected probe result type")
	}

	return records, nil
}

func (s *RemoteSource) fetch(ctx context.Context, path string) ([]Record, error) {
	endpoint := s.baseURL + "/" + path

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}

	req.Header.Set("Accept", "application/json")

	if s.token != "" {
		req.Header.Set("Authorization", "Bearer "+s.token)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		// 丢弃响应体，保持连接可复用
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxListBody))

		return nil, &errStatus{code: resp.StatusCode, path: path}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxListBody))
	if err != nil {
		return nil, err
	}

	return s.parseListing(body, path)
}

// remoteItem 远端列表的对象形式条目，字段名兼容多个版本.
type remoteItem struct {
	Filename     string  `json:"filename"`
	FileName     string  `json:"fileName"`
	Name         string  `json:"name"`
	URL          string  `json:"url"`
	Size         int64   `json:"size"`
	ModifiedAt   string  `json:"modifiedAt"`
	Status       string  `json:"status"`
	Confidence   float64 `json:"confidence"`
	DepartmentID *int64  `json:"departmentId"`
	Snippet      string  `json:"snippet"`
}

func (it *remoteItem) name() string {
	for _, n := range []string{it.Filename, it.FileName, it.Name} {
		if strings.TrimSpace(n) != "" {
			return strings.TrimSpace(n)
		}
	}

	return ""
}

// parseListing 支持两种响应体：纯文件名数组，或对象数组.
// winningPath 是本次胜出的探测路径，条目缺 url 时据此构造兜底定位符.
func (s *RemoteSource) parseListing(body []byte, winningPath string) ([]Record, error) {
	// 先尝试纯名称数组
	var names []string
	if err := sonic.Unmarshal(body, &names); err == nil {
		records := make([]Record, 0, len(names))

		for _, name := range names {
			name = strings.TrimSpace(name)
			if name == "" {
				continue
			}

			records = append(records, Record{
				FileName:  name,
				Path:      s.fileURL(winningPath, name),
				Extension: extensionOf(name),
				Status:    StatusCompleted,
			})
		}

		return records, nil
	}

	var items []remoteItem
	if err := sonic.Unmarshal(body, &items); err != nil {
		return nil, fmt.Errorf("failed to decode remote listing: %w", err)
	}

	records := make([]Record, 0, len(items))

	for _, item := range items {
		name := item.name()
		if name == "" {
			continue
		}

		rec := Record{
			FileName:      name,
			Path:          item.URL,
			Size:          item.Size,
			Extension:     extensionOf(name),
			Status:        item.Status,
			OCRConfidence: item.Confidence,
			DepartmentID:  item.DepartmentID,
			Snippet:       item.Snippet,
		}

		if rec.Path == "" {
			rec.Path = s.fileURL(winningPath, name)
		}

		if rec.Status == "" {
			rec.Status = StatusCompleted
		}

		if item.ModifiedAt != "" {
			if ts, err := time.Parse(time.RFC3339, item.ModifiedAt); err == nil {
				rec.ModifiedAt = ts
			}
		}

		records = append(records, rec)
	}

	return records, nil
}

// fileURL 远端条目缺少 url 时，用胜出端点的基址 + 转义文件名兜底.
// 列表端点去掉末段 list 即文件集合基址："api/files/list" → "api/files"，
// 裸 "list" 端点退化为远端根地址.
func (s *RemoteSource) fileURL(winningPath, name string) string {
	base := strings.Trim(strings.TrimSuffix(winningPath, "list"), "/")
	if base == "" {
		return s.baseURL + "/" + url.PathEscape(name)
	}

	return s.baseURL + "/" + base + "/" + url.PathEscape(name)
}
