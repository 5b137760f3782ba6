package service

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/yeisme/docvault/pkg/configs"
	ctxPkg "github.com/yeisme/docvault/pkg/context"
	"github.com/yeisme/docvault/pkg/internal/storage/mq"
	"github.com/yeisme/docvault/pkg/internal/types"
	"github.com/yeisme/docvault/pkg/log"
	"github.com/yeisme/docvault/pkg/queue"
	"github.com/yeisme/docvault/pkg/rule"
)

const (
	// remoteSearchPath 远端 OCR 服务的检索端点.
	remoteSearchPath = "/api/search"
	// maxProxyBodyBytes 透传响应体的上限.
	maxProxyBodyBytes = 8 << 20
)

// OCRService 处理外部 OCR 流水线的回调与检索透传.
type OCRService struct {
	mqClient   *mq.Client
	cfg        configs.IndexConfig
	httpClient *http.Client
}

// NewOCRService 从请求上下文组装 OCR 服务.
func NewOCRService(c context.Context) *OCRService {
	cfg := configs.GetConfig().Index

	timeout := cfg.RemoteTimeout
	if timeout <= 0 {
		timeout = configs.DefaultRemoteTimeout
	}

	return &OCRService{
		mqClient:   ctxPkg.GetMQClient(c),
		cfg:        cfg,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// Notify 接收 OCR 流水线回传的元数据并转发到消息队列.
// 回调端点是确认语义：入队失败只记日志，仍然返回已接受.
func (s *OCRService) Notify(ctx context.Context, req *types.OCRNotifyRequest) (*types.OCRNotifyResponse, error) {
	if err := rule.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("%w: %v", types.ErrInvalidRequest, err)
	}

	payload := queue.OCRMetadataPayload{
		Document: queue.DocumentRef{
			FileName:     req.FileName,
			Path:         req.Path,
			Status:       req.Status,
			DepartmentID: req.DepartmentID,
		},
		Confidence: req.Confidence,
		PageCount:  req.PageCount,
		Language:   req.Language,
	}

	events := configs.GetConfig().Events
	if s.mqClient != nil && events.Enabled && events.Document.OCRMetadata {
		if err := queue.PublishOCRMetadata(s.mqClient.Publisher(), payload, queue.WithProducer(producerName)); err != nil {
			log.Logger().Warn().Err(err).Str("file", req.FileName).Msg("Failed to publish OCR metadata event")
		}
	}

	return &types.OCRNotifyResponse{Accepted: true, FileName: req.FileName}, nil
}

// SearchProxy 把检索请求透传给远端 OCR 服务.
// 调用方的 Authorization 头原样转发；缺失时回落到配置的 API token.
// 返回远端的状态码、Content-Type 与响应体，由 handle 层原样回写.
func (s *OCRService) SearchProxy(ctx context.Context, rawQuery, authorization string) (int, string, []byte, error) {
	if !s.cfg.RemoteEnabled() {
		return 0, "", nil, fmt.Errorf("%w: no remote OCR endpoint configured", types.ErrInvalidRequest)
	}

	endpoint := strings.TrimRight(s.cfg.RemoteURL, "/") + remoteSearchPath
	if rawQuery != "" {
		endpoint += "?" + rawQuery
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return 0, "", nil, fmt.Errorf("failed to build remote search request: %w", err)
	}

	switch {
	case authorization != "":
		req.Header.Set("Authorization", authorization)
	case s.cfg.APIToken != "":
		req.Header.Set("Authorization", "Bearer "+s.cfg.APIToken)
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return 0, "", nil, fmt.Errorf("%w: %v", types.ErrRemoteUnavailable, err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxProxyBodyBytes))
	if err != nil {
		return 0, "", nil, fmt.Errorf("%w: %v", types.ErrRemoteUnavailable, err)
	}

	return resp.StatusCode, resp.Header.Get("Content-Type"), body, nil
}
