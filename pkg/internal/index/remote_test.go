package index_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/yeisme/docvault/pkg/configs"
	"github.com/yeisme/docvault/pkg/internal/index"
	"github.com/yeisme/docvault/pkg/internal/types"
)

// newRemote 构造指向测试服务器的 RemoteSource.
func newRemote(t *testing.T, serverURL, token string) *index.RemoteSource {
	t.Helper()

	return index.NewRemoteSource(
		configs.IndexConfig{
			RemoteURL:     serverURL,
			APIToken:      token,
			RemoteTimeout: 2 * time.Second,
		},
		configs.CircuitBreakerConfig{
			FailureRate:       0.5,
			MinRequests:       100, // 测试中不触发熔断
			IntervalSeconds:   60,
			TimeoutSeconds:    30,
			MaxRequestsInHalf: 5,
		},
	)
}

// TestRemoteList_FirstCandidateWins 测试第一个 2xx 候选生效.
func TestRemoteList_FirstCandidateWins(t *testing.T) {
	var hits []string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits = append(hits, r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`["a.pdf","b.pdf"]`))
	}))
	defer server.Close()

	src := newRemote(t, server.URL, "")

	records, err := src.List(context.Background())
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}

	if len(records) != 2 {
		t.Fatalf("Expected 2 records, got %d", len(records))
	}

	if len(hits) != 1 || hits[0] != "/api/files/list" {
		t.Errorf("Expected single hit on /api/files/list, got %v", hits)
	}

	// 纯名称数组：定位符由胜出端点的基址兜底，状态默认 COMPLETED
	if records[0].Path != server.URL+"/api/files/a.pdf" {
		t.Errorf("Unexpected fallback url: %s", records[0].Path)
	}

	if records[0].Status != index.StatusCompleted {
		t.Errorf("Expected default COMPLETED status, got %s", records[0].Status)
	}
}

// TestRemoteList_404FallsThrough 测试 404 静默换下一个候选.
func TestRemoteList_404FallsThrough(t *testing.T) {
	var hits []string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits = append(hits, r.URL.Path)

		if r.URL.Path != "/list" {
			http.NotFound(w, r)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`["x.pdf"]`))
	}))
	defer server.Close()

	src := newRemote(t, server.URL, "")

	records, err := src.List(context.Background())
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}

	if len(records) != 1 || records[0].FileName != "x.pdf" {
		t.Fatalf("Unexpected records: %+v", records)
	}

	// 裸 list 端点胜出时，兜底定位符退化为远端根地址
	if records[0].Path != server.URL+"/x.pdf" {
		t.Errorf("Unexpected fallback url for bare list endpoint: %s", records[0].Path)
	}

	want := []string{"/api/files/list", "/files/list", "/list"}
	if len(hits) != len(want) {
		t.Fatalf("Expected %d probes, got %v", len(want), hits)
	}

	for i, p := range want {
		if hits[i] != p {
			t.Errorf("Probe %d: expected %s, got %s", i, p, hits[i])
		}
	}
}

// TestRemoteList_ServerErrorFallsThrough 测试非 404 错误也换候选（带日志）.
func TestRemoteList_ServerErrorFallsThrough(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/files/list" {
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`["ok.pdf"]`))

			return
		}

		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	src := newRemote(t, server.URL, "")

	records, err := src.List(context.Background())
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}

	if len(records) != 1 || records[0].FileName != "ok.pdf" {
		t.Fatalf("Unexpected records: %+v", records)
	}
}

// TestRemoteList_AllFail 测试所有候选失败时返回 ErrRemoteUnavailable.
func TestRemoteList_AllFail(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer server.Close()

	src := newRemote(t, server.URL, "")

	_, err := src.List(context.Background())
	if !errors.Is(err, types.ErrRemoteUnavailable) {
		t.Fatalf("Expected ErrRemoteUnavailable, got %v", err)
	}
}

// TestRemoteList_ObjectArray 测试对象数组响应与字段兼容.
func TestRemoteList_ObjectArray(t *testing.T) {
	body := `[
		{"filename":"a.pdf","url":"https://cdn.example.com/a.pdf","size":10,"status":"PENDING","confidence":0.7,"departmentId":3,"modifiedAt":"2024-05-01T10:00:00Z","snippet":"quarterly statement"},
		{"fileName":"b.pdf"},
		{"name":"c with space.pdf"},
		{"url":"https://cdn.example.com/anon.pdf"}
	]`

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(body))
	}))
	defer server.Close()

	src := newRemote(t, server.URL, "")

	records, err := src.List(context.Background())
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}

	// 第四项无任何名称字段，被跳过
	if len(records) != 3 {
		t.Fatalf("Expected 3 records, got %d", len(records))
	}

	a := records[0]
	if a.Path != "https://cdn.example.com/a.pdf" {
		t.Errorf("Expected explicit url to win, got %s", a.Path)
	}

	if a.Status != "PENDING" || a.OCRConfidence != 0.7 {
		t.Errorf("Unexpected metadata: %+v", a)
	}

	if a.DepartmentID == nil || *a.DepartmentID != 3 {
		t.Errorf("Expected departmentId 3, got %v", a.DepartmentID)
	}

	if a.ModifiedAt.IsZero() {
		t.Error("Expected modifiedAt to be parsed")
	}

	if a.Snippet != "quarterly statement" {
		t.Errorf("Expected snippet passthrough, got %q", a.Snippet)
	}

	// 缺 url 的条目用胜出端点基址 + 转义名兜底
	c := records[2]
	if c.Path != server.URL+"/api/files/c%20with%20space.pdf" {
		t.Errorf("Expected escaped fallback url, got %s", c.Path)
	}
}

// TestRemoteList_BearerToken 测试配置了 api token 时携带 Authorization 头.
func TestRemoteList_BearerToken(t *testing.T) {
	var gotAuth string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[]`))
	}))
	defer server.Close()

	src := newRemote(t, server.URL, "secret-token")

	if _, err := src.List(context.Background()); err != nil {
		t.Fatalf("List failed: %v", err)
	}

	if gotAuth != "Bearer secret-token" {
		t.Errorf("Expected bearer header, got %q", gotAuth)
	}
}
