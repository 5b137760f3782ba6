package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/yeisme/docvault/pkg/configs"
	"github.com/yeisme/docvault/pkg/internal/auth"
	"github.com/yeisme/docvault/pkg/middleware"
)

// testSecret 64 字节原始密钥；末尾的 '!' 避免被当作 Base64 解码.
const testSecret = "0123456789abcdef0123456789abcdef0123456789abcdef0123456789abcde!"

func newAuthRouter(t *testing.T) (*gin.Engine, *auth.TokenService) {
	t.Helper()

	gin.SetMode(gin.TestMode)

	cfg := configs.AuthConfig{
		Secret:    testSecret,
		TokenTTL:  time.Hour,
		SkipPaths: []string{"/api/v1/health", "/api/v1/auth/login"},
	}

	tokens, err := auth.NewTokenService(cfg)
	if err != nil {
		t.Fatalf("NewTokenService failed: %v", err)
	}

	r := gin.New()
	r.Use(middleware.AuthMiddleware(tokens, cfg))
	r.GET("/api/v1/health", func(c *gin.Context) { c.Status(http.StatusOK) })
	r.GET("/api/v1/documents/search", func(c *gin.Context) {
		p := middleware.GetPrincipal(c)
		if p == nil {
			c.Status(http.StatusInternalServerError)
			return
		}

		c.JSON(http.StatusOK, gin.H{"username": p.Username})
	})
	r.POST("/api/v1/index/refresh", middleware.RequireAdmin(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	return r, tokens
}

func doRequest(r *gin.Engine, method, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	return w
}

func TestAuthMiddleware_SkipPaths(t *testing.T) {
	r, _ := newAuthRouter(t)

	if w := doRequest(r, http.MethodGet, "/api/v1/health", ""); w.Code != http.StatusOK {
		t.Errorf("Expected skip path to pass without token, got %d", w.Code)
	}
}

func TestAuthMiddleware_MissingToken(t *testing.T) {
	r, _ := newAuthRouter(t)

	if w := doRequest(r, http.MethodGet, "/api/v1/documents/search", ""); w.Code != http.StatusUnauthorized {
		t.Errorf("Expected 401 without token, got %d", w.Code)
	}
}

func TestAuthMiddleware_InvalidToken(t *testing.T) {
	r, _ := newAuthRouter(t)

	if w := doRequest(r, http.MethodGet, "/api/v1/documents/search", "not-a-jwt"); w.Code != http.StatusUnauthorized {
		t.Errorf("Expected 401 for garbage token, got %d", w.Code)
	}
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	r, tokens := newAuthRouter(t)

	token, err := tokens.Issue(&auth.Principal{UserID: 1, Username: "alice", Roles: []auth.Role{auth.RoleUser}})
	if err != nil {
		t.Fatalf("Issue failed: %v", err)
	}

	w := doRequest(r, http.MethodGet, "/api/v1/documents/search", token)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200 with valid token, got %d: %s", w.Code, w.Body.String())
	}
}

func TestRequireAdmin(t *testing.T) {
	r, tokens := newAuthRouter(t)

	userToken, err := tokens.Issue(&auth.Principal{UserID: 1, Username: "alice", Roles: []auth.Role{auth.RoleUser}})
	if err != nil {
		t.Fatalf("Issue failed: %v", err)
	}

	adminToken, err := tokens.Issue(&auth.Principal{UserID: 2, Username: "root", Roles: []auth.Role{auth.RoleAdmin}})
	if err != nil {
		t.Fatalf("Issue failed: %v", err)
	}

	if w := doRequest(r, http.MethodPost, "/api/v1/index/refresh", userToken); w.Code != http.StatusForbidden {
		t.Errorf("Expected 403 for non-admin, got %d", w.Code)
	}

	if w := doRequest(r, http.MethodPost, "/api/v1/index/refresh", adminToken); w.Code != http.StatusOK {
		t.Errorf("Expected 200 for admin, got %d", w.Code)
	}
}
