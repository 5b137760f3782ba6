// Package middleware 提供认证与权限相关的中间件和辅助方法。
package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/yeisme/docvault/pkg/configs"
	"github.com/yeisme/docvault/pkg/internal/auth"
)

type principalKey struct{}

const principalContextKey = "principal"

// AuthMiddleware 基于 Bearer JWT 做统一身份认证校验。
//   - Authorization: Bearer <token>，由 TokenService 验签（HS512）
//   - 支持通过配置跳过某些路径（如 /metrics、/api/v1/health、登录端点）
//   - 验证通过后将 Principal 注入 gin.Context 与 request.Context.
func AuthMiddleware(tokens *auth.TokenService, conf configs.AuthConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		if isSkippedPath(c.Request.URL.Path, conf.SkipPaths) {
			c.Next()
			return
		}

		raw := bearerToken(c.GetHeader("Authorization"))
		if raw == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing bearer token"})
			return
		}

		principal, ok := tokens.Verify(raw)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired token"})
			return
		}

		// 保存到 gin context
		c.Set(principalContextKey, principal)
		// 也保存到 request context，便于下游 service 获取
		ctx := context.WithValue(c.Request.Context(), principalKey{}, principal)
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}

// bearerToken 从 Authorization 头提取 token；大小写不敏感的 Bearer 前缀.
func bearerToken(header string) string {
	header = strings.TrimSpace(header)
	if header == "" {
		return ""
	}

	const prefix = "bearer "
	if len(header) > len(prefix) && strings.EqualFold(header[:len(prefix)], prefix) {
		return strings.TrimSpace(header[len(prefix):])
	}

	return ""
}

func isSkippedPath(path string, skips []string) bool {
	if path == "" || len(skips) == 0 {
		return false
	}

	for _, p := range skips {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}

		if strings.HasPrefix(path, p) {
			return true
		}
	}

	return false
}

// GetPrincipal 从 gin.Context 获取当前请求的 Principal，未认证返回 nil.
func GetPrincipal(c *gin.Context) *auth.Principal {
	if v, ok := c.Get(principalContextKey); ok {
		if p, ok2 := v.(*auth.Principal); ok2 {
			return p
		}
	}
	// 回退到 request context
	if v := c.Request.Context().Value(principalKey{}); v != nil {
		if p, ok := v.(*auth.Principal); ok {
			return p
		}
	}

	return nil
}

// RequireAdmin 要求 ROLE_ADMIN，不满足则返回 403.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		p := GetPrincipal(c)
		if p == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}

		if !p.IsAdmin() {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "forbidden: admin role required"})
			return
		}

		c.Next()
	}
}
