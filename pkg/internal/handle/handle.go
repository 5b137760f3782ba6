// Package handle 提供 HTTP 请求处理器，绑定请求、调用服务层并映射错误.
package handle

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yeisme/docvault/pkg/internal/auth"
	"github.com/yeisme/docvault/pkg/internal/index"
	"github.com/yeisme/docvault/pkg/internal/service"
	"github.com/yeisme/docvault/pkg/internal/types"
	"github.com/yeisme/docvault/pkg/middleware"
)

// 应用级单例，由 Init 注入一次（路由注册前）.
var (
	tokenService    *auth.TokenService
	catalogIndex    *index.Index
	catalogResolver *index.Resolver
	// localSource 仅本地模式非 nil
	localSource *index.LocalSource
)

// Init 注入处理器依赖，必须在路由注册前调用.
func Init(tokens *auth.TokenService, idx *index.Index, resolver *index.Resolver, local *index.LocalSource) {
	tokenService = tokens
	catalogIndex = idx
	catalogResolver = resolver
	localSource = local
}

// docService 按请求上下文组装文档服务.
func docService(c *gin.Context) *service.DocumentService {
	return service.NewDocumentService(c.Request.Context(), catalogIndex, catalogResolver, localSource)
}

// principal 取出认证中间件还原的请求方身份.
func principal(c *gin.Context) *auth.Principal {
	return middleware.GetPrincipal(c)
}

// writeError 把服务层错误哨兵映射为 HTTP 状态码.
func writeError(c *gin.Context, err error) {
	status := http.StatusInternalServerError

	switch {
	case errors.Is(err, types.ErrInvalidRequest):
		status = http.StatusBadRequest
	case errors.Is(err, types.ErrUnauthorized), errors.Is(err, types.ErrBadCredentials):
		status = http.StatusUnauthorized
	case errors.Is(err, types.ErrForbidden):
		status = http.StatusForbidden
	case errors.Is(err, types.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, types.ErrUserExists):
		status = http.StatusConflict
	case errors.Is(err, types.ErrRemoteUnavailable):
		status = http.StatusBadGateway
	}

	c.JSON(status, gin.H{"error": err.Error()})
}

func DefaultHandler(c *gin.Context) {
	c.JSON(http.StatusNotImplemented, gin.H{"message": "Not Implemented"})
}
