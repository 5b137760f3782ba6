// Package router 管理路由配置，将路径绑定到 pkg/internal/handle 的处理器.
package router

import (
	"github.com/gin-gonic/gin"
)

// Options 路由注册选项.
type Options struct {
	// ResponseCache 可选的 GET 响应缓存中间件，挂在过滤器与列表端点上.
	ResponseCache gin.HandlerFunc
}

// RegisterAll 在 /api/v1 路由组上注册全部业务路由.
func RegisterAll(api *gin.RouterGroup, opts Options) {
	RegisterAuthRoutes(api)
	RegisterDocumentsRoutes(api, opts.ResponseCache)
	RegisterFilesRoutes(api, opts.ResponseCache)
	RegisterIndexRoutes(api)
	RegisterOCRRoutes(api)
	RegisterHealthCheckRoute(api)
	RegisterSchedulerRoutes(api)
}
