package router

import (
	"github.com/gin-gonic/gin"

	"github.com/yeisme/docvault/pkg/internal/handle"
	"github.com/yeisme/docvault/pkg/middleware"
)

// RegisterIndexRoutes 注册目录快照管理路由.
func RegisterIndexRoutes(g *gin.RouterGroup) {
	indexRoutes := g.Group("/index")
	{
		// 手动刷新仅管理员可用
		indexRoutes.POST("/refresh", middleware.RequireAdmin(), handle.RefreshIndex)
		indexRoutes.GET("/status", handle.IndexStatus)
	}
}
