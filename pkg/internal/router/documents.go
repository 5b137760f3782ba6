package router

import (
	"github.com/gin-gonic/gin"

	"github.com/yeisme/docvault/pkg/internal/handle"
	"github.com/yeisme/docvault/pkg/middleware"
)

// RegisterDocumentsRoutes 注册文档检索与下载路由.
func RegisterDocumentsRoutes(g *gin.RouterGroup, cached gin.HandlerFunc) {
	docsRoutes := g.Group("/documents")
	{
		// 检索（任何已认证角色；服务层按快照代号缓存）
		docsRoutes.POST("/search", handle.SearchDocuments)

		// 按名称从已索引目录下载
		docsRoutes.GET("/files", handle.DownloadByName)
		// 按绝对路径下载（仅管理员）
		docsRoutes.GET("/file", middleware.RequireAdmin(), handle.DownloadByPath)

		// 单个文档：元数据与下载走部门门禁
		singleGroup := docsRoutes.Group("/:name")
		{
			singleGroup.GET("/meta", handle.DocumentMeta)
			singleGroup.GET("/download", handle.DocumentDownload)
		}

		// 过滤器候选值，接响应缓存
		filterGroup := docsRoutes.Group("/filters")
		if cached != nil {
			filterGroup.Use(cached)
		}
		{
			filterGroup.GET("/departments", handle.FilterDepartments)
			filterGroup.GET("/clients", handle.FilterClients)
			filterGroup.GET("/file-extensions", handle.FilterFileExtensions)
		}
	}
}
