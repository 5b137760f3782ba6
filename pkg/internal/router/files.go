package router

import (
	"github.com/gin-gonic/gin"

	"github.com/yeisme/docvault/pkg/internal/handle"
)

// RegisterFilesRoutes 注册扁平文件列表与上传路由.
func RegisterFilesRoutes(g *gin.RouterGroup, cached gin.HandlerFunc) {
	filesRoutes := g.Group("/files")
	{
		if cached != nil {
			filesRoutes.GET("", cached, handle.ListFiles)
		} else {
			filesRoutes.GET("", handle.ListFiles)
		}

		filesRoutes.POST("/upload", handle.UploadFile)
	}
}
