package router

import (
	"github.com/gin-gonic/gin"

	"github.com/yeisme/docvault/pkg/internal/handle"
)

// RegisterOCRRoutes 注册 OCR 流水线协作路由.
func RegisterOCRRoutes(g *gin.RouterGroup) {
	ocrRoutes := g.Group("/ocr")
	{
		ocrRoutes.POST("/notify", handle.OCRNotify)
		ocrRoutes.GET("/search", handle.OCRSearch)
	}
}
