package handle

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yeisme/docvault/pkg/internal/service"
	"github.com/yeisme/docvault/pkg/internal/types"
	"github.com/yeisme/docvault/pkg/log"
)

// OCRNotify 接收 OCR 流水线回传的文档元数据.
//
//	@Summary		OCR 回调
//	@Description	OCR 流水线处理完成后回传元数据，转发到消息队列
//	@Tags			OCR
//	@Accept			json
//	@Produce		json
//	@Param			metadata	body		types.OCRNotifyRequest	true	"OCR 元数据"
//	@Success		200			{object}	types.OCRNotifyResponse	"确认响应"
//	@Failure		400			{object}	map[string]string		"请求参数错误"
//	@Router			/api/v1/ocr/notify [post]
func OCRNotify(c *gin.Context) {
	l := log.Logger()

	var req types.OCRNotifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		l.Warn().Err(err).Msg("invalid OCR notify payload")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})

		return
	}

	svc := service.NewOCRService(c.Request.Context())

	resp, err := svc.Notify(c.Request.Context(), &req)
	if err != nil {
		writeError(c, err)

		return
	}

	c.JSON(http.StatusOK, resp)
}

// OCRSearch 把检索请求透传给远端 OCR 服务.
//
//	@Summary		OCR 检索透传
//	@Description	把查询原样转发给远端 OCR 检索接口，透传 Authorization 头
//	@Tags			OCR
//	@Produce		json
//	@Param			q	query		string				false	"查询串"
//	@Success		200	{object}	object				"远端响应（原样透传）"
//	@Failure		400	{object}	map[string]string	"未配置远端地址"
//	@Failure		502	{object}	map[string]string	"远端不可用"
//	@Security		BearerAuth
//	@Router			/api/v1/ocr/search [get]
func OCRSearch(c *gin.Context) {
	svc := service.NewOCRService(c.Request.Context())

	status, contentType, body, err := svc.SearchProxy(
		c.Request.Context(),
		c.Request.URL.RawQuery,
		c.GetHeader("Authorization"),
	)
	if err != nil {
		writeError(c, err)

		return
	}

	if contentType == "" {
		contentType = "application/json"
	}

	c.Data(status, contentType, body)
}
