package handle

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yeisme/docvault/pkg/log"
)

// ListFiles 返回当前快照的扁平文件列表.
//
//	@Summary		文件列表
//	@Description	返回当前目录快照中的全部文件，可选按名称子串过滤
//	@Tags			文件
//	@Produce		json
//	@Param			name	query		string					false	"名称子串（大小写不敏感）"
//	@Success		200		{object}	types.ListFilesResponse	"文件列表"
//	@Security		BearerAuth
//	@Router			/api/v1/files [get]
func ListFiles(c *gin.Context) {
	c.JSON(http.StatusOK, docService(c).ListFiles(c.Query("name")))
}

// UploadFile 把单个文件写入 incoming-scan，交由 OCR 流水线处理.
//
//	@Summary		上传文件
//	@Description	multipart 上传单个文件到 incoming-scan 目录；仅本地模式可用
//	@Tags			文件
//	@Accept			multipart/form-data
//	@Produce		json
//	@Param			file	formData	file							true	"上传的文件"
//	@Success		200		{object}	types.UploadDocumentResponse	"上传结果"
//	@Failure		400		{object}	map[string]string				"请求非法或远端模式"
//	@Security		BearerAuth
//	@Router			/api/v1/files/upload [post]
func UploadFile(c *gin.Context) {
	l := log.Logger()

	file, err := c.FormFile("file")
	if err != nil {
		l.Warn().Err(err).Msg("failed to get uploaded file")
		c.JSON(http.StatusBadRequest, gin.H{"error": "no file provided"})

		return
	}

	src, err := file.Open()
	if err != nil {
		l.Error().Err(err).Msg("failed to open uploaded file")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to process file"})

		return
	}
	defer func() { _ = src.Close() }()

	uploader := ""
	if p := principal(c); p != nil {
		uploader = p.Username
	}

	resp, err := docService(c).Upload(c.Request.Context(), file.Filename, src, uploader)
	if err != nil {
		l.Error().Err(err).Str("filename", file.Filename).Msg("upload failed")
		writeError(c, err)

		return
	}

	l.Info().Str("filename", resp.FileName).Int64("size", resp.Size).Msg("file queued for indexing")
	c.JSON(http.StatusOK, resp)
}
