package handle

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yeisme/docvault/pkg/internal/types"
	"github.com/yeisme/docvault/pkg/log"
	"github.com/yeisme/docvault/pkg/rule"
)

// SearchDocuments 在当前目录快照上检索文档.
//
//	@Summary		检索文档
//	@Description	按客户名/账号等条件在目录快照上检索，结果分页
//	@Tags			文档
//	@Accept			json
//	@Produce		json
//	@Param			query	body		types.SearchDocumentsRequest	true	"检索条件"
//	@Success		200		{object}	types.SearchDocumentsResponse	"检索结果"
//	@Failure		400		{object}	map[string]string				"请求参数错误"
//	@Security		BearerAuth
//	@Router			/api/v1/documents/search [post]
func SearchDocuments(c *gin.Context) {
	l := log.Logger()

	var req types.SearchDocumentsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		l.Warn().Err(err).Msg("invalid search request")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})

		return
	}

	if err := rule.ValidateStruct(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})

		return
	}

	resp, err := docService(c).Search(c.Request.Context(), &req)
	if err != nil {
		l.Error().Err(err).Msg("document search failed")
		writeError(c, err)

		return
	}

	c.JSON(http.StatusOK, resp)
}

// DownloadByName 按文件名从已索引目录下载文件.
//
//	@Summary		按名称下载文件
//	@Description	在已索引目录中按名称定位文件并发送；远端模式重定向到远端 URL
//	@Tags			文档
//	@Produce		octet-stream
//	@Param			name	query		string				true	"文件名"
//	@Success		200		{file}		file				"文件内容"
//	@Failure		400		{object}	map[string]string	"文件名非法"
//	@Failure		404		{object}	map[string]string	"文件不存在"
//	@Security		BearerAuth
//	@Router			/api/v1/documents/files [get]
func DownloadByName(c *gin.Context) {
	svc := docService(c)

	path, err := catalogResolver.Resolve(c.Query("name"))
	if err != nil {
		writeError(c, err)

		return
	}

	if svc.Remote() {
		c.Redirect(http.StatusFound, path)

		return
	}

	c.FileAttachment(path, c.Query("name"))
}

// DownloadByPath 管理员按绝对路径下载文件.
//
//	@Summary		按绝对路径下载文件（管理员）
//	@Description	校验并直接发送一个服务器上的绝对路径；仅管理员可用
//	@Tags			文档
//	@Produce		octet-stream
//	@Param			path	query		string				true	"绝对路径"
//	@Success		200		{file}		file				"文件内容"
//	@Failure		400		{object}	map[string]string	"路径缺失或非法"
//	@Failure		404		{object}	map[string]string	"文件不存在"
//	@Security		BearerAuth
//	@Router			/api/v1/documents/file [get]
func DownloadByPath(c *gin.Context) {
	path, err := docService(c).OpenAbsolute(c.Query("path"))
	if err != nil {
		writeError(c, err)

		return
	}

	c.File(path)
}

// DocumentMeta 返回单个文档的元数据，应用部门访问门禁.
//
//	@Summary		文档元数据
//	@Description	按名称返回文档元数据；普通用户仅能访问本部门文档
//	@Tags			文档
//	@Produce		json
//	@Param			name	path		string					true	"文件名"
//	@Success		200		{object}	types.FindFileResponse	"文档元数据"
//	@Failure		403		{object}	map[string]string		"无权访问"
//	@Failure		404		{object}	map[string]string		"文档不存在"
//	@Security		BearerAuth
//	@Router			/api/v1/documents/{name}/meta [get]
func DocumentMeta(c *gin.Context) {
	resp, err := docService(c).Meta(c.Request.Context(), principal(c), c.Param("name"))
	if err != nil {
		writeError(c, err)

		return
	}

	c.JSON(http.StatusOK, resp)
}

// DocumentDownload 下载单个文档，应用部门访问门禁.
//
//	@Summary		下载文档
//	@Description	按名称下载文档内容；普通用户仅能访问本部门文档；远端模式重定向
//	@Tags			文档
//	@Produce		octet-stream
//	@Param			name	path		string				true	"文件名"
//	@Success		200		{file}		file				"文件内容"
//	@Failure		403		{object}	map[string]string	"无权访问"
//	@Failure		404		{object}	map[string]string	"文档不存在"
//	@Security		BearerAuth
//	@Router			/api/v1/documents/{name}/download [get]
func DocumentDownload(c *gin.Context) {
	svc := docService(c)

	path, err := svc.Download(c.Request.Context(), principal(c), c.Param("name"))
	if err != nil {
		writeError(c, err)

		return
	}

	if svc.Remote() {
		c.Redirect(http.StatusFound, path)

		return
	}

	c.FileAttachment(path, c.Param("name"))
}

// FilterDepartments 返回部门过滤器候选值.
//
//	@Summary		部门候选值
//	@Tags			过滤器
//	@Produce		json
//	@Success		200	{object}	types.FilterValuesResponse	"部门名称列表"
//	@Security		BearerAuth
//	@Router			/api/v1/documents/filters/departments [get]
func FilterDepartments(c *gin.Context) {
	resp, err := docService(c).Departments(c.Request.Context())
	if err != nil {
		writeError(c, err)

		return
	}

	c.JSON(http.StatusOK, resp)
}

// FilterClients 返回客户过滤器候选值，支持前缀过滤.
//
//	@Summary		客户候选值
//	@Tags			过滤器
//	@Produce		json
//	@Param			prefix	query		string						false	"名称前缀"
//	@Success		200		{object}	types.FilterValuesResponse	"客户名称列表"
//	@Security		BearerAuth
//	@Router			/api/v1/documents/filters/clients [get]
func FilterClients(c *gin.Context) {
	resp, err := docService(c).Clients(c.Request.Context(), c.Query("prefix"))
	if err != nil {
		writeError(c, err)

		return
	}

	c.JSON(http.StatusOK, resp)
}

// FilterFileExtensions 返回快照中出现过的扩展名.
//
//	@Summary		扩展名候选值
//	@Tags			过滤器
//	@Produce		json
//	@Success		200	{object}	types.FilterValuesResponse	"扩展名列表"
//	@Security		BearerAuth
//	@Router			/api/v1/documents/filters/file-extensions [get]
func FilterFileExtensions(c *gin.Context) {
	c.JSON(http.StatusOK, docService(c).FileExtensions())
}
