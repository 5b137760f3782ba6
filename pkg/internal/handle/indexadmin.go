package handle

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yeisme/docvault/pkg/log"
)

// RefreshIndex 手动重建目录快照（管理员）.
//
//	@Summary		刷新目录
//	@Description	立即重扫本地目录或远端列表并发布新快照；失败时旧快照保持可用
//	@Tags			目录
//	@Produce		json
//	@Success		200	{object}	types.RefreshIndexResponse	"刷新后的快照状态"
//	@Failure		502	{object}	map[string]string			"远端列表不可用"
//	@Security		BearerAuth
//	@Router			/api/v1/index/refresh [post]
func RefreshIndex(c *gin.Context) {
	requester := "admin"
	if p := principal(c); p != nil {
		requester = p.Username
	}

	resp, err := docService(c).Refresh(c.Request.Context(), requester)
	if err != nil {
		log.Logger().Error().Err(err).Msg("manual catalog refresh failed")
		writeError(c, err)

		return
	}

	c.JSON(http.StatusOK, resp)
}

// IndexStatus 返回当前目录快照状态.
//
//	@Summary		目录状态
//	@Tags			目录
//	@Produce		json
//	@Success		200	{object}	types.IndexStatusResponse	"快照状态"
//	@Security		BearerAuth
//	@Router			/api/v1/index/status [get]
func IndexStatus(c *gin.Context) {
	c.JSON(http.StatusOK, docService(c).Status())
}
