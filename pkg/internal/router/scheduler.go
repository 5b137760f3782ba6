package router

import (
	"github.com/gin-gonic/gin"

	"github.com/yeisme/docvault/pkg/internal/handle"
	"github.com/yeisme/docvault/pkg/middleware"
)

// RegisterSchedulerRoutes 注册调度器管理路由（仅管理员）.
func RegisterSchedulerRoutes(g *gin.RouterGroup) {
	schedRoutes := g.Group("/scheduler", middleware.RequireAdmin())
	{
		schedRoutes.GET("/jobs", handle.SchedulerJobs)
		schedRoutes.GET("/jobs/:name", handle.SchedulerJobInfo)
		schedRoutes.DELETE("/jobs/:name", handle.SchedulerRemoveJob)
	}
}
