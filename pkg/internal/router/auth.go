package router

import (
	"github.com/gin-gonic/gin"

	"github.com/yeisme/docvault/pkg/internal/handle"
)

// RegisterAuthRoutes 注册认证相关路由（登录/注册不要求令牌，见认证中间件跳过列表）.
func RegisterAuthRoutes(g *gin.RouterGroup) {
	authRoutes := g.Group("/auth")
	{
		authRoutes.POST("/login", handle.Login)
		authRoutes.POST("/signup", handle.Signup)
	}
}
