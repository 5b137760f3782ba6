package handle

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yeisme/docvault/pkg/internal/service"
	"github.com/yeisme/docvault/pkg/internal/types"
	"github.com/yeisme/docvault/pkg/log"
	"github.com/yeisme/docvault/pkg/rule"
)

// Login 处理登录请求并签发令牌.
//
//	@Summary		用户登录
//	@Description	校验用户名密码，返回 Bearer 令牌及其有效期
//	@Tags			认证
//	@Accept			json
//	@Produce		json
//	@Param			credentials	body		types.LoginRequest	true	"登录凭证"
//	@Success		200			{object}	types.LoginResponse	"令牌响应"
//	@Failure		400			{object}	map[string]string	"请求参数错误"
//	@Failure		401			{object}	map[string]string	"用户名或密码错误"
//	@Router			/api/v1/auth/login [post]
func Login(c *gin.Context) {
	l := log.Logger()

	var req types.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		l.Warn().Err(err).Msg("invalid login request")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})

		return
	}

	if err := rule.ValidateStruct(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})

		return
	}

	svc := service.NewAuthService(c.Request.Context(), tokenService)

	resp, err := svc.Login(c.Request.Context(), &req)
	if err != nil {
		l.Warn().Err(err).Str("username", req.Username).Msg("login rejected")
		writeError(c, err)

		return
	}

	c.JSON(http.StatusOK, resp)
}

// Signup 注册新用户.
//
//	@Summary		用户注册
//	@Description	创建普通角色的新用户，用户名全局唯一
//	@Tags			认证
//	@Accept			json
//	@Produce		json
//	@Param			user	body		types.SignupRequest		true	"注册信息"
//	@Success		201		{object}	types.SignupResponse	"注册结果"
//	@Failure		400		{object}	map[string]string		"请求参数错误"
//	@Failure		409		{object}	map[string]string		"用户名已存在"
//	@Router			/api/v1/auth/signup [post]
func Signup(c *gin.Context) {
	l := log.Logger()

	var req types.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		l.Warn().Err(err).Msg("invalid signup request")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})

		return
	}

	if err := rule.ValidateStruct(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})

		return
	}

	svc := service.NewAuthService(c.Request.Context(), tokenService)

	resp, err := svc.Signup(c.Request.Context(), &req)
	if err != nil {
		writeError(c, err)

		return
	}

	l.Info().Str("username", resp.Username).Msg("user registered")
	c.JSON(http.StatusCreated, resp)
}
