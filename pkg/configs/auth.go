package configs

import (
	"time"

	"github.com/spf13/viper"
)

const (
	// DefaultTokenTTL 令牌有效期，过期是唯一的失效机制（无吊销列表）.
	DefaultTokenTTL = 8 * time.Hour
	// DefaultAuthIssuer 令牌签发者.
	DefaultAuthIssuer = "docvault"
)

// AuthConfig JWT 认证配置.
// Secret 允许是 Base64 编码或原始 UTF-8 字符串；HS512 要求解码后 ≥64 字节，
// 不满足时启动失败而不是在请求期报错.
type AuthConfig struct {
	Secret   string        `mapstructure:"secret"`
	TokenTTL time.Duration `mapstructure:"token_ttl"  rule:"min=1m"`
	Issuer   string        `mapstructure:"issuer"`
	// SkipPaths 跳过认证的路径前缀（如 /metrics、/api/v1/health、登录/注册端点）
	SkipPaths []string `mapstructure:"skip_paths"`
}

func (c *AuthConfig) setDefaults(v *viper.Viper) {
	v.SetDefault("auth.secret", "")
	v.SetDefault("auth.token_ttl", DefaultTokenTTL)
	v.SetDefault("auth.issuer", DefaultAuthIssuer)
	v.SetDefault("auth.skip_paths", []string{
		"/metrics",
		"/debug/pprof",
		"/swagger",
		"/api/v1/health",
		"/api/v1/auth/login",
		"/api/v1/auth/signup",
	})
}
