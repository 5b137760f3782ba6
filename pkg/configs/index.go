package configs

import (
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	// DefaultIndexBasePath OCR 流水线的根目录，其下包含
	// incoming-scan / fully_indexed / partially_indexed / failed 四个子目录.
	DefaultIndexBasePath = "uploads"
	// DefaultRemoteTimeout 远端列表探测的单次请求超时，必须有限.
	DefaultRemoteTimeout = 10 * time.Second
	// DefaultRefreshCron 目录定时重扫（gocron cron 表达式）.
	DefaultRefreshCron = "*/10 * * * *"
)

// IndexConfig 文档目录配置.
// RemoteURL 配置后目录进入 REMOTE 模式（调用外部 OCR 列表 API），
// 否则为 LOCAL 模式（直接扫描本地已索引目录）；模式在构造时确定一次，运行期不变.
type IndexConfig struct {
	BasePath      string        `mapstructure:"base_path"`
	RemoteURL     string        `mapstructure:"remote_url"`
	APIToken      string        `mapstructure:"api_token"`
	RemoteTimeout time.Duration `mapstructure:"remote_timeout" rule:"min=1s"`
	RefreshCron   string        `mapstructure:"refresh_cron"`
}

// RemoteEnabled 报告是否配置了远端 OCR 列表地址.
func (c *IndexConfig) RemoteEnabled() bool {
	return strings.TrimSpace(c.RemoteURL) != ""
}

func (c *IndexConfig) setDefaults(v *viper.Viper) {
	v.SetDefault("index.base_path", DefaultIndexBasePath)
	v.SetDefault("index.remote_url", "")
	v.SetDefault("index.api_token", "")
	v.SetDefault("index.remote_timeout", DefaultRemoteTimeout)
	v.SetDefault("index.refresh_cron", DefaultRefreshCron)
}
