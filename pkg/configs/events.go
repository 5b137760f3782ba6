package configs

import "github.com/spf13/viper"

// EventsConfig 控制事件发布的开关（全局与分主题）。
type EventsConfig struct {
	Enabled  bool                 `mapstructure:"enabled"` // 总开关
	Document DocumentEventsConfig `mapstructure:"document"`
}

// DocumentEventsConfig 针对文档目录领域的事件开关。
type DocumentEventsConfig struct {
	CatalogRefreshed bool `mapstructure:"catalog_refreshed"`
	Accessed         bool `mapstructure:"accessed"`
	Uploaded         bool `mapstructure:"uploaded"`
	OCRMetadata      bool `mapstructure:"ocr_metadata"`
}

func (c *EventsConfig) setDefaults(v *viper.Viper) {
	// 总开关：默认启用事件系统
	v.SetDefault("events.enabled", true)

	// 文档领域的事件：默认仅开启最小必要集，避免噪声过大
	v.SetDefault("events.document.catalog_refreshed", true)
	v.SetDefault("events.document.uploaded", true)
	v.SetDefault("events.document.ocr_metadata", true)

	// 访问事件量可能很大，默认关闭
	v.SetDefault("events.document.accessed", false)
}
