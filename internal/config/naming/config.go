// Package naming 提供名称生成模块的配置
package naming

import (
	configtypes "github.com/mintarc/v1/pkg/types"
)

// NamingOptions 名称生成配置选项
type NamingOptions struct {
	// MaxAttempts 生成候选名称的尝试上限
	MaxAttempts int `json:"max_attempts"`
}

// Config 名称生成配置实现
type Config struct {
	options *NamingOptions
}

// New 创建名称生成配置实现
func New(userConfig *configtypes.UserNamingConfig) *Config {
	options := &NamingOptions{
		MaxAttempts: defaultMaxAttempts,
	}
	if userConfig != nil && userConfig.MaxAttempts != nil && *userConfig.MaxAttempts > 0 {
		options.MaxAttempts = *userConfig.MaxAttempts
	}
	return &Config{options: options}
}

// GetOptions 获取完整的名称生成配置选项
func (c *Config) GetOptions() *NamingOptions {
	return c.options
}
