// Package api 提供 HTTP API 模块的配置
package api

import (
	configtypes "github.com/mintarc/v1/pkg/types"
)

// APIOptions API 服务配置选项
type APIOptions struct {
	Enabled      bool   `json:"enabled"`       // 是否启用 HTTP API
	Host         string `json:"host"`          // 监听地址
	Port         int    `json:"port"`          // 监听端口
	ReadTimeout  int    `json:"read_timeout"`  // 读超时（秒）
	WriteTimeout int    `json:"write_timeout"` // 写超时（秒）
}

// Config API 配置实现
type Config struct {
	options *APIOptions
}

// New 创建 API 配置实现
func New(userConfig *configtypes.UserAPIConfig) *Config {
	options := &APIOptions{
		Enabled:      defaultEnabled,
		Host:         defaultHost,
		Port:         defaultPort,
		ReadTimeout:  defaultReadTimeout,
		WriteTimeout: defaultWriteTimeout,
	}
	if userConfig != nil {
		if userConfig.Enabled != nil {
			options.Enabled = *userConfig.Enabled
		}
		if userConfig.Host != nil {
			options.Host = *userConfig.Host
		}
		if userConfig.Port != nil {
			options.Port = *userConfig.Port
		}
	}
	return &Config{options: options}
}

// GetOptions 获取完整的 API 配置选项
func (c *Config) GetOptions() *APIOptions {
	return c.options
}
