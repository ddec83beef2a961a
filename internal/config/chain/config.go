// Package chain 提供链端点的配置
package chain

import (
	configtypes "github.com/mintarc/v1/pkg/types"
)

// ChainOptions 链端点配置选项
type ChainOptions struct {
	// Endpoint 链 REST API 端点（名称查询等只读操作）
	Endpoint string `json:"endpoint"`

	// SignerEndpoint 钱包签名服务端点（集合创建等写操作）
	SignerEndpoint string `json:"signer_endpoint"`

	// TimeoutSeconds 请求超时（秒）
	TimeoutSeconds int `json:"timeout_seconds"`
}

// Config 链端点配置实现
type Config struct {
	options *ChainOptions
}

// New 创建链端点配置实现
func New(userConfig *configtypes.UserChainConfig) *Config {
	options := &ChainOptions{
		Endpoint:       defaultEndpoint,
		SignerEndpoint: defaultSignerEndpoint,
		TimeoutSeconds: defaultTimeoutSeconds,
	}
	if userConfig != nil {
		if userConfig.Endpoint != nil {
			options.Endpoint = *userConfig.Endpoint
		}
		if userConfig.SignerEndpoint != nil {
			options.SignerEndpoint = *userConfig.SignerEndpoint
		}
		if userConfig.TimeoutSeconds != nil {
			options.TimeoutSeconds = *userConfig.TimeoutSeconds
		}
	}
	return &Config{options: options}
}

// GetOptions 获取完整的链端点配置选项
func (c *Config) GetOptions() *ChainOptions {
	return c.options
}
