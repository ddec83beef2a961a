// Package config provides configuration provider interfaces.
package config

import (
	apiconfig "github.com/mintarc/v1/internal/config/api"
	chainconfig "github.com/mintarc/v1/internal/config/chain"
	logconfig "github.com/mintarc/v1/internal/config/log"
	namingconfig "github.com/mintarc/v1/internal/config/naming"
	probecacheconfig "github.com/mintarc/v1/internal/config/probecache"
)

// Provider 配置提供者接口
//
// 各业务模块通过 Provider 获取自己关心的配置分片，
// 默认值填充与用户覆盖合并在 internal/config 各子包内完成。
type Provider interface {
	// GetLog 获取日志配置
	GetLog() *logconfig.LogOptions

	// GetAPI 获取API服务配置
	GetAPI() *apiconfig.APIOptions

	// GetChain 获取链端点配置
	GetChain() *chainconfig.ChainOptions

	// GetNaming 获取名称生成配置
	GetNaming() *namingconfig.NamingOptions

	// GetProbeCache 获取探测缓存配置
	GetProbeCache() *probecacheconfig.ProbeCacheOptions

	// GetEnvironment 获取运行环境
	// 返回运行环境字符串：dev | test | prod，未配置时默认为 "prod"
	GetEnvironment() string
}
