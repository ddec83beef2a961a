// Package config 提供配置提供者的实现
//
// 将用户配置文件（types.AppConfig）与各子包的默认值合并，
// 以 config.Provider 接口的形式暴露给业务模块。
package config

import (
	apiconfig "github.com/mintarc/v1/internal/config/api"
	chainconfig "github.com/mintarc/v1/internal/config/chain"
	logconfig "github.com/mintarc/v1/internal/config/log"
	namingconfig "github.com/mintarc/v1/internal/config/naming"
	probecacheconfig "github.com/mintarc/v1/internal/config/probecache"
	configiface "github.com/mintarc/v1/pkg/interfaces/config"
	"github.com/mintarc/v1/pkg/types"
)

// provider 配置提供者实现
type provider struct {
	environment string

	logConfig        *logconfig.Config
	apiConfig        *apiconfig.Config
	chainConfig      *chainconfig.Config
	namingConfig     *namingconfig.Config
	probeCacheConfig *probecacheconfig.Config
}

// 确保实现接口
var _ configiface.Provider = (*provider)(nil)

// NewProvider 从应用配置创建配置提供者
//
// appConfig 为 nil 时全部使用默认值。
func NewProvider(appConfig *types.AppConfig) configiface.Provider {
	p := &provider{
		environment: "prod", // 未配置时默认 prod，安全优先
	}

	var (
		logCfg        *types.UserLogConfig
		apiCfg        *types.UserAPIConfig
		chainCfg      *types.UserChainConfig
		namingCfg     *types.UserNamingConfig
		probeCacheCfg *types.UserProbeCacheConfig
	)

	if appConfig != nil {
		if appConfig.Environment != nil && *appConfig.Environment != "" {
			p.environment = *appConfig.Environment
		}
		logCfg = appConfig.Log
		apiCfg = appConfig.API
		chainCfg = appConfig.Chain
		namingCfg = appConfig.Naming
		probeCacheCfg = appConfig.ProbeCache
	}

	p.logConfig = logconfig.New(logCfg)
	p.apiConfig = apiconfig.New(apiCfg)
	p.chainConfig = chainconfig.New(chainCfg)
	p.namingConfig = namingconfig.New(namingCfg)
	p.probeCacheConfig = probecacheconfig.New(probeCacheCfg)

	return p
}

// GetLog 获取日志配置
func (p *provider) GetLog() *logconfig.LogOptions {
	return p.logConfig.GetOptions()
}

// GetAPI 获取API服务配置
func (p *provider) GetAPI() *apiconfig.APIOptions {
	return p.apiConfig.GetOptions()
}

// GetChain 获取链端点配置
func (p *provider) GetChain() *chainconfig.ChainOptions {
	return p.chainConfig.GetOptions()
}

// GetNaming 获取名称生成配置
func (p *provider) GetNaming() *namingconfig.NamingOptions {
	return p.namingConfig.GetOptions()
}

// GetProbeCache 获取探测缓存配置
func (p *provider) GetProbeCache() *probecacheconfig.ProbeCacheOptions {
	return p.probeCacheConfig.GetOptions()
}

// GetEnvironment 获取运行环境
func (p *provider) GetEnvironment() string {
	return p.environment
}
