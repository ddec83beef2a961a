// Package probecache 提供探测缓存的 fx 配置
package probecache

import (
	"context"
	"fmt"

	"go.uber.org/fx"

	probecacheconfig "github.com/mintarc/v1/internal/config/probecache"
	configiface "github.com/mintarc/v1/pkg/interfaces/config"
	logiface "github.com/mintarc/v1/pkg/interfaces/infrastructure/log"
)

// ModuleInput 定义 probecache 模块的输入依赖
type ModuleInput struct {
	fx.In

	Lifecycle fx.Lifecycle
	Logger    logiface.Logger
	Provider  configiface.Provider
}

// Module 返回探测缓存模块
func Module() fx.Option {
	return fx.Module("probecache",
		fx.Provide(ProvideCache),
	)
}

// ProvideCache 根据配置提供探测缓存实现
func ProvideCache(input ModuleInput) (Cache, error) {
	options := input.Provider.GetProbeCache()

	var (
		cache Cache
		err   error
	)
	switch options.Backend {
	case probecacheconfig.BackendNone:
		cache = &Noop{}
	case probecacheconfig.BackendRedis:
		cache, err = NewRedisCacheFromConfig(options, input.Logger)
	case probecacheconfig.BackendMemory:
		cache, err = NewMemoryCache(options, input.Logger)
	default:
		err = fmt.Errorf("未知的探测缓存后端: %s", options.Backend)
	}
	if err != nil {
		return nil, err
	}

	input.Lifecycle.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return cache.Close()
		},
	})

	if input.Logger != nil {
		input.Logger.Infof("探测缓存已启用: backend=%s ttl=%ds", options.Backend, options.TTLSeconds)
	}
	return cache, nil
}
