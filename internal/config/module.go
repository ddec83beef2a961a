package config

import (
	"go.uber.org/fx"

	configiface "github.com/mintarc/v1/pkg/interfaces/config"
)

// Module 返回配置模块
func Module() fx.Option {
	return fx.Module("config",
		fx.Provide(ProvideProvider),
	)
}

// ProvideProvider 从应用配置选项提供配置提供者
func ProvideProvider(appOptions configiface.AppOptions) configiface.Provider {
	if appOptions == nil {
		return NewProvider(nil)
	}
	return NewProvider(appOptions.GetAppConfig())
}
