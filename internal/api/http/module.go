package http

import (
	"context"

	"go.uber.org/fx"
	"go.uber.org/zap"

	collectioniface "github.com/mintarc/v1/pkg/interfaces/collection"
	configiface "github.com/mintarc/v1/pkg/interfaces/config"
	logiface "github.com/mintarc/v1/pkg/interfaces/infrastructure/log"
	naminginterface "github.com/mintarc/v1/pkg/interfaces/naming"
)

// ModuleInput 定义 HTTP 模块的输入依赖
type ModuleInput struct {
	fx.In

	Lifecycle fx.Lifecycle
	Provider  configiface.Provider
	Logger    logiface.Logger
	ZapLogger *zap.Logger
	Service   collectioniface.Service
	Registry  naminginterface.Registry
	Suggester naminginterface.Suggester
}

// Module 返回 HTTP API 模块
func Module() fx.Option {
	return fx.Module("http",
		fx.Invoke(RegisterServer),
	)
}

// RegisterServer 创建服务器并挂接生命周期
func RegisterServer(input ModuleInput) {
	options := input.Provider.GetAPI()
	if !options.Enabled {
		input.Logger.Info("HTTP API 已禁用，跳过启动")
		return
	}

	input.Logger.Infof("运行环境: %s", input.Provider.GetEnvironment())
	server := NewServer(options, input.Logger, input.ZapLogger, input.Service, input.Registry, input.Suggester)

	input.Lifecycle.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			return server.Start()
		},
		OnStop: func(ctx context.Context) error {
			return server.Stop(ctx)
		},
	})
}
