// Package collectionsvc 提供集合业务服务的 fx 配置
package collectionsvc

import (
	evbus "github.com/asaskevich/EventBus"
	"go.uber.org/fx"

	collectioniface "github.com/mintarc/v1/pkg/interfaces/collection"
	logiface "github.com/mintarc/v1/pkg/interfaces/infrastructure/log"
	naminginterface "github.com/mintarc/v1/pkg/interfaces/naming"
)

// ModuleInput 定义 collectionsvc 模块的输入依赖
type ModuleInput struct {
	fx.In

	Logger   logiface.Logger
	Registry naminginterface.Registry
	Creator  collectioniface.Creator
	Bus      evbus.Bus
}

// ModuleOutput 定义 collectionsvc 模块的输出服务
type ModuleOutput struct {
	fx.Out

	Service collectioniface.Service
}

// Module 返回集合业务模块
func Module() fx.Option {
	return fx.Module("collectionsvc",
		fx.Provide(ProvideEventBus),
		fx.Provide(ProvideServices),
	)
}

// ProvideServices 提供集合业务服务
func ProvideServices(input ModuleInput) (ModuleOutput, error) {
	service, err := NewService(input.Registry, input.Creator, input.Bus, input.Logger)
	if err != nil {
		return ModuleOutput{}, err
	}
	return ModuleOutput{Service: service}, nil
}

// ProvideEventBus 提供进程内事件总线
func ProvideEventBus() evbus.Bus {
	return evbus.New()
}
