// Package naming 提供名称服务的 fx 配置
package naming

import (
	"go.uber.org/fx"

	configiface "github.com/mintarc/v1/pkg/interfaces/config"
	logiface "github.com/mintarc/v1/pkg/interfaces/infrastructure/log"
	naminginterface "github.com/mintarc/v1/pkg/interfaces/naming"
)

// ModuleInput 定义 naming 模块的输入依赖
type ModuleInput struct {
	fx.In

	Logger   logiface.Logger
	Provider configiface.Provider
	Registry naminginterface.Registry
}

// ModuleOutput 定义 naming 模块的输出服务
type ModuleOutput struct {
	fx.Out

	Validator naminginterface.Validator
	Suggester naminginterface.Suggester
}

// Module 返回 naming 模块
func Module() fx.Option {
	return fx.Module("naming",
		fx.Provide(ProvideServices),
	)
}

// ProvideServices 提供 naming 模块的所有服务
func ProvideServices(input ModuleInput) (ModuleOutput, error) {
	generator, err := NewGenerator(input.Registry, input.Provider.GetNaming(), input.Logger)
	if err != nil {
		return ModuleOutput{}, err
	}

	return ModuleOutput{
		Validator: NewValidator(),
		Suggester: generator,
	}, nil
}
