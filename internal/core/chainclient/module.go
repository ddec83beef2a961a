// Package chainclient 提供链客户端的 fx 配置
//
// 将 client/core 下的传输实现装配为业务模块依赖的
// naming.Registry 与 collection.Creator 接口。
package chainclient

import (
	"go.uber.org/fx"

	"github.com/mintarc/v1/client/core/registry"
	"github.com/mintarc/v1/client/core/submit"
	infralog "github.com/mintarc/v1/internal/core/infrastructure/log"
	"github.com/mintarc/v1/internal/core/infrastructure/probecache"
	corenaming "github.com/mintarc/v1/internal/core/naming"
	collectioniface "github.com/mintarc/v1/pkg/interfaces/collection"
	configiface "github.com/mintarc/v1/pkg/interfaces/config"
	logiface "github.com/mintarc/v1/pkg/interfaces/infrastructure/log"
	naminginterface "github.com/mintarc/v1/pkg/interfaces/naming"
)

// ModuleInput 定义 chainclient 模块的输入依赖
type ModuleInput struct {
	fx.In

	Logger   logiface.Logger
	Provider configiface.Provider
	Cache    probecache.Cache
}

// ModuleOutput 定义 chainclient 模块的输出服务
type ModuleOutput struct {
	fx.Out

	Registry naminginterface.Registry
	Creator  collectioniface.Creator
}

// Module 返回链客户端模块
func Module() fx.Option {
	return fx.Module("chainclient",
		fx.Provide(ProvideServices),
	)
}

// ProvideServices 提供链客户端服务
func ProvideServices(input ModuleInput) (ModuleOutput, error) {
	chainOptions := input.Provider.GetChain()
	logger := infralog.NewModuleLogger(input.Logger, "chainclient")

	chainRegistry, err := registry.New(chainOptions)
	if err != nil {
		return ModuleOutput{}, err
	}

	creator, err := submit.New(chainOptions)
	if err != nil {
		return ModuleOutput{}, err
	}

	return ModuleOutput{
		Registry: corenaming.NewCachedRegistry(chainRegistry, input.Cache, logger),
		Creator:  creator,
	}, nil
}
