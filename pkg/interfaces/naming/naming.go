// Package naming 定义链上名称校验与生成相关的服务接口
package naming

import (
	"context"

	"github.com/mintarc/v1/pkg/types"
)

// Registry 名称存在性查询服务
//
// 📋 **职责**：
//   - 查询给定名称在链上是否已被某个集合占用
//
// ⚠️ **语义约定**：
//   - (LookupFound, nil)：名称已被占用
//   - (LookupNotFound, nil)：名称未被占用
//   - (LookupUnknown, err)：查询本身失败（网络错误、服务不可用等）
//
// 传输失败必须通过 error 返回，调用方绝不能把失败当作"名称可用"。
type Registry interface {
	// Lookup 查询名称占用状态
	Lookup(ctx context.Context, name string) (types.LookupStatus, error)
}

// Validator 名称可用性校验
type Validator interface {
	// IsClaimable 判断 account 是否有权注册名称 name
	IsClaimable(name, account string) bool
}

// Suggester 自动生成未被占用的候选名称
type Suggester interface {
	// Suggest 生成一个经存在性查询确认未被占用的名称
	//
	// 返回值：
	//   - string: 候选名称（恒为 12 位、仅含数字字符集）
	//   - error: 查询失败或达到尝试上限（types.ErrGenerationExhausted）
	Suggest(ctx context.Context) (string, error)
}
