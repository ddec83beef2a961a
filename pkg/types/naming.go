package types

import "errors"

// LookupStatus 名称存在性查询的判定结果
//
// 将"已占用 / 未占用"与传输层失败显式区分开：
// 传输失败绝不能被解释为"名称可用"，否则会静默生成冲突名称。
type LookupStatus int

const (
	// LookupUnknown 未完成查询（仅在返回错误时出现）
	LookupUnknown LookupStatus = iota

	// LookupFound 名称已被占用
	LookupFound

	// LookupNotFound 名称未被占用，可以注册
	LookupNotFound
)

// String 返回状态的可读表示
func (s LookupStatus) String() string {
	switch s {
	case LookupFound:
		return "found"
	case LookupNotFound:
		return "not_found"
	default:
		return "unknown"
	}
}

// ErrGenerationExhausted 候选名称生成达到尝试上限
//
// 候选空间为 5^12，正常情况下碰撞概率可以忽略；
// 达到上限通常意味着存在性查询服务行为异常。
var ErrGenerationExhausted = errors.New("name generation exhausted retry budget")
