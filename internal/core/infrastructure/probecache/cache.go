// Package probecache 提供名称存在性探测结果的缓存
//
// 📋 **职责**：
//   - 缓存"已占用"的名称，避免生成器重采样与表单反复校验时
//     重复打到链端点
//
// ⚠️ **语义约定**：
//   - 只缓存"已占用"结论：名称一旦被注册基本不会释放，正向缓存安全
//   - 绝不缓存"未占用"结论：提交创建前必须实时确认，
//     否则缓存窗口内的竞争注册会导致冲突
package probecache

import (
	"context"
)

// Cache 探测结果缓存接口
type Cache interface {
	// MarkTaken 记录名称已被占用
	MarkTaken(ctx context.Context, name string) error

	// IsKnownTaken 查询名称是否已知被占用
	// 返回 false 只代表缓存未命中，不代表名称可用
	IsKnownTaken(ctx context.Context, name string) (bool, error)

	// Close 释放缓存资源
	Close() error
}

// Noop 不做任何缓存的空实现（backend 配置为 "none" 时使用）
type Noop struct{}

var _ Cache = (*Noop)(nil)

// MarkTaken 实现 Cache 接口
func (n *Noop) MarkTaken(ctx context.Context, name string) error { return nil }

// IsKnownTaken 实现 Cache 接口，恒未命中
func (n *Noop) IsKnownTaken(ctx context.Context, name string) (bool, error) { return false, nil }

// Close 实现 Cache 接口
func (n *Noop) Close() error { return nil }
