package naming

import (
	"context"

	"github.com/mintarc/v1/internal/core/infrastructure/probecache"
	logiface "github.com/mintarc/v1/pkg/interfaces/infrastructure/log"
	naminginterface "github.com/mintarc/v1/pkg/interfaces/naming"
	"github.com/mintarc/v1/pkg/types"
)

// CachedRegistry 带探测缓存的存在性查询装饰器
//
// 只缓存"已占用"结论。"未占用"永远实时查询：
// 提交创建前的最终确认不能依赖任何缓存窗口。
// 缓存读写失败只记日志不阻断查询，缓存是优化不是依赖。
type CachedRegistry struct {
	inner  naminginterface.Registry
	cache  probecache.Cache
	logger logiface.Logger
}

// 确保实现接口
var _ naminginterface.Registry = (*CachedRegistry)(nil)

// NewCachedRegistry 创建带缓存的存在性查询
func NewCachedRegistry(inner naminginterface.Registry, cache probecache.Cache, logger logiface.Logger) *CachedRegistry {
	return &CachedRegistry{
		inner:  inner,
		cache:  cache,
		logger: logger,
	}
}

// Lookup 查询名称占用状态
func (r *CachedRegistry) Lookup(ctx context.Context, name string) (types.LookupStatus, error) {
	if r.cache != nil {
		taken, err := r.cache.IsKnownTaken(ctx, name)
		if err != nil {
			if r.logger != nil {
				r.logger.Warnf("读取探测缓存失败，回退到实时查询: %v", err)
			}
		} else if taken {
			return types.LookupFound, nil
		}
	}

	status, err := r.inner.Lookup(ctx, name)
	if err != nil {
		return status, err
	}

	if status == types.LookupFound && r.cache != nil {
		if err := r.cache.MarkTaken(ctx, name); err != nil && r.logger != nil {
			r.logger.Warnf("写入探测缓存失败: %v", err)
		}
	}
	return status, nil
}
