package probecache

import (
	"context"
	"fmt"
	"time"

	"github.com/allegro/bigcache/v3"

	probecacheconfig "github.com/mintarc/v1/internal/config/probecache"
	logiface "github.com/mintarc/v1/pkg/interfaces/infrastructure/log"
)

// takenMarker 缓存值只承载"存在"这一事实，内容无意义
var takenMarker = []byte{1}

// MemoryCache 基于BigCache的进程内探测缓存
//
// 🔒 **并发安全**：BigCache 自身分片加锁，可在多 goroutine 下直接使用
type MemoryCache struct {
	cache  *bigcache.BigCache
	logger logiface.Logger
}

// 确保实现接口
var _ Cache = (*MemoryCache)(nil)

// NewMemoryCache 创建BigCache探测缓存
func NewMemoryCache(options *probecacheconfig.ProbeCacheOptions, logger logiface.Logger) (*MemoryCache, error) {
	if options == nil {
		options = probecacheconfig.New(nil).GetOptions()
	}

	ttl := time.Duration(options.TTLSeconds) * time.Second
	cacheConfig := bigcache.DefaultConfig(ttl)
	// 名称条目极小，收紧单条上限避免分配浪费
	cacheConfig.MaxEntrySize = 64

	cache, err := bigcache.New(context.Background(), cacheConfig)
	if err != nil {
		return nil, fmt.Errorf("创建BigCache实例失败: %w", err)
	}

	return &MemoryCache{
		cache:  cache,
		logger: logger,
	}, nil
}

// MarkTaken 记录名称已被占用
func (c *MemoryCache) MarkTaken(ctx context.Context, name string) error {
	if name == "" {
		return fmt.Errorf("name cannot be empty")
	}
	return c.cache.Set(name, takenMarker)
}

// IsKnownTaken 查询名称是否已知被占用
func (c *MemoryCache) IsKnownTaken(ctx context.Context, name string) (bool, error) {
	_, err := c.cache.Get(name)
	if err != nil {
		if err == bigcache.ErrEntryNotFound {
			return false, nil
		}
		return false, fmt.Errorf("读取探测缓存失败: %w", err)
	}
	return true, nil
}

// Close 释放缓存资源
func (c *MemoryCache) Close() error {
	return c.cache.Close()
}
