package probecache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	probecacheconfig "github.com/mintarc/v1/internal/config/probecache"
	logiface "github.com/mintarc/v1/pkg/interfaces/infrastructure/log"
)

// redisClient Redis 客户端接口（用于依赖注入和测试）
//
// 定义最小化的 Redis 操作接口：生产环境使用 go-redis，
// 测试环境可以使用 mock。包内私有，不对外暴露。
type redisClient interface {
	// Set 设置键值对
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error
	// Exists 检查键是否存在
	Exists(ctx context.Context, keys ...string) (int64, error)
	// Ping 测试连接
	Ping(ctx context.Context) error
	// Close 关闭连接
	Close() error
}

// RedisCache Redis 版本的探测缓存
//
// 📚 **使用场景**：多实例部署时共享"已占用"名称的观测结果
//
// 🎯 **设计理念**：
//   - Key 格式：mintarc:taken:{name}
//   - Value 无意义，仅以键存在表示"已占用"
//   - TTL：使用 Redis EXPIRE 实现自动过期
type RedisCache struct {
	client    redisClient
	keyPrefix string
	ttl       time.Duration
	logger    logiface.Logger
}

// 确保实现接口
var _ Cache = (*RedisCache)(nil)

// defaultKeyPrefix 默认键前缀（命名空间隔离）
const defaultKeyPrefix = "mintarc:taken:"

// NewRedisCacheFromConfig 从配置创建 Redis 探测缓存
func NewRedisCacheFromConfig(options *probecacheconfig.ProbeCacheOptions, logger logiface.Logger) (*RedisCache, error) {
	if options == nil {
		return nil, fmt.Errorf("probe cache config cannot be nil")
	}
	if options.RedisAddr == "" {
		return nil, fmt.Errorf("redis address cannot be empty")
	}

	client := newGoRedisClient(options)
	return NewRedisCache(client, defaultKeyPrefix, options.TTLSeconds, logger)
}

// NewRedisCache 创建 Redis 探测缓存
//
// 参数：
//   - client: Redis 客户端（需实现 redisClient 接口）
//   - keyPrefix: Key 前缀
//   - ttlSeconds: 条目过期时间（秒）
//   - logger: 日志记录器
func NewRedisCache(client redisClient, keyPrefix string, ttlSeconds int, logger logiface.Logger) (*RedisCache, error) {
	if client == nil {
		return nil, fmt.Errorf("redis client cannot be nil")
	}
	if keyPrefix == "" {
		keyPrefix = defaultKeyPrefix
	}
	if ttlSeconds <= 0 {
		ttlSeconds = 600
	}

	// 测试连接
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &RedisCache{
		client:    client,
		keyPrefix: keyPrefix,
		ttl:       time.Duration(ttlSeconds) * time.Second,
		logger:    logger,
	}, nil
}

// MarkTaken 记录名称已被占用
func (c *RedisCache) MarkTaken(ctx context.Context, name string) error {
	if name == "" {
		return fmt.Errorf("name cannot be empty")
	}
	if err := c.client.Set(ctx, c.buildKey(name), 1, c.ttl); err != nil {
		return fmt.Errorf("写入探测缓存失败: %w", err)
	}
	return nil
}

// IsKnownTaken 查询名称是否已知被占用
func (c *RedisCache) IsKnownTaken(ctx context.Context, name string) (bool, error) {
	count, err := c.client.Exists(ctx, c.buildKey(name))
	if err != nil {
		return false, fmt.Errorf("读取探测缓存失败: %w", err)
	}
	return count > 0, nil
}

// Close 关闭 Redis 连接
func (c *RedisCache) Close() error {
	return c.client.Close()
}

// buildKey 构建带前缀的缓存键
func (c *RedisCache) buildKey(name string) string {
	return c.keyPrefix + name
}

// ==================== go-redis 客户端实现 ====================

// goRedisClient go-redis 客户端封装
//
// go-redis 客户端本身是并发安全的，可以在多个 goroutine 中使用。
type goRedisClient struct {
	client *redis.Client
}

var _ redisClient = (*goRedisClient)(nil)

// newGoRedisClient 创建 go-redis 客户端实现
func newGoRedisClient(options *probecacheconfig.ProbeCacheOptions) redisClient {
	return &goRedisClient{
		client: redis.NewClient(&redis.Options{
			Addr:     options.RedisAddr,
			Password: options.RedisPassword,
			DB:       options.RedisDB,
		}),
	}
}

// Set 实现 redisClient 接口
func (c *goRedisClient) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error {
	return c.client.Set(ctx, key, value, expiration).Err()
}

// Exists 实现 redisClient 接口
func (c *goRedisClient) Exists(ctx context.Context, keys ...string) (int64, error) {
	count, err := c.client.Exists(ctx, keys...).Result()
	if err != nil && !errors.Is(err, redis.Nil) {
		return 0, err
	}
	return count, nil
}

// Ping 实现 redisClient 接口
func (c *goRedisClient) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

// Close 实现 redisClient 接口
func (c *goRedisClient) Close() error {
	return c.client.Close()
}
