// Package probecache 提供名称探测缓存模块的配置
package probecache

import (
	configtypes "github.com/mintarc/v1/pkg/types"
)

// 缓存后端类型
const (
	BackendMemory = "memory"
	BackendRedis  = "redis"
	BackendNone   = "none"
)

// ProbeCacheOptions 探测缓存配置选项
type ProbeCacheOptions struct {
	// Backend 缓存后端：memory | redis | none
	Backend string `json:"backend"`

	// RedisAddr Redis 地址（backend 为 redis 时必填）
	RedisAddr string `json:"redis_addr"`

	// RedisPassword Redis 密码
	RedisPassword string `json:"redis_password"`

	// RedisDB Redis 数据库编号
	RedisDB int `json:"redis_db"`

	// TTLSeconds 缓存条目过期时间（秒）
	TTLSeconds int `json:"ttl_seconds"`
}

// Config 探测缓存配置实现
type Config struct {
	options *ProbeCacheOptions
}

// New 创建探测缓存配置实现
func New(userConfig *configtypes.UserProbeCacheConfig) *Config {
	options := &ProbeCacheOptions{
		Backend:    defaultBackend,
		RedisDB:    defaultRedisDB,
		TTLSeconds: defaultTTLSeconds,
	}
	if userConfig != nil {
		if userConfig.Backend != nil {
			options.Backend = *userConfig.Backend
		}
		if userConfig.RedisAddr != nil {
			options.RedisAddr = *userConfig.RedisAddr
		}
		if userConfig.RedisPassword != nil {
			options.RedisPassword = *userConfig.RedisPassword
		}
		if userConfig.RedisDB != nil {
			options.RedisDB = *userConfig.RedisDB
		}
		if userConfig.TTLSeconds != nil && *userConfig.TTLSeconds > 0 {
			options.TTLSeconds = *userConfig.TTLSeconds
		}
	}
	return &Config{options: options}
}

// GetOptions 获取完整的探测缓存配置选项
func (c *Config) GetOptions() *ProbeCacheOptions {
	return c.options
}
