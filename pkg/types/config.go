// Package types 定义跨模块共享的基础类型
package types

// AppConfig 用户配置文件的顶层结构
//
// 🔧 零值陷阱处理说明：
// 为了区分"用户未设置"和"用户设置为零值"，可覆盖字段统一使用指针类型：
// - nil: 用户未在配置文件中设置该字段，使用系统默认值
// - &value: 用户明确设置了该值，即使是零值（0、false、""）也会被采用
type AppConfig struct {
	// 应用程序基本信息
	AppName     *string `json:"app_name,omitempty"`    // 应用名称
	Environment *string `json:"environment,omitempty"` // 运行环境：dev | test | prod

	// 日志配置 - 对应配置文件中的 log 字段
	Log *UserLogConfig `json:"log,omitempty"`

	// API 服务配置 - 对应配置文件中的 api 字段
	API *UserAPIConfig `json:"api,omitempty"`

	// 链端点配置 - 对应配置文件中的 chain 字段
	Chain *UserChainConfig `json:"chain,omitempty"`

	// 名称生成配置 - 对应配置文件中的 naming 字段
	Naming *UserNamingConfig `json:"naming,omitempty"`

	// 探测缓存配置 - 对应配置文件中的 probe_cache 字段
	ProbeCache *UserProbeCacheConfig `json:"probe_cache,omitempty"`
}

// UserLogConfig 用户日志配置
// 只包含JSON配置文件中实际出现的字段
type UserLogConfig struct {
	Level    *string `json:"level,omitempty"`     // 日志级别：debug, info, warn, error, fatal
	FilePath *string `json:"file_path,omitempty"` // 日志文件路径
}

// UserAPIConfig 用户 API 服务配置
type UserAPIConfig struct {
	Enabled *bool   `json:"enabled,omitempty"` // 是否启用 HTTP API
	Host    *string `json:"host,omitempty"`    // 监听地址
	Port    *int    `json:"port,omitempty"`    // 监听端口
}

// UserChainConfig 用户链端点配置
type UserChainConfig struct {
	// Endpoint 链 REST API 端点（名称查询等只读操作）
	Endpoint *string `json:"endpoint,omitempty"`

	// SignerEndpoint 钱包签名服务端点（集合创建等写操作）
	SignerEndpoint *string `json:"signer_endpoint,omitempty"`

	// TimeoutSeconds 请求超时（秒）
	TimeoutSeconds *int `json:"timeout_seconds,omitempty"`
}

// UserNamingConfig 用户名称生成配置
type UserNamingConfig struct {
	// MaxAttempts 生成候选名称的尝试上限
	MaxAttempts *int `json:"max_attempts,omitempty"`
}

// UserProbeCacheConfig 用户探测缓存配置
type UserProbeCacheConfig struct {
	// Backend 缓存后端：memory | redis | none
	Backend *string `json:"backend,omitempty"`

	// RedisAddr Redis 地址（backend 为 redis 时必填）
	RedisAddr *string `json:"redis_addr,omitempty"`

	// RedisPassword Redis 密码（可选）
	RedisPassword *string `json:"redis_password,omitempty"`

	// RedisDB Redis 数据库编号
	RedisDB *int `json:"redis_db,omitempty"`

	// TTLSeconds 缓存条目过期时间（秒）
	TTLSeconds *int `json:"ttl_seconds,omitempty"`
}
