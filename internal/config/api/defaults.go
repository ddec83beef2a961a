package api

// API 服务配置默认值
const (
	// defaultEnabled 默认启用 HTTP API
	defaultEnabled = true

	// defaultHost 默认监听地址
	// 默认只监听本机回环，对外暴露需用户显式配置
	defaultHost = "127.0.0.1"

	// defaultPort 默认监听端口
	defaultPort = 8640

	// defaultReadTimeout HTTP 读超时（秒）
	defaultReadTimeout = 15

	// defaultWriteTimeout HTTP 写超时（秒）
	defaultWriteTimeout = 30
)
