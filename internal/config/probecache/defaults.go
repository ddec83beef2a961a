package probecache

// 探测缓存配置默认值
const (
	// defaultBackend 默认使用进程内缓存
	// 单实例部署无需 Redis；多实例共享缓存时切换为 "redis"
	defaultBackend = "memory"

	// defaultTTLSeconds 缓存条目过期时间（秒）
	// 名称一旦被占用基本不会释放，10分钟的TTL主要是内存回收考虑
	defaultTTLSeconds = 600

	// defaultRedisDB 默认 Redis 数据库编号
	defaultRedisDB = 0
)
