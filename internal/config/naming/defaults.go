package naming

// 名称生成配置默认值
const (
	// defaultMaxAttempts 生成候选名称的尝试上限
	// 候选空间为 5^12（约2.4亿），碰撞概率可以忽略；
	// 上限只是异常保护，正常情况下第一次尝试即命中
	defaultMaxAttempts = 1000
)
