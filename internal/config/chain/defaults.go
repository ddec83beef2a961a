package chain

// 链端点配置默认值
const (
	// defaultEndpoint 默认链 REST API 端点（本地开发节点）
	defaultEndpoint = "http://127.0.0.1:8645"

	// defaultSignerEndpoint 默认钱包签名服务端点
	defaultSignerEndpoint = "http://127.0.0.1:8650"

	// defaultTimeoutSeconds 默认请求超时（秒）
	// 名称查询与创建提交都是交互式操作，30秒足以覆盖慢节点
	defaultTimeoutSeconds = 30
)
