package constants

// 事件总线主题
const (
	// TopicCollectionCreated 集合创建成功后发布
	// 载荷为 *types.CreateReceipt
	TopicCollectionCreated = "collection:created"
)
