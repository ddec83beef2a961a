// Package collection 定义集合创建相关的服务接口
package collection

import (
	"context"

	"github.com/mintarc/v1/pkg/types"
)

// Creator 集合创建服务（外部协作方）
//
// 封装对钱包签名服务的调用：接收完整组装的集合记录与已认证的
// 创建者身份，完成交易构建、签名与上链。本仓库不实现签名逻辑。
type Creator interface {
	// Create 提交集合记录上链
	//
	// 失败时返回的 error 可能是 *types.SubmitReport，
	// 携带服务端的结构化错误详情。
	Create(ctx context.Context, record *types.CollectionRecord) (*types.CreateReceipt, error)
}

// Service 集合业务服务
//
// 编排完整的创建流程：输入校验、名称占用检查、元数据组装、
// 提交上链。原始表单层只需要调用这一个入口。
type Service interface {
	// CreateCollection 校验并创建集合
	//
	// 参数：
	//   - ctx: 上下文对象
	//   - actor: 已认证的创建者账户名（由钱包会话提供）
	//   - draft: 用户输入的集合草稿
	CreateCollection(ctx context.Context, actor string, draft *types.CollectionDraft) (*types.CreateReceipt, error)

	// CheckName 校验名称并返回占用状态
	CheckName(ctx context.Context, name, account string) (claimable bool, status types.LookupStatus, err error)
}
