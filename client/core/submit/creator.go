// Package submit 实现通过钱包签名服务提交集合创建
package submit

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	chainconfig "github.com/mintarc/v1/internal/config/chain"
	"github.com/mintarc/v1/client/core/transport"
	collectioniface "github.com/mintarc/v1/pkg/interfaces/collection"
	"github.com/mintarc/v1/pkg/types"
)

// createRequest 签名服务的创建请求载荷
type createRequest struct {
	Record *types.CollectionRecord `json:"record"`
}

// createResponse 签名服务的创建成功响应
type createResponse struct {
	TxHash    string    `json:"tx_hash"`
	Timestamp time.Time `json:"timestamp"`
}

// errorResponse 签名服务的结构化错误响应
type errorResponse struct {
	Error struct {
		Message string `json:"message"`
		Details string `json:"details"`
	} `json:"error"`
}

// SignerCreator 钱包签名服务版本的集合创建客户端
//
// 交易构建与签名全部发生在签名服务一侧，本客户端只提交
// 组装完成的集合记录并解读结果。
type SignerCreator struct {
	client *transport.RESTClient
}

// 确保实现接口
var _ collectioniface.Creator = (*SignerCreator)(nil)

// New 创建签名服务客户端
func New(options *chainconfig.ChainOptions) (*SignerCreator, error) {
	if options == nil {
		return nil, fmt.Errorf("chain config cannot be nil")
	}
	if options.SignerEndpoint == "" {
		return nil, fmt.Errorf("signer endpoint cannot be empty")
	}

	return &SignerCreator{
		client: transport.NewRESTClient(options.SignerEndpoint, time.Duration(options.TimeoutSeconds)*time.Second),
	}, nil
}

// NewWithClient 使用指定传输客户端创建提交客户端（测试用）
func NewWithClient(client *transport.RESTClient) *SignerCreator {
	return &SignerCreator{client: client}
}

// Create 提交集合记录上链
//
// 实现 collection.Creator 接口。服务端返回的结构化错误被转换为
// *types.SubmitReport，保留原始 detail 供用户展开查看。
func (c *SignerCreator) Create(ctx context.Context, record *types.CollectionRecord) (*types.CreateReceipt, error) {
	if record == nil {
		return nil, fmt.Errorf("collection record cannot be nil")
	}

	var resp createResponse
	err := c.client.Post(ctx, "/api/v1/collections", &createRequest{Record: record}, &resp)
	if err != nil {
		return nil, decodeCreateError(err)
	}

	return &types.CreateReceipt{
		Name:      record.Name,
		TxHash:    resp.TxHash,
		Timestamp: resp.Timestamp,
	}, nil
}

// decodeCreateError 将传输层错误转换为用户可见的失败报告
func decodeCreateError(err error) error {
	httpErr, ok := err.(*transport.HTTPError)
	if !ok {
		// 纯网络失败，没有服务端详情
		return types.NewSubmitReport("集合创建失败", "无法连接创建服务", err.Error())
	}

	var payload errorResponse
	if jsonErr := json.Unmarshal(httpErr.Body, &payload); jsonErr == nil && payload.Error.Message != "" {
		return types.NewSubmitReport("集合创建失败", payload.Error.Message, payload.Error.Details)
	}

	// 服务端没有返回结构化错误时，保留原始响应体作为详情
	return types.NewSubmitReport("集合创建失败", "创建服务返回异常", httpErr.Error())
}
