// Package registry 实现基于链 REST API 的名称存在性查询
package registry

import (
	"context"
	"fmt"
	"net/url"
	"time"

	chainconfig "github.com/mintarc/v1/internal/config/chain"
	"github.com/mintarc/v1/client/core/transport"
	naminginterface "github.com/mintarc/v1/pkg/interfaces/naming"
	"github.com/mintarc/v1/pkg/types"
)

// collectionResponse 链节点返回的集合记录（只解析需要的字段）
type collectionResponse struct {
	Name string `json:"name"`
}

// ChainRegistry 链 REST API 版本的名称存在性查询
//
// ⚠️ **判定极性**：
//   - HTTP 200 且返回记录 → LookupFound（名称已被占用）
//   - HTTP 404 → LookupNotFound（名称未被占用）
//   - 其他任何失败 → 返回 error，由调用方决定如何处理
//
// 把"404"与"网络失败"区分开是这一层的全部意义：
// 二者在底层都表现为请求失败，但语义完全不同。
type ChainRegistry struct {
	client *transport.RESTClient
}

// 确保实现接口
var _ naminginterface.Registry = (*ChainRegistry)(nil)

// New 创建链名称查询服务
func New(options *chainconfig.ChainOptions) (*ChainRegistry, error) {
	if options == nil {
		return nil, fmt.Errorf("chain config cannot be nil")
	}
	if options.Endpoint == "" {
		return nil, fmt.Errorf("chain endpoint cannot be empty")
	}

	return &ChainRegistry{
		client: transport.NewRESTClient(options.Endpoint, time.Duration(options.TimeoutSeconds)*time.Second),
	}, nil
}

// NewWithClient 使用指定传输客户端创建查询服务（测试用）
func NewWithClient(client *transport.RESTClient) *ChainRegistry {
	return &ChainRegistry{client: client}
}

// Lookup 查询名称占用状态
//
// 实现 naming.Registry 接口。
func (r *ChainRegistry) Lookup(ctx context.Context, name string) (types.LookupStatus, error) {
	if name == "" {
		return types.LookupUnknown, fmt.Errorf("name cannot be empty")
	}

	var resp collectionResponse
	err := r.client.Get(ctx, "/api/v1/collections/"+url.PathEscape(name), nil, &resp)
	if err != nil {
		if transport.IsNotFound(err) {
			return types.LookupNotFound, nil
		}
		return types.LookupUnknown, fmt.Errorf("collection lookup for %s: %w", name, err)
	}
	return types.LookupFound, nil
}
