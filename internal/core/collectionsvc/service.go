// Package collectionsvc 实现集合创建的业务编排
//
// 📋 **职责**：
//   - 校验用户输入（名称授权、手续费率、图片引用）
//   - 名称占用检查（提交前实时确认）
//   - 组装链上集合记录并通过创建客户端提交
//   - 创建成功后在事件总线发布通知
//
// ⚠️ **失败语义**：
//   - 所有面向用户的失败统一为 *types.SubmitReport
//     （标题 + 简短说明 + 原始诊断详情）
package collectionsvc

import (
	"context"
	"fmt"

	evbus "github.com/asaskevich/EventBus"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/mintarc/v1/internal/core/naming"
	"github.com/mintarc/v1/pkg/constants"
	collectioniface "github.com/mintarc/v1/pkg/interfaces/collection"
	logiface "github.com/mintarc/v1/pkg/interfaces/infrastructure/log"
	naminginterface "github.com/mintarc/v1/pkg/interfaces/naming"
	"github.com/mintarc/v1/pkg/types"
)

// MaxMarketFee 二级市场手续费率上限
const MaxMarketFee = 0.15

// Prometheus 指标
var (
	createAttempts = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "mintarc",
		Subsystem: "collection",
		Name:      "create_attempts_total",
		Help:      "Total number of collection creation attempts",
	})
	createFailures = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "mintarc",
		Subsystem: "collection",
		Name:      "create_failures_total",
		Help:      "Total number of failed collection creations by stage",
	}, []string{"stage"})
)

func init() {
	prometheus.MustRegister(createAttempts, createFailures)
}

// Service 集合业务服务实现
type Service struct {
	registry naminginterface.Registry
	creator  collectioniface.Creator
	bus      evbus.Bus
	logger   logiface.Logger
}

// 确保实现接口
var _ collectioniface.Service = (*Service)(nil)

// NewService 创建集合业务服务
//
// 参数：
//   - registry: 名称存在性查询服务
//   - creator: 集合创建客户端（钱包签名服务）
//   - bus: 进程内事件总线（可为 nil，此时不发布事件）
//   - logger: 日志记录器
func NewService(registry naminginterface.Registry, creator collectioniface.Creator, bus evbus.Bus, logger logiface.Logger) (*Service, error) {
	if registry == nil {
		return nil, fmt.Errorf("name registry cannot be nil")
	}
	if creator == nil {
		return nil, fmt.Errorf("collection creator cannot be nil")
	}
	return &Service{
		registry: registry,
		creator:  creator,
		bus:      bus,
		logger:   logger,
	}, nil
}

// CheckName 校验名称并返回占用状态
//
// 实现 collection.Service 接口。
func (s *Service) CheckName(ctx context.Context, name, account string) (bool, types.LookupStatus, error) {
	claimable := naming.IsClaimable(name, account) && naming.IsWellFormed(name)
	if !claimable {
		// 名称本身不可注册时无需查询占用状态
		return false, types.LookupUnknown, nil
	}

	status, err := s.registry.Lookup(ctx, name)
	if err != nil {
		return true, types.LookupUnknown, err
	}
	return true, status, nil
}

// CreateCollection 校验并创建集合
//
// 实现 collection.Service 接口。
func (s *Service) CreateCollection(ctx context.Context, actor string, draft *types.CollectionDraft) (*types.CreateReceipt, error) {
	createAttempts.Inc()

	if err := s.validateDraft(actor, draft); err != nil {
		createFailures.WithLabelValues("validate").Inc()
		return nil, err
	}

	// 提交前实时确认名称未被占用
	status, err := s.registry.Lookup(ctx, draft.Name)
	if err != nil {
		createFailures.WithLabelValues("lookup").Inc()
		return nil, types.NewSubmitReport("集合创建失败", "无法确认名称占用状态", err.Error())
	}
	if status != types.LookupNotFound {
		createFailures.WithLabelValues("taken").Inc()
		return nil, types.NewSubmitReport("集合创建失败",
			fmt.Sprintf("名称 %s 已被占用", draft.Name), "")
	}

	metadata, err := buildMetadata(draft)
	if err != nil {
		createFailures.WithLabelValues("metadata").Inc()
		return nil, types.NewSubmitReport("集合创建失败", "元数据组装失败", err.Error())
	}

	record := &types.CollectionRecord{
		Name:        draft.Name,
		DisplayName: draft.DisplayName,
		MarketFee:   draft.MarketFee,
		Author:      actor,
		Metadata:    metadata,
	}

	receipt, err := s.creator.Create(ctx, record)
	if err != nil {
		createFailures.WithLabelValues("submit").Inc()
		// 创建客户端已经生成了结构化报告的直接透传
		if _, ok := err.(*types.SubmitReport); ok {
			return nil, err
		}
		return nil, types.NewSubmitReport("集合创建失败", "创建服务调用失败", err.Error())
	}

	if s.logger != nil {
		s.logger.Infof("集合创建成功: name=%s author=%s tx=%s", receipt.Name, actor, receipt.TxHash)
	}
	if s.bus != nil {
		s.bus.Publish(constants.TopicCollectionCreated, receipt)
	}
	return receipt, nil
}

// validateDraft 校验用户输入
//
// 所有校验失败都转换为 SubmitReport，Message 指明具体字段。
func (s *Service) validateDraft(actor string, draft *types.CollectionDraft) error {
	if draft == nil {
		return types.NewSubmitReport("集合创建失败", "创建请求为空", "")
	}
	if actor == "" {
		return types.NewSubmitReport("集合创建失败", "请先连接钱包", "")
	}
	if !naming.IsWellFormed(draft.Name) {
		return types.NewSubmitReport("集合创建失败",
			fmt.Sprintf("名称 %s 含有非法字符或长度不合规", draft.Name), "")
	}
	if !naming.IsClaimable(draft.Name, actor) {
		return types.NewSubmitReport("集合创建失败",
			fmt.Sprintf("账户 %s 无权注册名称 %s", actor, draft.Name), "")
	}
	if draft.DisplayName == "" {
		return types.NewSubmitReport("集合创建失败", "展示名称不能为空", "")
	}
	if draft.MarketFee < 0 || draft.MarketFee > MaxMarketFee {
		return types.NewSubmitReport("集合创建失败",
			fmt.Sprintf("手续费率必须在 0 到 %.2f 之间", MaxMarketFee), "")
	}
	if err := validateImageCID(draft.ImageCID); err != nil {
		return types.NewSubmitReport("集合创建失败", "图片引用不是合法的内容哈希", err.Error())
	}
	return nil
}
